package cmd

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/fadlytabrani/qkview-ihealth/internal/qkview"
)

// collectCmd represents the collect command
var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Create a qkview file without uploading it",
	Long: `The collect command only runs the snapshot stage.

It creates a qkview file in the output directory and prints its path. No network
access is performed. Use it when the qkview should be uploaded by hand or inspected
before submission.`,
	RunE: CollectCmdRunE,
}

func CollectCmdRunE(cmd *cobra.Command, args []string) error {
	snapshotConfig := LoadSnapshotConfigFromCLI("collect-qkview-bin", "collect-qkview-dir")
	slog.Debug("args", "snapshot-config", snapshotConfig)
	if err := snapshotConfig.Validate(); err != nil {
		return err
	}

	runner := CreateCommandRunner(cmd.Context())

	path, err := qkview.Create(runner, snapshotConfig.Bin, snapshotConfig.Dir, qkview.Filename(time.Now()))
	if err != nil {
		return err
	}

	slog.Info("Qkview created", "path", path)
	cmd.Println(path)

	return nil
}

func init() {
	SetupCollectCmdFlags(collectCmd)
	rootCmd.AddCommand(collectCmd)
}

func SetupCollectCmdFlags(command *cobra.Command) {
	SetupSnapshotFlags(command, "collect-qkview-bin", "collect-qkview-dir")
}
