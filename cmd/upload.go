package cmd

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fadlytabrani/qkview-ihealth/internal/ihealth"
	"github.com/fadlytabrani/qkview-ihealth/internal/pipeline"
)

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Create a qkview file and upload it to iHealth",
	Long: `The upload command runs the full pipeline.

API keys are read from a local file containing one 'client_id:client_secret' pair
per line. Keys are tried one at a time until one yields an access token; by default
the last key in the file is tried first, so appending a fresh key makes it win.

The qkview binary is run under reduced scheduling priority and writes its output to
a well-known directory. The resulting file is uploaded to iHealth with the obtained
bearer token. The file is left in place after the upload.`,
	RunE: UploadCmdRunE,
}

func UploadCmdRunE(cmd *cobra.Command, args []string) error {
	config := LoadUploadConfigFromCLI()
	slog.Debug("args", "upload-config", config)
	if err := config.Validate(); err != nil {
		return err
	}

	snapshotConfig := LoadSnapshotConfigFromCLI("upload-qkview-bin", "upload-qkview-dir")
	slog.Debug("args", "snapshot-config", snapshotConfig)
	if err := snapshotConfig.Validate(); err != nil {
		return err
	}

	r := CreateRestClient(cmd.Context())
	runner := CreateCommandRunner(cmd.Context())

	return pipeline.Run(r, runner, pipeline.Options{
		APIKeysFile: config.APIKeysFile,
		TokenURL:    config.TokenURL,
		UploadURL:   config.UploadURL,
		KeyOrder:    config.KeyOrder,
		QkviewBin:   snapshotConfig.Bin,
		QkviewDir:   snapshotConfig.Dir,
		Visible:     !config.Hidden,
	}, time.Now())
}

func init() {
	SetupUploadCmdFlags(uploadCmd)
	rootCmd.AddCommand(uploadCmd)
}

func SetupUploadCmdFlags(command *cobra.Command) {
	command.Flags().String("apikeys", DefaultAPIKeysFile, "Path to the API keys file")
	if err := viper.BindPFlag("apikeys", command.Flags().Lookup("apikeys")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}

	command.Flags().String("token-url", DefaultTokenURL, "OAuth2 token endpoint URL")
	if err := viper.BindPFlag("token-url", command.Flags().Lookup("token-url")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}

	command.Flags().String("upload-url", DefaultUploadURL, "iHealth qkview upload endpoint URL")
	if err := viper.BindPFlag("upload-url", command.Flags().Lookup("upload-url")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}

	command.Flags().String("key-order", string(ihealth.NewestFirst), "Order in which API keys are tried (newest-first|file-order)")
	if err := viper.BindPFlag("key-order", command.Flags().Lookup("key-order")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}

	command.Flags().Bool("hidden", false, "Hide the uploaded qkview in the iHealth UI")
	if err := viper.BindPFlag("hidden", command.Flags().Lookup("hidden")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}

	SetupSnapshotFlags(command, "upload-qkview-bin", "upload-qkview-dir")
}

// SetupSnapshotFlags registers the flags shared by the upload and collect commands.
//
// `binKey` and `dirKey` are the viper keys the flags are bound to; each command
// binds its own keys so the bindings do not clobber each other.
func SetupSnapshotFlags(command *cobra.Command, binKey, dirKey string) {
	command.Flags().String("qkview-bin", DefaultQkviewBin, "Name of the qkview binary")
	if err := viper.BindPFlag(binKey, command.Flags().Lookup("qkview-bin")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}

	command.Flags().String("qkview-dir", DefaultQkviewDir, "Directory the qkview binary writes its output to")
	if err := viper.BindPFlag(dirKey, command.Flags().Lookup("qkview-dir")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}
}
