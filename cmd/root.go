package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fadlytabrani/qkview-ihealth/internal/utils"
)

// Design notes:
// - The `upload` command runs the full pipeline: read API keys, obtain an access
//   token, create a qkview file and upload it to iHealth
// - The `collect` command only creates the qkview file, for operators who upload by hand
// - API keys live in a local file, one `client_id:client_secret` pair per line
// - The access token is held in memory for the duration of the run and never persisted
// - Any stage failure aborts the run; the process exits non-zero

var rootCmd = &cobra.Command{
	Use:               "qkview-ihealth",
	Short:             "Create a qkview diagnostic file and upload it to F5 iHealth",
	PersistentPreRunE: RootCmdPersistentPreRunE,
}

// RootCmdPersistentPreRunE configures logging before any command runs.
func RootCmdPersistentPreRunE(cmd *cobra.Command, args []string) error {
	logLevelArg := viper.GetString("logLevel")
	if err := setLogLevel(logLevelArg); err != nil {
		return err
	}

	slog.Debug("Application initialized", "logLevel", logLevelArg)

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var (
	validLogLevels = map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	validLogLevelsStr = strings.Join(utils.GetKeys(validLogLevels), "|")
)

func init() {
	SetupRootCmdFlags(rootCmd)

	viper.AddConfigPath("./")
	viper.SetConfigName("config")

	viper.AutomaticEnv()
}

func SetupRootCmdFlags(command *cobra.Command) {
	command.PersistentFlags().StringP("logLevel", "l", "info", fmt.Sprintf("set log level (%s)", validLogLevelsStr))
	if err := viper.BindPFlag("logLevel", command.PersistentFlags().Lookup("logLevel")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}
}

// setLogLevel sets the log level
func setLogLevel(logLevel string) error {
	level, exists := validLogLevels[logLevel]
	if !exists {
		return fmt.Errorf("invalid log level: %s. Valid log levels are: %s", logLevel, validLogLevelsStr)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
