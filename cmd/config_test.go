package cmd_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fadlytabrani/qkview-ihealth/cmd"
	"github.com/fadlytabrani/qkview-ihealth/internal/ihealth"
)

func validUploadConfig() cmd.UploadConfig {
	return cmd.UploadConfig{
		APIKeysFile: cmd.DefaultAPIKeysFile,
		TokenURL:    cmd.DefaultTokenURL,
		UploadURL:   cmd.DefaultUploadURL,
		KeyOrder:    ihealth.NewestFirst,
	}
}

func TestUploadConfigValidate(t *testing.T) {
	tt := []struct {
		name   string
		mutate func(*cmd.UploadConfig)
		err    string
	}{
		{name: "valid", mutate: func(c *cmd.UploadConfig) {}},
		{name: "file order is valid", mutate: func(c *cmd.UploadConfig) { c.KeyOrder = ihealth.FileOrder }},
		{name: "missing keys file", mutate: func(c *cmd.UploadConfig) { c.APIKeysFile = "" }, err: "api keys file is required"},
		{name: "missing token url", mutate: func(c *cmd.UploadConfig) { c.TokenURL = "" }, err: "token URL is required"},
		{name: "bad token url", mutate: func(c *cmd.UploadConfig) { c.TokenURL = "not a url" }, err: "invalid token URL"},
		{name: "missing upload url", mutate: func(c *cmd.UploadConfig) { c.UploadURL = "" }, err: "upload URL is required"},
		{name: "bad upload url", mutate: func(c *cmd.UploadConfig) { c.UploadURL = "not a url" }, err: "invalid upload URL"},
		{name: "bad key order", mutate: func(c *cmd.UploadConfig) { c.KeyOrder = "random" }, err: "invalid key order"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			config := validUploadConfig()
			tc.mutate(&config)

			err := config.Validate()
			if tc.err == "" {
				require.NoError(t, err)
			} else {
				require.ErrorContains(t, err, tc.err)
			}
		})
	}
}

func TestSnapshotConfigValidate(t *testing.T) {
	require.NoError(t, cmd.SnapshotConfig{Bin: "qkview", Dir: "/var/tmp"}.Validate())
	require.ErrorContains(t, cmd.SnapshotConfig{Dir: "/var/tmp"}.Validate(), "qkview binary is required")
	require.ErrorContains(t, cmd.SnapshotConfig{Bin: "qkview"}.Validate(), "qkview directory is required")
}
