package cmd

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/spf13/viper"

	"github.com/fadlytabrani/qkview-ihealth/internal/ihealth"
)

// Default endpoints and paths. All of them can be overridden via flags, the
// config file or environment variables.
const (
	DefaultTokenURL    = "https://identity.account.f5.com/oauth2/ausp95ykc80HOU7SQ357/v1/token"
	DefaultUploadURL   = "https://ihealth2-api.f5.com/qkview-analyzer/api/qkviews"
	DefaultAPIKeysFile = "./ihealth.apitokens"
	DefaultQkviewDir   = "/var/tmp"
	DefaultQkviewBin   = "qkview"
)

// UploadConfig represents the configuration for the upload command
type UploadConfig struct {
	APIKeysFile string        // Path to the file containing `client_id:client_secret` pairs
	TokenURL    string        // OAuth2 token endpoint
	UploadURL   string        // iHealth qkview upload endpoint
	KeyOrder    ihealth.Order // Order in which API keys are tried
	Hidden      bool          // Hide the uploaded qkview in the iHealth UI
}

// Print the UploadConfig
func (c UploadConfig) Print() {
	fmt.Printf("APIKeysFile: %v\n", c.APIKeysFile)
	fmt.Printf("TokenURL: %v\n", c.TokenURL)
	fmt.Printf("UploadURL: %v\n", c.UploadURL)
	fmt.Printf("KeyOrder: %v\n", c.KeyOrder)
	fmt.Printf("Hidden: %v\n", c.Hidden)
}

// Validate the UploadConfig making sure all required fields are present and valid
func (c UploadConfig) Validate() error {
	if c.APIKeysFile == "" {
		return errors.New("api keys file is required")
	}

	if c.TokenURL == "" {
		return errors.New("token URL is required")
	}

	if _, err := url.ParseRequestURI(c.TokenURL); err != nil {
		return fmt.Errorf("invalid token URL: %v", err)
	}

	if c.UploadURL == "" {
		return errors.New("upload URL is required")
	}

	if _, err := url.ParseRequestURI(c.UploadURL); err != nil {
		return fmt.Errorf("invalid upload URL: %v", err)
	}

	if !c.KeyOrder.Valid() {
		return fmt.Errorf("invalid key order: %s. Valid orders are: %s|%s", c.KeyOrder, ihealth.NewestFirst, ihealth.FileOrder)
	}

	return nil
}

// LoadUploadConfigFromCLI loads the UploadConfig from the CLI flags
func LoadUploadConfigFromCLI() UploadConfig {
	return UploadConfig{
		APIKeysFile: viper.GetString("apikeys"),
		TokenURL:    viper.GetString("token-url"),
		UploadURL:   viper.GetString("upload-url"),
		KeyOrder:    ihealth.Order(viper.GetString("key-order")),
		Hidden:      viper.GetBool("hidden"),
	}
}

// SnapshotConfig represents the configuration for the qkview snapshot stage
type SnapshotConfig struct {
	Bin string // Name of the qkview binary
	Dir string // Directory the qkview binary writes its output to
}

func (c SnapshotConfig) Validate() error {
	if c.Bin == "" {
		return errors.New("qkview binary is required")
	}

	if c.Dir == "" {
		return errors.New("qkview directory is required")
	}

	return nil
}

// LoadSnapshotConfigFromCLI loads the SnapshotConfig from the CLI flags
//
// `binKey` and `dirKey` are the names of the viper keys that hold the qkview
// binary and output directory. This is necessary because the snapshot flags are
// used in multiple commands.
func LoadSnapshotConfigFromCLI(binKey, dirKey string) SnapshotConfig {
	return SnapshotConfig{
		Bin: viper.GetString(binKey),
		Dir: viper.GetString(dirKey),
	}
}
