// Package pipeline runs the collect-and-upload sequence.
package pipeline

import (
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/fadlytabrani/qkview-ihealth/internal/apikeys"
	"github.com/fadlytabrani/qkview-ihealth/internal/ihealth"
	"github.com/fadlytabrani/qkview-ihealth/internal/qkview"
)

// Options holds the injected configuration for a run.
type Options struct {
	APIKeysFile string
	TokenURL    string
	UploadURL   string
	KeyOrder    ihealth.Order
	QkviewBin   string
	QkviewDir   string
	Visible     bool
}

// Run executes the pipeline: read API keys, obtain an access token, create the
// qkview file, upload it. Strictly sequential; the first failing stage aborts
// the run and no later stage is attempted.
func Run(r *resty.Client, runner qkview.Runner, opts Options, now time.Time) error {
	pairs, err := apikeys.Load(opts.APIKeysFile)
	if err != nil {
		return errors.WithMessage(err, "could not load API keys")
	}

	token, err := ihealth.TokenFromPairs(r, opts.TokenURL, pairs, opts.KeyOrder)
	if err != nil {
		return errors.WithMessage(err, "could not authenticate")
	}

	path, err := qkview.Create(runner, opts.QkviewBin, opts.QkviewDir, qkview.Filename(now))
	if err != nil {
		return errors.WithMessage(err, "could not create qkview")
	}

	if err := ihealth.Upload(r, opts.UploadURL, path, token, opts.Visible); err != nil {
		return errors.WithMessage(err, "could not upload qkview")
	}

	slog.Info("Done", "path", path)

	return nil
}
