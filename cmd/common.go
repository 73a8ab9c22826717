package cmd

import (
	"context"
	"log/slog"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/fadlytabrani/qkview-ihealth/internal/qkview"
)

type ContextKey string

const (
	// RestyClientKey is the context key under which tests inject a mock-enabled resty client
	RestyClientKey = ContextKey("restyClient")
	// CommandRunnerKey is the context key under which tests inject a fake command runner
	CommandRunnerKey = ContextKey("commandRunner")
)

// CreateRestClient creates a new resty client tagged with a per-run request id.
// If the command context carries an injected client, that client is used instead.
func CreateRestClient(ctx context.Context) *resty.Client {
	slog.Info("Creating REST client...")
	r := resty.New()
	if client, ok := ctx.Value(RestyClientKey).(*resty.Client); ok {
		r = client
	}

	runID := uuid.New()
	slog.Debug("run id", "id", runID)

	// No retries. A rejected API key is handled by trying the next one and every
	// other failure is terminal.
	return r.SetHeader("X-Request-ID", runID.String())
}

// CreateCommandRunner returns the command runner from the context, or the real
// exec-backed runner when none was injected.
func CreateCommandRunner(ctx context.Context) qkview.Runner {
	if runner, ok := ctx.Value(CommandRunnerKey).(qkview.Runner); ok {
		return runner
	}
	return qkview.ExecRunner{}
}
