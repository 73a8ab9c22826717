// Package apikeys reads iHealth API credentials from a local file.
//
// The file contains one credential per line in the format
// `client_id:client_secret`. Blank lines are ignored and malformed lines are
// skipped with a warning.
package apikeys

import (
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ErrNoCredentials is returned when the API keys file is missing, unreadable or
// contains no usable credential pair.
var ErrNoCredentials = errors.New("no usable API credentials")

// Pair is a single `client_id:client_secret` credential.
type Pair struct {
	ClientID     string
	ClientSecret string
}

// String renders the pair with the secret redacted.
func (p Pair) String() string {
	return p.ClientID + ":[REDACTED]"
}

// Load reads credential pairs from the file at path. The returned slice
// preserves file order; callers decide the trial order.
func Load(path string) ([]Pair, error) {
	slog.Info("Reading API keys...", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithMessagef(ErrNoCredentials, "error reading API keys file: %v", err)
	}

	var pairs []Pair
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		clientID, clientSecret, found := strings.Cut(line, ":")
		if !found || clientID == "" || clientSecret == "" {
			slog.Warn("skipping malformed API key line", "line", i+1)
			continue
		}

		pairs = append(pairs, Pair{ClientID: clientID, ClientSecret: clientSecret})
	}

	if len(pairs) == 0 {
		return nil, errors.WithMessagef(ErrNoCredentials, "no credential pair found in %s", path)
	}

	slog.Info("API keys read", "count", len(pairs))

	return pairs, nil
}
