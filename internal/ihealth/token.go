// Package ihealth talks to the F5 iHealth service: it obtains OAuth2 bearer
// tokens via the client-credentials grant and uploads qkview files for analysis.
package ihealth

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/fadlytabrani/qkview-ihealth/internal/apikeys"
)

const (
	grantType = "client_credentials"
	scope     = "ihealth"
)

// ErrNoToken is returned when no credential pair yields an access token.
var ErrNoToken = errors.New("unable to obtain a valid access token")

// Token is the OAuth2 token endpoint response.
type Token struct {
	AccessToken string `json:"access_token"`
}

// Order controls the order in which credential pairs are tried.
type Order string

const (
	// NewestFirst tries the last pair in the file first, so appending a fresh
	// credential makes it win.
	NewestFirst = Order("newest-first")
	// FileOrder tries pairs top to bottom.
	FileOrder = Order("file-order")
)

func (o Order) Valid() bool {
	return o == NewestFirst || o == FileOrder
}

// RequestToken performs a single client-credentials grant against the token
// endpoint using HTTP Basic authentication.
func RequestToken(r *resty.Client, tokenURL string, pair apikeys.Pair) (string, error) {
	response, err := r.R().
		SetBasicAuth(pair.ClientID, pair.ClientSecret).
		SetFormData(map[string]string{
			"grant_type": grantType,
			"scope":      scope,
		}).
		SetResult(&Token{}).
		Post(tokenURL)
	if err != nil {
		return "", errors.WithMessage(err, "error requesting access token")
	}

	if response.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("token response status code: %d", response.StatusCode())
	}

	token, ok := response.Result().(*Token)
	if !ok || token == nil {
		return "", fmt.Errorf("error unmarshalling token response")
	}

	if token.AccessToken == "" {
		return "", fmt.Errorf("access token not found in response")
	}

	return token.AccessToken, nil
}

// TokenFromPairs tries each credential pair in the given order until one yields
// an access token. Trial is strictly sequential; first success short-circuits
// and every failure is logged before the next pair is tried.
func TokenFromPairs(r *resty.Client, tokenURL string, pairs []apikeys.Pair, order Order) (string, error) {
	slog.Info("Obtaining access token...", "keys", len(pairs))

	for n, i := range trialOrder(len(pairs), order) {
		slog.Info("Trying API key", "index", i, "attempt", fmt.Sprintf("%d/%d", n+1, len(pairs)), "clientId", pairs[i].ClientID)

		token, err := RequestToken(r, tokenURL, pairs[i])
		if err != nil {
			slog.Warn("API key rejected", "index", i, "error", err)
			continue
		}

		slog.Info("Access token obtained", "index", i)
		return token, nil
	}

	return "", ErrNoToken
}

// trialOrder returns the pair indexes in trial order.
func trialOrder(n int, order Order) []int {
	indexes := make([]int, 0, n)
	if order == FileOrder {
		for i := 0; i < n; i++ {
			indexes = append(indexes, i)
		}
		return indexes
	}
	for i := n - 1; i >= 0; i-- {
		indexes = append(indexes, i)
	}
	return indexes
}
