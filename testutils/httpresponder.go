package testutils

import (
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/require"
)

const DummyToken = "ya29.Gl0UBZ3"

var AuthResponder, _ = httpmock.NewJsonResponder(http.StatusOK, map[string]string{"access_token": DummyToken})
var UnauthorizedResponder, _ = httpmock.NewJsonResponder(http.StatusUnauthorized, map[string]string{"error": "invalid_client"})
var EmptyTokenResponder, _ = httpmock.NewJsonResponder(http.StatusOK, map[string]string{"token_type": "Bearer"})
var UploadedResponder, _ = httpmock.NewJsonResponder(http.StatusOK, map[string]string{"result": "OK"})
var GarbageResponder = httpmock.NewStringResponder(http.StatusOK, "{\"foo\": \"bar\"")

// BasicAuthResponder returns a token responder that only accepts the given
// client credentials, rejecting everything else with 401.
func BasicAuthResponder(clientID, clientSecret string) httpmock.Responder {
	return func(r *http.Request) (*http.Response, error) {
		id, secret, ok := r.BasicAuth()
		if !ok || id != clientID || secret != clientSecret {
			return UnauthorizedResponder(r)
		}
		return AuthResponder(r)
	}
}

// SetupMockResponder registers a JSON responder for the endpoint.
func SetupMockResponder(t *testing.T, method, url string, data interface{}, code int) {
	t.Helper()
	responder, err := httpmock.NewJsonResponder(code, data)
	require.NoError(t, err)
	httpmock.RegisterResponder(method, url, responder)
}
