package ihealth_test

import (
	"net/http"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/require"

	"github.com/fadlytabrani/qkview-ihealth/internal/apikeys"
	"github.com/fadlytabrani/qkview-ihealth/internal/ihealth"
	"github.com/fadlytabrani/qkview-ihealth/testutils"
)

func setupClient(t *testing.T) *resty.Client {
	t.Helper()

	client := resty.New()
	httpmock.ActivateNonDefault(client.GetClient())
	t.Cleanup(httpmock.DeactivateAndReset)

	return client
}

func TestRequestToken(t *testing.T) {
	client := setupClient(t)

	// Accept the grant only when the request carries the right Basic auth and
	// the client-credentials form body.
	httpmock.RegisterResponder("POST", testutils.TokenUrl, func(r *http.Request) (*http.Response, error) {
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
		if r.PostForm.Get("grant_type") != "client_credentials" || r.PostForm.Get("scope") != "ihealth" {
			return httpmock.NewStringResponse(http.StatusBadRequest, "unsupported grant"), nil
		}
		return testutils.BasicAuthResponder("alice", "one")(r)
	})

	token, err := ihealth.RequestToken(client, testutils.TokenUrl, apikeys.Pair{ClientID: "alice", ClientSecret: "one"})
	require.NoError(t, err)
	require.Equal(t, testutils.DummyToken, token)
}

func TestRequestToken_Failures(t *testing.T) {
	tt := []struct {
		name      string
		responder httpmock.Responder
		err       string
	}{
		{name: "unauthorized", responder: testutils.UnauthorizedResponder, err: "token response status code: 401"},
		{name: "empty token", responder: testutils.EmptyTokenResponder, err: "access token not found"},
		{name: "garbage body", responder: testutils.GarbageResponder, err: ""},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			client := setupClient(t)
			httpmock.RegisterResponder("POST", testutils.TokenUrl, tc.responder)

			_, err := ihealth.RequestToken(client, testutils.TokenUrl, apikeys.Pair{ClientID: "alice", ClientSecret: "one"})
			require.Error(t, err)
			if tc.err != "" {
				require.ErrorContains(t, err, tc.err)
			}
		})
	}
}

func TestTokenFromPairs_FirstSuccessShortCircuits(t *testing.T) {
	client := setupClient(t)

	pairs := []apikeys.Pair{
		{ClientID: "alice", ClientSecret: "one"},
		{ClientID: "bob", ClientSecret: "two"},
	}

	// Only the newest key (last in file) is valid; it must be tried first and
	// no further request made after it succeeds.
	httpmock.RegisterResponder("POST", testutils.TokenUrl, testutils.BasicAuthResponder("bob", "two"))

	token, err := ihealth.TokenFromPairs(client, testutils.TokenUrl, pairs, ihealth.NewestFirst)
	require.NoError(t, err)
	require.Equal(t, testutils.DummyToken, token)
	require.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestTokenFromPairs_TrialOrder(t *testing.T) {
	pairs := []apikeys.Pair{
		{ClientID: "alice", ClientSecret: "one"},
		{ClientID: "bob", ClientSecret: "two"},
		{ClientID: "charlie", ClientSecret: "three"},
	}

	tt := []struct {
		name    string
		order   ihealth.Order
		clients []string
	}{
		{name: "newest first", order: ihealth.NewestFirst, clients: []string{"charlie", "bob", "alice"}},
		{name: "file order", order: ihealth.FileOrder, clients: []string{"alice", "bob", "charlie"}},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			client := setupClient(t)

			var attempted []string
			httpmock.RegisterResponder("POST", testutils.TokenUrl, func(r *http.Request) (*http.Response, error) {
				id, _, _ := r.BasicAuth()
				attempted = append(attempted, id)
				return testutils.UnauthorizedResponder(r)
			})

			_, err := ihealth.TokenFromPairs(client, testutils.TokenUrl, pairs, tc.order)
			require.Error(t, err)
			require.ErrorIs(t, err, ihealth.ErrNoToken)

			// Every pair attempted exactly once, in the configured order.
			require.Equal(t, tc.clients, attempted)
		})
	}
}

func TestTokenFromPairs_SkipsBadResponse(t *testing.T) {
	client := setupClient(t)

	pairs := []apikeys.Pair{
		{ClientID: "alice", ClientSecret: "one"},
		{ClientID: "bob", ClientSecret: "two"},
	}

	// The newest key gets a malformed body; the next key must still be tried.
	httpmock.RegisterResponder("POST", testutils.TokenUrl, func(r *http.Request) (*http.Response, error) {
		id, _, _ := r.BasicAuth()
		if id == "bob" {
			return testutils.GarbageResponder(r)
		}
		return testutils.AuthResponder(r)
	})

	token, err := ihealth.TokenFromPairs(client, testutils.TokenUrl, pairs, ihealth.NewestFirst)
	require.NoError(t, err)
	require.Equal(t, testutils.DummyToken, token)
	require.Equal(t, 2, httpmock.GetTotalCallCount())
}
