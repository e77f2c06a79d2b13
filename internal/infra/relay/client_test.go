//go:build unit

package relay_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gas-agency/internal/infra/relay"
	"gas-agency/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *relay.Client {
	return relay.NewClient(config.RelayConfig{BaseURL: baseURL, Timeout: 2 * time.Second})
}

func TestClientSend(t *testing.T) {
	t.Run("posts the email payload", func(t *testing.T) {
		var gotPath, gotContentType string
		var gotBody map[string]string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotContentType = r.Header.Get("Content-Type")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.WriteHeader(http.StatusAccepted)
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		err := client.Send(context.Background(), "asha@example.com", "Booking Approved", "your cylinder ships tomorrow")
		require.NoError(t, err)

		assert.Equal(t, "/send-email", gotPath)
		assert.Equal(t, "application/json", gotContentType)
		assert.Equal(t, map[string]string{
			"to":      "asha@example.com",
			"subject": "Booking Approved",
			"message": "your cylinder ships tomorrow",
		}, gotBody)
	})

	t.Run("non-2xx status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "relay overloaded", http.StatusServiceUnavailable)
		}))
		defer server.Close()

		err := newTestClient(server.URL).Send(context.Background(), "asha@example.com", "s", "m")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "503")
	})

	t.Run("unreachable relay is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		server.Close()

		err := newTestClient(server.URL).Send(context.Background(), "asha@example.com", "s", "m")
		assert.Error(t, err)
	})

	t.Run("empty recipient is rejected before any request", func(t *testing.T) {
		requests := 0
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			requests++
		}))
		defer server.Close()

		err := newTestClient(server.URL).Send(context.Background(), "", "s", "m")
		assert.ErrorIs(t, err, relay.ErrEmptyRecipient)
		assert.Zero(t, requests)
	})
}
