package voice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finhub-dev/finhub/internal/api"
)

func TestAPIDialer_DialAndHangup(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/voice/session":
			_, _ = w.Write([]byte(`{"sessionId": "vs-1", "streamUrl": "wss://stream", "token": "tok"}`))
		default:
			_, _ = w.Write([]byte(`{}`))
		}
	}))
	defer server.Close()

	client, err := api.New(server.Client(), server.URL, "")
	require.NoError(t, err)

	dialer := NewAPIDialer(client)
	require.NoError(t, dialer.Dial(context.Background()))
	require.NoError(t, dialer.Hangup())

	assert.Equal(t, []string{"/api/voice/session", "/api/voice/session/vs-1/stop"}, paths)
}

func TestAPIDialer_HangupWithoutDialIsNoop(t *testing.T) {
	client, err := api.New(nil, "http://unused", "")
	require.NoError(t, err)

	dialer := NewAPIDialer(client)
	assert.NoError(t, dialer.Hangup())
}
