package notes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finhub-dev/finhub/internal/supabase"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	db, err := supabase.New(srv.Client(), srv.URL, "anon-key")
	require.NoError(t, err)
	return NewService(db)
}

func TestList(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/founder_hub_notes", r.URL.Path)
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))
		assert.Equal(t, "pinned.desc,created_at.desc", r.URL.Query().Get("order"))
		_, _ = w.Write([]byte(`[{"id":"n1","title":"Runway","body":"9 months left","pinned":true}]`))
	})

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Runway", list[0].Title)
	assert.True(t, list[0].Pinned)
}

func TestAdd(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))

		var rows []Note
		require.NoError(t, json.NewDecoder(r.Body).Decode(&rows))
		require.Len(t, rows, 1)
		assert.Equal(t, "Standup", rows[0].Title)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`[{"id":"n2","title":"Standup","body":"notes","pinned":false}]`))
	})

	note, err := svc.Add(context.Background(), "Standup", "notes", false)
	require.NoError(t, err)
	assert.Equal(t, "n2", note.ID)
}

func TestDelete(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "eq.n1", r.URL.Query().Get("id"))
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, svc.Delete(context.Background(), "n1"))
}

func TestReceipts(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/receipts", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":"r1","vendor":"AWS","amount":"42.17","date":"2025-06-01"}]`))
	})

	receipts, err := svc.Receipts(context.Background())
	require.NoError(t, err)
	require.Len(t, receipts, 1)
	assert.Equal(t, "AWS", receipts[0].Vendor)
	assert.Equal(t, "42.17", receipts[0].Amount.StringFixed(2))
}

func TestAddReceipts_EmptyBatchSkipsRequest(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for an empty batch")
	})

	created, err := svc.AddReceipts(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, created)
}

func TestRequestFailure(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"permission denied"}`, http.StatusForbidden)
	})

	_, err := svc.List(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, supabase.ErrRequestFailed)
}
