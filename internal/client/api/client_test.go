package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Insert(t *testing.T) {
	var gotPath, gotAuth, gotKey string
	var gotBody []map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotKey = r.Header.Get("apikey")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewClient(server.URL, "public-key")
	client.SetToken("tok-123")

	rows := []map[string]any{{"id": "e1", "amount": 42.5}}
	err := client.Insert(context.Background(), "expenses", rows)
	require.NoError(t, err)

	assert.Equal(t, "/rest/v1/expenses", gotPath)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "public-key", gotKey)
	assert.Equal(t, rows, gotBody)
}

func TestClient_UpdateAndDeleteFilterByID(t *testing.T) {
	type call struct {
		method string
		query  string
	}
	var calls []call

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, call{method: r.Method, query: r.URL.RawQuery})
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	ctx := context.Background()

	require.NoError(t, client.Update(ctx, "tasks", "t1", map[string]any{"done": true}))
	require.NoError(t, client.Delete(ctx, "tasks", "t1"))

	require.Len(t, calls, 2)
	assert.Equal(t, http.MethodPatch, calls[0].method)
	assert.Equal(t, "id=eq.t1", calls[0].query)
	assert.Equal(t, http.MethodDelete, calls[1].method)
	assert.Equal(t, "id=eq.t1", calls[1].query)
}

func TestClient_UpsertSendsMergeHeaders(t *testing.T) {
	var gotPrefer, gotQuery string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPrefer = r.Header.Get("Prefer")
		gotQuery = r.URL.RawQuery
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	row := map[string]any{"habit_id": "h1", "date": "2026-08-31", "completed": true}
	err := client.Upsert(context.Background(), "habit_logs", row, []string{"habit_id", "date"})
	require.NoError(t, err)

	assert.Equal(t, "resolution=merge-duplicates", gotPrefer)
	assert.Equal(t, "on_conflict=habit_id,date", gotQuery)
}

func TestClient_SelectDecodesRows(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "date=gte.2026-08-01&user_id=eq.u1", r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"e1","amount":10},{"id":"e2","amount":20}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	q := Query{Filters: []Filter{Gte("date", "2026-08-01"), Eq("user_id", "u1")}}

	var rows []struct {
		ID     string  `json:"id"`
		Amount float64 `json:"amount"`
	}
	require.NoError(t, client.Select(context.Background(), "expenses", q, &rows))

	require.Len(t, rows, 2)
	assert.Equal(t, 30.0, rows[0].Amount+rows[1].Amount)
}

func TestClient_StatusErrorClassification(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		retryable bool
	}{
		{"constraint violation", http.StatusConflict, false},
		{"bad request", http.StatusBadRequest, false},
		{"unauthorized", http.StatusUnauthorized, false},
		{"timeout", http.StatusRequestTimeout, true},
		{"throttled", http.StatusTooManyRequests, true},
		{"server error", http.StatusInternalServerError, true},
		{"bad gateway", http.StatusBadGateway, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"message":"nope"}`))
			}))
			defer server.Close()

			client := NewClient(server.URL, "")
			err := client.Insert(context.Background(), "habits", map[string]any{})
			require.Error(t, err)
			assert.Equal(t, !tt.retryable, IsTerminal(err))
		})
	}
}

func TestClient_TransportErrorIsRetryable(t *testing.T) {
	// Point at a closed server: a transport error, not a StatusError.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, "")
	err := client.Healthz(context.Background())
	require.Error(t, err)
	assert.False(t, IsTerminal(err))
}

func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at","refresh_token":"rt","token_type":"bearer","expires_in":3600}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	resp, err := client.Login(context.Background(), "u@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "at", resp.AccessToken)
	assert.Equal(t, "rt", resp.RefreshToken)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
}

func TestQuery_Encode(t *testing.T) {
	q := Query{
		Filters: []Filter{Eq("user_id", "u1"), Lte("date", "2026-08-31")},
		Order:   "date.desc",
		Limit:   10,
	}
	assert.Equal(t, "date=lte.2026-08-31&limit=10&order=date.desc&user_id=eq.u1", q.Encode())
}
