package calendar

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

func testServiceAccount(t *testing.T, tokenURI string) ([]byte, *rsa.PrivateKey) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pemKey := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})

	raw, err := json.Marshal(map[string]string{
		"type":         "service_account",
		"client_email": "sync@project.iam.gserviceaccount.com",
		"private_key":  string(pemKey),
		"token_uri":    tokenURI,
	})
	require.NoError(t, err)
	return raw, key
}

func TestNewGoogleCalendar_InvalidKey(t *testing.T) {
	_, err := NewGoogleCalendar(context.Background(), []byte(`not json`), "cal", "", time.UTC, zap.NewNop())
	assert.ErrorContains(t, err, "invalid service account json")

	_, err = NewGoogleCalendar(context.Background(), []byte(`{"type":"authorized_user"}`), "cal", "", time.UTC, zap.NewNop())
	assert.Error(t, err)
}

func TestListEvents_PagesAndParses(t *testing.T) {
	loc, err := time.LoadLocation("Africa/Johannesburg")
	require.NoError(t, err)

	var tokenCalls atomic.Int32
	var key *rsa.PrivateKey
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls.Add(1)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "urn:ietf:params:oauth:grant-type:jwt-bearer", r.PostForm.Get("grant_type"))

		parsed, err := jwt.Parse(r.PostForm.Get("assertion"), func(tok *jwt.Token) (any, error) {
			return &key.PublicKey, nil
		}, jwt.WithValidMethods([]string{"RS256"}))
		require.NoError(t, err)
		claims := parsed.Claims.(jwt.MapClaims)
		assert.Equal(t, calendarScope, claims["scope"])
		assert.Equal(t, "sync@project.iam.gserviceaccount.com", claims["iss"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "tok-1", "token_type": "Bearer", "expires_in": 3600})
	})
	mux.HandleFunc("/calendars/bookings@group.calendar.google.com/events", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.Equal(t, "true", r.URL.Query().Get("singleEvents"))

		if r.URL.Query().Get("pageToken") == "" {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"items": []map[string]any{
					{"id": "e1", "summary": "Wedding", "start": map[string]string{"dateTime": "2026-05-02T14:00:00+02:00"}, "end": map[string]string{"dateTime": "2026-05-02T22:00:00+02:00"}},
					{"id": "e2", "status": "cancelled", "start": map[string]string{"date": "2026-05-03"}},
				},
				"nextPageToken": "p2",
			})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"items": []map[string]any{
				{"id": "e3", "summary": "Private function", "start": map[string]string{"date": "2026-05-09"}, "end": map[string]string{"date": "2026-05-10"}},
			},
		})
	})

	var raw []byte
	raw, key = testServiceAccount(t, srv.URL+"/token")
	g, err := NewGoogleCalendar(context.Background(), raw, "bookings@group.calendar.google.com", srv.URL, loc, zap.NewNop())
	require.NoError(t, err)

	from := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	events, err := g.ListEvents(context.Background(), from, from.Add(90*24*time.Hour))
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "e1", events[0].ID)
	assert.Equal(t, 12, events[0].Start.UTC().Hour())
	assert.Equal(t, "e3", events[1].ID)
	assert.True(t, time.Date(2026, 5, 9, 0, 0, 0, 0, loc).Equal(events[1].Start))

	_, err = g.ListEvents(context.Background(), from, from.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int32(1), tokenCalls.Load())
}

func TestListEvents_TokenFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	raw, _ := testServiceAccount(t, srv.URL)
	g, err := NewGoogleCalendar(context.Background(), raw, "cal", srv.URL, time.UTC, zap.NewNop())
	require.NoError(t, err)

	_, err = g.ListEvents(context.Background(), time.Now(), time.Now().Add(time.Hour))
	var retrieveErr *oauth2.RetrieveError
	require.ErrorAs(t, err, &retrieveErr)
	assert.Equal(t, http.StatusBadRequest, retrieveErr.Response.StatusCode)
}
