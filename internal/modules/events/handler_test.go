package events

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtsvc "rentify/internal/pkg/jwt"
)

type stubAuthorizer struct {
	err error
}

func (a stubAuthorizer) Authorize(sessionID, userID string) error { return a.err }

func setupStream(t *testing.T, authErr error) (*httptest.Server, *Hub, *jwtsvc.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	j := jwtsvc.New("test-secret", time.Hour)
	hub := NewHub()
	t.Cleanup(hub.Close)

	router := gin.New()
	router.GET("/api/v1/composer/:id/events", NewWSHandler(hub, j, stubAuthorizer{err: authErr}).HandleWebSocket)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, hub, j
}

func TestHandleWebSocket_RequiresToken(t *testing.T) {
	srv, _, _ := setupStream(t, nil)

	resp, err := http.Get(srv.URL + "/api/v1/composer/sess-1/events")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandleWebSocket_InvalidToken(t *testing.T) {
	srv, _, _ := setupStream(t, nil)

	resp, err := http.Get(srv.URL + "/api/v1/composer/sess-1/events?token=not-a-jwt")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandleWebSocket_UnknownSession(t *testing.T) {
	srv, _, j := setupStream(t, errors.New("no such session"))
	token, err := j.GenerateToken("user-1", "user-1@example.com")
	require.NoError(t, err)

	resp, err := http.Get(srv.URL + "/api/v1/composer/missing/events?token=" + token)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandleWebSocket_StreamsEvents(t *testing.T) {
	srv, hub, j := setupStream(t, nil)
	token, err := j.GenerateToken("user-1", "user-1@example.com")
	require.NoError(t, err)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/composer/sess-1/events?token=" + token
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer client.Close()

	// registration happens in the server's handler goroutine after upgrade
	deadline := time.Now().Add(2 * time.Second)
	for hub.ListenerCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	require.Equal(t, 1, hub.ListenerCount())

	require.True(t, hub.Publish("sess-1", SubmitRejected("Pincode invalid")))

	ev := readEvent(t, client)
	assert.Equal(t, TypeSubmitRejected, ev.Type)
	assert.Equal(t, "Pincode invalid", ev.Message)
}
