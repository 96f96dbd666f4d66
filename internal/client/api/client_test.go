package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/tablekeeper/internal/client/models"
	"github.com/dmitrijs2005/tablekeeper/internal/client/session"
	"github.com/dmitrijs2005/tablekeeper/internal/common"
	"github.com/dmitrijs2005/tablekeeper/internal/logging"
)

func newTestClient(t *testing.T, handler http.Handler, timeout time.Duration) (*Client, *session.Store, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sess := session.NewStore(t.TempDir())
	c := NewClient(srv.URL+"/api/v1", timeout, sess, logging.NewNopLogger())
	return c, sess, srv
}

func writeEnvelope(w http.ResponseWriter, status, code int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"code":    code,
		"message": message,
		"data":    data,
	})
}

func TestClient_AttachesTokenAndRequestID(t *testing.T) {
	var gotAuth, gotRequestID string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-Id")
		writeEnvelope(w, http.StatusOK, 200, "ok", []models.Room{})
	})

	c, sess, _ := newTestClient(t, handler, time.Second)
	require.NoError(t, sess.SetAuth(nil, "tok123"))

	_, err := c.ListRooms(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestClient_NoTokenSendsUnauthenticated(t *testing.T) {
	var gotAuth string
	var sawHeader bool
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, sawHeader = r.Header["Authorization"]
		writeEnvelope(w, http.StatusOK, 200, "ok", nil)
	})

	c, _, _ := newTestClient(t, handler, time.Second)
	require.NoError(t, c.JoinRoom(context.Background(), "r1"))
	assert.Empty(t, gotAuth)
	assert.False(t, sawHeader)
}

func TestClient_DecodesTypedPayload(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/rooms", r.URL.Path)
		writeEnvelope(w, http.StatusOK, 200, "ok", []models.Room{
			{ID: "r1", Name: "Test Room", RuleSystem: "DND5e"},
			{ID: "r2", Name: "Second"},
		})
	})

	c, _, _ := newTestClient(t, handler, time.Second)
	rooms, err := c.ListRooms(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "Test Room", rooms[0].Name)
	assert.Equal(t, "DND5e", rooms[0].RuleSystem)
}

func TestClient_EnvelopeCodeFailureIsServerRejected(t *testing.T) {
	// The backend signals failure in the envelope even under HTTP 200.
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, 500, "room limit reached", nil)
	})

	c, _, _ := newTestClient(t, handler, time.Second)
	_, err := c.CreateRoom(context.Background(), models.CreateRoomInput{Name: "n"})
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindServerRejected, apiErr.Kind)
	assert.Equal(t, "room limit reached", apiErr.Message)
}

func TestClient_AuthRejectedClearsSession(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, 401, "invalid token", nil)
	})

	c, sess, _ := newTestClient(t, handler, time.Second)
	require.NoError(t, sess.SetAuth(&models.User{ID: "u1"}, "stale-token"))

	_, err := c.GetProfile(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, common.ErrorUnauthorized)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindAuthRejected, apiErr.Kind)

	// The local session is gone, in memory and on disk.
	assert.False(t, sess.LoggedIn())
	assert.Nil(t, sess.User())
}

func TestClient_OtherStatusesHaveNoSideEffects(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusNotFound, 404, "room not found", nil)
	})

	c, sess, _ := newTestClient(t, handler, time.Second)
	require.NoError(t, sess.SetAuth(&models.User{ID: "u1"}, "tok"))

	_, err := c.GetRoom(context.Background(), "missing")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindServerRejected, apiErr.Kind)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.True(t, sess.LoggedIn())
}

func TestClient_Timeout(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		writeEnvelope(w, http.StatusOK, 200, "ok", nil)
	})

	c, _, _ := newTestClient(t, handler, 20*time.Millisecond)
	_, err := c.ListRooms(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, common.ErrorTimeout)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindTimeout, apiErr.Kind)
}

func TestClient_Unavailable(t *testing.T) {
	c, sess, srv := newTestClient(t, http.NotFoundHandler(), time.Second)
	require.NoError(t, sess.SetAuth(nil, "tok"))
	srv.Close()

	_, err := c.ListRooms(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, common.ErrorUnavailable)
}

func TestClient_MalformedBody(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>gateway error</html>"))
	})

	c, _, _ := newTestClient(t, handler, time.Second)
	_, err := c.ListRooms(context.Background())
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindServerRejected, apiErr.Kind)
}

func TestClient_PathTemplates(t *testing.T) {
	var paths []string
	var methods []string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		methods = append(methods, r.Method)
		writeEnvelope(w, http.StatusOK, 200, "ok", nil)
	})

	c, _, _ := newTestClient(t, handler, time.Second)
	ctx := context.Background()

	require.NoError(t, c.DeleteRoom(ctx, "r1"))
	require.NoError(t, c.LeaveRoom(ctx, "r1"))
	require.NoError(t, c.KickMember(ctx, "r1", "u2"))
	require.NoError(t, c.TransferDM(ctx, "r1", "u2"))
	require.NoError(t, c.UpdateCharacter(ctx, "r1", "c1", models.CharacterCard{Name: "x"}))
	_, err := c.ListMembers(ctx, "r1")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/api/v1/rooms/r1",
		"/api/v1/rooms/r1/leave",
		"/api/v1/rooms/r1/members/u2/kick",
		"/api/v1/rooms/r1/transfer-dm",
		"/api/v1/rooms/r1/characters/c1",
		"/api/v1/rooms/r1/members",
	}, paths)
	assert.Equal(t, []string{"DELETE", "POST", "PUT", "PUT", "PUT", "GET"}, methods)
}

func TestClient_EmptyListPayload(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, 200, "ok", []models.Room{})
	})

	c, _, _ := newTestClient(t, handler, time.Second)
	rooms, err := c.ListRooms(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, rooms)
	assert.Empty(t, rooms)
}

func TestClient_LoginPayload(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "test@example.com", req.Email)
		require.Equal(t, "password123", req.Password)

		writeEnvelope(w, http.StatusOK, 200, "Login successful", AuthPayload{
			User:  models.User{ID: "u1", Email: req.Email, Nickname: "Test User"},
			Token: "mock-token",
		})
	})

	c, _, _ := newTestClient(t, handler, time.Second)
	payload, err := c.Login(context.Background(), LoginRequest{Email: "test@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "mock-token", payload.Token)
	assert.Equal(t, "Test User", payload.User.Nickname)
}
