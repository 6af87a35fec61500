package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"myretro/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	gorilla "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func startHub(t *testing.T) (*Hub, *utils.EventBus, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	bus := utils.NewEventBus()
	hub := NewHub(zap.NewNop(), bus)
	go hub.Run()

	r := gin.New()
	RegisterRoutes(r, hub)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return hub, bus, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func dial(t *testing.T, url string) *gorilla.Conn {
	t.Helper()
	conn, _, err := gorilla.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHubDeliversEventsForFollowedBoard(t *testing.T) {
	hub, bus, url := startHub(t)
	board := uuid.NewString()

	all := dial(t, url)
	one := dial(t, url+"?board="+board)
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, 10*time.Millisecond)

	bus.Publish(utils.EventCardAdded, uuid.NewString(), map[string]string{"comment": "elsewhere"})
	bus.Publish(utils.EventCardAdded, board, map[string]string{"comment": "here"})

	var got utils.Event
	_ = all.SetReadDeadline(time.Now().Add(2 * time.Second))
	require.NoError(t, all.ReadJSON(&got))
	assert.NotEqual(t, board, got.BoardID)
	require.NoError(t, all.ReadJSON(&got))
	assert.Equal(t, board, got.BoardID)

	_ = one.SetReadDeadline(time.Now().Add(2 * time.Second))
	require.NoError(t, one.ReadJSON(&got))
	assert.Equal(t, utils.EventCardAdded, got.Event)
	assert.Equal(t, board, got.BoardID)
	assert.Equal(t, map[string]interface{}{"comment": "here"}, got.Data)
}

func TestHubUnregistersClosedClients(t *testing.T) {
	hub, _, url := startHub(t)

	conn := dial(t, url)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 10*time.Millisecond)
}

func TestServeWSRejectsInvalidBoard(t *testing.T) {
	_, _, url := startHub(t)

	_, resp, err := gorilla.DefaultDialer.Dial(url+"?board=nope", nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
