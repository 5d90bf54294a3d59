package quotes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FinHub/internal/domain/models"
	applogger "FinHub/pkg/logger"
)

func streamServer(t *testing.T, symbols []string) *httptest.Server {
	t.Helper()
	logger, err := applogger.New(&applogger.Config{Level: "error", Format: "json"})
	require.NoError(t, err)

	streamer := NewStreamer(NewMockSource(nil), 10*time.Millisecond, logger)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = streamer.Stream(r.Context(), w, r, symbols)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dialStream(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestStreamFrameShape(t *testing.T) {
	srv := streamServer(t, []string{"tcs", " infy"})
	conn := dialStream(t, srv)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var ticks []models.QuoteTick
	require.NoError(t, conn.ReadJSON(&ticks))

	require.Len(t, ticks, 2)
	assert.Equal(t, "TCS", ticks[0].Symbol)
	assert.Equal(t, "INFY", ticks[1].Symbol)
	for _, tick := range ticks {
		assert.Greater(t, tick.Price, 0.0)
		assert.Greater(t, tick.Time, int64(0))
	}
}

func TestStreamDefaultsToReferenceTable(t *testing.T) {
	srv := streamServer(t, nil)
	conn := dialStream(t, srv)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var ticks []models.QuoteTick
	require.NoError(t, conn.ReadJSON(&ticks))

	require.Len(t, ticks, len(NewMockSource(nil).Suggestions()))
}

func TestStreamKeepsTicking(t *testing.T) {
	srv := streamServer(t, []string{"TCS"})
	conn := dialStream(t, srv)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var first, second []models.QuoteTick
	require.NoError(t, conn.ReadJSON(&first))
	require.NoError(t, conn.ReadJSON(&second))

	require.Len(t, second, 1)
	assert.Equal(t, "TCS", second[0].Symbol)
	assert.GreaterOrEqual(t, second[0].Time, first[0].Time)
}
