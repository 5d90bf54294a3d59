package quotes

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"FinHub/internal/domain/models"
	domrepo "FinHub/internal/domain/repository"
	applogger "FinHub/pkg/logger"
)

const (
	writeWait    = 5 * time.Second
	pingInterval = 30 * time.Second
)

// Streamer pushes periodic quote ticks over a WebSocket connection.
type Streamer struct {
	source   domrepo.QuoteSource
	interval time.Duration
	logger   *applogger.Logger

	upgrader websocket.Upgrader
}

// NewStreamer creates a quote streamer pushing every interval.
func NewStreamer(source domrepo.QuoteSource, interval time.Duration, logger *applogger.Logger) *Streamer {
	return &Streamer{
		source:   source,
		interval: interval,
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// Stream upgrades the request and pushes ticks for the given symbols
// until the client disconnects or ctx is cancelled. With no symbols it
// streams the whole reference table.
func (s *Streamer) Stream(ctx context.Context, w http.ResponseWriter, r *http.Request, symbols []string) error {
	if len(symbols) == 0 {
		for _, sg := range s.source.Suggestions() {
			symbols = append(symbols, sg.Symbol)
		}
	} else {
		for i := range symbols {
			symbols[i] = strings.ToUpper(strings.TrimSpace(symbols[i]))
		}
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return fmt.Errorf("quote stream upgrade: %w", err)
	}
	defer conn.Close()

	s.logger.Debug("quote stream opened",
		applogger.String("remote", r.RemoteAddr),
		applogger.Int("symbols", len(symbols)))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// drain loop: detect client close, discard inbound frames
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

	if err := s.push(conn, symbols); err != nil {
		return nil
	}
	for {
		select {
		case <-ctx.Done():
			deadline := time.Now().Add(writeWait)
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
			return nil
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return nil
			}
		case <-ticker.C:
			if err := s.push(conn, symbols); err != nil {
				s.logger.Debug("quote stream closed", applogger.Error(err))
				return nil
			}
		}
	}
}

func (s *Streamer) push(conn *websocket.Conn, symbols []string) error {
	now := time.Now().UnixMilli()
	ticks := make([]models.QuoteTick, 0, len(symbols))
	for _, sym := range symbols {
		ticks = append(ticks, models.QuoteTick{
			Symbol: sym,
			Price:  s.source.CurrentPrice(sym),
			Time:   now,
		})
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(ticks)
}
