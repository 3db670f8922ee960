package bridge

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rileyhilliard/vitals/internal/logger"
	"github.com/rileyhilliard/vitals/internal/metrics"
)

// Command types the host may push over the bridge.
const (
	CmdUpdateDashboard = "update_dashboard"
	CmdUpdateMetric    = "update_metric"
	CmdSwitchPage      = "switch_page"
)

// Command is one inbound host message. Type selects which entry point is
// invoked; the remaining fields are type-specific.
type Command struct {
	Type    string           `json:"type"`
	Metrics metrics.SetPatch `json:"metrics,omitempty"`
	Metric  string           `json:"metric,omitempty"`
	Value   float64          `json:"value,omitempty"`
	Page    string           `json:"page,omitempty"`
}

// Receiver is the dashboard-side of the bridge: the three host entry
// points plus a connection-count notification.
type Receiver interface {
	UpdateDashboard(patch metrics.SetPatch)
	UpdatePerformanceMetric(metric string, value float64)
	SwitchToPage(page string)
	HostCountChanged(count int)
}

// Server exposes the bridge endpoint the embedding host connects to.
type Server struct {
	echo     *echo.Echo
	hub      *Hub
	receiver Receiver
	log      logger.Logger
	upgrader websocket.Upgrader
}

// NewServer wires the hub and receiver into an HTTP server with two
// routes: GET /bridge (WebSocket) and GET /health.
func NewServer(hub *Hub, receiver Receiver, log logger.Logger) *Server {
	if log == nil {
		log = logger.Noop()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:     e,
		hub:      hub,
		receiver: receiver,
		log:      log,
		upgrader: websocket.Upgrader{
			// The bridge binds to loopback; the host shell is the only
			// expected peer.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}

	e.GET("/bridge", s.handleBridge)
	e.GET("/health", s.handleHealth)

	return s
}

// Start runs the server on addr. Blocks until shutdown.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleBridge upgrades the connection and pumps inbound host commands
// into the receiver until the host disconnects.
func (s *Server) handleBridge(c echo.Context) error {
	conn, err := s.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		s.log.Warn("bridge upgrade failed: %v", err)
		return nil
	}

	s.hub.add(conn)
	s.receiver.HostCountChanged(s.hub.Count())
	s.log.Info("host connected (%d total)", s.hub.Count())

	defer func() {
		s.hub.remove(conn)
		s.receiver.HostCountChanged(s.hub.Count())
		s.log.Info("host disconnected (%d total)", s.hub.Count())
		_ = conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return nil
		}
		s.dispatch(data)
	}
}

// dispatch decodes one inbound message and invokes the matching entry
// point. Malformed payloads and unknown types are logged and ignored.
func (s *Server) dispatch(data []byte) {
	var cmd Command
	if err := json.Unmarshal(data, &cmd); err != nil {
		s.log.Warn("discarding malformed host command: %v", err)
		return
	}

	switch cmd.Type {
	case CmdUpdateDashboard:
		s.receiver.UpdateDashboard(cmd.Metrics)
	case CmdUpdateMetric:
		s.receiver.UpdatePerformanceMetric(cmd.Metric, cmd.Value)
	case CmdSwitchPage:
		s.receiver.SwitchToPage(cmd.Page)
	default:
		s.log.Warn("discarding unknown host command type %q", cmd.Type)
	}
}
