// File: server/handlers.go
package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/net/websocket"

	"duelpong/game"
)

// stateQueryTimeout bounds how long the HTTP state handler waits on the
// GameActor before giving up.
const stateQueryTimeout = 250 * time.Millisecond

// HandleSubscribe upgrades the connection, subscribes it to snapshot
// broadcasts, and reads input frames from it until it closes. Input frames
// steer player 1; the client receives every snapshot the broadcaster sends.
func (s *Server) HandleSubscribe() func(ws *websocket.Conn) {
	return func(ws *websocket.Conn) {
		clientID := uuid.NewString()
		log := s.log.With(
			zap.String("client", clientID),
			zap.String("remote", ws.Request().RemoteAddr),
		)
		log.Info("client connected")

		s.engine.Send(s.broadcasterPID, game.AddClient{ID: clientID, Conn: ws}, nil)
		defer func() {
			s.engine.Send(s.broadcasterPID, game.RemoveClient{Conn: ws}, nil)
			_ = ws.Close()
			log.Info("client disconnected")
		}()

		s.readLoop(ws, log)
	}
}

// readLoop forwards decoded input frames to the GameActor until the
// connection errors out.
func (s *Server) readLoop(ws *websocket.Conn, log *zap.Logger) {
	for {
		var payload []byte
		if err := websocket.Message.Receive(ws, &payload); err != nil {
			if !errors.Is(err, io.EOF) {
				log.Warn("read failed", zap.Error(err))
			}
			return
		}

		ev, err := game.ParseInputFrame(payload)
		if err != nil {
			log.Warn("dropping bad input frame", zap.Error(err))
			continue
		}
		s.engine.Send(s.gameActorPID, game.PlayerInputMessage{Event: ev}, nil)
	}
}

// HandleState serves the current world snapshot as JSON, queried from the
// GameActor so the response never sees a half-applied tick.
func (s *Server) HandleState() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		reply, err := s.engine.Ask(s.gameActorPID, game.SnapshotRequest{}, stateQueryTimeout)
		if err != nil {
			s.log.Warn("snapshot query failed", zap.Error(err))
			http.Error(w, "game unavailable", http.StatusServiceUnavailable)
			return
		}
		snap, ok := reply.(game.Snapshot)
		if !ok {
			http.Error(w, "unexpected reply", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snap); err != nil {
			s.log.Warn("writing state response", zap.Error(err))
		}
	}
}

// HandleHealthz reports liveness.
func (s *Server) HandleHealthz() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}
