// File: server/server.go
package server

import (
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/net/websocket"

	"duelpong/actors"
	"duelpong/utils"
)

// Server is the network host around the simulation: it owns the actor
// engine handles and exposes the websocket and HTTP surfaces.
type Server struct {
	cfg            utils.Config
	engine         *actors.Engine
	gameActorPID   *actors.PID
	broadcasterPID *actors.PID
	log            *zap.Logger
}

// New wires a Server around an already-spawned game actor pair.
func New(cfg utils.Config, engine *actors.Engine, gameActorPID, broadcasterPID *actors.PID, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		cfg:            cfg,
		engine:         engine,
		gameActorPID:   gameActorPID,
		broadcasterPID: broadcasterPID,
		log:            log,
	}
}

// Routes registers the server's handlers on a mux.
func (s *Server) Routes(mux *http.ServeMux) {
	mux.Handle("/subscribe", websocket.Handler(s.HandleSubscribe()))
	mux.HandleFunc("/state", s.HandleState())
	mux.HandleFunc("/healthz", s.HandleHealthz())
}
