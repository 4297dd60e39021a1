// File: game/broadcaster_actor.go
package game

import (
	"go.uber.org/zap"

	"golang.org/x/net/websocket"

	"duelpong/actors"
)

// BroadcasterActor fans out snapshot frames to subscribed websocket clients.
// Connections that fail a write are dropped and closed; subscription churn
// and broadcasting serialize through the mailbox, so no lock is needed.
type BroadcasterActor struct {
	clients map[*websocket.Conn]string // conn -> client ID
	log     *zap.Logger
	selfPID *actors.PID
}

// NewBroadcasterProducer creates a producer for BroadcasterActor.
func NewBroadcasterProducer(log *zap.Logger) actors.Producer {
	if log == nil {
		log = zap.NewNop()
	}
	return func() actors.Actor {
		return &BroadcasterActor{
			clients: make(map[*websocket.Conn]string),
			log:     log,
		}
	}
}

// Receive handles messages for the BroadcasterActor.
func (a *BroadcasterActor) Receive(ctx actors.Context) {
	if a.selfPID == nil {
		a.selfPID = ctx.Self()
	}

	switch m := ctx.Message().(type) {
	case actors.Started:

	case AddClient:
		if m.Conn != nil {
			a.clients[m.Conn] = m.ID
			a.log.Info("client subscribed",
				zap.String("client", m.ID),
				zap.Int("clients", len(a.clients)),
			)
		}

	case RemoveClient:
		if m.Conn != nil {
			a.dropClient(m.Conn, false)
		}

	case BroadcastSnapshotCommand:
		a.broadcast(m.Snapshot)

	case actors.Stopping:
		for conn := range a.clients {
			a.dropClient(conn, true)
		}

	case actors.Stopped:

	default:
		a.log.Warn("broadcaster received unknown message", zap.Any("type", m))
	}
}

func (a *BroadcasterActor) broadcast(snap Snapshot) {
	var dead []*websocket.Conn
	for conn := range a.clients {
		if err := websocket.JSON.Send(conn, &snap); err != nil {
			dead = append(dead, conn)
		}
	}
	for _, conn := range dead {
		a.dropClient(conn, true)
	}
}

func (a *BroadcasterActor) dropClient(conn *websocket.Conn, close bool) {
	id, ok := a.clients[conn]
	if !ok {
		return
	}
	delete(a.clients, conn)
	if close {
		_ = conn.Close()
	}
	a.log.Info("client unsubscribed",
		zap.String("client", id),
		zap.Int("clients", len(a.clients)),
	)
}
