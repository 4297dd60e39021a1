// File: game/messages.go
package game

import (
	"encoding/json"
	"fmt"

	"golang.org/x/net/websocket"
)

// --- Actor messages (internal) ---

// GameTick tells the GameActor to advance the world by one fixed step.
type GameTick struct{}

// PlayerInputMessage carries one decoded key event for player 1.
type PlayerInputMessage struct {
	Event KeyEvent
}

// SnapshotRequest asks the GameActor for the current world snapshot (Ask).
// The reply is a Snapshot value.
type SnapshotRequest struct{}

// AddClient tells the Broadcaster to start sending frames to a connection.
type AddClient struct {
	ID   string
	Conn *websocket.Conn
}

// RemoveClient tells the Broadcaster to forget a connection.
type RemoveClient struct {
	Conn *websocket.Conn
}

// BroadcastSnapshotCommand carries a fresh snapshot from GameActor to the
// Broadcaster for fan-out.
type BroadcastSnapshotCommand struct {
	Snapshot Snapshot
}

// --- Wire format (client <-> server) ---

// InputFrame is the JSON frame a client sends to move its paddle, e.g.
// {"kind":"keydown","key":"up"}.
type InputFrame struct {
	Kind string `json:"kind"`
	Key  string `json:"key"`
}

// ParseInputFrame decodes a raw client frame into a KeyEvent.
func ParseInputFrame(payload []byte) (KeyEvent, error) {
	var frame InputFrame
	if err := json.Unmarshal(payload, &frame); err != nil {
		return KeyEvent{}, fmt.Errorf("decoding input frame: %w", err)
	}

	var ev KeyEvent
	switch frame.Kind {
	case "keydown":
		ev.Kind = KeyDown
	case "keyup":
		ev.Kind = KeyUp
	default:
		return KeyEvent{}, fmt.Errorf("unknown input kind %q", frame.Kind)
	}

	switch frame.Key {
	case "up":
		ev.Key = KeyMoveUp
	case "down":
		ev.Key = KeyMoveDown
	default:
		return KeyEvent{}, fmt.Errorf("unknown input key %q", frame.Key)
	}
	return ev, nil
}
