// Package actors is a minimal actor engine: each actor runs on its own
// goroutine and processes its mailbox sequentially, which makes an actor a
// natural single-writer boundary around mutable state.
package actors

// Actor processes messages delivered one at a time from its mailbox.
type Actor interface {
	Receive(ctx Context)
}

// Producer creates a fresh actor instance for Spawn.
type Producer func() Actor

// Props configures actor creation.
type Props struct {
	producer Producer
}

// NewProps wraps a producer for Spawn.
func NewProps(producer Producer) *Props {
	if producer == nil {
		panic("actors: producer cannot be nil")
	}
	return &Props{producer: producer}
}

// Produce creates a new actor instance.
func (p *Props) Produce() Actor {
	return p.producer()
}

// PID is a unique reference to a running actor.
type PID struct {
	ID string
}

func (pid *PID) String() string {
	if pid == nil {
		return "<nil>"
	}
	return pid.ID
}

// Context is handed to an actor for each message it processes.
type Context interface {
	// Engine returns the engine running this actor.
	Engine() *Engine
	// Self returns the PID of the receiving actor.
	Self() *PID
	// Sender returns the PID of the sending actor, if known.
	Sender() *PID
	// Message returns the message being processed.
	Message() any
	// Respond replies to an Ask that carried this message. It is a no-op
	// for plain Sends.
	Respond(reply any)
}

type actorContext struct {
	engine  *Engine
	self    *PID
	sender  *PID
	message any
	replyCh chan<- any
}

func (c *actorContext) Engine() *Engine { return c.engine }
func (c *actorContext) Self() *PID      { return c.self }
func (c *actorContext) Sender() *PID    { return c.sender }
func (c *actorContext) Message() any    { return c.message }

func (c *actorContext) Respond(reply any) {
	if c.replyCh == nil {
		return
	}
	select {
	case c.replyCh <- reply:
	default:
	}
}
