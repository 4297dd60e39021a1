// File: actors/process.go
package actors

import (
	"sync/atomic"

	"go.uber.org/zap"
)

const mailboxSize = 1024

// process is the running instance of an actor: its goroutine, mailbox, and
// stop state.
type process struct {
	engine  *Engine
	pid     *PID
	props   *Props
	actor   Actor
	mailbox chan *envelope
	stopCh  chan struct{}
	stopped atomic.Bool
}

func newProcess(engine *Engine, pid *PID, props *Props) *process {
	return &process{
		engine:  engine,
		pid:     pid,
		props:   props,
		mailbox: make(chan *envelope, mailboxSize),
		stopCh:  make(chan struct{}),
	}
}

// deliver enqueues a message without blocking; a full mailbox drops it.
func (p *process) deliver(message any, sender *PID, replyCh chan<- any) {
	if p.stopped.Load() && !isSystemMessage(message) {
		return
	}
	env := &envelope{sender: sender, message: message, replyCh: replyCh}
	select {
	case p.mailbox <- env:
	default:
		p.engine.log.Warn("mailbox full, dropping message",
			zap.String("actor", p.pid.ID),
			zap.Any("type", message),
		)
	}
}

func (p *process) signalStop() {
	select {
	case <-p.stopCh:
	default:
		close(p.stopCh)
	}
}

// run is the actor's goroutine: create the instance, drain the mailbox,
// deliver Stopped on the way out.
func (p *process) run() {
	defer func() {
		p.stopped.Store(true)
		if p.actor != nil {
			p.invoke(&envelope{message: Stopped{}})
		}
		p.engine.remove(p.pid)
	}()
	defer func() {
		if r := recover(); r != nil {
			p.engine.log.Error("actor panicked",
				zap.String("actor", p.pid.ID),
				zap.Any("reason", r),
			)
			p.stopped.Store(true)
			p.signalStop()
		}
	}()

	p.actor = p.props.Produce()

	for {
		select {
		case <-p.stopCh:
			if p.stopped.CompareAndSwap(false, true) {
				p.invoke(&envelope{message: Stopping{}})
			}
			return

		case env := <-p.mailbox:
			if p.stopped.Load() && !isSystemMessage(env.message) {
				continue
			}
			switch env.message.(type) {
			case Stopping:
				if p.stopped.CompareAndSwap(false, true) {
					p.invoke(env)
					p.signalStop()
				}
			default:
				p.invoke(env)
			}
		}
	}
}

// invoke calls Receive with panic isolation so one bad message cannot take
// the whole process loop down silently.
func (p *process) invoke(env *envelope) {
	ctx := &actorContext{
		engine:  p.engine,
		self:    p.pid,
		sender:  env.sender,
		message: env.message,
		replyCh: env.replyCh,
	}
	defer func() {
		if r := recover(); r != nil {
			p.engine.log.Error("actor panicked in Receive",
				zap.String("actor", p.pid.ID),
				zap.Any("reason", r),
			)
		}
	}()
	p.actor.Receive(ctx)
}
