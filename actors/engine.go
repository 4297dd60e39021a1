package actors

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// ErrTimeout is returned by Ask when the target does not respond in time.
var ErrTimeout = errors.New("actors: ask timed out")

// ErrNotFound is returned by Ask when the target PID is not registered.
var ErrNotFound = errors.New("actors: actor not found")

// Engine manages actor lifecycle and message dispatch.
type Engine struct {
	pidCounter uint64
	procs      map[string]*process
	mu         sync.RWMutex
	stopping   atomic.Bool
	log        *zap.Logger
}

// NewEngine creates an engine. A nil logger disables engine logging.
func NewEngine(log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		procs: make(map[string]*process),
		log:   log,
	}
}

func (e *Engine) nextPID() *PID {
	id := atomic.AddUint64(&e.pidCounter, 1)
	return &PID{ID: fmt.Sprintf("actor-%d", id)}
}

// Spawn creates and starts an actor, delivering Started as its first
// message. Returns nil if the engine is shutting down.
func (e *Engine) Spawn(props *Props) *PID {
	if e.stopping.Load() {
		e.log.Warn("spawn rejected, engine is stopping")
		return nil
	}

	pid := e.nextPID()
	proc := newProcess(e, pid, props)

	e.mu.Lock()
	e.procs[pid.ID] = proc
	e.mu.Unlock()

	go proc.run()
	proc.deliver(Started{}, nil, nil)
	return pid
}

// Send delivers a message to the actor's mailbox. Unknown PIDs and full
// mailboxes drop the message.
func (e *Engine) Send(pid *PID, message any, sender *PID) {
	if pid == nil {
		return
	}
	if e.stopping.Load() && !isSystemMessage(message) {
		return
	}

	e.mu.RLock()
	proc, ok := e.procs[pid.ID]
	e.mu.RUnlock()
	if ok {
		proc.deliver(message, sender, nil)
	}
}

// Ask delivers a message and blocks until the actor calls Respond on its
// context, the timeout elapses, or the actor is gone.
func (e *Engine) Ask(pid *PID, message any, timeout time.Duration) (any, error) {
	if pid == nil {
		return nil, ErrNotFound
	}
	e.mu.RLock()
	proc, ok := e.procs[pid.ID]
	e.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}

	replyCh := make(chan any, 1)
	proc.deliver(message, nil, replyCh)

	select {
	case reply := <-replyCh:
		return reply, nil
	case <-time.After(timeout):
		return nil, ErrTimeout
	}
}

// Stop asks an actor to shut down. Stopping is delivered through the
// mailbox, and the stop channel is closed so a full mailbox cannot wedge
// termination.
func (e *Engine) Stop(pid *PID) {
	if pid == nil {
		return
	}
	e.mu.RLock()
	proc, ok := e.procs[pid.ID]
	e.mu.RUnlock()
	if !ok {
		return
	}
	proc.deliver(Stopping{}, nil, nil)
	proc.signalStop()
}

func (e *Engine) remove(pid *PID) {
	e.mu.Lock()
	delete(e.procs, pid.ID)
	e.mu.Unlock()
}

// Shutdown stops every actor and waits up to timeout for them to exit.
func (e *Engine) Shutdown(timeout time.Duration) {
	if !e.stopping.CompareAndSwap(false, true) {
		return
	}

	e.mu.RLock()
	pids := make([]*PID, 0, len(e.procs))
	for _, proc := range e.procs {
		pids = append(pids, proc.pid)
	}
	e.mu.RUnlock()

	e.log.Info("engine shutdown", zap.Int("actors", len(pids)))
	for _, pid := range pids {
		e.Stop(pid)
	}

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		e.mu.RLock()
		remaining := len(e.procs)
		e.mu.RUnlock()
		if remaining == 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}

	e.mu.Lock()
	if len(e.procs) > 0 {
		e.log.Warn("actors did not stop before deadline", zap.Int("remaining", len(e.procs)))
		e.procs = make(map[string]*process)
	}
	e.mu.Unlock()
}

func isSystemMessage(message any) bool {
	switch message.(type) {
	case Started, Stopping, Stopped:
		return true
	}
	return false
}
