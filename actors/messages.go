package actors

// Started is delivered to an actor after its goroutine has started, before
// any user message.
type Started struct{}

// Stopping signals the actor to finish up; no user messages follow it.
type Stopping struct{}

// Stopped is the final message an actor receives before its goroutine exits.
type Stopped struct{}

// envelope wraps a user message with its sender and, for Ask, a reply slot.
type envelope struct {
	sender  *PID
	message any
	replyCh chan<- any
}
