package update

// DefaultCapacity is the minimum queue size
const DefaultCapacity = 10

// Sender is the producer side used by fetch workers
type Sender interface {
	TrySend(msg Message) bool
}

// Receiver is the consumer side polled by the UI thread
type Receiver interface {
	TryReceive() (Message, bool)
}

// Channel is a bounded FIFO of fetch results
type Channel struct {
	ch chan Message
}

// NewChannel creates a queue; capacities below DefaultCapacity are raised to it
func NewChannel(capacity int) *Channel {
	if capacity < DefaultCapacity {
		capacity = DefaultCapacity
	}
	return &Channel{ch: make(chan Message, capacity)}
}

// TrySend enqueues msg without blocking. It returns false if the queue is full.
func (c *Channel) TrySend(msg Message) bool {
	select {
	case c.ch <- msg:
		return true
	default:
		return false
	}
}

// TryReceive dequeues the oldest message without blocking
func (c *Channel) TryReceive() (Message, bool) {
	select {
	case msg := <-c.ch:
		return msg, true
	default:
		return Message{}, false
	}
}

// Len returns the number of queued messages
func (c *Channel) Len() int {
	return len(c.ch)
}

// Cap returns the queue capacity
func (c *Channel) Cap() int {
	return cap(c.ch)
}
