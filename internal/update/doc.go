package update

// Package update carries fetch results from worker goroutines to the UI
// thread over a bounded queue. Both ends are non-blocking: a full queue
// drops the message and an empty queue reports nothing.
