package domain

import "sync"

// MessageQueue is a fixed-capacity FIFO buffer of messages. Appending at
// capacity evicts the oldest entry. Append and Snapshot are safe to call
// concurrently; the queue encapsulates its own locking so callers never
// coordinate externally.
type MessageQueue struct {
	mu       sync.Mutex
	capacity int
	records  []Message
}

// DefaultQueueCapacity matches the reference deployment.
const DefaultQueueCapacity = 20

// NewMessageQueue creates a queue holding at most capacity messages.
// A non-positive capacity falls back to DefaultQueueCapacity.
func NewMessageQueue(capacity int) *MessageQueue {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &MessageQueue{
		capacity: capacity,
		records:  make([]Message, 0, capacity),
	}
}

// Append adds a message at the tail, dropping the head first if the queue
// is full.
func (q *MessageQueue) Append(msg Message) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.records) == q.capacity {
		copy(q.records, q.records[1:])
		q.records = q.records[:len(q.records)-1]
	}
	q.records = append(q.records, msg)
}

// Snapshot returns an ordered copy of the current contents. The queue is
// not drained: repeated snapshots return overlapping sets until eviction.
func (q *MessageQueue) Snapshot() []Message {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Message, len(q.records))
	copy(out, q.records)
	return out
}

// Len returns the current number of buffered messages.
func (q *MessageQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.records)
}

// Cap returns the fixed capacity.
func (q *MessageQueue) Cap() int {
	return q.capacity
}
