package domain

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func makeMessage(id int) Message {
	return NewMessage(100, "testgroup", id, 42, fmt.Sprintf("message %d", id), time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local))
}

func TestQueueAppendBelowCapacity(t *testing.T) {
	q := NewMessageQueue(20)

	for i := 1; i <= 5; i++ {
		q.Append(makeMessage(i))
	}

	if q.Len() != 5 {
		t.Errorf("Expected 5 records, got %d", q.Len())
	}

	snapshot := q.Snapshot()
	for i, msg := range snapshot {
		if msg.MessageID != i+1 {
			t.Errorf("Expected message %d at position %d, got %d", i+1, i, msg.MessageID)
		}
	}
}

func TestQueueEvictsOldestAtCapacity(t *testing.T) {
	q := NewMessageQueue(20)

	// 25 appends into capacity 20 leaves exactly messages 6-25 in order
	for i := 1; i <= 25; i++ {
		q.Append(makeMessage(i))
	}

	if q.Len() != 20 {
		t.Fatalf("Expected 20 records, got %d", q.Len())
	}

	snapshot := q.Snapshot()
	for i, msg := range snapshot {
		if msg.MessageID != i+6 {
			t.Errorf("Expected message %d at position %d, got %d", i+6, i, msg.MessageID)
		}
	}
}

func TestQueueLengthNeverExceedsCapacity(t *testing.T) {
	q := NewMessageQueue(3)

	for i := 1; i <= 10; i++ {
		q.Append(makeMessage(i))
		if q.Len() > 3 {
			t.Fatalf("Queue length %d exceeds capacity 3 after %d appends", q.Len(), i)
		}
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	q := NewMessageQueue(20)
	q.Append(makeMessage(1))
	q.Append(makeMessage(2))

	snapshot := q.Snapshot()

	// Later appends must not alter a previously taken snapshot
	for i := 3; i <= 30; i++ {
		q.Append(makeMessage(i))
	}
	if len(snapshot) != 2 {
		t.Fatalf("Snapshot length changed, got %d", len(snapshot))
	}
	if snapshot[0].MessageID != 1 || snapshot[1].MessageID != 2 {
		t.Errorf("Snapshot contents changed: %+v", snapshot)
	}

	// Mutating the snapshot must not alter the queue
	snapshot[0].Text = "mutated"
	fresh := q.Snapshot()
	for _, msg := range fresh {
		if msg.Text == "mutated" {
			t.Error("Mutating a snapshot leaked into the queue")
		}
	}
}

func TestSnapshotOfEmptyQueue(t *testing.T) {
	q := NewMessageQueue(20)

	snapshot := q.Snapshot()
	if snapshot == nil {
		t.Fatal("Expected non-nil snapshot for empty queue")
	}
	if len(snapshot) != 0 {
		t.Errorf("Expected empty snapshot, got %d records", len(snapshot))
	}
}

func TestQueueDefaultCapacity(t *testing.T) {
	q := NewMessageQueue(0)
	if q.Cap() != DefaultQueueCapacity {
		t.Errorf("Expected default capacity %d, got %d", DefaultQueueCapacity, q.Cap())
	}
}

func TestQueueConcurrentAppendAndSnapshot(t *testing.T) {
	q := NewMessageQueue(20)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			q.Append(makeMessage(i))
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			snapshot := q.Snapshot()
			if len(snapshot) > 20 {
				t.Errorf("Snapshot length %d exceeds capacity", len(snapshot))
				return
			}
		}
	}()

	wg.Wait()

	if q.Len() != 20 {
		t.Errorf("Expected full queue after 500 appends, got %d", q.Len())
	}
}
