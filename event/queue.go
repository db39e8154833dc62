package event

import (
	"sync/atomic"

	"github.com/lixenwraith/word-catch/parameter"
)

// SampleQueue is a lock-free MPSC ring buffer carrying sensor samples to the frame loop
// Thread-Safety:
//   - Push: Lock-free CAS, multiple producers OK
//   - Consume: Single consumer (frame loop)
//   - Published flags prevent reading partial writes
//
// Overflow: Oldest samples overwritten when full
type SampleQueue struct {
	samples   [parameter.SampleQueueSize]SensorSample
	published [parameter.SampleQueueSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64                          // Read index
	tail      atomic.Uint64                          // Write index
	dropped   atomic.Uint64                          // Samples overwritten before being read
}

func NewSampleQueue() *SampleQueue {
	return &SampleQueue{}
}

// Push adds a sample using lock-free CAS with published flags pattern
// Safe for concurrent producers. O(1) amortized
func (q *SampleQueue) Push(s SensorSample) {
	for {
		currentTail := q.tail.Load()
		nextTail := currentTail + 1

		if q.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & parameter.SampleBufferMask

			q.samples[idx] = s
			q.published[idx].Store(true) // MUST be after write

			// Advance head if overwriting unread samples
			currentHead := q.head.Load()
			if nextTail-currentHead > parameter.SampleQueueSize {
				if q.head.CompareAndSwap(currentHead, nextTail-parameter.SampleQueueSize) {
					q.dropped.Add(nextTail - parameter.SampleQueueSize - currentHead)
				}
			}
			return
		}
	}
}

// Consume returns all pending samples in FIFO order and advances head
// Single-consumer design (frame loop). Checks published flags for safety
func (q *SampleQueue) Consume() []SensorSample {
	for {
		currentHead := q.head.Load()
		currentTail := q.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		maxAvailable := currentTail - currentHead
		if maxAvailable > parameter.SampleQueueSize {
			maxAvailable = parameter.SampleQueueSize
			currentHead = currentTail - parameter.SampleQueueSize
		}

		result := make([]SensorSample, 0, maxAvailable)
		for i := uint64(0); i < maxAvailable; i++ {
			idx := (currentHead + i) & parameter.SampleBufferMask

			if !q.published[idx].Load() {
				break // Writer incomplete
			}

			result = append(result, q.samples[idx])
			q.published[idx].Store(false)
		}

		newHead := currentHead + uint64(len(result))
		if q.head.CompareAndSwap(currentHead, newHead) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}

// Discard drops every pending sample, used when a round stops
func (q *SampleQueue) Discard() int {
	return len(q.Consume())
}

// Len returns approximate pending sample count
// Lock-free; used for pre-lock heuristics
func (q *SampleQueue) Len() int {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail <= head {
		return 0
	}
	diff := int(tail - head)
	if diff > parameter.SampleQueueSize {
		return parameter.SampleQueueSize
	}
	return diff
}

// Dropped returns the total number of samples lost to overflow
func (q *SampleQueue) Dropped() uint64 {
	return q.dropped.Load()
}
