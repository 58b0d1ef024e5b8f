package tracelog

import (
	"strings"
	"sync"
)

// DefaultHistorySize is the number of records kept for diagnostic dumps.
const DefaultHistorySize = 20

// History is a fixed-capacity ring of the most recent records. When full,
// recording a new entry evicts the oldest one.
//
// Thread safety:
//
//	All methods are safe for concurrent use; each holds the same mutex for
//	the whole mutation or read.
type History struct {
	mu      sync.Mutex
	records []Record
	start   int
	size    int
}

// NewHistory creates a History holding at most capacity records.
// A non-positive capacity falls back to DefaultHistorySize.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistorySize
	}
	return &History{records: make([]Record, capacity)}
}

// Record appends r, evicting the oldest record if the ring is full.
func (h *History) Record(r Record) {
	h.mu.Lock()
	defer h.mu.Unlock()

	capacity := len(h.records)
	if h.size < capacity {
		h.records[(h.start+h.size)%capacity] = r
		h.size++
		return
	}
	h.records[h.start] = r
	h.start = (h.start + 1) % capacity
}

// Records returns a snapshot of the retained records, oldest first.
func (h *History) Records() []Record {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]Record, h.size)
	for i := 0; i < h.size; i++ {
		out[i] = h.records[(h.start+i)%len(h.records)]
	}
	return out
}

// Dump renders every retained record through format, oldest first, joined
// by newlines. An empty history dumps as "".
//
// Records are copied under the lock and formatted after it is released, so
// format may record into the same History.
func (h *History) Dump(format func(Record) string) string {
	records := h.Records()
	if len(records) == 0 {
		return ""
	}

	var builder strings.Builder
	for i, r := range records {
		if i > 0 {
			builder.WriteByte('\n')
		}
		builder.WriteString(format(r))
	}
	return builder.String()
}

// Len returns the number of retained records.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.size
}

// Cap returns the maximum number of records retained.
func (h *History) Cap() int {
	return len(h.records)
}
