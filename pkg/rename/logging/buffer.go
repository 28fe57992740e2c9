package logging

import "sync"

// DefaultBufferSize is the default number of entries the console buffer keeps.
const DefaultBufferSize = 200

// Buffer holds recent log entries in a fixed-size ring for the diagnostic
// console. Oldest entries are overwritten once the buffer is full.
type Buffer struct {
	entries []Entry
	maxSize int
	start   int // index of oldest entry
	count   int
	mu      sync.RWMutex
}

// NewBuffer creates a buffer holding at most maxSize entries.
func NewBuffer(maxSize int) *Buffer {
	if maxSize <= 0 {
		maxSize = DefaultBufferSize
	}
	return &Buffer{
		entries: make([]Entry, maxSize),
		maxSize: maxSize,
	}
}

// Add appends an entry, evicting the oldest when full.
func (b *Buffer) Add(entry Entry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx := (b.start + b.count) % b.maxSize
	b.entries[idx] = entry

	if b.count < b.maxSize {
		b.count++
	} else {
		b.start = (b.start + 1) % b.maxSize
	}
}

// Entries returns a copy of all entries, oldest first.
func (b *Buffer) Entries() []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()

	result := make([]Entry, b.count)
	for i := 0; i < b.count; i++ {
		result[i] = b.entries[(b.start+i)%b.maxSize]
	}
	return result
}

// Len returns the number of entries currently buffered.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.count
}

// Clear removes all entries.
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.start = 0
	b.count = 0
}
