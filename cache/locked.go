package cache

import "sync"

// Locked serialises access to a FaceCache so it can be shared between
// goroutines. Preparing takes the write lock; generating commands only
// reads and takes the read lock.
type Locked[T any] struct {
	mu sync.RWMutex
	c  *FaceCache[T]
}

// NewLocked wraps c. c must not be used directly afterwards.
func NewLocked[T any](c *FaceCache[T]) *Locked[T] {
	return &Locked[T]{c: c}
}

// PrepareString calls FaceCache.PrepareString under the write lock.
func (l *Locked[T]) PrepareString(s string) (Prepared, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.PrepareString(s)
}

// DrawingCommands calls FaceCache.DrawingCommands under the read lock.
func (l *Locked[T]) DrawingCommands(p Prepared) []DrawCommand[T] {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.c.DrawingCommands(p)
}

// DrawingCommandsPrepared prepares s and returns its commands atomically.
func (l *Locked[T]) DrawingCommandsPrepared(s string) ([]DrawCommand[T], error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.DrawingCommandsPrepared(s)
}

// Stats calls FaceCache.Stats under the read lock.
func (l *Locked[T]) Stats() Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.c.Stats()
}

// Do runs fn with exclusive access to the wrapped cache.
func (l *Locked[T]) Do(fn func(c *FaceCache[T])) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.c)
}
