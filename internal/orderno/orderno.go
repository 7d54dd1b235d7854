// Package orderno generates unique human-readable order numbers in the
// ORD-YYYYMMDD-NNNN format. The sequence is scoped per day and must come
// from an atomic source; deriving it from a row count races under
// concurrent creation.
package orderno

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Sequencer hands out the next per-day sequence number. The production
// implementation is the Redis client (INCR on a per-day key); MemorySequencer
// backs tests and local runs without Redis.
type Sequencer interface {
	NextOrderSequence(day time.Time) (int64, error)
}

type Generator struct {
	seq Sequencer
}

func NewGenerator(seq Sequencer) *Generator {
	return &Generator{seq: seq}
}

// Next returns a fresh order number for the current UTC day. When the
// sequence source is unavailable it falls back to a uuid-derived suffix so
// order creation never blocks on Redis; the fallback keeps the daily prefix
// but not the 4-digit shape.
func (g *Generator) Next() string {
	day := time.Now().UTC()
	if g.seq != nil {
		if n, err := g.seq.NextOrderSequence(day); err == nil {
			return Format(day, n)
		}
	}
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("ORD-%s-%s", day.Format("20060102"), suffix)
}

// Format renders the canonical ORD-YYYYMMDD-NNNN form.
func Format(day time.Time, n int64) string {
	return fmt.Sprintf("ORD-%s-%04d", day.Format("20060102"), n)
}

// MemorySequencer is an in-process Sequencer keyed by day.
type MemorySequencer struct {
	mu     sync.Mutex
	counts map[string]int64
}

func NewMemorySequencer() *MemorySequencer {
	return &MemorySequencer{counts: make(map[string]int64)}
}

func (m *MemorySequencer) NextOrderSequence(day time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := day.Format("20060102")
	m.counts[key]++
	return m.counts[key], nil
}
