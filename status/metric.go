package status

import (
	"math"
	"slices"
	"sync"
	"sync/atomic"
)

// Gauge is a float64 metric stored as its IEEE-754 bits
type Gauge struct {
	bits atomic.Uint64
}

func (g *Gauge) Set(v float64) {
	g.bits.Store(math.Float64bits(v))
}

func (g *Gauge) Get() float64 {
	return math.Float64frombits(g.bits.Load())
}

// Add returns the updated value
func (g *Gauge) Add(delta float64) float64 {
	for {
		old := g.bits.Load()
		next := math.Float64frombits(old) + delta
		if g.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}

// MetricMap hands out one stable *T per key
// Lookups of existing keys are lock-free; the first Get of a key allocates under mu
type MetricMap[T any] struct {
	items sync.Map // string -> *T

	mu   sync.Mutex
	keys []string // sorted
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{}
}

// Get returns the metric for key, creating it on first use
func (m *MetricMap[T]) Get(key string) *T {
	if v, ok := m.items.Load(key); ok {
		return v.(*T)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	v, loaded := m.items.LoadOrStore(key, new(T))
	if !loaded {
		i, _ := slices.BinarySearch(m.keys, key)
		m.keys = slices.Insert(m.keys, i, key)
	}
	return v.(*T)
}

// Keys returns registered keys in ascending order
func (m *MetricMap[T]) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.keys)
}

// Range visits every metric in key order
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	for _, k := range m.Keys() {
		v, _ := m.items.Load(k)
		fn(k, v.(*T))
	}
}

func (m *MetricMap[T]) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.keys)
}
