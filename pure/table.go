package pure

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

type entry[O any] struct {
	key string
	val O
}

// Table is a bounded memo table made of two generations.
// New values go to the head generation. When the head is full the
// generations rotate: the tail is discarded and the old head becomes the tail.
type Table[O any] struct {
	mu      sync.RWMutex
	gens    [2]map[uint64]entry[O]
	headIdx int
	maxSize int
}

func NewTable[O any](maxSize int) *Table[O] {
	if maxSize <= 0 {
		panic("maxSize should be greater than 0")
	}
	return &Table[O]{
		gens:    [2]map[uint64]entry[O]{make(map[uint64]entry[O]), make(map[uint64]entry[O])},
		maxSize: maxSize,
	}
}

func (t *Table[O]) Load(key string) (O, bool) {
	digest := xxhash.Sum64String(key)

	t.mu.RLock()
	e, ok := t.gens[t.headIdx][digest]
	if ok && e.key == key {
		t.mu.RUnlock()
		return e.val, true
	}
	e, ok = t.gens[1-t.headIdx][digest]
	t.mu.RUnlock()

	if !ok || e.key != key {
		var zero O
		return zero, false
	}
	t.promote(digest, e)
	return e.val, true
}

// promote moves a tail hit into the head so hot keys survive the next rotation.
func (t *Table[O]) promote(digest uint64, e entry[O]) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if cur, ok := t.gens[1-t.headIdx][digest]; ok && cur.key == e.key {
		delete(t.gens[1-t.headIdx], digest)
	}
	t.storeLocked(digest, e)
}

func (t *Table[O]) Store(key string, value O) {
	digest := xxhash.Sum64String(key)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.storeLocked(digest, entry[O]{key: key, val: value})
}

func (t *Table[O]) storeLocked(digest uint64, e entry[O]) {
	head := t.gens[t.headIdx]
	if _, exists := head[digest]; !exists && len(head) >= t.maxSize {
		t.headIdx = 1 - t.headIdx
		t.gens[t.headIdx] = make(map[uint64]entry[O], t.maxSize)
		head = t.gens[t.headIdx]
	}
	head[digest] = e
}

// Len counts entries across both generations. A key re-stored while it
// still sits in the tail is counted twice until the next rotation.
func (t *Table[O]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.gens[0]) + len(t.gens[1])
}
