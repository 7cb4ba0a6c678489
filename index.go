package sdb

import "bytes"

const (
	indexInitialCap = 16
	indexMaxLoad    = 0.7
)

// hashIndex maps keys to positions in a table's entry sequence using
// open addressing with linear probing. Slots hold positions only, never
// entries; the entry sequence remains the single owner of all data.
type hashIndex struct {
	slots []int // entry positions, -1 marks an empty slot
	used  int
}

func newHashIndex() *hashIndex {
	return &hashIndex{slots: emptySlots(indexInitialCap)}
}

func emptySlots(n int) []int {
	slots := make([]int, n)
	for i := range slots {
		slots[i] = -1
	}
	return slots
}

// Iterative polynomial hash with multiplier 33 over the key bytes.
func hashKey(key []byte) uint32 {
	var h uint32
	for _, b := range key {
		h = h*33 + uint32(b)
	}
	return h
}

// get probes for key and returns its position in entries.
// Probing stops at an empty slot (miss) or an equal key (hit).
func (x *hashIndex) get(entries []entry, key []byte) (int, bool) {
	slot := int(hashKey(key) % uint32(len(x.slots)))
	for i := 0; i < len(x.slots); i++ {
		pos := x.slots[slot]
		if pos < 0 {
			return 0, false
		}
		if bytes.Equal(entries[pos].key, key) {
			return pos, true
		}
		slot = (slot + 1) % len(x.slots)
	}
	return 0, false
}

// put claims a slot for a key that is known to be absent, growing the
// slot array first if the insert would push the load factor above the
// limit.
func (x *hashIndex) put(entries []entry, key []byte, pos int) {
	if float64(x.used+1) > indexMaxLoad*float64(len(x.slots)) {
		x.grow(entries)
	}

	slot := int(hashKey(key) % uint32(len(x.slots)))
	for x.slots[slot] >= 0 {
		slot = (slot + 1) % len(x.slots)
	}
	x.slots[slot] = pos
	x.used++
}

// grow doubles the capacity and rehashes every occupied slot.
func (x *hashIndex) grow(entries []entry) {
	old := x.slots
	x.slots = emptySlots(2 * len(old))
	x.used = 0

	for _, pos := range old {
		if pos >= 0 {
			x.put(entries, entries[pos].key, pos)
		}
	}
}
