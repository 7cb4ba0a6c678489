package sdb

// entry is a single key/value pair. Keys are unique within a table.
type entry struct {
	key   []byte
	value []byte
}

// table is a named collection of entries. The entry slice defines both
// the on-disk and the iteration order (insertion order); the index
// backs key lookups without affecting that order.
type table struct {
	name    string
	entries []entry
	index   *hashIndex
}

func newTable(name string) *table {
	return &table{name: name, index: newHashIndex()}
}

// set stores a copy of key/value. An existing key has its value
// replaced in place; a new key is appended to the entry sequence and
// registered with the index.
func (t *table) set(key, value []byte) {
	if pos, ok := t.index.get(t.entries, key); ok {
		t.entries[pos].value = copyBytes(value)
		return
	}

	t.entries = append(t.entries, entry{
		key:   copyBytes(key),
		value: copyBytes(value),
	})
	t.index.put(t.entries, key, len(t.entries)-1)
}

func (t *table) get(key []byte) ([]byte, bool) {
	pos, ok := t.index.get(t.entries, key)
	if !ok {
		return nil, false
	}
	return t.entries[pos].value, true
}

func copyBytes(p []byte) []byte {
	return append(make([]byte, 0, len(p)), p...)
}
