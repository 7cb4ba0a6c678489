package sdb

import (
	"errors"
	"fmt"
)

// DB is a handle on an embedded database file. It owns an ordered
// collection of named tables which is held in memory for the lifetime
// of the handle and persisted back to disk as one compressed image.
//
// A DB must not be shared between goroutines without external
// synchronization, and the same file must not be opened by more than
// one handle at a time.
type DB struct {
	path   string
	opts   *Options
	codec  codec
	tables []*table

	saves  int
	closed bool
}

// Op is a single operation within a Batch.
type Op struct {
	Table string
	Key   []byte
	Value []byte
}

// Open opens the database file at path, loading its full content into
// memory. A missing file yields an empty database; so does a corrupted
// one, favouring availability over strict integrity.
func Open(path string, opts *Options) (*DB, error) {
	o := opts.norm()
	db := &DB{
		path:  path,
		opts:  o,
		codec: o.Compression.codec(),
	}

	tables, err := readFile(path, db.codec)
	if errors.Is(err, ErrCorrupted) {
		tables = nil
	} else if err != nil {
		return nil, err
	}
	db.tables = tables

	return db, nil
}

// Close releases the handle and the in-memory tree behind it. The
// handle must not be used after Close returns.
func (db *DB) Close() error {
	if db.closed {
		return errClosed
	}
	db.closed = true
	db.tables = nil
	return nil
}

// CreateTable adds a new, empty table.
func (db *DB) CreateTable(name string) error {
	if db.closed {
		return errClosed
	}
	if db.find(name) != nil {
		return fmt.Errorf("%w: %q", ErrDuplicateTable, name)
	}

	db.tables = append(db.tables, newTable(name))
	return db.autosave()
}

// DestroyTable removes a table together with all of its entries.
// After it returns the table is absent from lookups, from Tables and
// from the next save.
func (db *DB) DestroyTable(name string) error {
	if db.closed {
		return errClosed
	}

	for i, t := range db.tables {
		if t.name == name {
			db.tables = append(db.tables[:i], db.tables[i+1:]...)
			return db.autosave()
		}
	}
	return fmt.Errorf("%w: %q", ErrTableNotFound, name)
}

// Set stores a key/value pair in a table, replacing the value in place
// if the key already exists. Outside a batch every Set rewrites the
// whole file, unless autosave has been disabled.
func (db *DB) Set(tableName string, key, value []byte) error {
	if db.closed {
		return errClosed
	}

	t := db.find(tableName)
	if t == nil {
		return fmt.Errorf("%w: %q", ErrTableNotFound, tableName)
	}
	t.set(key, value)

	return db.autosave()
}

// Get retrieves the value stored under key. The returned slice is a
// copy and remains valid after subsequent mutations.
func (db *DB) Get(tableName string, key []byte) ([]byte, error) {
	if db.closed {
		return nil, errClosed
	}

	t := db.find(tableName)
	if t == nil {
		return nil, fmt.Errorf("%w: %q", ErrTableNotFound, tableName)
	}

	value, ok := t.get(key)
	if !ok {
		return nil, ErrNotFound
	}
	return copyBytes(value), nil
}

// Has reports whether key exists in a table, without copying the value.
func (db *DB) Has(tableName string, key []byte) (bool, error) {
	if db.closed {
		return false, errClosed
	}

	t := db.find(tableName)
	if t == nil {
		return false, fmt.Errorf("%w: %q", ErrTableNotFound, tableName)
	}
	_, ok := t.get(key)
	return ok, nil
}

// Batch applies a sequence of set operations in order, then persists
// the database exactly once. It is not atomic: an unknown table stops
// the batch, and the operations applied up to that point are kept and
// saved.
func (db *DB) Batch(ops []Op) error {
	if db.closed {
		return errClosed
	}

	var opErr error
	for _, op := range ops {
		t := db.find(op.Table)
		if t == nil {
			opErr = fmt.Errorf("%w: %q", ErrTableNotFound, op.Table)
			break
		}
		t.set(op.Key, op.Value)
	}

	if err := db.save(); err != nil && opErr == nil {
		return err
	}
	return opErr
}

// Save persists the current in-memory state, overwriting the file.
// Callers running with DisableAutosave use it as an explicit flush.
func (db *DB) Save() error {
	if db.closed {
		return errClosed
	}
	return db.save()
}

// Tables returns the table names in insertion order.
func (db *DB) Tables() []string {
	names := make([]string, 0, len(db.tables))
	for _, t := range db.tables {
		names = append(names, t.name)
	}
	return names
}

// Len returns the number of entries in a table.
func (db *DB) Len(tableName string) (int, error) {
	if db.closed {
		return 0, errClosed
	}

	t := db.find(tableName)
	if t == nil {
		return 0, fmt.Errorf("%w: %q", ErrTableNotFound, tableName)
	}
	return len(t.entries), nil
}

func (db *DB) find(name string) *table {
	for _, t := range db.tables {
		if t.name == name {
			return t
		}
	}
	return nil
}

func (db *DB) save() error {
	if err := writeFile(db.path, db.codec, db.tables); err != nil {
		return err
	}
	db.saves++
	return nil
}

func (db *DB) autosave() error {
	if db.opts.DisableAutosave {
		return nil
	}
	return db.save()
}
