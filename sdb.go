package sdb

import "errors"

// Version of the file format produced by this package.
const Version = "0.1.0"

// ErrNotFound is returned by Get when a key cannot be found. It is a
// valid lookup outcome, not a failure of the store.
var ErrNotFound = errors.New("sdb: not found")

// ErrTableNotFound is returned when an operation names a table that
// does not exist in the database.
var ErrTableNotFound = errors.New("sdb: table not found")

// ErrDuplicateTable is returned by CreateTable when a table with the
// same name already exists.
var ErrDuplicateTable = errors.New("sdb: duplicate table name")

// ErrCorrupted is returned when on-disk data cannot be decoded: a size
// mismatch in the file header, a malformed compression token, or a
// length field that overruns the serialized image.
var ErrCorrupted = errors.New("sdb: corrupted data")

var errClosed = errors.New("sdb: is closed")

// --------------------------------------------------------------------

// Compression is the compression codec applied to the serialized
// image before it is written to disk.
type Compression byte

// Supported compression codecs.
const (
	NoCompression Compression = iota
	RunLength
	WindowedMatch
	SnappyCompression
	unknownCompression
)

func (c Compression) isValid() bool {
	return c < unknownCompression
}

// --------------------------------------------------------------------

// Options define database specific options.
type Options struct {
	// The compression codec applied to the file body.
	// Default: NoCompression.
	Compression Compression

	// DisableAutosave turns off the write-through policy under which
	// every mutation outside a batch rewrites the file. When set, the
	// database is only persisted by Batch and by explicit Save calls.
	DisableAutosave bool
}

func (o *Options) norm() *Options {
	var oo Options
	if o != nil {
		oo = *o
	}

	if !oo.Compression.isValid() {
		oo.Compression = NoCompression
	}
	return &oo
}
