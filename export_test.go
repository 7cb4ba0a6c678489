package sdb

// Hooks for the external test suite.

var (
	RLECompress   = runLengthCodec{}.Compress
	RLEDecompress = runLengthCodec{}.Decompress
	LZCompress    = windowedCodec{}.Compress
	LZDecompress  = windowedCodec{}.Decompress
)

// SaveCount reports how many times the handle has rewritten its file.
func (db *DB) SaveCount() int { return db.saves }
