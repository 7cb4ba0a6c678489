package sdb

import (
	"encoding/binary"
	"os"
	"sync"
)

// File header: compressedSize:uint64, originalSize:uint64, both
// little-endian, followed by exactly compressedSize body bytes.
const fileHeaderLen = 16

// writeFile builds the complete file in memory and overwrites path in
// a single write. The previous file content is only touched once the
// new image has been fully serialized and compressed.
func writeFile(path string, c codec, tables []*table) error {
	image := appendImage(fetchBuffer(0)[:0], tables)
	defer releaseBuffer(image)

	body := c.Compress(image)

	buf := fetchBuffer(fileHeaderLen + len(body))
	defer releaseBuffer(buf)

	binary.LittleEndian.PutUint64(buf[0:8], uint64(len(body)))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(len(image)))
	copy(buf[fileHeaderLen:], body)

	return os.WriteFile(path, buf, 0o644)
}

// readFile loads and decodes a database file. A missing file is not an
// error: it yields a nil table set, meaning "create new". Decode
// failures surface as ErrCorrupted; other I/O failures propagate.
func readFile(path string, c codec) ([]*table, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	if len(data) < fileHeaderLen {
		return nil, ErrCorrupted
	}
	compressedSize := binary.LittleEndian.Uint64(data[0:8])
	originalSize := binary.LittleEndian.Uint64(data[8:16])
	if compressedSize != uint64(len(data)-fileHeaderLen) {
		return nil, ErrCorrupted
	}

	image, err := c.Decompress(data[fileHeaderLen:])
	if err != nil {
		return nil, err
	}
	if uint64(len(image)) != originalSize {
		return nil, ErrCorrupted
	}

	return decodeImage(image)
}

// --------------------------------------------------------------------

var bufPool sync.Pool

func fetchBuffer(sz int) []byte {
	if v := bufPool.Get(); v != nil {
		if p := v.([]byte); sz <= cap(p) {
			return p[:sz]
		}
	}
	return make([]byte, sz)
}

func releaseBuffer(p []byte) {
	if cap(p) != 0 {
		bufPool.Put(p)
	}
}
