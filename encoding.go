package sdb

import "encoding/binary"

// The serialized image is a flat little-endian layout:
//
//	tableCount:int32
//	per table:  nameLen:int32, name, entryCount:int32
//	per entry:  keyLen:int32, valueLen:int32, key, value
//
// Tables and entries appear in insertion order, so decoding an image
// reconstructs the exact iteration order of the encoded database.

// appendImage encodes tables into dst and returns the grown slice.
func appendImage(dst []byte, tables []*table) []byte {
	dst = appendInt32(dst, len(tables))
	for _, t := range tables {
		dst = appendInt32(dst, len(t.name))
		dst = append(dst, t.name...)
		dst = appendInt32(dst, len(t.entries))

		for _, e := range t.entries {
			dst = appendInt32(dst, len(e.key))
			dst = appendInt32(dst, len(e.value))
			dst = append(dst, e.key...)
			dst = append(dst, e.value...)
		}
	}
	return dst
}

// decodeImage rebuilds tables from an image. Every length field is
// validated against the remaining buffer before it is used; an image
// that would read past its end yields ErrCorrupted.
func decodeImage(data []byte) ([]*table, error) {
	d := imageDecoder{data: data}

	tableCount, err := d.int32()
	if err != nil {
		return nil, err
	}

	var tables []*table
	for i := 0; i < tableCount; i++ {
		name, err := d.bytesField()
		if err != nil {
			return nil, err
		}
		t := newTable(string(name))

		entryCount, err := d.int32()
		if err != nil {
			return nil, err
		}
		for j := 0; j < entryCount; j++ {
			keyLen, err := d.int32()
			if err != nil {
				return nil, err
			}
			valueLen, err := d.int32()
			if err != nil {
				return nil, err
			}
			key, err := d.bytes(keyLen)
			if err != nil {
				return nil, err
			}
			value, err := d.bytes(valueLen)
			if err != nil {
				return nil, err
			}
			t.set(key, value)
		}
		tables = append(tables, t)
	}

	if d.pos != len(d.data) {
		return nil, ErrCorrupted
	}
	return tables, nil
}

func appendInt32(dst []byte, v int) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], uint32(int32(v)))
	return append(dst, tmp[:]...)
}

type imageDecoder struct {
	data []byte
	pos  int
}

func (d *imageDecoder) int32() (int, error) {
	if d.pos+4 > len(d.data) {
		return 0, ErrCorrupted
	}
	v := int32(binary.LittleEndian.Uint32(d.data[d.pos:]))
	if v < 0 {
		return 0, ErrCorrupted
	}
	d.pos += 4
	return int(v), nil
}

func (d *imageDecoder) bytes(n int) ([]byte, error) {
	if n > len(d.data)-d.pos {
		return nil, ErrCorrupted
	}
	p := d.data[d.pos : d.pos+n]
	d.pos += n
	return p, nil
}

func (d *imageDecoder) bytesField() ([]byte, error) {
	n, err := d.int32()
	if err != nil {
		return nil, err
	}
	return d.bytes(n)
}
