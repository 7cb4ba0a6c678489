package sdb

import "github.com/golang/snappy"

// codec is a stateless compress/decompress strategy for the file body.
type codec interface {
	Compress(src []byte) []byte
	Decompress(src []byte) ([]byte, error)
}

func (c Compression) codec() codec {
	switch c {
	case RunLength:
		return runLengthCodec{}
	case WindowedMatch:
		return windowedCodec{}
	case SnappyCompression:
		return snappyCodec{}
	default:
		return rawCodec{}
	}
}

// --------------------------------------------------------------------

// rawCodec passes data through unchanged.
type rawCodec struct{}

func (rawCodec) Compress(src []byte) []byte { return src }

func (rawCodec) Decompress(src []byte) ([]byte, error) { return src, nil }

// --------------------------------------------------------------------

// runLengthCodec emits a (count, value) byte pair per maximal run of
// identical bytes, runs capped at 255. Output is always pair-aligned;
// input with no repeats doubles in size.
type runLengthCodec struct{}

func (runLengthCodec) Compress(src []byte) []byte {
	dst := make([]byte, 0, 2*len(src))
	for i := 0; i < len(src); {
		b := src[i]
		n := 1
		for i+n < len(src) && src[i+n] == b && n < 255 {
			n++
		}
		dst = append(dst, byte(n), b)
		i += n
	}
	return dst
}

func (runLengthCodec) Decompress(src []byte) ([]byte, error) {
	if len(src)%2 != 0 {
		return nil, ErrCorrupted
	}

	dst := make([]byte, 0, len(src))
	for i := 0; i < len(src); i += 2 {
		n, b := int(src[i]), src[i+1]
		for j := 0; j < n; j++ {
			dst = append(dst, b)
		}
	}
	return dst, nil
}

// --------------------------------------------------------------------

const (
	lzWindow   = 1024 // how far back a match may reference
	lzMinMatch = 3    // shorter matches cost more than the 4-byte token
	lzMaxMatch = 255  // length field is a single byte
)

// windowedCodec is an LZ77-style codec. A match token is
// [1, offsetLow, offsetHigh, length] with the offset little-endian and
// relative to the output cursor; a literal token is [0, byte]. Matches
// may overlap their own output (offset < length), which the
// byte-at-a-time copy in Decompress supports.
type windowedCodec struct{}

func (windowedCodec) Compress(src []byte) []byte {
	dst := make([]byte, 0, len(src))

	for pos := 0; pos < len(src); {
		bestLen, bestOff := 0, 0

		start := pos - lzWindow
		if start < 0 {
			start = 0
		}
		for i := start; i < pos; i++ {
			n := 0
			for n < lzMaxMatch && pos+n < len(src) && src[i+n] == src[pos+n] {
				n++
			}
			if n > bestLen {
				bestLen, bestOff = n, pos-i
			}
		}

		if bestLen >= lzMinMatch {
			dst = append(dst, 1, byte(bestOff), byte(bestOff>>8), byte(bestLen))
			pos += bestLen
		} else {
			dst = append(dst, 0, src[pos])
			pos++
		}
	}
	return dst
}

func (windowedCodec) Decompress(src []byte) ([]byte, error) {
	dst := make([]byte, 0, 2*len(src))

	for i := 0; i < len(src); {
		switch src[i] {
		case 0:
			if i+2 > len(src) {
				return nil, ErrCorrupted
			}
			dst = append(dst, src[i+1])
			i += 2
		case 1:
			if i+4 > len(src) {
				return nil, ErrCorrupted
			}
			off := int(src[i+1]) | int(src[i+2])<<8
			n := int(src[i+3])
			if off == 0 || off > len(dst) {
				return nil, ErrCorrupted
			}
			for j := 0; j < n; j++ {
				dst = append(dst, dst[len(dst)-off])
			}
			i += 4
		default:
			return nil, ErrCorrupted
		}
	}
	return dst, nil
}

// --------------------------------------------------------------------

// snappyCodec wraps github.com/golang/snappy.
type snappyCodec struct{}

func (snappyCodec) Compress(src []byte) []byte {
	return snappy.Encode(nil, src)
}

func (snappyCodec) Decompress(src []byte) ([]byte, error) {
	dst, err := snappy.Decode(nil, src)
	if err != nil {
		return nil, ErrCorrupted
	}
	return dst, nil
}
