package sdb_test

import (
	"bytes"
	"math/rand"

	"github.com/Jotrorox/sdb"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("RunLength codec", func() {

	roundTrip := func(src []byte) []byte {
		packed := sdb.RLECompress(src)
		Expect(len(packed) % 2).To(Equal(0))

		plain, err := sdb.RLEDecompress(packed)
		Expect(err).NotTo(HaveOccurred())
		return plain
	}

	It("should round-trip empty input", func() {
		Expect(roundTrip(nil)).To(BeEmpty())
		Expect(sdb.RLECompress(nil)).To(BeEmpty())
	})

	It("should round-trip a single byte", func() {
		Expect(roundTrip([]byte{7})).To(Equal([]byte{7}))
		Expect(sdb.RLECompress([]byte{7})).To(Equal([]byte{1, 7}))
	})

	It("should round-trip input without repeats", func() {
		src := []byte("abcdefgh")
		Expect(roundTrip(src)).To(Equal(src))
		Expect(sdb.RLECompress(src)).To(HaveLen(2 * len(src)))
	})

	It("should cap runs at 255", func() {
		src := bytes.Repeat([]byte{42}, 10000)
		packed := sdb.RLECompress(src)
		Expect(packed).To(HaveLen(80)) // 2 * ceil(10000/255)
		Expect(roundTrip(src)).To(Equal(src))
	})

	It("should round-trip random input", func() {
		rnd := rand.New(rand.NewSource(1))
		src := make([]byte, 4096)
		for i := range src {
			src[i] = byte(rnd.Intn(4)) // force runs
		}
		Expect(roundTrip(src)).To(Equal(src))
	})

	It("should reject odd-length input", func() {
		_, err := sdb.RLEDecompress([]byte{3, 1, 9})
		Expect(err).To(MatchError(sdb.ErrCorrupted))
	})

	It("should expand zero-count pairs to nothing", func() {
		plain, err := sdb.RLEDecompress([]byte{0, 9, 2, 5})
		Expect(err).NotTo(HaveOccurred())
		Expect(plain).To(Equal([]byte{5, 5}))
	})
})

var _ = Describe("WindowedMatch codec", func() {

	roundTrip := func(src []byte) []byte {
		plain, err := sdb.LZDecompress(sdb.LZCompress(src))
		Expect(err).NotTo(HaveOccurred())
		return plain
	}

	It("should round-trip empty input", func() {
		Expect(roundTrip(nil)).To(BeEmpty())
		Expect(sdb.LZCompress(nil)).To(BeEmpty())
	})

	It("should encode short input as literals", func() {
		Expect(sdb.LZCompress([]byte("ab"))).To(Equal([]byte{0, 'a', 0, 'b'}))
		Expect(roundTrip([]byte("ab"))).To(Equal([]byte("ab")))
	})

	It("should round-trip overlapping self-references", func() {
		src := bytes.Repeat([]byte{9}, 1000)
		packed := sdb.LZCompress(src)
		Expect(len(packed)).To(BeNumerically("<", len(src)/10))
		Expect(roundTrip(src)).To(Equal(src))
	})

	It("should round-trip repeated patterns", func() {
		src := bytes.Repeat([]byte("key000value000"), 300)
		Expect(roundTrip(src)).To(Equal(src))
	})

	It("should round-trip matches beyond the window", func() {
		src := append(bytes.Repeat([]byte("x"), 2000), []byte("abcabcabc")...)
		Expect(roundTrip(src)).To(Equal(src))
	})

	It("should round-trip random input", func() {
		rnd := rand.New(rand.NewSource(33))
		src := make([]byte, 8192)
		_, err := rnd.Read(src)
		Expect(err).NotTo(HaveOccurred())
		Expect(roundTrip(src)).To(Equal(src))
	})

	It("should reject unknown tokens", func() {
		_, err := sdb.LZDecompress([]byte{2, 0})
		Expect(err).To(MatchError(sdb.ErrCorrupted))
	})

	It("should reject truncated tokens", func() {
		_, err := sdb.LZDecompress([]byte{0})
		Expect(err).To(MatchError(sdb.ErrCorrupted))

		_, err = sdb.LZDecompress([]byte{1, 1, 0})
		Expect(err).To(MatchError(sdb.ErrCorrupted))
	})

	It("should reject offsets before the output start", func() {
		_, err := sdb.LZDecompress([]byte{0, 'a', 1, 2, 0, 3})
		Expect(err).To(MatchError(sdb.ErrCorrupted))

		_, err = sdb.LZDecompress([]byte{1, 1, 0, 3})
		Expect(err).To(MatchError(sdb.ErrCorrupted))
	})

	It("should reject zero offsets", func() {
		_, err := sdb.LZDecompress([]byte{0, 'a', 1, 0, 0, 3})
		Expect(err).To(MatchError(sdb.ErrCorrupted))
	})
})
