package unitbuf_test

import (
	"github.com/cpppgo/wstring/internal/unitbuf"
	. "github.com/pamburus/go-tst/tst"

	"testing"
)

func TestZeroValue(tt *testing.T) {
	t := New(tt)

	var b unitbuf.Buffer[rune]
	t.Expect(b.Len()).To(BeZero())
	t.Expect(b.Cap()).To(BeZero())
	t.Expect(b.Raw() == nil).To(BeTrue())
}

func TestResize(tt *testing.T) {
	t := New(tt)

	t.Run("RoundsCapacityUpToQuantum", func(t Test) {
		for _, tc := range []struct {
			length   int
			capacity int
		}{
			{1, 10},
			{9, 10},
			{10, 20},
			{19, 20},
			{20, 30},
		} {
			var b unitbuf.Buffer[rune]
			t.Expect(b.Resize(tc.length)).ToNot(HaveOccurred())
			t.Expect(b.Len()).ToEqual(tc.length)
			t.Expect(b.Cap()).ToEqual(tc.capacity)
		}
	})

	t.Run("ReleasesStorageAtZeroLength", func(t Test) {
		b, err := unitbuf.Of([]rune("hello"))
		t.Expect(err).ToNot(HaveOccurred())
		t.Expect(b.Resize(0)).ToNot(HaveOccurred())
		t.Expect(b.Len()).To(BeZero())
		t.Expect(b.Cap()).To(BeZero())
		t.Expect(b.Raw() == nil).To(BeTrue())
	})

	t.Run("KeepsPrefixOnGrowth", func(t Test) {
		b, err := unitbuf.Of([]rune("abc"))
		t.Expect(err).ToNot(HaveOccurred())
		t.Expect(b.Resize(25)).ToNot(HaveOccurred())
		t.Expect(string(b.Units()[:3])).ToEqual("abc")
		t.Expect(b.Cap()).ToEqual(30)
	})

	t.Run("ZeroFillsTailAndTerminator", func(t Test) {
		b, err := unitbuf.Of([]rune("abcdefgh"))
		t.Expect(err).ToNot(HaveOccurred())
		t.Expect(b.Resize(3)).ToNot(HaveOccurred())

		raw := b.Raw()
		t.Expect(len(raw)).ToEqual(10)
		for i := 3; i < len(raw); i++ {
			t.Expect(raw[i]).To(BeZero())
		}
	})

	t.Run("RejectsNegativeLength", func(t Test) {
		var b unitbuf.Buffer[rune]
		t.Expect(b.Resize(-1)).To(Equal(unitbuf.ErrTooLarge))
	})

	t.Run("RejectsExcessiveLengthAndKeepsState", func(t Test) {
		b, err := unitbuf.Of([]rune("abc"))
		t.Expect(err).ToNot(HaveOccurred())
		t.Expect(b.Resize(unitbuf.MaxLen + 1)).To(Equal(unitbuf.ErrTooLarge))
		t.Expect(b.Len()).ToEqual(3)
		t.Expect(string(b.Units())).ToEqual("abc")
	})
}

func TestOf(tt *testing.T) {
	t := New(tt)

	src := []rune("abc")
	b, err := unitbuf.Of(src)
	t.Expect(err).ToNot(HaveOccurred())

	src[0] = 'x'
	t.Expect(string(b.Units())).ToEqual("abc")
}

func TestAdopt(tt *testing.T) {
	t := New(tt)

	src := []rune("abc")
	b := unitbuf.Adopt(src)
	t.Expect(b.Len()).ToEqual(3)

	src[0] = 'x'
	t.Expect(string(b.Units())).ToEqual("xbc")

	// The first resize restores the capacity invariants.
	t.Expect(b.Resize(4)).ToNot(HaveOccurred())
	t.Expect(b.Cap()).ToEqual(10)
	t.Expect(string(b.Units()[:3])).ToEqual("xbc")
}

func TestAt(tt *testing.T) {
	t := New(tt)

	b, err := unitbuf.Of([]rune("abc"))
	t.Expect(err).ToNot(HaveOccurred())

	u, ok := b.At(1)
	t.Expect(ok).To(BeTrue())
	t.Expect(u).ToEqual('b')

	_, ok = b.At(3)
	t.Expect(ok).To(BeFalse())
	_, ok = b.At(-1)
	t.Expect(ok).To(BeFalse())
}

func TestClone(tt *testing.T) {
	t := New(tt)

	b, err := unitbuf.Of([]rune("abc"))
	t.Expect(err).ToNot(HaveOccurred())

	c := b.Clone()
	c.Units()[0] = 'x'
	t.Expect(string(b.Units())).ToEqual("abc")
	t.Expect(string(c.Units())).ToEqual("xbc")
	t.Expect(c.Cap()).ToEqual(b.Cap())
}
