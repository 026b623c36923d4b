package wstring_test

import (
	"github.com/cpppgo/wstring"
	. "github.com/pamburus/go-tst/tst"

	"testing"
)

func TestClassify(tt *testing.T) {
	t := New(tt)

	type testCase struct {
		input string
		want  bool
	}

	run := func(t Test, pred func(wstring.String) bool, cases []testCase) {
		for _, tc := range cases {
			t.Run(tc.input, func(t Test) {
				t.Expect(pred(wstring.From(tc.input))).ToEqual(tc.want)
			})
		}
	}

	t.Run("IsAlpha", func(t Test) {
		run(t, wstring.String.IsAlpha, []testCase{
			{"hello", true},
			{"héllo", true},
			{"hello1", false},
			{"hello world", false},
			{"", false},
		})
	})

	t.Run("IsDecimal", func(t Test) {
		run(t, wstring.String.IsDecimal, []testCase{
			{"123", true},
			{"١٢٣", true},
			{"½", false},
			{"12.3", false},
			{"", false},
		})
	})

	t.Run("IsDigit", func(t Test) {
		run(t, wstring.String.IsDigit, []testCase{
			{"123", true},
			{"²", true},
			{"Ⅻ", false},
			{"", false},
		})
	})

	t.Run("IsNumeric", func(t Test) {
		run(t, wstring.String.IsNumeric, []testCase{
			{"123", true},
			{"½", true},
			{"Ⅻ", true},
			{"12a", false},
			{"", false},
		})
	})

	t.Run("IsAlnum", func(t Test) {
		run(t, wstring.String.IsAlnum, []testCase{
			{"abc123", true},
			{"abc 123", false},
			{"", false},
		})
	})

	t.Run("IsLower", func(t Test) {
		run(t, wstring.String.IsLower, []testCase{
			{"hello", true},
			{"Hello", false},
			{"hello world", false},
			{"", false},
		})
	})

	t.Run("IsUpper", func(t Test) {
		run(t, wstring.String.IsUpper, []testCase{
			{"HELLO", true},
			{"Hello", false},
			{"", false},
		})
	})

	t.Run("IsSpace", func(t Test) {
		run(t, wstring.String.IsSpace, []testCase{
			{" \t\n", true},
			{" x ", false},
			{"", false},
		})
	})

	t.Run("IsASCII", func(t Test) {
		run(t, wstring.String.IsASCII, []testCase{
			{"hello", true},
			{"", true},
			{"héllo", false},
		})
	})

	t.Run("IsPrintable", func(t Test) {
		run(t, wstring.String.IsPrintable, []testCase{
			{"hello world", true},
			{"hello", true},
			{"a\tb", false},
			{"", false},
		})
	})

	t.Run("IsTitle", func(t Test) {
		run(t, wstring.String.IsTitle, []testCase{
			{"Hello World", true},
			{"Hello world", false},
			{"HELLO", false},
			{"hello", false},
			{"Hello-World", true},
			{"123", false},
			{"", false},
		})
	})
}
