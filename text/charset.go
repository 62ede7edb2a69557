package text

import (
	"iter"
	"slices"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Alphabet is the default character set of the example programs.
const Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Named character sets accepted by Charset.
var charsets = map[string]*unicode.RangeTable{
	"alphabet": rangetable.New([]rune(Alphabet)...),
	"digits":   {R16: []unicode.Range16{{Lo: '0', Hi: '9', Stride: 1}}, LatinOffset: 1},
	"ascii":    {R16: []unicode.Range16{{Lo: 0x20, Hi: 0x7e, Stride: 1}}, LatinOffset: 1},
	"latin1": {R16: []unicode.Range16{
		{Lo: 0x20, Hi: 0x7e, Stride: 1},
		{Lo: 0xa0, Hi: 0xff, Stride: 1},
	}, LatinOffset: 2},
	"greek":    unicode.Greek,
	"cyrillic": unicode.Cyrillic,
}

// Runes returns the characters of s in order, duplicates included.
func Runes(s string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range s {
			if !yield(r) {
				return
			}
		}
	}
}

// RangeChars returns every character of the merged tables in ascending order.
func RangeChars(tables ...*unicode.RangeTable) iter.Seq[rune] {
	rt := rangetable.Merge(tables...)
	return func(yield func(rune) bool) {
		stopped := false
		rangetable.Visit(rt, func(r rune) {
			if !stopped && !yield(r) {
				stopped = true
			}
		})
	}
}

// Charset returns the named character set. Known names are listed by
// CharsetNames.
func Charset(name string) (*unicode.RangeTable, bool) {
	rt, ok := charsets[name]
	return rt, ok
}

// CharsetNames returns the names accepted by Charset, sorted.
func CharsetNames() []string {
	names := make([]string, 0, len(charsets))
	for name := range charsets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
