// Package lineedit holds the single line of text the user is typing.
//
// Text is kept in Unicode normalization form C, so a base letter followed
// by a combining mark is stored (and rendered) as the precomposed
// character when one exists. Deletion removes whole grapheme clusters.
package lineedit

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// Buffer is an editable line of text. The zero value is an empty buffer
// ready to use. Buffer is not safe for concurrent use.
type Buffer struct {
	text string
}

// New returns a buffer holding s.
func New(s string) *Buffer {
	b := &Buffer{}
	b.Append(s)
	return b
}

// Append adds s to the end of the line and reports whether the text
// changed. Control characters, including newlines, are dropped.
func (b *Buffer) Append(s string) bool {
	s = strings.Map(dropControl, s)
	if s == "" {
		return false
	}
	// Normalize across the join: s may start with a combining mark.
	next := norm.NFC.String(b.text + s)
	if next == b.text {
		return false
	}
	b.text = next
	return true
}

// DeleteLast removes the last user-perceived character and reports
// whether there was one to remove.
func (b *Buffer) DeleteLast() bool {
	if b.text == "" {
		return false
	}
	b.text = b.text[:lastClusterStart(b.text)]
	return true
}

// Submit returns the current line and clears the buffer.
func (b *Buffer) Submit() string {
	s := b.text
	b.text = ""
	return s
}

// String returns the current line.
func (b *Buffer) String() string {
	return b.text
}

// Len returns the number of grapheme clusters in the line.
func (b *Buffer) Len() int {
	return uniseg.GraphemeClusterCount(b.text)
}

// lastClusterStart returns the byte offset where the final grapheme
// cluster of s begins.
func lastClusterStart(s string) int {
	var (
		start, offset int
		state         = -1
	)
	rest := s
	for rest != "" {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		start = offset
		offset += len(cluster)
	}
	return start
}

func dropControl(r rune) rune {
	if unicode.IsControl(r) {
		return -1
	}
	return r
}
