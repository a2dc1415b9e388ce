// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsec

import "strings"

// View is a read-only window [start, end) over a caller-owned buffer.
//
// A View never copies the buffer: String and Slice return sub-strings that
// share the buffer's memory. Views carried inside an Outcome point into the
// same buffer as the input they were produced from.
type View struct {
	src        string
	start, end int
}

// NewView returns a View covering all of s.
func NewView(s string) View {
	return View{src: s, start: 0, end: len(s)}
}

// Len returns the length of the view in bytes.
func (v View) Len() int {
	return v.end - v.start
}

// String returns the viewed bytes as a string sharing the buffer's memory.
func (v View) String() string {
	return v.src[v.start:v.end]
}

// Offset returns the start of the view within its buffer.
func (v View) Offset() int {
	return v.start
}

// Source returns the whole buffer the view points into.
func (v View) Source() string {
	return v.src
}

// HasPrefix reports whether the view begins with pattern, byte for byte.
func (v View) HasPrefix(pattern string) bool {
	return strings.HasPrefix(v.String(), pattern)
}

// Slice returns the sub-view [i, j) relative to v.
// Panics if 0 <= i <= j <= v.Len() does not hold.
func (v View) Slice(i, j int) View {
	if i < 0 || j < i || j > v.Len() {
		panic("parsec: view slice out of range")
	}
	return View{src: v.src, start: v.start + i, end: v.start + j}
}

// Equal reports whether v and other view the same content.
// Position and buffer identity are ignored.
func (v View) Equal(other View) bool {
	return v.String() == other.String()
}
