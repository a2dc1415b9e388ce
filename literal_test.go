// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsec_test

import (
	"testing"

	"code.hybscloud.com/parsec"
)

func TestMatchString(t *testing.T) {
	p := parsec.MatchString("+")
	if got := parsec.Run(p, "s"); got != parsec.Failure[string]() {
		t.Fatalf("got %v, want Failure", got)
	}
	if got := parsec.Run(p, "+"); got != parsec.Success("+") {
		t.Fatalf("got %v, want Success(+)", got)
	}
	if got := parsec.Run(p, "="); got != parsec.Failure[string]() {
		t.Fatalf("got %v, want Failure", got)
	}

	p = parsec.MatchString("abc")
	if got := parsec.Run(p, "abe"); got != parsec.Failure[string]() {
		t.Fatalf("got %v, want Failure", got)
	}
	if got := parsec.Run(p, "abcd"); got != parsec.Success("abc") {
		t.Fatalf("got %v, want Success(abc)", got)
	}
	if got := parsec.Run(p, "x"); got != parsec.Failure[string]() {
		t.Fatalf("got %v, want Failure", got)
	}
}

func TestMatchLiteral(t *testing.T) {
	cases := []struct {
		pattern string
		input   string
		ok      bool
	}{
		{"+", "s", false},
		{"+", "+", true},
		{"+", "=", false},
		{"abc", "abe", false},
		{"abc", "abcd", true},
		{"abc", "x", false},
		{"abc", "ab", false},
		{"abc", "", false},
		{"", "", true},
		{"", "anything", true},
		{"ABC", "abc", false},
		{"é", "é!", true},
	}
	for _, tc := range cases {
		got := parsec.Run(parsec.MatchLiteral(tc.pattern), tc.input)
		v, ok := got.Get()
		if ok != tc.ok {
			t.Fatalf("MatchLiteral(%q) on %q: got %v, want success=%v", tc.pattern, tc.input, got, tc.ok)
		}
		if ok && v.String() != tc.pattern {
			t.Fatalf("MatchLiteral(%q) on %q: got value %q", tc.pattern, tc.input, v.String())
		}
	}
}

func TestMatchLiteralViewsInput(t *testing.T) {
	in := parsec.NewView("--abcd").Slice(2, 6)
	v, ok := parsec.MatchLiteral("abc").Parse(in).Get()
	if !ok {
		t.Fatal("expected Success")
	}
	if v.Offset() != 2 || v.Len() != 3 {
		t.Fatalf("got view at %d len %d, want at 2 len 3", v.Offset(), v.Len())
	}
	if v.Source() != "--abcd" {
		t.Fatalf("got source %q, want the input buffer", v.Source())
	}
}

func TestMatchLiteralRepeatable(t *testing.T) {
	p := parsec.MatchLiteral("ab")
	in := parsec.NewView("abc")
	first := p.Parse(in)
	for range 10 {
		if got := p.Parse(in); got != first {
			t.Fatalf("got %v, want %v", got, first)
		}
	}
}
