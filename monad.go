// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsec

// Combinators for parsers.
//
// Minimal definition: Return (unit) and Bind are necessary and sufficient.
// Map, Then and Ensure are derived and only build new parsers; nothing is
// parsed until Parse is called on the result.

// Bind sequences a parse decision after p (and-then).
// The resulting parser runs p, then passes its value to f. A Failure from p
// propagates unchanged and f is not called.
func Bind[T, S any](p Parser[T], f func(T) Outcome[S]) ParserFunc[S] {
	return func(in View) Outcome[S] {
		return BindOutcome(p.Parse(in), f)
	}
}

// Map applies a pure function to the value of p.
// A Failure from p propagates unchanged and f is not called.
func Map[T, S any](p Parser[T], f func(T) S) ParserFunc[S] {
	return func(in View) Outcome[S] {
		return MapOutcome(p.Parse(in), f)
	}
}

// Then runs q on the same input once p has succeeded, discarding p's value.
// Both parsers see the whole input; Then does not advance past p's match.
func Then[T, S any](p Parser[T], q Parser[S]) ParserFunc[S] {
	return func(in View) Outcome[S] {
		if p.Parse(in).IsFailure() {
			return Failure[S]()
		}
		return q.Parse(in)
	}
}

// Ensure fails when pred rejects the value of p.
func Ensure[T any](p Parser[T], pred func(T) bool) ParserFunc[T] {
	return func(in View) Outcome[T] {
		o := p.Parse(in)
		if v, ok := o.Get(); ok && !pred(v) {
			return Failure[T]()
		}
		return o
	}
}
