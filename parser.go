// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsec

import "sync"

// Parser is a reusable parse computation from an input View to an Outcome.
//
// Implementations must be pure and repeatable: calling Parse twice with equal
// views yields equal Outcomes and has no observable side effects. Combinators
// rely on this to invoke a captured Parser any number of times.
//
// Parser is an open interface; new primitives are added by implementing it.
type Parser[T any] interface {
	Parse(in View) Outcome[T]
}

// ParserFunc adapts an ordinary function to the [Parser] interface.
type ParserFunc[T any] func(in View) Outcome[T]

// Parse calls f(in).
func (f ParserFunc[T]) Parse(in View) Outcome[T] {
	return f(in)
}

// New creates a Parser from a parse function.
// This is the primitive constructor for parsers that are not built from
// other parsers.
func New[T any](f func(in View) Outcome[T]) ParserFunc[T] {
	if f == nil {
		panic("parsec: nil parse function")
	}
	return ParserFunc[T](f)
}

// Return lifts a value into a Parser that succeeds with v on every input.
func Return[T any](v T) ParserFunc[T] {
	return func(View) Outcome[T] {
		return Success(v)
	}
}

// Fail returns a Parser that fails on every input.
func Fail[T any]() ParserFunc[T] {
	return func(View) Outcome[T] {
		return Failure[T]()
	}
}

// Lazy defers building a Parser until it is first used.
// This lets recursive parsers refer to themselves before they are defined.
// build is called at most once; panics if it returns nil.
func Lazy[T any](build func() Parser[T]) ParserFunc[T] {
	get := sync.OnceValue(func() Parser[T] {
		p := build()
		if p == nil {
			panic("parsec: lazy parser built nil")
		}
		return p
	})
	return func(in View) Outcome[T] {
		return get().Parse(in)
	}
}
