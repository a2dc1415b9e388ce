// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package parsec provides a minimal parser-combinator core in Go.
//
// A parser is a small pure function from an input [View] to an [Outcome].
// Larger parsers are built by combining smaller ones with combinator
// functions rather than by writing state machines by hand.
//
// # Outcome
//
// [Outcome] represents the result of one parse attempt: Success carrying a
// value, or Failure carrying nothing. Failure has no position or message.
//
//   - [Success], [Failure]: Constructors
//   - [Outcome.IsSuccess], [Outcome.IsFailure], [Outcome.Get], [Outcome.ValueOr]: Accessors
//   - [MatchOutcome]: Pattern matching
//   - [MapOutcome]: Functor map over Success
//   - [BindOutcome]: Monadic bind (and-then)
//
// # Parser
//
// [Parser] is an open single-method interface, so new primitives can be
// written as ordinary types. [ParserFunc] adapts a plain function.
//
// Minimal operations:
//
//   - [Return]: Succeed with a value on every input
//   - [Bind]: Sequence a parse decision after a parser (and-then)
//
// Derived operations:
//
//   - [Map]: Apply a function to the value (equivalent to Bind(p, func(a) Success(f(a))))
//   - [Then]: Run a second parser on the same input, discarding the first value
//   - [Ensure]: Fail when a predicate rejects the value
//   - [Fail]: Fail on every input
//   - [Lazy]: Defer construction, for recursive parsers
//
// Execution:
//
//   - [Parser.Parse]: Run against a [View]
//   - [Run]: Run against a whole string
//   - [RunWith]: Run and fold the Outcome
//
// Combinators only build parsers. Nothing is parsed until Parse is called.
// Map and Bind obey the functor and monad laws with [Success] as unit.
//
// # Literal Matching
//
//   - [MatchLiteral]: Byte-wise prefix match carrying a View into the input
//   - [MatchString]: Byte-wise prefix match carrying the pattern
//
// A literal match does not report how much input it consumed:
// MatchLiteral("abc") succeeds on "abcd" and the trailing "d" is never
// examined. Parsers therefore cannot be chained over "the rest of the input"
// with the operations in this package.
//
// # Views
//
// A [View] is a read-only window over a caller-owned string. Views returned
// inside an Outcome share memory with that string.
//
// # Concurrency
//
// Parsers hold no mutable state, so one Parser may be used from any number
// of goroutines at once.
//
// # Example
//
//	sign := parsec.Map(parsec.MatchLiteral("-"), func(parsec.View) int { return -1 })
//
//	parsec.Run(sign, "-42") // Success(-1)
//	parsec.Run(sign, "42")  // Failure
package parsec
