// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsec

import "fmt"

// Outcome is the result of a single parse attempt: either Success carrying
// a value of type T, or Failure carrying nothing.
//
// The zero Outcome is Failure. Failure always holds the zero T, so for a
// comparable T two Outcomes compare equal with == exactly when they are both
// Failure, or both Success with equal values.
type Outcome[T any] struct {
	ok    bool
	value T
}

// Success creates a successful Outcome holding v.
func Success[T any](v T) Outcome[T] {
	return Outcome[T]{ok: true, value: v}
}

// Failure creates a failed Outcome.
func Failure[T any]() Outcome[T] {
	return Outcome[T]{}
}

// IsSuccess returns true if this is a Success.
func (o Outcome[T]) IsSuccess() bool {
	return o.ok
}

// IsFailure returns true if this is a Failure.
func (o Outcome[T]) IsFailure() bool {
	return !o.ok
}

// Get returns the success value and true, or zero and false.
func (o Outcome[T]) Get() (T, bool) {
	return o.value, o.ok
}

// ValueOr returns the success value, or fallback on Failure.
func (o Outcome[T]) ValueOr(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// String renders the Outcome as "Success(v)" or "Failure".
func (o Outcome[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Success(%v)", o.value)
	}
	return "Failure"
}

// MatchOutcome pattern matches on the Outcome, calling onFailure or onSuccess.
func MatchOutcome[T, R any](o Outcome[T], onFailure func() R, onSuccess func(T) R) R {
	if o.ok {
		return onSuccess(o.value)
	}
	return onFailure()
}

// MapOutcome applies f to the success value.
// A Failure passes through and f is not called.
//
// f is a total transform; a step that may fail belongs in [BindOutcome].
func MapOutcome[T, S any](o Outcome[T], f func(T) S) Outcome[S] {
	if o.ok {
		return Success(f(o.value))
	}
	return Failure[S]()
}

// BindOutcome sequences two parse decisions (and-then).
// On Success it returns whatever f produces for the value; on Failure it
// returns Failure without calling f.
func BindOutcome[T, S any](o Outcome[T], f func(T) Outcome[S]) Outcome[S] {
	if o.ok {
		return f(o.value)
	}
	return Failure[S]()
}
