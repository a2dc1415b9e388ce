// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsec

// Run parses the whole of s with p.
func Run[T any](p Parser[T], s string) Outcome[T] {
	return p.Parse(NewView(s))
}

// RunWith parses s with p and folds the Outcome with onFailure or onSuccess.
func RunWith[T, R any](p Parser[T], s string, onFailure func() R, onSuccess func(T) R) R {
	return MatchOutcome(p.Parse(NewView(s)), onFailure, onSuccess)
}
