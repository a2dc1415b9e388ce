// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsec

// MatchLiteral returns a Parser that succeeds when the input begins with
// pattern, compared byte for byte.
//
// On success the value is the len(pattern)-byte prefix of the input, a View
// into the caller's buffer whose content equals pattern. Input after the
// prefix is not examined: MatchLiteral("abc") succeeds on "abcd" and does not
// report the unmatched "d". On mismatch it returns Failure with no indication
// of where the comparison diverged.
//
// The empty pattern matches every input.
func MatchLiteral(pattern string) ParserFunc[View] {
	return func(in View) Outcome[View] {
		if !in.HasPrefix(pattern) {
			return Failure[View]()
		}
		return Success(in.Slice(0, len(pattern)))
	}
}

// MatchString is like [MatchLiteral] but carries pattern itself as the value.
func MatchString(pattern string) ParserFunc[string] {
	return func(in View) Outcome[string] {
		if !in.HasPrefix(pattern) {
			return Failure[string]()
		}
		return Success(pattern)
	}
}
