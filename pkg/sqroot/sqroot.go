// Copyright © 2021 Alibaba Group Holding Ltd.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sqroot

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DefaultPrecision is the number of significant digits printf("%g") uses.
const DefaultPrecision = 6

// ShortestPrecision selects the shortest representation that round-trips.
const ShortestPrecision = -1

const cSpaces = " \t\n\v\f\r"

var (
	ErrMissingArgument = errors.New("missing number argument")
	ErrInvalidNumber   = errors.New("invalid number")
	ErrOutOfDomain     = errors.New("number out of domain")
)

// Parse converts the longest leading float literal of text, skipping
// leading white space, and returns 0 if there is none. It never fails:
// malformed input degrades to 0 and overflow to +/-Inf.
func Parse(text string) float64 {
	lit := floatPrefix(strings.TrimLeft(text, cSpaces))
	if lit == "" {
		return 0
	}
	if strings.EqualFold(lit, "nan") {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return v
		}
		return 0
	}
	return v
}

// floatPrefix returns the longest leading float literal of s in a form
// strconv.ParseFloat accepts: [sign] (inf | infinity | nan | decimal | hex).
// A signed nan is returned unsigned and a hex literal without a binary
// exponent gets "p0" appended.
func floatPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	switch {
	case hasPrefixFold(s[i:], "infinity"):
		return s[:i+len("infinity")]
	case hasPrefixFold(s[i:], "inf"):
		return s[:i+len("inf")]
	case hasPrefixFold(s[i:], "nan"):
		return s[i : i+len("nan")]
	}

	if hasPrefixFold(s[i:], "0x") {
		if end, ok := scanMantissa(s, i+2, isHexDigit); ok {
			exp := scanExponent(s, end, 'p')
			if exp == end {
				return s[:end] + "p0"
			}
			return s[:exp]
		}
	}

	end, ok := scanMantissa(s, i, isDecimalDigit)
	if !ok {
		return ""
	}
	return s[:scanExponent(s, end, 'e')]
}

// scanMantissa returns the end of digits[.digits] starting at i, ok when
// at least one digit was read.
func scanMantissa(s string, i int, isDigit func(byte) bool) (int, bool) {
	digits := 0
	for ; i < len(s) && isDigit(s[i]); i++ {
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for ; i < len(s) && isDigit(s[i]); i++ {
			digits++
		}
	}
	return i, digits > 0
}

// scanExponent returns the end of an exponent starting at i, or i itself
// when none follows.
func scanExponent(s string, i int, marker byte) int {
	if i >= len(s) || s[i]|0x20 != marker {
		return i
	}
	j := i + 1
	if j < len(s) && (s[j] == '+' || s[j] == '-') {
		j++
	}
	start := j
	for j < len(s) && isDecimalDigit(s[j]) {
		j++
	}
	if j == start {
		return i
	}
	return j
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func isDecimalDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDecimalDigit(c) || 'a' <= c|0x20 && c|0x20 <= 'f'
}

// ParseStrict requires the whole of text to be a representable float literal.
func ParseStrict(text string) (float64, error) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidNumber, "failed to parse %q", text)
	}
	return v, nil
}

// Sqrt returns the non-negative square root of x, NaN when x < 0.
func Sqrt(x float64) float64 {
	return math.Sqrt(x)
}

// CheckDomain rejects values Sqrt has no real result for.
func CheckDomain(x float64) error {
	if math.IsNaN(x) || x < 0 {
		return errors.Wrapf(ErrOutOfDomain, "cannot take the square root of %s", Format(x, ShortestPrecision))
	}
	return nil
}

// Format renders x in %g style with precision significant digits.
// Non-finite values are spelled nan, -nan, inf and -inf.
func Format(x float64, precision int) string {
	switch {
	case math.IsNaN(x):
		if math.Signbit(x) {
			return "-nan"
		}
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}
	return strconv.FormatFloat(x, 'g', precision, 64)
}

type Result struct {
	Input float64
	Root  float64
}

// Compute parses text the way Parse does and takes its square root.
func Compute(text string) Result {
	in := Parse(text)
	return Result{Input: in, Root: Sqrt(in)}
}

// ComputeStrict is Compute with ParseStrict and CheckDomain applied.
func ComputeStrict(text string) (Result, error) {
	in, err := ParseStrict(text)
	if err != nil {
		return Result{}, err
	}
	if err := CheckDomain(in); err != nil {
		return Result{}, err
	}
	return Result{Input: in, Root: Sqrt(in)}, nil
}

// Text is the line printed by the sqrt command.
func (r Result) Text(precision int) string {
	return fmt.Sprintf("The square root of %s is %s", Format(r.Input, precision), Format(r.Root, precision))
}

// Output is the structured form of a Result for json and yaml printing.
type Output struct {
	Input string `json:"input" yaml:"input"`
	Root  string `json:"root" yaml:"root"`
}

func (r Result) Output(precision int) Output {
	return Output{
		Input: Format(r.Input, precision),
		Root:  Format(r.Root, precision),
	}
}
