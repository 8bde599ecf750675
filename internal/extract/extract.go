// Package extract pulls typed fields out of loosely structured line streams
// using declarative rules.
//
// Two modes are supported:
//
//   - Rule mode ([Scan]): every line of the stream is tried against every
//     rule that has not matched yet. The first match per rule wins and
//     freezes that rule's slot; a rule that never matches across the whole
//     stream yields its type's zero value. This lets a single command's
//     output populate several independent fields in one pass, tolerant of
//     any field being absent.
//
//   - Positional mode ([Column]): the value at a whitespace-split column of
//     the first line not matching the ignore pattern.
//
// Rule collections are plain slices constructed fresh by each caller; the
// package never retains or mutates them.
package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Kind selects the type a captured string is coerced to.
type Kind int

const (
	// String keeps the captured text as-is. This is the zero Kind.
	String Kind = iota

	// Int coerces the capture with strconv.ParseInt.
	Int

	// Float coerces the capture with strconv.ParseFloat.
	Float
)

// Rule is a single named extraction: a regular expression, the index of the
// capture group to keep (1 if zero) and the type to coerce the capture to.
type Rule struct {
	Pattern *regexp.Regexp
	Group   int
	Kind    Kind
}

// NewRule compiles pattern into a Rule capturing group 1 as kind.
// It panics on an invalid pattern; rules are compile-time constants.
func NewRule(pattern string, kind Kind) Rule {
	return Rule{Pattern: regexp.MustCompile(pattern), Group: 1, Kind: kind}
}

// Value is a typed scalar produced by extraction. A Value that was never
// matched holds its Kind's zero value and reports Matched() == false.
type Value struct {
	kind    Kind
	matched bool
	str     string
	num     int64
	flt     float64
}

// Matched reports whether any line satisfied the rule for this slot.
func (v Value) Matched() bool { return v.matched }

// Str returns the string form of the value ("" if never matched).
func (v Value) Str() string { return v.str }

// Int returns the integer form of the value (0 if never matched).
func (v Value) Int() int64 { return v.num }

// Float returns the float form of the value (0 if never matched).
func (v Value) Float() float64 { return v.flt }

// Scan runs every rule against every line of the stream.
//
// Lines matching ignore are skipped entirely. For each remaining line every
// rule that has not yet matched is attempted; on match the captured group is
// coerced to the rule's Kind and the slot is frozen; later lines cannot
// overwrite it. After the stream is exhausted the result always holds
// exactly one Value per rule, unmatched slots carrying typed zero values.
//
// A coercion failure is returned as an error. The regexes anchor captures
// to known formats, so this path is unreachable for ordinary missing-data
// cases; when it does fire it is surfaced rather than swallowed, because it
// means a pattern no longer matches what the source actually emits.
func Scan(lines []string, ignore *regexp.Regexp, rules []Rule) ([]Value, error) {
	values := make([]Value, len(rules))
	for _, line := range lines {
		if ignore != nil && ignore.MatchString(line) {
			continue
		}
		for i, rule := range rules {
			if values[i].matched {
				continue
			}
			m := rule.Pattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			group := rule.Group
			if group == 0 {
				group = 1
			}
			if group >= len(m) {
				continue
			}
			v, err := coerce(m[group], rule.Kind)
			if err != nil {
				return nil, fmt.Errorf("rule %d: %w", i, err)
			}
			values[i] = v
		}
	}
	return values, nil
}

// Column returns the value at the given whitespace-split column of the
// first line that does not match ignore and has enough fields.
//
// The stream is consumed only up to that line; anything after it is never
// read. If no line qualifies, a typed zero Value is returned without error.
func Column(lines []string, ignore *regexp.Regexp, col int, kind Kind) (Value, error) {
	for _, line := range lines {
		if ignore != nil && ignore.MatchString(line) {
			continue
		}
		fields := strings.Fields(line)
		if col >= len(fields) {
			continue
		}
		return coerce(fields[col], kind)
	}
	return Value{kind: kind}, nil
}

// coerce converts captured text to a typed Value.
func coerce(s string, kind Kind) (Value, error) {
	v := Value{kind: kind, matched: true, str: s}
	switch kind {
	case String:
	case Int:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Value{kind: kind}, fmt.Errorf("coerce %q to int: %w", s, err)
		}
		v.num = n
		v.flt = float64(n)
	case Float:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value{kind: kind}, fmt.Errorf("coerce %q to float: %w", s, err)
		}
		v.flt = f
		v.num = int64(f)
	default:
		return Value{}, fmt.Errorf("unknown kind %d", kind)
	}
	return v, nil
}
