package validation

import (
	"regexp"

	"github.com/dmitrymomot/checkit"
)

// Direct helpers: each checks the param's value and, on failure, adds the
// corresponding catalog message. The boolean return lets blocks guard
// follow-up checks: if validation.Presence(p) { validation.Type(p, "string") }.

// Presence fails on nil, empty/whitespace strings, and empty collections.
func Presence(p *checkit.Param) bool {
	if isBlank(p.Value()) {
		p.AddError(MessageFor(p.Schema(), "presence"))
		return false
	}
	return true
}

// Absence is the negation of Presence.
func Absence(p *checkit.Param) bool {
	if !isBlank(p.Value()) {
		p.AddError(MessageFor(p.Schema(), "absence"))
		return false
	}
	return true
}

// Type checks the value against a type tag: "string", "integer", "float",
// "boolean", "array", "map" or "time".
func Type(p *checkit.Param, tag string) bool {
	if !isType(p.Value(), tag) {
		p.AddError(MessageFor(p.Schema(), "type", tag))
		return false
	}
	return true
}

// Format checks a string value against a compiled pattern. Non-string
// values fail.
func Format(p *checkit.Param, re *regexp.Regexp) bool {
	if !checkFormat(p.Value(), re) {
		p.AddError(MessageFor(p.Schema(), "format"))
		return false
	}
	return true
}

// Inclusion checks that the value is one of the allowed values.
func Inclusion(p *checkit.Param, allowed ...any) bool {
	if !checkInclusion(p.Value(), allowed...) {
		p.AddError(MessageFor(p.Schema(), "inclusion"))
		return false
	}
	return true
}

// Exclusion checks that the value is none of the reserved values.
func Exclusion(p *checkit.Param, reserved ...any) bool {
	if checkInclusion(p.Value(), reserved...) {
		p.AddError(MessageFor(p.Schema(), "exclusion"))
		return false
	}
	return true
}

// MinLength checks strings (in runes), slices and maps against a lower
// length bound. Values without a length fail.
func MinLength(p *checkit.Param, n int) bool {
	if !checkMinLength(p.Value(), n) {
		p.AddError(MessageFor(p.Schema(), "min_length", n))
		return false
	}
	return true
}

// MaxLength checks strings (in runes), slices and maps against an upper
// length bound. Values without a length fail.
func MaxLength(p *checkit.Param, n int) bool {
	if !checkMaxLength(p.Value(), n) {
		p.AddError(MessageFor(p.Schema(), "max_length", n))
		return false
	}
	return true
}

// GTEq checks a numeric value against a lower bound. Non-numeric values fail.
func GTEq(p *checkit.Param, bound float64) bool {
	if !checkGTEq(p.Value(), bound) {
		p.AddError(MessageFor(p.Schema(), "gteq", bound))
		return false
	}
	return true
}

// LTEq checks a numeric value against an upper bound. Non-numeric values fail.
func LTEq(p *checkit.Param, bound float64) bool {
	if !checkLTEq(p.Value(), bound) {
		p.AddError(MessageFor(p.Schema(), "lteq", bound))
		return false
	}
	return true
}
