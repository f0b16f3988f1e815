// Package isbn handles International Standard Book Numbers.
//
// Numbers are accepted in their presentation form (with spaces or hyphens
// between the components) and are reduced to a canonical form of 10 or 13
// characters for validation. Legacy 9-digit SBNs are read as ISBN-10 with a
// leading zero.
package isbn

import (
	"strings"
	"unicode"
)

// Type is the kind of a valid ISBN.
type Type int

const (
	Invalid Type = iota
	ISBN10
	ISBN13
)

// String returns the type name. Invalid has no name.
func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return ""
	}
	return typeNames[t]
}

var typeNames = [...]string{
	"",
	"ISBN10",
	"ISBN13",
}

var separators = strings.NewReplacer(" ", "", "-", "")

// Compact converts the number to its minimal representation: separators
// and surrounding whitespace are removed and the result is upper-cased.
// If convert is set, a 10 digit result is promoted to ISBN-13.
//
// Compact does not validate, use Validate for that.
func Compact(number string, convert bool) string {
	n := strings.ToUpper(strings.TrimSpace(separators.Replace(number)))
	if len(n) == 9 {
		n = "0" + n
	}
	if convert && len(n) == 10 && isDigits(n[:9]) {
		return promote(n, n)
	}
	return n
}

// Validate checks that the number is a valid ISBN-10 or ISBN-13 and returns
// its compact form, promoted to ISBN-13 if convert is set. The returned
// error is a *ValidationError.
func Validate(number string, convert bool) (string, error) {
	n := Compact(number, false)
	if len(n) < 2 || !isDigits(n[:len(n)-1]) {
		return "", invalid(ErrInvalidFormat, number)
	}
	switch len(n) {
	case 10:
		last := n[9]
		if !(last >= '0' && last <= '9') && last != 'X' {
			return "", invalid(ErrInvalidFormat, number)
		}
		if CalcISBN10Check(n[:9]).String() != n[9:] {
			return "", invalid(ErrInvalidChecksum, number)
		}
	case 13:
		if !isDigits(n) {
			return "", invalid(ErrInvalidFormat, number)
		}
		if CalcEAN13Check(n[:12]).String() != n[12:] {
			return "", invalid(ErrInvalidChecksum, number)
		}
		if p := n[:3]; p != "978" && p != "979" {
			return "", invalid(ErrInvalidComponent, number)
		}
	default:
		return "", invalid(ErrInvalidLength, number)
	}
	if convert && len(n) == 10 {
		n = promote(n, n)
	}
	return n, nil
}

// Valid checks whether the number is a valid ISBN-10 or ISBN-13.
func Valid(number string) bool {
	_, err := Validate(number, false)
	return err == nil
}

// TypeOf returns the type of the number, or Invalid if it does not
// validate.
func TypeOf(number string) Type {
	n, err := Validate(number, false)
	if err != nil {
		return Invalid
	}
	if len(n) == 10 {
		return ISBN10
	}
	return ISBN13
}

// ToISBN13 converts a valid ISBN-10 to ISBN-13, keeping the separator style
// of the input. An ISBN-13 is returned unchanged.
func ToISBN13(number string) (string, error) {
	canon, err := Validate(number, false)
	if err != nil {
		return "", err
	}
	if len(canon) == 13 {
		return number, nil
	}
	return promote(number, canon), nil
}

// promote rewrites the presentation form of an ISBN-10 as an ISBN-13.
// canon is the compact form of number.
func promote(number, canon string) string {
	number = trimSeparators(number)
	if len(separators.Replace(number)) == 9 {
		number = "0" + number
	}
	number = number[:len(number)-1] + CalcEAN13Check("978"+canon[:9]).String()
	return "978" + separatorOf(number) + number
}

// ToISBN10 converts a 978-prefixed ISBN-13 to ISBN-10, keeping the
// separator style of the input. An ISBN-10 is returned unchanged. Numbers
// in the 979 range have no ISBN-10 form and are rejected with
// ErrInvalidComponent.
func ToISBN10(number string) (string, error) {
	canon := Compact(number, false)
	switch len(canon) {
	case 10:
		if _, err := Validate(number, false); err != nil {
			return "", err
		}
		return number, nil
	case 13:
	default:
		return "", invalid(ErrInvalidLength, number)
	}
	if TypeOf(canon) != ISBN13 {
		return "", invalid(ErrInvalidFormat, number)
	}
	if !strings.HasPrefix(canon, "978") {
		return "", invalid(ErrInvalidComponent, number)
	}
	// the first and last characters of the trimmed form are digits
	body := trimSeparators(number)
	body = trimSeparators(body[afterDigits(body, 3) : len(body)-1])
	check := CalcISBN10Check(canon[3:12]).String()
	return body + separatorOf(body) + check, nil
}

// trimSeparators removes surrounding whitespace and hyphens.
func trimSeparators(number string) string {
	return strings.TrimFunc(number, func(r rune) bool {
		return r == '-' || unicode.IsSpace(r)
	})
}

// afterDigits returns the index in s just past its n-th digit.
func afterDigits(s string, n int) int {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			continue
		}
		if n--; n == 0 {
			return i + 1
		}
	}
	return len(s)
}

func separatorOf(number string) string {
	switch {
	case strings.Contains(number, " "):
		return " "
	case strings.Contains(number, "-"):
		return "-"
	}
	return ""
}
