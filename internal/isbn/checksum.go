package isbn

import "strconv"

// CheckDigit is the value of a check character: a decimal digit, or Ten
// which is only produced by the ISBN-10 algorithm and written as 'X'.
type CheckDigit uint8

// Ten is the ISBN-10 check value rendered as 'X'.
const Ten CheckDigit = 10

// Digit returns the check digit for d, which must be in 0..9.
func Digit(d int) CheckDigit {
	if d < 0 || d > 9 {
		panic("isbn: check digit out of range: " + strconv.Itoa(d))
	}
	return CheckDigit(d)
}

// String returns the check character.
func (c CheckDigit) String() string {
	if c == Ten {
		return "X"
	}
	return strconv.Itoa(int(c))
}

// CalcISBN10Check calculates the ISBN-10 check digit over the first nine
// digits of a number: the sum of each digit weighted by its (1-based)
// position, modulo 11.
func CalcISBN10Check(digits string) CheckDigit {
	var sum int
	for i := 0; i < len(digits); i++ {
		sum += (i + 1) * int(digits[i]-'0')
	}
	return CheckDigit(sum % 11)
}

// CalcEAN13Check calculates the EAN check digit over all but the last digit
// of an EAN number. Weights alternate 3, 1 starting from the rightmost
// digit, which gives 1, 3, 1, ... from the left for the 12 digits of an
// ISBN-13.
func CalcEAN13Check(digits string) CheckDigit {
	var sum int
	for i := 0; i < len(digits); i++ {
		d := int(digits[len(digits)-1-i] - '0')
		if i%2 == 0 {
			sum += 3 * d
		} else {
			sum += d
		}
	}
	return CheckDigit((10 - sum%10) % 10)
}

func isDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
