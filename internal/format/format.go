// Package format turns raw form input and computed amounts into display strings.
package format

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	titleCaser    = cases.Title(language.English)
	postalPattern = regexp.MustCompile(`^[A-Z]\d[A-Z] \d[A-Z]\d$`)
)

const (
	postalCodeLength = 6
	phoneDigits      = 10
)

// TitleCase collapses whitespace and capitalises each word, as used for
// names, street addresses and cities.
func TitleCase(s string) string {
	return capitalizeElisions(titleCaser.String(strings.Join(strings.Fields(s), " ")))
}

// capitalizeElisions upper-cases the letter after an apostrophe that follows a
// one-letter prefix, as in "O'Brien" or "D'Arcy". "Don't" and "Smith's" are
// left alone.
func capitalizeElisions(s string) string {
	runes := []rune(s)
	for i := 1; i+1 < len(runes); i++ {
		if runes[i] != '\'' && runes[i] != '’' {
			continue
		}
		if !unicode.IsLetter(runes[i-1]) || (i >= 2 && unicode.IsLetter(runes[i-2])) {
			continue
		}
		runes[i+1] = unicode.ToUpper(runes[i+1])
	}
	return string(runes)
}

// PostalCode masks a Canadian postal code as "A1A 1A1". Extra characters are
// dropped; partial input is masked as far as it goes.
func PostalCode(s string) string {
	var b strings.Builder
	n := 0
	for _, r := range s {
		if n == postalCodeLength {
			break
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		if n == 3 {
			b.WriteByte(' ')
		}
		b.WriteRune(unicode.ToUpper(r))
		n++
	}
	return b.String()
}

// NormalizePostalCode masks a complete postal code. ok is false unless s holds
// exactly six letters and digits in the A1A 1A1 pattern; nothing is dropped.
func NormalizePostalCode(s string) (masked string, ok bool) {
	n := 0
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			n++
		}
	}
	if n != postalCodeLength {
		return "", false
	}
	masked = PostalCode(s)
	return masked, ValidPostalCode(masked)
}

// ValidPostalCode reports whether s is a fully masked postal code.
func ValidPostalCode(s string) bool {
	return postalPattern.MatchString(s)
}

// PhoneNumber masks up to ten digits as "902-555-0123".
func PhoneNumber(s string) string {
	digits := PhoneDigits(s)
	switch {
	case len(digits) <= 3:
		return digits
	case len(digits) <= 6:
		return digits[:3] + "-" + digits[3:]
	default:
		return digits[:3] + "-" + digits[3:6] + "-" + digits[6:]
	}
}

// NormalizePhone masks a complete ten-digit number. An eleven-digit number
// with a leading country code 1 is accepted and the 1 dropped. ok is false for
// any other digit count.
func NormalizePhone(s string) (masked string, ok bool) {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) == phoneDigits+1 && digits[0] == '1' {
		digits = digits[1:]
	}
	if len(digits) != phoneDigits {
		return "", false
	}
	return PhoneNumber(digits), true
}

// PhoneDigits returns at most the first ten digits found in s.
func PhoneDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if b.Len() == phoneDigits {
			break
		}
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Currency rounds an amount to cents, half away from zero, and renders it as
// "$1,234.57". Each amount is rounded on its own.
func Currency(amount float64) string {
	s := decimal.NewFromFloat(amount).StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	return sign + "$" + groupThousands(whole) + "." + frac
}

// UnitPrice renders a per-area price without rounding it to cents, e.g.
// 0.035 -> "$0.035". At least two decimals are always shown.
func UnitPrice(price float64) string {
	d := decimal.NewFromFloat(price)
	if d.Exponent() >= -2 {
		return "$" + d.StringFixed(2)
	}
	return "$" + d.String()
}

// Area renders a property size as "12,500 sq ft", keeping up to two decimals.
func Area(area float64) string {
	s := decimal.NewFromFloat(area).Round(2).String()
	whole, frac, hasFrac := strings.Cut(s, ".")
	out := groupThousands(whole)
	if hasFrac {
		out += "." + frac
	}
	return out + " sq ft"
}

// Rate renders a fraction as a percentage, e.g. 0.014 -> "1.4%".
func Rate(rate float64) string {
	return decimal.NewFromFloat(rate).Shift(2).String() + "%"
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
