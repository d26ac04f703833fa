// company.go implements company number normalisation.
//
// Registration numbers are eight characters: either eight digits (England
// and Wales) or a two-letter prefix followed by six digits (SC, NI, OC, SO,
// NC, R0 and so on). Industrial and provident societies also end in a letter
// (IP27581R). Users routinely drop leading zeros, so short all-digit numbers
// are padded rather than rejected.

package validate

import (
	"fmt"
	"strings"
)

// CompanyNumberLen is the fixed length of a registration number.
const CompanyNumberLen = 8

// CompanyNumber returns the canonical form of n or an error.
//
// Rules:
//   - surrounding whitespace is trimmed and letters upper-cased
//   - all-digit numbers shorter than eight are left-padded with zeros
//   - the result must be eight ASCII letters/digits, with letters only in
//     the first two positions and the last
func CompanyNumber(n string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(n))
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidCompanyNumber)
	}

	if allDigits(s) && len(s) < CompanyNumberLen {
		s = strings.Repeat("0", CompanyNumberLen-len(s)) + s
	}

	if len(s) != CompanyNumberLen {
		return "", fmt.Errorf("%w: %q must be %d characters", ErrInvalidCompanyNumber, n, CompanyNumberLen)
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'A' && c <= 'Z' && (i < 2 || i == CompanyNumberLen-1):
		default:
			return "", fmt.Errorf("%w: %q has unexpected character %q", ErrInvalidCompanyNumber, n, c)
		}
	}
	return s, nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
