// query.go validates search and list arguments.

package validate

import (
	"fmt"
	"slices"
	"strings"
)

// MaxQueryLen caps search query length.
const MaxQueryLen = 256

// MaxItemsPerPage is the largest page upstream will serve.
const MaxItemsPerPage = 100

// FilingCategories lists the filing history categories upstream accepts.
var FilingCategories = []string{
	"accounts", "address", "annual-return", "capital", "change-of-name",
	"confirmation-statement", "incorporation", "liquidation", "miscellaneous",
	"mortgage", "officers", "persons-with-significant-control", "resolution",
}

// Query returns the trimmed search query or an error if it is empty or too long.
func Query(q string) (string, error) {
	s := strings.TrimSpace(q)
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidQuery)
	}
	if len(s) > MaxQueryLen {
		return "", fmt.Errorf("%w: longer than %d characters", ErrInvalidQuery, MaxQueryLen)
	}
	if strings.ContainsRune(s, 0) {
		return "", fmt.Errorf("%w: null byte", ErrInvalidQuery)
	}
	return s, nil
}

// Paging checks items_per_page and start_index.
func Paging(itemsPerPage, startIndex int) error {
	if itemsPerPage < 1 || itemsPerPage > MaxItemsPerPage {
		return fmt.Errorf("%w: items_per_page must be between 1 and %d, got %d", ErrInvalidPaging, MaxItemsPerPage, itemsPerPage)
	}
	if startIndex < 0 {
		return fmt.Errorf("%w: start_index must not be negative, got %d", ErrInvalidPaging, startIndex)
	}
	return nil
}

// FilingCategory returns the normalised category filter. Empty means all
// categories; comma-separated lists are accepted.
func FilingCategory(c string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(c))
	if s == "" {
		return "", nil
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if !slices.Contains(FilingCategories, p) {
			return "", fmt.Errorf("%w: %q (valid: %s)", ErrInvalidCategory, p, strings.Join(FilingCategories, ", "))
		}
		parts[i] = p
	}
	return strings.Join(parts, ","), nil
}
