package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanyNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"00000006", "00000006"},
		{"6", "00000006"},
		{" 1026167 ", "01026167"},
		{"sc123456", "SC123456"},
		{"OC301234", "OC301234"},
		{"R0000123", "R0000123"},
		{"ip27581r", "IP27581R"},
		{"SP02304R", "SP02304R"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := CompanyNumber(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCompanyNumber_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "123456789", "SC12", "ABC12345", "0000000/", "../00006", "12 34567", "IP2758RR", "1234567A8"} {
		t.Run(in, func(t *testing.T) {
			_, err := CompanyNumber(in)
			assert.ErrorIs(t, err, ErrInvalidCompanyNumber)
			assert.True(t, IsValidation(err))
		})
	}
}

func TestQuery(t *testing.T) {
	q, err := Query("  Barclays  ")
	require.NoError(t, err)
	assert.Equal(t, "Barclays", q)

	_, err = Query("   ")
	assert.ErrorIs(t, err, ErrInvalidQuery)

	_, err = Query(strings.Repeat("x", MaxQueryLen+1))
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestPaging(t *testing.T) {
	assert.NoError(t, Paging(1, 0))
	assert.NoError(t, Paging(100, 500))
	assert.ErrorIs(t, Paging(0, 0), ErrInvalidPaging)
	assert.ErrorIs(t, Paging(101, 0), ErrInvalidPaging)
	assert.ErrorIs(t, Paging(10, -1), ErrInvalidPaging)
}

func TestFilingCategory(t *testing.T) {
	c, err := FilingCategory("")
	require.NoError(t, err)
	assert.Empty(t, c)

	c, err = FilingCategory(" Accounts, officers ")
	require.NoError(t, err)
	assert.Equal(t, "accounts,officers", c)

	_, err = FilingCategory("accounts,bogus")
	assert.ErrorIs(t, err, ErrInvalidCategory)
}
