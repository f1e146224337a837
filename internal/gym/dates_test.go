package gym

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate("2024-02-29"))
	assert.NoError(t, ValidateDate("1999-12-31"))

	for _, bad := range []string{"2024-13-01", "2023-02-29", "2024-5-10", "2024-05-10T00:00:00", "yesterday"} {
		assert.ErrorIs(t, ValidateDate(bad), ErrInvalidFormat, bad)
	}
}

func TestMonthPattern(t *testing.T) {
	p, err := MonthPattern(2024, 5)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-%", p)

	p, err = MonthPattern(2024, 12)
	require.NoError(t, err)
	assert.Equal(t, "2024-12-%", p)

	_, err = MonthPattern(2024, 13)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestMonthTitle(t *testing.T) {
	assert.Equal(t, "May 2024", MonthTitle(2024, 5))
}
