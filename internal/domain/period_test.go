package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPeriod(t *testing.T) {
	p, err := NewPeriod(2024, 6)
	require.NoError(t, err)
	assert.Equal(t, Period{Year: 2024, Month: 6}, p)
	assert.Equal(t, "2024-06", p.String())

	_, err = NewPeriod(2024, 0)
	assert.Error(t, err)
	_, err = NewPeriod(2024, 13)
	assert.Error(t, err)
	_, err = NewPeriod(12, 1)
	assert.Error(t, err)
}

func TestEntryInPeriod(t *testing.T) {
	e := Entry{Amount: decimal.NewFromInt(1), Date: time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)}

	assert.True(t, e.InPeriod(Period{Year: 2024, Month: 6}))
	assert.False(t, e.InPeriod(Period{Year: 2024, Month: 7}))
	assert.False(t, e.InPeriod(Period{Year: 2023, Month: 6}))
	assert.Equal(t, Period{Year: 2024, Month: 6}, PeriodOf(e.Date))
}

func TestParseEntryType(t *testing.T) {
	typ, err := ParseEntryType(" Expense ")
	require.NoError(t, err)
	assert.Equal(t, EntryTypeExpense, typ)

	typ, err = ParseEntryType("income")
	require.NoError(t, err)
	assert.Equal(t, EntryTypeIncome, typ)

	_, err = ParseEntryType("transfer")
	assert.Error(t, err)
}

func TestIsKnownCategory(t *testing.T) {
	assert.True(t, IsKnownCategory("Food"))
	assert.True(t, IsKnownCategory("Salary"))
	assert.False(t, IsKnownCategory("food"))
	assert.False(t, IsKnownCategory("Travel"))
}
