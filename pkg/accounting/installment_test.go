package accounting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arkas/models"
)

func day(d int) time.Time {
	return time.Date(2026, time.January, d, 0, 0, 0, 0, time.UTC)
}

func TestStatusOf(t *testing.T) {
	now := day(15)
	cases := []struct {
		name  string
		share string
		paid  string
		due   time.Time
		want  models.InstallmentStatus
	}{
		{"zero share", "0", "0", day(1), models.InstallmentPending},
		{"fully paid", "1000", "1000", day(1), models.InstallmentPaid},
		{"overpaid", "1000", "1200", day(1), models.InstallmentPaid},
		{"partial before due", "1000", "400", day(20), models.InstallmentPartial},
		{"partial after due", "1000000", "400000", day(1), models.InstallmentPartial},
		{"nothing paid, past due", "1000000", "0", day(1), models.InstallmentOverdue},
		{"nothing paid, not yet due", "1000", "0", day(20), models.InstallmentPending},
		{"nothing paid, due today", "1000", "0", day(15), models.InstallmentPending},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := StatusOf(dec(tc.share), dec(tc.paid), tc.due, now)
			assert.Equal(t, tc.want, got)
		})
	}
}

// 700 over two installments of 300 (day 1) and 500 (day 10): the first is paid
// off, the second takes the remaining 400 and stays partial
func TestAllocate_Waterfall(t *testing.T) {
	obligations := []Obligation{
		{InstallmentID: 2, ShareAmount: dec("500"), DueDate: day(10)},
		{InstallmentID: 1, ShareAmount: dec("300"), DueDate: day(1)},
	}
	apps, leftover := Allocate(dec("700"), obligations, day(15))

	require.Len(t, apps, 2)
	assert.Equal(t, uint(1), apps[0].InstallmentID)
	assert.True(t, apps[0].Amount.Equal(dec("300")))
	assert.Equal(t, models.InstallmentPaid, apps[0].Status)
	assert.Equal(t, uint(2), apps[1].InstallmentID)
	assert.True(t, apps[1].Amount.Equal(dec("400")))
	assert.Equal(t, models.InstallmentPartial, apps[1].Status)
	assert.True(t, leftover.IsZero())
}

func TestAllocate_Surplus(t *testing.T) {
	obligations := []Obligation{
		{InstallmentID: 1, ShareAmount: dec("300"), DueDate: day(1)},
	}
	apps, leftover := Allocate(dec("1000"), obligations, day(15))

	require.Len(t, apps, 1)
	assert.True(t, apps[0].Amount.Equal(dec("300")))
	assert.True(t, leftover.Equal(dec("700")), "surplus comes back as a carry-forward notice")
}

func TestAllocate_SkipsSettledAndHonorsPaidAmount(t *testing.T) {
	obligations := []Obligation{
		{InstallmentID: 1, ShareAmount: dec("300"), PaidAmount: dec("300"), DueDate: day(1)},
		{InstallmentID: 2, ShareAmount: dec("500"), PaidAmount: dec("100"), DueDate: day(10)},
	}
	apps, leftover := Allocate(dec("250"), obligations, day(15))

	require.Len(t, apps, 1)
	assert.Equal(t, uint(2), apps[0].InstallmentID)
	assert.True(t, apps[0].Amount.Equal(dec("250")))
	assert.Equal(t, models.InstallmentPartial, apps[0].Status)
	assert.True(t, leftover.IsZero())
}

func TestAllocate_ZeroBudget(t *testing.T) {
	apps, leftover := Allocate(decimal.Zero, []Obligation{{InstallmentID: 1, ShareAmount: dec("100"), DueDate: day(1)}}, day(2))
	assert.Empty(t, apps)
	assert.True(t, leftover.IsZero())
}

// Σ applied + leftover == budget, whatever the inputs
func TestAllocate_Conservation(t *testing.T) {
	obligations := []Obligation{
		{InstallmentID: 1, ShareAmount: dec("123.45"), DueDate: day(3)},
		{InstallmentID: 2, ShareAmount: dec("678.90"), PaidAmount: dec("78.90"), DueDate: day(1)},
		{InstallmentID: 3, ShareAmount: dec("50"), DueDate: day(7)},
	}
	for _, budget := range []string{"0.01", "100", "723.45", "5000"} {
		apps, leftover := Allocate(dec(budget), obligations, day(10))
		sum := leftover
		for _, a := range apps {
			sum = sum.Add(a.Amount)
		}
		assert.True(t, sum.Equal(dec(budget)), "budget %s leaked", budget)
	}
}
