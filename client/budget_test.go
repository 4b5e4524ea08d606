package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeOverBudget(t *testing.T) {
	project := Project{ID: "p1", Name: "Launch", Budget: 1000}
	expenses := []Expense{{ProjectID: "p1", Amount: 1200}}

	summary := Summarize(project, expenses)

	assert.Equal(t, 1200.0, summary.TotalExpenses)
	assert.Equal(t, -200.0, summary.RemainingBudget)
	assert.Equal(t, 120.0, summary.PercentageUsed)
	assert.True(t, summary.OverBudget)
	assert.Equal(t, 100.0, summary.BarPercent(), "bar is clamped, classification is not")
}

func TestSummarizeNoExpenses(t *testing.T) {
	summary := Summarize(Project{Budget: 500}, nil)

	assert.Zero(t, summary.TotalExpenses)
	assert.Equal(t, 500.0, summary.RemainingBudget)
	assert.Zero(t, summary.PercentageUsed)
	assert.False(t, summary.OverBudget)
}

func TestSummarizeExactlyAtBudget(t *testing.T) {
	summary := Summarize(Project{Budget: 300}, []Expense{
		{Amount: 100},
		{Amount: 200},
	})

	assert.Equal(t, 300.0, summary.TotalExpenses)
	assert.Zero(t, summary.RemainingBudget)
	assert.Equal(t, 100.0, summary.PercentageUsed)
	assert.False(t, summary.OverBudget, "over budget only when spend strictly exceeds it")
}

func TestSummarizePartialUse(t *testing.T) {
	summary := Summarize(Project{Budget: 200}, []Expense{
		{Amount: 30},
		{Amount: 20},
	})

	assert.Equal(t, 50.0, summary.TotalExpenses)
	assert.Equal(t, 150.0, summary.RemainingBudget)
	assert.Equal(t, 25.0, summary.PercentageUsed)
	assert.Equal(t, 25.0, summary.BarPercent())
	assert.False(t, summary.OverBudget)
}

func TestSummarizeZeroBudget(t *testing.T) {
	summary := Summarize(Project{Budget: 0}, []Expense{{Amount: 10}})

	assert.Equal(t, 10.0, summary.TotalExpenses)
	assert.Equal(t, -10.0, summary.RemainingBudget)
	assert.Zero(t, summary.PercentageUsed, "no division by a zero budget")
	assert.True(t, summary.OverBudget)
}

func TestSummarizeNegativeAmounts(t *testing.T) {
	// Refunds are negative amounts; the contract does not reject them.
	summary := Summarize(Project{Budget: 100}, []Expense{
		{Amount: 80},
		{Amount: -30},
	})

	assert.Equal(t, 50.0, summary.TotalExpenses)
	assert.Equal(t, 50.0, summary.RemainingBudget)
	assert.False(t, summary.OverBudget)
}
