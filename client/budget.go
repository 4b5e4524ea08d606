package client

import "context"

// Summary is the derived budget state the detail view renders.
type Summary struct {
	TotalExpenses   float64
	RemainingBudget float64
	PercentageUsed  float64
	OverBudget      bool
}

// Summarize computes total spend against the project budget. RemainingBudget
// may be negative; PercentageUsed is the raw ratio, see BarPercent for the
// clamped value. A zero budget yields 0% rather than dividing by zero.
func Summarize(project Project, expenses []Expense) Summary {
	var total float64
	for _, expense := range expenses {
		total += expense.Amount
	}

	var percentage float64
	if project.Budget != 0 {
		percentage = total / project.Budget * 100
	}

	return Summary{
		TotalExpenses:   total,
		RemainingBudget: project.Budget - total,
		PercentageUsed:  percentage,
		OverBudget:      total > project.Budget,
	}
}

// BarPercent clamps the usage percentage to 100 for rendering the budget bar.
// Over/under classification uses the raw percentage, not this value.
func (s Summary) BarPercent() float64 {
	if s.PercentageUsed > 100 {
		return 100
	}
	return s.PercentageUsed
}

// ProjectOverview pairs a project with its computed summary for the dashboard.
type ProjectOverview struct {
	Project Project
	Summary Summary
}

// Dashboard fetches the project list, then each project's expenses
// independently, the way the dashboard view populates its cards.
func (c *Client) Dashboard(ctx context.Context) ([]ProjectOverview, error) {
	projects, err := c.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	overviews := make([]ProjectOverview, 0, len(projects))
	for _, project := range projects {
		expenses, err := c.ListExpenses(ctx, project.ID)
		if err != nil {
			return nil, err
		}
		overviews = append(overviews, ProjectOverview{
			Project: project,
			Summary: Summarize(project, expenses),
		})
	}

	return overviews, nil
}
