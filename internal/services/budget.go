package services

// Budget is the roll-up of a grant or project: spent is the sum of the
// linked expense amounts and remaining is budget minus spent.
type Budget struct {
	Budget    float64 `json:"budget"`
	Spent     float64 `json:"spent"`
	Remaining float64 `json:"remaining"`
}

// NewBudget computes the remaining amount of budget after spent
func NewBudget(budget, spent float64) Budget {
	return Budget{Budget: budget, Spent: spent, Remaining: budget - spent}
}
