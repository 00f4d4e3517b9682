package models

import "time"

// ExpenseCategory classifies what an expense paid for
type ExpenseCategory string

// Expense categories
const (
	ExpenseCategoryEquipment   ExpenseCategory = "EQUIPMENT"
	ExpenseCategorySupplies    ExpenseCategory = "SUPPLIES"
	ExpenseCategoryTravel      ExpenseCategory = "TRAVEL"
	ExpenseCategoryPersonnel   ExpenseCategory = "PERSONNEL"
	ExpenseCategorySoftware    ExpenseCategory = "SOFTWARE"
	ExpenseCategoryPublication ExpenseCategory = "PUBLICATION"
	ExpenseCategoryOther       ExpenseCategory = "OTHER"
)

// ExpenseCategories lists every valid expense category
var ExpenseCategories = []ExpenseCategory{
	ExpenseCategoryEquipment,
	ExpenseCategorySupplies,
	ExpenseCategoryTravel,
	ExpenseCategoryPersonnel,
	ExpenseCategorySoftware,
	ExpenseCategoryPublication,
	ExpenseCategoryOther,
}

// Valid reports whether c is a known category
func (c ExpenseCategory) Valid() bool { return validEnum(c, ExpenseCategories) }

// Expense is money spent against a project and/or a grant
type Expense struct {
	Base
	Description string          `json:"description" gorm:"not null"`
	Amount      float64         `json:"amount" gorm:"not null"`
	Category    ExpenseCategory `json:"category" gorm:"type:varchar(32);not null;index"`
	Date        time.Time       `json:"date" gorm:"not null;index"`
	ProjectID   *uint           `json:"project_id,omitempty" gorm:"index"`
	GrantID     *uint           `json:"grant_id,omitempty" gorm:"index"`
}
