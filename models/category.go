package models

import "time"

const (
	TypeIncome  = "INCOME"
	TypeExpense = "EXPENSE"
)

type Category struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Icon      string    `json:"icon,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1"`
	Type string `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Icon string `json:"icon,omitempty"`
}

type UpdateCategoryRequest struct {
	Name *string `json:"name,omitempty" binding:"omitempty,min=1"`
	Type *string `json:"type,omitempty" binding:"omitempty,oneof=INCOME EXPENSE"`
	Icon *string `json:"icon,omitempty"`
}
