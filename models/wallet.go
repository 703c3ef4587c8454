package models

import "time"

// Wallet balances are carried in minor units (cents) end to end.
type Wallet struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Balance   Money     `json:"balance"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateWalletRequest struct {
	Name    string `json:"name" binding:"required,min=1"`
	Balance *Money `json:"balance,omitempty" binding:"omitempty,gte=0"`
}

type UpdateWalletRequest struct {
	Name    *string `json:"name,omitempty" binding:"omitempty,min=1"`
	Balance *Money  `json:"balance,omitempty"`
}

// Summary is recomputed from item rows, never read off wallet.balance.
type Summary struct {
	TotalIncome    Money  `json:"total_income"`
	TotalExpense   Money  `json:"total_expense"`
	NetFlow        Money  `json:"net_flow"`
	IncomeDisplay  string `json:"total_income_display"`
	ExpenseDisplay string `json:"total_expense_display"`
	NetFlowDisplay string `json:"net_flow_display"`
}
