package models

import "time"

type Book struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Program   string    `json:"program,omitempty"`
	Wallets   []Wallet  `json:"wallets,omitempty"`
	Items     []Item    `json:"items,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateBookRequest struct {
	Name      string   `json:"name" binding:"required,min=1"`
	Program   string   `json:"program,omitempty"`
	WalletIDs []string `json:"wallet_ids,omitempty" binding:"omitempty,dive,uuid"`
}

type UpdateBookRequest struct {
	Name    *string `json:"name,omitempty" binding:"omitempty,min=1"`
	Program *string `json:"program,omitempty"`
	// When present, replaces the full set of linked wallets.
	WalletIDs []string `json:"wallet_ids,omitempty" binding:"omitempty,dive,uuid"`
}
