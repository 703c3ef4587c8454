package models

import "time"

// Item is a single income or expense transaction. Its amount is a positive
// number of cents; the sign is carried by Type, not the value.
type Item struct {
	ID         string    `json:"id"`
	BookID     *string   `json:"book_id"`
	WalletID   *string   `json:"wallet_id"`
	CategoryID *string   `json:"category_id"`
	Type       string    `json:"type"`
	Amount     Money     `json:"amount"`
	Name       string    `json:"name"`
	Date       time.Time `json:"date"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CreateItemRequest struct {
	BookID     *string    `json:"book_id,omitempty" binding:"omitempty,uuid"`
	WalletID   *string    `json:"wallet_id,omitempty" binding:"omitempty,uuid"`
	CategoryID *string    `json:"category_id,omitempty" binding:"omitempty,uuid"`
	Type       string     `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Amount     Money      `json:"amount" binding:"required,gt=0"`
	Name       string     `json:"name" binding:"required,min=1"`
	Date       *time.Time `json:"date,omitempty"`
}

// UpdateItemRequest carries only the fields the caller intends to change.
// Nil fields keep their stored values (merge semantics).
type UpdateItemRequest struct {
	BookID     *string    `json:"book_id,omitempty" binding:"omitempty,uuid"`
	WalletID   *string    `json:"wallet_id,omitempty" binding:"omitempty,uuid"`
	CategoryID *string    `json:"category_id,omitempty" binding:"omitempty,uuid"`
	Type       *string    `json:"type,omitempty" binding:"omitempty,oneof=INCOME EXPENSE"`
	Amount     *Money     `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Name       *string    `json:"name,omitempty" binding:"omitempty,min=1"`
	Date       *time.Time `json:"date,omitempty"`
}
