package models

import "time"

type Saving struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Name      string     `json:"name"`
	Target    *Money     `json:"target"`
	Current   Money      `json:"current"`
	Deadline  *time.Time `json:"deadline"`
	Wallets   []Wallet   `json:"wallets,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CreateSavingRequest struct {
	Name      string     `json:"name" binding:"required,min=1,max=100"`
	Target    *Money     `json:"target,omitempty" binding:"omitempty,gt=0"`
	Current   *Money     `json:"current,omitempty" binding:"omitempty,gte=0"`
	Deadline  *time.Time `json:"deadline,omitempty"`
	WalletIDs []string   `json:"wallet_ids" binding:"required,min=1,dive,uuid"`
}

type UpdateSavingRequest struct {
	Name      *string    `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Target    *Money     `json:"target,omitempty" binding:"omitempty,gt=0"`
	Current   *Money     `json:"current,omitempty" binding:"omitempty,gte=0"`
	Deadline  *time.Time `json:"deadline,omitempty"`
	WalletIDs []string   `json:"wallet_ids,omitempty" binding:"omitempty,min=1,dive,uuid"`
}

type AddToSavingRequest struct {
	Amount Money `json:"amount" binding:"required,gt=0"`
}
