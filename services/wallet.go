package services

import (
	"context"
	"database/sql"
	"time"

	"dompet-api/models"
	"dompet-api/utils"
)

type WalletService struct {
	db *sql.DB
}

func NewWalletService(db *sql.DB) *WalletService {
	return &WalletService{db: db}
}

const walletColumns = "id, user_id, name, balance, is_default, created_at, updated_at"

func scanWallet(row *sql.Row) (*models.Wallet, error) {
	var w models.Wallet
	err := row.Scan(&w.ID, &w.UserID, &w.Name, &w.Balance, &w.IsDefault, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *WalletService) Create(ctx context.Context, userID string, req *models.CreateWalletRequest) (*models.Wallet, error) {
	balance := models.Money(0)
	if req.Balance != nil {
		balance = *req.Balance
	}

	return scanWallet(s.db.QueryRowContext(ctx, `
		INSERT INTO wallets (user_id, name, balance)
		VALUES ($1, $2, $3)
		RETURNING `+walletColumns,
		userID, req.Name, balance))
}

func (s *WalletService) GetAll(ctx context.Context, userID string) ([]models.Wallet, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+walletColumns+" FROM wallets WHERE user_id = $1 ORDER BY created_at DESC",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	wallets := []models.Wallet{}
	for rows.Next() {
		var w models.Wallet
		if err := rows.Scan(&w.ID, &w.UserID, &w.Name, &w.Balance, &w.IsDefault, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, err
		}
		wallets = append(wallets, w)
	}

	return wallets, rows.Err()
}

func (s *WalletService) GetByID(ctx context.Context, userID, walletID string) (*models.Wallet, error) {
	wallet, err := scanWallet(s.db.QueryRowContext(ctx,
		"SELECT "+walletColumns+" FROM wallets WHERE id = $1 AND user_id = $2",
		walletID, userID))
	if err == sql.ErrNoRows {
		return nil, NotFound("Wallet not found")
	}
	if err != nil {
		return nil, err
	}
	return wallet, nil
}

func (s *WalletService) Update(ctx context.Context, userID, walletID string, req *models.UpdateWalletRequest) (*models.Wallet, error) {
	existing, err := s.GetByID(ctx, userID, walletID)
	if err != nil {
		return nil, err
	}

	name := existing.Name
	if req.Name != nil {
		name = *req.Name
	}
	balance := existing.Balance
	if req.Balance != nil {
		balance = *req.Balance
	}

	return scanWallet(s.db.QueryRowContext(ctx, `
		UPDATE wallets SET name = $1, balance = $2, updated_at = NOW()
		WHERE id = $3 AND user_id = $4
		RETURNING `+walletColumns,
		name, balance, walletID, userID))
}

func (s *WalletService) Delete(ctx context.Context, userID, walletID string) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM wallets WHERE id = $1 AND user_id = $2",
		walletID, userID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return NotFound("Wallet not found")
	}
	return nil
}

// SetDefault makes walletID the user's single default wallet. Clearing the
// old default and setting the new one happen in one transaction, so a
// concurrent reader never sees zero or two defaults.
func (s *WalletService) SetDefault(ctx context.Context, userID, walletID string) error {
	if err := walletOwned(ctx, s.db, walletID, userID); err != nil {
		return err
	}

	return utils.WithTransaction(s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			"UPDATE wallets SET is_default = FALSE, updated_at = NOW() WHERE user_id = $1 AND is_default = TRUE",
			userID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			"UPDATE wallets SET is_default = TRUE, updated_at = NOW() WHERE id = $1 AND user_id = $2",
			walletID, userID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			"UPDATE users SET default_wallet_id = $1, updated_at = NOW() WHERE id = $2",
			walletID, userID)
		return err
	})
}

func (s *WalletService) GetSummary(ctx context.Context, userID, walletID string, start, end *time.Time) (*models.Summary, error) {
	if err := walletOwned(ctx, s.db, walletID, userID); err != nil {
		return nil, err
	}
	return summarizeItems(ctx, s.db, "wallet_id", walletID, start, end)
}
