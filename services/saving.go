package services

import (
	"context"
	"database/sql"

	"dompet-api/models"
	"dompet-api/utils"
)

type SavingService struct {
	db *sql.DB
}

func NewSavingService(db *sql.DB) *SavingService {
	return &SavingService{db: db}
}

const savingColumns = "id, user_id, name, target, current, deadline, created_at, updated_at"

func scanSaving(row *sql.Row) (*models.Saving, error) {
	var s models.Saving
	err := row.Scan(&s.ID, &s.UserID, &s.Name, &s.Target, &s.Current, &s.Deadline, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *SavingService) Create(ctx context.Context, userID string, req *models.CreateSavingRequest) (*models.Saving, error) {
	if err := walletsOwned(ctx, s.db, req.WalletIDs, userID); err != nil {
		return nil, err
	}

	current := models.Money(0)
	if req.Current != nil {
		current = *req.Current
	}

	var saving *models.Saving
	err := utils.WithTransaction(s.db, func(tx *sql.Tx) error {
		var err error
		saving, err = scanSaving(tx.QueryRowContext(ctx, `
			INSERT INTO savings (user_id, name, target, current, deadline)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+savingColumns,
			userID, req.Name, req.Target, current, req.Deadline))
		if err != nil {
			return err
		}

		for _, walletID := range req.WalletIDs {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO saving_wallets (saving_id, wallet_id) VALUES ($1, $2)",
				saving.ID, walletID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	saving.Wallets, err = s.linkedWallets(ctx, saving.ID)
	if err != nil {
		return nil, err
	}

	return saving, nil
}

func (s *SavingService) Get(ctx context.Context, userID, savingID string) (*models.Saving, error) {
	saving, err := scanSaving(s.db.QueryRowContext(ctx,
		"SELECT "+savingColumns+" FROM savings WHERE id = $1 AND user_id = $2",
		savingID, userID))
	if err == sql.ErrNoRows {
		return nil, NotFound("Saving not found")
	}
	if err != nil {
		return nil, err
	}

	saving.Wallets, err = s.linkedWallets(ctx, saving.ID)
	if err != nil {
		return nil, err
	}

	return saving, nil
}

func (s *SavingService) List(ctx context.Context, userID string) ([]models.Saving, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+savingColumns+" FROM savings WHERE user_id = $1 ORDER BY created_at DESC",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	savings := []models.Saving{}
	for rows.Next() {
		var sv models.Saving
		if err := rows.Scan(&sv.ID, &sv.UserID, &sv.Name, &sv.Target, &sv.Current, &sv.Deadline, &sv.CreatedAt, &sv.UpdatedAt); err != nil {
			return nil, err
		}
		savings = append(savings, sv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range savings {
		wallets, err := s.linkedWallets(ctx, savings[i].ID)
		if err != nil {
			return nil, err
		}
		savings[i].Wallets = wallets
	}

	return savings, nil
}

func (s *SavingService) Update(ctx context.Context, userID, savingID string, req *models.UpdateSavingRequest) (*models.Saving, error) {
	existing, err := s.Get(ctx, userID, savingID)
	if err != nil {
		return nil, err
	}

	if err := walletsOwned(ctx, s.db, req.WalletIDs, userID); err != nil {
		return nil, err
	}

	name := existing.Name
	if req.Name != nil {
		name = *req.Name
	}
	target := existing.Target
	if req.Target != nil {
		target = req.Target
	}
	current := existing.Current
	if req.Current != nil {
		current = *req.Current
	}
	deadline := existing.Deadline
	if req.Deadline != nil {
		deadline = req.Deadline
	}

	var saving *models.Saving
	err = utils.WithTransaction(s.db, func(tx *sql.Tx) error {
		var err error
		saving, err = scanSaving(tx.QueryRowContext(ctx, `
			UPDATE savings SET name = $1, target = $2, current = $3, deadline = $4, updated_at = NOW()
			WHERE id = $5
			RETURNING `+savingColumns,
			name, target, current, deadline, savingID))
		if err != nil {
			return err
		}

		if req.WalletIDs != nil {
			if _, err := tx.ExecContext(ctx,
				"DELETE FROM saving_wallets WHERE saving_id = $1", savingID); err != nil {
				return err
			}
			for _, walletID := range req.WalletIDs {
				if _, err := tx.ExecContext(ctx,
					"INSERT INTO saving_wallets (saving_id, wallet_id) VALUES ($1, $2)",
					savingID, walletID); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	saving.Wallets, err = s.linkedWallets(ctx, savingID)
	if err != nil {
		return nil, err
	}

	return saving, nil
}

func (s *SavingService) Delete(ctx context.Context, userID, savingID string) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM savings WHERE id = $1 AND user_id = $2",
		savingID, userID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return NotFound("Saving not found")
	}
	return nil
}

// AddTo moves the saved amount forward with a server-side increment, same
// serialization rule as wallet balances.
func (s *SavingService) AddTo(ctx context.Context, userID, savingID string, amount models.Money) (*models.Saving, error) {
	saving, err := scanSaving(s.db.QueryRowContext(ctx, `
		UPDATE savings SET current = current + $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
		RETURNING `+savingColumns,
		amount, savingID, userID))
	if err == sql.ErrNoRows {
		return nil, NotFound("Saving not found")
	}
	if err != nil {
		return nil, err
	}

	saving.Wallets, err = s.linkedWallets(ctx, savingID)
	if err != nil {
		return nil, err
	}

	return saving, nil
}

func (s *SavingService) linkedWallets(ctx context.Context, savingID string) ([]models.Wallet, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT w.id, w.user_id, w.name, w.balance, w.is_default, w.created_at, w.updated_at
		FROM wallets w
		INNER JOIN saving_wallets sw ON w.id = sw.wallet_id
		WHERE sw.saving_id = $1
		ORDER BY w.created_at`,
		savingID)
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
