package services

import (
	"context"
	"database/sql"
	"time"

	"dompet-api/models"
	"dompet-api/utils"

	"github.com/google/uuid"
)

// WalletNotifier receives a signal after a committed balance change. The
// WebSocket handler implements it; a nil notifier is valid.
type WalletNotifier interface {
	WalletChanged(userID, walletID string)
}

// ItemService owns the item lifecycle and keeps every linked wallet's stored
// balance equal to the net of its INCOME and EXPENSE items. Each mutation
// runs the item row change and the wallet adjustment in one transaction;
// there is no background job that repairs balances afterwards.
type ItemService struct {
	db       *sql.DB
	notifier WalletNotifier
}

func NewItemService(db *sql.DB, notifier WalletNotifier) *ItemService {
	return &ItemService{db: db, notifier: notifier}
}

// signedDelta is the effect an item has on its wallet's balance: INCOME adds
// the amount, EXPENSE subtracts it.
func signedDelta(itemType string, amount models.Money) int64 {
	if itemType == models.TypeIncome {
		return int64(amount)
	}
	return -int64(amount)
}

// adjustBalance moves a wallet's balance server-side so concurrent item
// mutations on the same wallet serialize in the store, not in Go.
func adjustBalance(ctx context.Context, tx *sql.Tx, walletID string, delta int64) error {
	_, err := tx.ExecContext(ctx,
		"UPDATE wallets SET balance = balance + $1, updated_at = NOW() WHERE id = $2",
		delta, walletID)
	return err
}

const itemColumns = "id, book_id, wallet_id, category_id, type, amount, name, date, created_at, updated_at"

func scanItem(row *sql.Row) (*models.Item, error) {
	var item models.Item
	err := row.Scan(
		&item.ID,
		&item.BookID,
		&item.WalletID,
		&item.CategoryID,
		&item.Type,
		&item.Amount,
		&item.Name,
		&item.Date,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// checkItemOwnership fetches the item and verifies the caller can reach it
// through its book's owner, or failing that its wallet's owner. Any gap in
// that chain reads as NotFound, including an item with neither reference.
func (s *ItemService) checkItemOwnership(ctx context.Context, user *models.Principal, itemID string) (*models.Item, error) {
	item, err := scanItem(s.db.QueryRowContext(ctx,
		"SELECT "+itemColumns+" FROM items WHERE id = $1", itemID))
	if err == sql.ErrNoRows {
		return nil, NotFound("Item not found")
	}
	if err != nil {
		return nil, err
	}

	switch {
	case item.BookID != nil:
		if err := bookOwned(ctx, s.db, *item.BookID, user.ID); err != nil {
			return nil, NotFound("Item not found")
		}
	case item.WalletID != nil:
		if err := walletOwned(ctx, s.db, *item.WalletID, user.ID); err != nil {
			return nil, NotFound("Item not found")
		}
	default:
		// Orphaned row: unreachable by any user.
		return nil, NotFound("Item not found")
	}

	return item, nil
}

// checkReferences resolves every referenced entity to the acting user before
// any mutation happens. Running this first keeps an unauthorized reference
// from ever reaching a balance adjustment.
func (s *ItemService) checkReferences(ctx context.Context, user *models.Principal, bookID, walletID, categoryID *string) error {
	if bookID != nil {
		if err := bookOwned(ctx, s.db, *bookID, user.ID); err != nil {
			return err
		}
	}
	if walletID != nil {
		if err := walletOwned(ctx, s.db, *walletID, user.ID); err != nil {
			return err
		}
	}
	if categoryID != nil {
		if err := categoryOwned(ctx, s.db, *categoryID, user.ID); err != nil {
			return err
		}
	}
	return nil
}

func (s *ItemService) Create(ctx context.Context, user *models.Principal, req *models.CreateItemRequest) (*models.Item, error) {
	if req.BookID == nil && req.WalletID == nil {
		return nil, BadRequest("Item must reference a book or a wallet")
	}

	if err := s.checkReferences(ctx, user, req.BookID, req.WalletID, req.CategoryID); err != nil {
		return nil, err
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	itemID := uuid.New().String()

	var item *models.Item
	err := utils.WithTransaction(s.db, func(tx *sql.Tx) error {
		var err error
		item, err = scanItem(tx.QueryRowContext(ctx, `
			INSERT INTO items (id, book_id, wallet_id, category_id, type, amount, name, date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING `+itemColumns,
			itemID, req.BookID, req.WalletID, req.CategoryID, req.Type, req.Amount, req.Name, date))
		if err != nil {
			return err
		}

		if req.WalletID != nil {
			return adjustBalance(ctx, tx, *req.WalletID, signedDelta(req.Type, req.Amount))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if req.WalletID != nil {
		s.notifyWallet(user.ID, *req.WalletID)
	}

	utils.LogDebug("item created: %s amount=%s", utils.MaskID(item.ID), utils.MaskAmount(int64(item.Amount)))
	return item, nil
}

func (s *ItemService) Get(ctx context.Context, user *models.Principal, itemID string) (*models.Item, error) {
	return s.checkItemOwnership(ctx, user, itemID)
}

// List returns every item reachable by the user via book or wallet
// ownership, newest date first.
func (s *ItemService) List(ctx context.Context, user *models.Principal) ([]models.Item, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT i.id, i.book_id, i.wallet_id, i.category_id, i.type, i.amount, i.name, i.date, i.created_at, i.updated_at
		FROM items i
		LEFT JOIN books b ON i.book_id = b.id
		LEFT JOIN wallets w ON i.wallet_id = w.id
		WHERE b.user_id = $1 OR w.user_id = $1
		ORDER BY i.date DESC`,
		user.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var item models.Item
		err := rows.Scan(
			&item.ID,
			&item.BookID,
			&item.WalletID,
			&item.CategoryID,
			&item.Type,
			&item.Amount,
			&item.Name,
			&item.Date,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// mergedItem is the post-update view of an item: every field the request
// left unset keeps its stored value.
func mergedItem(old *models.Item, req *models.UpdateItemRequest) models.Item {
	merged := *old
	if req.BookID != nil {
		merged.BookID = req.BookID
	}
	if req.WalletID != nil {
		merged.WalletID = req.WalletID
	}
	if req.CategoryID != nil {
		merged.CategoryID = req.CategoryID
	}
	if req.Type != nil {
		merged.Type = *req.Type
	}
	if req.Amount != nil {
		merged.Amount = *req.Amount
	}
	if req.Name != nil {
		merged.Name = *req.Name
	}
	if req.Date != nil {
		merged.Date = *req.Date
	}
	return merged
}

// Update reverts the old item's effect on its old wallet, writes the merged
// row, then applies the new effect on the target wallet, all in one
// transaction. That one ordering covers amount changes, INCOME/EXPENSE
// flips, wallet reassignment, and any combination. The row is re-read under
// a lock inside the transaction, so two racing updates cannot both revert
// the same stale delta.
func (s *ItemService) Update(ctx context.Context, user *models.Principal, itemID string, req *models.UpdateItemRequest) (*models.Item, error) {
	if _, err := s.checkItemOwnership(ctx, user, itemID); err != nil {
		return nil, err
	}

	if err := s.checkReferences(ctx, user, req.BookID, req.WalletID, req.CategoryID); err != nil {
		return nil, err
	}

	var old, item *models.Item
	var merged models.Item
	err := utils.WithTransaction(s.db, func(tx *sql.Tx) error {
		var err error
		old, err = scanItem(tx.QueryRowContext(ctx,
			"SELECT "+itemColumns+" FROM items WHERE id = $1 FOR UPDATE", itemID))
		if err == sql.ErrNoRows {
			return NotFound("Item not found")
		}
		if err != nil {
			return err
		}

		merged = mergedItem(old, req)

		if old.WalletID != nil {
			if err := adjustBalance(ctx, tx, *old.WalletID, -signedDelta(old.Type, old.Amount)); err != nil {
				return err
			}
		}

		item, err = scanItem(tx.QueryRowContext(ctx, `
			UPDATE items
			SET book_id = $1, wallet_id = $2, category_id = $3, type = $4,
			    amount = $5, name = $6, date = $7, updated_at = NOW()
			WHERE id = $8
			RETURNING `+itemColumns,
			merged.BookID, merged.WalletID, merged.CategoryID, merged.Type,
			merged.Amount, merged.Name, merged.Date, itemID))
		if err != nil {
			return err
		}

		if merged.WalletID != nil {
			return adjustBalance(ctx, tx, *merged.WalletID, signedDelta(merged.Type, merged.Amount))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if old.WalletID != nil {
		s.notifyWallet(user.ID, *old.WalletID)
	}
	if merged.WalletID != nil && (old.WalletID == nil || *merged.WalletID != *old.WalletID) {
		s.notifyWallet(user.ID, *merged.WalletID)
	}

	return item, nil
}

// Remove reverts the item's wallet effect and deletes the row atomically.
// The row lock taken inside the transaction means a racing delete of the
// same id sees no row and fails with NotFound, so the reversal can never
// run twice.
func (s *ItemService) Remove(ctx context.Context, user *models.Principal, itemID string) (*models.Item, error) {
	if _, err := s.checkItemOwnership(ctx, user, itemID); err != nil {
		return nil, err
	}

	var old *models.Item
	err := utils.WithTransaction(s.db, func(tx *sql.Tx) error {
		var err error
		old, err = scanItem(tx.QueryRowContext(ctx,
			"SELECT "+itemColumns+" FROM items WHERE id = $1 FOR UPDATE", itemID))
		if err == sql.ErrNoRows {
			return NotFound("Item not found")
		}
		if err != nil {
			return err
		}

		if old.WalletID != nil {
			if err := adjustBalance(ctx, tx, *old.WalletID, -signedDelta(old.Type, old.Amount)); err != nil {
				return err
			}
		}

		_, err = tx.ExecContext(ctx, "DELETE FROM items WHERE id = $1", itemID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if old.WalletID != nil {
		s.notifyWallet(user.ID, *old.WalletID)
	}

	return old, nil
}

func (s *ItemService) notifyWallet(userID, walletID string) {
	if s.notifier != nil {
		s.notifier.WalletChanged(userID, walletID)
	}
}
