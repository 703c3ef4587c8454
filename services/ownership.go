package services

import (
	"context"
	"database/sql"
)

// Ownership checks for referenced entities. Every lookup is scoped by
// user_id, so a row owned by someone else looks exactly like a missing row.

func bookOwned(ctx context.Context, db *sql.DB, bookID, userID string) error {
	var exists bool
	err := db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM books WHERE id = $1 AND user_id = $2)",
		bookID, userID).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return NotFound("Book not found")
	}
	return nil
}

func walletOwned(ctx context.Context, db *sql.DB, walletID, userID string) error {
	var exists bool
	err := db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM wallets WHERE id = $1 AND user_id = $2)",
		walletID, userID).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return NotFound("Wallet not found")
	}
	return nil
}

func categoryOwned(ctx context.Context, db *sql.DB, categoryID, userID string) error {
	var exists bool
	err := db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1 AND user_id = $2)",
		categoryID, userID).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return NotFound("Category not found")
	}
	return nil
}

// walletsOwned verifies that every id in walletIDs belongs to userID.
func walletsOwned(ctx context.Context, db *sql.DB, walletIDs []string, userID string) error {
	for _, id := range walletIDs {
		if err := walletOwned(ctx, db, id, userID); err != nil {
			return err
		}
	}
	return nil
}
