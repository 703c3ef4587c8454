package services

import (
	"context"
	"database/sql"
	"time"

	"dompet-api/models"
	"dompet-api/utils"
)

type BookService struct {
	db *sql.DB
}

func NewBookService(db *sql.DB) *BookService {
	return &BookService{db: db}
}

func scanBook(row *sql.Row) (*models.Book, error) {
	var b models.Book
	var program sql.NullString
	err := row.Scan(&b.ID, &b.UserID, &b.Name, &program, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	b.Program = program.String
	return &b, nil
}

func (s *BookService) Create(ctx context.Context, userID string, req *models.CreateBookRequest) (*models.Book, error) {
	if err := walletsOwned(ctx, s.db, req.WalletIDs, userID); err != nil {
		return nil, err
	}

	var book *models.Book
	err := utils.WithTransaction(s.db, func(tx *sql.Tx) error {
		var err error
		book, err = scanBook(tx.QueryRowContext(ctx, `
			INSERT INTO books (user_id, name, program)
			VALUES ($1, $2, NULLIF($3, ''))
			RETURNING id, user_id, name, program, created_at, updated_at`,
			userID, req.Name, req.Program))
		if err != nil {
			return err
		}

		for _, walletID := range req.WalletIDs {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO book_wallets (book_id, wallet_id) VALUES ($1, $2)",
				book.ID, walletID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return book, nil
}

func (s *BookService) GetAll(ctx context.Context, userID string) ([]models.Book, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, name, program, created_at, updated_at
		FROM books WHERE user_id = $1 ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := []models.Book{}
	for rows.Next() {
		var b models.Book
		var program sql.NullString
		if err := rows.Scan(&b.ID, &b.UserID, &b.Name, &program, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		b.Program = program.String
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range books {
		wallets, err := s.linkedWallets(ctx, books[i].ID)
		if err != nil {
			return nil, err
		}
		books[i].Wallets = wallets
	}

	return books, nil
}

func (s *BookService) GetByID(ctx context.Context, userID, bookID string) (*models.Book, error) {
	book, err := scanBook(s.db.QueryRowContext(ctx, `
		SELECT id, user_id, name, program, created_at, updated_at
		FROM books WHERE id = $1 AND user_id = $2`,
		bookID, userID))
	if err == sql.ErrNoRows {
		return nil, NotFound("Book not found")
	}
	if err != nil {
		return nil, err
	}

	book.Wallets, err = s.linkedWallets(ctx, book.ID)
	if err != nil {
		return nil, err
	}

	book.Items, err = s.bookItems(ctx, book.ID)
	if err != nil {
		return nil, err
	}

	return book, nil
}

func (s *BookService) Update(ctx context.Context, userID, bookID string, req *models.UpdateBookRequest) (*models.Book, error) {
	existing, err := scanBook(s.db.QueryRowContext(ctx, `
		SELECT id, user_id, name, program, created_at, updated_at
		FROM books WHERE id = $1 AND user_id = $2`,
		bookID, userID))
	if err == sql.ErrNoRows {
		return nil, NotFound("Book not found")
	}
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
	program := existing.Program
	if req.Program != nil {
		program = *req.Program
	}

	var book *models.Book
	err = utils.WithTransaction(s.db, func(tx *sql.Tx) error {
		var err error
		book, err = scanBook(tx.QueryRowContext(ctx, `
			UPDATE books SET name = $1, program = NULLIF($2, ''), updated_at = NOW()
			WHERE id = $3
			RETURNING id, user_id, name, program, created_at, updated_at`,
			name, program, bookID))
		if err != nil {
			return err
		}

		// nil means "leave links alone"; a present slice replaces them all.
		if req.WalletIDs != nil {
			if _, err := tx.ExecContext(ctx,
				"DELETE FROM book_wallets WHERE book_id = $1", bookID); err != nil {
				return err
			}
			for _, walletID := range req.WalletIDs {
				if _, err := tx.ExecContext(ctx,
					"INSERT INTO book_wallets (book_id, wallet_id) VALUES ($1, $2)",
					bookID, walletID); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	book.Wallets, err = s.linkedWallets(ctx, bookID)
	if err != nil {
		return nil, err
	}

	return book, nil
}

func (s *BookService) Delete(ctx context.Context, userID, bookID string) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM books WHERE id = $1 AND user_id = $2",
		bookID, userID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return NotFound("Book not found")
	}
	return nil
}

func (s *BookService) GetSummary(ctx context.Context, userID, bookID string, start, end *time.Time) (*models.Summary, error) {
	if err := bookOwned(ctx, s.db, bookID, userID); err != nil {
		return nil, err
	}
	return summarizeItems(ctx, s.db, "book_id", bookID, start, end)
}

func (s *BookService) linkedWallets(ctx context.Context, bookID string) ([]models.Wallet, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT w.id, w.user_id, w.name, w.balance, w.is_default, w.created_at, w.updated_at
		FROM wallets w
		INNER JOIN book_wallets bw ON w.id = bw.wallet_id
		WHERE bw.book_id = $1
		ORDER BY w.created_at`,
		bookID)
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

func (s *BookService) bookItems(ctx context.Context, bookID string) ([]models.Item, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+itemColumns+" FROM items WHERE book_id = $1 ORDER BY date DESC",
		bookID)
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
