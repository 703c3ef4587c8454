package services

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"dompet-api/config"
	"dompet-api/models"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// testDB connects to the database named by DATABASE_URL and makes sure the
// schema exists. Tests that need a store are skipped when it is not set.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	godotenv.Load("../.env")
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set, skipping database test")
	}

	db, err := config.InitDB()
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := config.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

// testUser inserts a throwaway user and removes it (and everything hanging
// off it) when the test ends. Item rows only null their references on
// cascade, so they are deleted explicitly first.
func testUser(t *testing.T, db *sql.DB) *models.Principal {
	t.Helper()

	email := "test-" + uuid.New().String() + "@example.com"
	var id string
	err := db.QueryRow(`
		INSERT INTO users (username, email, password_hash)
		VALUES ('tester', $1, 'not-a-real-hash')
		RETURNING id`, email).Scan(&id)
	if err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	t.Cleanup(func() {
		db.Exec(`DELETE FROM items WHERE
			book_id IN (SELECT id FROM books WHERE user_id = $1)
			OR wallet_id IN (SELECT id FROM wallets WHERE user_id = $1)`, id)
		db.Exec("DELETE FROM users WHERE id = $1", id)
	})

	return &models.Principal{ID: id, Username: "tester", Email: email}
}

func testWallet(t *testing.T, db *sql.DB, userID string, balance int64) *models.Wallet {
	t.Helper()

	var w models.Wallet
	err := db.QueryRow(`
		INSERT INTO wallets (user_id, name, balance)
		VALUES ($1, 'test wallet', $2)
		RETURNING `+walletColumns, userID, balance).Scan(
		&w.ID, &w.UserID, &w.Name, &w.Balance, &w.IsDefault, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		t.Fatalf("failed to create test wallet: %v", err)
	}
	return &w
}

func testBook(t *testing.T, db *sql.DB, userID string) *models.Book {
	t.Helper()

	var b models.Book
	var program sql.NullString
	err := db.QueryRow(`
		INSERT INTO books (user_id, name)
		VALUES ($1, 'test book')
		RETURNING id, user_id, name, program, created_at, updated_at`, userID).Scan(
		&b.ID, &b.UserID, &b.Name, &program, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		t.Fatalf("failed to create test book: %v", err)
	}
	return &b
}

func testCategory(t *testing.T, db *sql.DB, userID, categoryType string) *models.Category {
	t.Helper()

	var id string
	err := db.QueryRow(`
		INSERT INTO categories (user_id, name, type)
		VALUES ($1, 'test category', $2)
		RETURNING id`, userID, categoryType).Scan(&id)
	if err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return &models.Category{ID: id, UserID: userID, Type: categoryType}
}

func walletBalance(t *testing.T, db *sql.DB, walletID string) int64 {
	t.Helper()

	var balance int64
	if err := db.QueryRow("SELECT balance FROM wallets WHERE id = $1", walletID).Scan(&balance); err != nil {
		t.Fatalf("failed to read wallet balance: %v", err)
	}
	return balance
}

// itemNetSum recomputes what the wallet balance delta from items should be.
func itemNetSum(t *testing.T, db *sql.DB, walletID string) int64 {
	t.Helper()

	var net int64
	err := db.QueryRow(`
		SELECT COALESCE(SUM(CASE WHEN type = 'INCOME' THEN amount ELSE -amount END), 0)::bigint
		FROM items WHERE wallet_id = $1`, walletID).Scan(&net)
	if err != nil {
		t.Fatalf("failed to compute item net sum: %v", err)
	}
	return net
}

func assertServiceError(t *testing.T, err error, wantStatus int) {
	t.Helper()

	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	svcErr, ok := err.(*ServiceError)
	if !ok {
		t.Fatalf("expected *ServiceError, got %T: %v", err, err)
	}
	if svcErr.Status != wantStatus {
		t.Fatalf("expected status %d, got %d (%s)", wantStatus, svcErr.Status, svcErr.Message)
	}
}

func strPtr(s string) *string { return &s }

func moneyPtr(v models.Money) *models.Money { return &v }

var testCtx = context.Background()
