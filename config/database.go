package config

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

func InitDB() (*sql.DB, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

func RunMigrations(db *sql.DB) error {
	migrations := []string{
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,

		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			username VARCHAR(100) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			totp_secret VARCHAR(512),
			totp_enabled BOOLEAN DEFAULT FALSE,
			default_wallet_id UUID,
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP DEFAULT NOW()
		)`,

		// Balances and amounts are BIGINT minor units (cents), so every
		// balance adjustment is exact integer arithmetic server-side.
		`CREATE TABLE IF NOT EXISTS wallets (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			balance BIGINT NOT NULL DEFAULT 0,
			is_default BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS books (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			program VARCHAR(255),
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS book_wallets (
			book_id UUID NOT NULL REFERENCES books(id) ON DELETE CASCADE,
			wallet_id UUID NOT NULL REFERENCES wallets(id) ON DELETE CASCADE,
			PRIMARY KEY (book_id, wallet_id)
		)`,

		`CREATE TABLE IF NOT EXISTS categories (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			type VARCHAR(10) NOT NULL CHECK (type IN ('INCOME', 'EXPENSE')),
			icon VARCHAR(100),
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP DEFAULT NOW()
		)`,

		// Items outlive their book/wallet/category; deleting one of those
		// nulls the reference, the item row stays.
		`CREATE TABLE IF NOT EXISTS items (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			book_id UUID REFERENCES books(id) ON DELETE SET NULL,
			wallet_id UUID REFERENCES wallets(id) ON DELETE SET NULL,
			category_id UUID REFERENCES categories(id) ON DELETE SET NULL,
			type VARCHAR(10) NOT NULL CHECK (type IN ('INCOME', 'EXPENSE')),
			amount BIGINT NOT NULL CHECK (amount > 0),
			name VARCHAR(255) NOT NULL,
			date TIMESTAMP NOT NULL DEFAULT NOW(),
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS savings (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			target BIGINT,
			current BIGINT NOT NULL DEFAULT 0,
			deadline TIMESTAMP,
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS saving_wallets (
			saving_id UUID NOT NULL REFERENCES savings(id) ON DELETE CASCADE,
			wallet_id UUID NOT NULL REFERENCES wallets(id) ON DELETE CASCADE,
			PRIMARY KEY (saving_id, wallet_id)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_wallets_user_id ON wallets(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_books_user_id ON books(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_categories_user_id ON categories(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_items_book_id ON items(book_id)`,
		`CREATE INDEX IF NOT EXISTS idx_items_wallet_id ON items(wallet_id)`,
		`CREATE INDEX IF NOT EXISTS idx_items_date ON items(date)`,
		`CREATE INDEX IF NOT EXISTS idx_savings_user_id ON savings(user_id)`,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	return nil
}
