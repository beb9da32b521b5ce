package postgres

import (
	"context"
	"fmt"
)

// EnsureSchema crea las tablas e índices si no existen (bootstrap idempotente).
// Migraciones reales van por fuera; esto replica el arranque autónomo del POS.
func EnsureSchema(ctx context.Context, q Querier) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			username TEXT UNIQUE,
			password_hash TEXT,
			dashboard_password_hash TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id TEXT PRIMARY KEY,
			name TEXT,
			stock INTEGER DEFAULT 0,
			price NUMERIC(12,2) DEFAULT 0,
			category TEXT,
			sku TEXT,
			image_url TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS sales (
			id TEXT PRIMARY KEY,
			user_id BIGINT,
			user_name TEXT,
			payment_method TEXT,
			date TEXT,
			items JSONB DEFAULT '[]',
			total NUMERIC(12,2) DEFAULT 0,
			status TEXT DEFAULT 'completed'
		)`,
		`CREATE TABLE IF NOT EXISTS pending_orders (
			id TEXT PRIMARY KEY,
			customer_name TEXT,
			notes TEXT,
			date TEXT,
			items JSONB DEFAULT '[]',
			total NUMERIC(12,2) DEFAULT 0,
			status TEXT DEFAULT 'pending'
		)`,
		`CREATE INDEX IF NOT EXISTS idx_users_username ON users(username)`,
		`CREATE INDEX IF NOT EXISTS idx_sales_user_id ON sales(user_id)`,
	}
	for _, stmt := range statements {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
