// Package schema holds the bootstrap DDL. cmd/api applies it at startup;
// repository tests cross-check their SQL against it.
package schema

import "strings"

var Statements = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		price NUMERIC NOT NULL DEFAULT 0,
		category TEXT,
		brand TEXT,
		stock INT NOT NULL DEFAULT 0,
		image_url TEXT,
		rating NUMERIC NOT NULL DEFAULT 0,
		review_count INT NOT NULL DEFAULT 0,
		popularity INT NOT NULL DEFAULT 0,
		created_at TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS profiles (
		id SERIAL PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		full_name TEXT,
		phone TEXT,
		role TEXT NOT NULL DEFAULT 'customer',
		avatar_url TEXT,
		created_at TEXT,
		updated_at TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS addresses (
		id SERIAL PRIMARY KEY,
		user_id INT NOT NULL,
		title TEXT,
		street_address TEXT,
		city TEXT,
		state TEXT,
		postal_code TEXT,
		country TEXT,
		is_default BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TEXT,
		updated_at TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS cart_items (
		id SERIAL PRIMARY KEY,
		user_id INT NOT NULL,
		product_id INT NOT NULL,
		quantity INT NOT NULL DEFAULT 0,
		created_at TEXT,
		updated_at TEXT,
		UNIQUE (user_id, product_id)
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id SERIAL PRIMARY KEY,
		order_number TEXT NOT NULL,
		user_id INT NOT NULL,
		subtotal NUMERIC NOT NULL DEFAULT 0,
		shipping NUMERIC NOT NULL DEFAULT 0,
		tax NUMERIC NOT NULL DEFAULT 0,
		total NUMERIC NOT NULL DEFAULT 0,
		status TEXT,
		created_at TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id SERIAL PRIMARY KEY,
		order_id INT NOT NULL,
		product_id INT NOT NULL,
		quantity INT NOT NULL DEFAULT 0,
		price NUMERIC NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id SERIAL PRIMARY KEY,
		product_id INT NOT NULL,
		user_id INT NOT NULL,
		rating INT NOT NULL,
		title TEXT,
		comment TEXT,
		helpful_count INT NOT NULL DEFAULT 0,
		created_at TEXT,
		updated_at TEXT,
		UNIQUE (user_id, product_id)
	)`,
	`CREATE TABLE IF NOT EXISTS review_helpful (
		review_id INT NOT NULL,
		user_id INT NOT NULL,
		PRIMARY KEY (review_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS banners (
		id SERIAL PRIMARY KEY,
		image_url TEXT,
		link TEXT,
		headline TEXT,
		ord INT
	)`,
}

// Table returns the CREATE TABLE statement for the named table, or "".
func Table(name string) string {
	marker := "CREATE TABLE IF NOT EXISTS " + name + " ("
	for _, stmt := range Statements {
		if strings.Contains(stmt, marker) {
			return stmt
		}
	}
	return ""
}
