package main

import (
	"database/sql"
	"log"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Standalone catalog seeder: populates a fresh database with a sample
// catalog and an admin account. Usage: go run ./cmd/seed
func main() {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)

	seedAdmin(db, now)
	seedProducts(db, now)
	seedBanners(db)

	log.Println("seed complete")
}

func seedAdmin(db *sql.DB, now string) {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "changeme"
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM profiles WHERE email = $1`, email).Scan(&count); err != nil {
		log.Fatalf("check admin: %v", err)
	}
	if count > 0 {
		log.Printf("admin %s already exists, skipping", email)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	if _, err := db.Exec(
		`INSERT INTO profiles (email, password, full_name, role, created_at, updated_at) VALUES ($1,$2,$3,'admin',$4,$4)`,
		email, string(hashed), "Store Admin", now,
	); err != nil {
		log.Fatalf("insert admin: %v", err)
	}
	log.Printf("created admin %s", email)
}

func seedProducts(db *sql.DB, now string) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		log.Fatalf("check products: %v", err)
	}
	if count > 0 {
		log.Printf("products table already has %d rows, skipping", count)
		return
	}

	samples := []struct {
		name, desc, category, brand string
		price                       float64
		stock, popularity           int
		rating                      float64
	}{
		{"Wireless Headphones", "Over-ear headphones with noise cancellation", "Electronics", "Aurora", 129.99, 42, 87, 4.5},
		{"Bluetooth Speaker", "Portable speaker with 12h battery", "Electronics", "Aurora", 59.99, 30, 64, 4.2},
		{"Cotton T-Shirt", "Classic fit crew neck tee", "Clothing", "Northloom", 19.99, 120, 45, 4.0},
		{"Denim Jacket", "Mid-weight denim with brass buttons", "Clothing", "Northloom", 79.99, 18, 38, 4.3},
		{"Ceramic Mug Set", "Set of four stoneware mugs", "Home", "Hearthware", 34.99, 55, 29, 4.7},
		{"Cast Iron Skillet", "Pre-seasoned 10 inch skillet", "Home", "Hearthware", 44.99, 25, 52, 4.8},
		{"Running Shoes", "Lightweight trainers with cushioned sole", "Sports", "Velora", 89.99, 40, 73, 4.4},
		{"Yoga Mat", "Non-slip 6mm mat", "Sports", "Velora", 29.99, 60, 41, 4.1},
	}

	for _, s := range samples {
		if _, err := db.Exec(
			`INSERT INTO products (name, description, price, category, brand, stock, rating, review_count, popularity, created_at)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,0,$8,$9)`,
			s.name, s.desc, s.price, s.category, s.brand, s.stock, s.rating, s.popularity, now,
		); err != nil {
			log.Fatalf("insert product %q: %v", s.name, err)
		}
	}
	log.Printf("inserted %d products", len(samples))
}

func seedBanners(db *sql.DB) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM banners`).Scan(&count); err != nil {
		log.Fatalf("check banners: %v", err)
	}
	if count > 0 {
		return
	}

	banners := []struct{ img, link, headline string }{
		{"/banners/summer-sale.jpg", "/products?sort=price-low", "Summer Sale"},
		{"/banners/new-arrivals.jpg", "/products?sort=newest", "New Arrivals"},
	}
	for i, b := range banners {
		if _, err := db.Exec(
			`INSERT INTO banners (image_url, link, headline, ord) VALUES ($1,$2,$3,$4)`,
			b.img, b.link, b.headline, len(banners)-i,
		); err != nil {
			log.Fatalf("insert banner: %v", err)
		}
	}
	log.Printf("inserted %d banners", len(banners))
}
