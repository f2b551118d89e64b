package product

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	productColumns = `id, name, description, price, category, brand, stock, image_url, rating, review_count, popularity, created_at`

	listProductsQuery = `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY id
	`
	getProductByIDQuery = `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1
	`
	suggestProductsQuery = `
		SELECT ` + productColumns + `
		FROM products
		WHERE name ILIKE '%' || $1 || '%' OR brand ILIKE '%' || $1 || '%'
		ORDER BY popularity DESC, id
		LIMIT $2
	`
	insertProductQuery = `
		INSERT INTO products (name, description, price, category, brand, stock, image_url, rating, review_count, popularity, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING id
	`
	updateProductQuery = `
		UPDATE products
		SET name = $1,
			description = $2,
			price = $3,
			category = $4,
			brand = $5,
			stock = $6,
			image_url = $7,
			rating = $8,
			review_count = $9,
			popularity = $10
		WHERE id = $11
	`
	deleteProductQuery = `DELETE FROM products WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []Product {
	rows, err := r.db.Query(listProductsQuery)
	if err != nil {
		return []Product{}
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (r *PostgresRepository) GetByID(id int) (Product, error) {
	row := r.db.QueryRow(getProductByIDQuery, id)
	p, err := scanProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Suggest(term string, limit int) ([]Product, error) {
	rows, err := r.db.Query(suggestProductsQuery, term, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Product, 0, limit)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *PostgresRepository) Create(p Product) (Product, error) {
	var id int
	err := r.db.QueryRow(
		insertProductQuery,
		p.Name,
		p.Description,
		p.Price,
		p.Category,
		p.Brand,
		p.Stock,
		p.ImageURL,
		p.Rating,
		p.ReviewCount,
		p.Popularity,
		p.CreatedAt,
	).Scan(&id)
	if err != nil {
		return Product{}, err
	}
	p.ID = id
	return p, nil
}

func (r *PostgresRepository) Update(id int, p Product) (Product, error) {
	result, err := r.db.Exec(
		updateProductQuery,
		p.Name,
		p.Description,
		p.Price,
		p.Category,
		p.Brand,
		p.Stock,
		p.ImageURL,
		p.Rating,
		p.ReviewCount,
		p.Popularity,
		id,
	)
	if err != nil {
		return Product{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return Product{}, err
	}
	if affected == 0 {
		return Product{}, ErrNotFound
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deleteProductQuery, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(scanner rowScanner) (Product, error) {
	p := Product{}
	var (
		brand     sql.NullString
		imageURL  sql.NullString
		rating    sql.NullFloat64
		createdAt sql.NullString
	)

	if err := scanner.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Category,
		&brand,
		&p.Stock,
		&imageURL,
		&rating,
		&p.ReviewCount,
		&p.Popularity,
		&createdAt,
	); err != nil {
		return Product{}, err
	}

	if brand.Valid {
		p.Brand = &brand.String
	}
	if imageURL.Valid {
		p.ImageURL = &imageURL.String
	}
	if rating.Valid {
		p.Rating = rating.Float64
	}
	if createdAt.Valid {
		p.CreatedAt = createdAt.String
	}

	return p, nil
}
