package cart

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	getCartQuery = `
		SELECT ci.id, ci.quantity,
		       p.id, p.name, p.description, p.price, p.category, p.brand, p.stock, p.image_url, p.rating, p.review_count, p.popularity, p.created_at
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.user_id = $1
		ORDER BY ci.id
	`
	// upsertCartItemQuery relies on the unique (user_id, product_id)
	// constraint so concurrent adds increment the same line instead of
	// racing a read-modify-write.
	upsertCartItemQuery = `
		INSERT INTO cart_items (user_id, product_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = EXCLUDED.updated_at
	`
	dropDepletedLineQuery = `DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2 AND quantity < 1`
	setQuantityQuery      = `UPDATE cart_items SET quantity = $3, updated_at = $4 WHERE user_id = $1 AND product_id = $2`
	removeItemQuery       = `DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2`
	clearCartQuery        = `DELETE FROM cart_items WHERE user_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetCart(userID int) ([]CartItem, error) {
	rows, err := r.db.Query(getCartQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CartItem, 0)
	for rows.Next() {
		var (
			it        CartItem
			brand     sql.NullString
			imageURL  sql.NullString
			rating    sql.NullFloat64
			createdAt sql.NullString
		)
		if err := rows.Scan(
			&it.ItemID,
			&it.Quantity,
			&it.Product.ID,
			&it.Product.Name,
			&it.Product.Description,
			&it.Product.Price,
			&it.Product.Category,
			&brand,
			&it.Product.Stock,
			&imageURL,
			&rating,
			&it.Product.ReviewCount,
			&it.Product.Popularity,
			&createdAt,
		); err != nil {
			return nil, err
		}
		if brand.Valid {
			it.Product.Brand = &brand.String
		}
		if imageURL.Valid {
			it.Product.ImageURL = &imageURL.String
		}
		if rating.Valid {
			it.Product.Rating = rating.Float64
		}
		if createdAt.Valid {
			it.Product.CreatedAt = createdAt.String
		}
		out = append(out, it)
	}
	return out, nil
}

func (r *PostgresRepository) AddItem(userID, productID, delta int, updatedAt string) error {
	if _, err := r.db.Exec(upsertCartItemQuery, userID, productID, delta, updatedAt); err != nil {
		return err
	}
	// a negative delta can push an existing line below 1; such lines are
	// removed rather than stored at zero
	_, err := r.db.Exec(dropDepletedLineQuery, userID, productID)
	return err
}

func (r *PostgresRepository) SetQuantity(userID, productID, qty int, updatedAt string) error {
	result, err := r.db.Exec(setQuantityQuery, userID, productID, qty, updatedAt)
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

func (r *PostgresRepository) RemoveItem(userID, productID int) error {
	result, err := r.db.Exec(removeItemQuery, userID, productID)
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

func (r *PostgresRepository) ClearCart(userID int) error {
	_, err := r.db.Exec(clearCartQuery, userID)
	return err
}
