package address

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listAddressesQuery = `
		SELECT id, user_id, title, street_address, city, state, postal_code, country, is_default, created_at, updated_at
		FROM addresses
		WHERE user_id = $1
		ORDER BY is_default DESC, id
	`
	insertAddressQuery = `
		INSERT INTO addresses (user_id, title, street_address, city, state, postal_code, country, is_default, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$9)
		RETURNING id
	`
	updateAddressQuery = `
		UPDATE addresses
		SET title = $3, street_address = $4, city = $5, state = $6, postal_code = $7, country = $8, updated_at = $9
		WHERE id = $1 AND user_id = $2
		RETURNING is_default, created_at
	`
	deleteAddressQuery = `DELETE FROM addresses WHERE id = $1 AND user_id = $2`

	clearDefaultQuery = `UPDATE addresses SET is_default = FALSE WHERE user_id = $1`
	setDefaultQuery   = `UPDATE addresses SET is_default = TRUE, updated_at = $3 WHERE id = $1 AND user_id = $2`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByUser(userID int) ([]Address, error) {
	rows, err := r.db.Query(listAddressesQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Address, 0)
	for rows.Next() {
		var addr Address
		if err := rows.Scan(
			&addr.AddressID,
			&addr.UserID,
			&addr.Title,
			&addr.StreetAddress,
			&addr.City,
			&addr.State,
			&addr.PostalCode,
			&addr.Country,
			&addr.IsDefault,
			&addr.CreatedAt,
			&addr.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, addr)
	}
	return out, nil
}

func (r *PostgresRepository) Create(addr Address) (Address, error) {
	args := []any{
		addr.UserID,
		addr.Title,
		addr.StreetAddress,
		addr.City,
		addr.State,
		addr.PostalCode,
		addr.Country,
		addr.IsDefault,
		addr.CreatedAt,
	}

	if !addr.IsDefault {
		if err := r.db.QueryRow(insertAddressQuery, args...).Scan(&addr.AddressID); err != nil {
			return Address{}, err
		}
		return addr, nil
	}

	// demoting the old default and inserting the new one must land
	// together or the user briefly has no default at all
	tx, err := r.db.Begin()
	if err != nil {
		return Address{}, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec(clearDefaultQuery, addr.UserID); err != nil {
		return Address{}, err
	}
	if err := tx.QueryRow(insertAddressQuery, args...).Scan(&addr.AddressID); err != nil {
		return Address{}, err
	}
	if err := tx.Commit(); err != nil {
		return Address{}, err
	}
	return addr, nil
}

func (r *PostgresRepository) Update(addr Address) (Address, error) {
	err := r.db.QueryRow(
		updateAddressQuery,
		addr.AddressID,
		addr.UserID,
		addr.Title,
		addr.StreetAddress,
		addr.City,
		addr.State,
		addr.PostalCode,
		addr.Country,
		addr.UpdatedAt,
	).Scan(&addr.IsDefault, &addr.CreatedAt)
	if err == sql.ErrNoRows {
		return Address{}, ErrNotFound
	}
	if err != nil {
		return Address{}, err
	}
	return addr, nil
}

func (r *PostgresRepository) Delete(addressID, userID int) error {
	result, err := r.db.Exec(deleteAddressQuery, addressID, userID)
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

// SetDefault clears and re-sets the flag inside one transaction so the
// user never ends up with two defaults.
func (r *PostgresRepository) SetDefault(addressID, userID int, updatedAt string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec(clearDefaultQuery, userID); err != nil {
		return err
	}
	result, err := tx.Exec(setDefaultQuery, addressID, userID, updatedAt)
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
	return tx.Commit()
}
