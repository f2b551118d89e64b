package banner

import (
	"database/sql"
)

type Repository interface {
	List(limit int) ([]Banner, error)
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns banner rows ordered by `ord` then id. A missing or empty
// table yields an empty slice so the storefront can render fallbacks.
func (r *PostgresRepository) List(limit int) ([]Banner, error) {
	rows, err := r.db.Query(`SELECT id, image_url, link, headline FROM banners ORDER BY COALESCE(ord, 0) DESC, id LIMIT $1`, limit)
	if err != nil {
		return []Banner{}, nil
	}
	defer rows.Close()

	out := make([]Banner, 0)
	for rows.Next() {
		var (
			id       int
			img      sql.NullString
			link     sql.NullString
			headline sql.NullString
		)
		if err := rows.Scan(&id, &img, &link, &headline); err != nil {
			continue
		}
		item := Banner{BannerID: id}
		if img.Valid {
			item.ImageURL = &img.String
		}
		if link.Valid {
			item.Link = &link.String
		}
		if headline.Valid {
			item.Headline = &headline.String
		}
		out = append(out, item)
	}
	return out, nil
}
