package review

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listReviewsQuery = `
		SELECT r.id, r.product_id, r.user_id, r.rating, r.title, r.comment, r.helpful_count, COALESCE(u.full_name, ''), r.created_at, r.updated_at
		FROM reviews r
		LEFT JOIN profiles u ON u.id = r.user_id
		WHERE r.product_id = $1
		ORDER BY r.created_at DESC, r.id DESC
	`
	// upsertReviewQuery keys on the unique (user_id, product_id) pair so a
	// second submission edits the existing review instead of duplicating it.
	upsertReviewQuery = `
		INSERT INTO reviews (product_id, user_id, rating, title, comment, helpful_count, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,0,$6,$6)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET rating = EXCLUDED.rating, title = EXCLUDED.title, comment = EXCLUDED.comment, updated_at = EXCLUDED.updated_at
		RETURNING id, helpful_count, created_at
	`
	deleteReviewQuery = `DELETE FROM reviews WHERE id = $1 AND user_id = $2`

	insertVoteQuery     = `INSERT INTO review_helpful (review_id, user_id) VALUES ($1, $2)`
	deleteVoteQuery     = `DELETE FROM review_helpful WHERE review_id = $1 AND user_id = $2`
	incrementCountQuery = `UPDATE reviews SET helpful_count = helpful_count + 1 WHERE id = $1`
	decrementCountQuery = `UPDATE reviews SET helpful_count = helpful_count - 1 WHERE id = $1`
	listVotesQuery      = `SELECT review_id FROM review_helpful WHERE user_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByProduct(productID int) ([]Review, error) {
	rows, err := r.db.Query(listReviewsQuery, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Review, 0)
	for rows.Next() {
		var (
			rev     Review
			title   sql.NullString
			comment sql.NullString
		)
		if err := rows.Scan(&rev.ReviewID, &rev.ProductID, &rev.UserID, &rev.Rating, &title, &comment, &rev.HelpfulCount, &rev.ReviewerName, &rev.CreatedAt, &rev.UpdatedAt); err != nil {
			return nil, err
		}
		if title.Valid {
			rev.Title = &title.String
		}
		if comment.Valid {
			rev.Comment = &comment.String
		}
		out = append(out, rev)
	}
	return out, nil
}

func (r *PostgresRepository) Upsert(rev Review) (Review, error) {
	err := r.db.QueryRow(
		upsertReviewQuery,
		rev.ProductID,
		rev.UserID,
		rev.Rating,
		rev.Title,
		rev.Comment,
		rev.UpdatedAt,
	).Scan(&rev.ReviewID, &rev.HelpfulCount, &rev.CreatedAt)
	if err != nil {
		return Review{}, err
	}
	return rev, nil
}

func (r *PostgresRepository) Delete(reviewID, userID int) error {
	result, err := r.db.Exec(deleteReviewQuery, reviewID, userID)
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

// AddHelpfulVote records the vote and bumps the cached count in one
// transaction; the primary key on (review_id, user_id) rejects double votes.
func (r *PostgresRepository) AddHelpfulVote(reviewID, userID int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec(insertVoteQuery, reviewID, userID); err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyVoted
		}
		return err
	}
	result, err := tx.Exec(incrementCountQuery, reviewID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	// review_helpful has no FK on review_id, so a vote for a review that
	// was never created (or was deleted) only shows up here
	if affected == 0 {
		return ErrNotFound
	}
	return tx.Commit()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *PostgresRepository) RemoveHelpfulVote(reviewID, userID int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	result, err := tx.Exec(deleteVoteQuery, reviewID, userID)
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
	countResult, err := tx.Exec(decrementCountQuery, reviewID)
	if err != nil {
		return err
	}
	countAffected, err := countResult.RowsAffected()
	if err != nil {
		return err
	}
	if countAffected == 0 {
		return ErrNotFound
	}
	return tx.Commit()
}

func (r *PostgresRepository) ListHelpfulVotes(userID int) ([]int, error) {
	rows, err := r.db.Query(listVotesQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]int, 0)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}
