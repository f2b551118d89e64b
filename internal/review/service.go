package review

import (
	"errors"
	"time"
	"unicode/utf8"
)

var (
	ErrTitleTooLong   = errors.New("title exceeds 100 characters")
	ErrCommentTooLong = errors.New("comment exceeds 1000 characters")
)

// Service validates review payloads before they reach storage.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListByProduct(productID int) ([]Review, error) {
	if productID <= 0 {
		return nil, ErrNotFound
	}
	return s.repo.ListByProduct(productID)
}

// Submit creates or replaces the user's review for the product.
func (s *Service) Submit(rev Review) (Review, error) {
	if rev.UserID <= 0 || rev.ProductID <= 0 {
		return Review{}, ErrNotFound
	}
	if rev.Rating < 1 || rev.Rating > 5 {
		return Review{}, ErrInvalidRating
	}
	if rev.Title != nil && utf8.RuneCountInString(*rev.Title) > MaxTitleLen {
		return Review{}, ErrTitleTooLong
	}
	if rev.Comment != nil && utf8.RuneCountInString(*rev.Comment) > MaxCommentLen {
		return Review{}, ErrCommentTooLong
	}

	rev.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	if rev.CreatedAt == "" {
		rev.CreatedAt = rev.UpdatedAt
	}
	return s.repo.Upsert(rev)
}

func (s *Service) Delete(reviewID, userID int) error {
	if reviewID <= 0 || userID <= 0 {
		return ErrNotFound
	}
	return s.repo.Delete(reviewID, userID)
}

func (s *Service) AddHelpfulVote(reviewID, userID int) error {
	if reviewID <= 0 || userID <= 0 {
		return ErrNotFound
	}
	return s.repo.AddHelpfulVote(reviewID, userID)
}

func (s *Service) RemoveHelpfulVote(reviewID, userID int) error {
	if reviewID <= 0 || userID <= 0 {
		return ErrNotFound
	}
	return s.repo.RemoveHelpfulVote(reviewID, userID)
}

func (s *Service) ListHelpfulVotes(userID int) ([]int, error) {
	if userID <= 0 {
		return nil, ErrNotFound
	}
	return s.repo.ListHelpfulVotes(userID)
}
