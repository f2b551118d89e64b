package review

import (
	"errors"
	"sync"
)

var (
	ErrNotFound      = errors.New("review not found")
	ErrAlreadyVoted  = errors.New("already voted")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

type Repository interface {
	ListByProduct(productID int) ([]Review, error)
	// Upsert inserts the review or, when one already exists for the same
	// (user, product) pair, replaces its rating/title/comment.
	Upsert(rev Review) (Review, error)
	Delete(reviewID, userID int) error
	AddHelpfulVote(reviewID, userID int) error
	RemoveHelpfulVote(reviewID, userID int) error
	// ListHelpfulVotes returns the review IDs the user has marked helpful.
	ListHelpfulVotes(userID int) ([]int, error)
}

// InMemoryRepository is used for tests.
type InMemoryRepository struct {
	mu      sync.RWMutex
	reviews []Review
	votes   map[int]map[int]bool // reviewID -> userID -> voted
	nextID  int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{votes: map[int]map[int]bool{}, nextID: 1}
}

func (r *InMemoryRepository) ListByProduct(productID int) ([]Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Review, 0)
	for _, rev := range r.reviews {
		if rev.ProductID == productID {
			out = append(out, rev)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Upsert(rev Review) (Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.reviews {
		if r.reviews[i].UserID == rev.UserID && r.reviews[i].ProductID == rev.ProductID {
			rev.ReviewID = r.reviews[i].ReviewID
			rev.HelpfulCount = r.reviews[i].HelpfulCount
			rev.CreatedAt = r.reviews[i].CreatedAt
			r.reviews[i] = rev
			return rev, nil
		}
	}

	rev.ReviewID = r.nextID
	r.nextID++
	r.reviews = append(r.reviews, rev)
	return rev, nil
}

func (r *InMemoryRepository) Delete(reviewID, userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.reviews {
		if r.reviews[i].ReviewID == reviewID && r.reviews[i].UserID == userID {
			r.reviews = append(r.reviews[:i], r.reviews[i+1:]...)
			delete(r.votes, reviewID)
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) AddHelpfulVote(reviewID, userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.findLocked(reviewID)
	if idx < 0 {
		return ErrNotFound
	}
	if r.votes[reviewID][userID] {
		return ErrAlreadyVoted
	}
	if r.votes[reviewID] == nil {
		r.votes[reviewID] = map[int]bool{}
	}
	r.votes[reviewID][userID] = true
	r.reviews[idx].HelpfulCount++
	return nil
}

func (r *InMemoryRepository) RemoveHelpfulVote(reviewID, userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.findLocked(reviewID)
	if idx < 0 {
		return ErrNotFound
	}
	if !r.votes[reviewID][userID] {
		return ErrNotFound
	}
	delete(r.votes[reviewID], userID)
	r.reviews[idx].HelpfulCount--
	return nil
}

func (r *InMemoryRepository) ListHelpfulVotes(userID int) ([]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]int, 0)
	for reviewID, voters := range r.votes {
		if voters[userID] {
			out = append(out, reviewID)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) findLocked(reviewID int) int {
	for i := range r.reviews {
		if r.reviews[i].ReviewID == reviewID {
			return i
		}
	}
	return -1
}
