package review

import (
	"strings"
	"testing"
)

func ptrString(s string) *string { return &s }

func TestSubmit_SecondSubmissionReplacesNotDuplicates(t *testing.T) {
	s := NewService(NewInMemoryRepository())

	first, err := s.Submit(Review{ProductID: 1, UserID: 7, Rating: 4, Title: ptrString("Good")})
	if err != nil {
		t.Fatalf("first submit failed: %v", err)
	}

	second, err := s.Submit(Review{ProductID: 1, UserID: 7, Rating: 2, Title: ptrString("Changed my mind")})
	if err != nil {
		t.Fatalf("second submit failed: %v", err)
	}
	if second.ReviewID != first.ReviewID {
		t.Fatalf("expected edit to reuse review id %d, got %d", first.ReviewID, second.ReviewID)
	}

	all, err := s.ListByProduct(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected a single review per (user, product), got %d", len(all))
	}
	if all[0].Rating != 2 {
		t.Fatalf("expected replaced rating 2, got %d", all[0].Rating)
	}
}

func TestSubmit_Validation(t *testing.T) {
	s := NewService(NewInMemoryRepository())

	if _, err := s.Submit(Review{ProductID: 1, UserID: 7, Rating: 0}); err != ErrInvalidRating {
		t.Fatalf("expected ErrInvalidRating for 0, got %v", err)
	}
	if _, err := s.Submit(Review{ProductID: 1, UserID: 7, Rating: 6}); err != ErrInvalidRating {
		t.Fatalf("expected ErrInvalidRating for 6, got %v", err)
	}

	longTitle := strings.Repeat("x", MaxTitleLen+1)
	if _, err := s.Submit(Review{ProductID: 1, UserID: 7, Rating: 3, Title: &longTitle}); err != ErrTitleTooLong {
		t.Fatalf("expected ErrTitleTooLong, got %v", err)
	}

	longComment := strings.Repeat("x", MaxCommentLen+1)
	if _, err := s.Submit(Review{ProductID: 1, UserID: 7, Rating: 3, Comment: &longComment}); err != ErrCommentTooLong {
		t.Fatalf("expected ErrCommentTooLong, got %v", err)
	}
}

func TestSubmit_LimitsCountRunesNotBytes(t *testing.T) {
	s := NewService(NewInMemoryRepository())

	// exactly at the limit in characters, over it in bytes
	maxRunes := strings.Repeat("é", MaxTitleLen)
	if _, err := s.Submit(Review{ProductID: 1, UserID: 7, Rating: 3, Title: &maxRunes}); err != nil {
		t.Fatalf("title of %d runes should be accepted, got %v", MaxTitleLen, err)
	}

	overRunes := strings.Repeat("é", MaxTitleLen+1)
	if _, err := s.Submit(Review{ProductID: 1, UserID: 7, Rating: 3, Title: &overRunes}); err != ErrTitleTooLong {
		t.Fatalf("expected ErrTitleTooLong, got %v", err)
	}
}

func TestHelpfulVotes_ToggleAndCount(t *testing.T) {
	s := NewService(NewInMemoryRepository())

	rev, err := s.Submit(Review{ProductID: 1, UserID: 7, Rating: 5})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if err := s.AddHelpfulVote(rev.ReviewID, 8); err != nil {
		t.Fatalf("vote failed: %v", err)
	}
	if err := s.AddHelpfulVote(rev.ReviewID, 8); err != ErrAlreadyVoted {
		t.Fatalf("expected ErrAlreadyVoted, got %v", err)
	}

	all, _ := s.ListByProduct(1)
	if all[0].HelpfulCount != 1 {
		t.Fatalf("expected helpful count 1, got %d", all[0].HelpfulCount)
	}

	voted, _ := s.ListHelpfulVotes(8)
	if len(voted) != 1 || voted[0] != rev.ReviewID {
		t.Fatalf("unexpected vote list: %v", voted)
	}

	if err := s.RemoveHelpfulVote(rev.ReviewID, 8); err != nil {
		t.Fatalf("unvote failed: %v", err)
	}
	all, _ = s.ListByProduct(1)
	if all[0].HelpfulCount != 0 {
		t.Fatalf("expected helpful count back to 0, got %d", all[0].HelpfulCount)
	}
}

func TestDelete_ScopedToAuthor(t *testing.T) {
	s := NewService(NewInMemoryRepository())

	rev, err := s.Submit(Review{ProductID: 1, UserID: 7, Rating: 5})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if err := s.Delete(rev.ReviewID, 8); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for foreign user, got %v", err)
	}
	if err := s.Delete(rev.ReviewID, 7); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
}
