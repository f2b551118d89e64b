package review

// Limits enforced on review payloads.
const (
	MaxTitleLen   = 100
	MaxCommentLen = 1000
)

// Review maps to the `reviews` table. At most one review exists per
// (user, product) pair; submitting again replaces the previous one.
type Review struct {
	ReviewID     int     `json:"reviewId"`
	ProductID    int     `json:"productId"`
	UserID       int     `json:"userId"`
	Rating       int     `json:"rating"`
	Title        *string `json:"title,omitempty"`
	Comment      *string `json:"comment,omitempty"`
	HelpfulCount int     `json:"helpfulCount"`
	ReviewerName string  `json:"reviewerName,omitempty"`
	CreatedAt    string  `json:"createdAt,omitempty"`
	UpdatedAt    string  `json:"updatedAt,omitempty"`
}
