package review

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/shopglow/storefront-backend/internal/user"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/product/:id<[0-9]+>/reviews", h.listByProduct)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/reviews", h.submit)
	app.Delete("/api/v1/review/:id<[0-9]+>", h.delete)
	app.Post("/api/v1/review/:id<[0-9]+>/helpful", h.addHelpful)
	app.Delete("/api/v1/review/:id<[0-9]+>/helpful", h.removeHelpful)
	app.Get("/api/v1/reviews/helpful", h.listHelpful)
}

type submitRequest struct {
	ProductID int     `json:"productId"`
	Rating    int     `json:"rating"`
	Title     *string `json:"title"`
	Comment   *string `json:"comment"`
}

func (h *Handler) listByProduct(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id"})
	}

	reviews, err := h.service.ListByProduct(productID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to load reviews"})
	}
	return c.JSON(reviews)
}

func (h *Handler) submit(c *fiber.Ctx) error {
	payload := new(submitRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	saved, err := h.service.Submit(Review{
		ProductID: payload.ProductID,
		UserID:    userID,
		Rating:    payload.Rating,
		Title:     payload.Title,
		Comment:   payload.Comment,
	})
	if err != nil {
		switch err {
		case ErrInvalidRating, ErrTitleTooLong, ErrCommentTooLong:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to save review"})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(saved)
}

func (h *Handler) delete(c *fiber.Ctx) error {
	reviewID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid review id"})
	}

	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	if err := h.service.Delete(reviewID, userID); err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "review not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to delete review"})
	}
	return c.SendString("Review deleted")
}

func (h *Handler) addHelpful(c *fiber.Ctx) error {
	return h.vote(c, h.service.AddHelpfulVote)
}

func (h *Handler) removeHelpful(c *fiber.Ctx) error {
	return h.vote(c, h.service.RemoveHelpfulVote)
}

func (h *Handler) vote(c *fiber.Ctx, op func(reviewID, userID int) error) error {
	reviewID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid review id"})
	}

	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	if err := op(reviewID, userID); err != nil {
		switch err {
		case ErrAlreadyVoted:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "already voted"})
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "review not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update vote"})
		}
	}
	return c.SendString("ok")
}

func (h *Handler) listHelpful(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	ids, err := h.service.ListHelpfulVotes(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to load votes"})
	}
	return c.JSON(ids)
}
