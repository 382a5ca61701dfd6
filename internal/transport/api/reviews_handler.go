package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/gigmarket/internal/service"
	"github.com/gin-gonic/gin"
)

type ReviewsHandler struct {
	reviewSvs ReviewServicer
}

func NewReviewsHandler(reviewSvs ReviewServicer) *ReviewsHandler {
	return &ReviewsHandler{reviewSvs: reviewSvs}
}

type LeaveReviewParams struct {
	Rating int    `binding:"required,min=1,max=5"  json:"rating"`
	Text   string `binding:"max_bytes=4096"        json:"text"`
}

// Create POST RouteGroup + OrderReviewsRoute.
func (h *ReviewsHandler) Create(c *gin.Context) {
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var params LeaveReviewParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	review, err := h.reviewSvs.Leave(reqCtx, service.LeaveReviewArgs{
		ReviewerID: getUserIDFromContext(c),
		OrderID:    orderID,
		Rating:     params.Rating,
		Text:       params.Text,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newReviewResponse(review))
}

// Index GET RouteGroup + UserReviewsRoute. Отзывы о пользователе, новые сначала.
func (h *ReviewsHandler) Index(c *gin.Context) {
	userID, ok := paramID(c, "id")
	if !ok {
		return
	}
	page, ok := pageFromQuery(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	reviews, err := h.reviewSvs.ListFor(reqCtx, userID, page)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	response := make([]ReviewResponse, len(reviews))
	for i := range reviews {
		response[i] = newReviewResponse(&reviews[i])
	}
	c.JSON(http.StatusOK, response)
}
