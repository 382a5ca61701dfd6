package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/fsdevblog/gigmarket/internal/service"
	"github.com/gin-gonic/gin"
)

type InteractionHandler struct {
	svs InteractionServicer
}

func NewInteractionHandler(svs InteractionServicer) *InteractionHandler {
	return &InteractionHandler{svs: svs}
}

type InteractionResponse struct {
	State  domain.Interaction `json:"state"`
	Prompt string             `json:"prompt,omitempty"`
	Result any                `json:"result,omitempty"`
}

func newInteractionResponse(reply *service.InteractionReply) InteractionResponse {
	response := InteractionResponse{State: reply.State, Prompt: reply.Prompt}
	switch result := reply.Result.(type) {
	case *domain.Order:
		response.Result = newOrderResponse(result)
	case *domain.Offer:
		response.Result = newOfferResponse(result)
	case *domain.Review:
		response.Result = newReviewResponse(result)
	case *service.Withdrawal:
		response.Result = gin.H{
			"reference": result.Reference,
			"balance":   result.User.Balance.StringFixed(domain.MoneyPlaces),
		}
	}
	return response
}

// Show GET RouteGroup + InteractionRoute.
func (h *InteractionHandler) Show(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	state, err := h.svs.Current(reqCtx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, InteractionResponse{State: *state})
}

type BeginInteractionParams struct {
	Kind    domain.InteractionKind `binding:"required" json:"kind"`
	OrderID int64                  `binding:"gte=0"    json:"order_id"`
}

// Begin POST RouteGroup + InteractionRoute. Начинает новое действие, незавершенное отбрасывается.
func (h *InteractionHandler) Begin(c *gin.Context) {
	var params BeginInteractionParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	reply, err := h.svs.Begin(reqCtx, getUserIDFromContext(c), params.Kind, params.OrderID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newInteractionResponse(reply))
}

type InteractionInputParams struct {
	Text string `binding:"max_bytes=16384" json:"text"`
}

// Input POST RouteGroup + InteractionInputRoute.
func (h *InteractionHandler) Input(c *gin.Context) {
	var params InteractionInputParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	reply, err := h.svs.Input(reqCtx, getUserIDFromContext(c), params.Text)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newInteractionResponse(reply))
}

// Cancel DELETE RouteGroup + InteractionRoute.
func (h *InteractionHandler) Cancel(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.svs.Cancel(reqCtx, getUserIDFromContext(c)); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusNoContent)
}
