package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/gigmarket/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type SettingsHandler struct {
	svs SettingsServicer
}

func NewSettingsHandler(svs SettingsServicer) *SettingsHandler {
	return &SettingsHandler{svs: svs}
}

func newCommissionResponse(rate *service.CommissionRate) CommissionResponse {
	return CommissionResponse{Percent: rate.Percent.String(), Version: rate.Version}
}

// Commission GET RouteGroup + AdminCommissionRoute.
func (h *SettingsHandler) Commission(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	rate, err := h.svs.CommissionRate(reqCtx)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCommissionResponse(rate))
}

type SetCommissionParams struct {
	Percent decimal.Decimal `json:"percent"`
}

// SetCommission PUT RouteGroup + AdminCommissionRoute. Новая ставка применяется к следующим выплатам.
func (h *SettingsHandler) SetCommission(c *gin.Context) {
	var params SetCommissionParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	rate, err := h.svs.SetCommissionRate(reqCtx, getUserIDFromContext(c), params.Percent)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCommissionResponse(rate))
}
