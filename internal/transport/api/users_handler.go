package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/fsdevblog/gigmarket/internal/service"
	"github.com/gin-gonic/gin"
)

type UsersHandler struct {
	userSvs UserServicer
}

func NewUsersHandler(userSvs UserServicer) *UsersHandler {
	return &UsersHandler{
		userSvs: userSvs,
	}
}

type StartParams struct {
	ID       int64  `binding:"required,gt=0"              json:"id"`
	Username string `binding:"omitempty,max_bytes=255"    json:"username"`
}

// Start POST RouteGroup + StartRoute. Вызывается шлюзом мессенджера при первом обращении пользователя.
// Токен пользователя отдается в заголовке Authorization.
func (h *UsersHandler) Start(c *gin.Context) {
	var params StartParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, token, err := h.userSvs.Start(ctx, service.StartArgs{ID: params.ID, Username: params.Username})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.Header("Authorization", "Bearer "+token)
	c.JSON(http.StatusOK, gin.H{"user": newUserResponse(user)})
}

// Me GET RouteGroup + MeRoute.
func (h *UsersHandler) Me(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.userSvs.Get(ctx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}

// PurchaseVIP POST RouteGroup + MeVIPRoute.
func (h *UsersHandler) PurchaseVIP(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.userSvs.PurchaseVIP(ctx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}

type AdminLoginParams struct {
	ID       int64  `binding:"required,gt=0"      json:"id"`
	Password string `binding:"required,max=255"   json:"password"`
}

// AdminLogin POST RouteGroup + AdminLoginRoute.
func (h *UsersHandler) AdminLogin(c *gin.Context) {
	var params AdminLoginParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	token, err := h.userSvs.AdminLogin(ctx, service.AdminLoginArgs{ID: params.ID, Password: params.Password})
	if err != nil {
		if errors.Is(err, domain.ErrPasswordMissMatch) {
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		abortWithServiceError(c, err)
		return
	}

	c.Header("Authorization", "Bearer "+token)
	c.Status(http.StatusOK)
}

// AdminIndex GET RouteGroup + AdminUsersRoute.
func (h *UsersHandler) AdminIndex(c *gin.Context) {
	page, ok := pageFromQuery(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	users, err := h.userSvs.List(ctx, getUserIDFromContext(c), page)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	response := make([]UserResponse, len(users))
	for i := range users {
		response[i] = newUserResponse(&users[i])
	}
	c.JSON(http.StatusOK, response)
}

// Block POST RouteGroup + AdminBlockRoute.
func (h *UsersHandler) Block(c *gin.Context) {
	h.setBlocked(c, h.userSvs.Block)
}

// Unblock POST RouteGroup + AdminUnblockRoute.
func (h *UsersHandler) Unblock(c *gin.Context) {
	h.setBlocked(c, h.userSvs.Unblock)
}

func (h *UsersHandler) setBlocked(
	c *gin.Context,
	fn func(ctx context.Context, adminID, userID int64) (*domain.User, error),
) {
	userID, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := fn(ctx, getUserIDFromContext(c), userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}
