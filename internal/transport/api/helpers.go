package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/fsdevblog/gigmarket/internal/repository/repoargs"
	"github.com/fsdevblog/gigmarket/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const maxPageLimit = 100

func getUserIDFromContext(c *gin.Context) int64 {
	return c.GetInt64(middlewares.CurrentUserIDKey)
}

// abortWithError прерывает запрос со статусом status. Ответ формирует middlewares.Errors.
func abortWithError(c *gin.Context, status int, err error, typ gin.ErrorType) {
	_ = c.Error(err).SetType(typ)
	c.Status(status)
	c.Abort()
}

// abortWithServiceError прерывает запрос ошибкой сервисного слоя. Отказы ядра отдаются клиенту с
// видом и причиной, остальные ошибки считаются внутренними.
func abortWithServiceError(c *gin.Context, err error) {
	kind := domain.KindOf(err)
	if kind == domain.KindInternal {
		abortWithError(c, http.StatusInternalServerError, err, gin.ErrorTypePrivate)
		return
	}
	abortWithError(c, middlewares.StatusForKind(kind), err, gin.ErrorTypePublic)
}

// bindJSON разбирает тело запроса. Ошибки валидации отдаются со статусом 422, ошибки формата с 400.
func bindJSON(c *gin.Context, params any) bool {
	bindErr := c.ShouldBindJSON(params)
	if bindErr == nil {
		return true
	}
	var valErrs validator.ValidationErrors
	if errors.As(bindErr, &valErrs) {
		abortWithError(c, http.StatusUnprocessableEntity, bindErr, gin.ErrorTypeBind)
		return false
	}
	abortWithError(c, http.StatusBadRequest, bindErr, gin.ErrorTypeBind)
	return false
}

// paramID читает положительный числовой параметр пути name.
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		abortWithError(c, http.StatusBadRequest, errors.New("invalid "+name), gin.ErrorTypePublic)
		return 0, false
	}
	return id, true
}

type PageParams struct {
	Limit  uint `binding:"omitempty,max=100" form:"limit"`
	Offset uint `form:"offset"`
}

// pageFromQuery читает параметры постраничной выборки limit и offset.
func pageFromQuery(c *gin.Context) (repoargs.Page, bool) {
	var params PageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithError(c, http.StatusBadRequest, err, gin.ErrorTypeBind)
		return repoargs.Page{}, false
	}
	return repoargs.Page{Limit: min(params.Limit, maxPageLimit), Offset: params.Offset}, true
}
