package middlewares

import (
	"net/http"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/gin-gonic/gin"
)

// StatusForKind http статус для вида отказа ядра.
func StatusForKind(kind string) int {
	switch kind {
	case domain.KindInsufficientBalance:
		return http.StatusPaymentRequired
	case domain.KindInvalidTransition, domain.KindDuplicateOffer:
		return http.StatusConflict
	case domain.KindNotAuthorized:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindExternalService:
		return http.StatusBadGateway
	case domain.KindInvalidArgument:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func statusErrorText(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad_request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusUnprocessableEntity:
		return "unprocessable_entity"
	case http.StatusConflict:
		return "conflict"
	case http.StatusPaymentRequired:
		return "payment_required"
	case http.StatusBadGateway:
		return "bad_gateway"
	default:
		return domain.KindInternal
	}
}

// Errors превращает первую ошибку запроса в json ответ {"error": ..., "reason": ...}. Для отказов ядра
// error содержит вид отказа, reason его причину. Приватные ошибки наружу не раскрываются.
// Если обработчик уже записал ответ, middleware ничего не делает.
func Errors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		// обрабатываем только первую ошибку
		firstErr := c.Errors[0]
		status := c.Writer.Status()
		if status < http.StatusBadRequest {
			status = http.StatusInternalServerError
		}
		body := gin.H{"error": statusErrorText(status)}

		switch {
		case firstErr.IsType(gin.ErrorTypeBind):
			body["reason"] = firstErr.Error()
		case firstErr.IsType(gin.ErrorTypePublic):
			if kind := domain.KindOf(firstErr.Err); kind != domain.KindInternal {
				body["error"] = kind
				body["reason"] = domain.ReasonOf(firstErr.Err)
			} else {
				body["reason"] = firstErr.Error()
			}
		}

		c.AbortWithStatusJSON(status, body)
	}
}
