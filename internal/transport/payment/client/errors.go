package client

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// StatusCodeError ответ провайдера с неожиданным кодом.
type StatusCodeError struct {
	Code int
}

func NewStatusCodeError(code int) *StatusCodeError {
	return &StatusCodeError{Code: code}
}

func (e *StatusCodeError) Error() string {
	return fmt.Sprintf("payment provider responded with %d %s", e.Code, http.StatusText(e.Code))
}

// Rejected сообщает, что провайдер отклонил запрос по существу, а не упал.
func (e *StatusCodeError) Rejected() bool {
	return e.Code == http.StatusBadRequest || e.Code == http.StatusUnprocessableEntity
}

// TooManyRequestError провайдер ограничил частоту запросов. RetryAfter может быть нулевым.
type TooManyRequestError struct {
	RetryAfter time.Duration
}

func NewTooManyRequestError(retryAfter time.Duration) *TooManyRequestError {
	return &TooManyRequestError{RetryAfter: retryAfter}
}

func (e *TooManyRequestError) Error() string {
	if e.RetryAfter <= 0 {
		return "payment provider rate limit exceeded"
	}
	return fmt.Sprintf("payment provider rate limit exceeded, retry in %s", e.RetryAfter)
}

// AsRejection возвращает код отказа провайдера, если err это отказ по существу.
func AsRejection(err error) (int, bool) {
	var statusErr *StatusCodeError
	if errors.As(err, &statusErr) && statusErr.Rejected() {
		return statusErr.Code, true
	}
	return 0, false
}
