package domain

import (
	"errors"
	"fmt"
)

// Ошибки слоя репозитория.
var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")
)

// Виды отказов ядра. Проверяются через errors.Is.
var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidTransition   = errors.New("invalid transition")
	ErrNotAuthorized       = errors.New("not authorized")
	ErrNotFound            = errors.New("not found")
	ErrDuplicateOffer      = errors.New("duplicate offer")
	ErrExternalService     = errors.New("external service failure")
	ErrInvalidArgument     = errors.New("invalid argument")
)

// RejectionError структурированный отказ: вид ошибки и причина, понятная человеку.
type RejectionError struct {
	Kind   error
	Reason string
}

// Reject создает RejectionError с видом kind и форматированной причиной.
func Reject(kind error, format string, args ...any) error {
	return &RejectionError{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Reason)
}

func (e *RejectionError) Unwrap() error {
	return e.Kind
}

const (
	KindInsufficientBalance = "insufficient_balance"
	KindInvalidTransition   = "invalid_transition"
	KindNotAuthorized       = "not_authorized"
	KindNotFound            = "not_found"
	KindDuplicateOffer      = "duplicate_offer"
	KindExternalService     = "external_service"
	KindInvalidArgument     = "invalid_argument"
	KindInternal            = "internal"
)

// KindOf возвращает код вида ошибки для транспортного слоя. ErrRecordNotFound из репозитория
// трактуется как KindNotFound.
func KindOf(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInsufficientBalance):
		return KindInsufficientBalance
	case errors.Is(err, ErrInvalidTransition):
		return KindInvalidTransition
	case errors.Is(err, ErrNotAuthorized):
		return KindNotAuthorized
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrRecordNotFound):
		return KindNotFound
	case errors.Is(err, ErrDuplicateOffer):
		return KindDuplicateOffer
	case errors.Is(err, ErrExternalService):
		return KindExternalService
	case errors.Is(err, ErrInvalidArgument):
		return KindInvalidArgument
	default:
		return KindInternal
	}
}

// ReasonOf возвращает причину отказа. Для ошибок, не являющихся RejectionError, возвращает пустую строку,
// чтоб не раскрывать внутренние детали.
func ReasonOf(err error) string {
	var rejection *RejectionError
	if errors.As(err, &rejection) {
		return rejection.Reason
	}
	return ""
}
