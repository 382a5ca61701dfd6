package uow

import "errors"

var (
	ErrRepositoryNotRegistered     = errors.New("uow: repository not registered")
	ErrRepositoryAlreadyRegistered = errors.New("uow: repository already registered")
	ErrInvalidRepositoryType       = errors.New("uow: unexpected repository type")
	ErrPanicInTransaction          = errors.New("uow: panic in transaction")
	ErrTooManyAttempts             = errors.New("uow: transaction conflicts")
)
