package service

import (
	"errors"

	"github.com/golang/mock/gomock"
)

//nolint:gochecknoglobals
var (
	gomockAny      = gomock.Any()
	errLimiterDown = errors.New("redis: connection refused")
)
