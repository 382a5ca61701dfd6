package api

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	base58Alphabet   = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	tronAddressLen   = 34
	tronAddressFirst = 'T'
)

// customValidations теги, доступные в binding наряду со встроенными.
var customValidations = map[string]validator.Func{
	"max_bytes":      validateMaxBytes,
	"wallet_address": validateWalletAddress,
}

// validateMaxBytes ограничивает длину строки в байтах, в отличие от max, который считает руны.
func validateMaxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil || fl.Field().Kind() != reflect.String {
		return false
	}
	return len(fl.Field().String()) <= limit
}

// validateWalletAddress принимает base58 адрес TRON из 34 символов, начинающийся с T.
func validateWalletAddress(fl validator.FieldLevel) bool {
	addr := fl.Field().String()
	if len(addr) != tronAddressLen || addr[0] != tronAddressFirst {
		return false
	}
	return strings.Trim(addr, base58Alphabet) == ""
}

func registerValidators() error {
	engine, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("register validators: unexpected engine %T", binding.Validator.Engine())
	}
	for tag, fn := range customValidations {
		if err := engine.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register validator %s: %w", tag, err)
		}
	}
	return nil
}
