package api

import (
	"testing"

	"github.com/fsdevblog/gigmarket/internal/transport/api/testutils"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomValidations(t *testing.T) {
	v := validator.New()
	for tag, fn := range customValidations {
		require.NoError(t, v.RegisterValidation(tag, fn))
	}

	type payload struct {
		Title   string `validate:"max_bytes=8"`
		Address string `validate:"wallet_address"`
	}
	const address = "TQn9Y2khEsLJW1ChVWFMSMeRDow5KcbLSE"

	assert.NoError(t, v.Struct(payload{Title: "short", Address: address}))
	assert.Error(t, v.Struct(payload{Title: testutils.GenerateOverBytesUnderRunes(3), Address: address}),
		"3 руны по 4 байта превышают 8 байт")

	for _, bad := range []string{
		"",
		"AQn9Y2khEsLJW1ChVWFMSMeRDow5KcbLSE",
		"TQn9Y2khEsLJW1ChVWFMSMeRDow5KcbLS",
		"TQn9Y2khEsLJW1ChVWFMSMeRDow5KcbL0E",
	} {
		assert.Error(t, v.Struct(payload{Address: bad}), bad)
	}
}
