package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fsdevblog/gigmarket/internal/service/psswd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hasher := psswd.PasswordHash{Cost: bcrypt.MinCost}

	for _, input := range []string{"s3cret\n", "s3cret\r\n", "s3cret"} {
		var out bytes.Buffer
		require.NoError(t, hashPassword(strings.NewReader(input), &out, hasher))

		hash := strings.TrimSpace(out.String())
		assert.True(t, hasher.ComparePassword("s3cret", hash), "input %q", input)
	}

	var out bytes.Buffer
	assert.Error(t, hashPassword(strings.NewReader("\n"), &out, hasher))
	assert.Empty(t, out.String())
}
