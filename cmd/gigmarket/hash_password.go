package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const hashPasswordCommand = "hash-password"

type passwordHasher interface {
	HashPassword(password string) (string, error)
}

// hashPassword читает пароль первой строкой из in и печатает в out bcrypt хэш для ADMIN_PASSWORD_HASH.
func hashPassword(in io.Reader, out io.Writer, hasher passwordHasher) error {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return errors.New("password must not be empty")
	}

	hash, err := hasher.HashPassword(password)
	if err != nil {
		return err //nolint:wrapcheck
	}
	_, err = fmt.Fprintln(out, hash)
	return err //nolint:wrapcheck
}
