package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/fsdevblog/gigmarket/internal/app"
	"github.com/fsdevblog/gigmarket/internal/config"
	"github.com/fsdevblog/gigmarket/internal/logger"
	"github.com/fsdevblog/gigmarket/internal/service/psswd"
)

func main() {
	// echo -n secret | gigmarket hash-password
	if len(os.Args) > 1 && os.Args[1] == hashPasswordCommand {
		if err := hashPassword(os.Stdin, os.Stdout, psswd.PasswordHash{}); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	// .env необязателен, переменные окружения процесса имеют приоритет.
	_ = godotenv.Load()

	conf := config.MustLoadConfig()
	l := logger.New(os.Stdout, conf.LogLevel)

	if err := app.New(conf, l).Run(); err != nil {
		if errors.Is(err, context.Canceled) {
			l.Info("graceful shutdown")
			os.Exit(0)
		}
		l.WithError(err).Fatal("app stopped")
	}
}
