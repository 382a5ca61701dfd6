package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/fsdevblog/gigmarket/internal/config"
	"github.com/fsdevblog/gigmarket/internal/ratelimit"
	"github.com/fsdevblog/gigmarket/internal/repository/pgrepo"
	"github.com/fsdevblog/gigmarket/internal/repository/repoargs"
	"github.com/fsdevblog/gigmarket/internal/service"
	"github.com/fsdevblog/gigmarket/internal/service/psswd"
	"github.com/fsdevblog/gigmarket/internal/session"
	"github.com/fsdevblog/gigmarket/internal/transport/api"
	"github.com/fsdevblog/gigmarket/internal/transport/notify"
	"github.com/fsdevblog/gigmarket/internal/transport/payment"
	"github.com/fsdevblog/gigmarket/internal/transport/payment/client"
	"github.com/fsdevblog/gigmarket/pkg/uow"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
)

const shutdownTimeout = 10 * time.Second

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.WithFields(logrus.Fields{
		"address":    a.Config.RunAddress,
		"migrations": a.Config.MigrationsDir,
		"redis":      a.Config.RedisAddr,
		"kafka":      a.Config.KafkaBrokers,
		"admins":     a.Config.AdminIDs,
	}).Info("starting app")

	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	rdb, redisErr := initRedis(notifyCtx, a.Config)
	if redisErr != nil {
		return fmt.Errorf("app run: %s", redisErr.Error())
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			a.Logger.WithError(err).Error("closing redis client")
		}
	}()

	notifier, closeNotifier, notifierErr := a.initNotifier()
	if notifierErr != nil {
		return fmt.Errorf("app run: %s", notifierErr.Error())
	}
	defer closeNotifier()

	payClient := client.New(client.Options{
		PaymentURL: a.Config.PaymentAPIURL,
		APIKey:     a.Config.PaymentAPIKey,
		ChainURL:   a.Config.ChainAPIURL,
	})

	jwtSecret := []byte(a.Config.JWTSecret)
	services, sErr := service.Factory(service.Dependencies{
		UOW:            unitOfWork,
		Logger:         a.Logger,
		Notifier:       notifier,
		Payments:       payClient,
		Limiter:        ratelimit.New(rdb),
		Interactions:   session.NewRedisStore(rdb, a.Config.InteractionTTL),
		PasswordHasher: psswd.PasswordHash{},
	}, service.Options{
		AdminIDs:                 a.Config.AdminIDs,
		AdminPasswordHash:        a.Config.AdminPasswordHash,
		JWTSecret:                jwtSecret,
		DefaultCommissionPercent: a.Config.DefaultCommissionPercent,
		VIPPrice:                 a.Config.VIPPrice,
		VIPDuration:              a.Config.VIPDuration,
		Limits: service.DailyLimits{
			Orders: a.Config.DailyOrderLimit,
			Offers: a.Config.DailyOfferLimit,
		},
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router := api.New(api.RouterArgs{
		Logger:             a.Logger,
		UserService:        services.Users,
		OrderService:       services.Orders,
		LedgerService:      services.Ledger,
		SettingsService:    services.Settings,
		ReviewService:      services.Reviews,
		ChatService:        services.Chat,
		WalletService:      services.Wallet,
		InteractionService: services.Interactions,
		JWTSecretKey:       jwtSecret,
		GatewayToken:       a.Config.GatewayToken,
	})

	srv := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second, //nolint:mnd
	}

	errChan := make(chan error, 1)
	go func() {
		if runErr := srv.ListenAndServe(); runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
			errChan <- runErr
		}
	}()

	processor := payment.NewProcessor(services.Wallet, payClient, a.Logger).
		SetWorkers(a.Config.DepositPollWorkers).
		SetInterval(a.Config.DepositPollInterval)

	// defer выполнится раньше закрытия пула и redis: текущее зачисление депозита успевает завершиться.
	stopPolling := runInBackground(notifyCtx, processor.Run)
	defer func() {
		stopPolling()
		a.Logger.Info("deposit poller stopped")
	}()

	select {
	case <-notifyCtx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.Logger.WithError(err).Error("http server shutdown")
		}
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

// runInBackground запускает run в отдельной горутине. Возвращаемая функция отменяет контекст run
// и дожидается ее завершения.
func runInBackground(ctx context.Context, run func(context.Context)) func() {
	runCtx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		run(runCtx)
	}()
	return func() {
		cancel()
		wg.Wait()
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName:        func(db uow.DBTX) uow.Repository { return pgrepo.NewUserRepository(db) },
		repoargs.OrderRepoName:       func(db uow.DBTX) uow.Repository { return pgrepo.NewOrderRepository(db) },
		repoargs.OfferRepoName:       func(db uow.DBTX) uow.Repository { return pgrepo.NewOfferRepository(db) },
		repoargs.LedgerRepoName:      func(db uow.DBTX) uow.Repository { return pgrepo.NewLedgerRepository(db) },
		repoargs.SettingRepoName:     func(db uow.DBTX) uow.Repository { return pgrepo.NewSettingRepository(db) },
		repoargs.ReviewRepoName:      func(db uow.DBTX) uow.Repository { return pgrepo.NewReviewRepository(db) },
		repoargs.ChatMessageRepoName: func(db uow.DBTX) uow.Repository { return pgrepo.NewChatMessageRepository(db) },
		repoargs.DepositRepoName:     func(db uow.DBTX) uow.Repository { return pgrepo.NewDepositRepository(db) },
		repoargs.CategoryRepoName:    func(db uow.DBTX) uow.Repository { return pgrepo.NewCategoryRepository(db) },
	}
	for name, factory := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}
	return unitOfWork, nil
}

func initRedis(ctx context.Context, conf *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     conf.RedisAddr,
		Password: conf.RedisPassword,
		DB:       conf.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("init redis: %s", err.Error())
	}
	return rdb, nil
}

// initNotifier создает канал уведомлений. Без брокеров kafka уведомления только пишутся в лог.
func (a *App) initNotifier() (service.Notifier, func(), error) {
	if len(a.Config.KafkaBrokers) == 0 {
		a.Logger.Warn("kafka brokers are not set, notifications go to the log")
		return notify.NewLogNotifier(a.Logger), func() {}, nil
	}

	producer, err := notify.NewSyncProducer(a.Config.KafkaBrokers)
	if err != nil {
		return nil, nil, fmt.Errorf("init notifier: %s", err.Error())
	}
	notifier := notify.NewKafkaNotifier(producer, a.Config.NotifyTopic)
	return notifier, func() {
		if closeErr := notifier.Close(); closeErr != nil {
			a.Logger.WithError(closeErr).Error("closing kafka producer")
		}
	}, nil
}
