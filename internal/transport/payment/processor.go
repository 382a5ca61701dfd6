// Package payment опрашивает сеть на предмет входящих переводов на адреса пользователей и зачисляет
// найденные депозиты.
package payment

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/fsdevblog/gigmarket/internal/service"
	"github.com/fsdevblog/gigmarket/internal/transport/payment/client"
	"github.com/sirupsen/logrus"
)

const (
	defaultServiceTimeout      = 3 * time.Second
	defaultAPITimeout          = 10 * time.Second
	defaultInterval            = 2 * time.Minute
	defaultPageSize       uint = 100
	defaultWorkers        uint = 5
)

// Processor периодически проверяет входящие переводы на выданные адреса пополнения.
type Processor struct {
	client   Client
	svs      Servicer
	l        *logrus.Entry
	pageSize uint
	workers  uint
	interval time.Duration
}

func NewProcessor(svs Servicer, c Client, l *logrus.Logger) *Processor {
	return &Processor{
		svs:    svs,
		client: c,
		l: l.WithFields(logrus.Fields{
			"component": "payment",
			"module":    "processor",
		}),
		pageSize: defaultPageSize,
		workers:  defaultWorkers,
		interval: defaultInterval,
	}
}

// SetPageSize устанавливает кол-во кошельков, запрашиваемых у сервисного слоя за раз.
func (p *Processor) SetPageSize(size uint) *Processor {
	if size > 0 {
		p.pageSize = size
	}
	return p
}

// SetWorkers устанавливает кол-во воркеров, параллельно опрашивающих сеть.
func (p *Processor) SetWorkers(workers uint) *Processor {
	if workers > 0 {
		p.workers = workers
	}
	return p
}

// SetInterval устанавливает паузу между циклами опроса.
func (p *Processor) SetInterval(interval time.Duration) *Processor {
	if interval > 0 {
		p.interval = interval
	}
	return p
}

// Run выполняет циклы опроса до отмены контекста.
//
// Алгоритм работы:
//  1. Кошельки запрашиваются через сервисный слой страницами по ID.
//  2. Для каждой страницы запускаются N воркеров (SetWorkers), которые запрашивают входящие переводы.
//  3. Каждый перевод зачисляется через сервисный слой, который сам отбрасывает уже обработанные txid.
//     Ошибка по одному кошельку не прерывает цикл, кошелек будет проверен в следующем.
//  4. Между циклами выдерживается пауза SetInterval с разбросом ±15%, чтобы не опрашивать сеть синхронно
//     с другими экземплярами.
func (p *Processor) Run(ctx context.Context) {
	p.l.WithFields(logrus.Fields{
		"pageSize": p.pageSize,
		"workers":  p.workers,
		"interval": p.interval.String(),
	}).Info("Starting")

	for {
		credited, err := p.process(ctx)
		switch {
		case err == nil:
			if credited > 0 {
				p.l.WithField("credited", credited).Info("deposits credited")
			}
		case errors.Is(err, ErrNoWallets), errors.Is(err, context.Canceled):
		default:
			p.l.WithError(err).Error("process error")
		}

		wait := time.Duration(jitter(float64(p.interval), 0.15, 0.15)) //nolint:mnd
		select {
		case <-ctx.Done():
			p.l.Info("Got stop signal, exiting...")
			return
		case <-time.After(wait):
		}
	}
}

// process выполняет один цикл опроса всех кошельков. Возвращает кол-во новых зачислений или ErrNoWallets,
// если адреса пополнения еще никому не выданы.
func (p *Processor) process(ctx context.Context) (int, error) {
	var afterID int64
	var credited, seen int
	for {
		wallets, err := p.produce(ctx, afterID)
		if err != nil {
			return credited, fmt.Errorf("process: %w", err)
		}
		if len(wallets) == 0 {
			break
		}
		seen += len(wallets)
		credited += p.runWorkers(ctx, wallets)

		afterID = wallets[len(wallets)-1].ID
		if uint(len(wallets)) < p.pageSize {
			break
		}
	}
	if seen == 0 {
		return 0, ErrNoWallets
	}
	return credited, nil
}

func (p *Processor) produce(ctx context.Context, afterID int64) ([]domain.User, error) {
	produceCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	wallets, err := p.svs.WalletsForPolling(produceCtx, afterID, p.pageSize)
	if err != nil {
		return nil, fmt.Errorf("produce: %w", err)
	}
	return wallets, nil
}

// workerResult результат проверки одного кошелька.
type workerResult struct {
	WorkerID uint
	User     *domain.User
	Credited int
	Error    error
}

// runWorkers раздает кошельки воркерам и дожидается окончания их работы. Возвращает кол-во новых зачислений.
func (p *Processor) runWorkers(ctx context.Context, wallets []domain.User) int {
	taskCh := make(chan *domain.User, len(wallets))
	for i := range wallets {
		taskCh <- &wallets[i]
	}
	close(taskCh)

	resultCh := make(chan *workerResult, len(wallets))
	wg := new(sync.WaitGroup)
	wg.Add(int(p.workers)) //nolint:gosec
	for i := range p.workers {
		go p.worker(ctx, wg, i+1, taskCh, resultCh)
	}
	wg.Wait()
	close(resultCh)

	var credited int
	for result := range resultCh {
		l := p.l.WithFields(logrus.Fields{
			"worker": result.WorkerID,
			"user":   result.User.ID,
		})
		if result.Error != nil {
			l.WithError(result.Error).Error("checking wallet")
		}
		credited += result.Credited
	}
	return credited
}

func (p *Processor) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	workerID uint,
	taskCh <-chan *domain.User,
	resultCh chan<- *workerResult,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-taskCh:
			if !ok {
				return
			}
			resultCh <- p.checkWallet(ctx, workerID, task)
		}
	}
}

// checkWallet запрашивает входящие переводы кошелька и зачисляет их. При ответе 429 ждет время,
// указанное в заголовке Retry-After, и повторяет запрос.
func (p *Processor) checkWallet(ctx context.Context, workerID uint, user *domain.User) *workerResult {
	result := &workerResult{WorkerID: workerID, User: user}

	var transfers []domain.Transfer
	for {
		reqCtx, cancel := context.WithTimeout(ctx, defaultAPITimeout)
		var err error
		transfers, err = p.client.IncomingTransfers(reqCtx, user.WalletAddress)
		cancel()
		if err == nil {
			break
		}
		var tooManyReq *client.TooManyRequestError
		if !errors.As(err, &tooManyReq) {
			result.Error = err
			return result
		}
		select {
		case <-ctx.Done():
			result.Error = ctx.Err()
			return result
		case <-time.After(tooManyReq.RetryAfter):
		}
	}

	var errs []error
	for _, tr := range transfers {
		isNew, err := p.credit(ctx, user.ID, tr)
		if err != nil {
			errs = append(errs, fmt.Errorf("tx %s: %w", tr.TxID, err))
			continue
		}
		if isNew {
			result.Credited++
		}
	}
	result.Error = errors.Join(errs...)
	return result
}

func (p *Processor) credit(ctx context.Context, userID int64, tr domain.Transfer) (bool, error) {
	reqCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()
	return p.svs.CreditDeposit(reqCtx, service.CreditDepositArgs{ //nolint:wrapcheck
		TxID:   tr.TxID,
		UserID: userID,
		Amount: tr.Amount,
	})
}

// jitter возвращает число, рассыпавшееся относительно value на случайный процент в пределах
// [1-minPercent, 1+maxPercent].
//
// minPercent и maxPercent должны быть >= 0 (0.1 = 10%). Если указано иное, значение выставится в 0.15.
func jitter(value, minPercent, maxPercent float64) float64 {
	if minPercent < 0 || maxPercent < 0 {
		minPercent = 0.15
		maxPercent = 0.15
	}
	factor := 1 - minPercent + rand.Float64()*(minPercent+maxPercent) //nolint:gosec
	return value * factor
}
