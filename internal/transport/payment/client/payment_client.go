package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	RoutePayment      = "/v1/payment"
	RoutePayout       = "/v1/payout"
	RouteTransfersFmt = "/v1/accounts/%s/transactions/trc20"
)

// USDTContract адрес контракта USDT в сети Tron.
const USDTContract = "TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t"

const (
	payCurrency      = "usdttrc20"
	transfersLimit   = 50
	defaultTimeout   = 15 * time.Second
	defaultRetryWait = 60
)

// Константы минимального и максимально значения в заголовке Retry-After.
const (
	minRetryAfter = 1
	maxRetryAfter = 120
)

// minorUnits сумма USDT в сети хранится в миллионных долях.
var minorUnits = decimal.NewFromInt(1_000_000) //nolint:gochecknoglobals

type Options struct {
	// PaymentURL адрес API платежного провайдера (выдача адресов и выплаты).
	PaymentURL string
	APIKey     string
	// ChainURL адрес API обозревателя сети, из которого читаются входящие переводы.
	ChainURL string
}

// HTTPClient клиент платежного провайдера и обозревателя сети.
type HTTPClient struct {
	opts       Options
	httpClient *http.Client
}

func New(opts Options) HTTPClient {
	return HTTPClient{
		opts:       opts,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

type allocateRequest struct {
	PriceAmount   int    `json:"price_amount"`
	PriceCurrency string `json:"price_currency"`
	PayCurrency   string `json:"pay_currency"`
	OrderID       string `json:"order_id"`
}

type allocateResponse struct {
	PayAddress string `json:"pay_address"`
}

// AllocateAddress запрашивает у провайдера адрес для пополнения баланса пользователя.
func (c HTTPClient) AllocateAddress(ctx context.Context, userID int64) (string, error) {
	var resp allocateResponse
	err := c.do(ctx, http.MethodPost, c.opts.PaymentURL+RoutePayment, allocateRequest{
		PriceAmount:   20, //nolint:mnd
		PriceCurrency: "usd",
		PayCurrency:   payCurrency,
		OrderID:       "user-" + strconv.FormatInt(userID, 10),
	}, nil, &resp)
	if err != nil {
		return "", err
	}
	if resp.PayAddress == "" {
		return "", errors.New("provider returned empty pay_address")
	}
	return resp.PayAddress, nil
}

type payoutWithdrawal struct {
	Address  string          `json:"address"`
	Currency string          `json:"currency"`
	Amount   decimal.Decimal `json:"amount"`
}

type payoutRequest struct {
	Withdrawals []payoutWithdrawal `json:"withdrawals"`
}

type PayoutStatus string

const (
	PayoutCreated  PayoutStatus = "CREATED"
	PayoutSending  PayoutStatus = "SENDING"
	PayoutFinished PayoutStatus = "FINISHED"
	PayoutRejected PayoutStatus = "REJECTED"
	PayoutFailed   PayoutStatus = "FAILED"
)

type payoutResponse struct {
	ID      string       `json:"id"`
	Status  PayoutStatus `json:"status"`
	Message string       `json:"message"`
}

// CreatePayout отправляет amount на address. Каждый вызов получает свой ключ идемпотентности.
// Отказ провайдера (статус REJECTED/FAILED или ответ 400/422) возвращается как PayoutResult с
// Success == false, ошибка возвращается только при недоступности провайдера.
func (c HTTPClient) CreatePayout(
	ctx context.Context,
	address string,
	amount decimal.Decimal,
) (*domain.PayoutResult, error) {
	headers := map[string]string{"Idempotency-Key": uuid.NewString()}
	var resp payoutResponse
	err := c.do(ctx, http.MethodPost, c.opts.PaymentURL+RoutePayout, payoutRequest{
		Withdrawals: []payoutWithdrawal{{Address: address, Currency: payCurrency, Amount: amount}},
	}, headers, &resp)

	if code, rejected := AsRejection(err); rejected {
		msg := resp.Message
		if msg == "" {
			msg = http.StatusText(code)
		}
		return &domain.PayoutResult{Success: false, Message: msg}, nil
	}
	if err != nil {
		return nil, err
	}

	switch resp.Status {
	case PayoutRejected, PayoutFailed:
		return &domain.PayoutResult{Success: false, Reference: resp.ID, Message: resp.Message}, nil
	default:
		return &domain.PayoutResult{Success: true, Reference: resp.ID}, nil
	}
}

type transfersResponse struct {
	Success bool `json:"success"`
	Data    []struct {
		TransactionID string `json:"transaction_id"`
		Value         string `json:"value"`
		From          string `json:"from"`
	} `json:"data"`
}

// IncomingTransfers возвращает последние входящие переводы USDT на address.
func (c HTTPClient) IncomingTransfers(ctx context.Context, address string) ([]domain.Transfer, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(transfersLimit))
	q.Set("only_to", "true")
	q.Set("contract_address", USDTContract)
	u := c.opts.ChainURL + fmt.Sprintf(RouteTransfersFmt, url.PathEscape(address)) + "?" + q.Encode()

	var resp transfersResponse
	if err := c.do(ctx, http.MethodGet, u, nil, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, nil
	}

	transfers := make([]domain.Transfer, 0, len(resp.Data))
	for _, tx := range resp.Data {
		value, err := decimal.NewFromString(tx.Value)
		if err != nil {
			return nil, fmt.Errorf("parse value of tx %s: %s", tx.TransactionID, err.Error())
		}
		transfers = append(transfers, domain.Transfer{
			TxID:   tx.TransactionID,
			From:   tx.From,
			Amount: value.Div(minorUnits),
		})
	}
	return transfers, nil
}

// do выполняет запрос и декодирует ответ в out. При ответе со статусом отличным от http.StatusOK
// возвращает StatusCodeError, или TooManyRequestError в случае http.StatusTooManyRequests. Тело ответа
// с ошибкой тоже декодируется в out, если это JSON.
//
//nolint:nonamedreturns
func (c HTTPClient) do(
	ctx context.Context,
	method, target string,
	payload any,
	headers map[string]string,
	out any,
) (err error) {
	var body io.Reader
	if payload != nil {
		raw, mErr := json.Marshal(payload)
		if mErr != nil {
			return fmt.Errorf("encode request: %s", mErr.Error())
		}
		body = bytes.NewReader(raw)
	}

	req, reqErr := http.NewRequestWithContext(ctx, method, target, body)
	if reqErr != nil {
		return fmt.Errorf("create request: %s", reqErr.Error())
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.opts.APIKey != "" {
		req.Header.Set("x-api-key", c.opts.APIKey)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return fmt.Errorf("do request: %s", doErr.Error())
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if resp.StatusCode == http.StatusTooManyRequests {
		return NewTooManyRequestError(retryAfter(resp.Header.Get("Retry-After")))
	}

	raw, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return fmt.Errorf("read response: %s", readErr.Error())
	}

	if resp.StatusCode != http.StatusOK {
		_ = json.Unmarshal(raw, out)
		return NewStatusCodeError(resp.StatusCode)
	}

	if jsonErr := json.Unmarshal(raw, out); jsonErr != nil {
		return fmt.Errorf("parse response: %s", jsonErr.Error())
	}
	return nil
}

func retryAfter(header string) time.Duration {
	value, parseErr := strconv.Atoi(header)
	if parseErr != nil || value < minRetryAfter || value > maxRetryAfter {
		// в случае ошибки или неверных данных ставим 60 секунд
		value = defaultRetryWait
	}
	return time.Duration(value) * time.Second
}
