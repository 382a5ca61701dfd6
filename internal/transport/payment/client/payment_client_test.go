package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	server *httptest.Server
	mux    *http.ServeMux
	client HTTPClient
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(s.mux)
	s.client = New(Options{PaymentURL: s.server.URL, APIKey: "key", ChainURL: s.server.URL})
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	s.NoError(json.NewEncoder(w).Encode(v))
}

func (s *ClientTestSuite) TestAllocateAddress() {
	s.mux.HandleFunc("POST "+RoutePayment, func(w http.ResponseWriter, r *http.Request) {
		s.Equal("key", r.Header.Get("x-api-key"))
		var req allocateRequest
		s.NoError(json.NewDecoder(r.Body).Decode(&req))
		s.Equal("user-42", req.OrderID)
		s.Equal(payCurrency, req.PayCurrency)
		s.writeJSON(w, http.StatusOK, map[string]string{"pay_address": "TAddr42"})
	})

	address, err := s.client.AllocateAddress(s.T().Context(), 42)
	s.Require().NoError(err)
	s.Equal("TAddr42", address)
}

func (s *ClientTestSuite) TestAllocateAddressEmpty() {
	s.mux.HandleFunc("POST "+RoutePayment, func(w http.ResponseWriter, _ *http.Request) {
		s.writeJSON(w, http.StatusOK, map[string]string{})
	})

	_, err := s.client.AllocateAddress(s.T().Context(), 42)
	s.Require().Error(err)
}

func (s *ClientTestSuite) TestCreatePayout() {
	keys := make(map[string]bool)
	s.mux.HandleFunc("POST "+RoutePayout, func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get("Idempotency-Key")
		_, err := uuid.Parse(key)
		s.NoError(err)
		keys[key] = true

		var req payoutRequest
		s.NoError(json.NewDecoder(r.Body).Decode(&req))
		if !s.Len(req.Withdrawals, 1) {
			return
		}
		w0 := req.Withdrawals[0]
		switch w0.Address {
		case "TGood":
			s.True(decimal.RequireFromString("12.5").Equal(w0.Amount))
			s.writeJSON(w, http.StatusOK, payoutResponse{ID: "p-1", Status: PayoutCreated})
		case "TRejected":
			s.writeJSON(w, http.StatusOK, payoutResponse{ID: "p-2", Status: PayoutRejected, Message: "limit"})
		case "TInvalid":
			s.writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid address"})
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	})

	res, err := s.client.CreatePayout(s.T().Context(), "TGood", decimal.RequireFromString("12.5"))
	s.Require().NoError(err)
	s.Equal(&domain.PayoutResult{Success: true, Reference: "p-1"}, res)

	res, err = s.client.CreatePayout(s.T().Context(), "TRejected", decimal.NewFromInt(1))
	s.Require().NoError(err)
	s.False(res.Success)
	s.Equal("limit", res.Message)

	res, err = s.client.CreatePayout(s.T().Context(), "TInvalid", decimal.NewFromInt(1))
	s.Require().NoError(err)
	s.False(res.Success)
	s.Equal("invalid address", res.Message)

	_, err = s.client.CreatePayout(s.T().Context(), "TBroken", decimal.NewFromInt(1))
	var statusErr *StatusCodeError
	s.Require().ErrorAs(err, &statusErr)
	s.Equal(http.StatusInternalServerError, statusErr.Code)

	s.Len(keys, 4, "ключ идемпотентности уникален для каждой выплаты")
}

func (s *ClientTestSuite) TestIncomingTransfers() {
	s.mux.HandleFunc("GET /v1/accounts/TAddr/transactions/trc20", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("true", r.URL.Query().Get("only_to"))
		s.Equal(USDTContract, r.URL.Query().Get("contract_address"))
		s.writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"data": []map[string]string{
				{"transaction_id": "tx1", "value": "7770000", "from": "TSender"},
				{"transaction_id": "tx2", "value": "1500", "from": "TSender"},
			},
		})
	})

	transfers, err := s.client.IncomingTransfers(s.T().Context(), "TAddr")
	s.Require().NoError(err)
	s.Require().Len(transfers, 2)
	s.Equal("tx1", transfers[0].TxID)
	s.Equal("TSender", transfers[0].From)
	s.True(decimal.RequireFromString("7.77").Equal(transfers[0].Amount))
	s.True(decimal.RequireFromString("0.0015").Equal(transfers[1].Amount))
}

func (s *ClientTestSuite) TestTooManyRequests() {
	s.mux.HandleFunc("GET /v1/accounts/TAddr/transactions/trc20", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Retry-After", "5")
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := s.client.IncomingTransfers(s.T().Context(), "TAddr")
	var tooMany *TooManyRequestError
	s.Require().ErrorAs(err, &tooMany)
	s.Equal(5*time.Second, tooMany.RetryAfter)
}

func TestRetryAfter(t *testing.T) {
	cases := map[string]time.Duration{
		"10":   10 * time.Second,
		"":     60 * time.Second,
		"0":    60 * time.Second,
		"1000": 60 * time.Second,
		"abc":  60 * time.Second,
	}
	for header, want := range cases {
		if got := retryAfter(header); got != want {
			t.Errorf("retryAfter(%q) = %s, want %s", header, got, want)
		}
	}
}

func TestAsRejection(t *testing.T) {
	code, ok := AsRejection(fmt.Errorf("payout: %w", NewStatusCodeError(http.StatusUnprocessableEntity)))
	if !ok || code != http.StatusUnprocessableEntity {
		t.Errorf("expected rejection 422, got %d %v", code, ok)
	}
	if _, ok = AsRejection(NewStatusCodeError(http.StatusBadGateway)); ok {
		t.Error("502 is not a rejection")
	}
	if _, ok = AsRejection(NewTooManyRequestError(time.Second)); ok {
		t.Error("rate limit is not a rejection")
	}
}
