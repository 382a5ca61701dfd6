package api

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/fsdevblog/gigmarket/internal/repository/repoargs"
	"github.com/fsdevblog/gigmarket/internal/service"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type OrderHandlerTestSuite struct {
	HandlerSuite
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func testOrder(id int64, status domain.OrderStatusType) *domain.Order {
	return &domain.Order{
		ID:         id,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
		Title:      "Логотип",
		Price:      decimal.RequireFromString("30"),
		Status:     status,
		CustomerID: userID,
		CategoryID: 1,
	}
}

func (s *OrderHandlerTestSuite) TestCreateOrder() {
	args := service.CreateOrderArgs{
		CustomerID: userID,
		CategoryID: 1,
		Title:      "Логотип",
		Price:      decimal.RequireFromString("30.00"),
	}
	s.orders.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(args)).
		DoAndReturn(func(_ any, got service.CreateOrderArgs) (*domain.Order, error) {
			s.Equal(args.CustomerID, got.CustomerID)
			s.True(args.Price.Equal(got.Price))
			if got.Title == "дорого" {
				return nil, domain.Reject(domain.ErrInsufficientBalance, "balance 10.00 is less than price 30.00")
			}
			return testOrder(40, domain.OrderStatusOpen), nil
		}).Times(3)

	cases := []struct {
		name       string
		body       string
		token      string
		wantStatus int
		wantError  string
	}{
		{
			name:       "all ok",
			body:       `{"category_id":1,"title":"Логотип","price":"30.00"}`,
			token:      s.userToken,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "insufficient balance",
			body:       `{"category_id":1,"title":"дорого","price":30}`,
			token:      s.userToken,
			wantStatus: http.StatusPaymentRequired,
			wantError:  domain.KindInsufficientBalance,
		},
		{
			name:       "not authorized",
			body:       `{"category_id":1,"title":"Логотип","price":"30.00"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "no title",
			body:       `{"category_id":1,"price":"30.00"}`,
			token:      s.userToken,
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "unprocessable_entity",
		},
		{
			name:       "cyrillic title at the limit",
			body:       `{"category_id":1,"title":"` + strings.Repeat("я", domain.MaxOrderTitleLength) + `","price":"30.00"}`,
			token:      s.userToken,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "title over the limit",
			body:       `{"category_id":1,"title":"` + strings.Repeat("я", domain.MaxOrderTitleLength+1) + `","price":"30.00"}`,
			token:      s.userToken,
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "unprocessable_entity",
		},
		{
			name:       "bad price",
			body:       `{"category_id":1,"title":"Логотип","price":"abc"}`,
			token:      s.userToken,
			wantStatus: http.StatusBadRequest,
			wantError:  "bad_request",
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.do(http.MethodPost, OrdersRoute, t.body, t.token)
			s.Equal(t.wantStatus, res.status)
			if t.wantError != "" {
				s.Equal(t.wantError, res.json()["error"])
			}
		})
	}
}

func (s *OrderHandlerTestSuite) TestShow() {
	s.orders.EXPECT().Get(gomock.Any(), userID, int64(40)).
		Return(testOrder(40, domain.OrderStatusOpen), nil).Times(1)
	s.orders.EXPECT().Get(gomock.Any(), userID, int64(41)).
		Return(nil, domain.Reject(domain.ErrNotFound, "order 41 not found")).Times(1)
	s.orders.EXPECT().Get(gomock.Any(), userID, int64(42)).
		Return(nil, domain.ErrUnknown).Times(1)

	res := s.do(http.MethodGet, "/orders/40", "", s.userToken)
	s.Equal(http.StatusOK, res.status)
	s.Equal("30.00", res.json()["price"])
	s.Equal("open", res.json()["status"])

	res = s.do(http.MethodGet, "/orders/41", "", s.userToken)
	s.Equal(http.StatusNotFound, res.status)
	s.Equal(map[string]any{"error": "not_found", "reason": "order 41 not found"}, res.json())

	// внутренние ошибки не раскрываются.
	res = s.do(http.MethodGet, "/orders/42", "", s.userToken)
	s.Equal(http.StatusInternalServerError, res.status)
	s.Equal(map[string]any{"error": "internal"}, res.json())

	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/orders/-1", "", s.userToken).status)
}

func (s *OrderHandlerTestSuite) TestLists() {
	s.orders.EXPECT().Feed(gomock.Any(), userID, repoargs.Page{}).
		Return([]domain.Order{*testOrder(1, domain.OrderStatusOpen)}, nil).Times(1)
	s.orders.EXPECT().ListByCustomer(gomock.Any(), userID).
		Return([]domain.Order{}, nil).Times(1)
	s.orders.EXPECT().ListByExecutor(gomock.Any(), userID).
		Return([]domain.Order{*testOrder(2, domain.OrderStatusInProgress)}, nil).Times(1)
	s.orders.EXPECT().Categories(gomock.Any()).
		Return([]domain.Category{{ID: 1, Name: "Дизайн"}}, nil).Times(1)

	res := s.do(http.MethodGet, OrdersFeedRoute, "", s.userToken)
	s.Equal(http.StatusOK, res.status)
	s.Contains(string(res.body), `"id":1`)

	res = s.do(http.MethodGet, OrdersMyRoute, "", s.userToken)
	s.Equal(http.StatusOK, res.status)
	s.JSONEq(`[]`, string(res.body))

	res = s.do(http.MethodGet, OrdersExecutingRoute, "", s.userToken)
	s.Equal(http.StatusOK, res.status)
	s.Contains(string(res.body), `"status":"in_progress"`)

	res = s.do(http.MethodGet, CategoriesRoute, "", s.userToken)
	s.Equal(http.StatusOK, res.status)
	s.JSONEq(`[{"id":1,"name":"Дизайн"}]`, string(res.body))
}

func (s *OrderHandlerTestSuite) TestOffers() {
	offer := &domain.Offer{ID: 9, OrderID: 40, ExecutorID: userID, Message: "сделаю"}
	s.orders.EXPECT().SubmitOffer(gomock.Any(), service.SubmitOfferArgs{
		OrderID:    40,
		ExecutorID: userID,
		Message:    "сделаю",
	}).Return(offer, nil).Times(1)
	s.orders.EXPECT().SubmitOffer(gomock.Any(), service.SubmitOfferArgs{
		OrderID:    40,
		ExecutorID: userID,
		Message:    "еще раз",
	}).Return(nil, domain.Reject(domain.ErrDuplicateOffer, "offer already submitted")).Times(1)
	s.orders.EXPECT().Offers(gomock.Any(), userID, int64(40)).
		Return([]domain.Offer{*offer}, nil).Times(1)
	s.orders.EXPECT().SelectOffer(gomock.Any(), userID, int64(9)).
		Return(nil, domain.Reject(domain.ErrInvalidTransition, "order is not open")).Times(1)

	res := s.do(http.MethodPost, "/orders/40/offers", `{"message":"сделаю"}`, s.userToken)
	s.Equal(http.StatusCreated, res.status)
	s.Equal("сделаю", res.json()["message"])

	res = s.do(http.MethodPost, "/orders/40/offers", `{"message":"еще раз"}`, s.userToken)
	s.Equal(http.StatusConflict, res.status)
	s.Equal(domain.KindDuplicateOffer, res.json()["error"])

	res = s.do(http.MethodGet, "/orders/40/offers", "", s.userToken)
	s.Equal(http.StatusOK, res.status)
	s.Contains(string(res.body), `"executor_id":1001`)

	res = s.do(http.MethodPost, "/offers/9/select", "", s.userToken)
	s.Equal(http.StatusConflict, res.status)
	s.Equal(domain.KindInvalidTransition, res.json()["error"])
}

func (s *OrderHandlerTestSuite) TestWorkflow() {
	executorID := int64(1002)
	pending := testOrder(40, domain.OrderStatusPendingApproval)
	pending.ExecutorID = &executorID
	completed := testOrder(40, domain.OrderStatusCompleted)
	completed.ExecutorID = &executorID

	s.orders.EXPECT().SubmitWork(gomock.Any(), userID, int64(40)).Return(pending, nil).Times(1)
	s.orders.EXPECT().AcceptWork(gomock.Any(), userID, int64(40)).Return(&service.Payout{
		Order:      completed,
		Commission: decimal.RequireFromString("3"),
		Reward:     decimal.RequireFromString("27"),
		Rate:       service.CommissionRate{Percent: decimal.NewFromInt(10), Version: 2},
	}, nil).Times(1)
	s.orders.EXPECT().OpenDispute(gomock.Any(), userID, int64(40)).
		Return(nil, domain.Reject(domain.ErrNotAuthorized, "only the customer can open a dispute")).Times(1)

	res := s.do(http.MethodPost, "/orders/40/submit", "", s.userToken)
	s.Equal(http.StatusOK, res.status)
	s.Equal("pending_approval", res.json()["status"])

	res = s.do(http.MethodPost, "/orders/40/accept", "", s.userToken)
	s.Equal(http.StatusOK, res.status)
	body := res.json()
	s.Equal("3.00", body["commission"])
	s.Equal("27.00", body["reward"])
	s.Equal("10", body["commission_percent"])
	s.Equal("completed", body["order"].(map[string]any)["status"])

	res = s.do(http.MethodPost, "/orders/40/dispute", "", s.userToken)
	s.Equal(http.StatusForbidden, res.status)
}

func (s *OrderHandlerTestSuite) TestAdminOrders() {
	s.orders.EXPECT().ListAll(gomock.Any(), adminID, domain.OrderStatusDispute, repoargs.Page{Limit: 5}).
		Return([]domain.Order{*testOrder(3, domain.OrderStatusDispute)}, nil).Times(1)
	s.orders.EXPECT().ResolveDispute(gomock.Any(), adminID, int64(3), domain.WinnerExecutor).
		Return(testOrder(3, domain.OrderStatusCompleted), nil).Times(1)

	res := s.do(http.MethodGet, AdminOrdersRoute+"?status=dispute&limit=5", "", s.adminToken)
	s.Equal(http.StatusOK, res.status)
	s.Contains(string(res.body), `"status":"dispute"`)

	res = s.do(http.MethodGet, AdminOrdersRoute+"?status=lost", "", s.adminToken)
	s.Equal(http.StatusBadRequest, res.status)

	res = s.do(http.MethodPost, "/admin/orders/3/resolve", `{"winner":"executor"}`, s.adminToken)
	s.Equal(http.StatusOK, res.status)
	s.Equal("completed", res.json()["status"])

	res = s.do(http.MethodPost, "/admin/orders/3/resolve", `{"winner":"nobody"}`, s.adminToken)
	s.Equal(http.StatusUnprocessableEntity, res.status)

	res = s.do(http.MethodPost, "/admin/orders/3/resolve", `{"winner":"executor"}`, s.userToken)
	s.Equal(http.StatusForbidden, res.status)
}
