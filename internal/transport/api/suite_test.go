package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fsdevblog/gigmarket/internal/logger"
	"github.com/fsdevblog/gigmarket/internal/service/tokens"
	"github.com/fsdevblog/gigmarket/internal/transport/api/mocks"
	"github.com/fsdevblog/gigmarket/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const (
	testGatewayToken = "gateway secret"
	userID           = int64(1001)
	adminID          = int64(1)
)

// HandlerSuite роутер со всеми сервисами, замененными моками.
type HandlerSuite struct {
	suite.Suite
	router       *gin.Engine
	jwtSecret    []byte
	userToken    string
	adminToken   string
	users        *mocks.MockUserServicer
	orders       *mocks.MockOrderServicer
	ledger       *mocks.MockLedgerServicer
	settings     *mocks.MockSettingsServicer
	reviews      *mocks.MockReviewServicer
	chat         *mocks.MockChatServicer
	wallet       *mocks.MockWalletServicer
	interactions *mocks.MockInteractionServicer
}

func (s *HandlerSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	s.jwtSecret = []byte("super secret key")

	var err error
	s.userToken, err = tokens.GenerateUserJWT(userID, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	s.adminToken, err = tokens.GenerateAdminJWT(adminID, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
}

func (s *HandlerSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())

	s.users = mocks.NewMockUserServicer(mockCtrl)
	s.orders = mocks.NewMockOrderServicer(mockCtrl)
	s.ledger = mocks.NewMockLedgerServicer(mockCtrl)
	s.settings = mocks.NewMockSettingsServicer(mockCtrl)
	s.reviews = mocks.NewMockReviewServicer(mockCtrl)
	s.chat = mocks.NewMockChatServicer(mockCtrl)
	s.wallet = mocks.NewMockWalletServicer(mockCtrl)
	s.interactions = mocks.NewMockInteractionServicer(mockCtrl)

	s.router = New(RouterArgs{
		Logger:             logger.New(io.Discard, "error"),
		UserService:        s.users,
		OrderService:       s.orders,
		LedgerService:      s.ledger,
		SettingsService:    s.settings,
		ReviewService:      s.reviews,
		ChatService:        s.chat,
		WalletService:      s.wallet,
		InteractionService: s.interactions,
		JWTSecretKey:       s.jwtSecret,
		GatewayToken:       testGatewayToken,
	})
}

// decimalEq сравнивает денежные суммы по значению, а не по представлению.
type decimalEq struct {
	want decimal.Decimal
}

func amount(value string) gomock.Matcher {
	return decimalEq{want: decimal.RequireFromString(value)}
}

func (m decimalEq) Matches(x any) bool {
	got, ok := x.(decimal.Decimal)
	return ok && got.Equal(m.want)
}

func (m decimalEq) String() string {
	return "is equal to " + m.want.String()
}

type response struct {
	status int
	header http.Header
	body   []byte
}

// json разбирает тело ответа в объект.
func (r response) json() map[string]any {
	var out map[string]any
	_ = json.Unmarshal(r.body, &out)
	return out
}

// do выполняет запрос к роутеру. Пустой token означает запрос без авторизации.
func (s *HandlerSuite) do(
	method, url, body, token string,
	opts ...func(*testutils.RequestOptions),
) response {
	args := testutils.RequestArgs{
		Router: s.router,
		Method: method,
		URL:    RouteGroup + url,
	}
	if body != "" {
		args.Body = strings.NewReader(body)
		opts = append(opts, testutils.WithHeader("Content-Type", "application/json"))
	}
	if token != "" {
		opts = append(opts, testutils.WithHeader("Authorization", "Bearer "+token))
	}

	res, err := testutils.MakeRequest(args, opts...)
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	raw, err := io.ReadAll(res.Body)
	s.Require().NoError(err)
	return response{status: res.StatusCode, header: res.Header, body: raw}
}
