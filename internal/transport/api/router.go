package api

import (
	"time"

	"github.com/fsdevblog/gigmarket/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup = "/api"

	StartRoute           = "/users/start"
	MeRoute              = "/me"
	MeVIPRoute           = "/me/vip"
	UserReviewsRoute     = "/users/:id/reviews"
	CategoriesRoute      = "/categories"
	OrdersRoute          = "/orders"
	OrdersFeedRoute      = "/orders/feed"
	OrdersMyRoute        = "/orders/my"
	OrdersExecutingRoute = "/orders/executing"
	OrderRoute           = "/orders/:id"
	OrderOffersRoute     = "/orders/:id/offers"
	OrderSubmitRoute     = "/orders/:id/submit"
	OrderAcceptRoute     = "/orders/:id/accept"
	OrderDisputeRoute    = "/orders/:id/dispute"
	OrderChatRoute       = "/orders/:id/chat"
	OrderReviewsRoute    = "/orders/:id/reviews"
	OfferSelectRoute     = "/offers/:id/select"

	BalanceRoute         = "/balance"
	BalanceHistoryRoute  = "/balance/history"
	BalanceDepositRoute  = "/balance/deposit-address"
	BalanceWithdrawRoute = "/balance/withdraw"

	InteractionRoute      = "/interaction"
	InteractionInputRoute = "/interaction/input"

	AdminLoginRoute      = "/admin/login"
	AdminUsersRoute      = "/admin/users"
	AdminBlockRoute      = "/admin/users/:id/block"
	AdminUnblockRoute    = "/admin/users/:id/unblock"
	AdminCreditRoute     = "/admin/users/:id/credit"
	AdminDebitRoute      = "/admin/users/:id/debit"
	AdminReconcileRoute  = "/admin/users/:id/reconcile"
	AdminOrdersRoute     = "/admin/orders"
	AdminResolveRoute    = "/admin/orders/:id/resolve"
	AdminChatRoute       = "/admin/orders/:id/chat"
	AdminCommissionRoute = "/admin/settings/commission"
)

type RouterArgs struct {
	Logger             *logrus.Logger
	UserService        UserServicer
	OrderService       OrderServicer
	LedgerService      LedgerServicer
	SettingsService    SettingsServicer
	ReviewService      ReviewServicer
	ChatService        ChatServicer
	WalletService      WalletServicer
	InteractionService InteractionServicer
	JWTSecretKey       []byte
	GatewayToken       string
}

func New(args RouterArgs) *gin.Engine {
	if err := registerValidators(); err != nil {
		panic(err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	usersHandler := NewUsersHandler(args.UserService)
	ordersHandler := NewOrdersHandler(args.OrderService)
	balanceHandler := NewBalanceHandler(args.LedgerService, args.WalletService)
	settingsHandler := NewSettingsHandler(args.SettingsService)
	reviewsHandler := NewReviewsHandler(args.ReviewService)
	chatHandler := NewChatHandler(args.ChatService)
	interactionHandler := NewInteractionHandler(args.InteractionService)

	api := r.Group(RouteGroup)

	api.POST(StartRoute, middlewares.GatewayToken(args.GatewayToken), usersHandler.Start)
	api.POST(AdminLoginRoute, usersHandler.AdminLogin)

	admin := api.Group("", middlewares.AuthRequired(args.JWTSecretKey), middlewares.AdminRequired())
	admin.GET(AdminUsersRoute, usersHandler.AdminIndex)
	admin.POST(AdminBlockRoute, usersHandler.Block)
	admin.POST(AdminUnblockRoute, usersHandler.Unblock)
	admin.POST(AdminCreditRoute, balanceHandler.AdminCredit)
	admin.POST(AdminDebitRoute, balanceHandler.AdminDebit)
	admin.GET(AdminReconcileRoute, balanceHandler.Reconcile)
	admin.GET(AdminOrdersRoute, ordersHandler.AdminIndex)
	admin.POST(AdminResolveRoute, ordersHandler.ResolveDispute)
	admin.GET(AdminChatRoute, chatHandler.Index)
	admin.GET(AdminCommissionRoute, settingsHandler.Commission)
	admin.PUT(AdminCommissionRoute, settingsHandler.SetCommission)

	// ниже все роуты группы требуют авторизованного пользователя.
	user := api.Group("", middlewares.AuthRequired(args.JWTSecretKey))
	user.GET(MeRoute, usersHandler.Me)
	user.POST(MeVIPRoute, usersHandler.PurchaseVIP)
	user.GET(UserReviewsRoute, reviewsHandler.Index)

	user.GET(CategoriesRoute, ordersHandler.Categories)
	user.POST(OrdersRoute, ordersHandler.Create)
	user.GET(OrdersFeedRoute, ordersHandler.Feed)
	user.GET(OrdersMyRoute, ordersHandler.My)
	user.GET(OrdersExecutingRoute, ordersHandler.Executing)
	user.GET(OrderRoute, ordersHandler.Show)
	user.GET(OrderOffersRoute, ordersHandler.Offers)
	user.POST(OrderOffersRoute, ordersHandler.SubmitOffer)
	user.POST(OfferSelectRoute, ordersHandler.SelectOffer)
	user.POST(OrderSubmitRoute, ordersHandler.SubmitWork)
	user.POST(OrderAcceptRoute, ordersHandler.AcceptWork)
	user.POST(OrderDisputeRoute, ordersHandler.OpenDispute)
	user.GET(OrderChatRoute, chatHandler.Index)
	user.POST(OrderChatRoute, chatHandler.Send)
	user.POST(OrderReviewsRoute, reviewsHandler.Create)

	user.GET(BalanceRoute, balanceHandler.Index)
	user.GET(BalanceHistoryRoute, balanceHandler.History)
	user.POST(BalanceDepositRoute, balanceHandler.DepositAddress)
	user.POST(BalanceWithdrawRoute, balanceHandler.Withdraw)

	user.GET(InteractionRoute, interactionHandler.Show)
	user.POST(InteractionRoute, interactionHandler.Begin)
	user.DELETE(InteractionRoute, interactionHandler.Cancel)
	user.POST(InteractionInputRoute, interactionHandler.Input)
	return r
}
