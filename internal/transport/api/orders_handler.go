package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/fsdevblog/gigmarket/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type OrdersHandler struct {
	orderSvs OrderServicer
}

func NewOrdersHandler(orderSvs OrderServicer) *OrdersHandler {
	return &OrdersHandler{
		orderSvs: orderSvs,
	}
}

type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Categories GET RouteGroup + CategoriesRoute.
func (o *OrdersHandler) Categories(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	categories, err := o.orderSvs.Categories(reqCtx)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	response := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		response[i] = CategoryResponse{ID: category.ID, Name: category.Name}
	}
	c.JSON(http.StatusOK, response)
}

type CreateOrderParams struct {
	CategoryID  int64           `binding:"required,gt=0"              json:"category_id"`
	Title       string          `binding:"required,max=255"          json:"title"`
	Description string          `binding:"max_bytes=16384"            json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// Create POST RouteGroup + OrdersRoute.
func (o *OrdersHandler) Create(c *gin.Context) {
	var params CreateOrderParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.Create(reqCtx, service.CreateOrderArgs{
		CustomerID:  getUserIDFromContext(c),
		CategoryID:  params.CategoryID,
		Title:       params.Title,
		Description: params.Description,
		Price:       params.Price,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newOrderResponse(order))
}

// Show GET RouteGroup + OrderRoute.
func (o *OrdersHandler) Show(c *gin.Context) {
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.Get(reqCtx, getUserIDFromContext(c), orderID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderResponse(order))
}

// Feed GET RouteGroup + OrdersFeedRoute. Открытые заказы других пользователей.
func (o *OrdersHandler) Feed(c *gin.Context) {
	page, ok := pageFromQuery(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	orders, err := o.orderSvs.Feed(reqCtx, getUserIDFromContext(c), page)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrdersResponse(orders))
}

// My GET RouteGroup + OrdersMyRoute. Заказы, созданные пользователем.
func (o *OrdersHandler) My(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	orders, err := o.orderSvs.ListByCustomer(reqCtx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrdersResponse(orders))
}

// Executing GET RouteGroup + OrdersExecutingRoute. Заказы, где пользователь исполнитель.
func (o *OrdersHandler) Executing(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	orders, err := o.orderSvs.ListByExecutor(reqCtx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrdersResponse(orders))
}

// Offers GET RouteGroup + OrderOffersRoute. Доступно только заказчику.
func (o *OrdersHandler) Offers(c *gin.Context) {
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	offers, err := o.orderSvs.Offers(reqCtx, getUserIDFromContext(c), orderID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	response := make([]OfferResponse, len(offers))
	for i := range offers {
		response[i] = newOfferResponse(&offers[i])
	}
	c.JSON(http.StatusOK, response)
}

type SubmitOfferParams struct {
	Message string `binding:"max_bytes=4096" json:"message"`
}

// SubmitOffer POST RouteGroup + OrderOffersRoute.
func (o *OrdersHandler) SubmitOffer(c *gin.Context) {
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var params SubmitOfferParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	offer, err := o.orderSvs.SubmitOffer(reqCtx, service.SubmitOfferArgs{
		OrderID:    orderID,
		ExecutorID: getUserIDFromContext(c),
		Message:    params.Message,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newOfferResponse(offer))
}

// SelectOffer POST RouteGroup + OfferSelectRoute.
func (o *OrdersHandler) SelectOffer(c *gin.Context) {
	o.transition(c, o.orderSvs.SelectOffer)
}

// SubmitWork POST RouteGroup + OrderSubmitRoute.
func (o *OrdersHandler) SubmitWork(c *gin.Context) {
	o.transition(c, o.orderSvs.SubmitWork)
}

// OpenDispute POST RouteGroup + OrderDisputeRoute.
func (o *OrdersHandler) OpenDispute(c *gin.Context) {
	o.transition(c, o.orderSvs.OpenDispute)
}

// transition вызывает переход статуса заказа от имени текущего пользователя. id из пути
// передается в fn вторым аргументом.
func (o *OrdersHandler) transition(
	c *gin.Context,
	fn func(ctx context.Context, actorID, id int64) (*domain.Order, error),
) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := fn(reqCtx, getUserIDFromContext(c), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderResponse(order))
}

// AcceptWork POST RouteGroup + OrderAcceptRoute. Завершает заказ и выплачивает вознаграждение исполнителю.
func (o *OrdersHandler) AcceptWork(c *gin.Context) {
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	payout, err := o.orderSvs.AcceptWork(reqCtx, getUserIDFromContext(c), orderID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPayoutResponse(payout))
}

type AdminOrdersParams struct {
	Status domain.OrderStatusType `binding:"omitempty,oneof=open in_progress pending_approval dispute completed" form:"status"`
}

// AdminIndex GET RouteGroup + AdminOrdersRoute. Пустой status возвращает заказы во всех статусах.
func (o *OrdersHandler) AdminIndex(c *gin.Context) {
	var params AdminOrdersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithError(c, http.StatusBadRequest, err, gin.ErrorTypeBind)
		return
	}
	page, ok := pageFromQuery(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	orders, err := o.orderSvs.ListAll(reqCtx, getUserIDFromContext(c), params.Status, page)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrdersResponse(orders))
}

type ResolveDisputeParams struct {
	Winner domain.DisputeWinner `binding:"required,oneof=customer executor" json:"winner"`
}

// ResolveDispute POST RouteGroup + AdminResolveRoute.
func (o *OrdersHandler) ResolveDispute(c *gin.Context) {
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var params ResolveDisputeParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.ResolveDispute(reqCtx, getUserIDFromContext(c), orderID, params.Winner)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderResponse(order))
}
