// Package http exposes the application's use cases over a REST API.
//
// The acting principal is resolved from the X-User-Id, X-User-Role and
// X-User-Name headers set by the identity proxy in front of this service.
// The handlers trust those headers as given and enforce only domain-level
// authorization.
package http

import (
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ReportSource yields the most recent background-computed statistics
// report, or nil when none has been published yet.
type ReportSource interface {
	Latest() *services.Report
}

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	Checkout        commands.CheckoutCommandHandler
	StartCooking    commands.StartCookingCommandHandler
	MarkOrderReady  commands.MarkOrderReadyCommandHandler
	AssignDriver    commands.AssignDriverCommandHandler
	AcceptDelivery  commands.AcceptDeliveryCommandHandler
	ConfirmDelivery commands.ConfirmDeliveryCommandHandler
	CancelOrder     commands.CancelOrderCommandHandler
	PostChatMessage commands.PostChatMessageCommandHandler
	ChangeRole      commands.ChangeRoleCommandHandler

	GetOrderStats     queries.GetOrderStatsQueryHandler
	GetActiveOrders   queries.GetActiveOrdersQueryHandler
	GetDriverOrders   queries.GetDriverOrdersQueryHandler
	GetCustomerOrders queries.GetCustomerOrdersQueryHandler
	GetChatHistory    queries.GetChatHistoryQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	reports  ReportSource
}

// NewServer creates a new HTTP server dispatching to the given handlers.
// The report source feeds the live dashboard endpoint.
func NewServer(handlers Handlers, reports ReportSource) *Server {
	return &Server{
		handlers: handlers,
		reports:  reports,
	}
}

// RegisterRoutes mounts all API routes under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.Checkout)
	v1.GET("/orders/active", s.GetActiveOrders)
	v1.GET("/orders/mine", s.GetMyOrders)
	v1.GET("/orders/assigned", s.GetAssignedOrders)

	v1.POST("/orders/:orderID/cooking", s.StartCooking)
	v1.POST("/orders/:orderID/ready", s.MarkOrderReady)
	v1.POST("/orders/:orderID/driver", s.AssignDriver)
	v1.POST("/orders/:orderID/delivery", s.AcceptDelivery)
	v1.POST("/orders/:orderID/delivered", s.ConfirmDelivery)
	v1.POST("/orders/:orderID/cancel", s.CancelOrder)

	v1.GET("/orders/:orderID/chat", s.GetChatHistory)
	v1.POST("/orders/:orderID/chat", s.PostChatMessage)

	v1.PATCH("/accounts/:accountID/role", s.ChangeRole)

	v1.GET("/stats", s.GetStats)
	v1.GET("/stats/live", s.GetLiveStats)
}

// actorFromHeaders builds the acting principal from the identity headers.
func actorFromHeaders(ctx echo.Context) (kernel.Actor, error) {
	id, err := kernel.UUIDFromString(ctx.Request().Header.Get("X-User-Id"))
	if err != nil {
		return kernel.Actor{}, errs.NewValueIsInvalidErrorWithCause("X-User-Id", err)
	}

	role, err := kernel.RoleFromString(ctx.Request().Header.Get("X-User-Role"))
	if err != nil {
		return kernel.Actor{}, errs.NewValueIsInvalidErrorWithCause("X-User-Role", err)
	}

	return kernel.NewActor(id, role, ctx.Request().Header.Get("X-User-Name"))
}

// orderIDFromPath parses the :orderID path parameter.
func orderIDFromPath(ctx echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}
	return id, nil
}

// Checkout handles POST /api/v1/orders - places a new order.
func (s *Server) Checkout(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request CheckoutRequest
	if err = ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cart := make([]commands.CartItem, len(request.Items))
	for i, item := range request.Items {
		productID, parseErr := kernel.UUIDFromString(item.ProductID)
		if parseErr != nil {
			return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("product_id", parseErr))
		}
		cart[i] = commands.CartItem{
			ProductID: productID,
			Quantity:  item.Quantity,
			Note:      item.Note,
		}
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(orderID, actor,
		request.DeliveryAddress, request.PhoneNumber, cart,
		request.DeliveryFee, request.Tip, request.PaymentMethod)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.Checkout.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CheckoutResponse{OrderID: orderID.String()})
}

// StartCooking handles POST /api/v1/orders/:orderID/cooking.
func (s *Server) StartCooking(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewStartCookingCommand(orderID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.StartCooking.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkOrderReady handles POST /api/v1/orders/:orderID/ready.
func (s *Server) MarkOrderReady(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkOrderReadyCommand(orderID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.MarkOrderReady.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDriver handles POST /api/v1/orders/:orderID/driver.
func (s *Server) AssignDriver(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request AssignDriverRequest
	if err = ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	driverID, err := kernel.UUIDFromString(request.DriverID)
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("driver_id", err))
	}

	cmd, err := commands.NewAssignDriverCommand(orderID, actor, driverID, request.DriverName)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AssignDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcceptDelivery handles POST /api/v1/orders/:orderID/delivery - the
// assigned driver picks the order up.
func (s *Server) AcceptDelivery(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAcceptDeliveryCommand(orderID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AcceptDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmDelivery handles POST /api/v1/orders/:orderID/delivered -
// completes the delivery against the customer's PIN.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request ConfirmDeliveryRequest
	if err = ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewConfirmDeliveryCommand(orderID, actor, request.Pin)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.ConfirmDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request CancelOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actor, request.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PostChatMessage handles POST /api/v1/orders/:orderID/chat.
func (s *Server) PostChatMessage(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request PostChatMessageRequest
	if err = ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	messageID := kernel.NewUUID()
	cmd, err := commands.NewPostChatMessageCommand(messageID, orderID, actor, request.Text)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.PostChatMessage.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PostChatMessageResponse{MessageID: messageID.String()})
}

// GetChatHistory handles GET /api/v1/orders/:orderID/chat.
func (s *Server) GetChatHistory(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetChatHistoryQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	messages, err := s.handlers.GetChatHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toChatMessages(messages))
}

// ChangeRole handles PATCH /api/v1/accounts/:accountID/role.
func (s *Server) ChangeRole(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	accountID, err := kernel.UUIDFromString(ctx.Param("accountID"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("accountID", err))
	}

	var request ChangeRoleRequest
	if err = ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewChangeRoleCommand(accountID, actor, request.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.ChangeRole.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveOrders handles GET /api/v1/orders/active - the kitchen board.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.handlers.GetActiveOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toActiveOrders(orders))
}

// GetMyOrders handles GET /api/v1/orders/mine - the caller's order history.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetCustomerOrdersQuery(actor.ID())
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.handlers.GetCustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCustomerOrders(orders))
}

// GetAssignedOrders handles GET /api/v1/orders/assigned - the calling
// driver's worklist.
func (s *Server) GetAssignedOrders(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetDriverOrdersQuery(actor.ID())
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.handlers.GetDriverOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDriverOrders(orders))
}

// GetStats handles GET /api/v1/stats - computes a report for the window
// given in the "window" query parameter (default "all").
func (s *Server) GetStats(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	windowName := ctx.QueryParam("window")
	if windowName == "" {
		windowName = services.WindowAll.String()
	}

	window, err := services.WindowFromString(windowName)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderStatsQuery(window, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	report, err := s.handlers.GetOrderStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toStatsReport(report))
}

// GetLiveStats handles GET /api/v1/stats/live - returns the latest
// background-computed all-time report. Staff roles only.
func (s *Server) GetLiveStats(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	if !actor.Role().HasFullReportingAccess() {
		return respondError(ctx, kernel.ErrNotPermitted)
	}

	report := s.reports.Latest()
	if report == nil {
		return ctx.JSON(http.StatusServiceUnavailable, Error{
			Code:    http.StatusServiceUnavailable,
			Message: "report not computed yet",
		})
	}

	return ctx.JSON(http.StatusOK, toStatsReport(*report))
}
