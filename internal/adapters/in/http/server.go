// Package http exposes the order lifecycle over the JSON API described by
// api/openapi.yml and generated into internal/generated/servers.
//
// The caller's identity is taken from the X-User-Identity header, which the
// authentication layer in front of the service sets. Handlers translate requests
// into commands and queries and map core error kinds to status codes.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/generated/servers"

	"github.com/ecodeclub/ekit/slice"
	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// IdentityHeader names the header carrying the authenticated caller identity.
const IdentityHeader = "X-User-Identity"

var _ servers.ServerInterface = (*Server)(nil)

// Server implements servers.ServerInterface.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	updateStatusHandler commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler  commands.CancelOrderCommandHandler

	// Query handlers
	getOrderHandler       queries.GetOrderQueryHandler
	listUserOrdersHandler queries.ListUserOrdersQueryHandler

	idempotency ports.IdempotencyStore
	logger      *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
// idempotency may be nil, in which case Idempotency-Key headers are ignored.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listUserOrdersHandler queries.ListUserOrdersQueryHandler,
	idempotency ports.IdempotencyStore,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:    createOrderHandler,
		updateStatusHandler:   updateStatusHandler,
		cancelOrderHandler:    cancelOrderHandler,
		getOrderHandler:       getOrderHandler,
		listUserOrdersHandler: listUserOrdersHandler,
		idempotency:           idempotency,
		logger:                logger.With("component", "http"),
	}
}

// Register mounts the API with request validation, plus the health, metrics and
// Swagger UI routes, on e.
func (s *Server) Register(e *echo.Echo, metrics *Metrics) error {
	doc, err := servers.GetSwagger()
	if err != nil {
		return err
	}
	registerDoc(doc)

	validator, err := RequestValidator(doc)
	if err != nil {
		return err
	}

	if metrics != nil {
		e.Use(metrics.Middleware())
		e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	}
	e.Use(validator)

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, s)
	return nil
}

// CreateOrder handles POST /api/v1/orders.
//
// With an Idempotency-Key the key is claimed before the order is placed, so of
// concurrent requests with one key exactly one places an order. A repeated key
// returns the order created the first time with 200 while a placement still
// running yields 409. Keys are scoped to the caller identity.
func (s *Server) CreateOrder(ctx echo.Context, params servers.CreateOrderParams) error {
	requester, err := requesterOf(ctx)
	if err != nil {
		return unauthenticated(ctx)
	}

	var body servers.NewOrder
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, shippingAddressID, lines, err := orderRequestOf(body)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}
	cmd, err := commands.NewCreateOrderCommand(requester, userID, shippingAddressID, lines)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	key := idempotencyKey(params)
	if key == "" || s.idempotency == nil {
		return s.placeOrder(ctx, cmd)
	}
	return s.placeOrderOnce(ctx, scopedKey(requester, key), cmd)
}

func (s *Server) placeOrder(ctx echo.Context, cmd commands.CreateOrderCommand) error {
	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toOrder(created))
}

func (s *Server) placeOrderOnce(ctx echo.Context, key string, cmd commands.CreateOrderCommand) error {
	reqCtx := ctx.Request().Context()

	orderID, claimed, err := s.idempotency.Claim(reqCtx, key)
	if err != nil {
		return s.fail(ctx, err)
	}
	if !claimed {
		return s.replay(ctx, orderID, cmd)
	}

	// The claim must be settled even when the client has gone away.
	settleCtx := context.WithoutCancel(reqCtx)

	created, err := s.createOrderHandler.Handle(reqCtx, cmd)
	if err != nil {
		if releaseErr := s.idempotency.Release(settleCtx, key); releaseErr != nil {
			s.logger.WarnContext(reqCtx, "idempotency claim not released",
				"key", key, "error", releaseErr)
		}
		return s.fail(ctx, err)
	}

	if err = s.idempotency.Complete(settleCtx, key, created.ID()); err != nil {
		s.logger.WarnContext(reqCtx, "idempotency key not completed",
			"key", key, "order_id", created.ID().String(), "error", err)
	}
	return ctx.JSON(http.StatusCreated, toOrder(created))
}

// replay answers a repeated key with the order it created. An order of another
// user is never returned: the request is placed as usual and fails authorization.
func (s *Server) replay(ctx echo.Context, orderID kernel.UUID, cmd commands.CreateOrderCommand) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	existing, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	if !existing.UserID().IsEqual(cmd.UserID()) {
		return s.placeOrder(ctx, cmd)
	}
	return ctx.JSON(http.StatusOK, toOrder(existing))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context, id servers.OrderId) error {
	orderID, err := toKernelUUID(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(found))
}

// ListUserOrders handles GET /api/v1/users/:userId/orders.
func (s *Server) ListUserOrders(ctx echo.Context, userId openapi_types.UUID) error {
	userID, err := toKernelUUID(userId)
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}

	query, err := queries.NewListUserOrdersQuery(userID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.listUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, slice.Map(orders, func(_ int, o *order.Order) servers.Order {
		return toOrder(o)
	}))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status. The caller must be
// a seller owning at least one product of the order.
func (s *Server) UpdateOrderStatus(ctx echo.Context, id servers.OrderId) error {
	requester, err := requesterOf(ctx)
	if err != nil {
		return unauthenticated(ctx)
	}

	orderID, err := toKernelUUID(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body servers.StatusChange
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(requester, orderID, body.Status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(updated))
}

// CancelOrder handles DELETE /api/v1/orders/:id. The order and its line items
// are removed; reserved stock is not returned.
func (s *Server) CancelOrder(ctx echo.Context, id servers.OrderId) error {
	orderID, err := toKernelUUID(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func requesterOf(ctx echo.Context) (kernel.Identity, error) {
	return kernel.NewIdentity(ctx.Request().Header.Get(IdentityHeader))
}

func unauthenticated(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, servers.Error{
		Code:    http.StatusUnauthorized,
		Message: "Missing " + IdentityHeader + " header",
	})
}
