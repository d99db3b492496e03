// Package http adapts the generated OpenAPI server interface to the
// application's command and query handlers.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"linenflow/internal/core/application/projections"
	"linenflow/internal/core/application/usecases/commands"
	"linenflow/internal/core/application/usecases/queries"
	"linenflow/internal/core/domain/model/kernel"
	"linenflow/internal/core/domain/model/order"
	"linenflow/internal/core/domain/services"
	"linenflow/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	claimOrderHandler   commands.ClaimOrderCommandHandler
	releaseOrderHandler commands.ReleaseOrderCommandHandler
	departHandler       commands.DepartCommandHandler
	deliverOrderHandler commands.DeliverOrderCommandHandler
	settlePickupHandler commands.SettlePickupCommandHandler

	// Query handlers
	getAvailableOrdersHandler  queries.GetAvailableOrdersQueryHandler
	getInTransitOrdersHandler  queries.GetInTransitOrdersQueryHandler
	getDeliveredTodayHandler   queries.GetDeliveredTodayQueryHandler
	getPickupProjectionHandler queries.GetPickupProjectionQueryHandler

	// projectionStore holds the last reconciliation sweep's projections.
	// Serves as a degraded answer when a fresh recompute is unavailable.
	projectionStore *projections.Store

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	claimOrderHandler commands.ClaimOrderCommandHandler,
	releaseOrderHandler commands.ReleaseOrderCommandHandler,
	departHandler commands.DepartCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	settlePickupHandler commands.SettlePickupCommandHandler,
	getAvailableOrdersHandler queries.GetAvailableOrdersQueryHandler,
	getInTransitOrdersHandler queries.GetInTransitOrdersQueryHandler,
	getDeliveredTodayHandler queries.GetDeliveredTodayQueryHandler,
	getPickupProjectionHandler queries.GetPickupProjectionQueryHandler,
	projectionStore *projections.Store,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		claimOrderHandler:          claimOrderHandler,
		releaseOrderHandler:        releaseOrderHandler,
		departHandler:              departHandler,
		deliverOrderHandler:        deliverOrderHandler,
		settlePickupHandler:        settlePickupHandler,
		getAvailableOrdersHandler:  getAvailableOrdersHandler,
		getInTransitOrdersHandler:  getInTransitOrdersHandler,
		getDeliveredTodayHandler:   getDeliveredTodayHandler,
		getPickupProjectionHandler: getPickupProjectionHandler,
		projectionStore:            projectionStore,
		logger:                     logger.With("component", "http_server"),
	}
}

// CreateOrder handles POST /api/v1/orders - registers a new delivery order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(newOrder.Id[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}
	propertyID, err := kernel.UUIDFromBytes(newOrder.PropertyId[:])
	if err != nil {
		return badRequest(ctx, "Invalid property id")
	}

	items, err := toDomainItems(newOrder.Items)
	if err != nil {
		return badRequest(ctx, "Invalid order items: "+err.Error())
	}

	includePickup := true
	if newOrder.IncludePickup != nil {
		includePickup = *newOrder.IncludePickup
	}

	urgency := order.UrgencyNormal
	if newOrder.Urgency != nil {
		urgency, err = order.UrgencyFromString(string(*newOrder.Urgency))
		if err != nil {
			return badRequest(ctx, "Invalid urgency")
		}
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, propertyID, items, includePickup, urgency)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: "Failed to create order",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// ClaimOrder handles POST /api/v1/orders/{orderId}/claim.
func (s *Server) ClaimOrder(ctx echo.Context, orderId servers.OrderId) error {
	var claim servers.ClaimRequest
	if err := ctx.Bind(&claim); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}
	courierID, err := kernel.UUIDFromBytes(claim.CourierId[:])
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	cmd, err := commands.NewClaimOrderCommand(orderID, courierID)
	if err != nil {
		return badRequest(ctx, "Invalid claim data: "+err.Error())
	}

	switch handleErr := s.claimOrderHandler.Handle(ctx.Request().Context(), cmd); {
	case handleErr == nil:
		return ctx.NoContent(http.StatusNoContent)
	case errors.Is(handleErr, commands.ErrOrderNotFound):
		return notFound(ctx, "Order not found")
	case errors.Is(handleErr, commands.ErrOrderClaimConflict):
		return conflict(ctx, "Order was claimed by another courier")
	default:
		return conflict(ctx, "Order cannot be claimed")
	}
}

// ReleaseOrder handles POST /api/v1/orders/{orderId}/release.
func (s *Server) ReleaseOrder(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewReleaseOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid release data: "+err.Error())
	}

	switch handleErr := s.releaseOrderHandler.Handle(ctx.Request().Context(), cmd); {
	case handleErr == nil:
		return ctx.NoContent(http.StatusNoContent)
	case errors.Is(handleErr, commands.ErrOrderNotFound):
		return notFound(ctx, "Order not found")
	default:
		return conflict(ctx, "Order cannot be released")
	}
}

// DeliverOrder handles POST /api/v1/orders/{orderId}/deliver - delivery
// without a pickup report.
func (s *Server) DeliverOrder(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeliverOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid deliver data: "+err.Error())
	}

	switch handleErr := s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd); {
	case handleErr == nil:
		return ctx.NoContent(http.StatusNoContent)
	case errors.Is(handleErr, commands.ErrOrderNotFound):
		return notFound(ctx, "Order not found")
	default:
		return conflict(ctx, "Order cannot be delivered")
	}
}

// SettlePickup handles POST /api/v1/orders/{orderId}/settle - delivery with a
// pickup report, followed by settlement of the property's pickup debt.
func (s *Server) SettlePickup(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.PickupReport
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	report, err := toDomainReport(body)
	if err != nil {
		return badRequest(ctx, "Invalid pickup report: "+err.Error())
	}

	cmd, err := commands.NewSettlePickupCommand(orderID, report)
	if err != nil {
		return badRequest(ctx, "Invalid settle data: "+err.Error())
	}

	switch handleErr := s.settlePickupHandler.Handle(ctx.Request().Context(), cmd); {
	case handleErr == nil:
		return ctx.NoContent(http.StatusNoContent)
	case errors.Is(handleErr, commands.ErrOrderNotFound):
		return notFound(ctx, "Order not found")
	default:
		return conflict(ctx, "Order cannot be settled")
	}
}

// DepartOrders handles POST /api/v1/couriers/{courierId}/depart - moves every
// picking order owned by the courier to in transit.
func (s *Server) DepartOrders(ctx echo.Context, courierId servers.CourierId) error {
	courierID, err := kernel.UUIDFromBytes(courierId[:])
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	cmd, err := commands.NewDepartCommand(courierID)
	if err != nil {
		return badRequest(ctx, "Invalid depart data: "+err.Error())
	}

	switch handleErr := s.departHandler.Handle(ctx.Request().Context(), cmd); {
	case handleErr == nil:
		return ctx.NoContent(http.StatusNoContent)
	case errors.Is(handleErr, commands.ErrNoOrdersToDepart):
		return notFound(ctx, "No picking orders for this courier")
	default:
		return conflict(ctx, "Departure failed for some orders")
	}
}

// GetAvailableOrders handles GET /api/v1/couriers/{courierId}/orders/available.
func (s *Server) GetAvailableOrders(ctx echo.Context, courierId servers.CourierId, params servers.GetAvailableOrdersParams) error {
	courierID, err := kernel.UUIDFromBytes(courierId[:])
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	query, err := queries.NewGetAvailableOrdersQuery(courierID, dateOrToday(params.Date))
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	orders, err := s.getAvailableOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve available orders")
	}

	response := make([]servers.AvailableOrder, 0, len(orders))
	for _, o := range orders {
		available := servers.AvailableOrder{
			Id:                    o.ID.Bytes(),
			PropertyId:            o.PropertyID.Bytes(),
			Items:                 toAPIItems(o.Items),
			IncludePickup:         o.IncludePickup,
			Urgency:               o.Urgency,
			CreatedAt:             o.CreatedAt,
			ScheduledCleaningTime: o.ScheduledCleaningTime,
		}
		if o.Address != "" {
			address := o.Address
			available.Address = &address
		}
		response = append(response, available)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetInTransitOrders handles GET /api/v1/couriers/{courierId}/orders/in-transit.
func (s *Server) GetInTransitOrders(ctx echo.Context, courierId servers.CourierId) error {
	courierID, err := kernel.UUIDFromBytes(courierId[:])
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	query, err := queries.NewGetInTransitOrdersQuery(courierID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	orders, err := s.getInTransitOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve in-transit orders")
	}

	response := make([]servers.InTransitOrder, 0, len(orders))
	for _, o := range orders {
		inTransit := servers.InTransitOrder{
			Id:            o.ID.Bytes(),
			PropertyId:    o.PropertyID.Bytes(),
			Items:         toAPIItems(o.Items),
			IncludePickup: o.IncludePickup,
		}
		if o.DepartedAt != nil {
			inTransit.DepartedAt = *o.DepartedAt
		}
		response = append(response, inTransit)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDeliveredOrders handles GET /api/v1/couriers/{courierId}/orders/delivered.
func (s *Server) GetDeliveredOrders(ctx echo.Context, courierId servers.CourierId, params servers.GetDeliveredOrdersParams) error {
	courierID, err := kernel.UUIDFromBytes(courierId[:])
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	query, err := queries.NewGetDeliveredTodayQuery(courierID, dateOrToday(params.Date))
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	orders, err := s.getDeliveredTodayHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve delivered orders")
	}

	response := make([]servers.DeliveredOrder, 0, len(orders))
	for _, o := range orders {
		delivered := servers.DeliveredOrder{
			Id:              o.ID.Bytes(),
			PropertyId:      o.PropertyID.Bytes(),
			Items:           toAPIItems(o.Items),
			PickupHasIssues: o.PickupHasIssues,
		}
		if o.DeliveredAt != nil {
			delivered.DeliveredAt = *o.DeliveredAt
		}
		if o.PickupOutcome != "" && o.PickupOutcome != "unknown" {
			outcome := o.PickupOutcome
			delivered.PickupOutcome = &outcome
		}
		if o.PickupNote != "" {
			note := o.PickupNote
			delivered.PickupNote = &note
		}
		response = append(response, delivered)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPickupProjection handles GET /api/v1/orders/{orderId}/pickup-projection.
// Answers with a freshly recomputed projection; when the recompute cannot
// reach storage, the last sweep's projection is served instead so couriers
// in the field still see their expected pickup list.
func (s *Server) GetPickupProjection(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetPickupProjectionQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	projection, err := s.getPickupProjectionHandler.Handle(ctx.Request().Context(), query)
	if errors.Is(err, queries.ErrOrderNotFound) {
		return notFound(ctx, "Order not found")
	}
	if err != nil {
		stale, ok := s.projectionStore.Get(orderID)
		if !ok {
			return internalError(ctx, "Failed to compute pickup projection")
		}
		s.logger.WarnContext(ctx.Request().Context(), "Serving stale pickup projection",
			"order_id", orderID.String(), "error", err)
		projection = stale
	}

	return ctx.JSON(http.StatusOK, toAPIProjection(projection))
}

func toDomainItems(apiItems []servers.OrderItem) ([]order.Item, error) {
	items := make([]order.Item, 0, len(apiItems))
	for _, apiItem := range apiItems {
		categoryID := ""
		if apiItem.CategoryId != nil {
			categoryID = *apiItem.CategoryId
		}
		itemType := ""
		if apiItem.Type != nil {
			itemType = *apiItem.Type
		}

		item, err := order.NewItem(apiItem.Id, apiItem.Name, apiItem.Quantity, categoryID, itemType)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func toDomainReport(body servers.PickupReport) (order.PickupReport, error) {
	outcome, err := order.PickupOutcomeFromString(string(body.Outcome))
	if err != nil {
		return order.PickupReport{}, err
	}

	note := ""
	if body.Note != nil {
		note = *body.Note
	}

	items := make([]order.PickupReportItem, 0, len(body.Items))
	for _, apiItem := range body.Items {
		items = append(items, order.PickupReportItem{
			ItemID:   apiItem.ItemId,
			Name:     apiItem.Name,
			Quantity: apiItem.Quantity,
			OK:       apiItem.Ok,
		})
	}

	return order.NewPickupReport(outcome, note, items)
}

func toAPIItems(items []queries.OrderItemView) []servers.OrderItem {
	apiItems := make([]servers.OrderItem, 0, len(items))
	for _, item := range items {
		apiItem := servers.OrderItem{
			Id:       item.ID,
			Name:     item.Name,
			Quantity: item.Quantity,
		}
		if item.CategoryID != "" {
			categoryID := item.CategoryID
			apiItem.CategoryId = &categoryID
		}
		if item.Type != "" {
			itemType := item.Type
			apiItem.Type = &itemType
		}
		apiItems = append(apiItems, apiItem)
	}
	return apiItems
}

func toAPIProjection(projection services.PickupProjection) servers.PickupProjection {
	items := make([]servers.ProjectionItem, 0, len(projection.Items))
	for _, item := range projection.Items {
		items = append(items, servers.ProjectionItem{
			ItemId:   item.ItemID,
			Name:     item.Name,
			Quantity: item.Quantity,
		})
	}

	fromOrders := make([]openapi_types.UUID, 0, len(projection.FromOrders))
	for _, id := range projection.FromOrders {
		fromOrders = append(fromOrders, id.Bytes())
	}

	return servers.PickupProjection{Items: items, FromOrders: fromOrders}
}

// dateOrToday resolves the optional date query parameter, defaulting to the
// current UTC day.
func dateOrToday(date *openapi_types.Date) time.Time {
	if date == nil {
		return time.Now().UTC()
	}
	return date.Time
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, servers.Error{
		Code:    http.StatusNotFound,
		Message: message,
	})
}

func conflict(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusConflict, servers.Error{
		Code:    http.StatusConflict,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, servers.Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
