package http

import (
	"errors"
	"net/http"
	"time"

	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server exposes the tracking read models over HTTP. It coordinates between
// HTTP handlers and application use cases.
type Server struct {
	getOrderHandler            queries.GetOrderQueryHandler
	getShipmentProgressHandler queries.GetShipmentProgressQueryHandler
}

// NewServer creates a new HTTP server with the required query handlers.
func NewServer(
	getOrderHandler queries.GetOrderQueryHandler,
	getShipmentProgressHandler queries.GetShipmentProgressQueryHandler,
) *Server {
	return &Server{
		getOrderHandler:            getOrderHandler,
		getShipmentProgressHandler: getShipmentProgressHandler,
	}
}

// RegisterRoutes attaches the server's endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.GetHealth)
	e.GET("/api/v1/orders/:orderID", s.GetOrder)
	e.GET("/api/v1/orders/:orderID/progress", s.GetShipmentProgress)
}

// Error is the uniform error payload of the API.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderResponse is the order header as shown to operators.
type OrderResponse struct {
	OrderID               string    `json:"orderId"`
	OrderDate             time.Time `json:"orderDate"`
	CustomerID            string    `json:"customerId"`
	OriginLocationID      string    `json:"originLocationId"`
	DestinationLocationID string    `json:"destinationLocationId"`
	ServiceLevel          string    `json:"serviceLevel"`
	OrderValue            float64   `json:"orderValue"`
	WeightKg              float64   `json:"weightKg"`
	Status                string    `json:"status"`
}

// StopStatusResponse is one row of the per-stop status table.
type StopStatusResponse struct {
	Sequence         int        `json:"sequence"`
	FacilityID       string     `json:"facilityId"`
	FacilityName     string     `json:"facilityName"`
	FacilityType     string     `json:"facilityType"`
	City             string     `json:"city"`
	Region           string     `json:"region"`
	PlannedArrivalAt *time.Time `json:"plannedArrivalAt"`
	ActualArrivalAt  *time.Time `json:"actualArrivalAt"`
	PlannedDepartAt  *time.Time `json:"plannedDepartAt"`
	ActualDepartAt   *time.Time `json:"actualDepartAt"`
	DelayReasonCode  string     `json:"delayReasonCode,omitempty"`
	Status           string     `json:"status"`
	StatusIcon       string     `json:"statusIcon"`
}

// ProgressResponse is the aggregate completion summary.
type ProgressResponse struct {
	CompletedCount int     `json:"completedCount"`
	TotalCount     int     `json:"totalCount"`
	Ratio          float64 `json:"ratio"`
}

// ShipmentProgressResponse is the full status report for one order.
type ShipmentProgressResponse struct {
	Order      OrderResponse        `json:"order"`
	Stops      []StopStatusResponse `json:"stops"`
	Progress   ProgressResponse     `json:"progress"`
	ObservedAt time.Time            `json:"observedAt"`
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// GetOrder handles GET /api/v1/orders/:orderID - retrieves the order header.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.NewOrderID(ctx.Param("orderID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}

		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order",
		})
	}

	return ctx.JSON(http.StatusOK, orderResponseFrom(o))
}

// GetShipmentProgress handles GET /api/v1/orders/:orderID/progress - derives
// the shipment status report as of the request instant, or as of the
// optional "at" query parameter. Offset-less "at" values are read as UTC.
func (s *Server) GetShipmentProgress(ctx echo.Context) error {
	orderID, err := kernel.NewOrderID(ctx.Param("orderID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	// Sampled once so the whole report shares one observation instant.
	now := time.Now().UTC()
	if at := ctx.QueryParam("at"); at != "" {
		now, err = kernel.ParseInstant(at)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid observation instant: " + err.Error(),
			})
		}
	}

	query, err := queries.NewGetShipmentProgressQuery(orderID, now)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
	}

	report, err := s.getShipmentProgressHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}

		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to build shipment status report",
		})
	}

	stopStatuses := report.StopStatuses()
	stops := make([]StopStatusResponse, len(stopStatuses))
	for i, entry := range stopStatuses {
		facility := entry.Stop.Facility()

		stops[i] = StopStatusResponse{
			Sequence:         entry.Stop.Sequence(),
			FacilityID:       facility.ID,
			FacilityName:     facility.Name,
			FacilityType:     facility.Type,
			City:             facility.City,
			Region:           facility.Region,
			PlannedArrivalAt: entry.Stop.PlannedArrivalAt(),
			ActualArrivalAt:  entry.Stop.ActualArrivalAt(),
			PlannedDepartAt:  entry.Stop.PlannedDepartAt(),
			ActualDepartAt:   entry.Stop.ActualDepartAt(),
			DelayReasonCode:  entry.Stop.DelayReasonCode(),
			Status:           entry.Status.String(),
			StatusIcon:       entry.Status.Icon(),
		}
	}

	progress := report.Progress()

	return ctx.JSON(http.StatusOK, ShipmentProgressResponse{
		Order: orderResponseFrom(report.Order()),
		Stops: stops,
		Progress: ProgressResponse{
			CompletedCount: progress.CompletedCount(),
			TotalCount:     progress.TotalCount(),
			Ratio:          progress.Ratio(),
		},
		ObservedAt: now,
	})
}

func orderResponseFrom(o *order.Order) OrderResponse {
	return OrderResponse{
		OrderID:               o.ID().String(),
		OrderDate:             o.OrderDate(),
		CustomerID:            o.CustomerID(),
		OriginLocationID:      o.OriginLocationID(),
		DestinationLocationID: o.DestinationLocationID(),
		ServiceLevel:          o.ServiceLevel(),
		OrderValue:            o.OrderValue(),
		WeightKg:              o.WeightKg(),
		Status:                o.Status(),
	}
}
