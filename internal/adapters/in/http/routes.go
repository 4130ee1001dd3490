package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface lists the operations of api/openapi.json. Parameters declared in
// the document arrive already bound.
type ServerInterface interface {
	// (GET /api/v1/orders)
	GetDayOrders(ctx echo.Context, params GetDayOrdersParams) error
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// (PUT /api/v1/orders/sequence)
	UpdateSequence(ctx echo.Context) error
	// (POST /api/v1/orders/{orderId}/deliver)
	DeliverOrder(ctx echo.Context, orderID openapi_types.UUID) error
	// (POST /api/v1/orders/{orderId}/cancel)
	CancelOrder(ctx echo.Context, orderID openapi_types.UUID) error

	// (POST /api/v1/sessions)
	OpenSession(ctx echo.Context) error
	// (GET /api/v1/sessions/{sessionId})
	GetSession(ctx echo.Context, sessionID openapi_types.UUID) error
	// (DELETE /api/v1/sessions/{sessionId})
	CloseSession(ctx echo.Context, sessionID openapi_types.UUID) error
	// (POST /api/v1/sessions/{sessionId}/drag)
	BeginDrag(ctx echo.Context, sessionID openapi_types.UUID) error
	// (DELETE /api/v1/sessions/{sessionId}/drag)
	EndDrag(ctx echo.Context, sessionID openapi_types.UUID) error
	// (POST /api/v1/sessions/{sessionId}/drag/overlap)
	DragOverlap(ctx echo.Context, sessionID openapi_types.UUID) error
	// (POST /api/v1/sessions/{sessionId}/drag/pointer)
	DragPointer(ctx echo.Context, sessionID openapi_types.UUID) error
	// (POST /api/v1/sessions/{sessionId}/numeric)
	EnterNumericMode(ctx echo.Context, sessionID openapi_types.UUID) error
	// (DELETE /api/v1/sessions/{sessionId}/numeric)
	CancelNumericMode(ctx echo.Context, sessionID openapi_types.UUID) error
	// (PUT /api/v1/sessions/{sessionId}/numeric/assignments/{orderId})
	AssignRank(ctx echo.Context, sessionID openapi_types.UUID, orderID openapi_types.UUID) error
	// (POST /api/v1/sessions/{sessionId}/numeric/resolve)
	ResolveRanks(ctx echo.Context, sessionID openapi_types.UUID) error
	// (POST /api/v1/sessions/{sessionId}/save)
	SaveSession(ctx echo.Context, sessionID openapi_types.UUID) error
	// (POST /api/v1/sessions/{sessionId}/discard)
	DiscardSession(ctx echo.Context, sessionID openapi_types.UUID) error
}

// GetDayOrdersParams defines parameters for GetDayOrders.
type GetDayOrdersParams struct {
	Date openapi_types.Date `form:"date" json:"date"`
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func bindPathUUID(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

func (w *ServerInterfaceWrapper) GetDayOrders(ctx echo.Context) error {
	var params GetDayOrdersParams

	err := runtime.BindQueryParameter("form", true, true, "date", ctx.QueryParams(), &params.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter date: %s", err))
	}

	return w.Handler.GetDayOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) UpdateSequence(ctx echo.Context) error {
	return w.Handler.UpdateSequence(ctx)
}

func (w *ServerInterfaceWrapper) OpenSession(ctx echo.Context) error {
	return w.Handler.OpenSession(ctx)
}

// orderRoute adapts an operation keyed by orderId.
func (w *ServerInterfaceWrapper) orderRoute(
	op func(echo.Context, openapi_types.UUID) error,
) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		orderID, err := bindPathUUID(ctx, "orderId")
		if err != nil {
			return err
		}
		return op(ctx, orderID)
	}
}

// sessionRoute adapts an operation keyed by sessionId.
func (w *ServerInterfaceWrapper) sessionRoute(
	op func(echo.Context, openapi_types.UUID) error,
) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		sessionID, err := bindPathUUID(ctx, "sessionId")
		if err != nil {
			return err
		}
		return op(ctx, sessionID)
	}
}

func (w *ServerInterfaceWrapper) AssignRank(ctx echo.Context) error {
	sessionID, err := bindPathUUID(ctx, "sessionId")
	if err != nil {
		return err
	}

	orderID, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}

	return w.Handler.AssignRank(ctx, sessionID, orderID)
}

// EchoRouter is the subset of echo.Echo and echo.Group used for registration.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds every operation of si to router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	w := ServerInterfaceWrapper{Handler: si}

	router.GET("/api/v1/orders", w.GetDayOrders)
	router.POST("/api/v1/orders", w.CreateOrder)
	router.PUT("/api/v1/orders/sequence", w.UpdateSequence)
	router.POST("/api/v1/orders/:orderId/deliver", w.orderRoute(si.DeliverOrder))
	router.POST("/api/v1/orders/:orderId/cancel", w.orderRoute(si.CancelOrder))

	router.POST("/api/v1/sessions", w.OpenSession)
	router.GET("/api/v1/sessions/:sessionId", w.sessionRoute(si.GetSession))
	router.DELETE("/api/v1/sessions/:sessionId", w.sessionRoute(si.CloseSession))
	router.POST("/api/v1/sessions/:sessionId/drag", w.sessionRoute(si.BeginDrag))
	router.DELETE("/api/v1/sessions/:sessionId/drag", w.sessionRoute(si.EndDrag))
	router.POST("/api/v1/sessions/:sessionId/drag/overlap", w.sessionRoute(si.DragOverlap))
	router.POST("/api/v1/sessions/:sessionId/drag/pointer", w.sessionRoute(si.DragPointer))
	router.POST("/api/v1/sessions/:sessionId/numeric", w.sessionRoute(si.EnterNumericMode))
	router.DELETE("/api/v1/sessions/:sessionId/numeric", w.sessionRoute(si.CancelNumericMode))
	router.PUT("/api/v1/sessions/:sessionId/numeric/assignments/:orderId", w.AssignRank)
	router.POST("/api/v1/sessions/:sessionId/numeric/resolve", w.sessionRoute(si.ResolveRanks))
	router.POST("/api/v1/sessions/:sessionId/save", w.sessionRoute(si.SaveSession))
	router.POST("/api/v1/sessions/:sessionId/discard", w.sessionRoute(si.DiscardSession))
}
