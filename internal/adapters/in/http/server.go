package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"routeboard/internal/core/application/editor"
	"routeboard/internal/core/application/usecases/commands"
	"routeboard/internal/core/application/usecases/queries"
	"routeboard/internal/core/domain/model/kernel"
	"routeboard/internal/core/domain/model/order"
	"routeboard/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type (
	dayOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetDayOrdersQuery) ([]queries.GetDayOrdersQueryResponse, error)
	}

	createOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}

	deliverOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DeliverOrderCommand) error
	}

	cancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) error
	}

	saveSequenceHandler interface {
		Handle(ctx context.Context, cmd commands.SaveSequenceCommand) error
	}
)

// Server implements ServerInterface. Order operations go through the command and
// query handlers; session operations go to the editing sessions held by the registry.
type Server struct {
	// Command handlers
	createOrderHandler  createOrderHandler
	deliverOrderHandler deliverOrderHandler
	cancelOrderHandler  cancelOrderHandler
	saveSequenceHandler saveSequenceHandler

	// Query handlers
	dayOrdersHandler dayOrdersHandler

	sessions *editor.Registry
	logger   *slog.Logger
}

var _ ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler createOrderHandler,
	deliverOrderHandler deliverOrderHandler,
	cancelOrderHandler cancelOrderHandler,
	saveSequenceHandler saveSequenceHandler,
	dayOrdersHandler dayOrdersHandler,
	sessions *editor.Registry,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:  createOrderHandler,
		deliverOrderHandler: deliverOrderHandler,
		cancelOrderHandler:  cancelOrderHandler,
		saveSequenceHandler: saveSequenceHandler,
		dayOrdersHandler:    dayOrdersHandler,
		sessions:            sessions,
		logger:              logger.With("component", "http.server"),
	}
}

// GetDayOrders handles GET /api/v1/orders - the board of one delivery day.
func (s *Server) GetDayOrders(ctx echo.Context, params GetDayOrdersParams) error {
	query, err := queries.NewGetDayOrdersQuery(kernel.DayOf(params.Date.Time))
	if err != nil {
		return s.fail(ctx, err)
	}

	rows, err := s.dayOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Order, len(rows))
	for i, row := range rows {
		response[i] = Order{
			ID:         row.ID.Bytes(),
			ClientName: row.ClientName,
			Address:    row.Address,
			Total:      row.Total,
			HasCredit:  row.HasCredit,
			Status:     statusName(row.Status),
			Sequence:   row.Sequence,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - registers a new unsequenced order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		body.ClientName,
		body.Address,
		body.Total,
		body.HasCredit,
		kernel.DayOf(body.DeliveryDate.Time),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Order{
		ID:         orderID.Bytes(),
		ClientName: cmd.ClientName(),
		Address:    cmd.Address(),
		Total:      cmd.Total(),
		HasCredit:  cmd.HasCredit(),
		Status:     statusName(order.Registered),
	})
}

// UpdateSequence handles PUT /api/v1/orders/sequence - stores a board order
// without an editing session.
func (s *Server) UpdateSequence(ctx echo.Context) error {
	var body SequenceUpdate
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ids, err := toKernelIDs(body.OrderIDs)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSaveSequenceCommand(kernel.DayOf(body.Date.Time), ids)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.saveSequenceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeliverOrder handles POST /api/v1/orders/{orderId}/deliver.
func (s *Server) DeliverOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := kernel.UUIDFromGoogle(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeliverOrderCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := kernel.UUIDFromGoogle(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// OpenSession handles POST /api/v1/sessions - starts editing a day board.
func (s *Server) OpenSession(ctx echo.Context) error {
	var body OpenSession
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	session, err := s.sessions.Open(ctx.Request().Context(), kernel.DayOf(body.Date.Time))
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respondView(ctx, http.StatusCreated, session)
}

func (s *Server) GetSession(ctx echo.Context, sessionID openapi_types.UUID) error {
	return s.withSession(ctx, sessionID, func(*editor.Session) error { return nil })
}

func (s *Server) CloseSession(ctx echo.Context, sessionID openapi_types.UUID) error {
	id, err := kernel.UUIDFromGoogle(sessionID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.sessions.Close(id); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) BeginDrag(ctx echo.Context, sessionID openapi_types.UUID) error {
	var body BeginDrag
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromGoogle(body.OrderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.withSession(ctx, sessionID, func(session *editor.Session) error {
		return session.BeginDrag(ctx.Request().Context(), orderID)
	})
}

func (s *Server) EndDrag(ctx echo.Context, sessionID openapi_types.UUID) error {
	return s.withSession(ctx, sessionID, func(session *editor.Session) error {
		return session.EndDrag(ctx.Request().Context())
	})
}

func (s *Server) DragOverlap(ctx echo.Context, sessionID openapi_types.UUID) error {
	var body DragOverlap
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	return s.withMove(ctx, sessionID, func(session *editor.Session) (bool, error) {
		return session.Overlap(ctx.Request().Context(), body.TargetIndex)
	})
}

func (s *Server) DragPointer(ctx echo.Context, sessionID openapi_types.UUID) error {
	var body DragPointer
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	dragged := services.Span{Start: body.Selected.Start, End: body.Selected.End}
	candidates := make([]services.DropCandidate, len(body.Candidates))
	for i, c := range body.Candidates {
		candidates[i] = services.DropCandidate{
			Index: c.Index,
			Span:  services.Span{Start: c.Start, End: c.End},
		}
	}

	return s.withMove(ctx, sessionID, func(session *editor.Session) (bool, error) {
		return session.DragPointer(ctx.Request().Context(), dragged, body.Pointer, candidates)
	})
}

func (s *Server) EnterNumericMode(ctx echo.Context, sessionID openapi_types.UUID) error {
	return s.withSession(ctx, sessionID, func(session *editor.Session) error {
		return session.EnterNumericMode(ctx.Request().Context())
	})
}

func (s *Server) CancelNumericMode(ctx echo.Context, sessionID openapi_types.UUID) error {
	return s.withSession(ctx, sessionID, func(session *editor.Session) error {
		return session.CancelNumericMode(ctx.Request().Context())
	})
}

// AssignRank handles PUT .../numeric/assignments/{orderId}. A rank that is not a
// positive integer removes the assignment and reports accepted=false.
func (s *Server) AssignRank(ctx echo.Context, sessionID openapi_types.UUID, orderID openapi_types.UUID) error {
	var body RankAssignment
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromGoogle(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	session, err := s.session(sessionID)
	if err != nil {
		return s.fail(ctx, err)
	}

	accepted, err := session.Assign(ctx.Request().Context(), id, body.Rank)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.view(ctx, session)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AssignResult{Accepted: accepted, Session: view})
}

func (s *Server) ResolveRanks(ctx echo.Context, sessionID openapi_types.UUID) error {
	return s.withMove(ctx, sessionID, func(session *editor.Session) (bool, error) {
		return session.Resolve(ctx.Request().Context())
	})
}

// SaveSession handles POST .../save. The save runs in the background; its outcome
// shows up in later views as saving, state and lastSaveError.
func (s *Server) SaveSession(ctx echo.Context, sessionID openapi_types.UUID) error {
	session, err := s.session(sessionID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if _, err := session.Save(ctx.Request().Context()); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondView(ctx, http.StatusAccepted, session)
}

func (s *Server) DiscardSession(ctx echo.Context, sessionID openapi_types.UUID) error {
	return s.withSession(ctx, sessionID, func(session *editor.Session) error {
		return session.Discard(ctx.Request().Context())
	})
}

func (s *Server) session(sessionID openapi_types.UUID) (*editor.Session, error) {
	id, err := kernel.UUIDFromGoogle(sessionID)
	if err != nil {
		return nil, err
	}
	return s.sessions.Get(id)
}

// withSession runs op on the session and answers with its view.
func (s *Server) withSession(ctx echo.Context, sessionID openapi_types.UUID, op func(*editor.Session) error) error {
	session, err := s.session(sessionID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := op(session); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondView(ctx, http.StatusOK, session)
}

func (s *Server) withMove(
	ctx echo.Context,
	sessionID openapi_types.UUID,
	op func(*editor.Session) (bool, error),
) error {
	session, err := s.session(sessionID)
	if err != nil {
		return s.fail(ctx, err)
	}

	moved, err := op(session)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.view(ctx, session)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MoveResult{Moved: moved, Session: view})
}

func (s *Server) respondView(ctx echo.Context, code int, session *editor.Session) error {
	view, err := s.view(ctx, session)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(code, view)
}

func (s *Server) view(ctx echo.Context, session *editor.Session) (SessionView, error) {
	v, err := session.View(ctx.Request().Context())
	if err != nil {
		return SessionView{}, err
	}
	return toSessionView(v), nil
}

func toSessionView(v editor.View) SessionView {
	view := SessionView{
		SessionID:   v.SessionID.Bytes(),
		Date:        openapi_types.Date{Time: v.Day.Time()},
		State:       v.State.String(),
		Mode:        v.Mode.String(),
		OrderIDs:    make([]openapi_types.UUID, len(v.Orders)),
		Orders:      make([]Order, len(v.Orders)),
		Revision:    v.Revision,
		Saving:      v.Saving,
		HeldRefresh: v.HeldRefresh,
	}

	for i, o := range v.Orders {
		view.OrderIDs[i] = o.ID().Bytes()
		view.Orders[i] = Order{
			ID:         o.ID().Bytes(),
			ClientName: o.ClientName(),
			Address:    o.Address(),
			Total:      o.Total(),
			HasCredit:  o.HasCredit(),
			Status:     statusName(o.Status()),
			Sequence:   o.Sequence(),
		}
	}

	if v.Assignments != nil {
		view.Assignments = make(map[string]int, len(v.Assignments))
		for id, rank := range v.Assignments {
			view.Assignments[id.String()] = rank
		}
	}

	if v.DraggedID != nil {
		dragged := openapi_types.UUID(v.DraggedID.Bytes())
		view.DraggedID = &dragged
	}

	if v.LastSaveError != nil {
		msg := v.LastSaveError.Error()
		view.LastSaveError = &msg
	}

	return view
}

func toKernelIDs(raw []openapi_types.UUID) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, len(raw))
	for i, r := range raw {
		id, err := kernel.UUIDFromGoogle(r)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

func statusName(s order.Status) string {
	return strings.ToLower(s.String())
}
