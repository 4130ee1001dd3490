package http

import (
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Order struct {
	ID         openapi_types.UUID `json:"id"`
	ClientName string             `json:"clientName"`
	Address    string             `json:"address"`
	Total      float64            `json:"total"`
	HasCredit  bool               `json:"hasCredit"`
	Status     string             `json:"status"`
	Sequence   *int               `json:"sequence"`
}

type NewOrder struct {
	ClientName   string             `json:"clientName"`
	Address      string             `json:"address"`
	Total        float64            `json:"total"`
	HasCredit    bool               `json:"hasCredit"`
	DeliveryDate openapi_types.Date `json:"deliveryDate"`
}

type SequenceUpdate struct {
	Date     openapi_types.Date   `json:"date"`
	OrderIDs []openapi_types.UUID `json:"orderIds"`
}

type OpenSession struct {
	Date openapi_types.Date `json:"date"`
}

type BeginDrag struct {
	OrderID openapi_types.UUID `json:"orderId"`
}

type DragOverlap struct {
	TargetIndex int `json:"targetIndex"`
}

type Span struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

type DropCandidate struct {
	Index int     `json:"index"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

type DragPointer struct {
	Selected   Span            `json:"selected"`
	Candidates []DropCandidate `json:"candidates"`
	Pointer    float64         `json:"pointer"`
}

type RankAssignment struct {
	Rank string `json:"rank"`
}

// SessionView mirrors editor.View. Assignments is present only in numeric mode.
type SessionView struct {
	SessionID     openapi_types.UUID   `json:"sessionId"`
	Date          openapi_types.Date   `json:"date"`
	State         string               `json:"state"`
	Mode          string               `json:"mode"`
	OrderIDs      []openapi_types.UUID `json:"orderIds"`
	Orders        []Order              `json:"orders"`
	Assignments   map[string]int       `json:"assignments,omitempty"`
	DraggedID     *openapi_types.UUID  `json:"draggedId"`
	Revision      uint64               `json:"revision"`
	Saving        bool                 `json:"saving"`
	HeldRefresh   bool                 `json:"heldRefresh"`
	LastSaveError *string              `json:"lastSaveError"`
}

type MoveResult struct {
	Moved   bool        `json:"moved"`
	Session SessionView `json:"session"`
}

type AssignResult struct {
	Accepted bool        `json:"accepted"`
	Session  SessionView `json:"session"`
}
