package queries

import (
	"context"
	"fmt"
	"math"

	"github.com/hoopsdata/basketball-analytics/internal/application/common"
	"github.com/hoopsdata/basketball-analytics/internal/application/mediator"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
	// MaxPage keeps (page-1)*pageSize well inside an int
	MaxPage = 1_000_000
)

// GetAllPlayersQuery pages through every player ordered by last then first name
type GetAllPlayersQuery struct {
	Page     int `validate:"gte=1,lte=1000000"`
	PageSize int `validate:"gte=1,lte=100"`
}

// GetAllPlayersHandler handles the GetAllPlayers query
type GetAllPlayersHandler struct {
	store common.Store
}

// NewGetAllPlayersHandler creates a new GetAllPlayersHandler
func NewGetAllPlayersHandler(store common.Store) *GetAllPlayersHandler {
	return &GetAllPlayersHandler{store: store}
}

// Handle executes the GetAllPlayers query and returns a *PagedResult[PlayerDTO]
func (h *GetAllPlayersHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetAllPlayersQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetAllPlayersQuery")
	}

	offset := pageOffset(query.Page, query.PageSize)
	players, total, err := h.store.Begin().Players().ListPage(ctx, offset, query.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	totalPages := int((total + int64(query.PageSize) - 1) / int64(query.PageSize))

	return &PagedResult[PlayerDTO]{
		Items:      toPlayerDTOs(players),
		Page:       query.Page,
		PageSize:   query.PageSize,
		TotalCount: total,
		TotalPages: totalPages,
	}, nil
}

// pageOffset clamps instead of overflowing, so an absurd page reads past the end
func pageOffset(page, pageSize int) int {
	if page <= 1 || pageSize <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/pageSize {
		return math.MaxInt
	}
	return (page - 1) * pageSize
}
