package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/invtrack/inventory-ledger-api/internal/api/handler/v1/request"
	"github.com/invtrack/inventory-ledger-api/internal/api/handler/v1/response"
	"github.com/invtrack/inventory-ledger-api/internal/api/middleware"
	"github.com/invtrack/inventory-ledger-api/internal/domain"
	"github.com/invtrack/inventory-ledger-api/internal/service"
)

type LedgerService interface {
	Commit(ctx context.Context, req service.CommitRequest) (domain.Transaction, error)
}

type QueryService interface {
	CurrentQuantity(ctx context.Context, itemID string) (int, error)
	AllStockLevels(ctx context.Context) ([]domain.StockLevel, error)
	Transactions(ctx context.Context, itemID string) ([]domain.Transaction, error)
	LowStock(ctx context.Context, threshold int) ([]domain.LowStockItem, error)
	DashboardStats(ctx context.Context) (domain.DashboardStats, error)
}

type UserService interface {
	GetUser(ctx context.Context, id string) (domain.User, error)
}

type StockHandler struct {
	ledger LedgerService
	query  QueryService
	users  UserService
}

func NewStockHandler(ledger LedgerService, query QueryService, users UserService) *StockHandler {
	return &StockHandler{
		ledger: ledger,
		query:  query,
		users:  users,
	}
}

// HandleCommitTransaction godoc
// @Summary      Commit a stock transaction
// @Description  Applies a RECEIPT, ISSUE or ADJUSTMENT to an item's stock
// @Tags         stock
// @Produce      json
// @Param        request   body      request.CommitTransactionRequest true "request body"
// @Success      201      {object}   domain.Transaction
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      422      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /transactions [post]
func (h *StockHandler) HandleCommitTransaction(ctx *gin.Context) {
	var req request.CommitTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	actingUser, err := h.actingUser(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrWrongCredentials(err))

		return
	}

	tx, err := h.ledger.Commit(ctx.Request.Context(), service.CommitRequest{
		Type:       domain.TransactionType(req.Type),
		ItemID:     req.ItemID,
		Quantity:   req.Quantity,
		Reference:  req.Reference,
		ActingUser: actingUser,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStockNotFound):
			response.RenderErr(ctx, response.ErrNotFound(service.ErrStockNotFound))
		case errors.Is(err, service.ErrInvalidQuantity),
			errors.Is(err, service.ErrZeroAdjustment),
			errors.Is(err, service.ErrInvalidTransactionType):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		case errors.Is(err, service.ErrInsufficientStock),
			errors.Is(err, service.ErrNegativeStock):
			response.RenderErr(ctx, response.ErrUnprocessable(err))
		default:
			err = fmt.Errorf("v1.HandleCommitTransaction -> h.ledger.Commit -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusCreated, tx)
}

// HandleGetStockLevels godoc
// @Summary      Get all stock levels
// @Tags         stock
// @Produce      json
// @Success      200      {array}    domain.StockLevel
// @Failure      500      {object}   response.Err
// @Router       /stock [get]
func (h *StockHandler) HandleGetStockLevels(ctx *gin.Context) {
	levels, err := h.query.AllStockLevels(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetStockLevels -> h.query.AllStockLevels -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, levels)
}

// HandleGetItemStock godoc
// @Summary      Get one item's stock level
// @Tags         stock
// @Produce      json
// @Param        itemID   path       string true "item ID"
// @Success      200      {object}   domain.StockLevel
// @Failure      500      {object}   response.Err
// @Router       /stock/{itemID} [get]
func (h *StockHandler) HandleGetItemStock(ctx *gin.Context) {
	itemID := ctx.Param("itemID")

	quantity, err := h.query.CurrentQuantity(ctx.Request.Context(), itemID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetItemStock -> h.query.CurrentQuantity -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, domain.StockLevel{ItemID: itemID, Quantity: quantity})
}

// HandleGetTransactions godoc
// @Summary      Get transaction history, most recent first
// @Tags         stock
// @Produce      json
// @Param        item_id  query      string false "filter by item ID"
// @Success      200      {array}    domain.Transaction
// @Failure      500      {object}   response.Err
// @Router       /transactions [get]
func (h *StockHandler) HandleGetTransactions(ctx *gin.Context) {
	itemID := ctx.Query("item_id")

	txs, err := h.query.Transactions(ctx.Request.Context(), itemID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetTransactions -> h.query.Transactions -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, txs)
}

// HandleGetLowStock godoc
// @Summary      Get items below the low-stock threshold
// @Tags         stock
// @Produce      json
// @Param        threshold  query    int false "override the configured threshold"
// @Success      200      {array}    domain.LowStockItem
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /stock/low [get]
func (h *StockHandler) HandleGetLowStock(ctx *gin.Context) {
	threshold := 0
	if raw := ctx.Query("threshold"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid threshold %q", raw)))

			return
		}
		threshold = parsed
	}

	items, err := h.query.LowStock(ctx.Request.Context(), threshold)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetLowStock -> h.query.LowStock -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, items)
}

// HandleGetDashboard godoc
// @Summary      Get dashboard statistics
// @Tags         stock
// @Produce      json
// @Success      200      {object}   domain.DashboardStats
// @Failure      500      {object}   response.Err
// @Router       /dashboard [get]
func (h *StockHandler) HandleGetDashboard(ctx *gin.Context) {
	stats, err := h.query.DashboardStats(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetDashboard -> h.query.DashboardStats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// actingUser resolves the authenticated user from the JWT middleware's
// context entry. The ledger records its id and display name on every commit.
func (h *StockHandler) actingUser(ctx *gin.Context) (domain.User, error) {
	userID := ctx.GetString(middleware.ContextKeyUserID)
	if userID == "" {
		return domain.User{}, errors.New("missing authenticated user")
	}

	user, err := h.users.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("h.users.GetUser -> %w", err)
	}

	return user, nil
}
