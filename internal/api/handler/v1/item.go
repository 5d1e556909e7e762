package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/invtrack/inventory-ledger-api/internal/api/handler/v1/request"
	"github.com/invtrack/inventory-ledger-api/internal/api/handler/v1/response"
	"github.com/invtrack/inventory-ledger-api/internal/domain"
	"github.com/invtrack/inventory-ledger-api/internal/service"
)

type CatalogService interface {
	CreateItem(ctx context.Context, item domain.Item) (domain.Item, error)
	UpdateItem(ctx context.Context, id string, changes domain.ItemChanges) (domain.Item, error)
	GetItem(ctx context.Context, id string) (domain.Item, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
	CreateSupplier(ctx context.Context, supplier domain.Supplier) (domain.Supplier, error)
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
}

type ItemHandler struct {
	svc CatalogService
}

func NewItemHandler(svc CatalogService) *ItemHandler {
	return &ItemHandler{
		svc: svc,
	}
}

// HandleCreateItem godoc
// @Summary      Create an item
// @Description  Creates an item and its stock record at quantity zero
// @Tags         items
// @Produce      json
// @Param        request   body      request.CreateItemRequest true "request body"
// @Success      201      {object}   domain.Item
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /items [post]
func (h *ItemHandler) HandleCreateItem(ctx *gin.Context) {
	var req request.CreateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	item, err := h.svc.CreateItem(ctx.Request.Context(), domain.Item{
		SKU:         req.SKU,
		Name:        req.Name,
		Category:    req.Category,
		UOM:         req.UOM,
		Description: req.Description,
		Status:      domain.ItemStatus(req.Status),
	})
	if err != nil {
		if errors.Is(err, service.ErrItemSKUExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrItemSKUExists))

			return
		}

		err = fmt.Errorf("v1.HandleCreateItem -> h.svc.CreateItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, item)
}

// HandleUpdateItem godoc
// @Summary      Update an item
// @Description  Updates any item field except id and SKU
// @Tags         items
// @Produce      json
// @Param        itemID   path       string true "item ID"
// @Param        request  body       request.UpdateItemRequest true "request body"
// @Success      200      {object}   domain.Item
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /items/{itemID} [put]
func (h *ItemHandler) HandleUpdateItem(ctx *gin.Context) {
	itemID := ctx.Param("itemID")

	var req request.UpdateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	item, err := h.svc.UpdateItem(ctx.Request.Context(), itemID, domain.ItemChanges{
		Name:        req.Name,
		Category:    req.Category,
		UOM:         req.UOM,
		Description: req.Description,
		Status:      domain.ItemStatus(req.Status),
	})
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrItemNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateItem -> h.svc.UpdateItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, item)
}

// HandleGetItem godoc
// @Summary      Get an item
// @Tags         items
// @Produce      json
// @Param        itemID   path       string true "item ID"
// @Success      200      {object}   domain.Item
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /items/{itemID} [get]
func (h *ItemHandler) HandleGetItem(ctx *gin.Context) {
	itemID := ctx.Param("itemID")

	item, err := h.svc.GetItem(ctx.Request.Context(), itemID)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrItemNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleGetItem -> h.svc.GetItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, item)
}

// HandleListItems godoc
// @Summary      List all items
// @Tags         items
// @Produce      json
// @Success      200      {array}    domain.Item
// @Failure      500      {object}   response.Err
// @Router       /items [get]
func (h *ItemHandler) HandleListItems(ctx *gin.Context) {
	items, err := h.svc.ListItems(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListItems -> h.svc.ListItems -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, items)
}
