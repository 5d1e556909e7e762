package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/invtrack/inventory-ledger-api/internal/api/handler/v1/request"
	"github.com/invtrack/inventory-ledger-api/internal/api/handler/v1/response"
	"github.com/invtrack/inventory-ledger-api/internal/domain"
)

type SupplierHandler struct {
	svc CatalogService
}

func NewSupplierHandler(svc CatalogService) *SupplierHandler {
	return &SupplierHandler{
		svc: svc,
	}
}

// HandleCreateSupplier godoc
// @Summary      Create a supplier
// @Tags         suppliers
// @Produce      json
// @Param        request   body      request.CreateSupplierRequest true "request body"
// @Success      201      {object}   domain.Supplier
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /suppliers [post]
func (h *SupplierHandler) HandleCreateSupplier(ctx *gin.Context) {
	var req request.CreateSupplierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	supplier, err := h.svc.CreateSupplier(ctx.Request.Context(), domain.Supplier{
		Name:    req.Name,
		Contact: req.Contact,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateSupplier -> h.svc.CreateSupplier -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, supplier)
}

// HandleListSuppliers godoc
// @Summary      List all suppliers
// @Tags         suppliers
// @Produce      json
// @Success      200      {array}    domain.Supplier
// @Failure      500      {object}   response.Err
// @Router       /suppliers [get]
func (h *SupplierHandler) HandleListSuppliers(ctx *gin.Context) {
	suppliers, err := h.svc.ListSuppliers(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListSuppliers -> h.svc.ListSuppliers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, suppliers)
}
