package api

import (
	"net/http"

	reqdto "repairshop/internal/handler/dto/request"
	resdto "repairshop/internal/handler/dto/response"
	"repairshop/internal/handler/httperr"
	"repairshop/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	cmds usecase.CatalogCommands
	q    usecase.WorkshopQueries
}

func NewCatalogHandler(cmds usecase.CatalogCommands, q usecase.WorkshopQueries) *CatalogHandler {
	return &CatalogHandler{cmds: cmds, q: q}
}

// @Summary List products
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ProductResponse
// @Router /products [get]
func (h *CatalogHandler) List(c *gin.Context) {
	items, err := h.q.ListProducts(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": resdto.FromProductList(items)})
}

// @Summary Register product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterProductRequest true "Product"
// @Success 201 {object} resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /products [post]
func (h *CatalogHandler) Register(c *gin.Context) {
	var req reqdto.RegisterProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid price", nil)
		return
	}
	view, err := h.cmds.RegisterProduct(c.Request.Context(), params)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromProductView(view))
}

// @Summary Update product price
// @Description New price applies to future part usages only
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.UpdatePriceRequest true "New price"
// @Success 200 {object} resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /products/{id}/price [patch]
func (h *CatalogHandler) UpdatePrice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdatePriceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	price, err := req.ToDecimal()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid price", nil)
		return
	}
	view, err := h.cmds.UpdateProductPrice(c.Request.Context(), id, price)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductView(view))
}

// @Summary Restock product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.RestockRequest true "Units received"
// @Success 200 {object} resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /products/{id}/restock [post]
func (h *CatalogHandler) Restock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.RestockRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	view, err := h.cmds.Restock(c.Request.Context(), id, req.Quantity)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductView(view))
}

// @Summary Finance ledger
// @Description Entries recorded for finalized orders and cancellation fees, with the running balance
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.LedgerResponse
// @Router /ledger [get]
func (h *CatalogHandler) Ledger(c *gin.Context) {
	view, err := h.q.LedgerEntries(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLedgerView(view))
}
