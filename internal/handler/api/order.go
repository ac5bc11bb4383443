package api

import (
	"net/http"
	"strconv"

	"repairshop/internal/domain/order"
	reqdto "repairshop/internal/handler/dto/request"
	resdto "repairshop/internal/handler/dto/response"
	"repairshop/internal/handler/httperr"
	"repairshop/internal/handler/middleware"
	"repairshop/internal/usecase"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	cmds usecase.OrderCommands
	q    usecase.WorkshopQueries
}

func NewOrderHandler(cmds usecase.OrderCommands, q usecase.WorkshopQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Open service order
// @Description Open an order from a booked appointment and free its slot
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.OpenOrderRequest true "Open order request"
// @Success 201 {object} resdto.OpenOrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /orders [post]
func (h *OrderHandler) Open(c *gin.Context) {
	mechanic, ok := middleware.GetMechanic(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoMechanic, "Unauthorized", nil)
		return
	}
	var req reqdto.OpenOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.OpenOrderFromAppointment(c.Request.Context(), req.ToParams(mechanic))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromOpenOrderResult(result))
}

// @Summary List service orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param active query bool false "Only orders that are neither finalized nor cancelled"
// @Success 200 {array} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	activeOnly := false
	if v := c.Query("active"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid active flag", nil)
			return
		}
		activeOnly = b
	}
	items, err := h.q.ListOrders(c.Request.Context(), activeOnly)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": resdto.FromOrderList(items)})
}

// @Summary Get service order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order number"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} httperr.Response
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	view, err := h.q.GetOrder(c.Request.Context(), order.ID(c.Param("id")))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary Service order status
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order number"
// @Success 200 {object} resdto.StatusResponse
// @Failure 404 {object} httperr.Response
// @Router /orders/{id}/status [get]
func (h *OrderHandler) Status(c *gin.Context) {
	id := order.ID(c.Param("id"))
	status, err := h.q.GetStatus(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.StatusResponse{OrderID: id.String(), Status: status.String()})
}

// @Summary Service order extract
// @Description Itemized bill: parts at their recorded prices plus the labor charge
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order number"
// @Param format query string false "Set to text for the printable statement"
// @Success 200 {object} resdto.ExtractResponse
// @Failure 404 {object} httperr.Response
// @Router /orders/{id}/extract [get]
func (h *OrderHandler) Extract(c *gin.Context) {
	view, err := h.q.GetExtract(c.Request.Context(), order.ID(c.Param("id")))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	if c.Query("format") == "text" {
		c.String(http.StatusOK, view.Statement)
		return
	}
	c.JSON(http.StatusOK, resdto.FromExtractView(view))
}

// @Summary Start inspection
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order number"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/inspection [post]
func (h *OrderHandler) StartInspection(c *gin.Context) {
	h.respond(c)(h.cmds.StartInspection(c.Request.Context(), order.ID(c.Param("id"))))
}

// @Summary Start service
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order number"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/service [post]
func (h *OrderHandler) StartService(c *gin.Context) {
	h.respond(c)(h.cmds.StartService(c.Request.Context(), order.ID(c.Param("id"))))
}

// @Summary Add part
// @Description Consume catalog stock for an order in service
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order number"
// @Param request body reqdto.AddPartRequest true "Part and quantity"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/parts [post]
func (h *OrderHandler) AddPart(c *gin.Context) {
	var req reqdto.AddPartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	h.respond(c)(h.cmds.AddPart(c.Request.Context(), order.ID(c.Param("id")), req.ProductID, req.Quantity))
}

// @Summary Finish service
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order number"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/finish [post]
func (h *OrderHandler) Finish(c *gin.Context) {
	h.respond(c)(h.cmds.FinishService(c.Request.Context(), order.ID(c.Param("id"))))
}

// @Summary Cancel service order
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order number"
// @Param request body reqdto.CancelRequest false "Cancellation reason"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c *gin.Context) {
	var req reqdto.CancelRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	}
	h.respond(c)(h.cmds.CancelOrder(c.Request.Context(), order.ID(c.Param("id")), req.Reason))
}

func (h *OrderHandler) respond(c *gin.Context) func(*usecase.OrderView, error) {
	return func(view *usecase.OrderView, err error) {
		if err != nil {
			httperr.AbortWithDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, resdto.FromOrderView(view))
	}
}
