package handlers

import (
	"net/http"
	"strconv"

	"topup_store/internal/adapter/http/dto/request"
	"topup_store/internal/adapter/http/dto/response"
	"topup_store/internal/infrastructure/logger"
	"topup_store/internal/usecase"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

func (h *OrderHandler) CreateTransaction(c *gin.Context) {
	log := logger.L()
	var req request.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("[order][handler] invalid payload err=%v", err)
		writeError(c, invalidRequest("sku, amount, customer_no and method are required"))
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		log.Errorf("[order][handler] create failed sku=%s err=%v", req.SKU, err)
		writeError(c, mapError(err))
		return
	}
	log.Infof("[order][handler] create success ref_id=%s sku=%s", created.RefID, created.SKU)

	c.JSON(http.StatusOK, response.OK(response.FromCreatedOrder(created)))
}

// GetTransaction is polled by the checkout page until the order is terminal.
func (h *OrderHandler) GetTransaction(c *gin.Context) {
	refID := c.Param("ref")
	o, err := h.usecase.GetStatus(c.Request.Context(), refID)
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromOrder(o)))
}

func (h *OrderHandler) ListTransactions(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(c, invalidRequest("limit must be a number"))
			return
		}
		limit = n
	}

	orders, err := h.usecase.ListRecent(c.Request.Context(), limit)
	if err != nil {
		logger.L().Errorf("[order][handler] list failed err=%v", err)
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromOrders(orders)))
}
