package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tailor-service/internal/models"
	"tailor-service/internal/services"
	"tailor-service/pkg/common"
)

type OrderHandler struct {
	Orders *services.OrderService
}

func NewOrderHandler(orders *services.OrderService) *OrderHandler {
	return &OrderHandler{Orders: orders}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.Orders.CreateOrder(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, common.NewSuccessResponse(order, "Order created"))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.Orders.GetOrder(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, order, "Order fetched")
}

func (h *OrderHandler) GetOrderByBill(c *gin.Context) {
	order, err := h.Orders.GetOrderByBill(c.Param("bill"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, order, "Order fetched")
}

// GetMyOrders returns the caller's three work queues.
func (h *OrderHandler) GetMyOrders(c *gin.Context) {
	queues, err := h.Orders.ListOrdersFor(c.Param("staffId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, queues, "Work queues fetched")
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	page, limit := pageParams(c)
	result, err := h.Orders.ListOrders(
		models.OrderStatus(c.Query("status")),
		c.Query("search"),
		page, limit,
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type SaveMeasurementsRequest struct {
	StaffID      string `json:"staff_id" binding:"required"`
	ItemID       int    `json:"item_id" binding:"required"`
	Measurements string `json:"measurements" binding:"required"`
}

func (h *OrderHandler) SaveMeasurements(c *gin.Context) {
	var req SaveMeasurementsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.Orders.SaveMeasurements(c.Param("id"), req.StaffID, req.ItemID, req.Measurements)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, order, "Measurements saved")
}
