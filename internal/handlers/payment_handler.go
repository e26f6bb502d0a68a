package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tailor-service/internal/models"
	"tailor-service/internal/services"
	"tailor-service/pkg/common"
)

type PaymentHandler struct {
	Payments *services.PaymentService
}

func NewPaymentHandler(payments *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{Payments: payments}
}

type DepositRequest struct {
	StaffID string  `json:"staff_id" binding:"required"`
	Amount  float64 `json:"amount" binding:"required"`
	Mode    string  `json:"mode"`
	Utr     string  `json:"utr" binding:"required"`
}

func (h *PaymentHandler) Deposit(c *gin.Context) {
	var req DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.Payments.RecordDeposit(req.StaffID, req.Amount, req.Mode, req.Utr)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, common.NewSuccessResponse(request, "Deposit request filed"))
}

type WithdrawalRequest struct {
	StaffID   string              `json:"staff_id" binding:"required"`
	Bucket    models.WalletBucket `json:"bucket" binding:"required"`
	Amount    float64             `json:"amount" binding:"required"`
	TPassword string              `json:"t_password" binding:"required"`
}

func (h *PaymentHandler) Withdraw(c *gin.Context) {
	var req WithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.Payments.RecordWithdrawal(req.StaffID, req.Bucket, req.Amount, req.TPassword)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, common.NewSuccessResponse(request, "Withdrawal request filed"))
}

func (h *PaymentHandler) ListRequests(c *gin.Context) {
	page, limit := pageParams(c)
	result, err := h.Payments.ListRequests(c.Query("status"), c.Query("type"), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *PaymentHandler) MyRequests(c *gin.Context) {
	requests, err := h.Payments.ListRequestsFor(c.Param("staffId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, requests, "Payment requests fetched")
}

type ResolveRequest struct {
	AdminID string `json:"admin_id" binding:"required"`
	Approve *bool  `json:"approve" binding:"required"`
}

func (h *PaymentHandler) Resolve(c *gin.Context) {
	var req ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.Payments.Resolve(c.Param("id"), req.AdminID, *req.Approve)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, request, "Payment request resolved")
}
