package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tailor-service/internal/models"
	"tailor-service/internal/services"
)

type WalletHandler struct {
	Ledger *services.LedgerService
}

func NewWalletHandler(ledger *services.LedgerService) *WalletHandler {
	return &WalletHandler{Ledger: ledger}
}

func (h *WalletHandler) GetWallet(c *gin.Context) {
	statement, err := h.Ledger.GetWallet(c.Param("staffId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, statement, "Wallet fetched")
}

func (h *WalletHandler) GetTransactions(c *gin.Context) {
	page, limit := pageParams(c)
	result, err := h.Ledger.ListTransactions(c.Param("staffId"), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type AdjustmentRequest struct {
	StaffID     string              `json:"staff_id" binding:"required"`
	Bucket      models.WalletBucket `json:"bucket" binding:"required"`
	Amount      float64             `json:"amount" binding:"required"`
	Description string              `json:"description" binding:"required"`
}

// CreditWallet and DebitWallet are manual admin adjustments.
func (h *WalletHandler) CreditWallet(c *gin.Context) {
	var req AdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trx, err := h.Ledger.Credit(req.StaffID, req.Bucket, req.Amount, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, trx, "Wallet credited")
}

func (h *WalletHandler) DebitWallet(c *gin.Context) {
	var req AdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trx, err := h.Ledger.Debit(req.StaffID, req.Bucket, req.Amount, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, trx, "Wallet debited")
}
