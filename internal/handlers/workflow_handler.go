package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tailor-service/internal/services"
)

type WorkflowHandler struct {
	Workflow *services.WorkflowService
}

func NewWorkflowHandler(workflow *services.WorkflowService) *WorkflowHandler {
	return &WorkflowHandler{Workflow: workflow}
}

type ActorRequest struct {
	StaffID string `json:"staff_id" binding:"required"`
}

type HandoverRequest struct {
	StaffID  string `json:"staff_id" binding:"required"`
	TargetID string `json:"target_id"`
}

type ReasonRequest struct {
	StaffID string `json:"staff_id" binding:"required"`
	Reason  string `json:"reason"`
}

func (h *WorkflowHandler) SubmitDraft(c *gin.Context) {
	var req ActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.Workflow.SubmitDraft(c.Param("id"), req.StaffID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, order, "Order created")
}

// Accept may return more than one order: a multi-garment order splits into
// children when the measurement master takes it.
func (h *WorkflowHandler) Accept(c *gin.Context) {
	var req ActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orders, err := h.Workflow.Accept(c.Param("id"), req.StaffID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, orders, "Order accepted")
}

func (h *WorkflowHandler) Handover(c *gin.Context) {
	var req HandoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.Workflow.Handover(c.Param("id"), req.StaffID, req.TargetID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, order, "Order handed over")
}

func (h *WorkflowHandler) ReturnOrder(c *gin.Context) {
	var req ReasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.Workflow.ReturnOrder(c.Param("id"), req.StaffID, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, order, "Order returned")
}

func (h *WorkflowHandler) CancelOrder(c *gin.Context) {
	var req ReasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.Workflow.CancelOrder(c.Param("id"), req.StaffID, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, order, "Order cancelled")
}
