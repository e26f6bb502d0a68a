package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tailor-service/internal/models"
	"tailor-service/internal/services"
	"tailor-service/pkg/common"
)

type StaffHandler struct {
	Staff       *services.StaffService
	Commissions *services.CommissionService
}

func NewStaffHandler(staff *services.StaffService, commissions *services.CommissionService) *StaffHandler {
	return &StaffHandler{Staff: staff, Commissions: commissions}
}

func (h *StaffHandler) CreateStaff(c *gin.Context) {
	var req services.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	staff, err := h.Staff.CreateStaff(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, common.NewSuccessResponse(staff, "Staff created"))
}

type LoginRequest struct {
	Mobile   string `json:"mobile" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *StaffHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	staff, err := h.Staff.Login(req.Mobile, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, staff, "Login successful")
}

func (h *StaffHandler) GetStaff(c *gin.Context) {
	staff, err := h.Staff.GetStaff(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, staff, "Staff fetched")
}

func (h *StaffHandler) UpdateStaff(c *gin.Context) {
	var req services.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	staff, err := h.Staff.UpdateStaff(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, staff, "Staff updated")
}

func (h *StaffHandler) DeactivateStaff(c *gin.Context) {
	if err := h.Staff.DeactivateStaff(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil, "Staff deactivated")
}

func (h *StaffHandler) ReactivateStaff(c *gin.Context) {
	if err := h.Staff.ReactivateStaff(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil, "Staff reactivated")
}

func (h *StaffHandler) ListStaff(c *gin.Context) {
	page, limit := pageParams(c)
	result, err := h.Staff.ListStaff(models.Role(c.Query("role")), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *StaffHandler) ListByRole(c *gin.Context) {
	staff, err := h.Staff.ActiveStaffByRole(models.Role(c.Query("role")))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, staff, "Staff fetched")
}

func (h *StaffHandler) GetDownlines(c *gin.Context) {
	downlines, err := h.Staff.DirectDownlines(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, downlines, "Downlines fetched")
}

func (h *StaffHandler) GetNetwork(c *gin.Context) {
	levels, err := h.Commissions.GetNetworkTree(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, levels, "Network fetched")
}
