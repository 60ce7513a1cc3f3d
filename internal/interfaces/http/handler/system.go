package handler

import (
	ledgerapp "github.com/bizmaster/backend/internal/application/ledger"
	"github.com/bizmaster/backend/internal/domain/identity"
	"github.com/bizmaster/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// SystemHandler handles unit listing and data reset endpoints
type SystemHandler struct {
	BaseHandler
	systemService *ledgerapp.SystemService
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(systemService *ledgerapp.SystemService) *SystemHandler {
	return &SystemHandler{systemService: systemService}
}

// ListUnits returns the known business units with their cash balances
func (h *SystemHandler) ListUnits(c *gin.Context) {
	h.Success(c, h.systemService.ListUnits())
}

// Reset restores the ledger to its seeded state. User accounts are kept.
func (h *SystemHandler) Reset(c *gin.Context) {
	if err := h.systemService.Reset(); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"reset": true})
}

// RegisterRoutes registers system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/units", middleware.RequireFeature(identity.FeatureDashboard), h.ListUnits)
	rg.POST("/system/reset", middleware.RequireFeature(identity.FeatureDataReset), h.Reset)
}
