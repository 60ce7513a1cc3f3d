package handler

import (
	ledgerapp "github.com/bizmaster/backend/internal/application/ledger"
	"github.com/bizmaster/backend/internal/domain/identity"
	"github.com/bizmaster/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// UnitQuery binds the unit selector carried by per-unit read endpoints
type UnitQuery struct {
	Unit string `form:"unit" binding:"required"`
}

// InventoryHandler handles stock movement endpoints
type InventoryHandler struct {
	BaseHandler
	inventoryService *ledgerapp.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *ledgerapp.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// RecordPurchase records a stock purchase paid from the unit's cash
func (h *InventoryHandler) RecordPurchase(c *gin.Context) {
	var req ledgerapp.RecordMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	record, err := h.inventoryService.RecordPurchase(req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, record)
}

// RecordSale records a stock sale credited to the unit's cash
func (h *InventoryHandler) RecordSale(c *gin.Context) {
	var req ledgerapp.RecordMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	record, err := h.inventoryService.RecordSale(req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, record)
}

// ListRecords returns a unit's movement history oldest first
func (h *InventoryHandler) ListRecords(c *gin.Context) {
	var query UnitQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, "Missing unit parameter")
		return
	}
	h.Success(c, h.inventoryService.ListRecords(query.Unit))
}

// Status returns a unit's stock position at the current market price
func (h *InventoryHandler) Status(c *gin.Context) {
	var query UnitQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, "Missing unit parameter")
		return
	}

	status, err := h.inventoryService.Status(query.Unit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, status)
}

// RegisterRoutes registers inventory routes
func (h *InventoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	inventory := rg.Group("/inventory")
	inventory.Use(middleware.RequireFeature(identity.FeatureInventory))
	{
		inventory.GET("/records", h.ListRecords)
		inventory.GET("/status", h.Status)
		inventory.POST("/purchases", h.RecordPurchase)
		inventory.POST("/sales", h.RecordSale)
	}
}
