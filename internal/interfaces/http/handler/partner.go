package handler

import (
	ledgerapp "github.com/bizmaster/backend/internal/application/ledger"
	"github.com/bizmaster/backend/internal/domain/identity"
	"github.com/bizmaster/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// PartnerHandler handles equity table and withdrawal endpoints
type PartnerHandler struct {
	BaseHandler
	partnerService *ledgerapp.PartnerService
}

// NewPartnerHandler creates a new partner handler
func NewPartnerHandler(partnerService *ledgerapp.PartnerService) *PartnerHandler {
	return &PartnerHandler{partnerService: partnerService}
}

// ListPartners returns a unit's equity table
func (h *PartnerHandler) ListPartners(c *gin.Context) {
	var query UnitQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, "Missing unit parameter")
		return
	}
	h.Success(c, h.partnerService.ListPartners(query.Unit))
}

// AddPartner adds a partner to a unit's equity table
func (h *PartnerHandler) AddPartner(c *gin.Context) {
	var req ledgerapp.AddPartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	partner, err := h.partnerService.AddPartner(req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, partner)
}

// RemovePartner removes a partner, redistributing or reassigning the
// freed share, and returns the resulting equity table
func (h *PartnerHandler) RemovePartner(c *gin.Context) {
	var req ledgerapp.RemovePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	partners, err := h.partnerService.RemovePartner(req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, partners)
}

// RecordWithdrawal pays out part of a partner's available entitlement
func (h *PartnerHandler) RecordWithdrawal(c *gin.Context) {
	var req ledgerapp.RecordWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	record, err := h.partnerService.RecordWithdrawal(req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, record)
}

// PartnerProfits returns each partner's entitlement within one unit
func (h *PartnerHandler) PartnerProfits(c *gin.Context) {
	var query UnitQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, "Missing unit parameter")
		return
	}
	h.Success(c, h.partnerService.PartnerProfits(query.Unit))
}

// CombinedPartnerProfits merges per-unit entitlements by partner name
func (h *PartnerHandler) CombinedPartnerProfits(c *gin.Context) {
	h.Success(c, h.partnerService.CombinedPartnerProfits())
}

// RegisterRoutes registers partnership routes
func (h *PartnerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	partners := rg.Group("/partners")
	partners.Use(middleware.RequireFeature(identity.FeaturePartnership))
	{
		partners.GET("", h.ListPartners)
		partners.GET("/profits", h.PartnerProfits)
		partners.GET("/profits/combined", h.CombinedPartnerProfits)
		partners.POST("", h.AddPartner)
		partners.POST("/remove", h.RemovePartner)
		partners.POST("/withdrawals", h.RecordWithdrawal)
	}
}
