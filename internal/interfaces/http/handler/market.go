package handler

import (
	ledgerapp "github.com/bizmaster/backend/internal/application/ledger"
	"github.com/bizmaster/backend/internal/domain/identity"
	"github.com/bizmaster/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// MarketHandler handles market price endpoints
type MarketHandler struct {
	BaseHandler
	marketService *ledgerapp.MarketService
}

// NewMarketHandler creates a new market handler
func NewMarketHandler(marketService *ledgerapp.MarketService) *MarketHandler {
	return &MarketHandler{marketService: marketService}
}

// CurrentPrice returns the market price applied to all units
func (h *MarketHandler) CurrentPrice(c *gin.Context) {
	h.Success(c, h.marketService.CurrentPrice())
}

// UpdatePrice sets the market price per kg
func (h *MarketHandler) UpdatePrice(c *gin.Context) {
	var req ledgerapp.UpdatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	price, err := h.marketService.UpdatePrice(req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, price)
}

// PriceHistory returns past price points oldest first
func (h *MarketHandler) PriceHistory(c *gin.Context) {
	h.Success(c, h.marketService.PriceHistory())
}

// RegisterRoutes registers market price routes
func (h *MarketHandler) RegisterRoutes(rg *gin.RouterGroup) {
	market := rg.Group("/market")
	market.Use(middleware.RequireFeature(identity.FeatureDashboard))
	{
		market.GET("/price", h.CurrentPrice)
		market.GET("/price/history", h.PriceHistory)
		market.PUT("/price", h.UpdatePrice)
	}
}
