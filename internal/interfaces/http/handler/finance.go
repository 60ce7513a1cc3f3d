package handler

import (
	ledgerapp "github.com/bizmaster/backend/internal/application/ledger"
	"github.com/bizmaster/backend/internal/domain/identity"
	"github.com/bizmaster/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// FinanceHandler handles expense and investment endpoints
type FinanceHandler struct {
	BaseHandler
	financeService *ledgerapp.FinanceService
}

// NewFinanceHandler creates a new finance handler
func NewFinanceHandler(financeService *ledgerapp.FinanceService) *FinanceHandler {
	return &FinanceHandler{financeService: financeService}
}

// RecordExpense records an operating expense against a unit
func (h *FinanceHandler) RecordExpense(c *gin.Context) {
	var req ledgerapp.RecordExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	record, err := h.financeService.RecordExpense(req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, record)
}

// ListExpenses returns a unit's expense entries
func (h *FinanceHandler) ListExpenses(c *gin.Context) {
	var query UnitQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, "Missing unit parameter")
		return
	}
	h.Success(c, h.financeService.ListExpenses(query.Unit))
}

// ExpenseCategories lists the categories selectable for new expenses
func (h *FinanceHandler) ExpenseCategories(c *gin.Context) {
	h.Success(c, h.financeService.ExpenseCategories())
}

// OperatingExpenseTotal returns a unit's expense total excluding equity flows
func (h *FinanceHandler) OperatingExpenseTotal(c *gin.Context) {
	var query UnitQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, "Missing unit parameter")
		return
	}
	h.Success(c, gin.H{
		"business_unit": query.Unit,
		"total":         h.financeService.OperatingExpenseTotal(query.Unit),
	})
}

// RecordInvestment credits an investment and distributes it across partners
func (h *FinanceHandler) RecordInvestment(c *gin.Context) {
	var req ledgerapp.RecordInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	record, err := h.financeService.RecordInvestment(req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, record)
}

// ListInvestments returns a unit's capital injections
func (h *FinanceHandler) ListInvestments(c *gin.Context) {
	var query UnitQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, "Missing unit parameter")
		return
	}
	h.Success(c, h.financeService.ListInvestments(query.Unit))
}

// InvestmentTotal returns a unit's lifetime invested capital
func (h *FinanceHandler) InvestmentTotal(c *gin.Context) {
	var query UnitQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, "Missing unit parameter")
		return
	}
	h.Success(c, gin.H{
		"business_unit": query.Unit,
		"total":         h.financeService.InvestmentTotal(query.Unit),
	})
}

// RegisterRoutes registers expense and investment routes
func (h *FinanceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	expenses := rg.Group("/expenses")
	expenses.Use(middleware.RequireFeature(identity.FeatureExpenses))
	{
		expenses.GET("", h.ListExpenses)
		expenses.GET("/categories", h.ExpenseCategories)
		expenses.GET("/total", h.OperatingExpenseTotal)
		expenses.POST("", h.RecordExpense)
	}

	investments := rg.Group("/investments")
	investments.Use(middleware.RequireFeature(identity.FeatureInvestments))
	{
		investments.GET("", h.ListInvestments)
		investments.GET("/total", h.InvestmentTotal)
		investments.POST("", h.RecordInvestment)
	}
}
