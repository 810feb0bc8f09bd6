package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/ports/services"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/dto"
)

// expenseHandler handles HTTP requests for expenses, categories and vendors.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

func newExpenseHandler(es portssvc.ExpenseSvcFacade) *expenseHandler {
	return &expenseHandler{expenseService: es}
}

// registerExpenseRoutes registers expense, category and vendor routes. All
// lists are scoped to the caller's organization.
func registerExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := newExpenseHandler(expenseService)

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.createExpense)
		expenses.GET("", h.listExpenses)
		expenses.GET("/:expense_id", h.getExpense)
		expenses.PUT("/:expense_id", h.updateExpense)
		expenses.DELETE("/:expense_id", h.deleteExpense)
	}

	categories := rg.Group("/expense-categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
		categories.DELETE("/:category_id", h.deleteCategory)
	}

	vendors := rg.Group("/vendors")
	{
		vendors.POST("", h.createVendor)
		vendors.GET("", h.listVendors)
		vendors.GET("/:vendor_id", h.getVendor)
		vendors.PUT("/:vendor_id", h.updateVendor)
		vendors.DELETE("/:vendor_id", h.deleteVendor)
	}
}

// --- Expenses ---

func (h *expenseHandler) createExpense(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// listExpenses returns the organization's expenses, optionally filtered by
// ?projectID=.
func (h *expenseHandler) listExpenses(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var projectID *string
	if p := c.Query("projectID"); p != "" {
		projectID = &p
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), userID, projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListExpensesResponse(expenses))
}

func (h *expenseHandler) getExpense(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	expense, err := h.expenseService.GetExpenseByID(c.Request.Context(), userID, c.Param("expense_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

func (h *expenseHandler) updateExpense(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), userID, c.Param("expense_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

func (h *expenseHandler) deleteExpense(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), userID, c.Param("expense_id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// --- Categories ---

func (h *expenseHandler) createCategory(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateExpenseCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	category, err := h.expenseService.CreateCategory(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToExpenseCategoryResponse(category))
}

func (h *expenseHandler) listCategories(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	categories, err := h.expenseService.ListCategories(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListExpenseCategoriesResponse(categories))
}

func (h *expenseHandler) deleteCategory(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.expenseService.DeleteCategory(c.Request.Context(), userID, c.Param("category_id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// --- Vendors ---

func (h *expenseHandler) createVendor(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	vendor, err := h.expenseService.CreateVendor(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToVendorResponse(vendor))
}

func (h *expenseHandler) listVendors(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	vendors, err := h.expenseService.ListVendors(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListVendorsResponse(vendors))
}

func (h *expenseHandler) getVendor(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	vendor, err := h.expenseService.GetVendorByID(c.Request.Context(), userID, c.Param("vendor_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVendorResponse(vendor))
}

func (h *expenseHandler) updateVendor(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	vendor, err := h.expenseService.UpdateVendor(c.Request.Context(), userID, c.Param("vendor_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVendorResponse(vendor))
}

func (h *expenseHandler) deleteVendor(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.expenseService.DeleteVendor(c.Request.Context(), userID, c.Param("vendor_id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
