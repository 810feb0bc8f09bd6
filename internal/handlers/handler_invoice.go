package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/ports/services"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/dto"
)

// billingHandler handles HTTP requests for services, invoices, invoice items
// and payments.
type billingHandler struct {
	billingService portssvc.BillingSvcFacade
}

func newBillingHandler(bs portssvc.BillingSvcFacade) *billingHandler {
	return &billingHandler{billingService: bs}
}

// registerProjectBillingRoutes registers the service and invoice collection
// routes nested under a specific project group.
func registerProjectBillingRoutes(projectGroup *gin.RouterGroup, billingService portssvc.BillingSvcFacade) {
	h := newBillingHandler(billingService)

	services := projectGroup.Group("/services")
	{
		services.POST("", h.createService)
		services.GET("", h.listServices)
	}

	invoices := projectGroup.Group("/invoices")
	{
		invoices.POST("", h.createInvoice)
		invoices.GET("", h.listInvoices)
	}
}

// registerBillingRoutes registers routes addressed by service, invoice, item
// or payment ID directly.
func registerBillingRoutes(rg *gin.RouterGroup, billingService portssvc.BillingSvcFacade) {
	h := newBillingHandler(billingService)

	serviceSpecific := rg.Group("/services/:service_id")
	{
		serviceSpecific.GET("", h.getService)
		serviceSpecific.PUT("", h.updateService)
		serviceSpecific.DELETE("", h.deleteService)
	}

	invoiceSpecific := rg.Group("/invoices/:invoice_id")
	{
		invoiceSpecific.GET("", h.getInvoice)
		invoiceSpecific.PUT("", h.updateInvoice)
		invoiceSpecific.DELETE("", h.deleteInvoice)
		invoiceSpecific.POST("/items", h.createItem)
		invoiceSpecific.GET("/items", h.listItems)
		invoiceSpecific.POST("/payments", h.createPayment)
		invoiceSpecific.GET("/payments", h.listPayments)
	}

	items := rg.Group("/invoice-items/:item_id")
	{
		items.PUT("", h.updateItem)
		items.DELETE("", h.deleteItem)
	}

	payments := rg.Group("/payments/:payment_id")
	{
		payments.PUT("", h.updatePayment)
		payments.DELETE("", h.deletePayment)
	}
}

// --- Services ---

func (h *billingHandler) createService(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	service, err := h.billingService.CreateService(c.Request.Context(), userID, c.Param("project_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToServiceResponse(service))
}

func (h *billingHandler) listServices(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	services, err := h.billingService.ListServicesByProject(c.Request.Context(), userID, c.Param("project_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListServicesResponse(services))
}

func (h *billingHandler) getService(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	service, err := h.billingService.GetServiceByID(c.Request.Context(), userID, c.Param("service_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToServiceResponse(service))
}

func (h *billingHandler) updateService(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	service, err := h.billingService.UpdateService(c.Request.Context(), userID, c.Param("service_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToServiceResponse(service))
}

func (h *billingHandler) deleteService(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.billingService.DeleteService(c.Request.Context(), userID, c.Param("service_id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// --- Invoices ---

func (h *billingHandler) createInvoice(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	invoice, err := h.billingService.CreateInvoice(c.Request.Context(), userID, c.Param("project_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

func (h *billingHandler) listInvoices(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	invoices, err := h.billingService.ListInvoicesByProject(c.Request.Context(), userID, c.Param("project_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListInvoicesResponse(invoices))
}

func (h *billingHandler) getInvoice(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	invoice, err := h.billingService.GetInvoiceByID(c.Request.Context(), userID, c.Param("invoice_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

func (h *billingHandler) updateInvoice(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	invoice, err := h.billingService.UpdateInvoice(c.Request.Context(), userID, c.Param("invoice_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

func (h *billingHandler) deleteInvoice(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.billingService.DeleteInvoice(c.Request.Context(), userID, c.Param("invoice_id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// --- Invoice items ---

func (h *billingHandler) createItem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateInvoiceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	item, err := h.billingService.CreateItem(c.Request.Context(), userID, c.Param("invoice_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvoiceItemResponse(item))
}

func (h *billingHandler) listItems(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	items, err := h.billingService.ListItemsByInvoice(c.Request.Context(), userID, c.Param("invoice_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListInvoiceItemsResponse(items))
}

func (h *billingHandler) updateItem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateInvoiceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	item, err := h.billingService.UpdateItem(c.Request.Context(), userID, c.Param("item_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceItemResponse(item))
}

func (h *billingHandler) deleteItem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.billingService.DeleteItem(c.Request.Context(), userID, c.Param("item_id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// --- Payments ---

// createPayment records a payment and returns it together with the invoice's
// re-derived totals.
func (h *billingHandler) createPayment(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	payment, invoice, err := h.billingService.CreatePayment(c.Request.Context(), userID, c.Param("invoice_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment, invoice))
}

func (h *billingHandler) listPayments(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	payments, err := h.billingService.ListPaymentsByInvoice(c.Request.Context(), userID, c.Param("invoice_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListPaymentsResponse(payments))
}

func (h *billingHandler) updatePayment(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	payment, invoice, err := h.billingService.UpdatePayment(c.Request.Context(), userID, c.Param("payment_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment, invoice))
}

// deletePayment removes a payment and returns the invoice with its totals
// re-derived from the remaining payments.
func (h *billingHandler) deletePayment(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	invoice, err := h.billingService.DeletePayment(c.Request.Context(), userID, c.Param("payment_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}
