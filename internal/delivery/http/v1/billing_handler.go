package v1

import (
	"net/http"

	"go-interview-backend/internal/delivery/http/response"
	"go-interview-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type BillingHandler struct {
	billingUC domain.BillingUsecase
}

// NewBillingHandler registers billing routes
func NewBillingHandler(r *gin.RouterGroup, billingUC domain.BillingUsecase) {
	handler := &BillingHandler{billingUC: billingUC}

	billing := r.Group("/billing")
	{
		billing.POST("/checkout-session", handler.CreateCheckoutSession)
		billing.GET("/invoices", handler.ListInvoices)
	}
}

// CreateCheckoutSession godoc
// @Summary      Create a checkout session
// @Description  Returns the provider-hosted checkout URL for upgrading to Premium.
// @Tags         billing
// @Produce      json
// @Success      200  {object}  response.Response{data=map[string]string}
// @Failure      502  {object}  response.Response
// @Router       /billing/checkout-session [post]
// @Security     BearerAuth
func (h *BillingHandler) CreateCheckoutSession(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	email := c.GetString(string(domain.KeyUserEmail))

	url, err := h.billingUC.CreateCheckoutSession(c.Request.Context(), userID, email)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Checkout session created", gin.H{"url": url})
}

// ListInvoices godoc
// @Summary      List billing invoices
// @Description  Returns the caller's invoices from the payment provider. Users without a billing history get an empty list.
// @Tags         billing
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Invoice}
// @Failure      502  {object}  response.Response
// @Router       /billing/invoices [get]
// @Security     BearerAuth
func (h *BillingHandler) ListInvoices(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	invoices, err := h.billingUC.ListInvoices(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Invoices retrieved", invoices)
}
