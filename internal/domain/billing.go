package domain

import "context"

// Invoice mirrors the payment provider's invoice object, reduced to the
// fields the billing history view renders.
type Invoice struct {
	ID         string `json:"id"`
	Number     string `json:"number"`
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
	Status     string `json:"status"`
	Created    int64  `json:"created"`
	HostedURL  string `json:"hosted_invoice_url,omitempty"`
	InvoicePDF string `json:"invoice_pdf,omitempty"`
}

// BillingUsecase exposes the plan and payment surface.
type BillingUsecase interface {
	GetPlan(ctx context.Context, userID string) (string, error)
	// CreateCheckoutSession returns the provider-hosted redirect URL.
	CreateCheckoutSession(ctx context.Context, userID, email string) (string, error)
	ListInvoices(ctx context.Context, userID string) ([]Invoice, error)
}
