package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go-interview-backend/internal/domain"
	"go-interview-backend/pkg/apperror"
	"go-interview-backend/pkg/logger"
)

// PaymentClient talks to the Stripe-compatible payment API. Only checkout
// redirection and invoice listing are consumed; settlement, webhooks and
// subscription state live entirely on the provider side.
type PaymentClient struct {
	baseURL    string
	apiKey     string
	successURL string
	cancelURL  string
	client     *http.Client
}

func NewPaymentClient(baseURL, apiKey, successURL, cancelURL string, timeout time.Duration) *PaymentClient {
	return &PaymentClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		successURL: successURL,
		cancelURL:  cancelURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type checkoutSessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type invoiceListResponse struct {
	Data []struct {
		ID               string `json:"id"`
		Number           string `json:"number"`
		AmountPaid       int64  `json:"amount_paid"`
		Currency         string `json:"currency"`
		Status           string `json:"status"`
		Created          int64  `json:"created"`
		HostedInvoiceURL string `json:"hosted_invoice_url"`
		InvoicePDF       string `json:"invoice_pdf"`
	} `json:"data"`
}

// CreateCheckoutSession creates a provider-hosted checkout session and
// returns its redirect URL.
func (p *PaymentClient) CreateCheckoutSession(ctx context.Context, userID, email string) (string, error) {
	form := url.Values{}
	form.Set("mode", "subscription")
	form.Set("client_reference_id", userID)
	form.Set("customer_email", email)
	form.Set("success_url", p.successURL)
	form.Set("cancel_url", p.cancelURL)

	body, err := p.do(ctx, http.MethodPost, "/v1/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}

	var out checkoutSessionResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", apperror.Remote("Payment provider returned malformed JSON", err)
	}
	if out.URL == "" {
		return "", apperror.Remote("Payment provider returned no checkout URL", nil)
	}
	return out.URL, nil
}

// ListInvoices fetches the customer's invoices from the provider.
func (p *PaymentClient) ListInvoices(ctx context.Context, customerID string) ([]domain.Invoice, error) {
	path := "/v1/invoices?customer=" + url.QueryEscape(customerID)
	body, err := p.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var out invoiceListResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, apperror.Remote("Payment provider returned malformed JSON", err)
	}

	invoices := make([]domain.Invoice, 0, len(out.Data))
	for _, inv := range out.Data {
		invoices = append(invoices, domain.Invoice{
			ID:         inv.ID,
			Number:     inv.Number,
			Amount:     inv.AmountPaid,
			Currency:   inv.Currency,
			Status:     inv.Status,
			Created:    inv.Created,
			HostedURL:  inv.HostedInvoiceURL,
			InvoicePDF: inv.InvoicePDF,
		})
	}
	return invoices, nil
}

func (p *PaymentClient) do(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, body)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("build payment request: %w", err))
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, apperror.Remote("Payment provider unavailable", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.Remote("Payment provider response unreadable", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Log.Error("Payment provider returned error", "status", resp.StatusCode, "body", string(respBody))
		return nil, apperror.Remote("Payment provider request failed", fmt.Errorf("status %d", resp.StatusCode))
	}
	return respBody, nil
}
