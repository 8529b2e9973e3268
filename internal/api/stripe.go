package api

import (
	"context"

	"github.com/shopspring/decimal"
)

// Invoice is a Stripe invoice as the backend relays it.
type Invoice struct {
	ID        string          `json:"id"`
	Number    string          `json:"number"`
	Customer  string          `json:"customer"`
	Status    string          `json:"status"` // draft, open, paid, void, uncollectible
	AmountDue decimal.Decimal `json:"amountDue"`
	Currency  string          `json:"currency"`
	DueDate   string          `json:"dueDate"`
	HostedURL string          `json:"hostedUrl"`
}

// Quote is a Stripe quote as the backend relays it.
type Quote struct {
	ID          string          `json:"id"`
	Number      string          `json:"number"`
	Customer    string          `json:"customer"`
	Status      string          `json:"status"` // draft, open, accepted, canceled
	AmountTotal decimal.Decimal `json:"amountTotal"`
	Currency    string          `json:"currency"`
	ExpiresAt   string          `json:"expiresAt"`
}

// Customer is a Stripe customer as the backend relays it.
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Invoices lists invoices, newest first.
func (c *Client) Invoices(ctx context.Context) ([]Invoice, error) {
	var invoices []Invoice
	err := c.get(ctx, "/api/stripe/invoices", nil, &invoices)
	return invoices, err
}

// Quotes lists quotes, newest first.
func (c *Client) Quotes(ctx context.Context) ([]Quote, error) {
	var quotes []Quote
	err := c.get(ctx, "/api/stripe/quotes", nil, &quotes)
	return quotes, err
}

// Customers lists customers.
func (c *Client) Customers(ctx context.Context) ([]Customer, error) {
	var customers []Customer
	err := c.get(ctx, "/api/stripe/customers", nil, &customers)
	return customers, err
}

// FinalizeInvoice moves a draft invoice to open.
func (c *Client) FinalizeInvoice(ctx context.Context, id string) (Invoice, error) {
	return c.invoiceAction(ctx, id, "finalize")
}

// SendInvoice emails an open invoice to the customer.
func (c *Client) SendInvoice(ctx context.Context, id string) (Invoice, error) {
	return c.invoiceAction(ctx, id, "send")
}

// VoidInvoice voids an open invoice.
func (c *Client) VoidInvoice(ctx context.Context, id string) (Invoice, error) {
	return c.invoiceAction(ctx, id, "void")
}

// AcceptQuote marks a quote accepted.
func (c *Client) AcceptQuote(ctx context.Context, id string) (Quote, error) {
	return c.quoteAction(ctx, id, "accept")
}

// CancelQuote cancels an open quote.
func (c *Client) CancelQuote(ctx context.Context, id string) (Quote, error) {
	return c.quoteAction(ctx, id, "cancel")
}

// QuotePDF downloads the rendered quote PDF.
func (c *Client) QuotePDF(ctx context.Context, id string) ([]byte, error) {
	return c.getBytes(ctx, "/api/stripe/quotes/"+id+"/pdf")
}

func (c *Client) invoiceAction(ctx context.Context, id, action string) (Invoice, error) {
	var invoice Invoice
	err := c.post(ctx, "/api/stripe/invoices/"+id+"/"+action, nil, &invoice)
	return invoice, err
}

func (c *Client) quoteAction(ctx context.Context, id, action string) (Quote, error) {
	var quote Quote
	err := c.post(ctx, "/api/stripe/quotes/"+id+"/"+action, nil, &quote)
	return quote, err
}
