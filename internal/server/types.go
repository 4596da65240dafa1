package server

import "github.com/rezonia/invoicing/internal/render"

// InvoiceResponse is the response for invoice endpoints
type InvoiceResponse struct {
	Invoice render.Summary `json:"invoice"`
}

// ListResponse is the response for the invoice list endpoint
type ListResponse struct {
	Numbers []int `json:"numbers"`
}

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
