// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/go-packaging-service/internal/domain/packaging"
	"github.com/jsamuelsen11/go-packaging-service/internal/ports"
)

// DescriptorResponse represents one registered strategy.
type DescriptorResponse struct {
	ID         string `json:"id"`
	AdminLabel string `json:"admin_label"`
}

// DescriptorListResponse represents the strategy registry listing.
type DescriptorListResponse struct {
	Strategies []DescriptorResponse `json:"strategies"`
	Count      int                  `json:"count"`
}

// ToDescriptorListResponse converts registry descriptors, preserving order.
func ToDescriptorListResponse(descriptors []packaging.Descriptor) DescriptorListResponse {
	items := make([]DescriptorResponse, len(descriptors))
	for i, d := range descriptors {
		items[i] = DescriptorResponse{ID: d.ID, AdminLabel: d.AdminLabel}
	}
	return DescriptorListResponse{
		Strategies: items,
		Count:      len(items),
	}
}

// OptionResponse represents one entry of the strategy select control.
type OptionResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FieldResponse represents the strategy select control.
type FieldResponse struct {
	Name    string           `json:"name"`
	Type    string           `json:"type"`
	Title   string           `json:"title"`
	Options []OptionResponse `json:"options"`
	Default string           `json:"default_value"`
}

// ActionResponse represents a form submit button.
type ActionResponse struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// FormResponse represents the packaging debug selection form.
type FormResponse struct {
	FormID     string           `json:"form_id"`
	Field      FieldResponse    `json:"field"`
	Operations string           `json:"operations"`
	Actions    []ActionResponse `json:"actions"`
	Empty      bool             `json:"empty,omitempty"`
	Stale      bool             `json:"stale,omitempty"`
}

// ToFormResponse converts a domain SelectionForm to its HTTP representation.
func ToFormResponse(f *packaging.SelectionForm) FormResponse {
	options := make([]OptionResponse, len(f.Options))
	for i, o := range f.Options {
		options[i] = OptionResponse{Value: o.Value, Label: o.Label}
	}
	return FormResponse{
		FormID: f.ID,
		Field: FieldResponse{
			Name:    f.Field,
			Type:    "select",
			Title:   f.Title,
			Options: options,
			Default: f.Default,
		},
		Operations: f.Operations,
		Actions:    []ActionResponse{{Type: "submit", Value: f.SubmitLabel}},
		Empty:      f.Empty,
		Stale:      f.Stale,
	}
}

// ProductResponse represents a product handed to a strategy. Decimal values
// are rendered as strings to keep their precision.
type ProductResponse struct {
	ID     string `json:"id"`
	SKU    string `json:"sku"`
	Weight string `json:"weight"`
	Price  string `json:"price"`
}

// PackageResponse represents one package returned by a strategy.
type PackageResponse struct {
	Products []ProductResponse `json:"products"`
	Weight   string            `json:"weight"`
}

// ReportResponse represents the outcome of one strategy invocation.
type ReportResponse struct {
	Strategy   string            `json:"strategy"`
	AdminLabel string            `json:"admin_label"`
	Products   []ProductResponse `json:"products"`
	Packages   []PackageResponse `json:"packages"`
	Dump       string            `json:"dump"`
	InvokedAt  string            `json:"invoked_at"`
}

// ToReportResponse converts a domain InvocationReport to an HTTP response DTO.
func ToReportResponse(r *packaging.InvocationReport) ReportResponse {
	packages := make([]PackageResponse, len(r.Packages))
	for i, p := range r.Packages {
		packages[i] = PackageResponse{
			Products: toProductResponses(p.Products),
			Weight:   p.Weight().String(),
		}
	}
	return ReportResponse{
		Strategy:   r.StrategyID,
		AdminLabel: r.AdminLabel,
		Products:   toProductResponses(r.Products),
		Packages:   packages,
		Dump:       r.Dump,
		InvokedAt:  r.InvokedAt.Format(time.RFC3339),
	}
}

func toProductResponses(products []packaging.Product) []ProductResponse {
	items := make([]ProductResponse, len(products))
	for i, p := range products {
		items[i] = ProductResponse{
			ID:     p.ID.String(),
			SKU:    p.SKU,
			Weight: p.Weight.String(),
			Price:  p.Price.String(),
		}
	}
	return items
}

// MessageResponse represents a queued notification.
type MessageResponse struct {
	Level     string `json:"level"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

// MessageListResponse represents the drained notification queue.
type MessageListResponse struct {
	Messages []MessageResponse `json:"messages"`
	Count    int               `json:"count"`
}

// ToMessageListResponse converts notifier messages to an HTTP response DTO.
func ToMessageListResponse(msgs []ports.Message) MessageListResponse {
	items := make([]MessageResponse, len(msgs))
	for i, m := range msgs {
		items[i] = MessageResponse{
			Level:     string(m.Level),
			Text:      m.Text,
			CreatedAt: m.CreatedAt.Format(time.RFC3339),
		}
	}
	return MessageListResponse{
		Messages: items,
		Count:    len(items),
	}
}
