package webui

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"
)

const (
	// SuccessMessage is shown after a listing is accepted.
	SuccessMessage = "Producto publicado correctamente"
	// FallbackMessage is shown when the server gave no usable error.
	FallbackMessage = "Error al publicar el producto"
	// ListingPage is where a successful submission navigates to.
	ListingPage = "/market.html"
)

// ProductSubmitter turns a submitted form into a create request and decides
// what the user sees afterwards.
type ProductSubmitter struct {
	Client *Client
	Log    *slog.Logger
}

// SubmitOutcome is what the page does with a finished submission: show
// Message, and when OK, navigate to Redirect.
type SubmitOutcome struct {
	OK       bool
	Message  string
	Redirect string
}

// Submit reads the five listing fields from the form. Name, description and
// image are trimmed; category and price travel verbatim. No field is
// validated here: the server owns rejection.
func (s *ProductSubmitter) Submit(ctx context.Context, form url.Values) SubmitOutcome {
	product := NewProduct{
		Name:        strings.TrimSpace(form.Get("name")),
		Description: strings.TrimSpace(form.Get("description")),
		Category:    form.Get("category"),
		Price:       form.Get("price"),
		Image:       strings.TrimSpace(form.Get("image")),
	}

	err := s.Client.CreateProduct(ctx, product)
	if err == nil {
		s.Log.Info("product published", "name", product.Name)
		return SubmitOutcome{OK: true, Message: SuccessMessage, Redirect: ListingPage}
	}

	var appErr *ApplicationError
	if errors.As(err, &appErr) {
		msg := appErr.Message
		if msg == "" {
			msg = FallbackMessage
		}
		s.Log.Warn("product rejected", "status", appErr.Status, "message", appErr.Message)
		return SubmitOutcome{Message: msg}
	}

	s.Log.Error("product submission failed", "error", err)
	return SubmitOutcome{Message: FallbackMessage}
}
