package webui

import (
	"context"
	"log/slog"
)

// ProductLoader fills a document container with the current product cards.
type ProductLoader struct {
	Client      *Client
	ContainerID string
	Log         *slog.Logger
}

// Load replaces the container's content with one card per product, in server
// order. A missing container is a skip, not an error. On a fetch failure the
// container keeps whatever it held before; the error is logged and returned
// for the caller to observe, never to surface to the page.
func (l *ProductLoader) Load(ctx context.Context, doc *Document) error {
	if !doc.Has(l.ContainerID) {
		l.Log.Debug("container not present, skipping", "container", l.ContainerID)
		return nil
	}

	products, err := l.Client.ListProducts(ctx)
	if err != nil {
		l.Log.Error("load products failed", "container", l.ContainerID, "error", err)
		return err
	}

	content, err := RenderProducts(products)
	if err != nil {
		l.Log.Error("render products failed", "container", l.ContainerID, "error", err)
		return err
	}

	doc.SetContent(l.ContainerID, content)
	return nil
}

// RepairLoader fills a document container with the repair-service directory.
type RepairLoader struct {
	Client      *Client
	ContainerID string
	Log         *slog.Logger
}

func (l *RepairLoader) Load(ctx context.Context, doc *Document) error {
	if !doc.Has(l.ContainerID) {
		l.Log.Debug("container not present, skipping", "container", l.ContainerID)
		return nil
	}

	repairs, err := l.Client.ListRepairs(ctx)
	if err != nil {
		l.Log.Error("load repairs failed", "container", l.ContainerID, "error", err)
		return err
	}

	content, err := RenderRepairs(repairs)
	if err != nil {
		l.Log.Error("render repairs failed", "container", l.ContainerID, "error", err)
		return err
	}

	doc.SetContent(l.ContainerID, content)
	return nil
}
