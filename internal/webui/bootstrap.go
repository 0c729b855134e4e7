package webui

import (
	"context"
	"log/slog"
	"sync"
)

// Anchor ids the host pages declare. A component only activates when its
// anchor is present in the page's document, so the same bootstrap is safe to
// run against every page.
const (
	ProductListID = "product-list"
	RepairListID  = "repair-list"
	ProductFormID = "product-form"
)

// Bootstrap wires the loaders against a page's document.
type Bootstrap struct {
	Products *ProductLoader
	Repairs  *RepairLoader
	Log      *slog.Logger
}

func NewBootstrap(client *Client, log *slog.Logger) *Bootstrap {
	return &Bootstrap{
		Products: &ProductLoader{Client: client, ContainerID: ProductListID, Log: log},
		Repairs:  &RepairLoader{Client: client, ContainerID: RepairListID, Log: log},
		Log:      log,
	}
}

// Run loads every container the document declares. Loads run concurrently;
// they target distinct containers and share no state beyond the document,
// which serialises its own writes. Failures are already logged by the
// loaders and never abort the page.
func (b *Bootstrap) Run(ctx context.Context, doc *Document) {
	var wg sync.WaitGroup

	if doc.Has(ProductListID) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = b.Products.Load(ctx, doc)
		}()
	}
	if doc.Has(RepairListID) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = b.Repairs.Load(ctx, doc)
		}()
	}

	wg.Wait()
}
