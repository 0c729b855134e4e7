package webui

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/cyl-castillo/eco-mercado/internal/models"
)

// PlaceholderImage is substituted when a listing carries no image URL.
const PlaceholderImage = "https://via.placeholder.com/400x300?text=Sin+imagen"

// Card and item markup. User-controlled text passes through html/template,
// so it is escaped on the way out regardless of what made it into storage.
var (
	productCardsTmpl = template.Must(template.New("product-cards").Parse(`{{range .}}<div class="producto-card">
  <img src="{{.ImageURL}}" alt="{{.Name}}">
  <h3>{{.Name}}</h3>
  <p class="precio">${{.Price}}</p>
  <p>{{.Description}}</p>
</div>
{{end}}`))

	repairItemsTmpl = template.Must(template.New("repair-items").Parse(`{{range .}}<div class="servicio-item">
  <h3>{{.Name}}</h3>
  <p>{{.Description}}</p>
  <p class="contacto">Contacto: {{.Contact}}</p>
</div>
{{end}}`))
)

type productCard struct {
	models.Product
	ImageURL string
}

// RenderProducts builds one card per product, preserving input order.
func RenderProducts(products []models.Product) (template.HTML, error) {
	cards := make([]productCard, len(products))
	for i, p := range products {
		url := p.Image
		if url == "" {
			url = PlaceholderImage
		}
		cards[i] = productCard{Product: p, ImageURL: url}
	}

	var buf bytes.Buffer
	if err := productCardsTmpl.Execute(&buf, cards); err != nil {
		return "", fmt.Errorf("render products: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// RenderRepairs builds one item per repair service, preserving input order.
func RenderRepairs(repairs []models.RepairService) (template.HTML, error) {
	var buf bytes.Buffer
	if err := repairItemsTmpl.Execute(&buf, repairs); err != nil {
		return "", fmt.Errorf("render repairs: %w", err)
	}
	return template.HTML(buf.String()), nil
}
