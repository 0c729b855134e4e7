package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/cyl-castillo/eco-mercado/internal/events"
	"github.com/cyl-castillo/eco-mercado/internal/logging"
	"github.com/cyl-castillo/eco-mercado/internal/models"
	"github.com/cyl-castillo/eco-mercado/internal/sanitize"
	searchsvc "github.com/cyl-castillo/eco-mercado/internal/service/search"
)

type ProductHandler struct {
	DB       *gorm.DB
	Producer *events.Producer
	ES       *elasticsearch.Client
	Index    string
}

func errorResponse(c echo.Context, code int, msg string) error {
	return c.JSON(code, echo.Map{"error": msg})
}

// List returns every product in storage order (id ASC), as a JSON array.
func (h *ProductHandler) List(c echo.Context) error {
	products := make([]models.Product, 0)
	if err := h.DB.Order("id ASC").Find(&products).Error; err != nil {
		return errorResponse(c, http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, products)
}

// Create publishes a new product. The body is accepted loosely: price may
// arrive as a JSON number or as the raw string a form submits. Text fields
// are escaped and capped before storage.
func (h *ProductHandler) Create(c echo.Context) error {
	var payload map[string]interface{}
	if err := c.Bind(&payload); err != nil {
		return errorResponse(c, http.StatusBadRequest, "Invalid JSON")
	}

	for _, field := range []string{"name", "description", "category", "price"} {
		if _, ok := payload[field]; !ok {
			return errorResponse(c, http.StatusBadRequest, "Missing required fields")
		}
	}

	price, err := parsePrice(payload["price"])
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, "Invalid price")
	}

	prod := models.Product{
		Name:        sanitize.Clean(asString(payload["name"]), sanitize.MaxName),
		Description: sanitize.Clean(asString(payload["description"]), sanitize.MaxDescription),
		Category:    sanitize.Clean(asString(payload["category"]), sanitize.MaxCategory),
		Price:       price,
		Image:       sanitize.Clean(asString(payload["image"]), sanitize.MaxImage),
	}

	if err := h.DB.Create(&prod).Error; err != nil {
		return errorResponse(c, http.StatusInternalServerError, err.Error())
	}

	h.publish(c, map[string]interface{}{
		"type":      "product_created",
		"productID": prod.ID,
		"name":      prod.Name,
		"category":  prod.Category,
	})
	h.indexProduct(c, prod)

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Producto agregado",
		"product": prod,
	})
}

func (h *ProductHandler) publish(c echo.Context, event map[string]interface{}) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, events.ProductTopic, fmt.Sprint(event["productID"]), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "error", err)
	}
}

func (h *ProductHandler) indexProduct(c echo.Context, prod models.Product) {
	if h.ES == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := searchsvc.Index(ctx, h.ES, h.Index, prod); err != nil {
		logging.FromContext(c.Request().Context()).Error("search index error", "error", err)
	}
}

func parsePrice(v interface{}) (float64, error) {
	switch p := v.(type) {
	case float64:
		return p, nil
	case string:
		return strconv.ParseFloat(p, 64)
	default:
		return 0, fmt.Errorf("unsupported price type %T", v)
	}
}

func asString(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
