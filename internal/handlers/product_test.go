package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/cyl-castillo/eco-mercado/internal/events"
	"github.com/cyl-castillo/eco-mercado/internal/models"
)

func TestListProducts(t *testing.T) {
	db := initTestDB(t)
	h := &ProductHandler{DB: db, Producer: events.NewProducer(nil)}

	seed := []models.Product{
		{Name: "Chaqueta", Description: "talla M", Category: "ropa", Price: 45},
		{Name: "Mesa", Description: "madera reciclada", Category: "muebles", Price: 80},
		{Name: "Lámpara", Description: "restaurada", Category: "muebles", Price: 12.5},
	}
	require.NoError(t, db.Create(&seed).Error)

	e := echo.New()
	rec, c := doJSONRequest(t, e, http.MethodGet, "/api/products", nil)
	require.NoError(t, h.List(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 3)
	require.Equal(t, "Chaqueta", got[0].Name)
	require.Equal(t, "Mesa", got[1].Name)
	require.Equal(t, "Lámpara", got[2].Name)
}

func TestListProductsEmpty(t *testing.T) {
	db := initTestDB(t)
	h := &ProductHandler{DB: db, Producer: events.NewProducer(nil)}

	e := echo.New()
	rec, c := doJSONRequest(t, e, http.MethodGet, "/api/products", nil)
	require.NoError(t, h.List(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, "[]", rec.Body.String())
}

func TestCreateProduct(t *testing.T) {
	db := initTestDB(t)
	h := &ProductHandler{DB: db, Producer: events.NewProducer(nil)}

	payload := map[string]interface{}{
		"name":        "Bicicleta urbana",
		"description": "Recién revisada, lista para usar.",
		"category":    "otros",
		"price":       "75.5",
		"image":       "",
	}

	e := echo.New()
	rec, c := doJSONRequest(t, e, http.MethodPost, "/api/products", payload)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Message string         `json:"message"`
		Product models.Product `json:"product"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Producto agregado", resp.Message)
	require.Equal(t, "Bicicleta urbana", resp.Product.Name)
	require.Equal(t, 75.5, resp.Product.Price)
	require.NotZero(t, resp.Product.ID)

	var stored models.Product
	require.NoError(t, db.First(&stored, resp.Product.ID).Error)
	require.Equal(t, "otros", stored.Category)
}

func TestCreateProductNumericPrice(t *testing.T) {
	db := initTestDB(t)
	h := &ProductHandler{DB: db, Producer: events.NewProducer(nil)}

	payload := map[string]interface{}{
		"name":        "Silla",
		"description": "Silla de oficina",
		"category":    "muebles",
		"price":       20,
	}

	e := echo.New()
	rec, c := doJSONRequest(t, e, http.MethodPost, "/api/products", payload)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Product models.Product `json:"product"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, float64(20), resp.Product.Price)
}

func TestCreateProductEscapesInput(t *testing.T) {
	db := initTestDB(t)
	h := &ProductHandler{DB: db, Producer: events.NewProducer(nil)}

	payload := map[string]interface{}{
		"name":        `<script>alert("x")</script>`,
		"description": "desc",
		"category":    "otros",
		"price":       "1",
	}

	e := echo.New()
	rec, c := doJSONRequest(t, e, http.MethodPost, "/api/products", payload)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var stored models.Product
	require.NoError(t, db.Order("id DESC").First(&stored).Error)
	require.NotContains(t, stored.Name, "<script>")
	require.Contains(t, stored.Name, "&lt;script&gt;")
}

func TestCreateProductMissingFields(t *testing.T) {
	db := initTestDB(t)
	h := &ProductHandler{DB: db, Producer: events.NewProducer(nil)}

	payload := map[string]interface{}{
		"name":  "Sin precio",
		"price": "10",
	}

	e := echo.New()
	rec, c := doJSONRequest(t, e, http.MethodPost, "/api/products", payload)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Missing required fields", decodeError(t, rec))
}

func TestCreateProductInvalidPrice(t *testing.T) {
	db := initTestDB(t)
	h := &ProductHandler{DB: db, Producer: events.NewProducer(nil)}

	payload := map[string]interface{}{
		"name":        "Silla",
		"description": "desc",
		"category":    "muebles",
		"price":       "gratis",
	}

	e := echo.New()
	rec, c := doJSONRequest(t, e, http.MethodPost, "/api/products", payload)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Invalid price", decodeError(t, rec))
}

func TestCreateProductInvalidJSON(t *testing.T) {
	db := initTestDB(t)
	h := &ProductHandler{DB: db, Producer: events.NewProducer(nil)}

	e := echo.New()
	rec, c := doRawRequest(t, e, http.MethodPost, "/api/products", `{"name": `)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Invalid JSON", decodeError(t, rec))
}
