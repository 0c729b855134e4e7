package webui

import (
	"embed"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer plugs the embedded page templates into echo.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{tmpl: template.Must(template.ParseFS(templateFS, "templates/*.html"))}
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.tmpl.ExecuteTemplate(w, name, data)
}

// Pages serves the four public pages of the market.
type Pages struct {
	Boot      *Bootstrap
	Submitter *ProductSubmitter
	Log       *slog.Logger
}

type pageData struct {
	Title    string
	Products template.HTML
	Repairs  template.HTML
	Notice   string
	Error    string
}

func (p *Pages) Index(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", pageData{Title: "Mercado Circular"})
}

func (p *Pages) Market(c echo.Context) error {
	doc := NewDocument(ProductListID)
	p.Boot.Run(c.Request().Context(), doc)
	return c.Render(http.StatusOK, "market.html", pageData{
		Title:    "Mercado",
		Products: doc.Content(ProductListID),
		Notice:   c.QueryParam("msg"),
	})
}

func (p *Pages) Repair(c echo.Context) error {
	doc := NewDocument(RepairListID)
	p.Boot.Run(c.Request().Context(), doc)
	return c.Render(http.StatusOK, "repair.html", pageData{
		Title:   "Reparaciones",
		Repairs: doc.Content(RepairListID),
	})
}

func (p *Pages) Sell(c echo.Context) error {
	return c.Render(http.StatusOK, "sell.html", pageData{Title: "Publicar producto"})
}

// SubmitProduct owns the form post entirely: the browser's native submission
// lands here and is answered with either a redirect to the listing page or
// the sell page re-rendered with the error message.
func (p *Pages) SubmitProduct(c echo.Context) error {
	form, err := c.FormParams()
	if err != nil {
		p.Log.Error("read form failed", "error", err)
		return c.Render(http.StatusBadRequest, "sell.html", pageData{
			Title: "Publicar producto",
			Error: FallbackMessage,
		})
	}

	outcome := p.Submitter.Submit(c.Request().Context(), form)
	if outcome.OK {
		return c.Redirect(http.StatusSeeOther, outcome.Redirect+"?msg="+url.QueryEscape(outcome.Message))
	}

	return c.Render(http.StatusOK, "sell.html", pageData{
		Title: "Publicar producto",
		Error: outcome.Message,
	})
}
