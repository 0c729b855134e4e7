package httpserver

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/cyl-castillo/eco-mercado/internal/handlers"
	"github.com/cyl-castillo/eco-mercado/internal/middleware/apitoken"
	"github.com/cyl-castillo/eco-mercado/internal/webui"
)

type Deps struct {
	ProductHandler *handlers.ProductHandler
	RepairHandler  *handlers.RepairHandler
	AuthHandler    *handlers.AuthHandler
	SearchHandler  *handlers.SearchHandler
	Pages          *webui.Pages

	// APIToken guards product publication.
	APIToken string
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	api := e.Group("/api", middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	api.GET("/products", d.ProductHandler.List)
	api.POST("/products", d.ProductHandler.Create, apitoken.Require(d.APIToken))
	api.GET("/repairs", d.RepairHandler.List)

	api.POST("/register", d.AuthHandler.Register)
	api.POST("/login", d.AuthHandler.Login)
	api.GET("/verify/:token", d.AuthHandler.Verify)

	if d.SearchHandler != nil {
		api.GET("/search", d.SearchHandler.Handle)
	}

	e.Static("/static", "static")

	e.GET("/", d.Pages.Index)
	e.GET("/market.html", d.Pages.Market)
	e.GET("/repair.html", d.Pages.Repair)
	e.GET("/sell.html", d.Pages.Sell)
	e.POST("/sell.html", d.Pages.SubmitProduct)
}
