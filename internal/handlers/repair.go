package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/cyl-castillo/eco-mercado/internal/models"
)

type RepairHandler struct {
	DB *gorm.DB
}

// List returns the repair-service directory in storage order.
func (h *RepairHandler) List(c echo.Context) error {
	repairs := make([]models.RepairService, 0)
	if err := h.DB.Order("id ASC").Find(&repairs).Error; err != nil {
		return errorResponse(c, http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, repairs)
}
