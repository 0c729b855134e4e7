package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gofrs/uuid"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/cyl-castillo/eco-mercado/internal/events"
	"github.com/cyl-castillo/eco-mercado/internal/hash"
	"github.com/cyl-castillo/eco-mercado/internal/logging"
	"github.com/cyl-castillo/eco-mercado/internal/models"
)

type AuthHandler struct {
	DB        *gorm.DB
	JWTSecret []byte
	Producer  *events.Producer
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an unverified account and returns the verification token
// the caller must present to activate it.
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentials
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "Invalid JSON")
	}
	if req.Email == "" || req.Password == "" {
		return errorResponse(c, http.StatusBadRequest, "Missing required fields")
	}

	var existing models.User
	err := h.DB.Where("email = ?", req.Email).First(&existing).Error
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		if err != nil {
			return errorResponse(c, http.StatusInternalServerError, err.Error())
		}
		return errorResponse(c, http.StatusConflict, "Email already registered")
	}

	passwordHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err.Error())
	}

	token, err := uuid.NewV4()
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err.Error())
	}

	user := models.User{
		Email:             req.Email,
		PasswordHash:      passwordHash,
		VerificationToken: token.String(),
	}
	if err := h.DB.Create(&user).Error; err != nil {
		return errorResponse(c, http.StatusInternalServerError, err.Error())
	}

	h.publishUserEvent(c, map[string]interface{}{
		"type":   "user_registered",
		"userID": user.ID,
		"email":  user.Email,
	})

	return c.JSON(http.StatusCreated, echo.Map{
		"verification_token": user.VerificationToken,
	})
}

// Verify activates the account matching the token and burns the token.
func (h *AuthHandler) Verify(c echo.Context) error {
	token := c.Param("token")

	var user models.User
	if err := h.DB.Where("verification_token = ?", token).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, http.StatusNotFound, "Invalid token")
		}
		return errorResponse(c, http.StatusInternalServerError, err.Error())
	}

	user.IsVerified = true
	user.VerificationToken = ""
	if err := h.DB.Save(&user).Error; err != nil {
		return errorResponse(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Email verificado"})
}

// Login checks the credentials of a verified account and issues a JWT.
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentials
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "Invalid JSON")
	}

	var user models.User
	if err := h.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return errorResponse(c, http.StatusUnauthorized, "Invalid credentials")
	}
	if !hash.CheckPassword(user.PasswordHash, req.Password) {
		return errorResponse(c, http.StatusUnauthorized, "Invalid credentials")
	}
	if !user.IsVerified {
		return errorResponse(c, http.StatusUnauthorized, "Email not verified")
	}

	exp := time.Now().Add(24 * time.Hour)
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"exp":   exp.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(h.JWTSecret)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"token": signed})
}

func (h *AuthHandler) publishUserEvent(c echo.Context, event map[string]interface{}) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "user_events", fmt.Sprint(event["userID"]), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "error", err)
	}
}
