package handlers

import (
	"errors"
	"log"
	"net/http"

	request "github.com/SUmit-kush123/bookin.com-sub000/internal/adapter/http/dto/request"
	response "github.com/SUmit-kush123/bookin.com-sub000/internal/adapter/http/dto/response"
	"github.com/SUmit-kush123/bookin.com-sub000/internal/usecase"
	"github.com/SUmit-kush123/bookin.com-sub000/pkg"

	"github.com/gin-gonic/gin"
)

// PreferenceHandler reads and writes the per-user display currency.

type PreferenceHandler struct {
	preferences usecase.IPreferenceUseCase
}

func NewPreferenceHandler(preferences usecase.IPreferenceUseCase) *PreferenceHandler {
	return &PreferenceHandler{preferences: preferences}
}

// GetCurrency returns the stored display currency, defaulting to USD.
func (h *PreferenceHandler) GetCurrency(c *gin.Context) {
	userID := c.Param("user_id")
	code, err := h.preferences.GetDisplayCurrency(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[preference][handler] get failed user_id=%s err=%v", userID, err)
		appErr := mapPreferenceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPreference(userID, code))
}

// SetCurrency stores a new display currency for the user.
func (h *PreferenceHandler) SetCurrency(c *gin.Context) {
	userID := c.Param("user_id")

	var payload request.PreferenceCurrencyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid preference payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	code := payload.ResolveCurrency()
	if err := h.preferences.SetDisplayCurrency(c.Request.Context(), userID, code); err != nil {
		log.Printf("[preference][handler] set failed user_id=%s currency=%s err=%v", userID, code, err)
		appErr := mapPreferenceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[preference][handler] set success user_id=%s currency=%s", userID, code)

	c.JSON(http.StatusOK, response.FromPreference(userID, code))
}

func mapPreferenceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnsupportedCurrency):
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", "Unsupported currency", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
