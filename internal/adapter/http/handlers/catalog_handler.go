package handlers

import (
	"errors"
	"log"
	"net/http"

	response "github.com/SUmit-kush123/bookin.com-sub000/internal/adapter/http/dto/response"
	"github.com/SUmit-kush123/bookin.com-sub000/internal/usecase"
	"github.com/SUmit-kush123/bookin.com-sub000/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes read-only catalog lookups.

type CatalogHandler struct {
	catalog usecase.ICatalogUseCase
}

func NewCatalogHandler(catalog usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListItems returns every reservable item.
func (h *CatalogHandler) ListItems(c *gin.Context) {
	items, err := h.catalog.List(c.Request.Context())
	if err != nil {
		log.Printf("[catalog][handler] list failed err=%v", err)
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromItems(items))
}

// GetItem returns a single item by id.
func (h *CatalogHandler) GetItem(c *gin.Context) {
	itemID := c.Param("item_id")
	item, err := h.catalog.GetByID(c.Request.Context(), itemID)
	if err != nil {
		log.Printf("[catalog][handler] get failed item_id=%s err=%v", itemID, err)
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromItem(item))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidItemID):
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
