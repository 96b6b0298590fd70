package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SUmit-kush123/bookin.com-sub000/internal/adapter/http/handlers/mocks"
	"github.com/SUmit-kush123/bookin.com-sub000/internal/domain/entities"
	"github.com/SUmit-kush123/bookin.com-sub000/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newCatalogRouter(h *CatalogHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/items", h.ListItems)
	r.GET("/v1/items/:item_id", h.GetItem)
	return r
}

func TestCatalogHandler_ListItems(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	catalog := mocks.NewMockICatalogUseCase(ctrl)
	h := NewCatalogHandler(catalog)

	catalog.EXPECT().List(gomock.Any()).Return([]entities.ReservableItem{
		{ID: "lodge-1", Name: "Annapurna View Lodge", Category: entities.CategoryLodging, PricePerNight: 150, Currency: entities.CurrencyNPR},
		{ID: "ride-9", Name: "Airport Pickup", Category: entities.CategoryRide, Price: 20, Currency: entities.CurrencyUSD},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/items", nil)
	w := httptest.NewRecorder()
	newCatalogRouter(h).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var res []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if len(res) != 2 || res[0]["id"] != "lodge-1" || res[1]["category"] != "ride" {
		t.Fatalf("unexpected list: %v", res)
	}
}

func TestCatalogHandler_GetItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(catalog)

		catalog.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.ReservableItem{}, usecase.ErrItemNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/items/ghost", nil)
		w := httptest.NewRecorder()
		newCatalogRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success includes location", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(catalog)

		catalog.EXPECT().GetByID(gomock.Any(), "lodge-1").Return(entities.ReservableItem{
			ID:            "lodge-1",
			Name:          "Annapurna View Lodge",
			Category:      entities.CategoryLodging,
			PricePerNight: 150,
			Currency:      entities.CurrencyNPR,
			BlockedDates:  []string{"2024-06-10"},
			Location:      &entities.LatLng{Lat: 28.2, Lng: 83.9},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/items/lodge-1", nil)
		w := httptest.NewRecorder()
		newCatalogRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if res["name"] != "Annapurna View Lodge" || res["currency"] != "NPR" {
			t.Fatalf("unexpected response: %v", res)
		}
		loc, ok := res["location"].(map[string]any)
		if !ok || loc["lat"] != 28.2 {
			t.Fatalf("unexpected location: %v", res["location"])
		}
	})
}
