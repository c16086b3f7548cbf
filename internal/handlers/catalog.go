package handlers

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/diewo77/invoicing-api/internal/httpx"
	"github.com/diewo77/invoicing-api/internal/models"
)

// Catalog handlers expose read-only product and client listings. Catalog
// writes go through migrations/seeding, not the API.

type ProductHandler struct {
	DB *gorm.DB
}

func NewProductHandler(db *gorm.DB) *ProductHandler { return &ProductHandler{DB: db} }

// List: GET /products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	var products []models.Product
	if err := h.DB.Order("id").Find(&products).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "database error: "+err.Error())
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"products": products})
}

type ClientHandler struct {
	DB *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler { return &ClientHandler{DB: db} }

// List: GET /clients
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	var clients []models.Client
	if err := h.DB.Order("id").Find(&clients).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "database error: "+err.Error())
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"clients": clients})
}
