package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amicinails/salon-booking-backend/internal/catalog"
)

type ServiceResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	NameVi     string `json:"name_vi"`
	NameDe     string `json:"name_de"`
	Category   string `json:"category"`
	CategoryVi string `json:"category_vi"`
	CategoryDe string `json:"category_de"`
	Price      int    `json:"price"`
	PriceFrom  bool   `json:"price_from,omitempty"`
	Duration   int    `json:"duration"`
}

func NewServiceResponse(s catalog.Service) ServiceResponse {
	return ServiceResponse{
		ID:         s.ID,
		Name:       s.Name.EN,
		NameVi:     s.Name.VI,
		NameDe:     s.Name.DE,
		Category:   s.Category.EN,
		CategoryVi: s.Category.VI,
		CategoryDe: s.Category.DE,
		Price:      s.Price,
		PriceFrom:  s.PriceFrom,
		Duration:   s.Duration,
	}
}

type Handler struct {
	catalog *catalog.Catalog
}

func NewHandler(cat *catalog.Catalog) *Handler {
	return &Handler{catalog: cat}
}

func (h *Handler) List(c *gin.Context) {
	services := h.catalog.List()
	items := make([]ServiceResponse, len(services))
	for i, s := range services {
		items[i] = NewServiceResponse(s)
	}
	c.JSON(http.StatusOK, items)
}

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	g.GET("/services", h.List)
}
