package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/berberhaus/barbershop-api/internal/domain/booking"
	"github.com/berberhaus/barbershop-api/internal/httperr"
	"github.com/berberhaus/barbershop-api/internal/httpresp"
	"github.com/berberhaus/barbershop-api/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

// ShopHandler exposes the shop settings, including the double-booking toggle.
type ShopHandler struct {
	db   *gorm.DB
	repo domain.Repository
}

func NewShopHandler(db *gorm.DB, repo domain.Repository) *ShopHandler {
	return &ShopHandler{db: db, repo: repo}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateShopRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`

	Timezone        *string `json:"timezone"`
	DefaultLanguage *string `json:"default_language"`
	CountryCode     *string `json:"country_code"`

	EnforceSlotUniqueness *bool `json:"enforce_slot_uniqueness"`
}

// ======================================================
// ENDPOINTS
// ======================================================

func (h *ShopHandler) Get(c *gin.Context) {
	shop, err := h.repo.GetShop(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "shop_unavailable", "Failed to load shop settings.")
		return
	}

	httpresp.OK(c, shop)
}

func (h *ShopHandler) Update(c *gin.Context) {
	var req UpdateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	shop, err := h.repo.GetShop(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "shop_unavailable", "Failed to load shop settings.")
		return
	}

	if req.Name != nil {
		shop.Name = *req.Name
	}
	if req.Phone != nil {
		shop.Phone = *req.Phone
	}
	if req.Address != nil {
		shop.Address = *req.Address
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Unknown timezone identifier.")
			return
		}
		shop.Timezone = *req.Timezone
	}
	if req.DefaultLanguage != nil {
		shop.DefaultLanguage = *req.DefaultLanguage
	}
	if req.CountryCode != nil {
		shop.CountryCode = *req.CountryCode
	}
	if req.EnforceSlotUniqueness != nil {
		shop.EnforceSlotUniqueness = *req.EnforceSlotUniqueness
	}

	if err := h.db.WithContext(c.Request.Context()).Save(shop).Error; err != nil {
		httperr.Internal(c, "failed_to_update_shop", "Failed to save shop settings.")
		return
	}

	httpresp.OK(c, shop)
}
