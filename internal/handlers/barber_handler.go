package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/berberhaus/barbershop-api/internal/httperr"
	"github.com/berberhaus/barbershop-api/internal/httpresp"
	"github.com/berberhaus/barbershop-api/internal/media"
	"github.com/berberhaus/barbershop-api/internal/middleware"
	"github.com/berberhaus/barbershop-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type BarberHandler struct {
	db       *gorm.DB
	uploader media.Uploader // nil when object storage is not configured
}

func NewBarberHandler(db *gorm.DB, uploader media.Uploader) *BarberHandler {
	return &BarberHandler{
		db:       db,
		uploader: uploader,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BarberRequest struct {
	Name      string `json:"name" binding:"required"`
	Specialty string `json:"specialty"`
}

// ======================================================
// CRUD
// ======================================================

func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.WithContext(c.Request.Context()).
		Order("name ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Failed to load barbers.")
		return
	}

	httpresp.List(c, barbers)
}

func (h *BarberHandler) Create(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	barber := models.Barber{
		ShopID:    shopID,
		Name:      req.Name,
		Specialty: req.Specialty,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Failed to create the barber.")
		return
	}

	httpresp.Created(c, barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid barber id.")
		return
	}

	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	var barber models.Barber
	if err := h.db.WithContext(c.Request.Context()).First(&barber, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "barber_not_found", "Barber not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_barber", "Failed to load the barber.")
		return
	}

	// Appointments snapshot the barber name at booking time, so renames do
	// not rewrite history.
	barber.Name = req.Name
	barber.Specialty = req.Specialty

	if err := h.db.WithContext(c.Request.Context()).Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Failed to update the barber.")
		return
	}

	httpresp.OK(c, barber)
}

func (h *BarberHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid barber id.")
		return
	}

	result := h.db.WithContext(c.Request.Context()).Delete(&models.Barber{}, id)
	if result.Error != nil {
		httperr.Internal(c, "failed_to_delete_barber", "Failed to delete the barber.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	httpresp.OK(c, gin.H{"deleted": true})
}

// ======================================================
// IMAGE UPLOAD
// ======================================================

// UploadImage takes a multipart "image" file (JPEG or PNG), converts it to a
// downscaled webp and stores it in object storage under a fresh key. The old
// image is not removed; keys are content-addressed by upload, not by barber.
func (h *BarberHandler) UploadImage(c *gin.Context) {
	if h.uploader == nil {
		httperr.Internal(c, "media_disabled", "Image storage is not configured.")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid barber id.")
		return
	}

	var barber models.Barber
	if err := h.db.WithContext(c.Request.Context()).First(&barber, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "barber_not_found", "Barber not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_barber", "Failed to load the barber.")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "An image file is required.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "The uploaded file could not be read.")
		return
	}
	defer file.Close()

	encoded, err := media.ToWebP(file)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "The uploaded file is not a valid JPEG or PNG image.")
		return
	}

	key := "barbers/" + uuid.NewString() + ".webp"
	url, err := h.uploader.Upload(c.Request.Context(), key, encoded, "image/webp")
	if err != nil {
		httperr.Internal(c, "failed_to_upload_image", "Failed to store the image.")
		return
	}

	barber.ImageURL = url
	if err := h.db.WithContext(c.Request.Context()).Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Failed to save the image URL.")
		return
	}

	httpresp.OK(c, barber)
}
