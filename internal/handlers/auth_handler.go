package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/berberhaus/barbershop-api/internal/config"
	domain "github.com/berberhaus/barbershop-api/internal/domain/booking"
	"github.com/berberhaus/barbershop-api/internal/httperr"
	"github.com/berberhaus/barbershop-api/internal/models"
	"github.com/berberhaus/barbershop-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	repo   domain.Repository
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, repo domain.Repository, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, repo: repo, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

// Register creates an admin account for the shop. The first registered user
// becomes the owner; later ones are plain admins.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	email := validators.NormalizeEmail(req.Email)

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not appear to exist.")
		return
	}

	var count int64
	h.db.Model(&models.AdminUser{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_exists", "An account with this email already exists.")
		return
	}

	shop, err := h.repo.GetShop(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "shop_unavailable", "Something went wrong, please try again.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Something went wrong, please try again.")
		return
	}

	role := "admin"
	var userCount int64
	h.db.Model(&models.AdminUser{}).Count(&userCount)
	if userCount == 0 {
		role = "owner"
	}

	user := models.AdminUser{
		ShopID:       shop.ID,
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user", "Something went wrong, please try again.")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Something went wrong, please try again.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"id":      user.ID,
			"name":    user.Name,
			"email":   user.Email,
			"role":    user.Role,
			"shop_id": user.ShopID,
		},
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	email := validators.NormalizeEmail(req.Email)

	var user models.AdminUser
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
			return
		}
		httperr.Internal(c, "internal_error", "Something went wrong, please try again.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Something went wrong, please try again.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":      user.ID,
			"name":    user.Name,
			"email":   user.Email,
			"role":    user.Role,
			"shop_id": user.ShopID,
		},
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.AdminUser) (string, error) {
	claims := jwt.MapClaims{
		"sub":    user.ID,
		"shopId": user.ShopID,
		"role":   user.Role,
		"exp":    time.Now().Add(24 * time.Hour).Unix(),
		"iat":    time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
