package auth

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jawa-agence/core/internal/middleware"
	"github.com/jawa-agence/core/internal/models"
	"github.com/jawa-agence/core/internal/pkg/jwt"
	"github.com/jawa-agence/core/internal/pkg/response"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenTTL = 7 * 24 * time.Hour

type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Login verifies credentials and issues a token. Unknown usernames and bad
// passwords return the same error, so the endpoint does not reveal which
// accounts exist.
func (s *Service) Login(dto *LoginDTO) (string, *models.UserModel, error) {
	var user models.UserModel
	if err := s.db.Where("username = ?", dto.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, errInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(dto.Password)); err != nil {
		return "", nil, errInvalidCredentials
	}

	token, err := jwt.Sign(user.ID, tokenTTL)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

func (s *Service) GetUser(id string) (*models.UserModel, error) {
	var user models.UserModel
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

var errInvalidCredentials = errors.New("invalid credentials")

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/auth/login", h.login)
	rg.GET("/auth/me", authMW, h.me)
}

func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	token, user, err := h.svc.Login(&dto)
	if err != nil {
		if errors.Is(err, errInvalidCredentials) {
			response.Unauthorized(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"token": token, "user": user})
}

func (h *Handler) me(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	user, err := h.svc.GetUser(userID)
	if err != nil {
		response.Unauthorized(c)
		return
	}
	response.OK(c, user)
}
