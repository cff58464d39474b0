package handlers

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/mfrench730/career-cracker/internal/middleware"
	"github.com/mfrench730/career-cracker/internal/models"
	"github.com/mfrench730/career-cracker/internal/repositories"
	"github.com/mfrench730/career-cracker/internal/utils"
)

// AuthHandler manages authentication endpoints.
type AuthHandler struct {
	Repo      *repositories.UserRepository
	JWTSecret string
	logger    *zap.Logger
}

func NewAuthHandler(repo *repositories.UserRepository, jwtSecret string, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Repo: repo, JWTSecret: jwtSecret, logger: logger}
}

type authResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) SignupHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.SignupRequest](r)

	if existing, _ := h.Repo.GetUserByUsername(req.Username); existing != nil {
		utils.JSON(w, http.StatusConflict, models.ErrorResponse{
			Code: "username_taken", Message: "Username is already in use",
		})
		return
	}
	if existing, _ := h.Repo.GetUserByEmail(req.Email); existing != nil {
		utils.JSON(w, http.StatusConflict, models.ErrorResponse{
			Code: "email_taken", Message: "Email is already in use",
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.logger.Error("Failed to hash password", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code: "internal_error", Message: "Failed to create user",
		})
		return
	}

	user := &models.User{
		Username:               req.Username,
		Email:                  req.Email,
		PasswordHash:           string(hash),
		FullName:               req.FullName,
		Major:                  req.Major,
		EducationLevel:         req.EducationLevel,
		ExperienceLevel:        req.ExperienceLevel,
		PreferredInterviewType: req.PreferredInterviewType,
		PreferredLanguage:      req.PreferredLanguage,
		ResumeURL:              req.ResumeURL,
		TargetJobTitle:         req.TargetJobTitle,
	}
	if err := h.Repo.CreateUser(user); err != nil {
		h.logger.Error("Failed to create user", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code: "internal_error", Message: "Failed to create user",
		})
		return
	}

	utils.JSON(w, http.StatusCreated, map[string]interface{}{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	})
}

func (h *AuthHandler) SigninHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.SigninRequest](r)

	user, err := h.Repo.GetUserByUsername(req.Username)
	if err != nil {
		utils.JSON(w, http.StatusUnauthorized, models.ErrorResponse{
			Code: "invalid_credentials", Message: "Invalid credentials",
		})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		utils.JSON(w, http.StatusUnauthorized, models.ErrorResponse{
			Code: "invalid_credentials", Message: "Invalid credentials",
		})
		return
	}

	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.JWTSecret))
	if err != nil {
		h.logger.Error("Failed to sign token", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code: "internal_error", Message: "Failed to sign token",
		})
		return
	}
	utils.JSON(w, http.StatusOK, authResponse{Token: signed})
}
