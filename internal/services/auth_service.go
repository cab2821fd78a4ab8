package services

import (
	"context"
	"crypto/rand"
	"errors"
	"log/slog"
	"math/big"
	"strconv"
	"time"

	"github.com/bookverse/bookverse-backend/internal/apperr"
	"github.com/bookverse/bookverse-backend/internal/config"
	"github.com/bookverse/bookverse-backend/internal/dto"
	"github.com/bookverse/bookverse-backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	db     *gorm.DB
	cfg    *config.Config
	mailer *EmailService
}

func NewAuthService(db *gorm.DB, cfg *config.Config, mailer *EmailService) *AuthService {
	return &AuthService{db: db, cfg: cfg, mailer: mailer}
}

// Register creates an unverified account and mails it a 6-digit passcode.
// If the mail cannot be dispatched the account is rolled back so the user
// can register again instead of being stuck with a code they never got.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) error {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return apperr.Validation("Name, email and password are required")
	}

	var existing models.User
	err := s.db.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return apperr.Validation("Email already registered.")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.Store("Server error", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Store("Server error", err)
	}

	otp, err := generateOTP()
	if err != nil {
		return apperr.Store("Server error", err)
	}

	user := models.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		OTP:          &otp,
		IsVerified:   false,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return apperr.Store("Server error", err)
	}

	if err := s.mailer.SendVerificationOTP(ctx, user.Email, otp); err != nil {
		slog.Error("otp dispatch failed, rolling back registration", "error", err, "user_id", user.ID.String())
		s.db.Delete(&user)
		return apperr.Store("Failed to send verification email", err)
	}

	return nil
}

// VerifyOTP flips the account to verified, clears the stored code and logs
// the user in.
func (s *AuthService) VerifyOTP(email, otp string) (*dto.AuthResponse, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Auth("Invalid OTP")
	}
	if err != nil {
		return nil, apperr.Store("Error verifying OTP", err)
	}

	if otp == "" || user.OTP == nil || *user.OTP != otp {
		return nil, apperr.Auth("Invalid OTP")
	}

	updates := map[string]interface{}{"is_verified": true, "otp": nil}
	if err := s.db.Model(&user).Updates(updates).Error; err != nil {
		return nil, apperr.Store("Error verifying OTP", err)
	}
	user.IsVerified = true
	user.OTP = nil

	return s.authResponse(&user)
}

// Login authenticates a verified account.
func (s *AuthService) Login(email, password string) (*dto.AuthResponse, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Auth("User not verified or doesn't exist")
	}
	if err != nil {
		return nil, apperr.Store("Login failed", err)
	}

	if !user.IsVerified {
		return nil, apperr.Auth("User not verified or doesn't exist")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.Auth("Invalid credentials")
	}

	return s.authResponse(&user)
}

// GetProfile returns the user record minus credential material. A
// malformed id resolves to not-found, same as an unknown one.
func (s *AuthService) GetProfile(id string) (*models.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.NotFound("User not found")
	}

	var user models.User
	err = s.db.First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("User not found")
	}
	if err != nil {
		return nil, apperr.Store("Server error", err)
	}

	return &user, nil
}

// UpdateProfile applies the provided fields. Identifier and verification
// state are not updatable; a new password is re-hashed before storing.
func (s *AuthService) UpdateProfile(id string, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetProfile(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperr.Store("Update failed", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, apperr.Store("Update failed", err)
	}

	return user, nil
}

func (s *AuthService) authResponse(user *models.User) (*dto.AuthResponse, error) {
	token, err := s.generateToken(user)
	if err != nil {
		return nil, apperr.Store("Server error", err)
	}

	return &dto.AuthResponse{
		Token: token,
		User: dto.UserResponse{
			ID:      user.ID,
			Name:    user.Name,
			Email:   user.Email,
			IsAdmin: user.IsAdmin,
		},
	}, nil
}

func (s *AuthService) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub": user.ID.String(),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(s.cfg.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// generateOTP returns a 6-digit numeric passcode from crypto-grade
// randomness.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
