package services

import (
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/alrodriguezdg/youstream/internal/apperrors"
	"github.com/alrodriguezdg/youstream/internal/config"
	"github.com/alrodriguezdg/youstream/internal/dto"
	"github.com/alrodriguezdg/youstream/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9-]+\.[a-zA-Z]{2,}$`)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// Register validates and persists a new account. Checks run in a fixed
// order and stop at the first failure so each response names exactly one
// problem.
func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	for _, f := range []struct{ name, value string }{
		{"name", req.Name},
		{"email", req.Email},
		{"username", req.Username},
		{"password", req.Password},
		{"entertainment_type", req.EntertainmentType},
	} {
		if f.value == "" {
			return nil, apperrors.Validation("El campo " + f.name + " es requerido")
		}
	}

	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.TrimSpace(req.Username)

	if !emailPattern.MatchString(email) {
		return nil, apperrors.Validation("Formato de email inválido")
	}
	if len(req.Password) < 6 {
		return nil, apperrors.Validation("La contraseña debe tener al menos 6 caracteres")
	}

	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, apperrors.Conflict("El email ya está registrado")
	}
	if err := s.db.Where("username = ?", username).First(&existing).Error; err == nil {
		return nil, apperrors.Conflict("El nombre de usuario ya está en uso")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Persistence("Error al registrar usuario", err)
	}

	user := models.User{
		ID:                uuid.New(),
		Name:              name,
		Email:             email,
		Username:          username,
		PasswordHash:      string(hash),
		EntertainmentType: req.EntertainmentType,
	}

	if err := s.db.Create(&user).Error; err != nil {
		// Two racing registrations can both pass the pre-checks; the unique
		// indexes are the authoritative signal.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("El email o el nombre de usuario ya está registrado")
		}
		slog.Error("user insert failed", "username", username, "error", err)
		return nil, apperrors.Persistence("Error al registrar usuario", err)
	}

	return &dto.RegisterResponse{
		Success: true,
		Message: "Usuario registrado exitosamente",
		User:    username,
	}, nil
}

// CheckUsername reports whether a username is still free.
func (s *AuthService) CheckUsername(username string) (*dto.CheckUsernameResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apperrors.Validation("Nombre de usuario requerido")
	}

	var existing models.User
	err := s.db.Where("username = ?", username).First(&existing).Error
	available := errors.Is(err, gorm.ErrRecordNotFound)

	msg := "Nombre de usuario ya está en uso"
	if available {
		msg = "Nombre de usuario disponible"
	}
	return &dto.CheckUsernameResponse{Available: available, Message: msg}, nil
}

// Login authenticates against the user table first, then against the legacy
// compatibility account, which keeps working regardless of database state.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, apperrors.Validation("Usuario y contraseña son requeridos")
	}

	var user models.User
	err := s.db.Where("username = ?", req.Username).First(&user).Error
	if err == nil && bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) == nil {
		return s.loginResponse(user.Username, user.EntertainmentType)
	}

	if req.Username == s.cfg.LegacyUsername && req.Password == s.cfg.LegacyPassword {
		return s.loginResponse(s.cfg.LegacyUsername, s.cfg.LegacyEntertainmentType)
	}

	return nil, apperrors.Auth("Credenciales inválidas")
}

func (s *AuthService) loginResponse(username, entertainmentType string) (*dto.LoginResponse, error) {
	token, err := s.sessionToken(username, entertainmentType)
	if err != nil {
		return nil, apperrors.Persistence("Error al iniciar sesión", err)
	}
	return &dto.LoginResponse{
		Success:           true,
		Message:           "Login exitoso",
		User:              username,
		EntertainmentType: entertainmentType,
		Token:             token,
	}, nil
}

func (s *AuthService) sessionToken(username, entertainmentType string) (string, error) {
	claims := jwt.MapClaims{
		"sub":                username,
		"entertainment_type": entertainmentType,
		"iat":                time.Now().Unix(),
		"exp":                time.Now().Add(s.cfg.SessionExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SessionSecret))
}
