package services

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/panchald9/roospark/entity"
	"github.com/panchald9/roospark/repository"
	"github.com/panchald9/roospark/utils"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService จัดการ login ของ admin — แทนที่ auth แบบปล่อยผ่านของเดิม
type AuthService struct {
	Store     repository.Storage
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(store repository.Storage, secret string, ttl time.Duration) *AuthService {
	return &AuthService{Store: store, jwtSecret: secret, jwtTTL: ttl}
}

type LoginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login ตรวจ username (case-sensitive) + bcrypt แล้วออก token
func (s *AuthService) Login(req LoginReq) (string, *entity.AdminUser, error) {
	if err := validateStruct(req); err != nil {
		return "", nil, err
	}

	admin, err := s.Store.GetAdminUserByUsername(strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(admin.ID, admin.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, admin, nil
}

func (s *AuthService) Me(adminID uint) (*entity.AdminUser, error) {
	return s.Store.GetAdminUser(adminID)
}
