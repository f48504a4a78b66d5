package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"yaopets-backend/internal/repository"
	"yaopets-backend/model"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const tokenTTL = 72 * time.Hour

type AuthService struct {
	Users     *repository.UserRepository
	JWTSecret string
}

func NewAuthService(users *repository.UserRepository, secret string) *AuthService {
	return &AuthService{Users: users, JWTSecret: secret}
}

func (s *AuthService) Register(ctx context.Context, username, name, email, password string, userType model.UserType) (*model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	username = strings.TrimSpace(username)
	if username == "" || email == "" || len(password) < 8 {
		return nil, "", fmt.Errorf("username, email and a password of at least 8 characters are required")
	}
	if !userType.Valid() {
		userType = model.UserTypeTutor
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	u := &model.User{
		Username:     username,
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		UserType:     userType,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if repository.IsDuplicate(err) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	token, err := s.Mint(u.ID.Hex())
	return u, token, err
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	u, err := s.Users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.Mint(u.ID.Hex())
	return u, token, err
}

// Mint signs an HS256 bearer token with the user id as subject.
func (s *AuthService) Mint(userID string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.JWTSecret))
}
