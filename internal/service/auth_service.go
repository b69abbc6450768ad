package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/iris-cmd22/A13/internal/config"
	"github.com/iris-cmd22/A13/internal/domain"
	"github.com/iris-cmd22/A13/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	cfg       *config.Config
}

func NewAuthService(userRepo repository.UserRepository, tokenRepo repository.TokenRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		cfg:       cfg,
	}
}

type RegisterInput struct {
	Email    string
	Name     string
	Surname  string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthResult struct {
	User  *domain.User
	Token string
}

// GetUserByEmail looks an account up by its unique email.
func (s *AuthService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id int) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, domain.ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        input.Email,
		Name:         input.Name,
		Surname:      input.Surname,
		PasswordHash: string(hashedPassword),
		Profile:      &domain.UserProfile{},
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issueToken(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(ctx, user)
}

// CreateUserFromOAuth builds an account from Google profile data, attaching a
// fresh profile. The surname is the last whitespace-separated token of the
// display name when it has more than one. The email unique index backs the
// pre-check, so a lost race surfaces as a store error instead of a duplicate row.
func (s *AuthService) CreateUserFromOAuth(ctx context.Context, oauthUser domain.GoogleUser) (*domain.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, oauthUser.Email)
	if err == nil && existing != nil {
		return nil, domain.ErrEmailExists
	}

	user := &domain.User{
		Email:                oauthUser.Email,
		Name:                 oauthUser.Name,
		Surname:              oauthUser.Surname(),
		RegisteredWithGoogle: true,
		Profile:              &domain.UserProfile{},
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// LoginWithGoogle resolves the account for an OAuth identity, creating it on
// first login, and issues a session token.
func (s *AuthService) LoginWithGoogle(ctx context.Context, oauthUser domain.GoogleUser) (*AuthResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, oauthUser.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user, err = s.CreateUserFromOAuth(ctx, oauthUser)
		if err != nil {
			return nil, err
		}
	}

	return s.issueToken(ctx, user)
}

// GenerateToken builds a signed JWT for the user: subject is the email,
// expiration is TokenTTL from issuance, plus userId and role claims. Roles
// are not differentiated yet, so role is always "user".
func (s *AuthService) GenerateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":    user.Email,
		"iat":    now.Unix(),
		"exp":    now.Add(s.cfg.TokenTTL).Unix(),
		"userId": user.ID,
		"role":   "user",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// SaveToken generates a token and records it as an AuthenticatedUser row.
// Every issuance writes a new row; earlier tokens stay valid until expiry.
func (s *AuthService) SaveToken(ctx context.Context, user *domain.User) (string, error) {
	token, err := s.GenerateToken(user)
	if err != nil {
		return "", err
	}

	record := &domain.AuthenticatedUser{
		UserID:    user.ID,
		Token:     token,
		CreatedAt: time.Now(),
	}

	if err := s.tokenRepo.Create(ctx, record); err != nil {
		return "", err
	}

	return token, nil
}

func (s *AuthService) issueToken(ctx context.Context, user *domain.User) (*AuthResult, error) {
	token, err := s.SaveToken(ctx, user)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}

func (s *AuthService) ValidateToken(tokenString string) (*jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.cfg.JWTSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return &claims, nil
	}

	return nil, errors.New("invalid token")
}

func (s *AuthService) Logout(ctx context.Context, userID int) error {
	return s.tokenRepo.DeleteByUserID(ctx, userID)
}
