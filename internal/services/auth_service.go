package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"bloglist/internal/models"
	"bloglist/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// Password and username length policy. The rejection messages below quote
// these limits and are part of the API contract.
const (
	MinPasswordLength = 3
	MinUsernameLength = 3
)

// DuplicateUsernameMessage is the canonical rejection text for a taken
// username.
const DuplicateUsernameMessage = "expected `username` to be unique"

// AuthService handles business logic for authentication and authorization.
type AuthService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthService creates a new AuthService. The signing secret and token
// lifetime come from configuration; the service never reads ambient state.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// Register validates the registration request, hashes the password and
// persists the new user with an empty blog list.
func (s *AuthService) Register(username, name, password string) (*models.User, error) {
	if len(strings.TrimSpace(username)) < MinUsernameLength {
		return nil, NewValidationError(fmt.Sprintf("Username must be at least %d characters long", MinUsernameLength))
	}
	if len(password) < MinPasswordLength {
		return nil, NewValidationError(fmt.Sprintf("Password must be at least %d characters long", MinPasswordLength))
	}

	if existing, err := s.userRepo.GetByUsername(username); err == nil && existing != nil {
		return nil, NewValidationError(DuplicateUsernameMessage)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Name:         name,
		PasswordHash: string(hashedPassword),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

// Login authenticates a user and returns a signed token if successful. The
// failure is the same whether the username is unknown or the password wrong.
func (s *AuthService) Login(username, password string) (string, *models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
		"iat":      time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, user, nil
}

// Authenticate turns a raw Authorization header value into the principal it
// identifies. A missing header or a non-bearer scheme yields ErrMissingToken;
// every verification failure after that yields ErrInvalidToken.
func (s *AuthService) Authenticate(authHeader string) (*models.User, error) {
	tokenString, ok := extractBearerToken(authHeader)
	if !ok {
		return nil, ErrMissingToken
	}

	claims, err := s.validateToken(tokenString)
	if err != nil {
		log.Printf("Token validation failed: %v", err)
		return nil, ErrInvalidToken
	}

	id, ok := claims["id"].(string)
	if !ok || id == "" {
		return nil, ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return user, nil
}

// AuthorizeOwner checks that the principal owns the resource identified by
// ownerID. The comparison is on the underlying id values.
func (s *AuthService) AuthorizeOwner(principal *models.User, ownerID string) error {
	if principal == nil || principal.ID != ownerID {
		return ErrForbidden
	}
	return nil
}

// extractBearerToken pulls the token out of an "Authorization: Bearer <token>"
// header. The scheme match is case-insensitive; anything else counts as no
// token presented.
func extractBearerToken(authHeader string) (string, bool) {
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// validateToken parses and verifies a token, returning the claims if valid.
func (s *AuthService) validateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}
