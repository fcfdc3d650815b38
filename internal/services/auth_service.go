package services

import (
	"net/mail"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/smoldovan/lunchroom/internal/models"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 24 * time.Hour

type AuthUserStore interface {
	FindByID(userID uint) (models.User, error)
	FindByNormalizedEmail(email string) (models.User, bool, error)
	FindInactiveByEmployeeName(employeeName string) (models.User, bool, error)
	Create(user *models.User) error
	ActivateWithCredentials(userID uint, email string, passwordHash string, isAdmin bool) error
}

// AuthService handles self-registration and login. Registration claims a
// placeholder account left by the spreadsheet import when the names match,
// so the employee inherits their imported order history.
type AuthService struct {
	users         AuthUserStore
	secret        []byte
	allowedDomain string
}

func NewAuthService(users AuthUserStore, secret string, allowedDomain string) *AuthService {
	return &AuthService{
		users:         users,
		secret:        []byte(secret),
		allowedDomain: strings.ToLower(strings.TrimSpace(allowedDomain)),
	}
}

func (service *AuthService) Register(email string, password string, name string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return models.User{}, NewValidationError("a valid email address is required")
	}
	if service.allowedDomain != "" && !strings.HasSuffix(email, "@"+service.allowedDomain) {
		return models.User{}, NewValidationError("registration is limited to @%s addresses", service.allowedDomain)
	}
	if strings.HasSuffix(email, "@"+models.PlaceholderEmailDomain) {
		return models.User{}, NewValidationError("this address cannot be registered")
	}
	if len(password) < 8 {
		return models.User{}, NewValidationError("password must be at least 8 characters")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = NameFromEmail(email)
	}

	if _, found, err := service.users.FindByNormalizedEmail(email); err != nil {
		return models.User{}, err
	} else if found {
		return models.User{}, NewConflictError("an account for %s already exists", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	return service.createOrClaim(email, name, string(hash))
}

func (service *AuthService) createOrClaim(email string, name string, passwordHash string) (models.User, error) {
	placeholder, found, err := service.users.FindInactiveByEmployeeName(NormalizeName(name))
	if err != nil {
		return models.User{}, err
	}
	if found {
		if err := service.users.ActivateWithCredentials(placeholder.ID, email, passwordHash, placeholder.IsAdmin); err != nil {
			return models.User{}, translateStoreError(err)
		}
		placeholder.Email = email
		placeholder.PasswordHash = passwordHash
		placeholder.IsActive = true
		return placeholder, nil
	}

	user := models.User{
		Email:        email,
		PasswordHash: passwordHash,
		EmployeeName: name,
		IsActive:     true,
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, translateStoreError(err)
	}
	return user, nil
}

// Login verifies credentials and mints a signed bearer token. Unknown email
// and wrong password answer identically.
func (service *AuthService) Login(email string, password string, now time.Time) (string, models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, found, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		return "", models.User{}, err
	}
	if !found || !user.IsActive || user.PasswordHash == "" {
		return "", models.User{}, ErrForbidden
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", models.User{}, ErrForbidden
	}

	token, err := service.mintToken(user, now)
	if err != nil {
		return "", models.User{}, err
	}
	return token, user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

func (service *AuthService) mintToken(user models.User, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"email":    user.Email,
		"is_admin": user.IsAdmin,
		"iat":      now.Unix(),
		"exp":      now.Add(tokenLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(service.secret)
}

// ParseToken validates a bearer token and returns the identity it carries.
func (service *AuthService) ParseToken(rawToken string) (userID uint, isAdmin bool, err error) {
	parsed, err := jwt.Parse(rawToken, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrForbidden
		}
		return service.secret, nil
	})
	if err != nil || !parsed.Valid {
		return 0, false, ErrForbidden
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false, ErrForbidden
	}
	subject, ok := claims["sub"].(float64)
	if !ok || subject <= 0 {
		return 0, false, ErrForbidden
	}
	admin, _ := claims["is_admin"].(bool)
	return uint(subject), admin, nil
}
