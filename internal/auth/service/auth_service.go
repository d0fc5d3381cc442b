package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/harshydv24/event-nexus-backend/internal/auth/domain"
	"github.com/harshydv24/event-nexus-backend/internal/auth/repository"
	"golang.org/x/crypto/bcrypt"
)

// AuthService owns signup, login and the session lifecycle. Passwords
// are bcrypt-hashed at rest; a login issues a signed JWT backed by a
// Redis session record so logout actually revokes the token.
type AuthService struct {
	userRepo    *repository.UserRepository
	sessionRepo *repository.SessionRepository
	jwtSecret   []byte
	sessionTTL  time.Duration
}

func NewAuthService(userRepo *repository.UserRepository, sessionRepo *repository.SessionRepository, jwtSecret string, sessionTTL time.Duration) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		jwtSecret:   []byte(jwtSecret),
		sessionTTL:  sessionTTL,
	}
}

// Signup creates a new identity. Club-role users get a generated club
// ID; the club record itself is created lazily on first dashboard use.
func (s *AuthService) Signup(ctx context.Context, req *domain.SignupRequest) (*domain.User, error) {
	if err := validateSignup(req); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.StoredUser{
		User: domain.User{
			ID:        uuid.New().String(),
			Email:     strings.ToLower(strings.TrimSpace(req.Email)),
			Name:      req.Name,
			Role:      req.Role,
			CreatedAt: time.Now(),
		},
		PasswordHash: string(hash),
	}

	switch req.Role {
	case domain.RoleStudent:
		user.UID = req.UID
	case domain.RoleClub:
		user.ClubID = uuid.New().String()
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return &user.User, nil
}

// Login checks the password for the (email, role) identity and issues a
// token plus a session record.
func (s *AuthService) Login(ctx context.Context, email, password string, role domain.Role) (*domain.User, string, error) {
	stored, err := s.userRepo.GetByEmailRole(ctx, strings.ToLower(strings.TrimSpace(email)), role)
	if err == domain.ErrUserNotFound {
		return nil, "", domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(password)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	now := time.Now()
	session := &domain.Session{
		UserID:    stored.ID,
		Role:      stored.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessionRepo.Put(ctx, session); err != nil {
		return nil, "", err
	}

	token, err := s.signToken(&stored.User, session.ExpiresAt)
	if err != nil {
		return nil, "", err
	}

	return &stored.User, token, nil
}

// Logout deletes the user's session; outstanding tokens stop working.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	return s.sessionRepo.Delete(ctx, userID)
}

// Claims carried in the portal's JWTs.
type Claims struct {
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	UID    string `json:"uid,omitempty"`
	ClubID string `json:"club_id,omitempty"`
	jwt.RegisteredClaims
}

// VerifyToken parses a token, checks the signature and the live
// session, and returns the authenticated user.
func (s *AuthService) VerifyToken(ctx context.Context, tokenString string) (*domain.User, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidCredentials
	}

	session, err := s.sessionRepo.Get(ctx, claims.Subject)
	if err == domain.ErrSessionNotFound {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if time.Now().After(session.ExpiresAt) {
		return nil, domain.ErrInvalidCredentials
	}

	return &domain.User{
		ID:     claims.Subject,
		Email:  claims.Email,
		Name:   claims.Name,
		Role:   domain.Role(claims.Role),
		UID:    claims.UID,
		ClubID: claims.ClubID,
	}, nil
}

func (s *AuthService) signToken(user *domain.User, expiresAt time.Time) (string, error) {
	claims := &Claims{
		Email:  user.Email,
		Name:   user.Name,
		Role:   string(user.Role),
		UID:    user.UID,
		ClubID: user.ClubID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func validateSignup(req *domain.SignupRequest) error {
	switch {
	case strings.TrimSpace(req.Email) == "":
		return fmt.Errorf("%w: email is required", domain.ErrInvalidSignup)
	case !strings.Contains(req.Email, "@"):
		return fmt.Errorf("%w: email is malformed", domain.ErrInvalidSignup)
	case len(req.Password) < 8:
		return fmt.Errorf("%w: password must be at least 8 characters", domain.ErrInvalidSignup)
	case strings.TrimSpace(req.Name) == "":
		return fmt.Errorf("%w: name is required", domain.ErrInvalidSignup)
	}
	if !domain.ValidRole(req.Role) {
		return domain.ErrInvalidRole
	}
	return nil
}
