package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-movie-ledger/internal/logger"
	"github.com/sbilibin2017/gw-movie-ledger/internal/models"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -destination=mock_services.go -package=services github.com/sbilibin2017/gw-movie-ledger/internal/services UserReader,UserWriter,JWTGenerator,TokenRevoker,RatingWriter,RatingReader,KafkaWriter,Catalog,RatedChecker

// Error variables
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email string, passwordHash string) (uuid.UUID, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// TokenRevoker blacklists session tokens.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

// AuthService is the credential store: registration, authentication and sessions.
type AuthService struct {
	reader    UserReader
	writer    UserWriter
	jwt       JWTGenerator
	revoker   TokenRevoker
	cost      int
	dummyHash []byte
}

// AuthOpt configures an AuthService.
type AuthOpt func(*AuthService)

// WithBcryptCost overrides the bcrypt work factor.
func WithBcryptCost(cost int) AuthOpt {
	return func(svc *AuthService) {
		svc.cost = cost
	}
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator, revoker TokenRevoker, opts ...AuthOpt) *AuthService {
	svc := &AuthService{
		reader:  reader,
		writer:  writer,
		jwt:     jwt,
		revoker: revoker,
		cost:    bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(svc)
	}

	// Compared against when the email is unknown so both failure paths cost one bcrypt run.
	hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), svc.cost)
	if err != nil {
		logger.Log.Errorw("failed to build dummy hash", "err", err)
	}
	svc.dummyHash = hash

	return svc
}

// Register creates a user with a bcrypt-hashed password.
// It reports false when the email is taken or storage fails.
func (svc *AuthService) Register(ctx context.Context, email, password string) bool {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), svc.cost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "email", email, "err", err)
		return false
	}

	userID, err := svc.writer.Save(ctx, email, string(hashedPassword))
	if err != nil {
		logger.Log.Errorw("failed to save user", "email", email, "err", err)
		return false
	}

	logger.Log.Infow("user registered", "user_id", userID)
	return true
}

// Authenticate returns the id of the user owning email when password matches, nil otherwise.
func (svc *AuthService) Authenticate(ctx context.Context, email, password string) *uuid.UUID {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "email", email, "err", err)
	}

	hash := svc.dummyHash
	if user != nil {
		hash = []byte(user.PasswordHash)
	}
	cmpErr := bcrypt.CompareHashAndPassword(hash, []byte(password))

	if user == nil || cmpErr != nil {
		logger.Log.Debugw("authentication rejected", "email", email)
		return nil
	}

	userID := user.UserID
	return &userID
}

// Login authenticates a user and returns a JWT session token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	userID := svc.Authenticate(ctx, email, password)
	if userID == nil {
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, *userID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "user_id", *userID, "err", err)
		return "", err
	}

	return token, nil
}

// Logout revokes the session token for the rest of its lifetime.
func (svc *AuthService) Logout(ctx context.Context, tokenID string, ttl time.Duration) error {
	if err := svc.revoker.Revoke(ctx, tokenID, ttl); err != nil {
		logger.Log.Errorw("failed to revoke token", "token_id", tokenID, "err", err)
		return err
	}
	return nil
}
