package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-pocket-money/internal/config"
	"github.com/MKhiriev/go-pocket-money/internal/logger"
	"github.com/MKhiriev/go-pocket-money/internal/store"
	"github.com/MKhiriev/go-pocket-money/internal/utils"
	"github.com/MKhiriev/go-pocket-money/internal/validators"
	"github.com/MKhiriev/go-pocket-money/models"
)

// authService is the concrete implementation of AuthService.
// Users are identified by name only and prove themselves with a short
// numeric secret stored as a bcrypt hash.
type authService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	// bcryptCost is lowered in tests.
	bcryptCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validator,
		bcryptCost:     bcrypt.DefaultCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Login authenticates the user, creating the account when the name has
// never been seen.
//
// Returns:
//   - ErrInvalidInput if the name or the secret are malformed.
//   - ErrWrongSecret if the name exists and the secret does not match.
//   - a wrapped storage error otherwise.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	creds.Name = strings.TrimSpace(creds.Name)
	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Debug().Err(err).Str("username", creds.Name).Msg("invalid credentials provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	user, err := a.userRepository.FindUserByName(ctx, creds.Name)
	switch {
	case err == nil:
		return a.checkSecret(ctx, user, creds.Secret)
	case errors.Is(err, store.ErrNoUserWasFound):
		return a.createUser(ctx, creds)
	default:
		log.Err(err).Str("username", creds.Name).Msg("user search by name failed")
		return models.User{}, fmt.Errorf("user search by name failed: %w", err)
	}
}

func (a *authService) createUser(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Secret), a.bcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hashing secret: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{Name: creds.Name, SecretHash: string(hash)})
	if errors.Is(err, store.ErrUserAlreadyExists) {
		// a concurrent first login created the same name
		log.Info().Str("username", creds.Name).Msg("user was created concurrently, verifying secret")
		existing, findErr := a.userRepository.FindUserByName(ctx, creds.Name)
		if findErr != nil {
			return models.User{}, fmt.Errorf("user search after concurrent creation failed: %w", findErr)
		}
		return a.checkSecret(ctx, existing, creds.Secret)
	}
	if err != nil {
		log.Err(err).Str("username", creds.Name).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("username", user.Name).Msg("new user created")
	return user, nil
}

func (a *authService) checkSecret(ctx context.Context, user models.User, secret string) (models.User, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(user.SecretHash), []byte(secret)); err != nil {
		logger.FromContext(ctx).Info().Str("username", user.Name).Msg("wrong secret")
		return models.User{}, ErrWrongSecret
	}

	return user, nil
}

// CreateToken issues a signed JWT whose subject is the user name.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Name, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT. Any validation failure (expired, wrong
// issuer, malformed) is normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
