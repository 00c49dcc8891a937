package token

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/helpdesk-auth/internal/model"
)

// Claim names understood by the required-claims check.
const (
	ClaimIssuer    = "iss"
	ClaimAudience  = "aud"
	ClaimIssuedAt  = "iat"
	ClaimExpiresAt = "exp"
	ClaimSubject   = "sub"
	ClaimUserID    = "user_id"
	ClaimEmail     = "email"
	ClaimSessionID = "session_id"
)

// DefaultRequiredClaims lists the claims every access token must carry.
var DefaultRequiredClaims = []string{
	ClaimIssuer, ClaimAudience, ClaimIssuedAt, ClaimExpiresAt,
	ClaimSubject, ClaimUserID, ClaimEmail, ClaimSessionID,
}

// Claims represents the access token payload.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	SessionID string `json:"session_id"`
}

// Config holds codec parameters.
type Config struct {
	Secret         string
	Algorithm      string
	Issuer         string
	Audience       string
	TTL            time.Duration
	RequiredClaims []string
}

// Codec implements model.TokenCodec backed by symmetric HMAC.
type Codec struct {
	cfg       Config
	method    jwt.SigningMethod
	blacklist model.BlacklistStore
	clock     model.Clock
}

var _ model.TokenCodec = (*Codec)(nil)

// NewCodec creates access token codec. blacklist may be nil.
func NewCodec(cfg Config, blacklist model.BlacklistStore, clock model.Clock) (*Codec, error) {
	method, ok := jwt.GetSigningMethod(cfg.Algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", cfg.Algorithm)
	}
	if cfg.Secret == "" {
		return nil, errors.New("signing secret is empty")
	}
	if cfg.TTL <= 0 {
		return nil, errors.New("access token ttl must be positive")
	}
	if cfg.RequiredClaims == nil {
		cfg.RequiredClaims = DefaultRequiredClaims
	}
	if clock == nil {
		clock = model.SystemClock{}
	}

	return &Codec{
		cfg:       cfg,
		method:    method,
		blacklist: blacklist,
		clock:     clock,
	}, nil
}

func (c *Codec) TTL() time.Duration {
	return c.cfg.TTL
}

// Issue signs an access token for user.
func (c *Codec) Issue(user model.User, sessionID string) (string, model.AccessClaims, error) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	now := c.clock.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.cfg.Issuer,
			Audience:  jwt.ClaimStrings{c.cfg.Audience},
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.cfg.TTL)),
		},
		UserID:    user.ID.String(),
		Email:     user.Email,
		SessionID: sessionID,
	}

	signed, err := jwt.NewWithClaims(c.method, claims).SignedString([]byte(c.cfg.Secret))
	if err != nil {
		return "", model.AccessClaims{}, fmt.Errorf("failed to sign access token: %w", err)
	}

	return signed, toModel(claims, user.ID), nil
}

// Verify validates signature and time claims, the required claim set,
// issuer and audience, and finally the blacklist.
func (c *Codec) Verify(ctx context.Context, tokenString string) (model.AccessClaims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, c.keyFunc,
		jwt.WithValidMethods([]string{c.method.Alg()}),
		jwt.WithTimeFunc(c.clock.Now),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		return model.AccessClaims{}, mapParseError(err)
	}

	if err := c.checkRequired(tokenString); err != nil {
		return model.AccessClaims{}, err
	}
	if claims.Issuer != c.cfg.Issuer {
		return model.AccessClaims{}, fmt.Errorf("%w: issuer mismatch", model.ErrInvalidToken)
	}
	if !slices.Contains(claims.Audience, c.cfg.Audience) {
		return model.AccessClaims{}, fmt.Errorf("%w: audience mismatch", model.ErrInvalidToken)
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return model.AccessClaims{}, fmt.Errorf("%w: user_id is not a uuid", model.ErrInvalidToken)
	}

	if c.blacklist != nil && claims.SessionID != "" {
		listed, err := c.blacklist.Contains(ctx, claims.SessionID)
		if err != nil {
			return model.AccessClaims{}, fmt.Errorf("failed to check blacklist: %w", err)
		}
		if listed {
			return model.AccessClaims{}, model.ErrTokenBlacklisted
		}
	}

	return toModel(*claims, userID), nil
}

// Decode checks the signature only. Expired tokens decode successfully.
func (c *Codec) Decode(tokenString string) (model.AccessClaims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, c.keyFunc,
		jwt.WithValidMethods([]string{c.method.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return model.AccessClaims{}, mapParseError(err)
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return model.AccessClaims{}, fmt.Errorf("%w: user_id is not a uuid", model.ErrInvalidToken)
	}

	return toModel(*claims, userID), nil
}

func (c *Codec) keyFunc(*jwt.Token) (any, error) {
	return []byte(c.cfg.Secret), nil
}

// checkRequired inspects the raw payload so that zero values decoded into
// Claims are not mistaken for present claims.
func (c *Codec) checkRequired(tokenString string) error {
	raw := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, raw); err != nil {
		return mapParseError(err)
	}

	for _, name := range c.cfg.RequiredClaims {
		v, ok := raw[name]
		if !ok || v == nil || v == "" {
			return &model.MissingClaimError{Claim: name}
		}
	}
	return nil
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return model.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet), errors.Is(err, jwt.ErrTokenUsedBeforeIssued):
		return model.ErrTokenNotYetValid
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return model.ErrBadSignature
	case errors.Is(err, jwt.ErrTokenMalformed):
		return model.ErrTokenMalformed
	default:
		return fmt.Errorf("%w: %w", model.ErrInvalidToken, err)
	}
}

func toModel(c Claims, userID uuid.UUID) model.AccessClaims {
	out := model.AccessClaims{
		Issuer:    c.Issuer,
		Audience:  []string(c.Audience),
		Subject:   c.Subject,
		UserID:    userID,
		Email:     c.Email,
		SessionID: c.SessionID,
	}
	if c.IssuedAt != nil {
		out.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		out.ExpiresAt = c.ExpiresAt.Time
	}
	return out
}
