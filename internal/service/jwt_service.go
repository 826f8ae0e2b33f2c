package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTService issues and validates the short-lived access tokens the scoring
// API hands to machine clients. No refresh flow: clients re-authenticate
// with their API key when the token expires.
type JWTService struct {
	secret    []byte
	accessTTL time.Duration
	issuer    string
}

type AccessToken struct {
	Token     string `json:"access_token"`
	ExpiresIn int64  `json:"expires_in"`
}

type Claims struct {
	ClientName string `json:"client_name"`
	TokenType  string `json:"typ"`
	jwt.RegisteredClaims
}

var (
	ErrJWTInvalid = errors.New("jwt invalid")
	ErrJWTExpired = errors.New("jwt expired")
)

func NewJWTService(secret string, accessTTL time.Duration) *JWTService {
	if accessTTL <= 0 {
		accessTTL = 15 * time.Minute
	}
	return &JWTService{
		secret:    []byte(secret),
		accessTTL: accessTTL,
		issuer:    "webshop-seo",
	}
}

func (s *JWTService) IssueAccessToken(clientName string) (AccessToken, error) {
	if len(s.secret) == 0 || strings.TrimSpace(clientName) == "" {
		return AccessToken{}, ErrJWTInvalid
	}

	now := time.Now().UTC()
	claims := Claims{
		ClientName: clientName,
		TokenType:  "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   clientName,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{
		Token:     signed,
		ExpiresIn: int64(s.accessTTL.Seconds()),
	}, nil
}

func (s *JWTService) ParseAccessToken(accessToken string) (Claims, error) {
	if len(s.secret) == 0 || strings.TrimSpace(accessToken) == "" {
		return Claims{}, ErrJWTInvalid
	}

	var claims Claims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(accessToken, &claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrJWTExpired
		}
		return Claims{}, ErrJWTInvalid
	}

	if claims.TokenType != "access" {
		return Claims{}, ErrJWTInvalid
	}
	if !s.isValidClaims(claims) {
		return Claims{}, ErrJWTInvalid
	}
	return claims, nil
}

func (s *JWTService) isValidClaims(claims Claims) bool {
	if strings.TrimSpace(claims.ClientName) == "" {
		return false
	}
	if claims.Subject != claims.ClientName {
		return false
	}
	return strings.TrimSpace(claims.Issuer) == s.issuer
}
