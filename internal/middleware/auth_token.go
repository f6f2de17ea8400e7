package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/eventara/server/internal/helpers"
)

// TokenValidator verifies bearer tokens against either a shared HMAC
// secret or a remote JWKS endpoint, depending on deployment. The
// issuing service is external; only verification happens here.
type TokenValidator struct {
	secret []byte
	jwks   *keyfunc.JWKS
}

func NewTokenValidator(secret, jwksURL string) (*TokenValidator, error) {
	if jwksURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		jwks, err := keyfunc.Get(jwksURL, keyfunc.Options{
			Ctx:             ctx,
			RefreshInterval: time.Hour,
		})
		if err != nil {
			return nil, err
		}
		return &TokenValidator{jwks: jwks}, nil
	}
	if secret == "" {
		return nil, errors.New("either JWT_SECRET or AUTH_JWKS_URL must be set")
	}
	return &TokenValidator{secret: []byte(secret)}, nil
}

func (tv *TokenValidator) Validate(tokenStr string) (*helpers.Claims, error) {
	keyFn := tv.hmacKeyfunc
	if tv.jwks != nil {
		keyFn = tv.jwks.Keyfunc
	}

	token, err := jwt.ParseWithClaims(tokenStr, &helpers.Claims{}, keyFn)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*helpers.Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}
	return claims, nil
}

func (tv *TokenValidator) hmacKeyfunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.New("unexpected signing method")
	}
	return tv.secret, nil
}

// Close stops the background JWKS refresh, if one is running.
func (tv *TokenValidator) Close() {
	if tv.jwks != nil {
		tv.jwks.EndBackground()
	}
}
