package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

var TimeNow = time.Now
var ErrTokenNotValid error = errors.New("token is not valid")
var ErrTokenExpired error = errors.New("token expired")

// JWTService issues and checks HS512 session tokens.
type JWTService struct {
	secret []byte
}

func NewJWTService(jwtSecret []byte) *JWTService {
	return &JWTService{
		secret: jwtSecret,
	}
}

// Issue signs a token for subject that expires after ttl.
func (gen *JWTService) Issue(subject string, ttl time.Duration) (string, error) {
	now := TimeNow()
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	})

	signed, err := token.SignedString(gen.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Validate checks the signature and expiry of token and returns its claims.
func (gen *JWTService) Validate(token string) (jwt.MapClaims, error) {
	parser := jwt.Parser{SkipClaimsValidation: true}
	jwtToken, err := parser.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return gen.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("jwt parse: %w: %w", err, ErrTokenNotValid)
	}

	if !jwtToken.Valid {
		return nil, ErrTokenNotValid
	}

	claims, ok := jwtToken.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("jwt claims type assertion failed")
	}

	expVal, ok := claims["exp"].(float64)
	if !ok {
		return nil, fmt.Errorf("missing exp claim: %w", ErrTokenNotValid)
	}
	if int64(expVal) <= TimeNow().Unix() {
		return nil, fmt.Errorf("token expired at %v: %w", time.Unix(int64(expVal), 0), ErrTokenExpired)
	}

	return claims, nil
}

// Subject returns the "sub" claim of a validated token.
func (gen *JWTService) Subject(token string) (string, error) {
	claims, err := gen.Validate(token)
	if err != nil {
		return "", err
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", fmt.Errorf("missing sub claim: %w", ErrTokenNotValid)
	}

	return sub, nil
}
