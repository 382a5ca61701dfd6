package tokens

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "gigmarket"

var (
	ErrTokenExpired  = errors.New("token expired")
	ErrInvalidClaims = errors.New("invalid claims")
)

// UserClaims утверждения токена пользователя. Admin выставляется только токенам, выданным после
// входа в административный интерфейс.
type UserClaims struct {
	jwt.RegisteredClaims
	ID    int64 `json:"id"`
	Admin bool  `json:"admin,omitempty"`
}

func GenerateUserJWT(id int64, expire time.Duration, key []byte) (string, error) {
	return sign(newClaims(id, false, expire), key)
}

func GenerateAdminJWT(id int64, expire time.Duration, key []byte) (string, error) {
	return sign(newClaims(id, true, expire), key)
}

func newClaims(id int64, admin bool, expire time.Duration) *UserClaims {
	now := time.Now()
	return &UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(id, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expire)),
		},
		ID:    id,
		Admin: admin,
	}
}

func sign(claims *UserClaims, key []byte) (string, error) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("sign jwt for %s: %s", claims.Subject, err.Error())
	}
	return signed, nil
}

// ValidateUserJWT проверяет подпись, издателя и срок действия токена и возвращает его утверждения.
// Просроченный токен дает ErrTokenExpired.
func ValidateUserJWT(tokenString string, key []byte) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, new(UserClaims), func(_ *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("validate jwt: %w", err)
	}

	claims, ok := token.Claims.(*UserClaims)
	if !ok || claims.Subject != strconv.FormatInt(claims.ID, 10) {
		return nil, ErrInvalidClaims
	}
	return claims, nil
}
