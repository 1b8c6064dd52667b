package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"facegate.io/application/utils"
	"facegate.io/infrastructure/database/repository/cache"
	"github.com/golang-jwt/jwt"
)

// GenerateAuthToken mints the session token for a successful face match.
// The token id is cached so a session can be revoked before it expires.
func GenerateAuthToken(claimsData ClaimsData) (*string, error) {
	tokenID := utils.GenerateUULDString()
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss":       os.Getenv("JWT_ISSUER"),
		"jti":       tokenID,
		"sub":       claimsData.IdentityID,
		"sim":       claimsData.Similarity,
		"userAgent": claimsData.UserAgent,
		"iat":       claimsData.IssuedAt,
		"exp":       claimsData.ExpiresAt,
	}).SignedString([]byte(os.Getenv("JWT_SIGNING_KEY")))
	if err != nil {
		return nil, err
	}
	cache.Cache.CreateEntry(fmt.Sprintf("%s-session", claimsData.IdentityID), tokenID,
		time.Until(time.Unix(claimsData.ExpiresAt, 0)))
	return &tokenString, nil
}

func DecodeAuthToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(os.Getenv("JWT_SIGNING_KEY")), nil
	})
}

// VerifyAuthToken checks the signature and that the session has not been
// revoked out-of-band.
func VerifyAuthToken(tokenString string) (string, error) {
	token, err := DecodeAuthToken(tokenString)
	if err != nil || !token.Valid {
		return "", errors.New("invalid session token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid session token claims")
	}
	identityID, _ := claims["sub"].(string)
	tokenID, _ := claims["jti"].(string)
	cached := cache.Cache.FindOne(fmt.Sprintf("%s-session", identityID))
	if cached == nil || *cached != tokenID {
		return "", errors.New("session has been revoked")
	}
	return identityID, nil
}
