package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/fieldpress/fieldpress/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT for the given user.
//
// The token carries the standard issuer/subject/issued-at/expires-at claims
// plus the account role, so authorization checks do not need a database
// round trip. All parameters are required.
func GenerateJWTToken(issuer string, userID int64, role models.Role, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT token")
	}

	now := time.Now()
	claims := models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: string(role),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	claims.SignedString = tokenString
	claims.UserID = userID
	return claims, nil
}

// ValidateAndParseJWTToken verifies the signature, issuer, and expiry of the
// raw token string and extracts its claims, converting the subject claim into
// the numeric user ID.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	var claims models.Token
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return models.Token{}, fmt.Errorf("error validating JWT token: %w", err)
	}
	if !token.Valid {
		return models.Token{}, errors.New("invalid JWT token")
	}

	if err := claims.ParseUserID(); err != nil {
		return models.Token{}, fmt.Errorf("error parsing subject claim: %w", err)
	}

	claims.SignedString = tokenString
	return claims, nil
}
