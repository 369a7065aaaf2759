package auth

import (
	"crypto/rand"
	"errors"
	"math/big"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleSession = "session"
	RoleSignup  = "signup"

	sessionTokenTTL = 7 * 24 * time.Hour
	signupTokenTTL  = 15 * time.Minute
)

// IssueSessionToken signs a full session JWT for an authenticated identity.
func IssueSessionToken(userID, phone string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"phone":   phone,
		"role":    RoleSession,
		"exp":     time.Now().Add(sessionTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// IssueSignupToken signs a short-lived token that only authorizes completing
// profile creation for a verified phone number.
func IssueSignupToken(phone string) (string, error) {
	claims := jwt.MapClaims{
		"phone": phone,
		"role":  RoleSignup,
		"exp":   time.Now().Add(signupTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// ParseToken validates the HMAC signature and returns the claims.
func ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// GenerateOTPCode returns a 6-digit numeric code.
func GenerateOTPCode() string {
	const digits = "0123456789"
	code := make([]byte, 6)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			code[i] = '0'
			continue
		}
		code[i] = digits[n.Int64()]
	}
	return string(code)
}
