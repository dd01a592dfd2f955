package helper

import (
	"errors"
	"strings"
	"time"

	"github.com/SundayYogurt/bank_service/internal/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Auth struct {
	Secret string
	TTL    time.Duration
}

func SetupAuth(s string) Auth {
	return Auth{
		Secret: s,
		TTL:    24 * time.Hour,
	}
}

func (a Auth) GenerateToken(userID uint, email string) (string, error) {
	if userID == 0 || email == "" {
		return "", errors.New("required inputs are missing to generate token")
	}

	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"jti":     uuid.NewString(),
		"iat":     now.Unix(),
		"exp":     now.Add(a.TTL).Unix(),
	})

	tokenStr, err := token.SignedString([]byte(a.Secret))
	if err != nil {
		return "", errors.New("unable to sign the token")
	}

	return tokenStr, nil
}

func (a Auth) VerifyToken(tokenString string) (dto.AuthResponse, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return dto.AuthResponse{}, errors.New("missing token")
	}

	// support both:
	// - "Bearer <token>"
	// - "<token>"
	if strings.HasPrefix(strings.ToLower(tokenString), "bearer ") {
		parts := strings.SplitN(tokenString, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
			return dto.AuthResponse{}, errors.New("invalid token format")
		}
		tokenString = strings.TrimSpace(parts[1])
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(a.Secret), nil
	})
	if err != nil {
		return dto.AuthResponse{}, errors.New("token parse error")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return dto.AuthResponse{}, errors.New("invalid token claims")
	}

	expAny, ok := claims["exp"]
	if !ok {
		return dto.AuthResponse{}, errors.New("missing expiry")
	}
	expFloat, ok := expAny.(float64)
	if !ok {
		return dto.AuthResponse{}, errors.New("invalid expiry type")
	}
	if float64(time.Now().Unix()) > expFloat {
		return dto.AuthResponse{}, errors.New("token expired")
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return dto.AuthResponse{}, errors.New("invalid user id claim")
	}
	email, ok := claims["email"].(string)
	if !ok {
		return dto.AuthResponse{}, errors.New("invalid email claim")
	}
	jti, ok := claims["jti"].(string)
	if !ok || jti == "" {
		return dto.AuthResponse{}, errors.New("missing jti claim")
	}
	iat, _ := claims["iat"].(float64)

	return dto.AuthResponse{
		UserID: uint(userID),
		Email:  email,
		Jti:    jti,
		Expiry: expFloat,
		Iat:    iat,
	}, nil
}

func (a Auth) GetCurrentUser(ctx *fiber.Ctx) (dto.AuthResponse, error) {
	u := ctx.Locals("user")
	claims, ok := u.(dto.AuthResponse)
	if !ok {
		return dto.AuthResponse{}, errors.New("missing auth user in context")
	}
	return claims, nil
}

func (a Auth) HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.New("unable to hash password")
	}
	return string(hashed), nil
}

// VerifyPassword uses bcrypt's constant-time comparison.
func (a Auth) VerifyPassword(plain, hashed string) error {
	if err := bcrypt.CompareHashAndPassword(
		[]byte(hashed),
		[]byte(plain),
	); err != nil {
		return errors.New("invalid email or password")
	}
	return nil
}
