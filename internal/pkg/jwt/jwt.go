package jwt

import (
	"errors"
	"time"

	"repairshop/internal/domain/party"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims identify the mechanic operating the current session.
type Claims struct {
	MechanicID   uuid.UUID `json:"mechanic_id"`
	MechanicName string    `json:"mechanic_name"`
	jwt.RegisteredClaims
}

func (c *Claims) Mechanic() party.Mechanic {
	return party.Mechanic{ID: c.MechanicID, Name: c.MechanicName}
}

type Service struct {
	secretKey     []byte
	tokenDuration time.Duration
	now           func() time.Time
}

func NewService(secretKey string, tokenDuration time.Duration) *Service {
	return &Service{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
		now:           time.Now,
	}
}

func (s *Service) GenerateToken(mechanic party.Mechanic) (string, error) {
	if mechanic.IsZero() {
		return "", ErrInvalidToken
	}
	now := s.now()
	claims := Claims{
		MechanicID:   mechanic.ID,
		MechanicName: mechanic.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   mechanic.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.MechanicID == uuid.Nil {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
