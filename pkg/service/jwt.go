package service

import (
	"fmt"

	jwt "github.com/golang-jwt/jwt/v5"
)

// ConsoleClaims are the claims of the token issued by the association backend.
// The console never checks the signature; the backend does on every call.
type ConsoleClaims struct {
	UniqueName string `json:"unique_name"`
	Name       string `json:"name"`
	jwt.RegisteredClaims
}

// UserName is the first non-empty of unique_name, name and sub.
func (c *ConsoleClaims) UserName() string {
	switch {
	case c.UniqueName != "":
		return c.UniqueName
	case c.Name != "":
		return c.Name
	}
	return c.Subject
}

type JWTService interface {
	ReadClaims(tokenString string) (*ConsoleClaims, error)
}

type jwtService struct {
	parser *jwt.Parser
}

func NewJWTService() JWTService {
	return &jwtService{parser: jwt.NewParser()}
}

func (s *jwtService) ReadClaims(tokenString string) (*ConsoleClaims, error) {
	claims := &ConsoleClaims{}
	if _, _, err := s.parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("read token claims: %w", err)
	}
	return claims, nil
}
