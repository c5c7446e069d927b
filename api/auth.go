package api

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

// SupabaseJWT holds the claims we care about from the auth provider's access
// token. The subject is the stable user id everything else keys off.
type SupabaseJWT struct {
	Audience  string  `json:"aud"`
	Email     *string `json:"email"`
	ExpiresAt int64   `json:"exp"`
	IssuedAt  int64   `json:"iat"`
	Issuer    string  `json:"iss"`
	Role      string  `json:"role"`
	SessionID string  `json:"session_id"`
	Subject   string  `json:"sub"`
}

func parseSupabaseJWT(jwtStr string, decodeToken string) (*SupabaseJWT, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(decodeToken), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("failed to parse claims")
	}

	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal claims: %w", err)
	}

	var parsedJWT SupabaseJWT
	if err := json.Unmarshal(claimsJSON, &parsedJWT); err != nil {
		return nil, fmt.Errorf("failed to unmarshal claims: %w", err)
	}

	if time.Now().UTC().Unix() > parsedJWT.ExpiresAt {
		return nil, fmt.Errorf("jwt is expired")
	}

	return &parsedJWT, nil
}

func (m ApiHandler) parseAuthHeader(c *gin.Context) (*SupabaseJWT, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, fmt.Errorf("missing Authorization header")
	}
	jwtStr := strings.TrimPrefix(header, "Bearer ")
	if jwtStr == header {
		return nil, fmt.Errorf("malformed Authorization header")
	}

	return parseSupabaseJWT(jwtStr, m.JwtDecodeToken)
}

// resolveUserID authenticates the request and returns the caller's user id.
func (m ApiHandler) resolveUserID(c *gin.Context) (*uuid.UUID, error) {
	parsedJWT, err := m.parseAuthHeader(c)
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(parsedJWT.Subject)
	if err != nil {
		return nil, fmt.Errorf("failed to parse user id from token: %w", err)
	}

	return &userID, nil
}
