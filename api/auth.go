package api

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// OperatorJWT is the claim set issued to the desk that may trigger
// alert emails
type OperatorJWT struct {
	Subject   string  `json:"sub"`
	Email     *string `json:"email"`
	Role      string  `json:"role"`
	ExpiresAt int64   `json:"exp"`
	IssuedAt  int64   `json:"iat"`
}

func parseOperatorJWT(jwtStr string, decodeToken string) (*OperatorJWT, error) {
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
		return nil, fmt.Errorf("error marshalling claims: %w", err)
	}

	var parsedJWT OperatorJWT
	if err := json.Unmarshal(claimsJSON, &parsedJWT); err != nil {
		return nil, fmt.Errorf("error unmarshalling into JWT struct: %w", err)
	}

	if time.Now().UTC().Unix() > parsedJWT.ExpiresAt {
		return nil, fmt.Errorf("jwt is expired")
	}

	return &parsedJWT, nil
}

// requireOperator guards routes with side effects. It is a no-op when
// no decode token is configured
func (m ApiHandler) requireOperator(c *gin.Context) {
	if m.JwtDecodeToken == "" {
		c.Next()
		return
	}

	authHeader := c.GetHeader("Authorization")
	jwtStr, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || jwtStr == "" {
		returnErrorJsonCode(fmt.Errorf("missing bearer token"), c, 401)
		return
	}

	claims, err := parseOperatorJWT(jwtStr, m.JwtDecodeToken)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	c.Set("operator", claims.Subject)
	c.Next()
}
