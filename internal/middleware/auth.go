package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// JWTKey is populated from config at startup.
var JWTKey = []byte("change-me")

// Claims is the admin session token payload.
type Claims struct {
	AdminID int    `json:"id"`
	Email   string `json:"email"`
	jwt.RegisteredClaims
}

// PatientClaims is the patient session token payload.
type PatientClaims struct {
	PatientID int    `json:"id"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func parseHMAC(tokenStr string, claims jwt.Claims) (*jwt.Token, error) {
	return jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return JWTKey, nil
	})
}

// AdminAuth guards the admin-only surface.
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			return
		}
		claims := &Claims{}
		token, err := parseHMAC(tokenStr, claims)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		c.Set("admin_id", claims.AdminID)
		c.Set("admin_email", claims.Email)
		c.Next()
	}
}

// PatientAuth guards the patient portal endpoints.
func PatientAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		claims := &PatientClaims{}
		token, err := parseHMAC(tokenStr, claims)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token."})
			return
		}
		c.Set("patient_id", claims.PatientID)
		c.Set("patient_email", claims.Email)
		c.Next()
	}
}
