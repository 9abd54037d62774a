package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/daxilpatel1309/minimal-cart-grove/internal/config"
	"github.com/daxilpatel1309/minimal-cart-grove/internal/session"
)

const sessionKey = "session"

// AuthRequired exige un token bearer valide (header Authorization, ou cookie
// de session en repli) et place la session utilisateur dans le contexte Gin
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := sessionFromRequest(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// OptionalAuth construit la session si un token est présent, mais laisse
// passer les visiteurs anonymes (page produit, catalogue)
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess, err := sessionFromRequest(c); err == nil {
			c.Set(sessionKey, sess)
		}
		c.Next()
	}
}

// CurrentSession relit la session posée par AuthRequired / OptionalAuth
func CurrentSession(c *gin.Context) session.Session {
	if v, ok := c.Get(sessionKey); ok {
		if sess, ok := v.(session.Session); ok {
			return sess
		}
	}
	return session.Session{}
}

func sessionFromRequest(c *gin.Context) (session.Session, error) {
	tokenString := bearerToken(c)
	if tokenString == "" {
		tokenString = tokenFromCookie(c.Request)
	}
	if tokenString == "" {
		return session.Session{}, fmt.Errorf("Token manquant")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("méthode de signature inattendue: %v", token.Header["alg"])
		}
		return []byte(config.JWTSecret()), nil
	})
	if err != nil || !token.Valid {
		return session.Session{}, fmt.Errorf("Token invalide")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return session.Session{}, fmt.Errorf("Token invalide")
	}

	if exp, ok := claims["exp"].(float64); ok && time.Now().Unix() > int64(exp) {
		return session.Session{}, fmt.Errorf("Token expiré")
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return session.Session{}, fmt.Errorf("user_id manquant")
	}

	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return session.Session{
		UserID: userID,
		Email:  email,
		Role:   session.ParseRole(role),
		Token:  tokenString,
	}, nil
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
