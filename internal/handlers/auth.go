package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daxilpatel1309/minimal-cart-grove/internal/middleware"
	"github.com/daxilpatel1309/minimal-cart-grove/internal/models"
	"github.com/daxilpatel1309/minimal-cart-grove/internal/session"
)

// Login proxifie le login vers l'API distante. Le token renvoyé est aussi
// miré dans le cookie de session, et la réponse inclut la page
// d'atterrissage selon le rôle.
func Login(c *gin.Context) {
	ctx := c.Request.Context()

	var creds models.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email et mot de passe requis"})
		return
	}

	payload, err := api.Login(ctx, creds)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if err := middleware.SetTokenCookie(c.Writer, c.Request, payload.Token); err != nil {
		log.Printf("⚠️ Erreur écriture cookie de session: %v", err)
	}

	role := session.ParseRole(payload.User.Role)
	log.Printf("✅ Login réussi pour %s (rôle: %s)", payload.User.Email, role)

	c.JSON(http.StatusOK, gin.H{
		"message":  "Connexion réussie",
		"token":    payload.Token,
		"user":     payload.User,
		"redirect": session.LandingPath(role),
	})
}

// Signup proxifie la création de compte
func Signup(c *gin.Context) {
	ctx := c.Request.Context()

	var data models.SignupData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	payload, err := api.Signup(ctx, data)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	if err := middleware.SetTokenCookie(c.Writer, c.Request, payload.Token); err != nil {
		log.Printf("⚠️ Erreur écriture cookie de session: %v", err)
	}

	role := session.ParseRole(payload.User.Role)
	log.Printf("✅ Compte créé pour %s (rôle: %s)", payload.User.Email, role)

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Compte créé avec succès",
		"token":    payload.Token,
		"user":     payload.User,
		"redirect": session.LandingPath(role),
	})
}

// GetProfile recharge le profil depuis l'API distante (source de vérité,
// appelé au chargement de l'app pour restaurer la session)
func GetProfile(c *gin.Context) {
	ctx := c.Request.Context()
	sess := middleware.CurrentSession(c)

	user, err := api.FetchProfile(ctx, sess.Token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session invalide"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":     user,
		"redirect": session.LandingPath(session.ParseRole(user.Role)),
	})
}

// Logout efface le cookie de session. Le token lui-même reste géré
// côté client.
func Logout(c *gin.Context) {
	if err := middleware.ClearTokenCookie(c.Writer, c.Request); err != nil {
		log.Printf("⚠️ Erreur effacement cookie de session: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Déconnexion réussie"})
}
