package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"anoa.com/clanportal/internal/config"
	"anoa.com/clanportal/internal/middleware"
	"anoa.com/clanportal/internal/service"
)

type AuthHandler struct {
	authService  service.AuthService
	cookieMaxAge int
}

func NewAuthHandler(authService service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		cookieMaxAge: int(cfg.SessionTTL.Seconds()),
	}
}

func (h *AuthHandler) DiscordLogin(c *gin.Context) {
	url, err := h.authService.LoginURL(c.Request.Context())
	if err != nil {
		log.Printf("failed to build discord login url: %v", err)
		c.Redirect(http.StatusTemporaryRedirect, "/login")
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, url)
}

func (h *AuthHandler) DiscordCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusTemporaryRedirect, "/login")
		return
	}

	token, err := h.authService.HandleCallback(c.Request.Context(), code, c.Query("state"))
	if err != nil {
		log.Printf("discord callback failed: %v", err)
		c.Redirect(http.StatusTemporaryRedirect, "/login")
		return
	}

	c.SetCookie(middleware.SessionCookie, token, h.cookieMaxAge, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, "/")
}

// Me reports the session state. Only name and role leak out.
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"loggedIn": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"loggedIn": true,
		"name":     user.Name,
		"role":     user.Role,
	})
}
