package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/koldo-a/backend-2/models"
	"github.com/koldo-a/backend-2/repository"
	"go.uber.org/zap"
)

const (
	msgRegistered        = "Registro exitoso"
	msgAlreadyRegistered = "El usuario ya está registrado"
	msgLoggedOut         = "Sesión cerrada"
	msgUserNotFound      = "user not found"
)

type emailBody struct {
	Email string `json:"email" binding:"required"`
}

// Register creates a user for an email that is not taken yet.
func (h *Handler) Register(c *gin.Context) {
	var body emailBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.jsonError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	ctx := c.Request.Context()
	users := h.Store.Users()

	_, err := users.FindByEmail(ctx, body.Email)
	switch {
	case err == nil:
		c.JSON(http.StatusBadRequest, gin.H{"message": msgAlreadyRegistered})
		return
	case !errors.Is(err, repository.ErrNotFound):
		h.storeError(c, err)
		return
	}

	user := models.User{Email: body.Email}
	if err := users.Create(ctx, &user); err != nil {
		// Lost a race with a concurrent registration for the same email.
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"message": msgAlreadyRegistered})
			return
		}
		h.storeError(c, err)
		return
	}

	h.Logger.Info("user registered", zap.Uint("user_id", user.ID))
	c.JSON(http.StatusOK, gin.H{"message": msgRegistered})
}

// Login looks the user up by email and nothing else: there is no password,
// token or session. Anyone who knows an email can log in as that user.
func (h *Handler) Login(c *gin.Context) {
	var body emailBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.jsonError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.Store.Users().FindByEmail(c.Request.Context(), body.Email)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"message": fmt.Sprintf("Usuario con el email: %s no se ha encontrado", body.Email),
		})
		return
	}
	if err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Inicio de sesión exitoso para el usuario con id: %d y el email:%s", user.ID, user.Email),
		"id":      user.ID,
	})
}

// Logout has nothing to invalidate.
func (h *Handler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": msgLoggedOut})
}

// CheckAuthentication always answers true; no session state exists to check.
func (h *Handler) CheckAuthentication(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"isLoggedIn": true})
}

// userSummary is the /users row shape. Name carries the email: the original
// service labelled the email column "name" and clients depend on that key.
type userSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Store.Users().List(c.Request.Context())
	if err != nil {
		h.storeError(c, err)
		return
	}

	out := make([]userSummary, 0, len(users))
	for _, u := range users {
		out = append(out, userSummary{ID: u.ID, Name: u.Email})
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetUserEmail(c *gin.Context) {
	userID, err := h.parseID(c.Param("id"))
	if err != nil {
		h.jsonError(c, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := h.Store.Users().FindByID(c.Request.Context(), userID)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": msgUserNotFound})
		return
	}
	if err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"email": user.Email})
}
