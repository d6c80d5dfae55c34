package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/koldo-a/backend-2/repository"
	"go.uber.org/zap"
)

// Handler holds the application's dependencies, making them explicit.
type Handler struct {
	Store  repository.Store
	Logger *zap.Logger
}

// NewHandler creates a new handler with its dependencies.
func NewHandler(store repository.Store, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Store:  store,
		Logger: logger,
	}
}

// Routes registers every endpoint on r. None of them require authentication.
func (h *Handler) Routes(r gin.IRoutes) {
	// Users
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
	r.GET("/check-authentication", h.CheckAuthentication)
	r.GET("/users", h.ListUsers)
	r.GET("/user/:id", h.GetUserEmail)

	// Items
	r.GET("/items", h.ListItems)
	r.POST("/items", h.CreateItem)
	r.PUT("/items/:id", h.UpdateItem)
	r.DELETE("/items/:id", h.DeleteItem)

	r.GET("/health", h.Health)
}

// Health reports whether the database answers.
func (h *Handler) Health(c *gin.Context) {
	if err := h.Store.Ping(c.Request.Context()); err != nil {
		h.Logger.Warn("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ## Helper Methods

func (h *Handler) jsonError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// storeError logs err and answers 500 with its text.
func (h *Handler) storeError(c *gin.Context, err error) {
	h.Logger.Error("store error",
		zap.String("method", c.Request.Method),
		zap.String("route", c.FullPath()),
		zap.Error(err),
	)
	h.jsonError(c, http.StatusInternalServerError, err.Error())
}

var errInvalidID = errors.New("id must be a positive integer")

func (h *Handler) parseID(idStr string) (uint, error) {
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}
