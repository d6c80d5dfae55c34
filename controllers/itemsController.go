package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/koldo-a/backend-2/models"
	"go.uber.org/zap"
)

const (
	msgItemCreated = "Item creado exitosamente"
	msgItemUpdated = "Item actualizado exitosamente"
	msgItemDeleted = "Item eliminado exitosamente"
)

func (h *Handler) ListItems(c *gin.Context) {
	items, err := h.Store.Items().List(c.Request.Context())
	if err != nil {
		h.storeError(c, err)
		return
	}
	if items == nil {
		items = []models.Item{}
	}

	c.JSON(http.StatusOK, items)
}

// CreateItem does not check that owner_id names an existing user; the
// database's foreign key does, and a violation comes back as a 500.
func (h *Handler) CreateItem(c *gin.Context) {
	var body struct {
		Name    string `json:"name"`
		OwnerID uint   `json:"owner_id"`
	}

	if err := c.ShouldBindJSON(&body); err != nil || body.Name == "" || body.OwnerID == 0 {
		h.jsonError(c, http.StatusBadRequest, "invalid item")
		return
	}

	item := models.Item{Name: body.Name, OwnerID: body.OwnerID}
	if err := h.Store.Items().Create(c.Request.Context(), &item); err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgItemCreated})
}

// UpdateItem renames an item. It answers success even when no row has the id.
func (h *Handler) UpdateItem(c *gin.Context) {
	itemID, err := h.parseID(c.Param("id"))
	if err != nil {
		h.jsonError(c, http.StatusBadRequest, "invalid item id")
		return
	}

	var body struct {
		Name *string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Name == nil || *body.Name == "" {
		h.jsonError(c, http.StatusBadRequest, "name is required")
		return
	}

	n, err := h.Store.Items().UpdateName(c.Request.Context(), itemID, *body.Name)
	if err != nil {
		h.storeError(c, err)
		return
	}

	h.Logger.Debug("item updated", zap.Uint("item_id", itemID), zap.Int64("rows_affected", n))
	c.JSON(http.StatusOK, gin.H{"message": msgItemUpdated})
}

// DeleteItem is idempotent: a missing id gets the same answer as an existing one.
func (h *Handler) DeleteItem(c *gin.Context) {
	itemID, err := h.parseID(c.Param("id"))
	if err != nil {
		h.jsonError(c, http.StatusBadRequest, "invalid item id")
		return
	}

	n, err := h.Store.Items().Delete(c.Request.Context(), itemID)
	if err != nil {
		h.storeError(c, err)
		return
	}

	h.Logger.Debug("item deleted", zap.Uint("item_id", itemID), zap.Int64("rows_affected", n))
	c.JSON(http.StatusOK, gin.H{"message": msgItemDeleted})
}
