package handlers

import (
	"net/http"

	contactRepo "aster/database/repository/contact"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactHandler serves the read-only directory.
type ContactHandler struct {
	Repo   contactRepo.ContactRepository
	Logger *zap.Logger
}

func NewContactHandler(repo contactRepo.ContactRepository, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{Repo: repo, Logger: logger}
}

func (h *ContactHandler) GetAllContactsHandler(c *gin.Context) {
	contacts, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list contacts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list contacts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"contacts": contacts})
}

// SearchContactHandler looks a contact up by name. A miss is a 404, not an
// error response body surprise: the assistant degrades separately.
func (h *ContactHandler) SearchContactHandler(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter: name"})
		return
	}

	contact, err := h.Repo.FindByName(c.Request.Context(), name)
	if err != nil {
		h.Logger.Error("contact lookup failed", zap.String("name", name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "contact lookup failed"})
		return
	}
	if contact == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no contact found", "name": name})
		return
	}
	c.JSON(http.StatusOK, contact)
}
