package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"tourgid/models"
	"tourgid/services"

	"github.com/gin-gonic/gin"
)

type ReactionHandler struct {
	reactionService services.ReactionService
}

func NewReactionHandler(reactionService services.ReactionService) *ReactionHandler {
	return &ReactionHandler{reactionService: reactionService}
}

func (h *ReactionHandler) CreateReaction(c *gin.Context) {
	userID, _ := requesterIdentity(c)
	tourID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tour ID"})
		return
	}

	var req models.CreateReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reaction, err := h.reactionService.CreateReaction(uint(tourID), req, userID)
	if err != nil {
		if errors.Is(err, services.ErrTourNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, reaction)
}

func (h *ReactionHandler) GetReactions(c *gin.Context) {
	tourID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tour ID"})
		return
	}

	reactions, err := h.reactionService.GetReactions(uint(tourID))
	if err != nil {
		if errors.Is(err, services.ErrTourNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, reactions)
}

func (h *ReactionHandler) DeleteReaction(c *gin.Context) {
	userID, isModerator := requesterIdentity(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reaction ID"})
		return
	}

	if err := h.reactionService.DeleteReaction(uint(id), userID, isModerator); err != nil {
		switch {
		case errors.Is(err, services.ErrReactionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reaction deleted successfully"})
}
