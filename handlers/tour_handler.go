package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"tourgid/models"
	"tourgid/services"

	"github.com/gin-gonic/gin"
)

type TourHandler struct {
	tourService services.TourService
}

func NewTourHandler(tourService services.TourService) *TourHandler {
	return &TourHandler{tourService: tourService}
}

// requesterIdentity reads the (possibly absent) authenticated identity set
// by the auth middlewares.
func requesterIdentity(c *gin.Context) (uint, bool) {
	userID := uint(0)
	if v, ok := c.Get("user_id"); ok {
		userID = v.(uint)
	}
	isModerator := false
	if v, ok := c.Get("is_moderator"); ok {
		isModerator = v.(bool)
	}
	return userID, isModerator
}

// SubmitTour accepts the multipart editor form. The path id is either an
// existing tour id or the literal "create".
func (h *TourHandler) SubmitTour(c *gin.Context) {
	userID, _ := requesterIdentity(c)
	targetID := c.Param("id")

	if targetID != services.CreateTourID {
		id, err := strconv.ParseUint(targetID, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tour ID"})
			return
		}

		tour, err := h.tourService.GetTour(uint(id))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}

		if tour.CreatedByID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Only the author can edit this tour"})
			return
		}
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tourID, err := h.tourService.ProcessSubmission(form.Value, targetID, userID, form.File)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTourNotFound), errors.Is(err, services.ErrTagNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": tourID})
}

func (h *TourHandler) GetTours(c *gin.Context) {
	userID, isModerator := requesterIdentity(c)

	var params models.TourListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tours, err := h.tourService.ListTours(params, userID, isModerator)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tours": tours,
		"total": len(tours),
	})
}

func (h *TourHandler) GetTour(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tour ID"})
		return
	}

	tour, err := h.tourService.GetTour(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tour)
}

// GetCanvas returns just the block set, for the canvas renderer.
func (h *TourHandler) GetCanvas(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tour ID"})
		return
	}

	tour, err := h.tourService.GetTour(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"canvas_height": tour.CanvasHeight,
		"canvas_width":  tour.CanvasWidth,
		"blocks":        tour.Blocks,
	})
}

func (h *TourHandler) DeleteTour(c *gin.Context) {
	userID, isModerator := requesterIdentity(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tour ID"})
		return
	}

	if err := h.tourService.DeleteTour(uint(id), userID, isModerator); err != nil {
		switch {
		case errors.Is(err, services.ErrTourNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tour deleted successfully"})
}

func (h *TourHandler) Moderate(c *gin.Context) {
	userID, _ := requesterIdentity(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tour ID"})
		return
	}

	if err := h.tourService.Moderate(uint(id), userID); err != nil {
		if errors.Is(err, services.ErrTourNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tour moderated successfully"})
}
