package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"tourgid/helper"
	"tourgid/models"
	"tourgid/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService services.UserService
	Helper      *helper.HTTPHelper
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateProfile accepts the multipart cabinet form: optional new login, bio,
// password with confirmation and profile photo.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, _ := requesterIdentity(c)

	var req models.UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	var photo *multipart.FileHeader
	if fh, err := c.FormFile("profile_photo"); err == nil {
		photo = fh
	} else if !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	user, err := h.userService.UpdateProfile(userID, req, photo)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLoginTaken), errors.Is(err, services.ErrPasswordMismatch):
			h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		case errors.Is(err, services.ErrUserNotFound):
			h.Helper.SendNotFoundError(c, err.Error(), h.Helper.EmptyJsonMap())
		default:
			h.Helper.SendDatabaseError(c, err.Error(), h.Helper.EmptyJsonMap())
		}
		return
	}

	h.Helper.SendSuccess(c, "Profile updated", user)
}

func (h *UserHandler) GrantModerator(c *gin.Context) {
	var req models.GrantModeratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	if err := h.userService.GrantModerator(req.Login); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			h.Helper.SendNotFoundError(c, err.Error(), h.Helper.EmptyJsonMap())
			return
		}
		h.Helper.SendDatabaseError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Moderator granted", h.Helper.EmptyJsonMap())
}

func (h *UserHandler) AddFavouriteTag(c *gin.Context) {
	userID, _ := requesterIdentity(c)
	tagID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid tag ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.userService.AddFavouriteTag(userID, uint(tagID)); err != nil {
		switch {
		case errors.Is(err, services.ErrTagNotFound), errors.Is(err, services.ErrUserNotFound):
			h.Helper.SendNotFoundError(c, err.Error(), h.Helper.EmptyJsonMap())
		default:
			h.Helper.SendDatabaseError(c, err.Error(), h.Helper.EmptyJsonMap())
		}
		return
	}

	h.Helper.SendSuccess(c, "Tag added to favourites", h.Helper.EmptyJsonMap())
}

func (h *UserHandler) GetFavouriteTags(c *gin.Context) {
	userID, _ := requesterIdentity(c)

	tags, err := h.userService.GetFavouriteTags(userID)
	if err != nil {
		h.Helper.SendDatabaseError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Success", tags)
}
