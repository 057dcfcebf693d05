package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"supportdesk-backend/services"
	"supportdesk-backend/store"
	"supportdesk-backend/utils"
)

type UpdateProfileInput struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

type UpdatePasswordInput struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

type ProfileController struct {
	Auth       *services.AuthService
	Attendants *store.AttendantStore
	Users      services.ProfileGateway
}

func (ctl *ProfileController) currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return uuid.Nil, false
	}
	return id, true
}

func (ctl *ProfileController) GetProfile(c *gin.Context) {
	id, ok := ctl.currentUserID(c)
	if !ok {
		return
	}

	user, err := ctl.Users.Get(c.Request.Context(), id)
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile changes the caller's own name/phone. Role changes go through
// the admin-only attendant routes; email is immutable.
func (ctl *ProfileController) UpdateProfile(c *gin.Context) {
	id, ok := ctl.currentUserID(c)
	if !ok {
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	user, err := ctl.Attendants.Update(c.Request.Context(), id, store.UpdateAttendantInput{
		Name:  input.Name,
		Phone: input.Phone,
	})
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ctl *ProfileController) UpdatePassword(c *gin.Context) {
	id, ok := ctl.currentUserID(c)
	if !ok {
		return
	}

	var input UpdatePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := ctl.Auth.UpdatePassword(c.Request.Context(), id, input.CurrentPassword, input.NewPassword); err != nil {
		utils.RespondWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}
