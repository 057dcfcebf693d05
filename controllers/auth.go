package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"supportdesk-backend/apperr"
	"supportdesk-backend/models"
	"supportdesk-backend/services"
	"supportdesk-backend/store"
	"supportdesk-backend/utils"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterInput is the public sign-up payload. It carries no role field:
// self-registered accounts are always attendants. Admin accounts are created
// through the admin-only attendant routes.
type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=6"`
}

type AuthController struct {
	Auth       *services.AuthService
	Attendants *store.AttendantStore
	Users      services.ProfileGateway
}

// Register creates an attendant account: identity plus profile row. Runs
// through the attendant store so the two-step compensation rules apply.
func (ctl *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	user, err := ctl.Attendants.Create(c.Request.Context(), store.CreateAttendantInput{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Role:     models.RoleAttendant,
		Password: input.Password,
	})
	if err != nil {
		if apperr.IsConflict(err) {
			utils.RespondWithError(c, http.StatusConflict, "Email already registered")
			return
		}
		utils.RespondWithAppError(c, err)
		return
	}

	session, err := ctl.Auth.SignIn(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"token":   session.Token,
		"user":    user,
	})
}

func (ctl *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	session, err := ctl.Auth.SignIn(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": session.Token,
		"user": gin.H{
			"id":    session.UserID,
			"email": session.Email,
			"name":  session.Name,
			"role":  session.Role,
		},
	})
}

func (ctl *AuthController) Logout(c *gin.Context) {
	ctl.Auth.SignOut()
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// Me returns the profile bound to the current session.
func (ctl *AuthController) Me(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusInternalServerError, "User ID not found in context")
		return
	}
	id, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	user, err := ctl.Users.Get(c.Request.Context(), id)
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
