package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"supportdesk-backend/store"
	"supportdesk-backend/utils"
)

type AttendanceController struct {
	Store *store.AttendanceStore
}

type AddCommentInput struct {
	Comment string `json:"comment" binding:"required"`
}

func (ctl *AttendanceController) GetAttendances(c *gin.Context) {
	if err := ctl.Store.FetchAll(c.Request.Context()); err != nil {
		utils.RespondWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, ctl.Store.Items())
}

func (ctl *AttendanceController) GetAttendance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid attendance ID format")
		return
	}

	if err := ctl.Store.FetchByID(c.Request.Context(), id); err != nil {
		utils.RespondWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, ctl.Store.Selected())
}

func (ctl *AttendanceController) CreateAttendance(c *gin.Context) {
	var input store.CreateAttendanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	attendance, err := ctl.Store.Create(c.Request.Context(), input)
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, attendance)
}

func (ctl *AttendanceController) UpdateAttendance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid attendance ID format")
		return
	}

	var input store.UpdateAttendanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	attendance, err := ctl.Store.Update(c.Request.Context(), id, input)
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, attendance)
}

func (ctl *AttendanceController) DeleteAttendance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid attendance ID format")
		return
	}

	if err := ctl.Store.Delete(c.Request.Context(), id); err != nil {
		utils.RespondWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Attendance deleted successfully"})
}

// GetComments returns the thread oldest first.
func (ctl *AttendanceController) GetComments(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid attendance ID format")
		return
	}

	comments, err := ctl.Store.Comments(c.Request.Context(), id)
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// AddComment appends a note authored by the current session's user.
func (ctl *AttendanceController) AddComment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid attendance ID format")
		return
	}

	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}
	authorID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	var input AddCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	comment, err := ctl.Store.AddComment(c.Request.Context(), id, authorID, input.Comment)
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}
