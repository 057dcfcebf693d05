package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"supportdesk-backend/apperr"
	"supportdesk-backend/store"
	"supportdesk-backend/utils"
)

type AttendantController struct {
	Store *store.AttendantStore
}

func (ctl *AttendantController) GetAttendants(c *gin.Context) {
	if err := ctl.Store.FetchAll(c.Request.Context()); err != nil {
		utils.RespondWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, ctl.Store.Items())
}

// CreateAttendant runs the two-step registration (identity + profile). The
// conflict case gets its own message so the form can prompt distinctly; a
// failed compensation is reported as remote inconsistency.
func (ctl *AttendantController) CreateAttendant(c *gin.Context) {
	var input store.CreateAttendantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	user, err := ctl.Store.Create(c.Request.Context(), input)
	if err != nil {
		if apperr.IsConflict(err) {
			utils.RespondWithError(c, http.StatusConflict, "Email already registered")
			return
		}
		if ctl.Store.LastCompensation() == store.CompensationFailed {
			utils.RespondWithError(c, http.StatusInternalServerError,
				"Registration failed and cleanup did not complete; contact an administrator")
			return
		}
		utils.RespondWithAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (ctl *AttendantController) UpdateAttendant(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid attendant ID format")
		return
	}

	var input store.UpdateAttendantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	user, err := ctl.Store.Update(c.Request.Context(), id, input)
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ctl *AttendantController) DeleteAttendant(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid attendant ID format")
		return
	}

	if err := ctl.Store.Delete(c.Request.Context(), id); err != nil {
		utils.RespondWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Attendant deleted successfully"})
}
