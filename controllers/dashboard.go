package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"supportdesk-backend/store"
	"supportdesk-backend/utils"
)

type DashboardController struct {
	Store *store.DashboardStore
}

// GetDashboardSummary recomputes and returns the summary. Nothing is cached;
// every call reflects the remote's current counts.
func (ctl *DashboardController) GetDashboardSummary(c *gin.Context) {
	if err := ctl.Store.Refresh(c.Request.Context()); err != nil {
		utils.RespondWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, ctl.Store.Summary())
}
