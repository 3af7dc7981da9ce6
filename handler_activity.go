package console

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Get activity feed
// @Summary Most recent console actions, newest first
// @Tags Activity
// @Produce json
// @Success 200 {array} ActivityEntry
// @Router /v1/activity [GET]
func (api *api) GetActivityLog(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 0 {
		limit = 50
	}
	c.JSON(http.StatusOK, api.activityLog.GetRecent(limit))
}
