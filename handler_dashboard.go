package console

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (api *api) GetDashboardStats(c *gin.Context) {
	var profilePtr *UserProfile
	if profile, ok := api.sessionService.GetUserInfo(c); ok {
		profilePtr = &profile
	}
	c.JSON(http.StatusOK, api.dashboardService.GetDashboardStats(c, profilePtr))
}
