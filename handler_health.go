package console

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type healthTO struct {
	Service string `json:"service"`
	Status  string `json:"status"`
}

func (api *api) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, healthTO{
		Service: api.config.ApplicationName,
		Status:  "up",
	})
}
