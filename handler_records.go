package console

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (api *api) GetMedicalRecords(c *gin.Context) {
	c.JSON(http.StatusOK, api.recordService.GetMedicalRecords(c))
}

func (api *api) GetMedicalFile(c *gin.Context) {
	fileID := c.Param("fileId")
	if fileID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, MissingIdParameterMsg)
		return
	}

	content, contentType, err := api.hospitalClient.GetMedicalFile(c, fileID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": MsgMedicalFileNotFound})
		return
	}

	if contentType == "" {
		contentType = defaultMimeType
	}
	c.Data(http.StatusOK, contentType, content)
}
