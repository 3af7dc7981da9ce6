package console

import (
	"errors"
	"net/http"

	"github.com/medassist/hospital-console/middleware"

	"github.com/gin-gonic/gin"
)

type loginRequestTO struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Log in
// @Summary Authenticate against the hospital backend and open a session
// @Tags Session
// @Produce json
// @Accept json
// @Success 200 {object} Session
// @Router /v1/session [POST]
func (api *api) Login(c *gin.Context) {
	var request loginRequestTO
	if err := c.ShouldBindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, middleware.ErrInvalidRequestBody)
		return
	}

	session, err := api.sessionService.Login(c, request.Email, request.Password)
	if err != nil {
		status := http.StatusUnauthorized
		if errors.Is(err, ErrRoleNotPermitted) {
			status = http.StatusForbidden
		}
		c.AbortWithStatusJSON(status, gin.H{"message": err.Error()})
		return
	}

	api.activityLog.Record(request.Email, ActivityLogin, "")
	c.JSON(http.StatusOK, session)
}

// Log out
// @Summary Clear the session, idempotent
// @Tags Session
// @Success 204 "No Content"
// @Router /v1/session [DELETE]
func (api *api) Logout(c *gin.Context) {
	actor := ""
	if profile, ok := api.sessionService.GetUserInfo(c); ok {
		actor = profile.Email
	}

	if err := api.sessionService.Logout(c); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	api.activityLog.Record(actor, ActivityLogout, "")
	c.Status(http.StatusNoContent)
}

func (api *api) GetUserInfo(c *gin.Context) {
	profile, ok := api.sessionService.GetUserInfo(c)
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (api *api) Register(c *gin.Context) {
	var registration Registration
	if err := c.ShouldBindJSON(&registration); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, middleware.ErrInvalidRequestBody)
		return
	}

	if err := api.sessionService.Register(c, registration); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	api.activityLog.Record(registration.Email, ActivityRegistration, "")
	c.Status(http.StatusCreated)
}

func (api *api) GetMenu(c *gin.Context) {
	var profilePtr *UserProfile
	if profile, ok := api.sessionService.GetUserInfo(c); ok {
		profilePtr = &profile
	}
	c.JSON(http.StatusOK, VisibleMenuItems(profilePtr))
}
