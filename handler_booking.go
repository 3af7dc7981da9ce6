package console

import (
	"net/http"
	"strings"

	"github.com/medassist/hospital-console/middleware"

	"github.com/gin-gonic/gin"
)

type updateBookingStatusTO struct {
	Status string `json:"status" binding:"required"`
}

func (api *api) GetBookings(c *gin.Context) {
	c.JSON(http.StatusOK, api.hospitalClient.GetBookings(c))
}

func (api *api) GetDirectory(c *gin.Context) {
	c.JSON(http.StatusOK, api.hospitalClient.GetDepartmentsAndDoctors(c))
}

// Update booking status
// @Summary Move a booking to another status; cancellations are routed to the
// dedicated cancel endpoint of the backend
// @Tags Booking
// @Accept json
// @Success 204 "No Content"
// @Router /v1/bookings/{bookingId}/status [PUT]
func (api *api) UpdateBookingStatus(c *gin.Context) {
	bookingID := c.Param("bookingId")
	if bookingID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, MissingIdParameterMsg)
		return
	}

	var request updateBookingStatusTO
	if err := c.ShouldBindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, middleware.ErrInvalidRequestBody)
		return
	}

	status := BookingStatus(strings.ToLower(request.Status))
	if !status.IsValid() {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": MsgInvalidBookingStatus})
		return
	}

	if err := api.hospitalClient.UpdateBookingStatus(c, bookingID, status); err != nil {
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"message": err.Error()})
		return
	}

	actor := ""
	if profile, ok := api.sessionService.GetUserInfo(c); ok {
		actor = profile.Email
	}
	api.activityLog.Record(actor, ActivityBookingStatus, bookingID)

	c.Status(http.StatusNoContent)
}
