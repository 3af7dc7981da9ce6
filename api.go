package console

import (
	"fmt"
	"net/http"
	"time"

	"github.com/medassist/hospital-console/config"
	"github.com/medassist/hospital-console/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	timeout "github.com/vearne/gin-timeout"
)

type Api interface {
	Run() error
}

type api struct {
	config           *config.Configuration
	engine           *gin.Engine
	sessionService   SessionService
	recordService    RecordService
	dashboardService DashboardService
	hospitalClient   HospitalClient
	activityLog      ActivityLogService
}

func (api *api) Run() error {
	if api.config.EnableTLS {
		return api.engine.RunTLS(fmt.Sprintf(":%d", api.config.APIPort), api.config.ConsoleCertPath, api.config.ConsoleKeyPath)
	}
	return api.engine.Run(fmt.Sprintf(":%d", api.config.APIPort))
}

func NewAPI(config *config.Configuration, authManager AuthManager,
	sessionService SessionService, recordService RecordService,
	dashboardService DashboardService, hospitalClient HospitalClient,
	activityLog ActivityLogService) Api {

	if config.LogLevel <= zerolog.DebugLevel {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	api := api{
		config:           config,
		engine:           engine,
		sessionService:   sessionService,
		recordService:    recordService,
		dashboardService: dashboardService,
		hospitalClient:   hospitalClient,
		activityLog:      activityLog,
	}

	corsMiddleWare := middleware.CreateCorsMiddleware(config)
	engine.Use(corsMiddleWare)
	engine.Use(timeout.Timeout(
		timeout.WithTimeout(time.Duration(config.RequestTimeoutSeconds)*time.Second),
		timeout.WithErrorHttpCode(http.StatusRequestTimeout)))

	root := engine.Group("")
	root.GET("/health", api.GetHealth)

	v1Group := root.Group("v1")
	v1Group.POST("/session", api.Login)
	v1Group.POST("/accounts", api.Register)
	v1Group.GET("/directory", api.GetDirectory)

	protectedGroup := v1Group.Group("")
	if api.config.Authorization {
		protectedGroup.Use(middleware.CheckAuth(authManager))
	}
	protectedGroup.DELETE("/session", api.Logout)
	protectedGroup.GET("/session/user", api.GetUserInfo)
	protectedGroup.GET("/menu", api.GetMenu)
	protectedGroup.GET("/bookings", api.GetBookings)
	protectedGroup.PUT("/bookings/:bookingId/status",
		middleware.RoleProtection([]middleware.UserRole{middleware.Admin, middleware.Doctor, middleware.Staff}, api.config.Authorization),
		api.UpdateBookingStatus)
	protectedGroup.GET("/records", api.GetMedicalRecords)
	protectedGroup.GET("/records/files/:fileId", api.GetMedicalFile)
	protectedGroup.GET("/dashboard/stats", api.GetDashboardStats)
	protectedGroup.GET("/activity",
		middleware.RoleProtection([]middleware.UserRole{middleware.Admin}, api.config.Authorization),
		api.GetActivityLog)

	return &api
}
