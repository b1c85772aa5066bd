package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/smartmeethq/meeting-assistant-api/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg     *config.Config
	meeting *MeetingHandler
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, meeting *MeetingHandler) *Router {
	return &Router{
		cfg:     cfg,
		meeting: meeting,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// The wizard UI polls "/" for liveness; "/health" is for infra probes
	e.GET("/", rt.meeting.Health)
	e.GET("/health", rt.meeting.Health)

	e.POST("/plan", rt.meeting.Plan)
	e.POST("/summarize", rt.meeting.Summarize)
}
