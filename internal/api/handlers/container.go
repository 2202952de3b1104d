package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gpushare/market-go/internal/application"
	"github.com/gpushare/market-go/internal/repository"
	"github.com/gpushare/market-go/pkg/response"
)

type Handlers struct {
	Auth     *AuthHandler
	Profile  *ProfileHandler
	Gpu      *GpuHandler
	Request  *RequestHandler
	Schedule *ScheduleHandler
	Activity *ActivityHandler
	Stats    *StatsHandler
	Router   *gin.Engine
}

func New(svc *application.Services, router *gin.Engine) *Handlers {
	return &Handlers{
		Auth:     NewAuthHandler(svc.Profile),
		Profile:  NewProfileHandler(svc.Profile),
		Gpu:      NewGpuHandler(svc.Gpu, svc.Schedule),
		Request:  NewRequestHandler(svc.Request),
		Schedule: NewScheduleHandler(svc.Schedule),
		Activity: NewActivityHandler(svc.Activity),
		Stats:    NewStatsHandler(svc.Stats),
		Router:   router,
	}
}

// respondError translates service errors into HTTP status codes.
func respondError(c *gin.Context, err error) {
	var verr *application.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrInvalidCode):
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrProfileNotFound),
		errors.Is(err, application.ErrGpuNotFound),
		errors.Is(err, application.ErrRequestNotFound),
		errors.Is(err, application.ErrScheduleNotFound),
		errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrIllegalTransition),
		errors.Is(err, application.ErrGpuUnavailable),
		errors.Is(err, application.ErrInsufficientMemory):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, repository.ErrNotImplemented):
		c.JSON(http.StatusNotImplemented, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}
