package handler

import (
	"github.com/labstack/echo/v4"

	"supportdesk/internal/usecase"
	"supportdesk/pkg/response"
)

type StatsHandler struct {
	statsUseCase *usecase.StatsUseCase
}

func NewStatsHandler(statsUseCase *usecase.StatsUseCase) *StatsHandler {
	return &StatsHandler{
		statsUseCase: statsUseCase,
	}
}

func (h *StatsHandler) Overview(c echo.Context) error {
	overview, err := h.statsUseCase.Overview(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, overview)
}

func (h *StatsHandler) Analytics(c echo.Context) error {
	analytics, err := h.statsUseCase.Analytics(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, analytics)
}
