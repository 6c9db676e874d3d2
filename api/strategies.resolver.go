package api

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"investingmenu/internal"
	"investingmenu/internal/domain"
)

type screenStrategiesRequest struct {
	Filters   domain.FilterState `json:"filters"`
	SortOrder string             `json:"sortOrder"`
}

type screenStrategiesResponse struct {
	Strategies []domain.StrategyRecord `json:"strategies"`
	Stats      internal.ScreenStats    `json:"stats"`
}

func (m ApiHandler) screenStrategies(c *gin.Context) {
	var req screenStrategiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		m.returnErrorJsonCode(fmt.Errorf("failed to parse request: %w", err), c, 400)
		return
	}

	dataset, err := m.DatasetRepository.Load(c.Request.Context())
	if err != nil {
		m.returnErrorJson(fmt.Errorf("failed to load dataset: %w", err), c)
		return
	}

	strategies, err := internal.ScreenStrategies(dataset, internal.ScreenRequest{
		Filters:   req.Filters,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		m.returnErrorJson(err, c)
		return
	}

	c.JSON(200, screenStrategiesResponse{
		Strategies: strategies,
		Stats:      internal.ComputeScreenStats(strategies),
	})
}
