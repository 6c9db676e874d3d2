package api

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"investingmenu/internal"
)

type allocationMatrixRequest struct {
	Strategy    string `json:"strategy"`
	CollapseSma bool   `json:"collapseSma"`
}

func (m ApiHandler) allocationMatrix(c *gin.Context) {
	var req allocationMatrixRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		m.returnErrorJsonCode(fmt.Errorf("failed to parse request: %w", err), c, 400)
		return
	}
	if req.Strategy == "" {
		m.returnErrorJsonCode(fmt.Errorf("strategy is required"), c, 400)
		return
	}

	dataset, err := m.DatasetRepository.Load(c.Request.Context())
	if err != nil {
		m.returnErrorJson(fmt.Errorf("failed to load dataset: %w", err), c)
		return
	}

	matrix, err := internal.BuildMatrix(dataset, req.Strategy, req.CollapseSma)
	if err != nil {
		m.returnErrorJson(err, c)
		return
	}

	c.JSON(200, matrix)
}
