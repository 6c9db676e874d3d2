package api

import (
	"github.com/gin-gonic/gin"

	"investingmenu/internal"
)

type sortOrdersResponse struct {
	Orders  []string `json:"orders"`
	Default string   `json:"default"`
}

func (m ApiHandler) sortOrders(c *gin.Context) {
	c.JSON(200, sortOrdersResponse{
		Orders:  internal.SortOrderNames(),
		Default: internal.DefaultSortOrder,
	})
}
