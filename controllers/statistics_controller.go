// File: /controllers/statistics_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"volunteerhub-api/statistics"
)

type StatisticsController struct {
	service *statistics.Service
}

func NewStatisticsController(service *statistics.Service) *StatisticsController {
	return &StatisticsController{service: service}
}

// GetStatistics reports the volunteering metrics derived from the census
// supplement. A census outage yields zeroed metrics, never an error page.
func (sc *StatisticsController) GetStatistics(c *gin.Context) {
	summary := sc.service.Summarize(c.Request.Context())
	c.JSON(http.StatusOK, summary)
}
