package natalController

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/admin/astro-services/natal-api/internal/domain"
	natalUsecase "github.com/admin/astro-services/natal-api/internal/usecases/natal"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	NatalService *natalUsecase.Service
	Log          *slog.Logger
}

func New(natalService *natalUsecase.Service, log *slog.Logger) *Controller {
	return &Controller{
		NatalService: natalService,
		Log:          log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	// Маршрут без версии сохранён для совместимости со старыми клиентами
	router.POST("/natal_chart", c.handleNatalChart)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/natal_chart", c.handleNatalChart)
	}
}

func (c *Controller) handleNatalChart(ctx *gin.Context) {
	var req NatalChartReq

	err := ctx.ShouldBindJSON(&req)
	if err != nil {
		c.Log.Error(err.Error())
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec := domain.BirthRecord{
		Name:      req.Name,
		BirthDate: req.BirthDate,
		BirthTime: req.BirthTime,
		City:      req.City,
	}

	user, err := c.NatalService.ComputeNatalChart(ctx.Request.Context(), rec)
	if err != nil {
		if domain.IsValidationError(err) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		// BusinessError уже залогирована в usecase
		if !domain.IsBusinessError(err) {
			c.Log.Error(err.Error())
		}
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "failed to calculate positions"})
		return
	}

	ctx.JSON(http.StatusOK, NatalChartResp{
		Name:      user.Name,
		Positions: json.RawMessage(user.Positions),
	})
}
