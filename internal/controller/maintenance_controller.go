package controller

import (
	"biocatalog_backend/internal/service"
	"biocatalog_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// MaintenanceController expone el barrido explícito de imágenes huérfanas.
type MaintenanceController struct {
	Cleanup *service.CleanupService
}

func NewMaintenanceController(cleanup *service.CleanupService) *MaintenanceController {
	return &MaintenanceController{Cleanup: cleanup}
}

func (c *MaintenanceController) Destroy(ctx *gin.Context) {
	removed, err := c.Cleanup.SweepOrphanImages(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"eliminadas": removed,
		"total":      len(removed),
	})
}
