package v1

import (
	"github.com/MGTheTrain/car-catalog/internal/domain/catalog"
	"github.com/MGTheTrain/car-catalog/internal/domain/images"
	"github.com/MGTheTrain/car-catalog/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1. collector may be nil.
func SetupRoutes(r *gin.Engine,
	carModelService catalog.CarModelService,
	orderingService catalog.OrderingService,
	imageService images.ImageService,
	imageSettings config.ImageSettings,
	collector *Collector) {

	v1 := r.Group(BasePath) // lookup in version file
	if collector != nil {
		v1.Use(collector.Middleware())
	}

	// Lookup Routes
	carModelHandler := NewCarModelHandler(carModelService, orderingService)
	v1.GET("/brands", carModelHandler.ListBrands)
	v1.GET("/classes", carModelHandler.ListClasses)

	// Car Model Routes
	v1.GET("/carmodels", carModelHandler.List)
	v1.POST("/carmodels", carModelHandler.Create)
	v1.PUT("/carmodels/sort-order", carModelHandler.ReconcileSortOrder)
	v1.GET("/carmodels/:id", carModelHandler.GetByID)
	v1.PUT("/carmodels/:id", carModelHandler.Update)
	v1.DELETE("/carmodels/:id", carModelHandler.DeleteByID)

	// Image Routes
	imageHandler := NewImageHandler(imageService, imageSettings, collector)
	v1.GET("/carmodels/:id/images", imageHandler.ListByModel)
	v1.POST("/carmodels/:id/images", imageHandler.Upload)
	v1.GET("/carmodels/:id/images/default", imageHandler.GetDefault)
	v1.PUT("/carmodels/:id/images/:imageId/default", imageHandler.SetDefault)
	v1.DELETE("/images/:id", imageHandler.DeleteByID)
}
