package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MGTheTrain/car-catalog/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

// CarModelHandler defines the interface for handling car model related operations
type CarModelHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	ReconcileSortOrder(ctx *gin.Context)
	ListBrands(ctx *gin.Context)
	ListClasses(ctx *gin.Context)
}

// carModelHandler struct holds the services
type carModelHandler struct {
	carModelService catalog.CarModelService
	orderingService catalog.OrderingService
}

// NewCarModelHandler creates a new CarModelHandler
func NewCarModelHandler(carModelService catalog.CarModelService, orderingService catalog.OrderingService) CarModelHandler {
	return &carModelHandler{
		carModelService: carModelService,
		orderingService: orderingService,
	}
}

// List handles the GET request to list car models ordered by sort order
// @Summary List car models
// @Description Fetch one page of the catalog ordered by sort order, optionally filtered by name, brand or class.
// @Tags CarModel
// @Produce json
// @Param skip query int false "Number of models to skip"
// @Param take query int false "Page size (1-100)"
// @Param name query string false "Model name contains"
// @Param brandId query int false "Brand ID"
// @Param classId query int false "Class ID"
// @Success 200 {array} CarModelResponse
// @Failure 400 {object} ErrorResponse
// @Router /carmodels [get]
func (handler *carModelHandler) List(ctx *gin.Context) {
	query := catalog.NewCarModelQuery()

	var err error
	if skip := ctx.Query("skip"); len(skip) > 0 {
		if query.Skip, err = strconv.Atoi(skip); err != nil {
			respondBadRequest(ctx, fmt.Sprintf("invalid skip: %s", skip))
			return
		}
	}

	if take := ctx.Query("take"); len(take) > 0 {
		if query.Take, err = strconv.Atoi(take); err != nil {
			respondBadRequest(ctx, fmt.Sprintf("invalid take: %s", take))
			return
		}
	}

	if name := ctx.Query("name"); len(name) > 0 {
		query.Name = name
	}

	if brandID := ctx.Query("brandId"); len(brandID) > 0 {
		if query.BrandID, err = strconv.ParseInt(brandID, 10, 64); err != nil {
			respondBadRequest(ctx, fmt.Sprintf("invalid brandId: %s", brandID))
			return
		}
	}

	if classID := ctx.Query("classId"); len(classID) > 0 {
		if query.ClassID, err = strconv.ParseInt(classID, 10, 64); err != nil {
			respondBadRequest(ctx, fmt.Sprintf("invalid classId: %s", classID))
			return
		}
	}

	views, err := handler.carModelService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	var listResponse = []CarModelResponse{}
	for _, view := range views {
		listResponse = append(listResponse, newCarModelResponse(view))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to fetch a car model by ID
// @Summary Get a car model
// @Tags CarModel
// @Produce json
// @Param id path int true "Car model ID"
// @Success 200 {object} CarModelResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /carmodels/{id} [get]
func (handler *carModelHandler) GetByID(ctx *gin.Context) {
	modelID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	view, err := handler.carModelService.GetByID(ctx, modelID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newCarModelResponse(view))
}

// Create handles the POST request to add a car model to the end of the catalog
// @Summary Create a car model
// @Tags CarModel
// @Accept json
// @Produce json
// @Param requestBody body CarModelRequest true "Car model data"
// @Success 201 {object} CarModelResponse
// @Failure 400 {object} ErrorResponse
// @Router /carmodels [post]
func (handler *carModelHandler) Create(ctx *gin.Context) {
	var request CarModelRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid car model data: %v", err))
		return
	}

	view, err := handler.carModelService.Create(ctx, request.ToInput())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newCarModelResponse(view))
}

// Update handles the PUT request to overwrite the editable fields of a car model
// @Summary Update a car model
// @Tags CarModel
// @Accept json
// @Produce json
// @Param id path int true "Car model ID"
// @Param requestBody body CarModelRequest true "Car model data"
// @Success 200 {object} CarModelResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /carmodels/{id} [put]
func (handler *carModelHandler) Update(ctx *gin.Context) {
	modelID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var request CarModelRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid car model data: %v", err))
		return
	}

	view, err := handler.carModelService.Update(ctx, modelID, request.ToInput())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newCarModelResponse(view))
}

// DeleteByID handles the DELETE request to soft-delete a car model
// @Summary Delete a car model
// @Tags CarModel
// @Param id path int true "Car model ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /carmodels/{id} [delete]
func (handler *carModelHandler) DeleteByID(ctx *gin.Context) {
	modelID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := handler.carModelService.Delete(ctx, modelID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ReconcileSortOrder handles the PUT request to apply a drag-and-drop reorder
// @Summary Update sort orders
// @Description Named models receive the requested position, every other model is renumbered after them.
// @Tags CarModel
// @Accept json
// @Produce json
// @Param requestBody body []SortOrderUpdateRequest true "Sort order updates"
// @Success 200 {object} InfoResponse
// @Failure 400 {object} ErrorResponse
// @Router /carmodels/sort-order [put]
func (handler *carModelHandler) ReconcileSortOrder(ctx *gin.Context) {
	var request []SortOrderUpdateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid sort order data: %v", err))
		return
	}

	if err := handler.orderingService.Reconcile(ctx, toSortOrderUpdates(request)); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: fmt.Sprintf("updated sort order of %d car models", len(request))})
}

// ListBrands handles the GET request to list all brands
// @Summary List brands
// @Tags Lookup
// @Produce json
// @Success 200 {array} BrandResponse
// @Router /brands [get]
func (handler *carModelHandler) ListBrands(ctx *gin.Context) {
	brands, err := handler.carModelService.ListBrands(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	var listResponse = []BrandResponse{}
	for _, brand := range brands {
		listResponse = append(listResponse, BrandResponse{BrandID: brand.ID, BrandName: brand.Name})
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// ListClasses handles the GET request to list all classes
// @Summary List classes
// @Tags Lookup
// @Produce json
// @Success 200 {array} ClassResponse
// @Router /classes [get]
func (handler *carModelHandler) ListClasses(ctx *gin.Context) {
	classes, err := handler.carModelService.ListClasses(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	var listResponse = []ClassResponse{}
	for _, class := range classes {
		listResponse = append(listResponse, ClassResponse{ClassID: class.ID, ClassName: class.Name})
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// pathID parses a positive integer path parameter and writes a 400 response when it is not one
func pathID(ctx *gin.Context, name string) (int64, bool) {
	raw := ctx.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		respondBadRequest(ctx, fmt.Sprintf("invalid %s: %s", name, raw))
		return 0, false
	}
	return id, true
}
