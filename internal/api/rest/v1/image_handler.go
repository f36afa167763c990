package v1

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/MGTheTrain/car-catalog/internal/domain/images"
	"github.com/MGTheTrain/car-catalog/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// Multipart field names of the upload form
const (
	formFieldImages    = "images"
	formFieldImage     = "image"
	formFieldIsDefault = "isDefault"
)

// ImageHandler defines the interface for handling image related operations
type ImageHandler interface {
	Upload(ctx *gin.Context)
	ListByModel(ctx *gin.Context)
	GetDefault(ctx *gin.Context)
	SetDefault(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// imageHandler struct holds the services
type imageHandler struct {
	imageService images.ImageService
	settings     config.ImageSettings
	collector    *Collector
}

// NewImageHandler creates a new ImageHandler. collector may be nil.
func NewImageHandler(imageService images.ImageService, settings config.ImageSettings, collector *Collector) ImageHandler {
	return &imageHandler{
		imageService: imageService,
		settings:     settings,
		collector:    collector,
	}
}

// Upload handles the POST request to upload one or more images of a car model
// @Summary Upload car model images
// @Description Upload files in the "images" field (or a single "image"). With isDefault=true the first file becomes the default image.
// @Tags Image
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Car model ID"
// @Param images formData file true "Image files"
// @Param isDefault formData bool false "Make the first file the default image"
// @Success 201 {object} UploadImagesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /carmodels/{id}/images [post]
func (handler *imageHandler) Upload(ctx *gin.Context) {
	modelID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		respondBadRequest(ctx, "invalid form data")
		return
	}

	makeFirstDefault := false
	if values := form.Value[formFieldIsDefault]; len(values) > 0 && values[0] != "" {
		makeFirstDefault, err = strconv.ParseBool(values[0])
		if err != nil {
			respondBadRequest(ctx, fmt.Sprintf("invalid %s: %s", formFieldIsDefault, values[0]))
			return
		}
	}

	headers := make([]*multipart.FileHeader, 0, len(form.File[formFieldImages])+1)
	headers = append(headers, form.File[formFieldImages]...)
	headers = append(headers, form.File[formFieldImage]...)
	if len(headers) == 0 {
		respondBadRequest(ctx, "no images provided for upload")
		return
	}

	files := make([]*images.ImageFile, 0, len(headers))
	for _, header := range headers {
		if header.Size > handler.settings.MaxSizeBytes {
			respondBadRequest(ctx, fmt.Sprintf("image %s exceeds the maximum size of %d bytes", header.Filename, handler.settings.MaxSizeBytes))
			return
		}
		file, err := readFormFile(header)
		if err != nil {
			respondBadRequest(ctx, fmt.Sprintf("could not read %s: %v", header.Filename, err))
			return
		}
		files = append(files, file)
	}

	imageIDs, err := handler.imageService.UploadBatch(ctx, modelID, files, makeFirstDefault)
	if err != nil {
		respondError(ctx, err)
		return
	}
	handler.collector.imagesUploaded(len(imageIDs))

	ctx.JSON(http.StatusCreated, UploadImagesResponse{ModelID: modelID, ImageIDs: imageIDs})
}

// ListByModel handles the GET request to list the images of a car model
// @Summary List car model images
// @Tags Image
// @Produce json
// @Param id path int true "Car model ID"
// @Success 200 {array} ImageResponse
// @Failure 404 {object} ErrorResponse
// @Router /carmodels/{id}/images [get]
func (handler *imageHandler) ListByModel(ctx *gin.Context) {
	modelID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	modelImages, err := handler.imageService.ListByModel(ctx, modelID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	var listResponse = []ImageResponse{}
	for _, image := range modelImages {
		listResponse = append(listResponse, newImageResponse(image, &handler.settings))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetDefault handles the GET request to fetch the default image of a car model
// @Summary Get the default image
// @Tags Image
// @Produce json
// @Param id path int true "Car model ID"
// @Success 200 {object} ImageResponse
// @Failure 404 {object} ErrorResponse
// @Router /carmodels/{id}/images/default [get]
func (handler *imageHandler) GetDefault(ctx *gin.Context) {
	modelID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	image, err := handler.imageService.GetDefault(ctx, modelID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newImageResponse(image, &handler.settings))
}

// SetDefault handles the PUT request to make an image the default of its car model
// @Summary Set the default image
// @Tags Image
// @Produce json
// @Param id path int true "Car model ID"
// @Param imageId path int true "Image ID"
// @Success 200 {object} InfoResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /carmodels/{id}/images/{imageId}/default [put]
func (handler *imageHandler) SetDefault(ctx *gin.Context) {
	modelID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	imageID, ok := pathID(ctx, "imageId")
	if !ok {
		return
	}

	if err := handler.imageService.SetDefault(ctx, imageID, modelID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: fmt.Sprintf("image %d is now the default of car model %d", imageID, modelID)})
}

// DeleteByID handles the DELETE request to remove an image
// @Summary Delete an image
// @Tags Image
// @Param id path int true "Image ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /images/{id} [delete]
func (handler *imageHandler) DeleteByID(ctx *gin.Context) {
	imageID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := handler.imageService.Delete(ctx, imageID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func readFormFile(header *multipart.FileHeader) (*images.ImageFile, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &images.ImageFile{Name: header.Filename, Content: content}, nil
}
