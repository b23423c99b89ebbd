package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atelierhub/design-collab/internal/api/metrics"
	"github.com/atelierhub/design-collab/internal/core/ports"
)

// UploadHandler accepts image uploads and hands them to the blob store.
type UploadHandler struct {
	blobs ports.BlobStore
}

func NewUploadHandler(blobs ports.BlobStore) *UploadHandler {
	return &UploadHandler{blobs: blobs}
}

type uploadResponse struct {
	ImageURL string `json:"imageUrl"`
}

// Upload handles POST /upload-image. The file arrives as multipart form field
// "image"; the response carries the URL it can be fetched from.
//
// @Summary      Upload an image
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "Image file"
// @Success      200    {object}  uploadResponse
// @Failure      500    {object}  errorResponse
// @Router       /upload-image [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "image file is required"})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	url, err := h.blobs.Store(c.Request().Context(), fileHeader.Filename, src)
	if err != nil {
		return fmt.Errorf("store upload: %w", err)
	}

	metrics.UploadsTotal.Inc()
	return c.JSON(http.StatusOK, uploadResponse{ImageURL: url})
}
