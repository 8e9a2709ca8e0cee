package api

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cooknest/backend/internal/middleware"
	"github.com/cooknest/backend/internal/service"
)

// maxImageSize caps uploads at 5 MB.
const maxImageSize = 5 << 20

// ImageHandler accepts image uploads and hands back blob-store URLs.
type ImageHandler struct {
	imageService *service.ImageService
	authService  *service.AuthService
}

func NewImageHandler(imageService *service.ImageService, authService *service.AuthService) *ImageHandler {
	return &ImageHandler{
		imageService: imageService,
		authService:  authService,
	}
}

func (h *ImageHandler) RegisterRoutes(router *gin.RouterGroup) {
	images := router.Group("/images")
	images.Use(middleware.AuthMiddleware(h.authService))
	{
		images.POST("", h.UploadImage)
	}
}

func (h *ImageHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image uploaded"})
		return
	}
	if fileHeader.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image too large"})
		return
	}

	// A missing tag is treated the same as an unrecognised one.
	imageType := c.PostForm("image_type")

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Image upload failed"})
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Image upload failed"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := h.imageService.UploadImage(c.Request.Context(), data, contentType, imageType)
	if err != nil {
		if errors.Is(err, service.ErrUnknownImageType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown image type"})
			return
		}
		log.Printf("[ImageHandler] upload failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image upload failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Image uploaded successfully",
		"imageUrl": url,
	})
}
