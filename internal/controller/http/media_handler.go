package http

import (
	"context"
	"io"
	"net/http"
	"strings"

	"blog-api/internal/entity"
	"blog-api/internal/repo/persistent"
	"blog-api/pkg/logger"
	"blog-api/pkg/s3"

	"github.com/gin-gonic/gin"
)

// MaxUploadSize caps a single media upload.
const MaxUploadSize = 20 << 20

// Uploader stores media objects. *s3.Client satisfies it.
type Uploader interface {
	UploadFile(ctx context.Context, key string, body io.ReadSeeker, contentType string) (string, error)
	DeleteFile(ctx context.Context, key string) error
}

type MediaHandler struct {
	media    persistent.MediaRepository
	uploader Uploader
	logger   *logger.Logger
}

// NewMediaHandler builds the upload handler. uploader is nil when storage is not configured.
func NewMediaHandler(media persistent.MediaRepository, uploader Uploader, logger *logger.Logger) *MediaHandler {
	return &MediaHandler{
		media:    media,
		uploader: uploader,
		logger:   logger,
	}
}

// mediaType is the declared type, or the major part of the content type.
func mediaType(declared, contentType string) string {
	if declared != "" {
		return declared
	}
	if major, _, ok := strings.Cut(contentType, "/"); ok && major != "" {
		return major
	}
	return "file"
}

// Upload stores the multipart "file" and records a Media row owned by the caller.
func (h *MediaHandler) Upload(c *gin.Context) {
	if h.uploader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Media storage is not configured"})
		return
	}

	userID := c.GetString("user_id")

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadSize)
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A file is required"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	ctx := c.Request.Context()
	key := s3.ObjectKey("users/"+userID, header.Filename)
	url, err := h.uploader.UploadFile(ctx, key, file, contentType)
	if err != nil {
		h.logger.Error("Failed to upload media for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload file"})
		return
	}

	media := &entity.Media{
		URL:    url,
		Type:   mediaType(c.PostForm("type"), contentType),
		UserID: &userID,
	}
	if postID := c.PostForm("postId"); postID != "" {
		media.PostID = &postID
	}

	if err := h.media.Create(ctx, media); err != nil {
		h.logger.Error("Failed to save media for user %s: %v", userID, err)
		if err := h.uploader.DeleteFile(ctx, key); err != nil {
			h.logger.Warn("Failed to remove orphaned upload %s: %v", key, err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save media"})
		return
	}

	c.JSON(http.StatusCreated, formatMedia(media))
}
