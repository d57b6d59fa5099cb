package uploadController

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxImageSize = 5 << 20 // 5MB

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var unsafeChars = regexp.MustCompile(`[^\w\-.]`)

// UploadProductImage stores a product image on disk and returns its public
// URL. Rejects non-image extensions and files over the size cap.
func UploadProductImage(uploadDir string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No file uploaded"})
			return
		}
		if file.Size > maxImageSize {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Image must be smaller than 5MB"})
			return
		}

		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !allowedExtensions[ext] {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Only images are allowed (jpg, jpeg, png, gif, webp)"})
			return
		}

		base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
		base = unsafeChars.ReplaceAllString(base, "_")
		filename := fmt.Sprintf("%s-%d%s", base, time.Now().UnixNano(), ext)

		if err := os.MkdirAll(uploadDir, 0o755); err != nil {
			logger.Error("failed to create upload directory", zap.String("dir", uploadDir), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to store image, please retry"})
			return
		}

		savePath := filepath.Join(uploadDir, filename)
		if err := c.SaveUploadedFile(file, savePath); err != nil {
			logger.Error("failed to save uploaded image", zap.String("path", savePath), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to store image, please retry"})
			return
		}

		logger.Info("product image uploaded",
			zap.String("original", file.Filename),
			zap.String("stored", filename))

		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "Image uploaded successfully",
			"image_url": "/uploads/products/" + filename,
			"filename":  filename,
		})
	}
}

// DeleteProductImage removes a stored image by filename. The filename is
// flattened to its base to keep the delete inside the upload directory.
func DeleteProductImage(uploadDir string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		filename := filepath.Base(c.Param("filename"))
		if filename == "" || filename == "." || filename == string(filepath.Separator) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Filename is required"})
			return
		}

		path := filepath.Join(uploadDir, filename)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Image not found"})
			return
		}
		if err := os.Remove(path); err != nil {
			logger.Error("failed to delete image", zap.String("path", path), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete image, please retry"})
			return
		}

		logger.Info("product image deleted", zap.String("filename", filename))
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Image deleted successfully"})
	}
}
