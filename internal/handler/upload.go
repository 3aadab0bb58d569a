package handler

import (
	"mime/multipart"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mateusfigmelo/msc-backend/pkg/storage"
)

// imageFormFile is the multipart field name clients upload flyers under.
const imageFormFile = "image"

// uploadFormImage stores the uploaded flyer, if any, and returns its URL.
// An empty URL with a nil error means the request carried no file.
func uploadFormImage(c echo.Context, uploader storage.Uploader, directory string) (string, error) {
	fileHeader, err := c.FormFile(imageFormFile)
	if err != nil {
		// No file attached; JSON requests provide imageUrl directly.
		return "", nil
	}
	return storeImage(c, uploader, directory, fileHeader)
}

func storeImage(c echo.Context, uploader storage.Uploader, directory string, fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	return uploader.Upload(c.Request().Context(), directory, fileHeader.Filename, file, fileHeader.Size, contentType)
}

// parseDateTime accepts the RFC3339 timestamps the frontend sends.
func parseDateTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, value)
}
