package catalog

import (
	"fmt"
	"mime/multipart"
	"strings"
)

const (
	maxImagesPerItem = 3
	maxImageBytes    = 5 * 1024 * 1024
)

// ValidateImages is the pre-network gate on admin uploads: at most three
// files, each an image and at most 5 MB. The returned error text is shown to
// the admin as-is; nothing is sent upstream when it fails.
func ValidateImages(files []*multipart.FileHeader) error {
	if len(files) > maxImagesPerItem {
		return fmt.Errorf("Maximum %d images allowed", maxImagesPerItem)
	}

	for _, file := range files {
		contentType := file.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			return fmt.Errorf("%s is not an image file", file.Filename)
		}
		if file.Size > maxImageBytes {
			return fmt.Errorf("%s is too large (max 5MB)", file.Filename)
		}
	}
	return nil
}
