package utils

import (
	"advice-service/internal/pkg/constvars"
	"encoding/base64"
	"fmt"
	"strings"
)

// DecodeBase64Image accepts either a bare base64 payload or a data URI
// (data:image/png;base64,...) and returns the raw bytes plus the file
// extension inferred from the content type.
func DecodeBase64Image(input string) ([]byte, string, error) {
	extension := ".png"

	if strings.HasPrefix(input, "data:") {
		parts := strings.SplitN(input, ",", 2)
		if len(parts) != 2 {
			return nil, "", fmt.Errorf("malformed data URI")
		}
		meta := parts[0]
		input = parts[1]

		switch {
		case strings.Contains(meta, "image/png"):
			extension = ".png"
		case strings.Contains(meta, "image/jpeg"), strings.Contains(meta, "image/jpg"):
			extension = ".jpg"
		default:
			return nil, "", fmt.Errorf("unsupported image content type in data URI")
		}
	}

	decoded, err := base64.StdEncoding.DecodeString(input)
	if err != nil {
		return nil, "", err
	}
	return decoded, extension, nil
}

func ValidateImageFormat(fileExtension string) error {
	fileExtension = strings.ToLower(fileExtension)
	for _, allowed := range constvars.ImageAllowedProfilePictureFormats {
		if fileExtension == allowed {
			return nil
		}
	}
	return fmt.Errorf("image format %s is not allowed", fileExtension)
}
