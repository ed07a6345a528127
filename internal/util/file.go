package util

import (
	"errors"
	"io"
	"net/http"
	"strings"
)

// ValidateMimeType inspecciona los primeros bytes del archivo y comprueba que
// el tipo detectado esté permitido. allowedTypes admite prefijos ("image/") o
// tipos completos.
func ValidateMimeType(reader io.Reader, allowedTypes []string) (string, error) {
	buffer := make([]byte, 512)
	n, err := reader.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}

	mimeType := http.DetectContentType(buffer[:n])

	for _, allowed := range allowedTypes {
		if strings.HasPrefix(mimeType, allowed) || mimeType == allowed {
			return mimeType, nil
		}
	}

	return mimeType, errors.New("invalid file type: " + mimeType)
}

// IsImage indica si el MIME corresponde a una imagen.
func IsImage(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/")
}
