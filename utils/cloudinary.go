package utils

import (
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
)

// Cloudinary initializes a Cloudinary client for building image delivery
// URLs. It returns nil when no cloud name is configured.
func Cloudinary(cloudName, apiKey, apiSecret string) (*cloudinary.Cloudinary, error) {
	if cloudName == "" {
		return nil, nil
	}
	if apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("utils.Cloudinary: failed to initialize Cloudinary: %w", err)
	}
	return cld, nil
}
