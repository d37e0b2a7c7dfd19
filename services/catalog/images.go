package catalog

import (
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
)

// ImageResolver turns a stored image reference into a URL clients can load.
type ImageResolver interface {
	Resolve(ref string) (string, error)
}

// CloudinaryImageResolver treats references that are not absolute URLs as
// Cloudinary public IDs.
type CloudinaryImageResolver struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryImageResolver(cld *cloudinary.Cloudinary) *CloudinaryImageResolver {
	return &CloudinaryImageResolver{cld: cld}
}

func (r *CloudinaryImageResolver) Resolve(ref string) (string, error) {
	if ref == "" || isAbsoluteURL(ref) {
		return ref, nil
	}
	img, err := r.cld.Image(ref)
	if err != nil {
		return "", fmt.Errorf("CloudinaryImageResolver: failed to build asset: %w", err)
	}
	url, err := img.String()
	if err != nil {
		return "", fmt.Errorf("CloudinaryImageResolver: failed to build URL: %w", err)
	}
	return url, nil
}

func isAbsoluteURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, "//")
}
