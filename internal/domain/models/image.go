package models

// ImageChangeKind says what an update does to an imageUrl field.
type ImageChangeKind int

const (
	ImageNoChange ImageChangeKind = iota
	ImageReplace
	ImageClear
)

// ImageChange is the tagged update for an optional image reference.
// URL is only meaningful when Kind is ImageReplace.
type ImageChange struct {
	Kind ImageChangeKind
	URL  string
}

// KeepImage leaves the stored image untouched.
func KeepImage() ImageChange { return ImageChange{Kind: ImageNoChange} }

// ReplaceImage stores url as the new image reference.
func ReplaceImage(url string) ImageChange { return ImageChange{Kind: ImageReplace, URL: url} }

// ClearImage removes the stored image reference.
func ClearImage() ImageChange { return ImageChange{Kind: ImageClear} }

// Apply returns the image reference that results from applying c to current.
func (c ImageChange) Apply(current string) string {
	switch c.Kind {
	case ImageReplace:
		return c.URL
	case ImageClear:
		return ""
	default:
		return current
	}
}
