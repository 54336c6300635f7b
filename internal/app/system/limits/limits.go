// internal/app/system/limits/limits.go
package limits

// Request body size limits for the JSON and multipart endpoints.
// These limits help prevent memory exhaustion from oversized requests.
const (
	// MaxJSONBodySize is the maximum size for JSON request bodies.
	MaxJSONBodySize = 1 << 20 // 1 MB

	// MaxImageUploadSize caps an uploaded project/workspace image.
	// Images are inlined as data: URLs, so keep this small.
	MaxImageUploadSize = 1 << 20 // 1 MB

	// MaxMultipartMemory is passed to ParseMultipartForm.
	MaxMultipartMemory = 2 << 20 // 2 MB

	// MaxBulkTaskUpdates caps the size of one bulk task update.
	MaxBulkTaskUpdates = 500
)
