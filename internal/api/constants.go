package api

// Cache-Control header values.
const (
	// CacheOneDay applies to rendered images.
	CacheOneDay  = "public, max-age=86400"
	CacheNoStore = "no-cache"
)

// Content types served outside the JSON envelope.
const (
	ContentTypePNG = "image/png"
)
