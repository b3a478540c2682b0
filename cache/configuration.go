package cache

import "time"

const DefaultDownloadURLExpiryMargin = 30 * time.Second

// Configuration selects which field families the decorator caches.
// A disabled family is always fetched from the inner source.
type Configuration struct {
	AssetProperties  bool
	DatasetLists     bool
	FileLists        bool
	DownloadURLs     bool
	FieldDefinitions bool

	// DownloadURLExpiryMargin is how long before a signed URL's expiry
	// it stops being served from cache.
	DownloadURLExpiryMargin time.Duration
}

// AllEnabled caches every field family with the default URL expiry margin.
func AllEnabled() Configuration {
	return Configuration{
		AssetProperties:         true,
		DatasetLists:            true,
		FileLists:               true,
		DownloadURLs:            true,
		FieldDefinitions:        true,
		DownloadURLExpiryMargin: DefaultDownloadURLExpiryMargin,
	}
}
