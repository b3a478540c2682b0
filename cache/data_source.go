package cache

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/quarryhq/quarry-courier/quarry"
)

const keySeparator = "\x00"

// DataSource decorates a quarry.DataSource with field-level caching.
// Reads of an enabled family are served from memory once populated;
// population is single-flight per key. Mutations go to the service
// directly, so callers invalidate after writing.
type DataSource struct {
	inner  quarry.DataSource
	config Configuration

	mutex   sync.RWMutex
	entries map[string]interface{}
	group   singleflight.Group
}

func NewDataSource(inner quarry.DataSource, config Configuration) *DataSource {
	if config.DownloadURLExpiryMargin == 0 {
		config.DownloadURLExpiryMargin = DefaultDownloadURLExpiryMargin
	}
	return &DataSource{
		inner:   inner,
		config:  config,
		entries: map[string]interface{}{},
	}
}

func (d *DataSource) Asset(projectID, assetID, version string) (quarry.Asset, error) {
	if !d.config.AssetProperties {
		return d.inner.Asset(projectID, assetID, version)
	}

	key := cacheKey("asset", projectID, assetID, version)
	value, err := d.fill(key, func() (interface{}, error) {
		return d.inner.Asset(projectID, assetID, version)
	})
	if err != nil {
		return quarry.Asset{}, err
	}
	return value.(quarry.Asset), nil
}

func (d *DataSource) Datasets(projectID, assetID, version string) ([]quarry.Dataset, error) {
	if !d.config.DatasetLists {
		return d.inner.Datasets(projectID, assetID, version)
	}

	key := cacheKey("datasets", projectID, assetID, version)
	value, err := d.fill(key, func() (interface{}, error) {
		return d.inner.Datasets(projectID, assetID, version)
	})
	if err != nil {
		return nil, err
	}
	return value.([]quarry.Dataset), nil
}

func (d *DataSource) ListFiles(projectID, assetID, version, datasetID string, offset, limit int) (quarry.FileList, error) {
	if !d.config.FileLists {
		return d.inner.ListFiles(projectID, assetID, version, datasetID, offset, limit)
	}

	key := cacheKey("files", projectID, assetID, version, datasetID, strconv.Itoa(offset), strconv.Itoa(limit))
	value, err := d.fill(key, func() (interface{}, error) {
		return d.inner.ListFiles(projectID, assetID, version, datasetID, offset, limit)
	})
	if err != nil {
		return quarry.FileList{}, err
	}
	return value.(quarry.FileList), nil
}

func (d *DataSource) FileDownloadURL(projectID, assetID, version, datasetID, filePath string) (quarry.DownloadInfo, error) {
	if !d.config.DownloadURLs {
		return d.inner.FileDownloadURL(projectID, assetID, version, datasetID, filePath)
	}

	key := cacheKey("urls", projectID, assetID, version, datasetID, filePath)
	if value, ok := d.cached(key); ok {
		info := value.(quarry.DownloadInfo)
		if time.Until(info.ExpiresAt) > d.config.DownloadURLExpiryMargin {
			return info, nil
		}
		d.evict(key)
	}

	value, err := d.fill(key, func() (interface{}, error) {
		return d.inner.FileDownloadURL(projectID, assetID, version, datasetID, filePath)
	})
	if err != nil {
		return quarry.DownloadInfo{}, err
	}
	return value.(quarry.DownloadInfo), nil
}

func (d *DataSource) FieldDefinitions() ([]quarry.FieldDefinition, error) {
	if !d.config.FieldDefinitions {
		return d.inner.FieldDefinitions()
	}

	value, err := d.fill("field-definitions", func() (interface{}, error) {
		return d.inner.FieldDefinitions()
	})
	if err != nil {
		return nil, err
	}
	return value.([]quarry.FieldDefinition), nil
}

// Invalidate drops every cached entry for the given asset, all versions
// included. Field definitions are service-wide and survive.
func (d *DataSource) Invalidate(projectID, assetID string) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	for key := range d.entries {
		parts := strings.SplitN(key, keySeparator, 4)
		if len(parts) >= 3 && parts[1] == projectID && parts[2] == assetID {
			delete(d.entries, key)
		}
	}
}

// Reset drops everything.
func (d *DataSource) Reset() {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.entries = map[string]interface{}{}
}

func (d *DataSource) cached(key string) (interface{}, bool) {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	value, ok := d.entries[key]
	return value, ok
}

func (d *DataSource) evict(key string) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	delete(d.entries, key)
}

func (d *DataSource) fill(key string, fetch func() (interface{}, error)) (interface{}, error) {
	if value, ok := d.cached(key); ok {
		return value, nil
	}

	value, err, _ := d.group.Do(key, func() (interface{}, error) {
		if value, ok := d.cached(key); ok {
			return value, nil
		}

		value, err := fetch()
		if err != nil {
			return nil, err
		}

		d.mutex.Lock()
		d.entries[key] = value
		d.mutex.Unlock()
		return value, nil
	})
	return value, err
}

func cacheKey(parts ...string) string {
	return strings.Join(parts, keySeparator)
}
