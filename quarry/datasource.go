package quarry

// DataSource is the read surface of the asset service that entity consumers
// (downloads, listings, caching) depend on. *Service implements it against
// the live service; cache.DataSource decorates any implementation with
// field-level caching.
//
//go:generate counterfeiter . DataSource
type DataSource interface {
	Asset(projectID, assetID, version string) (Asset, error)
	Datasets(projectID, assetID, version string) ([]Dataset, error)
	ListFiles(projectID, assetID, version, datasetID string, offset, limit int) (FileList, error)
	FileDownloadURL(projectID, assetID, version, datasetID, filePath string) (DownloadInfo, error)
	FieldDefinitions() ([]FieldDefinition, error)
}
