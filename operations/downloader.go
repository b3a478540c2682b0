package operations

import (
	"context"
	"io"
	"log"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/quarryhq/quarry-courier/file"
	"github.com/quarryhq/quarry-courier/quarry"
)

const (
	AssetResolutionFailureFormat = "Failed resolving asset %s"
	DatasetListFailureFormat     = "Failed listing datasets for asset %s"
	FileListFailureFormat        = "Failed listing files in dataset %s"
	UnknownDatasetErrorFormat    = "Asset has no dataset %s"
	DownloadURLFailureFormat     = "Failed getting a download URL for %s"
	DownloadRequestFailureFormat = "Failed downloading %s"
	DownloadStatusErrorFormat    = "Unexpected response %d downloading %s"
	StoreFileFailureFormat       = "Failed storing %s"
	DigestMismatchErrorFormat    = "Digest for %s did not match the catalog after download"
)

type downloadSource interface {
	Asset(projectID, assetID, version string) (quarry.Asset, error)
	Datasets(projectID, assetID, version string) ([]quarry.Dataset, error)
	ListFiles(projectID, assetID, version, datasetID string, offset, limit int) (quarry.FileList, error)
	FileDownloadURL(projectID, assetID, version, datasetID, filePath string) (quarry.DownloadInfo, error)
}

type fileStore interface {
	Write(projectID, assetID, version, datasetID, filePath string, contents io.Reader) (file.StoredFile, error)
}

type httpClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Downloader pulls an asset version into the local store. Signed URLs
// come from the data source, so a caching source keeps repeat pulls from
// hammering the URL endpoint.
type Downloader struct {
	source         downloadSource
	store          fileStore
	client         httpClient
	maxConcurrency int
	logger         *log.Logger
}

type DownloadSummary struct {
	Asset      quarry.Asset
	Files      []file.StoredFile
	TotalBytes int64
}

type downloadJob struct {
	datasetID string
	file      quarry.FileInfo
}

func NewDownloader(source downloadSource, store fileStore, client httpClient, maxConcurrency int, logger *log.Logger) *Downloader {
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}
	return &Downloader{
		source:         source,
		store:          store,
		client:         client,
		maxConcurrency: maxConcurrency,
		logger:         logger,
	}
}

// Download fetches every file of the requested datasets, verifying each
// against its catalog digest. The asset's version field resolves aliases
// such as "latest", so the store always holds a concrete version.
func (d *Downloader) Download(ctx context.Context, projectID, assetID, version string, datasetIDs []string) (DownloadSummary, error) {
	asset, err := d.source.Asset(projectID, assetID, version)
	if err != nil {
		return DownloadSummary{}, errors.Wrapf(err, AssetResolutionFailureFormat, assetID)
	}
	d.logger.Printf("Pulling asset %s version %s from project %s", asset.Name, asset.Version, projectID)

	datasets, err := d.source.Datasets(projectID, assetID, asset.Version)
	if err != nil {
		return DownloadSummary{}, errors.Wrapf(err, DatasetListFailureFormat, assetID)
	}
	selected, err := selectDatasets(datasets, datasetIDs)
	if err != nil {
		return DownloadSummary{}, err
	}

	var jobs []downloadJob
	for _, dataset := range selected {
		pager := quarry.NewFilePager(d.source, projectID, assetID, asset.Version, dataset.ID, quarry.MaxPageLimit)
		for {
			page, err := pager.Next()
			if err == quarry.NoMorePagesError {
				break
			}
			if err != nil {
				return DownloadSummary{}, errors.Wrapf(err, FileListFailureFormat, dataset.ID)
			}
			for _, info := range page {
				jobs = append(jobs, downloadJob{datasetID: dataset.ID, file: info})
			}
		}
	}

	stored := make([]file.StoredFile, len(jobs))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(d.maxConcurrency)
	for i, job := range jobs {
		i, job := i, job
		group.Go(func() error {
			entry, err := d.fetch(groupCtx, projectID, assetID, asset.Version, job)
			if err != nil {
				return err
			}
			stored[i] = entry
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return DownloadSummary{}, err
	}

	summary := DownloadSummary{Asset: asset, Files: stored}
	for _, entry := range stored {
		summary.TotalBytes += entry.SizeBytes
	}
	d.logger.Printf("Pulled %d files (%s)", len(stored), humanize.Bytes(uint64(summary.TotalBytes)))
	return summary, nil
}

func (d *Downloader) fetch(ctx context.Context, projectID, assetID, version string, job downloadJob) (file.StoredFile, error) {
	info, err := d.source.FileDownloadURL(projectID, assetID, version, job.datasetID, job.file.Path)
	if err != nil {
		return file.StoredFile{}, errors.Wrapf(err, DownloadURLFailureFormat, job.file.Path)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, info.URL, nil)
	if err != nil {
		return file.StoredFile{}, errors.Wrapf(err, DownloadRequestFailureFormat, job.file.Path)
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return file.StoredFile{}, errors.Wrapf(err, DownloadRequestFailureFormat, job.file.Path)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return file.StoredFile{}, errors.Errorf(DownloadStatusErrorFormat, resp.StatusCode, job.file.Path)
	}

	entry, err := d.store.Write(projectID, assetID, version, job.datasetID, job.file.Path, resp.Body)
	if err != nil {
		return file.StoredFile{}, errors.Wrapf(err, StoreFileFailureFormat, job.file.Path)
	}
	if job.file.MD5Checksum != "" && entry.MD5Checksum != job.file.MD5Checksum {
		return file.StoredFile{}, errors.Errorf(DigestMismatchErrorFormat, job.file.Path)
	}

	d.logger.Printf("Downloaded %s (%s)", entry.Name, humanize.Bytes(uint64(entry.SizeBytes)))
	return entry, nil
}

func selectDatasets(available []quarry.Dataset, requested []string) ([]quarry.Dataset, error) {
	if len(requested) == 0 {
		return available, nil
	}

	byID := make(map[string]quarry.Dataset, len(available))
	for _, dataset := range available {
		byID[dataset.ID] = dataset
	}

	var selected []quarry.Dataset
	for _, id := range requested {
		dataset, ok := byID[id]
		if !ok {
			return nil, errors.Errorf(UnknownDatasetErrorFormat, id)
		}
		selected = append(selected, dataset)
	}
	return selected, nil
}
