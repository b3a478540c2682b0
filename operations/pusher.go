package operations

import (
	"context"
	"crypto/md5"
	"encoding/base64"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/quarryhq/quarry-courier/quarry"
)

const (
	ContentMD5HeaderKey = "Content-MD5"

	SourceWalkFailureFormat       = "Failed walking source directory %s"
	EmptySourceErrorFormat        = "No files found under %s"
	AssetCreationFailureMessage   = "Failed creating the asset"
	VersionCreationFailureMessage = "Failed opening a new asset version"
	FileRegistrationFailureFormat = "Failed registering %s"
	SourceFileOpenFailureFormat   = "Failed opening %s"
	UploadRequestFailureFormat    = "Failed uploading %s"
	UploadStatusErrorFormat       = "Unexpected response %d uploading %s"
	FinalizeFileFailureFormat     = "Failed finalizing %s"
	MetadataUpdateFailureMessage  = "Failed updating the asset after upload"
)

//go:generate counterfeiter . pushService
type pushService interface {
	CreateAsset(projectID string, input quarry.CreateAssetInput) (quarry.Asset, error)
	CreateAssetVersion(projectID, assetID string) (quarry.Asset, error)
	CreateFile(projectID, assetID, version, datasetID string, input quarry.CreateFileInput) (quarry.UploadInfo, error)
	FinalizeFile(projectID, assetID, version, datasetID, filePath string) (quarry.FileInfo, error)
	UpdateAsset(projectID, assetID, version string, input quarry.UpdateAssetInput) (quarry.Asset, error)
	StartTransformation(projectID, assetID, version, datasetID, workflowType string) (quarry.Transformation, error)
}

// Pusher uploads a local directory as a new asset or a new version of an
// existing one. Each file is registered with its digest, written to the
// signed URL the service hands back, then finalized.
type Pusher struct {
	service        pushService
	client         httpClient
	maxConcurrency int
	logger         *log.Logger
}

type PushInput struct {
	ProjectID string

	// AssetID selects the asset to open a new version of. Leave it empty
	// to create a new asset from Name, Type, Description and Tags.
	AssetID     string
	Name        string
	Type        string
	Description string
	Tags        []string

	DatasetID string
	SourceDir string

	// Optional follow-ups once every file is committed.
	Status       string
	Metadata     map[string]interface{}
	WorkflowType string
}

type PushResult struct {
	Asset          quarry.Asset
	Transformation quarry.Transformation
	FileCount      int
	TotalBytes     int64
}

type sourceFile struct {
	name string
	path string
	size int64
}

func NewPusher(service pushService, client httpClient, maxConcurrency int, logger *log.Logger) *Pusher {
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}
	return &Pusher{
		service:        service,
		client:         client,
		maxConcurrency: maxConcurrency,
		logger:         logger,
	}
}

func (p *Pusher) Push(ctx context.Context, input PushInput) (PushResult, error) {
	files, err := sourceFiles(input.SourceDir)
	if err != nil {
		return PushResult{}, err
	}
	if len(files) == 0 {
		return PushResult{}, errors.Errorf(EmptySourceErrorFormat, input.SourceDir)
	}

	asset, err := p.resolveAsset(input)
	if err != nil {
		return PushResult{}, err
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(p.maxConcurrency)
	for _, f := range files {
		f := f
		group.Go(func() error {
			return p.upload(groupCtx, input.ProjectID, asset, input.DatasetID, f)
		})
	}
	if err := group.Wait(); err != nil {
		return PushResult{}, err
	}

	result := PushResult{Asset: asset, FileCount: len(files)}
	for _, f := range files {
		result.TotalBytes += f.size
	}

	if input.Status != "" || len(input.Metadata) > 0 {
		patched, err := p.service.UpdateAsset(input.ProjectID, asset.ID, asset.Version, quarry.UpdateAssetInput{
			Status:   input.Status,
			Metadata: input.Metadata,
		})
		if err != nil {
			return PushResult{}, errors.Wrap(err, MetadataUpdateFailureMessage)
		}
		result.Asset = patched
	}

	if input.WorkflowType != "" {
		transformation, err := p.service.StartTransformation(input.ProjectID, asset.ID, asset.Version, input.DatasetID, input.WorkflowType)
		if err != nil {
			return PushResult{}, errors.Wrapf(err, TransformationStartFailureFormat, input.WorkflowType)
		}
		p.logger.Printf("Started %s transformation %s", transformation.WorkflowType, transformation.ID)
		result.Transformation = transformation
	}

	p.logger.Printf("Pushed %d files (%s) to asset %s version %s",
		result.FileCount, humanize.Bytes(uint64(result.TotalBytes)), result.Asset.ID, result.Asset.Version)
	return result, nil
}

func (p *Pusher) resolveAsset(input PushInput) (quarry.Asset, error) {
	if input.AssetID == "" {
		asset, err := p.service.CreateAsset(input.ProjectID, quarry.CreateAssetInput{
			Name:        input.Name,
			Type:        input.Type,
			Description: input.Description,
			Tags:        input.Tags,
		})
		if err != nil {
			return quarry.Asset{}, errors.Wrap(err, AssetCreationFailureMessage)
		}
		p.logger.Printf("Created asset %s (%s)", asset.Name, asset.ID)
		return asset, nil
	}

	asset, err := p.service.CreateAssetVersion(input.ProjectID, input.AssetID)
	if err != nil {
		return quarry.Asset{}, errors.Wrap(err, VersionCreationFailureMessage)
	}
	p.logger.Printf("Opened version %s of asset %s", asset.Version, asset.ID)
	return asset, nil
}

func (p *Pusher) upload(ctx context.Context, projectID string, asset quarry.Asset, datasetID string, f sourceFile) error {
	digest, err := fileDigest(f.path)
	if err != nil {
		return errors.Wrapf(err, SourceFileOpenFailureFormat, f.path)
	}

	info, err := p.service.CreateFile(projectID, asset.ID, asset.Version, datasetID, quarry.CreateFileInput{
		Path:        f.name,
		SizeBytes:   f.size,
		MD5Checksum: digest,
	})
	if err != nil {
		return errors.Wrapf(err, FileRegistrationFailureFormat, f.name)
	}

	contents, err := os.Open(f.path)
	if err != nil {
		return errors.Wrapf(err, SourceFileOpenFailureFormat, f.path)
	}
	defer contents.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, info.UploadURL, contents)
	if err != nil {
		return errors.Wrapf(err, UploadRequestFailureFormat, f.name)
	}
	req.ContentLength = f.size
	req.Header.Set(ContentMD5HeaderKey, digest)

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, UploadRequestFailureFormat, f.name)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return errors.Errorf(UploadStatusErrorFormat, resp.StatusCode, f.name)
	}

	if _, err := p.service.FinalizeFile(projectID, asset.ID, asset.Version, datasetID, f.name); err != nil {
		return errors.Wrapf(err, FinalizeFileFailureFormat, f.name)
	}

	p.logger.Printf("Uploaded %s (%s)", f.name, humanize.Bytes(uint64(f.size)))
	return nil
}

func sourceFiles(dir string) ([]sourceFile, error) {
	var files []sourceFile
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, sourceFile{name: filepath.ToSlash(rel), path: path, size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, SourceWalkFailureFormat, dir)
	}
	return files, nil
}

func fileDigest(path string) (string, error) {
	contents, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer contents.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, contents); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(hash.Sum(nil)), nil
}
