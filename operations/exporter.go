package operations

import (
	"crypto/md5"
	"encoding/base64"
	"encoding/json"
	"log"
	"time"

	"github.com/gofrs/uuid"
	"github.com/pkg/errors"

	"github.com/quarryhq/quarry-courier/file"
)

const (
	ManifestLookupFailureMessage = "Failed reading the local manifest"
	StoredFileReadFailureFormat  = "Failed reading the local copy of %s"
	CorruptLocalCopyErrorFormat  = "Local copy of %s does not match its manifest digest, pull the asset version again"
	ArchiveWriteFailureMessage   = "Failed writing the archive"
)

type storedSource interface {
	Manifest(projectID, assetID, version string) (file.Manifest, error)
	Read(projectID, assetID, version, name string) ([]byte, error)
}

//go:generate counterfeiter . tarWriter
type tarWriter interface {
	AddFile([]byte, string) error
	Close() error
}

// ExportExecutor writes a pulled asset version to a tar archive. The
// archive carries every stored file plus a metadata entry describing the
// export and the digest of each file.
type ExportExecutor struct {
	source      storedSource
	tw          tarWriter
	toolVersion string
	logger      *log.Logger
}

func NewExporter(source storedSource, tw tarWriter, toolVersion string, logger *log.Logger) ExportExecutor {
	return ExportExecutor{source: source, tw: tw, toolVersion: toolVersion, logger: logger}
}

func (e ExportExecutor) Export(projectID, assetID, version, assetName string) error {
	defer e.tw.Close()

	manifest, err := e.source.Manifest(projectID, assetID, version)
	if err != nil {
		return errors.Wrap(err, ManifestLookupFailureMessage)
	}

	metadata := file.Metadata{
		ToolVersion: e.toolVersion,
		ExportID:    uuid.Must(uuid.NewV4()).String(),
		ExportedAt:  time.Now().UTC().Format(time.RFC3339),
		ProjectID:   projectID,
		AssetID:     assetID,
		AssetName:   assetName,
		Version:     version,
	}

	for _, entry := range manifest.Entries {
		contents, err := e.source.Read(projectID, assetID, version, entry.Name)
		if err != nil {
			return errors.Wrapf(err, StoredFileReadFailureFormat, entry.Name)
		}

		sum := md5.Sum(contents)
		digest := base64.StdEncoding.EncodeToString(sum[:])
		if digest != entry.MD5Checksum {
			return errors.Errorf(CorruptLocalCopyErrorFormat, entry.Name)
		}

		if err := e.tw.AddFile(contents, entry.Name); err != nil {
			return errors.Wrap(err, ArchiveWriteFailureMessage)
		}
		metadata.FileDigests = append(metadata.FileDigests, file.Digest{
			Name:        entry.Name,
			MD5Checksum: digest,
		})
	}

	metadataContents, err := json.Marshal(metadata)
	if err != nil {
		return err
	}
	if err := e.tw.AddFile(metadataContents, file.MetadataFileName); err != nil {
		return errors.Wrap(err, ArchiveWriteFailureMessage)
	}

	e.logger.Printf("Exported %d files from asset %s version %s", len(manifest.Entries), assetID, version)
	return nil
}
