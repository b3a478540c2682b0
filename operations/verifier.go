package operations

import (
	"encoding/json"
	"log"

	"github.com/pkg/errors"

	"github.com/quarryhq/quarry-courier/file"
)

const (
	ArchiveInvalidErrorFormat     = "Archive %s failed validation"
	ArchiveMetadataFailureMessage = "Failed reading the archive metadata"
)

type archiveValidator interface {
	Validate() error
}

type archiveReader interface {
	ReadFile(fileName string) ([]byte, error)
	TarFilePath() string
}

// VerifyExecutor checks an exported archive end to end and reports what
// it holds.
type VerifyExecutor struct {
	validator archiveValidator
	reader    archiveReader
	logger    *log.Logger
}

func NewVerifier(validator archiveValidator, reader archiveReader, logger *log.Logger) VerifyExecutor {
	return VerifyExecutor{validator: validator, reader: reader, logger: logger}
}

func (v VerifyExecutor) Verify() (file.Metadata, error) {
	if err := v.validator.Validate(); err != nil {
		return file.Metadata{}, errors.Wrapf(err, ArchiveInvalidErrorFormat, v.reader.TarFilePath())
	}

	contents, err := v.reader.ReadFile(file.MetadataFileName)
	if err != nil {
		return file.Metadata{}, errors.Wrap(err, ArchiveMetadataFailureMessage)
	}
	var metadata file.Metadata
	if err := json.Unmarshal(contents, &metadata); err != nil {
		return file.Metadata{}, errors.Wrap(err, ArchiveMetadataFailureMessage)
	}

	v.logger.Printf("Archive %s holds %d files from asset %s version %s",
		v.reader.TarFilePath(), len(metadata.FileDigests), metadata.AssetID, metadata.Version)
	return metadata, nil
}
