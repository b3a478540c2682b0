package file

import (
	"encoding/json"

	"github.com/pkg/errors"
)

const (
	MissingMetadataErrorFormat  = "Archive %s is missing its metadata file"
	InvalidMetadataErrorFormat  = "Metadata in archive %s is invalid"
	MissingFileErrorFormat      = "File %s named in the metadata is missing from the archive"
	ChecksumMismatchErrorFormat = "Checksum for file %s does not match the metadata"
	ExtraFileErrorFormat        = "File %s in the archive is not named in the metadata"
	UnsafeFilePathErrorFormat   = "File %s would escape the extraction directory"
)

type tarReader interface {
	ReadFile(fileName string) ([]byte, error)
	FileMd5s() (map[string]string, error)
	TarFilePath() string
}

// Validator checks an exported archive against its own metadata: every
// named file present with a matching digest, nothing extra, no file name
// that would escape the extraction directory.
type Validator struct {
	reader tarReader
}

func NewValidator(reader tarReader) *Validator {
	return &Validator{reader: reader}
}

func (v *Validator) Validate() error {
	metadataContents, err := v.reader.ReadFile(MetadataFileName)
	if err != nil {
		return errors.Wrapf(err, MissingMetadataErrorFormat, v.reader.TarFilePath())
	}

	var metadata Metadata
	if err := json.Unmarshal(metadataContents, &metadata); err != nil {
		return errors.Wrapf(err, InvalidMetadataErrorFormat, v.reader.TarFilePath())
	}

	fileMd5s, err := v.reader.FileMd5s()
	if err != nil {
		return err
	}
	delete(fileMd5s, MetadataFileName)

	for _, digest := range metadata.FileDigests {
		if unsafeName(digest.Name) {
			return errors.Errorf(UnsafeFilePathErrorFormat, digest.Name)
		}

		actual, ok := fileMd5s[digest.Name]
		if !ok {
			return errors.Errorf(MissingFileErrorFormat, digest.Name)
		}
		if actual != digest.MD5Checksum {
			return errors.Errorf(ChecksumMismatchErrorFormat, digest.Name)
		}
		delete(fileMd5s, digest.Name)
	}

	for name := range fileMd5s {
		return errors.Errorf(ExtraFileErrorFormat, name)
	}

	return nil
}
