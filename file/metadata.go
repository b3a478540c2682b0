package file

// MetadataFileName is the name of the manifest entry inside an exported
// archive.
const MetadataFileName = "asset_metadata"

// Metadata describes an exported archive: where it came from, when, and
// the digest of every file it carries.
type Metadata struct {
	ToolVersion string
	ExportID    string
	ExportedAt  string
	ProjectID   string
	AssetID     string
	AssetName   string
	Version     string
	FileDigests []Digest
}

type Digest struct {
	Name        string
	MD5Checksum string
}
