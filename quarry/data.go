package quarry

import "time"

const (
	AssetTypeModel3D = "model-3d"
	AssetTypeImage   = "image"
	AssetTypeAudio   = "audio"
	AssetTypeVideo   = "video"
	AssetTypeScript  = "script"
	AssetTypeOther   = "other"

	StatusDraft     = "draft"
	StatusInReview  = "in-review"
	StatusApproved  = "approved"
	StatusPublished = "published"

	FileStatusUploading = "uploading"
	FileStatusCommitted = "committed"

	WorkflowThumbnailGeneration = "thumbnail-generation"
	WorkflowMeshOptimization    = "mesh-optimization"
	WorkflowMetadataExtraction  = "metadata-extraction"

	TransformationPending   = "pending"
	TransformationRunning   = "running"
	TransformationSucceeded = "succeeded"
	TransformationFailed    = "failed"
	TransformationCancelled = "cancelled"

	// LatestVersion resolves to the newest version of an asset on the service.
	LatestVersion = "latest"

	// MaxPageLimit is the largest page size the service accepts.
	MaxPageLimit = 100
)

type Project struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

type Asset struct {
	ProjectID   string                 `json:"project_id"`
	ID          string                 `json:"id"`
	Version     string                 `json:"version"`
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	Type        string                 `json:"type"`
	Status      string                 `json:"status"`
	Tags        []string               `json:"tags,omitempty"`
	PreviewFile string                 `json:"preview_file,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt   string                 `json:"created_at"`
	UpdatedAt   string                 `json:"updated_at"`
}

type Dataset struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	SystemTags []string `json:"system_tags,omitempty"`
	FileCount  int      `json:"file_count"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
}

type FileInfo struct {
	Path         string            `json:"path"`
	SizeBytes    int64             `json:"size_bytes"`
	MD5Checksum  string            `json:"md5_checksum"`
	Status       string            `json:"status"`
	Tags         []string          `json:"tags,omitempty"`
	UserMetadata map[string]string `json:"user_metadata,omitempty"`
}

// DownloadInfo is a signed, expiring URL for fetching file content.
type DownloadInfo struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UploadInfo is a signed URL for writing file content with a PUT request.
type UploadInfo struct {
	Path      string    `json:"path"`
	UploadURL string    `json:"upload_url"`
	ExpiresAt time.Time `json:"expires_at"`
}

type FieldDefinition struct {
	Key            string   `json:"key"`
	DisplayName    string   `json:"display_name"`
	Type           string   `json:"type"`
	Multiselect    bool     `json:"multiselect"`
	AcceptedValues []string `json:"accepted_values,omitempty"`
}

type Transformation struct {
	ID           string `json:"id"`
	DatasetID    string `json:"dataset_id"`
	WorkflowType string `json:"workflow_type"`
	Status       string `json:"status"`
	Progress     int    `json:"progress"`
	ErrorMessage string `json:"error_message,omitempty"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// Terminal reports whether the transformation has finished, successfully or not.
func (t Transformation) Terminal() bool {
	switch t.Status {
	case TransformationSucceeded, TransformationFailed, TransformationCancelled:
		return true
	}
	return false
}

type AssetList struct {
	Items []Asset `json:"items"`
	Total int     `json:"total"`
}

type FileList struct {
	Items []FileInfo `json:"items"`
	Total int        `json:"total"`
}

type ListAssetsInput struct {
	Offset int
	Limit  int
	Status string
	Type   string
	Tag    string
}

type SearchAssetsInput struct {
	Text   string   `json:"text,omitempty"`
	Status string   `json:"status,omitempty"`
	Type   string   `json:"type,omitempty"`
	Tags   []string `json:"tags,omitempty"`
	Offset int      `json:"offset"`
	Limit  int      `json:"limit"`
}

type CreateAssetInput struct {
	Name        string                 `json:"name"`
	Type        string                 `json:"type"`
	Description string                 `json:"description,omitempty"`
	Tags        []string               `json:"tags,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// UpdateAssetInput is a partial update; zero-valued fields are left unchanged.
type UpdateAssetInput struct {
	Status      string                 `json:"status,omitempty"`
	Description string                 `json:"description,omitempty"`
	Tags        []string               `json:"tags,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

type CreateFileInput struct {
	Path        string   `json:"path"`
	SizeBytes   int64    `json:"size_bytes"`
	MD5Checksum string   `json:"md5_checksum"`
	Tags        []string `json:"tags,omitempty"`
}
