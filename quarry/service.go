package quarry

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
)

const (
	ProjectsPath              = "/api/v1/projects"
	FieldDefinitionsPath      = "/api/v1/field-definitions"
	AssetsPathFormat          = "/api/v1/projects/%s/assets"
	AssetSearchPathFormat     = "/api/v1/projects/%s/assets/search"
	AssetVersionsPathFormat   = "/api/v1/projects/%s/assets/%s/versions"
	AssetPathFormat           = "/api/v1/projects/%s/assets/%s/versions/%s"
	DatasetsPathFormat        = "/api/v1/projects/%s/assets/%s/versions/%s/datasets"
	DatasetPathFormat         = "/api/v1/projects/%s/assets/%s/versions/%s/datasets/%s"
	FilesPathFormat           = "/api/v1/projects/%s/assets/%s/versions/%s/datasets/%s/files"
	FilePathFormat            = "/api/v1/projects/%s/assets/%s/versions/%s/datasets/%s/files/%s"
	FileDownloadURLPathFormat = "/api/v1/projects/%s/assets/%s/versions/%s/datasets/%s/files/%s/download-url"
	FileFinalizePathFormat    = "/api/v1/projects/%s/assets/%s/versions/%s/datasets/%s/files/%s/finalize"
	TransformationsPathFormat = "/api/v1/projects/%s/assets/%s/versions/%s/datasets/%s/transformations"
	TransformationPathFormat  = "/api/v1/projects/%s/transformations/%s"

	RequestFailureErrorFormat     = "Failed %s %s"
	ReadResponseBodyFailureFormat = "Unable to read response from %s"
	InvalidResponseErrorFormat    = "Invalid response format for request to %s"
	MarshalRequestBodyError       = "Failed to marshal request body"
)

//go:generate counterfeiter . Requestor
type Requestor interface {
	Invoke(input RequestInput) (RequestOutput, error)
}

// Service is a thin typed wrapper over the asset service REST endpoints.
// Every method performs one request and maps the response to domain types;
// non-2xx responses surface as *ServiceError.
type Service struct {
	Requestor Requestor
}

func (s *Service) Projects() ([]Project, error) {
	var out struct {
		Items []Project `json:"items"`
	}
	if err := s.getJSON(ProjectsPath, nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (s *Service) FieldDefinitions() ([]FieldDefinition, error) {
	var out struct {
		Items []FieldDefinition `json:"items"`
	}
	if err := s.getJSON(FieldDefinitionsPath, nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (s *Service) ListAssets(projectID string, input ListAssetsInput) (AssetList, error) {
	query := url.Values{}
	query.Set("offset", strconv.Itoa(input.Offset))
	query.Set("limit", strconv.Itoa(clampLimit(input.Limit)))
	if input.Status != "" {
		query.Set("status", input.Status)
	}
	if input.Type != "" {
		query.Set("type", input.Type)
	}
	if input.Tag != "" {
		query.Set("tag", input.Tag)
	}

	var list AssetList
	err := s.getJSON(fmt.Sprintf(AssetsPathFormat, projectID), query, &list)
	return list, err
}

func (s *Service) SearchAssets(projectID string, input SearchAssetsInput) (AssetList, error) {
	input.Limit = clampLimit(input.Limit)

	var list AssetList
	err := s.invokeJSON(http.MethodPost, fmt.Sprintf(AssetSearchPathFormat, projectID), input, http.StatusOK, &list)
	return list, err
}

func (s *Service) Asset(projectID, assetID, version string) (Asset, error) {
	var asset Asset
	err := s.getJSON(fmt.Sprintf(AssetPathFormat, projectID, assetID, version), nil, &asset)
	return asset, err
}

func (s *Service) CreateAsset(projectID string, input CreateAssetInput) (Asset, error) {
	var asset Asset
	err := s.invokeJSON(http.MethodPost, fmt.Sprintf(AssetsPathFormat, projectID), input, http.StatusCreated, &asset)
	return asset, err
}

// CreateAssetVersion opens a new draft version cloned from the latest
// version of the asset.
func (s *Service) CreateAssetVersion(projectID, assetID string) (Asset, error) {
	var asset Asset
	err := s.invokeJSON(http.MethodPost, fmt.Sprintf(AssetVersionsPathFormat, projectID, assetID), nil, http.StatusCreated, &asset)
	return asset, err
}

func (s *Service) UpdateAsset(projectID, assetID, version string, input UpdateAssetInput) (Asset, error) {
	var asset Asset
	err := s.invokeJSON(http.MethodPatch, fmt.Sprintf(AssetPathFormat, projectID, assetID, version), input, http.StatusOK, &asset)
	return asset, err
}

func (s *Service) Datasets(projectID, assetID, version string) ([]Dataset, error) {
	var out struct {
		Items []Dataset `json:"items"`
	}
	if err := s.getJSON(fmt.Sprintf(DatasetsPathFormat, projectID, assetID, version), nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (s *Service) Dataset(projectID, assetID, version, datasetID string) (Dataset, error) {
	var dataset Dataset
	err := s.getJSON(fmt.Sprintf(DatasetPathFormat, projectID, assetID, version, datasetID), nil, &dataset)
	return dataset, err
}

func (s *Service) ListFiles(projectID, assetID, version, datasetID string, offset, limit int) (FileList, error) {
	query := url.Values{}
	query.Set("offset", strconv.Itoa(offset))
	query.Set("limit", strconv.Itoa(clampLimit(limit)))

	var list FileList
	err := s.getJSON(fmt.Sprintf(FilesPathFormat, projectID, assetID, version, datasetID), query, &list)
	return list, err
}

func (s *Service) File(projectID, assetID, version, datasetID, filePath string) (FileInfo, error) {
	var info FileInfo
	err := s.getJSON(fmt.Sprintf(FilePathFormat, projectID, assetID, version, datasetID, url.PathEscape(filePath)), nil, &info)
	return info, err
}

func (s *Service) FileDownloadURL(projectID, assetID, version, datasetID, filePath string) (DownloadInfo, error) {
	var info DownloadInfo
	err := s.getJSON(fmt.Sprintf(FileDownloadURLPathFormat, projectID, assetID, version, datasetID, url.PathEscape(filePath)), nil, &info)
	return info, err
}

// CreateFile registers a file entry on the dataset and returns the signed
// URL its content must be uploaded to before FinalizeFile.
func (s *Service) CreateFile(projectID, assetID, version, datasetID string, input CreateFileInput) (UploadInfo, error) {
	var info UploadInfo
	err := s.invokeJSON(http.MethodPost, fmt.Sprintf(FilesPathFormat, projectID, assetID, version, datasetID), input, http.StatusCreated, &info)
	return info, err
}

func (s *Service) FinalizeFile(projectID, assetID, version, datasetID, filePath string) (FileInfo, error) {
	var info FileInfo
	err := s.invokeJSON(http.MethodPost, fmt.Sprintf(FileFinalizePathFormat, projectID, assetID, version, datasetID, url.PathEscape(filePath)), nil, http.StatusOK, &info)
	return info, err
}

func (s *Service) StartTransformation(projectID, assetID, version, datasetID, workflowType string) (Transformation, error) {
	body := map[string]string{"workflow_type": workflowType}

	var transformation Transformation
	err := s.invokeJSON(http.MethodPost, fmt.Sprintf(TransformationsPathFormat, projectID, assetID, version, datasetID), body, http.StatusCreated, &transformation)
	return transformation, err
}

func (s *Service) Transformation(projectID, transformationID string) (Transformation, error) {
	var transformation Transformation
	err := s.getJSON(fmt.Sprintf(TransformationPathFormat, projectID, transformationID), nil, &transformation)
	return transformation, err
}

func (s *Service) CancelTransformation(projectID, transformationID string) error {
	_, err := s.makeRequest(http.MethodDelete, fmt.Sprintf(TransformationPathFormat, projectID, transformationID), nil, nil, http.StatusNoContent)
	return err
}

func (s *Service) getJSON(path string, query url.Values, out interface{}) error {
	contents, err := s.makeRequest(http.MethodGet, path, query, nil, http.StatusOK)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(contents, out); err != nil {
		return errors.Wrapf(err, InvalidResponseErrorFormat, path)
	}
	return nil
}

func (s *Service) invokeJSON(method, path string, body interface{}, wantStatus int, out interface{}) error {
	var encoded []byte
	if body != nil {
		var err error
		encoded, err = json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, MarshalRequestBodyError)
		}
	}

	contents, err := s.makeRequest(method, path, nil, encoded, wantStatus)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(contents, out); err != nil {
		return errors.Wrapf(err, InvalidResponseErrorFormat, path)
	}
	return nil
}

func (s *Service) makeRequest(method, path string, query url.Values, body []byte, wantStatus int) ([]byte, error) {
	resp, err := s.Requestor.Invoke(RequestInput{
		Method: method,
		Path:   path,
		Query:  query,
		Body:   body,
	})
	if err != nil {
		return nil, errors.Wrapf(err, RequestFailureErrorFormat, method, path)
	}

	defer resp.Body.Close()
	contents, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, ReadResponseBodyFailureFormat, path)
	}

	if resp.StatusCode != wantStatus {
		return nil, errors.Wrapf(errorFromResponse(resp.StatusCode, contents), RequestFailureErrorFormat, method, path)
	}

	return contents, nil
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > MaxPageLimit {
		return MaxPageLimit
	}
	return limit
}
