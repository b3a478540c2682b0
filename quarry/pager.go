package quarry

import "github.com/pkg/errors"

const NoMorePagesMessage = "no more pages"

// NoMorePagesError is returned by a pager's Next once the listing is
// exhausted.
var NoMorePagesError = errors.New(NoMorePagesMessage)

//go:generate counterfeiter . assetLister
type assetLister interface {
	ListAssets(projectID string, input ListAssetsInput) (AssetList, error)
}

// AssetPager fetches an asset listing one page at a time. Iteration ends
// when the service reports a short page or the offset reaches the total.
type AssetPager struct {
	lister    assetLister
	projectID string
	input     ListAssetsInput
	exhausted bool
}

func NewAssetPager(lister assetLister, projectID string, input ListAssetsInput) *AssetPager {
	input.Limit = clampLimit(input.Limit)
	return &AssetPager{lister: lister, projectID: projectID, input: input}
}

func (p *AssetPager) Next() ([]Asset, error) {
	if p.exhausted {
		return nil, NoMorePagesError
	}

	list, err := p.lister.ListAssets(p.projectID, p.input)
	if err != nil {
		return nil, err
	}

	p.input.Offset += len(list.Items)
	if len(list.Items) < p.input.Limit || p.input.Offset >= list.Total {
		p.exhausted = true
	}
	if len(list.Items) == 0 {
		return nil, NoMorePagesError
	}

	return list.Items, nil
}

//go:generate counterfeiter . fileLister
type fileLister interface {
	ListFiles(projectID, assetID, version, datasetID string, offset, limit int) (FileList, error)
}

// FilePager iterates the files of a dataset page by page.
type FilePager struct {
	lister    fileLister
	projectID string
	assetID   string
	version   string
	datasetID string
	offset    int
	limit     int
	exhausted bool
}

func NewFilePager(lister fileLister, projectID, assetID, version, datasetID string, limit int) *FilePager {
	return &FilePager{
		lister:    lister,
		projectID: projectID,
		assetID:   assetID,
		version:   version,
		datasetID: datasetID,
		limit:     clampLimit(limit),
	}
}

func (p *FilePager) Next() ([]FileInfo, error) {
	if p.exhausted {
		return nil, NoMorePagesError
	}

	list, err := p.lister.ListFiles(p.projectID, p.assetID, p.version, p.datasetID, p.offset, p.limit)
	if err != nil {
		return nil, err
	}

	p.offset += len(list.Items)
	if len(list.Items) < p.limit || p.offset >= list.Total {
		p.exhausted = true
	}
	if len(list.Items) == 0 {
		return nil, NoMorePagesError
	}

	return list.Items, nil
}
