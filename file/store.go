package file

import (
	"crypto/md5"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	ManifestFileName = "courier_manifest.json"

	StoreDirCreationErrorFormat = "Failed creating directory %s"
	StoreWriteErrorFormat       = "Failed to write stored file %s"
	StoreReadErrorFormat        = "Failed to read stored file %s"
	ManifestWriteErrorFormat    = "Failed to write the manifest in %s"
	ManifestReadErrorFormat     = "Failed to read the manifest in %s"
	NoLocalCopyErrorFormat      = "No local copy in %s, pull the asset version first"
	UnsafeStorePathErrorFormat  = "Path %s would escape the store"
	PruneErrorFormat            = "Failed pruning %s"
)

// Store keeps pulled asset files on disk, one directory per asset
// version, each with a manifest recording the digests of what it holds.
// Layout: <root>/<project>/<asset>@<version>/<dataset>/<file path>.
type Store struct {
	root string
}

type Manifest struct {
	WrittenAt string
	Entries   []StoredFile
}

type StoredFile struct {
	Name        string
	SizeBytes   int64
	MD5Checksum string
}

func NewStore(root string) *Store {
	return &Store{root: root}
}

func (s *Store) Root() string {
	return s.root
}

func (s *Store) VersionDir(projectID, assetID, version string) string {
	return filepath.Join(s.root, projectID, fmt.Sprintf("%s@%s", assetID, version))
}

// Write streams contents into the store and records the entry in the
// version's manifest. The returned StoredFile carries the size and MD5
// digest observed while writing.
func (s *Store) Write(projectID, assetID, version, datasetID, filePath string, contents io.Reader) (StoredFile, error) {
	name := path.Join(datasetID, filePath)
	if unsafeName(filePath) {
		return StoredFile{}, errors.Errorf(UnsafeStorePathErrorFormat, filePath)
	}

	versionDir := s.VersionDir(projectID, assetID, version)
	target := filepath.Join(versionDir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return StoredFile{}, errors.Wrapf(err, StoreDirCreationErrorFormat, filepath.Dir(target))
	}

	out, err := os.Create(target)
	if err != nil {
		return StoredFile{}, errors.Wrapf(err, StoreWriteErrorFormat, name)
	}

	hash := md5.New()
	size, err := io.Copy(io.MultiWriter(out, hash), contents)
	closeErr := out.Close()
	if err != nil {
		return StoredFile{}, errors.Wrapf(err, StoreWriteErrorFormat, name)
	}
	if closeErr != nil {
		return StoredFile{}, errors.Wrapf(closeErr, StoreWriteErrorFormat, name)
	}

	entry := StoredFile{
		Name:        name,
		SizeBytes:   size,
		MD5Checksum: base64.StdEncoding.EncodeToString(hash.Sum(nil)),
	}
	if err := s.updateManifest(versionDir, entry); err != nil {
		return StoredFile{}, err
	}
	return entry, nil
}

// Read returns the contents of a stored file by its manifest name.
func (s *Store) Read(projectID, assetID, version, name string) ([]byte, error) {
	if unsafeName(name) {
		return nil, errors.Errorf(UnsafeStorePathErrorFormat, name)
	}

	target := filepath.Join(s.VersionDir(projectID, assetID, version), filepath.FromSlash(name))
	contents, err := ioutil.ReadFile(target)
	if err != nil {
		return nil, errors.Wrapf(err, StoreReadErrorFormat, name)
	}
	return contents, nil
}

// Remove drops a version directory and everything in it.
func (s *Store) Remove(projectID, assetID, version string) error {
	return os.RemoveAll(s.VersionDir(projectID, assetID, version))
}

func (s *Store) Manifest(projectID, assetID, version string) (Manifest, error) {
	versionDir := s.VersionDir(projectID, assetID, version)
	manifest, err := s.readManifest(versionDir)
	if os.IsNotExist(errors.Cause(err)) {
		return Manifest{}, errors.Errorf(NoLocalCopyErrorFormat, versionDir)
	}
	return manifest, err
}

// Prune removes least-recently-modified version directories until the
// store fits within maxBytes. It returns the root-relative paths it
// removed.
func (s *Store) Prune(maxBytes int64) ([]string, error) {
	versions, total, err := s.versionUsages()
	if err != nil {
		return nil, errors.Wrapf(err, PruneErrorFormat, s.root)
	}

	sort.Slice(versions, func(i, j int) bool {
		return versions[i].lastModified.Before(versions[j].lastModified)
	})

	var removed []string
	for _, version := range versions {
		if total <= maxBytes {
			break
		}
		if err := os.RemoveAll(version.path); err != nil {
			return removed, errors.Wrapf(err, PruneErrorFormat, version.path)
		}
		total -= version.sizeBytes

		relative, err := filepath.Rel(s.root, version.path)
		if err != nil {
			relative = version.path
		}
		removed = append(removed, filepath.ToSlash(relative))

		// drop the project dir too once it is empty
		os.Remove(filepath.Dir(version.path))
	}
	return removed, nil
}

type versionUsage struct {
	path         string
	sizeBytes    int64
	lastModified time.Time
}

func (s *Store) versionUsages() ([]versionUsage, int64, error) {
	projects, err := ioutil.ReadDir(s.root)
	if os.IsNotExist(err) {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, err
	}

	var versions []versionUsage
	var total int64
	for _, project := range projects {
		if !project.IsDir() {
			continue
		}
		versionDirs, err := ioutil.ReadDir(filepath.Join(s.root, project.Name()))
		if err != nil {
			return nil, 0, err
		}
		for _, dir := range versionDirs {
			if !dir.IsDir() {
				continue
			}
			usage := versionUsage{path: filepath.Join(s.root, project.Name(), dir.Name())}
			err := filepath.Walk(usage.path, func(_ string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if info.Mode().IsRegular() {
					usage.sizeBytes += info.Size()
					if info.ModTime().After(usage.lastModified) {
						usage.lastModified = info.ModTime()
					}
				}
				return nil
			})
			if err != nil {
				return nil, 0, err
			}
			versions = append(versions, usage)
			total += usage.sizeBytes
		}
	}
	return versions, total, nil
}

func (s *Store) updateManifest(versionDir string, entry StoredFile) error {
	manifest, err := s.readManifest(versionDir)
	if err != nil && !os.IsNotExist(errors.Cause(err)) {
		return err
	}

	replaced := false
	for i := range manifest.Entries {
		if manifest.Entries[i].Name == entry.Name {
			manifest.Entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		manifest.Entries = append(manifest.Entries, entry)
	}
	manifest.WrittenAt = time.Now().UTC().Format(time.RFC3339)

	contents, err := json.Marshal(manifest)
	if err != nil {
		return err
	}
	if err := ioutil.WriteFile(filepath.Join(versionDir, ManifestFileName), contents, 0644); err != nil {
		return errors.Wrapf(err, ManifestWriteErrorFormat, versionDir)
	}
	return nil
}

func (s *Store) readManifest(versionDir string) (Manifest, error) {
	contents, err := ioutil.ReadFile(filepath.Join(versionDir, ManifestFileName))
	if err != nil {
		return Manifest{}, errors.Wrapf(err, ManifestReadErrorFormat, versionDir)
	}

	var manifest Manifest
	if err := json.Unmarshal(contents, &manifest); err != nil {
		return Manifest{}, errors.Wrapf(err, ManifestReadErrorFormat, versionDir)
	}
	return manifest, nil
}

func unsafeName(name string) bool {
	cleaned := path.Clean(name)
	return path.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, "../")
}
