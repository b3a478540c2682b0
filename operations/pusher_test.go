package operations_test

import (
	"context"
	"crypto/md5"
	"encoding/base64"
	"fmt"
	"io/ioutil"
	"log"
	"net/http"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"
	"github.com/pkg/errors"

	. "github.com/quarryhq/quarry-courier/operations"
	"github.com/quarryhq/quarry-courier/operations/operationsfakes"
	"github.com/quarryhq/quarry-courier/quarry"
)

var _ = Describe("Pusher", func() {
	const (
		projectID = "project-guid"
		assetID   = "asset-guid"
		datasetID = "source-files"
	)

	var (
		service   *operationsfakes.FakePushService
		server    *ghttp.Server
		sourceDir string
		singleDir string
		pusher    *Pusher
	)

	digestOf := func(contents string) string {
		sum := md5.Sum([]byte(contents))
		return base64.StdEncoding.EncodeToString(sum[:])
	}

	BeforeEach(func() {
		var err error
		sourceDir, err = ioutil.TempDir("", "")
		Expect(err).NotTo(HaveOccurred())
		Expect(ioutil.WriteFile(filepath.Join(sourceDir, "model.fbx"), []byte("model-bytes"), 0644)).To(Succeed())
		Expect(os.MkdirAll(filepath.Join(sourceDir, "textures"), 0755)).To(Succeed())
		Expect(ioutil.WriteFile(filepath.Join(sourceDir, "textures", "oak.png"), []byte("texture-bytes"), 0644)).To(Succeed())

		singleDir, err = ioutil.TempDir("", "")
		Expect(err).NotTo(HaveOccurred())
		Expect(ioutil.WriteFile(filepath.Join(singleDir, "model.fbx"), []byte("model-bytes"), 0644)).To(Succeed())

		server = ghttp.NewServer()
		server.RouteToHandler(http.MethodPut, "/upload/model.fbx", ghttp.CombineHandlers(
			ghttp.VerifyHeaderKV(ContentMD5HeaderKey, digestOf("model-bytes")),
			ghttp.VerifyBody([]byte("model-bytes")),
			ghttp.RespondWith(http.StatusOK, ""),
		))
		server.RouteToHandler(http.MethodPut, "/upload/textures/oak.png", ghttp.CombineHandlers(
			ghttp.VerifyHeaderKV(ContentMD5HeaderKey, digestOf("texture-bytes")),
			ghttp.VerifyBody([]byte("texture-bytes")),
			ghttp.RespondWith(http.StatusOK, ""),
		))

		service = new(operationsfakes.FakePushService)
		service.CreateAssetReturns(quarry.Asset{ProjectID: projectID, ID: assetID, Version: "1", Name: "Oak Chair"}, nil)
		service.CreateAssetVersionReturns(quarry.Asset{ProjectID: projectID, ID: assetID, Version: "4"}, nil)
		service.CreateFileStub = func(_, _, _, _ string, input quarry.CreateFileInput) (quarry.UploadInfo, error) {
			return quarry.UploadInfo{Path: input.Path, UploadURL: server.URL() + "/upload/" + input.Path}, nil
		}

		pusher = NewPusher(service, &http.Client{}, 2, log.New(GinkgoWriter, "", 0))
	})

	AfterEach(func() {
		server.Close()
		Expect(os.RemoveAll(sourceDir)).To(Succeed())
		Expect(os.RemoveAll(singleDir)).To(Succeed())
	})

	It("creates an asset, uploads every file and finalizes them", func() {
		result, err := pusher.Push(context.Background(), PushInput{
			ProjectID: projectID,
			Name:      "Oak Chair",
			Type:      quarry.AssetTypeModel3D,
			DatasetID: datasetID,
			SourceDir: sourceDir,
		})
		Expect(err).NotTo(HaveOccurred())

		Expect(service.CreateAssetCallCount()).To(Equal(1))
		createProject, createInput := service.CreateAssetArgsForCall(0)
		Expect(createProject).To(Equal(projectID))
		Expect(createInput.Name).To(Equal("Oak Chair"))
		Expect(createInput.Type).To(Equal(quarry.AssetTypeModel3D))

		var registered []quarry.CreateFileInput
		for i := 0; i < service.CreateFileCallCount(); i++ {
			project, asset, version, dataset, input := service.CreateFileArgsForCall(i)
			Expect(project).To(Equal(projectID))
			Expect(asset).To(Equal(assetID))
			Expect(version).To(Equal("1"))
			Expect(dataset).To(Equal(datasetID))
			registered = append(registered, input)
		}
		Expect(registered).To(ConsistOf(
			quarry.CreateFileInput{Path: "model.fbx", SizeBytes: int64(len("model-bytes")), MD5Checksum: digestOf("model-bytes")},
			quarry.CreateFileInput{Path: "textures/oak.png", SizeBytes: int64(len("texture-bytes")), MD5Checksum: digestOf("texture-bytes")},
		))

		var finalized []string
		for i := 0; i < service.FinalizeFileCallCount(); i++ {
			_, _, _, _, path := service.FinalizeFileArgsForCall(i)
			finalized = append(finalized, path)
		}
		Expect(finalized).To(ConsistOf("model.fbx", "textures/oak.png"))

		Expect(server.ReceivedRequests()).To(HaveLen(2))
		Expect(service.UpdateAssetCallCount()).To(Equal(0))
		Expect(service.StartTransformationCallCount()).To(Equal(0))

		Expect(result.FileCount).To(Equal(2))
		Expect(result.TotalBytes).To(Equal(int64(len("model-bytes") + len("texture-bytes"))))
		Expect(result.Asset.ID).To(Equal(assetID))
	})

	It("opens a new version when an asset id is given", func() {
		result, err := pusher.Push(context.Background(), PushInput{
			ProjectID: projectID,
			AssetID:   assetID,
			DatasetID: datasetID,
			SourceDir: singleDir,
		})
		Expect(err).NotTo(HaveOccurred())

		Expect(service.CreateAssetCallCount()).To(Equal(0))
		Expect(service.CreateAssetVersionCallCount()).To(Equal(1))
		versionProject, versionAsset := service.CreateAssetVersionArgsForCall(0)
		Expect(versionProject).To(Equal(projectID))
		Expect(versionAsset).To(Equal(assetID))

		_, _, version, _, _ := service.CreateFileArgsForCall(0)
		Expect(version).To(Equal("4"))
		Expect(result.Asset.Version).To(Equal("4"))
	})

	It("patches the asset and starts a transformation when asked to", func() {
		service.UpdateAssetReturns(quarry.Asset{ID: assetID, Version: "1", Status: quarry.StatusInReview}, nil)
		service.StartTransformationReturns(quarry.Transformation{ID: "transformation-guid", WorkflowType: quarry.WorkflowThumbnailGeneration, Status: quarry.TransformationPending}, nil)

		result, err := pusher.Push(context.Background(), PushInput{
			ProjectID:    projectID,
			Name:         "Oak Chair",
			Type:         quarry.AssetTypeModel3D,
			DatasetID:    datasetID,
			SourceDir:    singleDir,
			Status:       quarry.StatusInReview,
			WorkflowType: quarry.WorkflowThumbnailGeneration,
		})
		Expect(err).NotTo(HaveOccurred())

		Expect(service.UpdateAssetCallCount()).To(Equal(1))
		_, _, _, updateInput := service.UpdateAssetArgsForCall(0)
		Expect(updateInput.Status).To(Equal(quarry.StatusInReview))

		Expect(service.StartTransformationCallCount()).To(Equal(1))
		_, _, _, transformDataset, workflowType := service.StartTransformationArgsForCall(0)
		Expect(transformDataset).To(Equal(datasetID))
		Expect(workflowType).To(Equal(quarry.WorkflowThumbnailGeneration))

		Expect(result.Asset.Status).To(Equal(quarry.StatusInReview))
		Expect(result.Transformation.ID).To(Equal("transformation-guid"))
	})

	It("errors when the source directory has no files", func() {
		emptyDir, err := ioutil.TempDir("", "")
		Expect(err).NotTo(HaveOccurred())
		defer os.RemoveAll(emptyDir)

		_, err = pusher.Push(context.Background(), PushInput{ProjectID: projectID, DatasetID: datasetID, SourceDir: emptyDir})
		Expect(err).To(MatchError(fmt.Sprintf(EmptySourceErrorFormat, emptyDir)))
	})

	It("errors when the source directory cannot be walked", func() {
		missingDir := filepath.Join(sourceDir, "does-not-exist")

		_, err := pusher.Push(context.Background(), PushInput{ProjectID: projectID, DatasetID: datasetID, SourceDir: missingDir})
		Expect(err).To(MatchError(ContainSubstring(fmt.Sprintf(SourceWalkFailureFormat, missingDir))))
	})

	It("errors when the asset cannot be created", func() {
		service.CreateAssetReturns(quarry.Asset{}, errors.New("name taken"))

		_, err := pusher.Push(context.Background(), PushInput{ProjectID: projectID, DatasetID: datasetID, SourceDir: singleDir})
		Expect(err).To(MatchError(ContainSubstring(AssetCreationFailureMessage)))
	})

	It("errors when a file cannot be registered", func() {
		service.CreateFileStub = nil
		service.CreateFileReturns(quarry.UploadInfo{}, errors.New("quota exceeded"))

		_, err := pusher.Push(context.Background(), PushInput{ProjectID: projectID, DatasetID: datasetID, SourceDir: singleDir})
		Expect(err).To(MatchError(ContainSubstring(fmt.Sprintf(FileRegistrationFailureFormat, "model.fbx"))))
	})

	It("errors when the signed URL rejects the upload", func() {
		server.RouteToHandler(http.MethodPut, "/upload/model.fbx", ghttp.RespondWith(http.StatusForbidden, ""))

		_, err := pusher.Push(context.Background(), PushInput{ProjectID: projectID, DatasetID: datasetID, SourceDir: singleDir})
		Expect(err).To(MatchError(fmt.Sprintf(UploadStatusErrorFormat, http.StatusForbidden, "model.fbx")))
	})

	It("errors when a file cannot be finalized", func() {
		service.FinalizeFileReturns(quarry.FileInfo{}, errors.New("content missing"))

		_, err := pusher.Push(context.Background(), PushInput{ProjectID: projectID, DatasetID: datasetID, SourceDir: singleDir})
		Expect(err).To(MatchError(ContainSubstring(fmt.Sprintf(FinalizeFileFailureFormat, "model.fbx"))))
	})

	It("errors when the post-upload patch fails", func() {
		service.UpdateAssetReturns(quarry.Asset{}, errors.New("rejected"))

		_, err := pusher.Push(context.Background(), PushInput{
			ProjectID: projectID,
			DatasetID: datasetID,
			SourceDir: singleDir,
			Status:    quarry.StatusInReview,
		})
		Expect(err).To(MatchError(ContainSubstring(MetadataUpdateFailureMessage)))
	})

	It("errors when the transformation cannot be started", func() {
		service.StartTransformationReturns(quarry.Transformation{}, errors.New("no such workflow"))

		_, err := pusher.Push(context.Background(), PushInput{
			ProjectID:    projectID,
			DatasetID:    datasetID,
			SourceDir:    singleDir,
			WorkflowType: quarry.WorkflowMeshOptimization,
		})
		Expect(err).To(MatchError(ContainSubstring(fmt.Sprintf(TransformationStartFailureFormat, quarry.WorkflowMeshOptimization))))
	})
})
