package integration

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/joyvuu-dave/archiver/v3"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
	"github.com/onsi/gomega/ghttp"

	"github.com/quarryhq/quarry-courier/cmd"
	"github.com/quarryhq/quarry-courier/file"
	"github.com/quarryhq/quarry-courier/operations"
)

const UnixTimestampRegexp = `\d{10}`

var _ = Describe("Export", func() {
	var (
		storeDir            string
		tokenDir            string
		outputDir           string
		unpackDir           string
		defaultEnvVars      map[string]string
		identityServer      *ghttp.Server
		quarryServer        *ghttp.Server
		versionedBinaryPath string
	)

	BeforeEach(func() {
		var err error
		storeDir, err = ioutil.TempDir("", "")
		Expect(err).NotTo(HaveOccurred())
		tokenDir, err = ioutil.TempDir("", "")
		Expect(err).NotTo(HaveOccurred())
		outputDir, err = ioutil.TempDir("", "")
		Expect(err).NotTo(HaveOccurred())
		unpackDir, err = ioutil.TempDir("", "")
		Expect(err).NotTo(HaveOccurred())

		versionedBinaryPath, err = gexec.Build(
			"github.com/quarryhq/quarry-courier",
			"-ldflags",
			fmt.Sprintf("-X github.com/quarryhq/quarry-courier/cmd.version=%s", testVersion),
		)
		Expect(err).NotTo(HaveOccurred())

		identityServer = setupIdentityServer()
		quarryServer = setupQuarryServer()

		defaultEnvVars = map[string]string{
			cmd.ServiceURLKey:   quarryServer.URL(),
			cmd.IdentityURLKey:  identityServer.URL(),
			cmd.ProjectIDKey:    testProjectID,
			cmd.AssetIDKey:      testAssetID,
			cmd.ClientIDKey:     "some-client-id",
			cmd.ClientSecretKey: "some-client-secret",
			cmd.StoreDirKey:     storeDir,
			cmd.TokenFileKey:    filepath.Join(tokenDir, "token.json"),
			cmd.OutputPathKey:   outputDir,
		}
	})

	AfterEach(func() {
		quarryServer.Close()
		identityServer.Close()

		for _, dir := range []string{storeDir, tokenDir, outputDir, unpackDir} {
			err := os.RemoveAll(dir)
			Expect(err).NotTo(HaveOccurred())
		}
	})

	It("pulls the asset version and writes the archive when the store is empty", func() {
		command := buildExportCommand(versionedBinaryPath, defaultEnvVars)
		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())

		Eventually(session).Should(gexec.Exit(0))
		Expect(session.Out).To(gbytes.Say(fmt.Sprintf("No local copy of %s@2, pulling it first", testAssetID)))
		Expect(session.Out).To(gbytes.Say(fmt.Sprintf("Exporting %s@2", testAssetID)))
		Expect(session.Out).To(gbytes.Say("Wrote archive to"))
		Expect(session.Out).To(gbytes.Say("Success!"))

		tarFilePath := validatedTarFilePath(outputDir)
		err = archiver.NewTar().Unarchive(tarFilePath, unpackDir)
		Expect(err).NotTo(HaveOccurred())

		contents, err := ioutil.ReadFile(filepath.Join(unpackDir, "source-files", "model.fbx"))
		Expect(err).NotTo(HaveOccurred())
		Expect(contents).To(Equal(modelFileContents))

		contents, err = ioutil.ReadFile(filepath.Join(unpackDir, "preview-images", "preview.png"))
		Expect(err).NotTo(HaveOccurred())
		Expect(contents).To(Equal(previewFileContents))

		metadataContents, err := ioutil.ReadFile(filepath.Join(unpackDir, file.MetadataFileName))
		Expect(err).NotTo(HaveOccurred())

		var metadata file.Metadata
		Expect(json.Unmarshal(metadataContents, &metadata)).To(Succeed())
		Expect(metadata.ToolVersion).To(Equal(testVersion))
		Expect(metadata.ExportID).NotTo(BeEmpty())
		Expect(metadata.ProjectID).To(Equal(testProjectID))
		Expect(metadata.AssetID).To(Equal(testAssetID))
		Expect(metadata.AssetName).To(Equal("Rock Pile"))
		Expect(metadata.Version).To(Equal("2"))
		Expect(metadata.FileDigests).To(ConsistOf(
			file.Digest{Name: "source-files/model.fbx", MD5Checksum: md5Base64(modelFileContents)},
			file.Digest{Name: "source-files/textures/oak_bark.png", MD5Checksum: md5Base64(textureFileContents)},
			file.Digest{Name: "preview-images/preview.png", MD5Checksum: md5Base64(previewFileContents)},
		))

		_, err = time.Parse(time.RFC3339, metadata.ExportedAt)
		Expect(err).NotTo(HaveOccurred())
	})

	It("reuses the local copy when the store already holds the version", func() {
		pullCommand := buildDefaultCommand("pull", defaultEnvVars)
		pullSession, err := gexec.Start(pullCommand, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())
		Eventually(pullSession).Should(gexec.Exit(0))

		command := buildExportCommand(versionedBinaryPath, defaultEnvVars)
		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())

		Eventually(session).Should(gexec.Exit(0))
		Expect(session.Out).NotTo(gbytes.Say("No local copy"))
		Expect(session.Out).To(gbytes.Say("Success!"))

		tarFilePath := validatedTarFilePath(outputDir)
		err = archiver.NewTar().Unarchive(tarFilePath, unpackDir)
		Expect(err).NotTo(HaveOccurred())
		Expect(filepath.Join(unpackDir, "source-files", "model.fbx")).To(BeAnExistingFile())
	})

	It("removes the partial archive when the local copy is corrupt", func() {
		pullCommand := buildDefaultCommand("pull", defaultEnvVars)
		pullSession, err := gexec.Start(pullCommand, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())
		Eventually(pullSession).Should(gexec.Exit(0))

		storedModelPath := filepath.Join(storeDir, testProjectID, fmt.Sprintf("%s@2", testAssetID), "source-files", "model.fbx")
		err = ioutil.WriteFile(storedModelPath, []byte("some-tampered-contents"), 0644)
		Expect(err).NotTo(HaveOccurred())

		command := buildExportCommand(versionedBinaryPath, defaultEnvVars)
		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())

		Eventually(session).Should(gexec.Exit(1))
		Expect(session.Err).To(gbytes.Say(fmt.Sprintf(operations.CorruptLocalCopyErrorFormat, "source-files/model.fbx")))
		assertOutputDirEmpty(outputDir)
	})

	It("fails when the archive cannot be created", func() {
		defaultEnvVars[cmd.OutputPathKey] = filepath.Join(outputDir, "missing-subdir")

		command := buildExportCommand(versionedBinaryPath, defaultEnvVars)
		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())

		Eventually(session).Should(gexec.Exit(1))
		Expect(session.Err).To(gbytes.Say(fmt.Sprintf(file.CreateTarFileFailureFormat, "")))
	})
})

func buildExportCommand(binaryPath string, envVars map[string]string) *exec.Cmd {
	command := exec.Command(binaryPath, "export", "--"+cmd.SkipTlsVerifyFlag)
	command.Env = os.Environ()
	for k, v := range envVars {
		command.Env = append(command.Env, fmt.Sprintf("%s=%s", k, v))
	}
	return command
}

func validatedTarFilePath(outputDir string) string {
	fileInfos, err := ioutil.ReadDir(outputDir)
	Expect(err).NotTo(HaveOccurred())
	Expect(fileInfos).To(HaveLen(1), fmt.Sprintf("Expected exactly one file in %s", outputDir))
	Expect(fileInfos[0].Name()).To(MatchRegexp(`%s%s\.tar`, cmd.OutputFilePrefix, UnixTimestampRegexp))
	return filepath.Join(outputDir, fileInfos[0].Name())
}

func assertOutputDirEmpty(outputDir string) {
	fileInfos, err := ioutil.ReadDir(outputDir)
	Expect(err).NotTo(HaveOccurred())
	Expect(fileInfos).To(BeEmpty())
}
