package integration

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"

	"github.com/quarryhq/quarry-courier/cmd"
	"github.com/quarryhq/quarry-courier/file"
)

var _ = Describe("Verify", func() {
	var archiveDir string

	BeforeEach(func() {
		var err error
		archiveDir, err = ioutil.TempDir("", "")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		err := os.RemoveAll(archiveDir)
		Expect(err).NotTo(HaveOccurred())
	})

	It("verifies a complete archive", func() {
		tarFilePath := generateArchive(archiveDir, md5Base64(modelFileContents))

		command := exec.Command(courierBinaryPath, "verify", "--"+cmd.DataTarFilePathFlag, tarFilePath)
		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())

		Eventually(session).Should(gexec.Exit(0))
		Expect(session.Out).To(gbytes.Say(fmt.Sprintf("Verified Rock Pile: asset %s@2, 1 file", testAssetID)))
		Expect(session.Out).To(gbytes.Say("by asset-courier 0.0.1-test"))
		Expect(session.Out).To(gbytes.Say("Success!"))
	})

	It("fails when a file does not match its recorded digest", func() {
		tarFilePath := generateArchive(archiveDir, md5Base64([]byte("some-other-contents")))

		command := exec.Command(courierBinaryPath, "verify", "--"+cmd.DataTarFilePathFlag, tarFilePath)
		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())

		Eventually(session).Should(gexec.Exit(1))
		Expect(session.Err).To(gbytes.Say(cmd.VerifyFailureMessage))
		Expect(session.Err).To(gbytes.Say(fmt.Sprintf(file.ChecksumMismatchErrorFormat, "source-files/model.fbx")))
	})

	It("fails when the archive holds a file the metadata does not name", func() {
		tarFilePath := filepath.Join(archiveDir, "some-asset-export.tar")
		writer, err := file.NewTarWriter(tarFilePath)
		Expect(err).NotTo(HaveOccurred())

		err = writer.AddFile(modelFileContents, "source-files/model.fbx")
		Expect(err).NotTo(HaveOccurred())
		err = writer.AddFile([]byte("some-stray-contents"), "source-files/notes.txt")
		Expect(err).NotTo(HaveOccurred())
		writeArchiveMetadata(writer, md5Base64(modelFileContents))
		Expect(writer.Close()).To(Succeed())

		command := exec.Command(courierBinaryPath, "verify", "--"+cmd.DataTarFilePathFlag, tarFilePath)
		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())

		Eventually(session).Should(gexec.Exit(1))
		Expect(session.Err).To(gbytes.Say(cmd.VerifyFailureMessage))
		Expect(session.Err).To(gbytes.Say(fmt.Sprintf(file.ExtraFileErrorFormat, "source-files/notes.txt")))
	})

	It("fails when the archive path is not configured", func() {
		command := exec.Command(courierBinaryPath, "verify")
		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())

		Eventually(session).Should(gexec.Exit(1))
		Expect(session.Err).To(gbytes.Say(fmt.Sprintf(cmd.RequiredConfigErrorFormat, "--"+cmd.DataTarFilePathFlag)))
		Expect(session.Err).To(gbytes.Say("Usage:"))
	})

	It("fails when the archive does not exist", func() {
		command := exec.Command(courierBinaryPath, "verify", "--"+cmd.DataTarFilePathFlag, "some-missing.tar")
		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())

		Eventually(session).Should(gexec.Exit(1))
		Expect(session.Err).To(gbytes.Say(cmd.VerifyFailureMessage))
		Expect(session.Err).To(gbytes.Say(fmt.Sprintf(file.OpenTarFileFailureFormat, "some-missing.tar")))
	})

	It("fails when the file is not a tar archive", func() {
		notTarPath := filepath.Join(archiveDir, "not-a-tar.txt")
		err := ioutil.WriteFile(notTarPath, []byte("some-plain-text"), 0644)
		Expect(err).NotTo(HaveOccurred())

		command := exec.Command(courierBinaryPath, "verify", "--"+cmd.DataTarFilePathFlag, notTarPath)
		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())

		Eventually(session).Should(gexec.Exit(1))
		Expect(session.Err).To(gbytes.Say(cmd.VerifyFailureMessage))
		Expect(session.Err).To(gbytes.Say(fmt.Sprintf(file.UnexpectedFileTypeFormat, escapeWindowsPathRegex(notTarPath))))
	})
})

func generateArchive(destinationDir, modelDigest string) string {
	tarFilePath := filepath.Join(destinationDir, "some-asset-export.tar")
	writer, err := file.NewTarWriter(tarFilePath)
	Expect(err).NotTo(HaveOccurred())

	err = writer.AddFile(modelFileContents, "source-files/model.fbx")
	Expect(err).NotTo(HaveOccurred())
	writeArchiveMetadata(writer, modelDigest)
	Expect(writer.Close()).To(Succeed())

	return tarFilePath
}

func writeArchiveMetadata(writer *file.TarWriter, modelDigest string) {
	metadata := file.Metadata{
		ToolVersion: "0.0.1-test",
		ExportID:    "some-export-id",
		ExportedAt:  time.Now().UTC().Format(time.RFC3339),
		ProjectID:   testProjectID,
		AssetID:     testAssetID,
		AssetName:   "Rock Pile",
		Version:     "2",
		FileDigests: []file.Digest{
			{Name: "source-files/model.fbx", MD5Checksum: modelDigest},
		},
	}
	contents, err := json.Marshal(metadata)
	Expect(err).NotTo(HaveOccurred())
	err = writer.AddFile(contents, file.MetadataFileName)
	Expect(err).NotTo(HaveOccurred())
}
