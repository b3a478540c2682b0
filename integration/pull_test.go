package integration

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
	"github.com/onsi/gomega/ghttp"

	"github.com/elazarl/goproxy"

	"github.com/quarryhq/quarry-courier/cmd"
	"github.com/quarryhq/quarry-courier/file"
	"github.com/quarryhq/quarry-courier/identity"
	"github.com/quarryhq/quarry-courier/operations"
)

var (
	modelFileContents   = []byte("some-model-file-contents")
	textureFileContents = []byte("some-texture-file-contents")
	previewFileContents = []byte("some-preview-file-contents")
)

var _ = Describe("Pull", func() {
	var (
		storeDir       string
		tokenDir       string
		defaultEnvVars map[string]string
		identityServer *ghttp.Server
		quarryServer   *ghttp.Server
	)

	BeforeEach(func() {
		var err error
		storeDir, err = ioutil.TempDir("", "")
		Expect(err).NotTo(HaveOccurred())

		tokenDir, err = ioutil.TempDir("", "")
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
		}
	})

	AfterEach(func() {
		quarryServer.Close()
		identityServer.Close()

		err := os.RemoveAll(storeDir)
		Expect(err).NotTo(HaveOccurred())
		err = os.RemoveAll(tokenDir)
		Expect(err).NotTo(HaveOccurred())
	})

	It("pulls every dataset of the asset with env variable configuration", func() {
		command := buildDefaultCommand("pull", defaultEnvVars)
		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())

		Eventually(session).Should(gexec.Exit(0))

		versionDir := filepath.Join(storeDir, testProjectID, fmt.Sprintf("%s@2", testAssetID))
		contents, err := ioutil.ReadFile(filepath.Join(versionDir, "source-files", "model.fbx"))
		Expect(err).NotTo(HaveOccurred())
		Expect(contents).To(Equal(modelFileContents))

		contents, err = ioutil.ReadFile(filepath.Join(versionDir, "source-files", "textures", "oak_bark.png"))
		Expect(err).NotTo(HaveOccurred())
		Expect(contents).To(Equal(textureFileContents))

		contents, err = ioutil.ReadFile(filepath.Join(versionDir, "preview-images", "preview.png"))
		Expect(err).NotTo(HaveOccurred())
		Expect(contents).To(Equal(previewFileContents))

		manifestContents, err := ioutil.ReadFile(filepath.Join(versionDir, file.ManifestFileName))
		Expect(err).NotTo(HaveOccurred())
		var manifest file.Manifest
		Expect(json.Unmarshal(manifestContents, &manifest)).To(Succeed())
		Expect(manifest.Entries).To(HaveLen(3))

		Expect(session.Out).To(gbytes.Say(fmt.Sprintf("Pulling asset %s from project %s", testAssetID, testProjectID)))
		Expect(session.Out).To(gbytes.Say("Pulled 3 file"))
		Expect(session.Out).To(gbytes.Say(escapeWindowsPathRegex(versionDir)))
		Expect(session.Out).To(gbytes.Say("Success!"))
	})

	It("pulls a single dataset with flag configuration", func() {
		command := exec.Command(courierBinaryPath, "pull",
			"--"+cmd.SkipTlsVerifyFlag,
			"--"+cmd.ServiceURLFlag, quarryServer.URL(),
			"--"+cmd.IdentityURLFlag, identityServer.URL(),
			"--"+cmd.ProjectIDFlag, testProjectID,
			"--"+cmd.AssetIDFlag, testAssetID,
			"--"+cmd.ClientIDFlag, "some-client-id",
			"--"+cmd.ClientSecretFlag, "some-client-secret",
			"--"+cmd.StoreDirFlag, storeDir,
			"--"+cmd.DatasetFlag, "preview-images",
		)
		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())

		Eventually(session).Should(gexec.Exit(0))

		versionDir := filepath.Join(storeDir, testProjectID, fmt.Sprintf("%s@2", testAssetID))
		Expect(filepath.Join(versionDir, "preview-images", "preview.png")).To(BeAnExistingFile())
		Expect(filepath.Join(versionDir, "source-files", "model.fbx")).NotTo(BeAnExistingFile())

		Expect(session.Out).To(gbytes.Say("Pulled 1 file"))
		Expect(session.Out).To(gbytes.Say("Success!"))
	})

	It("prunes older versions past the cache limit", func() {
		oldVersionDir := filepath.Join(storeDir, testProjectID, fmt.Sprintf("%s@1", testAssetID))
		err := os.MkdirAll(filepath.Join(oldVersionDir, "source-files"), 0755)
		Expect(err).NotTo(HaveOccurred())
		err = ioutil.WriteFile(filepath.Join(oldVersionDir, "source-files", "model.fbx"), make([]byte, 2048), 0644)
		Expect(err).NotTo(HaveOccurred())

		defaultEnvVars[cmd.CacheLimitKey] = "1KB"
		command := buildDefaultCommand("pull", defaultEnvVars)
		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())

		Eventually(session).Should(gexec.Exit(0))

		Expect(session.Out).To(gbytes.Say(fmt.Sprintf("Pruned %s/%s@1 from the local store", testProjectID, testAssetID)))
		Expect(oldVersionDir).NotTo(BeADirectory())
		Expect(filepath.Join(storeDir, testProjectID, fmt.Sprintf("%s@2", testAssetID))).To(BeADirectory())
	})

	It("fails when required configuration is missing", func() {
		command := exec.Command(courierBinaryPath, "pull")
		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())

		Eventually(session).Should(gexec.Exit(1))

		requiredFlags := []string{
			"--" + cmd.ServiceURLFlag,
			"--" + cmd.IdentityURLFlag,
			"--" + cmd.ProjectIDFlag,
			"--" + cmd.AssetIDFlag,
		}
		Expect(session.Err).To(gbytes.Say(fmt.Sprintf(cmd.RequiredConfigErrorFormat, strings.Join(requiredFlags, ", "))))
		Expect(session.Err).To(gbytes.Say("Usage:"))
	})

	DescribeTable("fails without a stored login when a service account credential is missing",
		func(missingKey string) {
			delete(defaultEnvVars, missingKey)

			command := buildDefaultCommand("pull", defaultEnvVars)
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())

			Eventually(session).Should(gexec.Exit(1))
			Expect(session.Err).To(gbytes.Say(identity.NotLoggedInMessage))
			Expect(session.Err).NotTo(gbytes.Say("Usage:"))
		},
		Entry("without a client id", cmd.ClientIDKey),
		Entry("without a client secret", cmd.ClientSecretKey),
	)

	It("fails when the cache limit does not parse", func() {
		defaultEnvVars[cmd.CacheLimitKey] = "10XB"

		command := buildDefaultCommand("pull", defaultEnvVars)
		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())

		Eventually(session).Should(gexec.Exit(1))
		Expect(session.Err).To(gbytes.Say(fmt.Sprintf(cmd.InvalidCacheLimitErrorFormat, "10XB")))
		Expect(session.Err).To(gbytes.Say("Usage:"))
	})

	It("fails when a downloaded file does not match its catalog digest", func() {
		quarryServer.RouteToHandler(http.MethodGet, "/signed/model.fbx",
			ghttp.RespondWith(http.StatusOK, "some-tampered-contents"),
		)

		command := buildDefaultCommand("pull", defaultEnvVars)
		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())

		Eventually(session).Should(gexec.Exit(1))
		Expect(session.Err).To(gbytes.Say(cmd.PullFailureMessage))
		Expect(session.Err).To(gbytes.Say(fmt.Sprintf(operations.DigestMismatchErrorFormat, "model.fbx")))
	})

	It("fails when the server does not support TLS 1.2", func() {
		lowTLSServer := serverWithMaxTLSVersion(tls.VersionTLS11)
		defer lowTLSServer.Close()
		defaultEnvVars[cmd.ServiceURLKey] = lowTLSServer.URL()

		command := buildDefaultCommand("pull", defaultEnvVars)
		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())

		Eventually(session).Should(gexec.Exit(1))
		Expect(session.Err).To(gbytes.Say("protocol version not supported"))
	})

	Context("when an https proxy is configured", func() {
		var (
			proxyServer *http.Server
			proxyPort   string
		)

		BeforeEach(func() {
			proxy := goproxy.NewProxyHttpServer()
			proxy.OnRequest().HandleConnect(goproxy.AlwaysMitm)
			proxy.OnRequest().DoFunc(func(r *http.Request, ctx *goproxy.ProxyCtx) (*http.Request, *http.Response) {
				var serverURL *url.URL
				var err error
				switch r.Host {
				case "quarry.example.com":
					serverURL, err = url.Parse(quarryServer.URL())
				case "identity.example.com":
					serverURL, err = url.Parse(identityServer.URL())
				default:
					return r, nil
				}
				Expect(err).NotTo(HaveOccurred())

				serverURL.Path = r.URL.Path
				r.URL = serverURL
				return r, nil
			})

			listener, err := net.Listen("tcp", "127.0.0.1:0")
			Expect(err).NotTo(HaveOccurred())
			proxyPort = strconv.Itoa(listener.Addr().(*net.TCPAddr).Port)

			proxyServer = &http.Server{Handler: proxy}
			go func() {
				defer GinkgoRecover()
				proxyServer.Serve(listener)
			}()
		})

		AfterEach(func() {
			err := proxyServer.Close()
			Expect(err).NotTo(HaveOccurred())
		})

		It("pulls through the proxy", func() {
			defaultEnvVars[cmd.ServiceURLKey] = "https://quarry.example.com"
			defaultEnvVars[cmd.IdentityURLKey] = "https://identity.example.com"
			defaultEnvVars["HTTPS_PROXY"] = fmt.Sprintf("http://127.0.0.1:%s", proxyPort)

			command := buildDefaultCommand("pull", defaultEnvVars)
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())

			Eventually(session).Should(gexec.Exit(0))

			versionDir := filepath.Join(storeDir, testProjectID, fmt.Sprintf("%s@2", testAssetID))
			Expect(filepath.Join(versionDir, "source-files", "model.fbx")).To(BeAnExistingFile())
			Expect(session.Out).To(gbytes.Say("Success!"))
		})
	})
})

// setupQuarryServer serves a catalog of one asset at version 2 with a
// source-files dataset of two files and a preview-images dataset of one,
// plus the signed content routes their download URLs point at.
func setupQuarryServer() *ghttp.Server {
	quarryServer := ghttp.NewTLSServer()

	assetJSON := fmt.Sprintf(`{
				"project_id": "%s",
				"id": "%s",
				"version": "2",
				"name": "Rock Pile",
				"type": "model-3d",
				"status": "in-review",
				"updated_at": "2026-07-04T10:00:00Z"
				}`, testProjectID, testAssetID)

	versionPath := fmt.Sprintf("/api/v1/projects/%s/assets/%s/versions/2", testProjectID, testAssetID)
	latestPath := fmt.Sprintf("/api/v1/projects/%s/assets/%s/versions/latest", testProjectID, testAssetID)

	assetHandler := ghttp.CombineHandlers(
		ghttp.VerifyHeaderKV("Authorization", "Bearer some-quarry-token"),
		ghttp.RespondWith(http.StatusOK, assetJSON),
	)
	quarryServer.RouteToHandler(http.MethodGet, latestPath, assetHandler)
	quarryServer.RouteToHandler(http.MethodGet, versionPath, assetHandler)

	quarryServer.RouteToHandler(http.MethodGet, versionPath+"/datasets", ghttp.RespondWith(http.StatusOK, `{"items": [
				{"id": "source-files", "name": "Source Files", "file_count": 2},
				{"id": "preview-images", "name": "Preview Images", "file_count": 1}
				]}`))

	sourceFilesJSON := fmt.Sprintf(`{"items": [
				{"path": "model.fbx", "size_bytes": %d, "md5_checksum": "%s"},
				{"path": "textures/oak_bark.png", "size_bytes": %d, "md5_checksum": "%s"}
				], "total": 2}`,
		len(modelFileContents), md5Base64(modelFileContents),
		len(textureFileContents), md5Base64(textureFileContents))
	quarryServer.RouteToHandler(http.MethodGet, versionPath+"/datasets/source-files/files", ghttp.RespondWith(http.StatusOK, sourceFilesJSON))

	previewFilesJSON := fmt.Sprintf(`{"items": [
				{"path": "preview.png", "size_bytes": %d, "md5_checksum": "%s"}
				], "total": 1}`,
		len(previewFileContents), md5Base64(previewFileContents))
	quarryServer.RouteToHandler(http.MethodGet, versionPath+"/datasets/preview-images/files", ghttp.RespondWith(http.StatusOK, previewFilesJSON))

	signedURLHandler := func(filePath string) http.HandlerFunc {
		return func(w http.ResponseWriter, req *http.Request) {
			w.Write([]byte(fmt.Sprintf(`{"url": "%s/signed/%s", "expires_at": "2030-01-01T00:00:00Z"}`, quarryServer.URL(), filePath)))
		}
	}
	quarryServer.RouteToHandler(http.MethodGet, versionPath+"/datasets/source-files/files/model.fbx/download-url", signedURLHandler("model.fbx"))
	quarryServer.RouteToHandler(http.MethodGet, versionPath+"/datasets/source-files/files/textures/oak_bark.png/download-url", signedURLHandler("textures/oak_bark.png"))
	quarryServer.RouteToHandler(http.MethodGet, versionPath+"/datasets/preview-images/files/preview.png/download-url", signedURLHandler("preview.png"))

	quarryServer.RouteToHandler(http.MethodGet, "/signed/model.fbx", ghttp.RespondWith(http.StatusOK, modelFileContents))
	quarryServer.RouteToHandler(http.MethodGet, "/signed/textures/oak_bark.png", ghttp.RespondWith(http.StatusOK, textureFileContents))
	quarryServer.RouteToHandler(http.MethodGet, "/signed/preview.png", ghttp.RespondWith(http.StatusOK, previewFileContents))

	return quarryServer
}

func serverWithMaxTLSVersion(tlsVersion uint16) *ghttp.Server {
	server := ghttp.NewUnstartedServer()
	server.HTTPTestServer.TLS = &tls.Config{
		MaxVersion: tlsVersion,
	}
	server.HTTPTestServer.StartTLS()
	return server
}
