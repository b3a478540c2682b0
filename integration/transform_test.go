package integration

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
	"github.com/onsi/gomega/ghttp"

	"github.com/quarryhq/quarry-courier/cmd"
	"github.com/quarryhq/quarry-courier/quarry"
)

var _ = Describe("Transform", func() {
	var (
		tokenDir       string
		defaultEnvVars map[string]string
		identityServer *ghttp.Server
		quarryServer   *ghttp.Server
	)

	transformationsPath := fmt.Sprintf("/api/v1/projects/%s/assets/%s/versions/latest/datasets/source-files/transformations", testProjectID, testAssetID)
	pollPath := fmt.Sprintf("/api/v1/projects/%s/transformations/some-transformation-id", testProjectID)

	BeforeEach(func() {
		var err error
		tokenDir, err = ioutil.TempDir("", "")
		Expect(err).NotTo(HaveOccurred())

		identityServer = setupIdentityServer()
		quarryServer = ghttp.NewTLSServer()

		defaultEnvVars = map[string]string{
			cmd.ServiceURLKey:   quarryServer.URL(),
			cmd.IdentityURLKey:  identityServer.URL(),
			cmd.ProjectIDKey:    testProjectID,
			cmd.AssetIDKey:      testAssetID,
			cmd.ClientIDKey:     "some-client-id",
			cmd.ClientSecretKey: "some-client-secret",
			cmd.TokenFileKey:    filepath.Join(tokenDir, "token.json"),
		}
	})

	AfterEach(func() {
		quarryServer.Close()
		identityServer.Close()

		err := os.RemoveAll(tokenDir)
		Expect(err).NotTo(HaveOccurred())
	})

	DescribeTable("starts the requested workflow",
		func(workflowType string) {
			quarryServer.RouteToHandler(http.MethodPost, transformationsPath, func(w http.ResponseWriter, req *http.Request) {
				var body map[string]string
				err := json.NewDecoder(req.Body).Decode(&body)
				Expect(err).NotTo(HaveOccurred())
				Expect(body["workflow_type"]).To(Equal(workflowType))

				w.WriteHeader(http.StatusCreated)
				w.Write([]byte(fmt.Sprintf(`{"id": "some-transformation-id", "dataset_id": "source-files", "workflow_type": "%s", "status": "pending"}`, workflowType)))
			})

			command := buildDefaultCommand("transform", defaultEnvVars)
			command.Args = append(command.Args, "--"+cmd.WorkflowFlag, workflowType)
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())

			Eventually(session).Should(gexec.Exit(0))
			Expect(session.Out).To(gbytes.Say(fmt.Sprintf("Started %s transformation some-transformation-id", workflowType)))
			Expect(session.Out).To(gbytes.Say("Success!"))
		},
		Entry("thumbnail generation", quarry.WorkflowThumbnailGeneration),
		Entry("mesh optimization", quarry.WorkflowMeshOptimization),
		Entry("metadata extraction", quarry.WorkflowMetadataExtraction),
	)

	It("waits for the transformation to finish", func() {
		quarryServer.RouteToHandler(http.MethodPost, transformationsPath,
			ghttp.RespondWith(http.StatusCreated, `{"id": "some-transformation-id", "dataset_id": "source-files", "workflow_type": "mesh-optimization", "status": "pending"}`))

		polls := 0
		quarryServer.RouteToHandler(http.MethodGet, pollPath, func(w http.ResponseWriter, req *http.Request) {
			polls++
			if polls == 1 {
				w.Write([]byte(`{"id": "some-transformation-id", "dataset_id": "source-files", "workflow_type": "mesh-optimization", "status": "running", "progress": 40}`))
				return
			}
			w.Write([]byte(`{"id": "some-transformation-id", "dataset_id": "source-files", "workflow_type": "mesh-optimization", "status": "succeeded", "progress": 100}`))
		})

		command := buildDefaultCommand("transform", defaultEnvVars)
		command.Args = append(command.Args, "--"+cmd.WorkflowFlag, quarry.WorkflowMeshOptimization, "--"+cmd.WaitFlag)
		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())

		Eventually(session).Should(gexec.Exit(0))
		Expect(session.Out).To(gbytes.Say(fmt.Sprintf("Running mesh-optimization on %s@latest", testAssetID)))
		Expect(session.Err).To(gbytes.Say("Transformation some-transformation-id is running"))
		Expect(session.Out).To(gbytes.Say("Transformation some-transformation-id finished with status succeeded"))
		Expect(session.Out).To(gbytes.Say("Success!"))
	})

	It("fails when the transformation ends in a failed state", func() {
		quarryServer.RouteToHandler(http.MethodPost, transformationsPath,
			ghttp.RespondWith(http.StatusCreated, `{"id": "some-transformation-id", "dataset_id": "source-files", "workflow_type": "mesh-optimization", "status": "pending"}`))
		quarryServer.RouteToHandler(http.MethodGet, pollPath,
			ghttp.RespondWith(http.StatusOK, `{"id": "some-transformation-id", "dataset_id": "source-files", "workflow_type": "mesh-optimization", "status": "failed", "error_message": "mesh is degenerate"}`))

		command := buildDefaultCommand("transform", defaultEnvVars)
		command.Args = append(command.Args, "--"+cmd.WorkflowFlag, quarry.WorkflowMeshOptimization, "--"+cmd.WaitFlag)
		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())

		Eventually(session).Should(gexec.Exit(1))
		Expect(session.Err).To(gbytes.Say(cmd.TransformFailureMessage))
		Expect(session.Err).To(gbytes.Say("Transformation some-transformation-id failed: mesh is degenerate"))
	})

	It("fails when the workflow is not recognized", func() {
		command := buildDefaultCommand("transform", defaultEnvVars)
		command.Args = append(command.Args, "--"+cmd.WorkflowFlag, "sharpen")
		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())

		Eventually(session).Should(gexec.Exit(1))
		Expect(session.Err).To(gbytes.Say(fmt.Sprintf(cmd.InvalidWorkflowFailureFormat, "sharpen")))
		Expect(session.Err).To(gbytes.Say("Usage:"))
	})

	It("fails when more than one dataset is configured", func() {
		command := buildDefaultCommand("transform", defaultEnvVars)
		command.Args = append(command.Args,
			"--"+cmd.WorkflowFlag, quarry.WorkflowMeshOptimization,
			"--"+cmd.DatasetFlag, "source-files",
			"--"+cmd.DatasetFlag, "preview-images",
		)
		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())

		Eventually(session).Should(gexec.Exit(1))
		Expect(session.Err).To(gbytes.Say(cmd.InvalidDatasetConfigurationMessage))
		Expect(session.Err).To(gbytes.Say("Usage:"))
	})
})
