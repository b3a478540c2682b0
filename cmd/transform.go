package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quarryhq/quarry-courier/operations"
	"github.com/quarryhq/quarry-courier/quarry"
)

const (
	WorkflowFlag = "workflow"
	WorkflowKey  = "QUARRY_WORKFLOW"
	WaitFlag     = "wait"

	TransformFailureMessage      = "Failed to run the transformation"
	InvalidWorkflowFailureFormat = "Invalid workflow %s. See help for the list of valid types."

	pollInitialInterval = 2 * time.Second
	pollMaxInterval     = 30 * time.Second
)

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Starts a transformation workflow on a dataset",
	Long:  `Starts a transformation workflow on a dataset of an asset version, optionally waiting for it to finish`,
	RunE:  transform,
}

func init() {
	bindFlagAndEnvVar(transformCmd, WorkflowFlag, "", fmt.Sprintf("Workflow to run [$%s]\nValid options: %s, %s, %s", WorkflowKey, quarry.WorkflowThumbnailGeneration, quarry.WorkflowMeshOptimization, quarry.WorkflowMetadataExtraction), WorkflowKey)
	transformCmd.Flags().Bool(WaitFlag, false, "Wait for the transformation to finish")

	transformCmd.Flags().BoolP("help", "h", false, "Help for transform")
	rootCmd.AddCommand(transformCmd)
}

func transform(c *cobra.Command, _ []string) error {
	if err := verifyRequiredConfig(ServiceURLFlag, IdentityURLFlag, ProjectIDFlag, AssetIDFlag, WorkflowFlag); err != nil {
		return err
	}
	workflowType, err := validateAndNormalizeWorkflow(viper.GetString(WorkflowFlag))
	if err != nil {
		return err
	}
	datasetID, err := singleDataset()
	if err != nil {
		return err
	}

	c.SilenceUsage = true

	service, err := newQuarryService()
	if err != nil {
		return err
	}

	projectID := viper.GetString(ProjectIDFlag)
	assetID := viper.GetString(AssetIDFlag)
	assetVersion := viper.GetString(AssetVersionFlag)

	wait, _ := c.Flags().GetBool(WaitFlag)
	if !wait {
		transformation, err := service.StartTransformation(projectID, assetID, assetVersion, datasetID, workflowType)
		if err != nil {
			return errors.Wrap(err, TransformFailureMessage)
		}
		fmt.Printf("Started %s transformation %s (%s)\n", transformation.WorkflowType, transformation.ID, transformation.Status)
		fmt.Println("Success!")
		return nil
	}

	runner := operations.NewTransformRunner(service, pollInitialInterval, pollMaxInterval, newLogger())

	ctx, cancel := commandContext()
	defer cancel()

	fmt.Printf("Running %s on %s@%s\n", workflowType, assetID, assetVersion)
	transformation, err := runner.Run(ctx, projectID, assetID, assetVersion, datasetID, workflowType)
	if err != nil {
		return errors.Wrap(err, TransformFailureMessage)
	}

	fmt.Printf("Transformation %s finished with status %s\n", transformation.ID, transformation.Status)
	fmt.Println("Success!")
	return nil
}

func validateAndNormalizeWorkflow(workflowType string) (string, error) {
	validWorkflows := []string{quarry.WorkflowThumbnailGeneration, quarry.WorkflowMeshOptimization, quarry.WorkflowMetadataExtraction}
	normalized := strings.ToLower(workflowType)
	for _, validWorkflow := range validWorkflows {
		if validWorkflow == normalized {
			return normalized, nil
		}
	}
	return "", errors.Errorf(InvalidWorkflowFailureFormat, workflowType)
}
