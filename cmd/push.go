package cmd

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quarryhq/quarry-courier/operations"
	"github.com/quarryhq/quarry-courier/quarry"
)

const (
	SourceDirFlag = "source-dir"
	SourceDirKey  = "QUARRY_SOURCE_DIR"

	PushNameFlag        = "name"
	PushTypeFlag        = "asset-type"
	PushDescriptionFlag = "description"
	PushTagFlag         = "tag"
	PushMetadataFlag    = "metadata"
	PushStatusFlag      = "status"
	PushTransformFlag   = "transform"

	PushFailureMessage              = "Failed to push asset files"
	InvalidPushConfigurationMessage = "Invalid push configuration. Requires --asset-id for a new version or --name for a new asset."
	InvalidMetadataFlagErrorFormat  = "Invalid metadata flag %s, expected key=value"
	InvalidStatusFailureFormat      = "Invalid status %s. See help for the list of valid statuses."
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Uploads a local directory as a new asset or asset version",
	Long:  `Uploads every file under a local directory as a new asset, or as a new version of an existing one`,
	RunE:  push,
}

func init() {
	bindFlagAndEnvVar(pushCmd, SourceDirFlag, "", fmt.Sprintf("Local directory to upload [$%s]", SourceDirKey), SourceDirKey)

	pushCmd.Flags().String(PushNameFlag, "", "Name for a new asset\nNote: not required when --asset-id selects an existing asset")
	pushCmd.Flags().String(PushTypeFlag, quarry.AssetTypeModel3D, "Type for a new asset")
	pushCmd.Flags().String(PushDescriptionFlag, "", "Description for a new asset")
	pushCmd.Flags().StringSlice(PushTagFlag, nil, "Tag for a new asset, repeatable")
	pushCmd.Flags().StringSlice(PushMetadataFlag, nil, "Metadata field to set once the upload finishes, as key=value, repeatable")
	pushCmd.Flags().String(PushStatusFlag, "", fmt.Sprintf("Status to move the asset to once the upload finishes\nValid options: %s, %s, %s, %s", quarry.StatusDraft, quarry.StatusInReview, quarry.StatusApproved, quarry.StatusPublished))
	pushCmd.Flags().String(PushTransformFlag, "", fmt.Sprintf("Workflow to start once the upload finishes\nValid options: %s, %s, %s", quarry.WorkflowThumbnailGeneration, quarry.WorkflowMeshOptimization, quarry.WorkflowMetadataExtraction))

	pushCmd.Flags().BoolP("help", "h", false, "Help for push")
	rootCmd.AddCommand(pushCmd)
}

func push(c *cobra.Command, _ []string) error {
	if err := verifyRequiredConfig(ServiceURLFlag, IdentityURLFlag, ProjectIDFlag, SourceDirFlag); err != nil {
		return err
	}

	name, _ := c.Flags().GetString(PushNameFlag)
	assetID := viper.GetString(AssetIDFlag)
	if assetID == "" && name == "" {
		return errors.New(InvalidPushConfigurationMessage)
	}

	datasetID, err := singleDataset()
	if err != nil {
		return err
	}

	metadataPairs, _ := c.Flags().GetStringSlice(PushMetadataFlag)
	metadata, err := parseMetadataFlags(metadataPairs)
	if err != nil {
		return err
	}

	status, _ := c.Flags().GetString(PushStatusFlag)
	if status != "" {
		status, err = validateAndNormalizeStatus(status)
		if err != nil {
			return err
		}
	}

	workflowType, _ := c.Flags().GetString(PushTransformFlag)
	if workflowType != "" {
		workflowType, err = validateAndNormalizeWorkflow(workflowType)
		if err != nil {
			return err
		}
	}

	c.SilenceUsage = true

	service, err := newQuarryService()
	if err != nil {
		return err
	}

	pusher := operations.NewPusher(service, newFileClient(), viper.GetInt(ConcurrencyFlag), newLogger())

	ctx, cancel := commandContext()
	defer cancel()

	assetType, _ := c.Flags().GetString(PushTypeFlag)
	description, _ := c.Flags().GetString(PushDescriptionFlag)
	tags, _ := c.Flags().GetStringSlice(PushTagFlag)
	sourceDir := viper.GetString(SourceDirFlag)
	projectID := viper.GetString(ProjectIDFlag)

	fmt.Printf("Pushing %s to project %s\n", sourceDir, projectID)

	result, err := pusher.Push(ctx, operations.PushInput{
		ProjectID:    projectID,
		AssetID:      assetID,
		Name:         name,
		Type:         assetType,
		Description:  description,
		Tags:         tags,
		DatasetID:    datasetID,
		SourceDir:    sourceDir,
		Status:       status,
		Metadata:     metadata,
		WorkflowType: workflowType,
	})
	if err != nil {
		return errors.Wrap(err, PushFailureMessage)
	}

	fmt.Printf("Pushed %d file(s) (%s) as %s@%s\n",
		result.FileCount,
		humanize.Bytes(uint64(result.TotalBytes)),
		result.Asset.ID,
		result.Asset.Version)
	if result.Transformation.ID != "" {
		fmt.Printf("Started %s transformation %s\n", result.Transformation.WorkflowType, result.Transformation.ID)
	}
	fmt.Println("Success!")
	return nil
}

func parseMetadataFlags(pairs []string) (map[string]interface{}, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	metadata := map[string]interface{}{}
	for _, pair := range pairs {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, errors.Errorf(InvalidMetadataFlagErrorFormat, pair)
		}
		metadata[parts[0]] = parts[1]
	}
	return metadata, nil
}

func validateAndNormalizeStatus(status string) (string, error) {
	validStatuses := []string{quarry.StatusDraft, quarry.StatusInReview, quarry.StatusApproved, quarry.StatusPublished}
	normalized := strings.ToLower(status)
	for _, validStatus := range validStatuses {
		if validStatus == normalized {
			return normalized, nil
		}
	}
	return "", errors.Errorf(InvalidStatusFailureFormat, status)
}
