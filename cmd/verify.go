package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quarryhq/quarry-courier/file"
	"github.com/quarryhq/quarry-courier/operations"
)

const (
	DataTarFilePathFlag = "path"

	VerifyFailureMessage = "Failed to verify the archive"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verifies an exported archive",
	Long:  `Verifies that an archive from the 'export' command is complete and that every file matches its recorded digest`,
	RunE:  verify,
}

func init() {
	verifyCmd.Flags().String(DataTarFilePathFlag, "", "Tar archive containing data from 'export' command")
	viper.BindPFlag(DataTarFilePathFlag, verifyCmd.Flag(DataTarFilePathFlag))

	verifyCmd.Flags().BoolP("help", "h", false, "Help for verify")
	rootCmd.AddCommand(verifyCmd)
}

func verify(c *cobra.Command, _ []string) error {
	err := verifyRequiredConfig(DataTarFilePathFlag)
	if err != nil {
		return err
	}
	c.SilenceUsage = true

	tarReader := file.NewTarReader(viper.GetString(DataTarFilePathFlag))
	validator := file.NewValidator(tarReader)
	verifier := operations.NewVerifier(validator, tarReader, newLogger())

	metadata, err := verifier.Verify()
	if err != nil {
		return errors.Wrap(err, VerifyFailureMessage)
	}

	fmt.Printf("Verified %s: asset %s@%s, %d file(s)\n",
		metadata.AssetName, metadata.AssetID, metadata.Version, len(metadata.FileDigests))
	fmt.Printf("Exported %s by %s %s\n", relativeTime(metadata.ExportedAt), toolName, metadata.ToolVersion)
	fmt.Println("Success!")
	return nil
}
