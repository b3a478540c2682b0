package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quarryhq/quarry-courier/cache"
	"github.com/quarryhq/quarry-courier/file"
	"github.com/quarryhq/quarry-courier/operations"
)

const (
	OutputPathFlag = "output-dir"
	OutputPathKey  = "QUARRY_OUTPUT_DIR"

	OutputFilePrefix     = "AssetExport_"
	ExportFailureMessage = "Failed to export the asset version"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Writes an asset version as a tar archive",
	Long:  `Writes the files of an asset version to a tar archive with a digest manifest, pulling them first when the local store has no copy`,
	RunE:  export,
}

func init() {
	bindFlagAndEnvVar(exportCmd, OutputPathFlag, "", fmt.Sprintf("Local directory to write the archive [$%s]", OutputPathKey), OutputPathKey)

	exportCmd.Flags().BoolP("help", "h", false, "Help for export")
	rootCmd.AddCommand(exportCmd)
}

func export(c *cobra.Command, _ []string) error {
	if err := verifyRequiredConfig(ServiceURLFlag, IdentityURLFlag, ProjectIDFlag, AssetIDFlag, OutputPathFlag); err != nil {
		return err
	}
	c.SilenceUsage = true

	service, err := newQuarryService()
	if err != nil {
		return err
	}
	source := cache.NewDataSource(service, cache.AllEnabled())

	storeDir, err := storeDirPath()
	if err != nil {
		return err
	}
	store := file.NewStore(storeDir)

	projectID := viper.GetString(ProjectIDFlag)
	assetID := viper.GetString(AssetIDFlag)

	asset, err := source.Asset(projectID, assetID, viper.GetString(AssetVersionFlag))
	if err != nil {
		return errors.Wrap(err, ExportFailureMessage)
	}

	logger := newLogger()

	if _, err := store.Manifest(projectID, assetID, asset.Version); err != nil {
		downloader := operations.NewDownloader(source, store, newFileClient(), viper.GetInt(ConcurrencyFlag), logger)

		ctx, cancel := commandContext()
		defer cancel()

		fmt.Printf("No local copy of %s@%s, pulling it first\n", assetID, asset.Version)
		if _, err := downloader.Download(ctx, projectID, assetID, asset.Version, viper.GetStringSlice(DatasetFlag)); err != nil {
			return errors.Wrap(err, ExportFailureMessage)
		}
	}

	tarFilePath := filepath.Join(
		viper.GetString(OutputPathFlag),
		fmt.Sprintf("%s%d.tar", OutputFilePrefix, time.Now().UTC().Unix()),
	)
	tarWriter, err := file.NewTarWriter(tarFilePath)
	if err != nil {
		return err
	}

	exporter := operations.NewExporter(store, tarWriter, version, logger)

	fmt.Printf("Exporting %s@%s\n", assetID, asset.Version)
	if err := exporter.Export(projectID, assetID, asset.Version, asset.Name); err != nil {
		os.Remove(tarFilePath)
		return err
	}

	fmt.Printf("Wrote archive to %s\n", tarFilePath)
	fmt.Println("Success!")
	return nil
}
