package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quarryhq/quarry-courier/cache"
	"github.com/quarryhq/quarry-courier/file"
	"github.com/quarryhq/quarry-courier/operations"
)

const (
	CacheLimitFlag = "cache-limit"
	CacheLimitKey  = "QUARRY_CACHE_LIMIT"

	PullFailureMessage           = "Failed to pull asset files"
	InvalidCacheLimitErrorFormat = "Invalid cache-limit %s"
)

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Downloads the files of an asset version into the local store",
	Long:  `Downloads the files of an asset version into the local store, verifying each against its catalog digest`,
	RunE:  pull,
}

func init() {
	bindFlagAndEnvVar(pullCmd, CacheLimitFlag, "", fmt.Sprintf("Prune the local store down to this size after pulling, e.g. 10GB [$%s]", CacheLimitKey), CacheLimitKey)

	pullCmd.Flags().BoolP("help", "h", false, "Help for pull")
	rootCmd.AddCommand(pullCmd)
}

func pull(c *cobra.Command, _ []string) error {
	if err := verifyRequiredConfig(ServiceURLFlag, IdentityURLFlag, ProjectIDFlag, AssetIDFlag); err != nil {
		return err
	}
	cacheLimit, err := parseCacheLimit()
	if err != nil {
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

	downloader := operations.NewDownloader(source, store, newFileClient(), viper.GetInt(ConcurrencyFlag), newLogger())

	ctx, cancel := commandContext()
	defer cancel()

	projectID := viper.GetString(ProjectIDFlag)
	assetID := viper.GetString(AssetIDFlag)
	fmt.Printf("Pulling asset %s from project %s\n", assetID, projectID)

	summary, err := downloader.Download(ctx, projectID, assetID, viper.GetString(AssetVersionFlag), viper.GetStringSlice(DatasetFlag))
	if err != nil {
		return errors.Wrap(err, PullFailureMessage)
	}

	fmt.Printf("Pulled %d file(s) (%s) into %s\n",
		len(summary.Files),
		humanize.Bytes(uint64(summary.TotalBytes)),
		store.VersionDir(projectID, summary.Asset.ID, summary.Asset.Version))

	if cacheLimit > 0 {
		removed, err := store.Prune(cacheLimit)
		if err != nil {
			return err
		}
		for _, version := range removed {
			fmt.Printf("Pruned %s from the local store\n", version)
		}
	}

	fmt.Println("Success!")
	return nil
}

func parseCacheLimit() (int64, error) {
	raw := viper.GetString(CacheLimitFlag)
	if raw == "" {
		return 0, nil
	}
	parsed, err := humanize.ParseBytes(raw)
	if err != nil {
		return 0, errors.Wrapf(err, InvalidCacheLimitErrorFormat, raw)
	}
	return int64(parsed), nil
}
