package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quarryhq/quarry-courier/quarry"
)

const (
	ListStatusFlag = "status"
	ListTypeFlag   = "asset-type"
	ListTagFlag    = "tag"
	ListQueryFlag  = "query"
	ListLimitFlag  = "limit"
	ListJSONFlag   = "json"

	AssetListFailureMessage = "Failed to list assets"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists assets in a Quarry project",
	Long:  `Lists the assets of the configured project, or searches them when --query is given`,
	RunE:  list,
}

func init() {
	listCmd.Flags().String(ListStatusFlag, "", fmt.Sprintf("Only show assets with this status\nValid options: %s, %s, %s, %s", quarry.StatusDraft, quarry.StatusInReview, quarry.StatusApproved, quarry.StatusPublished))
	listCmd.Flags().String(ListTypeFlag, "", "Only show assets of this type")
	listCmd.Flags().String(ListTagFlag, "", "Only show assets carrying this tag")
	listCmd.Flags().String(ListQueryFlag, "", "Full-text search over names, descriptions, and tags")
	listCmd.Flags().Int(ListLimitFlag, 0, "Stop after this many assets (0 lists everything)")
	listCmd.Flags().Bool(ListJSONFlag, false, "Print the assets as JSON")

	listCmd.Flags().BoolP("help", "h", false, "Help for list")
	rootCmd.AddCommand(listCmd)
}

func list(c *cobra.Command, _ []string) error {
	if err := verifyRequiredConfig(ServiceURLFlag, IdentityURLFlag, ProjectIDFlag); err != nil {
		return err
	}
	c.SilenceUsage = true

	service, err := newQuarryService()
	if err != nil {
		return err
	}

	status, _ := c.Flags().GetString(ListStatusFlag)
	assetType, _ := c.Flags().GetString(ListTypeFlag)
	tag, _ := c.Flags().GetString(ListTagFlag)
	query, _ := c.Flags().GetString(ListQueryFlag)
	limit, _ := c.Flags().GetInt(ListLimitFlag)
	asJSON, _ := c.Flags().GetBool(ListJSONFlag)

	projectID := viper.GetString(ProjectIDFlag)

	var assets []quarry.Asset
	if query != "" {
		assets, err = searchAssets(service, projectID, query, status, assetType, tag, limit)
	} else {
		assets, err = listAssets(service, projectID, status, assetType, tag, limit)
	}
	if err != nil {
		return errors.Wrap(err, AssetListFailureMessage)
	}

	if asJSON {
		return printAssetsJSON(assets)
	}
	printAssetsTable(assets)
	return nil
}

func listAssets(service *quarry.Service, projectID, status, assetType, tag string, limit int) ([]quarry.Asset, error) {
	pager := quarry.NewAssetPager(service, projectID, quarry.ListAssetsInput{
		Status: status,
		Type:   assetType,
		Tag:    tag,
	})

	var assets []quarry.Asset
	for {
		page, err := pager.Next()
		if err == quarry.NoMorePagesError {
			return assets, nil
		}
		if err != nil {
			return nil, err
		}
		assets = append(assets, page...)
		if limit > 0 && len(assets) >= limit {
			return assets[:limit], nil
		}
	}
}

func searchAssets(service *quarry.Service, projectID, query, status, assetType, tag string, limit int) ([]quarry.Asset, error) {
	input := quarry.SearchAssetsInput{
		Text:   query,
		Status: status,
		Type:   assetType,
		Limit:  quarry.MaxPageLimit,
	}
	if tag != "" {
		input.Tags = []string{tag}
	}

	var assets []quarry.Asset
	for {
		page, err := service.SearchAssets(projectID, input)
		if err != nil {
			return nil, err
		}
		assets = append(assets, page.Items...)
		input.Offset += len(page.Items)

		if limit > 0 && len(assets) >= limit {
			return assets[:limit], nil
		}
		if len(page.Items) < input.Limit || input.Offset >= page.Total {
			return assets, nil
		}
	}
}

func printAssetsJSON(assets []quarry.Asset) error {
	contents, err := json.MarshalIndent(assets, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(contents))
	return nil
}

func printAssetsTable(assets []quarry.Asset) {
	if len(assets) == 0 {
		fmt.Println("No assets found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tSTATUS\tVERSION\tUPDATED")
	for _, asset := range assets {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			asset.ID, asset.Name, asset.Type, asset.Status, asset.Version, relativeTime(asset.UpdatedAt))
	}
	w.Flush()
	fmt.Printf("%d asset(s)\n", len(assets))
}

// relativeTime renders a service timestamp the way humans read it,
// falling back to the raw value when it does not parse.
func relativeTime(value string) string {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}
	return humanize.Time(parsed)
}
