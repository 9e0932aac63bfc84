package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hotglue/target-salesforce/discovery"
	"github.com/hotglue/target-salesforce/file"
	"github.com/hotglue/target-salesforce/schema"
)

const DiscoverFailureMessage = "Failed to discover Salesforce objects"

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Writes the catalog of syncable Salesforce objects to stdout",
	Long:  `Describes every object in the org and writes a catalog with a JSON schema and field metadata for each one to stdout`,
	RunE:  discover,
}

func init() {
	discoverCmd.Flags().BoolP("help", "h", false, "Help for discover")
	rootCmd.AddCommand(discoverCmd)
}

func discover(c *cobra.Command, _ []string) error {
	cfg, logger, err := loadRun()
	if err != nil {
		return err
	}
	c.SilenceUsage = true
	defer logger.Sync()

	ctx := c.Context()
	client, err := login(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer logRequestCount(client, logger)

	entries, err := discovery.NewDiscoverer(client, cfg, logger).Discover(ctx)
	if err != nil {
		return errors.Wrap(err, DiscoverFailureMessage)
	}

	return file.WriteCatalog(c.OutOrStdout(), schema.Catalog{Streams: entries})
}
