package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hotglue/target-salesforce/config"
	"github.com/hotglue/target-salesforce/file"
	"github.com/hotglue/target-salesforce/upload"
)

const UploadFailureMessage = "Failed to upload records"

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Uploads JSON record batches to Salesforce",
	Long:  `Creates or updates one Salesforce record per input row. Each input file holds a JSON array of records for the object its file name names.`,
	RunE:  uploadRecords,
}

func init() {
	bindFlagAndEnvVar(uploadCmd.Flags(), config.InputPathKey, "", "Directory or archive of JSON record batches")
	bindFlagAndEnvVar(uploadCmd.Flags(), config.PriorityObjectsKey, config.DefaultPriorityObjects, "Objects uploaded before all others, in order")

	uploadCmd.Flags().BoolP("help", "h", false, "Help for upload")
	rootCmd.AddCommand(uploadCmd)
}

func uploadRecords(c *cobra.Command, _ []string) error {
	cfg, logger, err := loadRun(config.InputPathKey)
	if err != nil {
		return err
	}
	c.SilenceUsage = true
	defer logger.Sync()

	lock, err := file.LockInput(cfg.InputPath)
	if err != nil {
		return err
	}
	defer lock.Unlock()

	inputs, err := file.ReadInputs(cfg.InputPath)
	if err != nil {
		return err
	}
	batches := make([]upload.Batch, 0, len(inputs))
	for _, input := range inputs {
		batches = append(batches, input)
	}

	ctx := c.Context()
	client, err := login(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer logRequestCount(client, logger)

	logger.Info("uploading", zap.String("input", cfg.InputPath), zap.Int("files", len(batches)))
	orchestrator := upload.NewOrchestrator(client, upload.NewReconciler(client, logger), cfg.ConfigFile, logger)
	report, err := orchestrator.Run(ctx, batches, cfg.PriorityObjects)
	if report != nil {
		fmt.Fprintln(c.OutOrStdout(), report.Render())
	}
	if err != nil {
		return errors.Wrap(err, UploadFailureMessage)
	}
	return nil
}
