package main

import (
	"bufio"
	"fmt"

	"github.com/resource-crud-api/internal/config"
	"github.com/resource-crud-api/internal/models"
	"github.com/resource-crud-api/internal/service"
	"github.com/spf13/cobra"
)

var (
	exportResource string
	exportFormat   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a stored collection to stdout",
	Example: `  resource-api export --resource comments --format ndjson
  STORAGE_DRIVER=file resource-api export --resource users --format csv`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsResource(exportResource) {
			return fmt.Errorf("resource must be one of: users, posts, comments (got %q)", exportResource)
		}
		if !service.ValidFormat(exportFormat) {
			return fmt.Errorf("format must be one of: json, ndjson, csv (got %q)", exportFormat)
		}

		// Records go to stdout, so logs go to stderr
		a, err := setup(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer a.repos.Close()

		if a.cfg.Storage.Driver == config.StorageMemory {
			a.log.Warn().Msg("Memory storage starts empty; set STORAGE_DRIVER=file to export stored records")
		}

		out := bufio.NewWriter(cmd.OutOrStdout())
		if err := a.services.Export.Stream(cmd.Context(), out, exportResource, exportFormat); err != nil {
			return err
		}
		return out.Flush()
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportResource, "resource", "r", models.ResourceComments, "resource to export (users, posts, comments)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", service.FormatJSON, "output format (json, ndjson, csv)")
}
