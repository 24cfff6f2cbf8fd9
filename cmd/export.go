package cmd

import (
	"fmt"
	"os"

	"revo-utils/core/database"
	"revo-utils/core/excel"
	"revo-utils/core/storage"
	"revo-utils/feature/tables"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <table>",
	Short: "Export a database table to an xlsx workbook",
	Long: `Exports every row of a table to a spreadsheet. Columns are given as
path[:width[:header]] items; without --columns every column is exported.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		columns, _ := cmd.Flags().GetString("columns")
		out, _ := cmd.Flags().GetString("out")
		upload, _ := cmd.Flags().GetBool("upload")

		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		var specs []excel.ColumnSpec
		if columns != "" {
			if specs, err = excel.ParseColumns(columns); err != nil {
				return err
			}
		}

		db, err := database.Connect(cfg.Database, logg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}

		var store storage.Client
		if upload {
			if store, err = storage.NewClient(cfg.Storage); err != nil {
				return fmt.Errorf("failed to create storage client: %w", err)
			}
			if err := storage.EnsureBucket(cmd.Context(), store, cfg.Storage.Bucket); err != nil {
				return err
			}
		}

		svc := tables.NewService(db, store, cfg.Storage.Bucket, cfg.Export, logg, nil)
		ctx := cmd.Context()
		table := args[0]

		if upload {
			result, err := svc.Upload(ctx, table, specs)
			if err != nil {
				return err
			}
			logg.Info("Export uploaded",
				zap.String("key", result.Key),
				zap.Int("rows", result.Rows),
				zap.String("size", humanize.Bytes(uint64(result.Size))),
			)
			return nil
		}

		if out == "" {
			out = table + ".xlsx"
		}
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		result, err := svc.Export(ctx, table, specs, f)
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			_ = os.Remove(out)
			return err
		}

		logg.Info("Export written", zap.String("file", out), zap.Int("rows", result.Rows))
		return nil
	},
}

func init() {
	exportCmd.Flags().String("columns", "", "Columns as path[:width[:header]], comma-separated")
	exportCmd.Flags().StringP("out", "o", "", "Output file (default <table>.xlsx)")
	exportCmd.Flags().Bool("upload", false, "Store the workbook in the storage bucket instead of a file")
	RootCmd.AddCommand(exportCmd)
}
