package cmd

import (
	"fmt"

	"revo-utils/core/storage"
	"revo-utils/core/webpack"

	"github.com/spf13/cobra"
)

var assetsApp string
var assetsExt string
var assetsAttrs string

// assetsCmd represents the assets command
var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Resolve webpack bundles from the stats file",
}

var assetsFilesCmd = &cobra.Command{
	Use:   "files <bundle>",
	Short: "Print the URLs of a bundle's files",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := newBundleRegistry()
		if err != nil {
			return err
		}
		chunks, err := registry.GetFiles(cmd.Context(), args[0], assetsExt, assetsApp)
		if err != nil {
			return err
		}
		for _, c := range chunks {
			fmt.Fprintln(cmd.OutOrStdout(), c.URL)
		}
		return nil
	},
}

var assetsTagsCmd = &cobra.Command{
	Use:   "tags <bundle>",
	Short: "Print a bundle as script and link tags",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := newBundleRegistry()
		if err != nil {
			return err
		}
		tags, err := registry.GetAsTags(cmd.Context(), args[0], assetsExt, assetsApp, assetsAttrs)
		if err != nil {
			return err
		}
		for _, tag := range tags {
			fmt.Fprintln(cmd.OutOrStdout(), tag)
		}
		return nil
	},
}

var assetsStaticCmd = &cobra.Command{
	Use:   "static <name>",
	Short: "Print the URL of a webpack-emitted asset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := newBundleRegistry()
		if err != nil {
			return err
		}
		url, err := registry.GetStatic(cmd.Context(), args[0], assetsApp)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), url)
		return nil
	},
}

func newBundleRegistry() (*webpack.Registry, error) {
	cfg, logg, err := bootstrap()
	if err != nil {
		return nil, err
	}

	opts := []webpack.Option{webpack.WithLogger(logg)}
	if cfg.Assets.Source == webpack.SourceStorage {
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		opts = append(opts, webpack.WithStorage(store))
	}
	return webpack.NewRegistry(cfg.Assets, opts...)
}

func init() {
	assetsCmd.PersistentFlags().StringVar(&assetsApp, "app", webpack.DefaultApp, "App whose stats file is used")
	assetsFilesCmd.Flags().StringVar(&assetsExt, "ext", "", "Only files with this extension")
	assetsTagsCmd.Flags().StringVar(&assetsExt, "ext", "", "Only files with this extension")
	assetsTagsCmd.Flags().StringVar(&assetsAttrs, "attrs", "", "Extra attributes for each tag")

	assetsCmd.AddCommand(assetsFilesCmd, assetsTagsCmd, assetsStaticCmd)
	RootCmd.AddCommand(assetsCmd)
}
