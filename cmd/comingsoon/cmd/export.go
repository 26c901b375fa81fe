package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/onur-cay/comingsoon/internal/export"
	"github.com/onur-cay/comingsoon/internal/rendering"
	"github.com/onur-cay/comingsoon/internal/storage"
	"github.com/onur-cay/comingsoon/web"
)

var (
	exportOutDir string

	// exportFs is the filesystem exports are written to.
	exportFs afero.Fs = afero.NewOsFs()
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the rendered site to a directory",
	Long: `Render the coming soon page to index.html and copy the embedded assets
next to it, producing a directory any static host can serve.

Examples:
  comingsoon export               # writes to EXPORT_DIR (default "dist")
  comingsoon export --out public  # writes to ./public`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		dir := cfg.ExportDir
		if exportOutDir != "" {
			dir = exportOutDir
		}

		x := export.New(storage.NewAferoStore(exportFs), rendering.NewUniversalRenderer(), web.FS)
		written, err := x.Export(cmd.Context(), dir)
		if err != nil {
			return err
		}
		for _, p := range written {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutDir, "out", "o", "", "output directory (overrides EXPORT_DIR)")
	rootCmd.AddCommand(exportCmd)
}
