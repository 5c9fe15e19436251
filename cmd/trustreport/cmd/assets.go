package cmd

import (
	"github.com/spf13/cobra"

	"github.com/complykit/trustreport/pkg/report"
)

var assetsFlags runFlags

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Generate the asset registry report",
	Long: `Generate the asset registry report: active or pending assets flagged for
the annual permissions review, with technical owners resolved against the
SCIM user directory.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runReport(cmd, &assetsFlags, report.KindAssets, report.VendorApproved)
	},
}

func init() {
	rootCmd.AddCommand(assetsCmd)
	addRunFlags(assetsCmd, &assetsFlags)
}
