package cmd

import (
	"github.com/spf13/cobra"

	"github.com/complykit/trustreport/pkg/report"
)

var (
	vendorsFlags  runFlags
	vendorsStatus string
)

var vendorsCmd = &cobra.Command{
	Use:   "vendors",
	Short: "Generate the vendor registry report",
	Long: `Generate one of the vendor registry reports.

The status flag selects the workflow view: approved (active and live),
in-progress (under evaluation or in review), or rejected (rejected or
terminated). Business owners are resolved against the SCIM user directory;
vendors whose owner cannot be resolved are excluded.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		status, err := report.ParseVendorStatus(vendorsStatus)
		if err != nil {
			return err
		}
		return runReport(cmd, &vendorsFlags, report.KindVendors, status)
	},
}

func init() {
	rootCmd.AddCommand(vendorsCmd)
	addRunFlags(vendorsCmd, &vendorsFlags)
	vendorsCmd.Flags().StringVar(&vendorsStatus, "status", "approved", "workflow view: approved, in-progress, rejected")
}
