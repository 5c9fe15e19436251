package cmd

import (
	"github.com/spf13/cobra"

	"github.com/complykit/trustreport/pkg/report"
)

var (
	aiFlags      runFlags
	offlineFlags runFlags
)

var assessmentsCmd = &cobra.Command{
	Use:   "assessments",
	Short: "Generate assessment reports",
}

var aiCmd = &cobra.Command{
	Use:   "ai",
	Short: "Generate the AI risk assessment report",
	Long: `Generate the AI service risk assessment report. Each assessment's export
is fetched and scored from its question responses, then graded on the AI
maturity scale.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runReport(cmd, &aiFlags, report.KindAIAssessments, report.VendorApproved)
	},
}

var offlineCmd = &cobra.Command{
	Use:   "offline",
	Short: "Generate the offline software validation report",
	Long: `Generate the offline software validation report: completed validations
scored and graded on the software risk scale, joined with the assessed
asset's ticket reference.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runReport(cmd, &offlineFlags, report.KindOfflineAssessments, report.VendorApproved)
	},
}

func init() {
	rootCmd.AddCommand(assessmentsCmd)
	assessmentsCmd.AddCommand(aiCmd)
	assessmentsCmd.AddCommand(offlineCmd)
	addRunFlags(aiCmd, &aiFlags)
	addRunFlags(offlineCmd, &offlineFlags)
}
