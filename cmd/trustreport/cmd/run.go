package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/complykit/trustreport/internal/config"
	"github.com/complykit/trustreport/internal/export"
	"github.com/complykit/trustreport/internal/onetrust"
	"github.com/complykit/trustreport/internal/transport"
	"github.com/complykit/trustreport/pkg/errors"
	"github.com/complykit/trustreport/pkg/logging"
	"github.com/complykit/trustreport/pkg/report"
)

// runFlags are the output options shared by every report command.
type runFlags struct {
	format     string
	save       bool
	uniqueName bool
	upload     bool
	sync       bool
	outputDir  string
}

// addRunFlags registers the shared output flags on a report command.
func addRunFlags(cmd *cobra.Command, flags *runFlags) {
	cmd.Flags().StringVarP(&flags.format, "output", "o", "", "console format: table, json, yaml (default: auto-detect)")
	cmd.Flags().BoolVar(&flags.save, "save", false, "write the report as CSV and HTML files")
	cmd.Flags().BoolVar(&flags.uniqueName, "unique-name", false, "suffix saved filenames with a run timestamp")
	cmd.Flags().BoolVar(&flags.upload, "upload", false, "upload saved files to object storage (implies --save)")
	cmd.Flags().BoolVar(&flags.sync, "sync", false, "sync the report onto its wiki page")
	cmd.Flags().StringVar(&flags.outputDir, "output-dir", "", "directory for saved files (default from config)")
}

// runReport executes one report end to end: fetch and reconcile under the
// run-level retry budget, print the summary and the table, then save, upload,
// and sync as requested.
func runReport(cmd *cobra.Command, flags *runFlags, kind report.Kind, status report.VendorStatus) error {
	ctx := logging.WithRunID(cmd.Context(), uuid.NewString())
	ctx = logging.WithReport(ctx, string(kind))

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	format, err := export.ParseFormat(flags.format)
	if err != nil {
		return err
	}

	client := onetrust.New(cfg.OneTrust.Hostname, cfg.OneTrust.Version, cfg.OneTrust.Token,
		onetrust.WithFanoutLimit(cfg.Fanout.Concurrency),
		onetrust.WithTimeout(cfg.HTTPTimeout()))

	var table *report.Table
	err = transport.RunPolicy().Do(ctx, "report "+string(kind), func() error {
		var buildErr error
		table, buildErr = buildTable(ctx, client, kind, status)
		return buildErr
	})
	if err != nil {
		if errors.IsCanceled(err) {
			logging.Ctx(ctx).Warn().Msg("Run canceled")
		}
		return err
	}

	fmt.Printf("There are %d %s.\n", table.Len(), kind.Title(status))

	formatter := export.NewFormatter(export.DetectFormat(string(format)))
	if err := formatter.Format(os.Stdout, table); err != nil {
		return err
	}

	if flags.save || flags.upload {
		if err := saveReport(ctx, cfg, flags, kind, status, table); err != nil {
			return err
		}
	}

	if flags.sync {
		if !cfg.SyncEnabled() {
			return fmt.Errorf("--sync requires confluence settings in the config file")
		}
		syncer := export.NewConfluence(cfg.Confluence.URL, cfg.Confluence.Space,
			cfg.Confluence.Username, cfg.Confluence.Password)
		if err := syncer.Sync(ctx, kind.PageTitle(status), table); err != nil {
			return err
		}
	}

	return nil
}

// buildTable runs the fetch-resolve-reconcile pipeline for one report kind.
func buildTable(ctx context.Context, client *onetrust.Client, kind report.Kind, status report.VendorStatus) (*report.Table, error) {
	switch kind {
	case report.KindVendors:
		vendors, err := client.ListVendors(ctx)
		if err != nil {
			return nil, err
		}
		users, err := client.UserDirectory(ctx, report.OwnerIDs(vendors))
		if err != nil {
			return nil, err
		}
		return report.Vendors(vendors, users, status), nil

	case report.KindAssets:
		assets, err := client.ListAssets(ctx)
		if err != nil {
			return nil, err
		}
		users, err := client.UserDirectory(ctx, report.TechnicalOwnerIDs(assets))
		if err != nil {
			return nil, err
		}
		return report.Assets(assets, users), nil

	case report.KindAIAssessments:
		summaries, err := client.ListAssessments(ctx)
		if err != nil {
			return nil, err
		}
		details, err := client.AssessmentDetails(ctx, report.AssessmentIDs(report.FilterAISummaries(summaries)))
		if err != nil {
			return nil, err
		}
		return report.AIAssessments(details), nil

	case report.KindOfflineAssessments:
		summaries, err := client.ListAssessments(ctx)
		if err != nil {
			return nil, err
		}
		details, err := client.AssessmentDetails(ctx, report.AssessmentIDs(report.FilterOfflineSummaries(summaries)))
		if err != nil {
			return nil, err
		}
		assets, err := client.AssetDescriptions(ctx, report.PrimaryEntityIDs(details))
		if err != nil {
			return nil, err
		}
		return report.OfflineAssessments(details, assets), nil

	default:
		_, err := report.ParseKind(string(kind))
		return nil, err
	}
}

// saveReport writes the CSV and HTML exports and optionally uploads them.
func saveReport(ctx context.Context, cfg *config.Config, flags *runFlags, kind report.Kind, status report.VendorStatus, table *report.Table) error {
	ctx = logging.WithOperation(ctx, "save")

	dir := flags.outputDir
	if dir == "" {
		dir = cfg.Output.Dir
	}
	if err := export.EnsureDir(dir); err != nil {
		return err
	}

	name := export.Filename(kind, status, flags.uniqueName)

	csvPath, err := export.WriteCSV(dir, name, table)
	if err != nil {
		return err
	}
	htmlPath, err := export.WriteHTML(dir, name, table)
	if err != nil {
		return err
	}
	logging.Ctx(ctx).Info().
		Str("csv", csvPath).
		Str("html", htmlPath).
		Msg("Saved report files")

	if !flags.upload {
		return nil
	}
	if !cfg.UploadEnabled() {
		return fmt.Errorf("--upload requires storage settings in the config file")
	}

	uploader, err := export.NewUploader(cfg.Storage.Endpoint, cfg.Storage.AccessKey,
		cfg.Storage.SecretKey, cfg.Storage.Bucket, cfg.Storage.UseSSL)
	if err != nil {
		return err
	}
	for _, path := range []string{csvPath, htmlPath} {
		if _, err := uploader.Upload(ctx, path); err != nil {
			return err
		}
	}
	return nil
}
