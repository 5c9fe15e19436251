package report

import (
	"fmt"

	"github.com/complykit/trustreport/pkg/errors"
)

// Kind identifies one of the reconciliation pipelines.
type Kind string

// The supported report kinds.
const (
	KindVendors            Kind = "vendors"
	KindAssets             Kind = "assets"
	KindAIAssessments      Kind = "ai_assessments"
	KindOfflineAssessments Kind = "offline_sw_assessments"
)

// ParseKind validates a requested report kind. An unrecognized kind is a
// fatal configuration error: no partial pipeline execution happens.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindVendors, KindAssets, KindAIAssessments, KindOfflineAssessments:
		return Kind(s), nil
	default:
		return "", errors.NewConfigError("report", fmt.Sprintf("unknown report kind %q", s), errors.ErrInvalidInput)
	}
}

// VendorStatus selects which vendor workflow view a vendor report covers.
type VendorStatus string

// The supported vendor status views.
const (
	VendorApproved           VendorStatus = "approved"
	VendorInProgress         VendorStatus = "in progress"
	VendorRejectedTerminated VendorStatus = "rejected_terminated"
)

// ParseVendorStatus validates a requested vendor status view. It accepts a few
// spelling variants used on the command line.
func ParseVendorStatus(s string) (VendorStatus, error) {
	switch s {
	case "", "approved":
		return VendorApproved, nil
	case "in progress", "in-progress", "in_progress":
		return VendorInProgress, nil
	case "rejected_terminated", "rejected-terminated", "rejected", "terminated":
		return VendorRejectedTerminated, nil
	default:
		return "", errors.NewConfigError("report", fmt.Sprintf("unknown vendor status %q", s), errors.ErrInvalidInput)
	}
}

// PageTitle returns the wiki page title a report syncs to.
func (k Kind) PageTitle(status VendorStatus) string {
	switch k {
	case KindVendors:
		switch status {
		case VendorInProgress:
			return "In-Progress VRAs"
		case VendorRejectedTerminated:
			return "Rejected or Terminated Vendor Registry"
		default:
			return "Vendor Registry (Approved Vendors)"
		}
	case KindAssets:
		return "M365 Assets Registry"
	case KindAIAssessments:
		return "Third-Party AI Risk Maturity Assessments"
	case KindOfflineAssessments:
		return "Offline Software Validation Assessments"
	default:
		return string(k)
	}
}

// Title returns the human-readable description used in summary lines.
func (k Kind) Title(status VendorStatus) string {
	switch k {
	case KindVendors:
		switch status {
		case VendorInProgress:
			return "Vendor Assessments in Progress"
		case VendorRejectedTerminated:
			return "Rejected or Terminated Vendors"
		default:
			return "Approved Vendors"
		}
	case KindAssets:
		return "Approved Assets"
	case KindAIAssessments:
		return "AI Assessments"
	case KindOfflineAssessments:
		return "Offline Software Assessments"
	default:
		return string(k)
	}
}
