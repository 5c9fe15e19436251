package report

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Assessment template names recognized by the listing filter.
const (
	// AITemplateName selects AI service risk assessments.
	AITemplateName = "AI Service Risk Assessment"

	// OfflineTemplateName selects offline software validation assessments.
	OfflineTemplateName = "Offline Software Validation"
)

// aiHeaders is the fixed column projection of the AI assessment report.
// assessment_id, primary_entity_id, created_date, and completed_date keep
// their raw names; downstream page templates reference them by link fields.
var aiHeaders = []string{
	"Vendor - Assessment Name",
	"Organization",
	"Status and Date",
	"Status",
	"created_date",
	"completed_date",
	"Score",
	"Date",
	"Grade",
	"assessment_id",
	"primary_entity_id",
}

// offlineHeaders extends the assessment projection with the asset ticket
// columns and renames the name and grade columns for the software view.
var offlineHeaders = []string{
	"Software Name",
	"Organization",
	"Status and Date",
	"Status",
	"created_date",
	"completed_date",
	"Score",
	"Date",
	"Grade",
	"assessment_id",
	"primary_entity_id",
	"Ticket URL",
	"Ticket Number",
}

// FilterAISummaries selects the assessments that belong to the AI risk report.
func FilterAISummaries(summaries []AssessmentSummary) []AssessmentSummary {
	var out []AssessmentSummary
	for _, s := range summaries {
		if s.TemplateName == AITemplateName && s.AssessmentID != "" {
			out = append(out, s)
		}
	}
	return out
}

// FilterOfflineSummaries selects the completed offline software validations.
func FilterOfflineSummaries(summaries []AssessmentSummary) []AssessmentSummary {
	var out []AssessmentSummary
	for _, s := range summaries {
		if s.TemplateName == OfflineTemplateName && s.Status == "Completed" && s.AssessmentID != "" {
			out = append(out, s)
		}
	}
	return out
}

// AssessmentIDs collects the assessment IDs of the given summaries.
func AssessmentIDs(summaries []AssessmentSummary) []string {
	ids := make([]string, 0, len(summaries))
	for _, s := range summaries {
		ids = append(ids, s.AssessmentID)
	}
	return ids
}

// PrimaryEntityIDs collects the distinct assessed entity IDs, skipping
// assessments with no primary entity.
func PrimaryEntityIDs(details []AssessmentDetail) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, d := range details {
		if d.PrimaryEntityID == ValueNA {
			continue
		}
		if _, ok := seen[d.PrimaryEntityID]; ok {
			continue
		}
		seen[d.PrimaryEntityID] = struct{}{}
		ids = append(ids, d.PrimaryEntityID)
	}
	return ids
}

// AIAssessments reconciles scored AI assessment details into the report table.
func AIAssessments(details []AssessmentDetail) *Table {
	t := NewTable(aiHeaders)
	for _, d := range details {
		row := assessmentCells(d, AIGrade(d.Score))
		t.Append(row...)
	}
	return t
}

// OfflineAssessments reconciles scored offline software validations, joining
// each assessment's primary entity against the resolved asset info. Entities
// without a resolved entry are dropped.
func OfflineAssessments(details []AssessmentDetail, assets []AssetInfo) *Table {
	byEntity := make(map[string]AssetInfo, len(assets))
	for _, a := range assets {
		byEntity[a.EntityID] = a
	}

	t := NewTable(offlineHeaders)
	for _, d := range details {
		info, ok := byEntity[d.PrimaryEntityID]
		if !ok {
			continue
		}
		row := assessmentCells(d, OfflineGrade(d.Score))
		row = append(row, info.Description, info.Ticket)
		t.Append(row...)
	}
	return t
}

// assessmentCells derives the shared assessment columns: the title-cased
// status, the status/date composite, and the later of the two dates.
func assessmentCells(d AssessmentDetail, grade string) []string {
	status := transformStatus(d.Status)

	var statusDate string
	if status == "Completed" {
		statusDate = fmt.Sprintf("%s on %s", status, d.CompletedDate)
	} else {
		statusDate = fmt.Sprintf("%s. Assessment created on %s.", status, d.CreatedDate)
	}

	date := laterDate(d.CompletedDate, d.CreatedDate)

	return []string{
		d.Name,
		d.Organization,
		statusDate,
		status,
		d.CreatedDate,
		d.CompletedDate,
		strconv.Itoa(d.Score),
		date,
		grade,
		d.ID,
		d.PrimaryEntityID,
	}
}

// transformStatus replaces underscores with spaces and title-cases each word,
// turning server constants like "UNDER_EVALUATION" into "Under Evaluation".
func transformStatus(status string) string {
	title := cases.Title(language.Und)
	return title.String(strings.ReplaceAll(status, "_", " "))
}
