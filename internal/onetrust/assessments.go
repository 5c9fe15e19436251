package onetrust

import (
	"context"
	"strings"

	"github.com/complykit/trustreport/pkg/errors"
	"github.com/complykit/trustreport/pkg/logging"
	"github.com/complykit/trustreport/pkg/report"
)

// assessmentExport mirrors the export document of one assessment: header
// fields, risk counters, the assessed entity, and the full question tree the
// score is computed from.
type assessmentExport struct {
	ID           string  `json:"assessmentId"`
	Number       string  `json:"assessmentNumber"`
	Name         string  `json:"name"`
	Status       *string `json:"status"`
	CreatedDT    string  `json:"createdDT"`
	CompletedOn  *string `json:"completedOn"`
	LowRisk      int     `json:"lowRisk"`
	MediumRisk   int     `json:"mediumRisk"`
	HighRisk     int     `json:"highRisk"`
	VeryHighRisk int     `json:"veryHighRisk"`

	OrgGroup struct {
		Name string `json:"name"`
	} `json:"orgGroup"`

	PrimaryEntityDetails []struct {
		ID string `json:"id"`
	} `json:"primaryEntityDetails"`

	Sections []struct {
		Questions []struct {
			Question struct {
				Options []struct {
					ID     string `json:"id"`
					Score  int    `json:"score"`
					Option string `json:"option"`
				} `json:"options"`
			} `json:"question"`
			QuestionResponses []struct {
				Responses []struct {
					ResponseID string `json:"responseId"`
					Response   string `json:"response"`
				} `json:"responses"`
			} `json:"questionResponses"`
		} `json:"questions"`
	} `json:"sections"`
}

// score sums the option scores of every selected response. Responses whose
// ID matches no option, and assessments with no responses at all, contribute
// nothing, so an untouched assessment scores zero.
func (e *assessmentExport) score() int {
	optionScores := make(map[string]int)
	for _, s := range e.Sections {
		for _, q := range s.Questions {
			for _, o := range q.Question.Options {
				optionScores[o.ID] = o.Score
			}
		}
	}

	total := 0
	for _, s := range e.Sections {
		for _, q := range s.Questions {
			for _, qr := range q.QuestionResponses {
				for _, r := range qr.Responses {
					total += optionScores[r.ResponseID]
				}
			}
		}
	}
	return total
}

// toDetail flattens the export into the scored detail record the report
// pipelines consume.
func (e *assessmentExport) toDetail() report.AssessmentDetail {
	status := report.ValueNA
	if e.Status != nil {
		status = *e.Status
	}

	completed := report.ValueNA
	if e.CompletedOn != nil {
		completed = datePart(*e.CompletedOn)
	}

	entity := report.ValueNA
	if len(e.PrimaryEntityDetails) > 0 {
		entity = e.PrimaryEntityDetails[0].ID
	}

	return report.AssessmentDetail{
		ID:                e.ID,
		Number:            e.Number,
		Name:              e.Name,
		Status:            status,
		CreatedDate:       datePart(e.CreatedDT),
		CompletedDate:     completed,
		Organization:      e.OrgGroup.Name,
		LowRiskCount:      e.LowRisk,
		MediumRiskCount:   e.MediumRisk,
		HighRiskCount:     e.HighRisk,
		VeryHighRiskCount: e.VeryHighRisk,
		PrimaryEntityID:   entity,
		Score:             e.score(),
	}
}

// fetchAssessment retrieves and scores one assessment export. An assessment
// deleted between listing and export is an anticipated miss.
func (c *Client) fetchAssessment(ctx context.Context, id string) (*report.AssessmentDetail, error) {
	var export assessmentExport
	err := c.fetchJSON(ctx, serviceAssessment, c.assessmentExportURL(id), &export)
	if errors.IsNotFound(err) {
		logging.Ctx(ctx).Warn().Str("assessment_id", id).Msg("export not found for assessmentID")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	detail := export.toDetail()
	return &detail, nil
}

// AssessmentDetails fetches and scores the exports of the given assessments
// concurrently. Assessments that could not be exported are dropped.
func (c *Client) AssessmentDetails(ctx context.Context, ids []string) ([]report.AssessmentDetail, error) {
	resolved, err := fanOut(ctx, ids, c.fanoutLimit, c.fetchAssessment)
	if err != nil {
		return nil, err
	}

	details := make([]report.AssessmentDetail, 0, len(resolved))
	var low, medium, high, veryHigh int
	for _, d := range resolved {
		if d == nil {
			continue
		}
		details = append(details, *d)
		low += d.LowRiskCount
		medium += d.MediumRiskCount
		high += d.HighRiskCount
		veryHigh += d.VeryHighRiskCount
	}

	logging.Ctx(ctx).Info().
		Int("assessments", len(details)).
		Int("low_risk", low).
		Int("medium_risk", medium).
		Int("high_risk", high).
		Int("very_high_risk", veryHigh).
		Msg("Collected assessment exports")
	return details, nil
}

// datePart reduces a server timestamp to the text before its 'T' separator.
func datePart(s string) string {
	if i := strings.IndexByte(s, 'T'); i > 0 {
		return s[:i]
	}
	return s
}
