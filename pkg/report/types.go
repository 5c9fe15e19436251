// Package report implements the reconciliation pipelines that turn raw
// OneTrust inventory records into flat, filtered report tables: impute
// defaults, derive computed fields, filter by state, join against a resolved
// identity directory, project and rename columns, and re-index rows.
package report

// Ref is a relationship reference holding only an entity ID. Relationship
// fields arrive as arrays of these, in practice holding zero or one element.
type Ref struct {
	ID string `json:"id"`
}

// ValueRef is a categorical reference carrying a display value, as used by
// custom fields and asset types.
type ValueRef struct {
	ID       string `json:"id"`
	Value    string `json:"value"`
	ValueKey string `json:"valueKey"`
}

// ValueField projects a nested {"value": ...} object.
type ValueField struct {
	Value string `json:"value"`
}

// StatusField projects the nested status.key field.
type StatusField struct {
	Key string `json:"key"`
}

// WorkflowStage projects the nested workflowStage.stage.value field.
type WorkflowStage struct {
	Stage ValueField `json:"stage"`
}

// Vendor is one vendor inventory record as delivered by the API.
type Vendor struct {
	Number        string        `json:"number"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Owner         []Ref         `json:"owner"`
	Organization  ValueField    `json:"organization"`
	Status        StatusField   `json:"status"`
	WorkflowStage WorkflowStage `json:"workflowStage"`
	Category      []ValueRef    `json:"customField1000"`
	Website       string        `json:"customField1001"`
	VendorID      *string       `json:"vendorId"`
	CreatedDate   string        `json:"createdDate"`
	UpdatedDate   string        `json:"updatedDate"`
}

// Asset is one asset inventory record as delivered by the API.
type Asset struct {
	Name           string      `json:"name"`
	TechnicalOwner []Ref       `json:"technicalOwner"`
	Organization   ValueField  `json:"organization"`
	Description    *string     `json:"description"`
	Status         StatusField `json:"status"`
	Type           []ValueRef  `json:"type"`
	GraphReview    []ValueRef  `json:"customField1001"`
}

// User is one SCIM directory record.
type User struct {
	ID       string `json:"id"`
	UserName string `json:"userName"`
}

// AssessmentSummary is one row of the assessment listing, enough to decide
// which assessments need a detail fetch.
type AssessmentSummary struct {
	AssessmentID string `json:"assessmentId"`
	TemplateName string `json:"templateName"`
	Status       string `json:"status"`
}

// AssessmentDetail is the scored detail record built by the detail fan-out.
// Dates are calendar dates ("2006-01-02") or "N/A".
type AssessmentDetail struct {
	ID                string `json:"assessment_id"`
	Number            string `json:"assessment_number"`
	Name              string `json:"assessment_name"`
	Status            string `json:"assessment_status"`
	CreatedDate       string `json:"created_date"`
	CompletedDate     string `json:"completed_date"`
	Organization      string `json:"organization"`
	LowRiskCount      int    `json:"low_risk_count"`
	MediumRiskCount   int    `json:"medium_risk_count"`
	HighRiskCount     int    `json:"high_risk_count"`
	VeryHighRiskCount int    `json:"very_high_risk_count"`
	PrimaryEntityID   string `json:"primary_entity_id"`
	Score             int    `json:"assessment_score"`
}

// AssetInfo links an assessed entity to its resolved description and the
// ticket number derived from it (the last '/'-separated segment).
type AssetInfo struct {
	EntityID    string `json:"entity_id"`
	Description string `json:"description"`
	Ticket      string `json:"ticket"`
}
