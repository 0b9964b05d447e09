package recommendation

// EmployeeMetrics is the input to a recommendation request.
// Pointer fields distinguish an absent value from an explicit zero; each
// consumer applies its own default when a field is nil.
type EmployeeMetrics struct {
	Name        *string  `json:"name,omitempty"`
	Designation *string  `json:"designation,omitempty"`
	Efficiency  *float64 `json:"efficiency,omitempty"`
	Attendance  *float64 `json:"attendance,omitempty"`
	BayHours    *float64 `json:"bayHours,omitempty"`
	ClusterType *string  `json:"clusterType,omitempty"`

	// Accepted and carried along, never read by the pipeline.
	ID          any      `json:"id,omitempty"`
	Punctuality *float64 `json:"punctuality,omitempty"`
	Score       *float64 `json:"score,omitempty"`
}

// Recommendation is a single advice record.
type Recommendation struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// RiskLevel is a coarse label derived from efficiency and attendance.
type RiskLevel string

const (
	RiskHigh   RiskLevel = "High Risk"
	RiskMedium RiskLevel = "Medium Risk"
	RiskLow    RiskLevel = "Low Risk"
)

// Source tells which path produced the recommendations.
type Source string

const (
	SourceLLM      Source = "llm"
	SourceFallback Source = "fallback"
)

// --- UseCase Outputs ---

type GenerateOutput struct {
	Recommendations []Recommendation
	Source          Source

	// Diagnostics, empty when Source is SourceLLM.
	FallbackReason string
	// RejectedRecords counts parsed array elements that failed validation.
	RejectedRecords int
}

type PromptOutput struct {
	Prompt    string
	RiskLevel RiskLevel
}

// Float64 returns a pointer to v.
func Float64(v float64) *float64 { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }
