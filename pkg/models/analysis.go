package models

import "time"

// Rating is the five-band classification every metric result lands in
// after comparison against its industry benchmark.
type Rating string

const (
	RatingExcellent  Rating = "excellent"
	RatingVeryGood   Rating = "veryGood"
	RatingGood       Rating = "good"
	RatingAcceptable Rating = "acceptable"
	RatingWeak       Rating = "weak"
)

// ratingOrder maps each band to its rank for comparisons (higher is better).
var ratingOrder = map[Rating]int{
	RatingWeak:       0,
	RatingAcceptable: 1,
	RatingGood:       2,
	RatingVeryGood:   3,
	RatingExcellent:  4,
}

// Rank returns the ordinal position of the rating, weak=0 .. excellent=4.
func (r Rating) Rank() int { return ratingOrder[r] }

type AnalysisCategory string

const (
	CategoryStructural    AnalysisCategory = "structural"
	CategoryLiquidity     AnalysisCategory = "liquidity"
	CategoryEfficiency    AnalysisCategory = "efficiency"
	CategoryLeverage      AnalysisCategory = "leverage"
	CategoryProfitability AnalysisCategory = "profitability"
	CategoryFlow          AnalysisCategory = "flow"
	CategoryGrowth        AnalysisCategory = "growth"
)

// MetricValue is the computed value of one analysis. Number is set for
// scalar ratios; Table for structural analyses that produce one figure
// per line item. Undefined marks a zero-denominator result, which is
// reported with a neutral rating instead of propagating NaN.
type MetricValue struct {
	Number          *float64           `json:"number,omitempty"`
	Table           map[string]float64 `json:"table,omitempty"`
	Undefined       bool               `json:"undefined,omitempty"`
	UndefinedReason string             `json:"undefinedReason,omitempty"`
}

// SWOT holds the strengths/weaknesses/opportunities/threats fragments a
// single analysis contributes to the executive summary.
type SWOT struct {
	Strengths     []string `json:"strengths,omitempty"`
	Weaknesses    []string `json:"weaknesses,omitempty"`
	Opportunities []string `json:"opportunities,omitempty"`
	Threats       []string `json:"threats,omitempty"`
}

// AnalysisResult is one computed metric for one company-year. Immutable
// once produced; the engine never persists results itself.
type AnalysisResult struct {
	ID              string           `json:"id"`
	Category        AnalysisCategory `json:"category"`
	Name            string           `json:"name"`   // Arabic display name
	NameEn          string           `json:"nameEn"` // English display name
	Year            int              `json:"year"`
	Value           MetricValue      `json:"value"`
	Interpretation  string           `json:"interpretation"`
	IndustryAverage *float64         `json:"industryAverage,omitempty"`
	Rating          Rating           `json:"rating"`
	Score           float64          `json:"score"`
	Recommendation  string           `json:"recommendation,omitempty"`
	Risks           []string         `json:"risks,omitempty"`
	Opportunities   []string         `json:"opportunities,omitempty"`
	SWOT            SWOT             `json:"swot,omitempty"`
}

// SummaryTableRow mirrors one AnalysisResult in the report table.
type SummaryTableRow struct {
	Metric          string `json:"metric"`
	MetricEn        string `json:"metricEn"`
	Value           string `json:"value"`
	IndustryAverage string `json:"industryAverage"`
	Rating          Rating `json:"rating"`
	Note            string `json:"note,omitempty"`
}

// Recommendations is the role-specific advice block of the summary.
type Recommendations struct {
	ForOwners    []string `json:"forOwners,omitempty"`
	ForBanks     []string `json:"forBanks,omitempty"`
	ForInvestors []string `json:"forInvestors,omitempty"`
	ForValuators []string `json:"forValuators,omitempty"`
	ForOthers    []string `json:"forOthers,omitempty"`
}

// ExecutiveSummary aggregates every AnalysisResult of one run. Created
// once per completed run and never mutated; a re-run supersedes it.
type ExecutiveSummary struct {
	CompanyName        string            `json:"companyName"`
	OverallRating      Rating            `json:"overallRating"`
	AverageScore       float64           `json:"averageScore"`
	RatingDistribution map[Rating]int    `json:"ratingDistribution"`
	KeyInsights        []string          `json:"keyInsights,omitempty"`
	SWOT               SWOT              `json:"swot"`
	Risks              []string          `json:"risks,omitempty"`
	Forecasts          []string          `json:"forecasts,omitempty"`
	Recommendations    Recommendations   `json:"recommendations"`
	SummaryTable       []SummaryTableRow `json:"summaryTable"`
}

// ComparisonLevel selects how wide the benchmark peer group is.
type ComparisonLevel string

const (
	ComparisonLocal       ComparisonLevel = "local"
	ComparisonRegional    ComparisonLevel = "regional"
	ComparisonContinental ComparisonLevel = "continental"
	ComparisonGlobal      ComparisonLevel = "global"
)

// AnalysisDepth selects which subset of the metric catalogue runs.
type AnalysisDepth string

const (
	DepthBasic         AnalysisDepth = "basic"
	DepthIntermediate  AnalysisDepth = "intermediate"
	DepthAdvanced      AnalysisDepth = "advanced"
	DepthComprehensive AnalysisDepth = "comprehensive"
)

// Company describes the submitting business, used to key benchmark
// lookups and to address the narrative.
type Company struct {
	ID              string          `json:"id,omitempty"`
	Name            string          `json:"name"`
	Sector          string          `json:"sector"`
	Activity        string          `json:"activity,omitempty"`
	LegalEntity     string          `json:"legalEntity,omitempty"`
	Country         string          `json:"country,omitempty"`
	ComparisonLevel ComparisonLevel `json:"comparisonLevel,omitempty"`
	YearsToAnalyze  int             `json:"yearsToAnalyze,omitempty"`
}

type RunStatus string

const (
	RunStatusPending    RunStatus = "pending"
	RunStatusProcessing RunStatus = "processing"
	RunStatusCompleted  RunStatus = "completed"
	RunStatusFailed     RunStatus = "failed"
)

// AnalysisRun is the persisted, progress-tracked record of one
// end-to-end pipeline execution. Only the orchestrator writes it, and
// only one orchestrator instance ever owns a given run id. Terminal
// once completed or failed; a retry is a new run, never a mutation.
type AnalysisRun struct {
	ID               string            `json:"id"`
	UserID           string            `json:"userId,omitempty"`
	CompanyID        string            `json:"companyId,omitempty"`
	Status           RunStatus         `json:"status"`
	Progress         int               `json:"progress"`
	StatusMessage    string            `json:"statusMessage,omitempty"`
	Issues           []CleaningIssue   `json:"issues,omitempty"`
	Results          []AnalysisResult  `json:"results,omitempty"`
	ExecutiveSummary *ExecutiveSummary `json:"executiveSummary,omitempty"`
	Error            string            `json:"error,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
	CompletedAt      *time.Time        `json:"completedAt,omitempty"`
}
