package models

// Canonical statement schema. All amounts are float64 in the statement
// currency; a zero value means "not reported" (source documents never
// report an explicit zero for a line they track, so zero doubles as the
// absence marker throughout the cleaning and completion passes).

type CurrentAssets struct {
	Cash               float64 `json:"cash"`
	AccountsReceivable float64 `json:"accountsReceivable"`
	Inventory          float64 `json:"inventory"`
	PrepaidExpenses    float64 `json:"prepaidExpenses"`
	OtherCurrentAssets float64 `json:"otherCurrentAssets"`
}

type NonCurrentAssets struct {
	PropertyPlantEquipment  float64 `json:"propertyPlantEquipment"`
	AccumulatedDepreciation float64 `json:"accumulatedDepreciation"` // contra account, <= 0
	IntangibleAssets        float64 `json:"intangibleAssets"`
	LongTermInvestments     float64 `json:"longTermInvestments"`
	OtherNonCurrentAssets   float64 `json:"otherNonCurrentAssets"`
}

type CurrentLiabilities struct {
	AccountsPayable         float64 `json:"accountsPayable"`
	ShortTermDebt           float64 `json:"shortTermDebt"`
	AccruedExpenses         float64 `json:"accruedExpenses"`
	CurrentPortionLongTerm  float64 `json:"currentPortionLongTermDebt"`
	OtherCurrentLiabilities float64 `json:"otherCurrentLiabilities"`
}

type NonCurrentLiabilities struct {
	LongTermDebt               float64 `json:"longTermDebt"`
	DeferredTaxLiabilities     float64 `json:"deferredTaxLiabilities"`
	EmployeeBenefitObligations float64 `json:"employeeBenefitObligations"`
	OtherNonCurrentLiabilities float64 `json:"otherNonCurrentLiabilities"`
}

type ShareholdersEquity struct {
	ShareCapital      float64 `json:"shareCapital"`
	RetainedEarnings  float64 `json:"retainedEarnings"`
	StatutoryReserves float64 `json:"statutoryReserves"`
	OtherEquity       float64 `json:"otherEquity"`
}

type BalanceSheet struct {
	CurrentAssets    CurrentAssets    `json:"currentAssets"`
	NonCurrentAssets NonCurrentAssets `json:"nonCurrentAssets"`

	TotalCurrentAssets    float64 `json:"totalCurrentAssets"`
	TotalNonCurrentAssets float64 `json:"totalNonCurrentAssets"`
	TotalAssets           float64 `json:"totalAssets"`

	CurrentLiabilities    CurrentLiabilities    `json:"currentLiabilities"`
	NonCurrentLiabilities NonCurrentLiabilities `json:"nonCurrentLiabilities"`

	TotalCurrentLiabilities    float64 `json:"totalCurrentLiabilities"`
	TotalNonCurrentLiabilities float64 `json:"totalNonCurrentLiabilities"`
	TotalLiabilities           float64 `json:"totalLiabilities"`

	ShareholdersEquity        ShareholdersEquity `json:"shareholdersEquity"`
	TotalShareholdersEquity   float64            `json:"totalShareholdersEquity"`
	TotalLiabilitiesAndEquity float64            `json:"totalLiabilitiesAndEquity"`
}

type OperatingExpenses struct {
	SellingExpenses          float64 `json:"sellingExpenses"`
	AdministrativeExpenses   float64 `json:"administrativeExpenses"`
	DepreciationAmortization float64 `json:"depreciationAmortization"`
	OtherOperatingExpenses   float64 `json:"otherOperatingExpenses"`
}

type IncomeStatement struct {
	Revenue         float64 `json:"revenue"`
	CostOfGoodsSold float64 `json:"costOfGoodsSold"`
	GrossProfit     float64 `json:"grossProfit"`

	OperatingExpenses      OperatingExpenses `json:"operatingExpenses"`
	TotalOperatingExpenses float64           `json:"totalOperatingExpenses"`
	OperatingIncome        float64           `json:"operatingIncome"`

	InterestExpense  float64 `json:"interestExpense"`
	OtherIncome      float64 `json:"otherIncome"`
	IncomeBeforeTax  float64 `json:"incomeBeforeTax"`
	IncomeTaxExpense float64 `json:"incomeTaxExpense"`
	NetIncome        float64 `json:"netIncome"`

	DividendsPaid     float64 `json:"dividendsPaid"`
	SharesOutstanding float64 `json:"sharesOutstanding"`
}

type OperatingActivities struct {
	NetIncome                 float64 `json:"netIncome"`
	Depreciation              float64 `json:"depreciation"`
	Amortization              float64 `json:"amortization"`
	ChangeInReceivables       float64 `json:"changeInReceivables"`
	ChangeInInventory         float64 `json:"changeInInventory"`
	ChangeInPayables          float64 `json:"changeInPayables"`
	OtherOperatingAdjustments float64 `json:"otherOperatingAdjustments"`
}

type InvestingActivities struct {
	CapitalExpenditures    float64 `json:"capitalExpenditures"`
	ProceedsFromAssetSales float64 `json:"proceedsFromAssetSales"`
	InvestmentPurchases    float64 `json:"investmentPurchases"`
	OtherInvesting         float64 `json:"otherInvesting"`
}

type FinancingActivities struct {
	DebtIssued     float64 `json:"debtIssued"`
	DebtRepaid     float64 `json:"debtRepaid"`
	DividendsPaid  float64 `json:"dividendsPaid"`
	EquityIssued   float64 `json:"equityIssued"`
	OtherFinancing float64 `json:"otherFinancing"`
}

type CashFlowStatement struct {
	OperatingActivities  OperatingActivities `json:"operatingActivities"`
	NetCashFromOperating float64             `json:"netCashFromOperating"`

	InvestingActivities  InvestingActivities `json:"investingActivities"`
	NetCashFromInvesting float64             `json:"netCashFromInvesting"`

	FinancingActivities  FinancingActivities `json:"financingActivities"`
	NetCashFromFinancing float64             `json:"netCashFromFinancing"`

	NetChangeInCash     float64 `json:"netChangeInCash"`
	CashBeginningPeriod float64 `json:"cashBeginningPeriod"`
	CashEndPeriod       float64 `json:"cashEndPeriod"`
}

// StatementMetadata carries non-accounting context that survived
// normalization, including every label that could not be mapped to a
// canonical field. Unmapped values are kept verbatim so no information
// from the source document is silently lost.
type StatementMetadata struct {
	CompanyName string            `json:"companyName,omitempty"`
	Currency    string            `json:"currency,omitempty"`
	Unmapped    map[string]string `json:"unmapped,omitempty"`
}

// FinancialStatement is one fiscal year of data for one company.
// Group structs are values, never pointers, so every group is always
// present and downstream code never nil-checks.
type FinancialStatement struct {
	Year              int                `json:"year"`
	BalanceSheet      BalanceSheet       `json:"balanceSheet"`
	IncomeStatement   IncomeStatement    `json:"incomeStatement"`
	CashFlowStatement CashFlowStatement  `json:"cashFlowStatement"`
	Metadata          StatementMetadata  `json:"metadata"`
}

// RawRecord is the loosely typed container the extraction collaborators
// (spreadsheet parser, OCR, manual form entry) hand to the normalizer:
// free-text labels mapped to numeric-or-string values, with optional
// structured metadata that may instead be embedded in the label text.
type RawRecord struct {
	Fields      map[string]any `json:"fields"`
	Year        *int           `json:"year,omitempty"`
	Currency    string         `json:"currency,omitempty"`
	CompanyName string         `json:"companyName,omitempty"`
}

type IssueSeverity string

const (
	SeverityError   IssueSeverity = "error"
	SeverityWarning IssueSeverity = "warning"
	SeverityInfo    IssueSeverity = "info"
)

// CleaningIssue records one problem found (or fix applied) while
// normalizing or validating a statement. Issues are always surfaced to
// the caller alongside the corrected statement, never discarded.
type CleaningIssue struct {
	Field        string        `json:"field"`
	Issue        string        `json:"issue"`
	Severity     IssueSeverity `json:"severity"`
	SuggestedFix string        `json:"suggestedFix,omitempty"`
}
