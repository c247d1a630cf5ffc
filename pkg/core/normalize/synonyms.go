package normalize

import (
	"sort"
	"strings"

	"finsight/pkg/models"
)

// fieldDef binds one canonical statement field to the free-form labels
// that map onto it. Patterns are matched against normalized, squashed
// label text, longest pattern first, so specific labels ("accumulated
// depreciation") always win over their generic substrings
// ("depreciation").
type fieldDef struct {
	key      string // canonical camelCase key
	path     string // dotted location inside the statement, used in issues
	patterns []string
	get      func(*models.FinancialStatement) float64
	set      func(*models.FinancialStatement, float64)
}

var fieldDefs = []fieldDef{
	// ---- Balance sheet: current assets ----
	{
		key: "cash", path: "balanceSheet.currentAssets.cash",
		patterns: []string{"cash and cash equivalents", "cash equivalents", "cash", "نقد وما في حكمه", "النقدية", "نقدية", "النقد", "نقد"},
		get:      func(s *models.FinancialStatement) float64 { return s.BalanceSheet.CurrentAssets.Cash },
		set:      func(s *models.FinancialStatement, v float64) { s.BalanceSheet.CurrentAssets.Cash = v },
	},
	{
		key: "accountsReceivable", path: "balanceSheet.currentAssets.accountsReceivable",
		patterns: []string{"accounts receivable", "trade receivables", "receivables", "debtors", "ذمم مدينة", "الذمم المدينة", "مدينون", "حسابات مدينة"},
		get:      func(s *models.FinancialStatement) float64 { return s.BalanceSheet.CurrentAssets.AccountsReceivable },
		set: func(s *models.FinancialStatement, v float64) {
			s.BalanceSheet.CurrentAssets.AccountsReceivable = v
		},
	},
	{
		key: "inventory", path: "balanceSheet.currentAssets.inventory",
		patterns: []string{"inventories", "inventory", "stock in trade", "المخزون", "مخزون", "بضاعة"},
		get:      func(s *models.FinancialStatement) float64 { return s.BalanceSheet.CurrentAssets.Inventory },
		set:      func(s *models.FinancialStatement, v float64) { s.BalanceSheet.CurrentAssets.Inventory = v },
	},
	{
		key: "prepaidExpenses", path: "balanceSheet.currentAssets.prepaidExpenses",
		patterns: []string{"prepaid expenses", "prepayments", "مصروفات مدفوعة مقدما", "مدفوعات مقدمة"},
		get:      func(s *models.FinancialStatement) float64 { return s.BalanceSheet.CurrentAssets.PrepaidExpenses },
		set:      func(s *models.FinancialStatement, v float64) { s.BalanceSheet.CurrentAssets.PrepaidExpenses = v },
	},
	{
		key: "otherCurrentAssets", path: "balanceSheet.currentAssets.otherCurrentAssets",
		patterns: []string{"other current assets", "أصول متداولة أخرى", "موجودات متداولة أخرى"},
		get:      func(s *models.FinancialStatement) float64 { return s.BalanceSheet.CurrentAssets.OtherCurrentAssets },
		set: func(s *models.FinancialStatement, v float64) {
			s.BalanceSheet.CurrentAssets.OtherCurrentAssets = v
		},
	},

	// ---- Balance sheet: non-current assets ----
	{
		key: "propertyPlantEquipment", path: "balanceSheet.nonCurrentAssets.propertyPlantEquipment",
		patterns: []string{"property plant and equipment", "property and equipment", "fixed assets", "ppe", "ممتلكات ومعدات", "الأصول الثابتة", "أصول ثابتة", "موجودات ثابتة"},
		get: func(s *models.FinancialStatement) float64 {
			return s.BalanceSheet.NonCurrentAssets.PropertyPlantEquipment
		},
		set: func(s *models.FinancialStatement, v float64) {
			s.BalanceSheet.NonCurrentAssets.PropertyPlantEquipment = v
		},
	},
	{
		key: "accumulatedDepreciation", path: "balanceSheet.nonCurrentAssets.accumulatedDepreciation",
		patterns: []string{"accumulated depreciation", "مجمع الاهلاك", "مجمع الإهلاك", "الاستهلاك المتراكم"},
		get: func(s *models.FinancialStatement) float64 {
			return s.BalanceSheet.NonCurrentAssets.AccumulatedDepreciation
		},
		set: func(s *models.FinancialStatement, v float64) {
			s.BalanceSheet.NonCurrentAssets.AccumulatedDepreciation = v
		},
	},
	{
		key: "intangibleAssets", path: "balanceSheet.nonCurrentAssets.intangibleAssets",
		patterns: []string{"intangible assets", "goodwill", "أصول غير ملموسة", "الشهرة", "شهرة"},
		get:      func(s *models.FinancialStatement) float64 { return s.BalanceSheet.NonCurrentAssets.IntangibleAssets },
		set: func(s *models.FinancialStatement, v float64) {
			s.BalanceSheet.NonCurrentAssets.IntangibleAssets = v
		},
	},
	{
		key: "longTermInvestments", path: "balanceSheet.nonCurrentAssets.longTermInvestments",
		patterns: []string{"long term investments", "investments", "استثمارات طويلة الأجل", "استثمارات"},
		get: func(s *models.FinancialStatement) float64 {
			return s.BalanceSheet.NonCurrentAssets.LongTermInvestments
		},
		set: func(s *models.FinancialStatement, v float64) {
			s.BalanceSheet.NonCurrentAssets.LongTermInvestments = v
		},
	},
	{
		key: "otherNonCurrentAssets", path: "balanceSheet.nonCurrentAssets.otherNonCurrentAssets",
		patterns: []string{"other non current assets", "أصول غير متداولة أخرى"},
		get: func(s *models.FinancialStatement) float64 {
			return s.BalanceSheet.NonCurrentAssets.OtherNonCurrentAssets
		},
		set: func(s *models.FinancialStatement, v float64) {
			s.BalanceSheet.NonCurrentAssets.OtherNonCurrentAssets = v
		},
	},

	// ---- Balance sheet: asset totals ----
	{
		key: "totalCurrentAssets", path: "balanceSheet.totalCurrentAssets",
		patterns: []string{"total current assets", "إجمالي الأصول المتداولة", "مجموع الأصول المتداولة"},
		get:      func(s *models.FinancialStatement) float64 { return s.BalanceSheet.TotalCurrentAssets },
		set:      func(s *models.FinancialStatement, v float64) { s.BalanceSheet.TotalCurrentAssets = v },
	},
	{
		key: "totalNonCurrentAssets", path: "balanceSheet.totalNonCurrentAssets",
		patterns: []string{"total non current assets", "إجمالي الأصول غير المتداولة", "مجموع الأصول غير المتداولة"},
		get:      func(s *models.FinancialStatement) float64 { return s.BalanceSheet.TotalNonCurrentAssets },
		set:      func(s *models.FinancialStatement, v float64) { s.BalanceSheet.TotalNonCurrentAssets = v },
	},
	{
		key: "totalAssets", path: "balanceSheet.totalAssets",
		patterns: []string{"total assets", "إجمالي الأصول", "مجموع الأصول", "إجمالي الموجودات"},
		get:      func(s *models.FinancialStatement) float64 { return s.BalanceSheet.TotalAssets },
		set:      func(s *models.FinancialStatement, v float64) { s.BalanceSheet.TotalAssets = v },
	},

	// ---- Balance sheet: current liabilities ----
	{
		key: "accountsPayable", path: "balanceSheet.currentLiabilities.accountsPayable",
		patterns: []string{"accounts payable", "trade payables", "payables", "creditors", "ذمم دائنة", "الذمم الدائنة", "دائنون", "حسابات دائنة"},
		get: func(s *models.FinancialStatement) float64 {
			return s.BalanceSheet.CurrentLiabilities.AccountsPayable
		},
		set: func(s *models.FinancialStatement, v float64) {
			s.BalanceSheet.CurrentLiabilities.AccountsPayable = v
		},
	},
	{
		key: "shortTermDebt", path: "balanceSheet.currentLiabilities.shortTermDebt",
		patterns: []string{"short term debt", "short term loans", "short term borrowings", "قروض قصيرة الأجل", "اقتراضات قصيرة الأجل"},
		get:      func(s *models.FinancialStatement) float64 { return s.BalanceSheet.CurrentLiabilities.ShortTermDebt },
		set: func(s *models.FinancialStatement, v float64) {
			s.BalanceSheet.CurrentLiabilities.ShortTermDebt = v
		},
	},
	{
		key: "accruedExpenses", path: "balanceSheet.currentLiabilities.accruedExpenses",
		patterns: []string{"accrued expenses", "accrued liabilities", "accruals", "مصروفات مستحقة", "مستحقات"},
		get: func(s *models.FinancialStatement) float64 {
			return s.BalanceSheet.CurrentLiabilities.AccruedExpenses
		},
		set: func(s *models.FinancialStatement, v float64) {
			s.BalanceSheet.CurrentLiabilities.AccruedExpenses = v
		},
	},
	{
		key: "currentPortionLongTermDebt", path: "balanceSheet.currentLiabilities.currentPortionLongTermDebt",
		patterns: []string{"current portion of long term debt", "current maturities of long term debt", "الجزء المتداول من القروض طويلة الأجل"},
		get: func(s *models.FinancialStatement) float64 {
			return s.BalanceSheet.CurrentLiabilities.CurrentPortionLongTerm
		},
		set: func(s *models.FinancialStatement, v float64) {
			s.BalanceSheet.CurrentLiabilities.CurrentPortionLongTerm = v
		},
	},
	{
		key: "otherCurrentLiabilities", path: "balanceSheet.currentLiabilities.otherCurrentLiabilities",
		patterns: []string{"other current liabilities", "التزامات متداولة أخرى", "مطلوبات متداولة أخرى"},
		get: func(s *models.FinancialStatement) float64 {
			return s.BalanceSheet.CurrentLiabilities.OtherCurrentLiabilities
		},
		set: func(s *models.FinancialStatement, v float64) {
			s.BalanceSheet.CurrentLiabilities.OtherCurrentLiabilities = v
		},
	},

	// ---- Balance sheet: non-current liabilities ----
	{
		key: "longTermDebt", path: "balanceSheet.nonCurrentLiabilities.longTermDebt",
		patterns: []string{"long term debt", "long term loans", "long term borrowings", "قروض طويلة الأجل", "اقتراضات طويلة الأجل"},
		get: func(s *models.FinancialStatement) float64 {
			return s.BalanceSheet.NonCurrentLiabilities.LongTermDebt
		},
		set: func(s *models.FinancialStatement, v float64) {
			s.BalanceSheet.NonCurrentLiabilities.LongTermDebt = v
		},
	},
	{
		key: "deferredTaxLiabilities", path: "balanceSheet.nonCurrentLiabilities.deferredTaxLiabilities",
		patterns: []string{"deferred tax liabilities", "deferred tax", "ضرائب مؤجلة", "التزامات ضريبية مؤجلة"},
		get: func(s *models.FinancialStatement) float64 {
			return s.BalanceSheet.NonCurrentLiabilities.DeferredTaxLiabilities
		},
		set: func(s *models.FinancialStatement, v float64) {
			s.BalanceSheet.NonCurrentLiabilities.DeferredTaxLiabilities = v
		},
	},
	{
		key: "employeeBenefitObligations", path: "balanceSheet.nonCurrentLiabilities.employeeBenefitObligations",
		patterns: []string{"employee benefit obligations", "end of service benefits", "مكافأة نهاية الخدمة", "مخصص نهاية الخدمة", "منافع الموظفين"},
		get: func(s *models.FinancialStatement) float64 {
			return s.BalanceSheet.NonCurrentLiabilities.EmployeeBenefitObligations
		},
		set: func(s *models.FinancialStatement, v float64) {
			s.BalanceSheet.NonCurrentLiabilities.EmployeeBenefitObligations = v
		},
	},
	{
		key: "otherNonCurrentLiabilities", path: "balanceSheet.nonCurrentLiabilities.otherNonCurrentLiabilities",
		patterns: []string{"other non current liabilities", "التزامات غير متداولة أخرى", "مطلوبات غير متداولة أخرى"},
		get: func(s *models.FinancialStatement) float64 {
			return s.BalanceSheet.NonCurrentLiabilities.OtherNonCurrentLiabilities
		},
		set: func(s *models.FinancialStatement, v float64) {
			s.BalanceSheet.NonCurrentLiabilities.OtherNonCurrentLiabilities = v
		},
	},

	// ---- Balance sheet: liability totals ----
	{
		key: "totalCurrentLiabilities", path: "balanceSheet.totalCurrentLiabilities",
		patterns: []string{"total current liabilities", "إجمالي الالتزامات المتداولة", "مجموع المطلوبات المتداولة"},
		get:      func(s *models.FinancialStatement) float64 { return s.BalanceSheet.TotalCurrentLiabilities },
		set:      func(s *models.FinancialStatement, v float64) { s.BalanceSheet.TotalCurrentLiabilities = v },
	},
	{
		key: "totalNonCurrentLiabilities", path: "balanceSheet.totalNonCurrentLiabilities",
		patterns: []string{"total non current liabilities", "إجمالي الالتزامات غير المتداولة", "مجموع المطلوبات غير المتداولة"},
		get:      func(s *models.FinancialStatement) float64 { return s.BalanceSheet.TotalNonCurrentLiabilities },
		set: func(s *models.FinancialStatement, v float64) {
			s.BalanceSheet.TotalNonCurrentLiabilities = v
		},
	},
	{
		key: "totalLiabilities", path: "balanceSheet.totalLiabilities",
		patterns: []string{"total liabilities", "إجمالي الالتزامات", "مجموع الالتزامات", "إجمالي الخصوم", "إجمالي المطلوبات"},
		get:      func(s *models.FinancialStatement) float64 { return s.BalanceSheet.TotalLiabilities },
		set:      func(s *models.FinancialStatement, v float64) { s.BalanceSheet.TotalLiabilities = v },
	},

	// ---- Balance sheet: equity ----
	{
		key: "shareCapital", path: "balanceSheet.shareholdersEquity.shareCapital",
		patterns: []string{"share capital", "paid in capital", "paid up capital", "capital stock", "capital", "رأس المال", "راس المال", "رأس المال المدفوع"},
		get:      func(s *models.FinancialStatement) float64 { return s.BalanceSheet.ShareholdersEquity.ShareCapital },
		set: func(s *models.FinancialStatement, v float64) {
			s.BalanceSheet.ShareholdersEquity.ShareCapital = v
		},
	},
	{
		key: "retainedEarnings", path: "balanceSheet.shareholdersEquity.retainedEarnings",
		patterns: []string{"retained earnings", "accumulated profits", "الأرباح المبقاة", "أرباح مبقاة", "أرباح محتجزة", "الأرباح المحتجزة"},
		get: func(s *models.FinancialStatement) float64 {
			return s.BalanceSheet.ShareholdersEquity.RetainedEarnings
		},
		set: func(s *models.FinancialStatement, v float64) {
			s.BalanceSheet.ShareholdersEquity.RetainedEarnings = v
		},
	},
	{
		key: "statutoryReserves", path: "balanceSheet.shareholdersEquity.statutoryReserves",
		patterns: []string{"statutory reserves", "statutory reserve", "legal reserve", "reserves", "الاحتياطي النظامي", "احتياطي نظامي", "احتياطيات"},
		get: func(s *models.FinancialStatement) float64 {
			return s.BalanceSheet.ShareholdersEquity.StatutoryReserves
		},
		set: func(s *models.FinancialStatement, v float64) {
			s.BalanceSheet.ShareholdersEquity.StatutoryReserves = v
		},
	},
	{
		key: "otherEquity", path: "balanceSheet.shareholdersEquity.otherEquity",
		patterns: []string{"other equity", "حقوق ملكية أخرى"},
		get:      func(s *models.FinancialStatement) float64 { return s.BalanceSheet.ShareholdersEquity.OtherEquity },
		set: func(s *models.FinancialStatement, v float64) {
			s.BalanceSheet.ShareholdersEquity.OtherEquity = v
		},
	},
	{
		key: "totalShareholdersEquity", path: "balanceSheet.totalShareholdersEquity",
		patterns: []string{"total shareholders equity", "total stockholders equity", "total equity", "shareholders equity", "إجمالي حقوق الملكية", "مجموع حقوق الملكية", "حقوق الملكية", "حقوق المساهمين"},
		get:      func(s *models.FinancialStatement) float64 { return s.BalanceSheet.TotalShareholdersEquity },
		set:      func(s *models.FinancialStatement, v float64) { s.BalanceSheet.TotalShareholdersEquity = v },
	},
	{
		key: "totalLiabilitiesAndEquity", path: "balanceSheet.totalLiabilitiesAndEquity",
		patterns: []string{"total liabilities and shareholders equity", "total liabilities and equity", "إجمالي الالتزامات وحقوق الملكية", "مجموع الخصوم وحقوق الملكية"},
		get:      func(s *models.FinancialStatement) float64 { return s.BalanceSheet.TotalLiabilitiesAndEquity },
		set:      func(s *models.FinancialStatement, v float64) { s.BalanceSheet.TotalLiabilitiesAndEquity = v },
	},

	// ---- Income statement ----
	{
		key: "revenue", path: "incomeStatement.revenue",
		patterns: []string{"total revenue", "net sales", "revenues", "revenue", "sales", "turnover", "الإيرادات", "إيرادات", "المبيعات", "مبيعات", "صافي المبيعات"},
		get:      func(s *models.FinancialStatement) float64 { return s.IncomeStatement.Revenue },
		set:      func(s *models.FinancialStatement, v float64) { s.IncomeStatement.Revenue = v },
	},
	{
		key: "costOfGoodsSold", path: "incomeStatement.costOfGoodsSold",
		patterns: []string{"cost of goods sold", "cost of revenue", "cost of sales", "cogs", "تكلفة المبيعات", "تكلفة البضاعة المباعة", "تكلفة الإيرادات"},
		get:      func(s *models.FinancialStatement) float64 { return s.IncomeStatement.CostOfGoodsSold },
		set:      func(s *models.FinancialStatement, v float64) { s.IncomeStatement.CostOfGoodsSold = v },
	},
	{
		key: "grossProfit", path: "incomeStatement.grossProfit",
		patterns: []string{"gross profit", "gross margin", "مجمل الربح", "إجمالي الربح", "الربح الإجمالي"},
		get:      func(s *models.FinancialStatement) float64 { return s.IncomeStatement.GrossProfit },
		set:      func(s *models.FinancialStatement, v float64) { s.IncomeStatement.GrossProfit = v },
	},
	{
		key: "sellingExpenses", path: "incomeStatement.operatingExpenses.sellingExpenses",
		patterns: []string{"selling and marketing expenses", "selling expenses", "marketing expenses", "مصروفات بيع وتسويق", "مصاريف بيعية"},
		get: func(s *models.FinancialStatement) float64 {
			return s.IncomeStatement.OperatingExpenses.SellingExpenses
		},
		set: func(s *models.FinancialStatement, v float64) {
			s.IncomeStatement.OperatingExpenses.SellingExpenses = v
		},
	},
	{
		key: "administrativeExpenses", path: "incomeStatement.operatingExpenses.administrativeExpenses",
		patterns: []string{"general and administrative expenses", "administrative expenses", "salaries and wages", "مصروفات إدارية وعمومية", "مصاريف إدارية", "مصروفات إدارية", "رواتب وأجور", "الرواتب والأجور"},
		get: func(s *models.FinancialStatement) float64 {
			return s.IncomeStatement.OperatingExpenses.AdministrativeExpenses
		},
		set: func(s *models.FinancialStatement, v float64) {
			s.IncomeStatement.OperatingExpenses.AdministrativeExpenses = v
		},
	},
	{
		key: "depreciationAmortization", path: "incomeStatement.operatingExpenses.depreciationAmortization",
		patterns: []string{"depreciation and amortization", "depreciation", "amortization", "الإهلاك والإطفاء", "إهلاك وإطفاء", "الإهلاك", "إهلاك"},
		get: func(s *models.FinancialStatement) float64 {
			return s.IncomeStatement.OperatingExpenses.DepreciationAmortization
		},
		set: func(s *models.FinancialStatement, v float64) {
			s.IncomeStatement.OperatingExpenses.DepreciationAmortization = v
		},
	},
	{
		key: "otherOperatingExpenses", path: "incomeStatement.operatingExpenses.otherOperatingExpenses",
		patterns: []string{"other operating expenses", "مصروفات تشغيلية أخرى"},
		get: func(s *models.FinancialStatement) float64 {
			return s.IncomeStatement.OperatingExpenses.OtherOperatingExpenses
		},
		set: func(s *models.FinancialStatement, v float64) {
			s.IncomeStatement.OperatingExpenses.OtherOperatingExpenses = v
		},
	},
	{
		key: "totalOperatingExpenses", path: "incomeStatement.totalOperatingExpenses",
		patterns: []string{"total operating expenses", "operating expenses", "إجمالي المصروفات التشغيلية", "المصروفات التشغيلية"},
		get:      func(s *models.FinancialStatement) float64 { return s.IncomeStatement.TotalOperatingExpenses },
		set:      func(s *models.FinancialStatement, v float64) { s.IncomeStatement.TotalOperatingExpenses = v },
	},
	{
		key: "operatingIncome", path: "incomeStatement.operatingIncome",
		patterns: []string{"operating income", "operating profit", "income from operations", "الربح التشغيلي", "ربح التشغيل", "الدخل التشغيلي"},
		get:      func(s *models.FinancialStatement) float64 { return s.IncomeStatement.OperatingIncome },
		set:      func(s *models.FinancialStatement, v float64) { s.IncomeStatement.OperatingIncome = v },
	},
	{
		key: "interestExpense", path: "incomeStatement.interestExpense",
		patterns: []string{"interest expense", "finance costs", "finance expenses", "مصروفات تمويلية", "تكاليف التمويل", "فوائد"},
		get:      func(s *models.FinancialStatement) float64 { return s.IncomeStatement.InterestExpense },
		set:      func(s *models.FinancialStatement, v float64) { s.IncomeStatement.InterestExpense = v },
	},
	{
		key: "otherIncome", path: "incomeStatement.otherIncome",
		patterns: []string{"other income", "إيرادات أخرى", "دخل آخر"},
		get:      func(s *models.FinancialStatement) float64 { return s.IncomeStatement.OtherIncome },
		set:      func(s *models.FinancialStatement, v float64) { s.IncomeStatement.OtherIncome = v },
	},
	{
		key: "incomeBeforeTax", path: "incomeStatement.incomeBeforeTax",
		patterns: []string{"income before tax", "profit before tax", "earnings before tax", "income before zakat", "الربح قبل الضريبة", "الربح قبل الزكاة", "الربح قبل الزكاة والضريبة"},
		get:      func(s *models.FinancialStatement) float64 { return s.IncomeStatement.IncomeBeforeTax },
		set:      func(s *models.FinancialStatement, v float64) { s.IncomeStatement.IncomeBeforeTax = v },
	},
	{
		key: "incomeTaxExpense", path: "incomeStatement.incomeTaxExpense",
		patterns: []string{"income tax expense", "income tax", "tax expense", "zakat expense", "zakat", "ضريبة الدخل", "مصروف الزكاة", "الزكاة", "زكاة"},
		get:      func(s *models.FinancialStatement) float64 { return s.IncomeStatement.IncomeTaxExpense },
		set:      func(s *models.FinancialStatement, v float64) { s.IncomeStatement.IncomeTaxExpense = v },
	},
	{
		key: "netIncome", path: "incomeStatement.netIncome",
		patterns: []string{"net income", "net profit", "profit for the year", "profit for the period", "صافي الربح", "صافي الدخل", "الربح الصافي", "ربح السنة"},
		get:      func(s *models.FinancialStatement) float64 { return s.IncomeStatement.NetIncome },
		set:      func(s *models.FinancialStatement, v float64) { s.IncomeStatement.NetIncome = v },
	},
	{
		key: "dividendsPaid", path: "incomeStatement.dividendsPaid",
		patterns: []string{"dividends paid", "dividends", "توزيعات الأرباح", "توزيعات أرباح", "توزيعات"},
		get:      func(s *models.FinancialStatement) float64 { return s.IncomeStatement.DividendsPaid },
		set:      func(s *models.FinancialStatement, v float64) { s.IncomeStatement.DividendsPaid = v },
	},
	{
		key: "sharesOutstanding", path: "incomeStatement.sharesOutstanding",
		patterns: []string{"shares outstanding", "number of shares", "عدد الأسهم"},
		get:      func(s *models.FinancialStatement) float64 { return s.IncomeStatement.SharesOutstanding },
		set:      func(s *models.FinancialStatement, v float64) { s.IncomeStatement.SharesOutstanding = v },
	},

	// ---- Cash flow statement ----
	{
		key: "netCashFromOperating", path: "cashFlowStatement.netCashFromOperating",
		patterns: []string{"net cash from operating activities", "net cash provided by operating activities", "cash flow from operations", "operating cash flow", "صافي النقد من الأنشطة التشغيلية", "التدفقات النقدية من الأنشطة التشغيلية"},
		get:      func(s *models.FinancialStatement) float64 { return s.CashFlowStatement.NetCashFromOperating },
		set:      func(s *models.FinancialStatement, v float64) { s.CashFlowStatement.NetCashFromOperating = v },
	},
	{
		key: "netCashFromInvesting", path: "cashFlowStatement.netCashFromInvesting",
		patterns: []string{"net cash from investing activities", "net cash used in investing activities", "cash flow from investing", "صافي النقد من الأنشطة الاستثمارية", "التدفقات النقدية من الأنشطة الاستثمارية"},
		get:      func(s *models.FinancialStatement) float64 { return s.CashFlowStatement.NetCashFromInvesting },
		set:      func(s *models.FinancialStatement, v float64) { s.CashFlowStatement.NetCashFromInvesting = v },
	},
	{
		key: "netCashFromFinancing", path: "cashFlowStatement.netCashFromFinancing",
		patterns: []string{"net cash from financing activities", "net cash used in financing activities", "cash flow from financing", "صافي النقد من الأنشطة التمويلية", "التدفقات النقدية من الأنشطة التمويلية"},
		get:      func(s *models.FinancialStatement) float64 { return s.CashFlowStatement.NetCashFromFinancing },
		set:      func(s *models.FinancialStatement, v float64) { s.CashFlowStatement.NetCashFromFinancing = v },
	},
	{
		key: "capitalExpenditures", path: "cashFlowStatement.investingActivities.capitalExpenditures",
		patterns: []string{"purchase of property plant and equipment", "capital expenditures", "capex", "شراء ممتلكات ومعدات", "مصروفات رأسمالية", "النفقات الرأسمالية"},
		get: func(s *models.FinancialStatement) float64 {
			return s.CashFlowStatement.InvestingActivities.CapitalExpenditures
		},
		set: func(s *models.FinancialStatement, v float64) {
			s.CashFlowStatement.InvestingActivities.CapitalExpenditures = v
		},
	},
	{
		key: "netChangeInCash", path: "cashFlowStatement.netChangeInCash",
		patterns: []string{"net change in cash", "net increase in cash", "net decrease in cash", "صافي التغير في النقد", "صافي الزيادة في النقد"},
		get:      func(s *models.FinancialStatement) float64 { return s.CashFlowStatement.NetChangeInCash },
		set:      func(s *models.FinancialStatement, v float64) { s.CashFlowStatement.NetChangeInCash = v },
	},
	{
		key: "cashBeginningPeriod", path: "cashFlowStatement.cashBeginningPeriod",
		patterns: []string{"cash at beginning of period", "cash at beginning of year", "beginning cash", "النقد في بداية الفترة", "النقد أول الفترة", "النقد في بداية السنة"},
		get:      func(s *models.FinancialStatement) float64 { return s.CashFlowStatement.CashBeginningPeriod },
		set:      func(s *models.FinancialStatement, v float64) { s.CashFlowStatement.CashBeginningPeriod = v },
	},
	{
		key: "cashEndPeriod", path: "cashFlowStatement.cashEndPeriod",
		patterns: []string{"cash at end of period", "cash at end of year", "ending cash", "النقد في نهاية الفترة", "النقد آخر الفترة", "النقد في نهاية السنة"},
		get:      func(s *models.FinancialStatement) float64 { return s.CashFlowStatement.CashEndPeriod },
		set:      func(s *models.FinancialStatement, v float64) { s.CashFlowStatement.CashEndPeriod = v },
	},
}

// matchEntry is one pattern ready for lookup: normalized, squashed, and
// pointing back at its field definition.
type matchEntry struct {
	squashed string
	def      *fieldDef
}

var matchEntries = buildMatchEntries()

func buildMatchEntries() []matchEntry {
	var entries []matchEntry
	for i := range fieldDefs {
		def := &fieldDefs[i]
		for _, p := range def.patterns {
			entries = append(entries, matchEntry{squashed: squash(normalizeLabel(p)), def: def})
		}
		// The canonical key itself is a valid label, so regenerated
		// records re-map onto the same fields.
		entries = append(entries, matchEntry{squashed: squash(normalizeLabel(def.key)), def: def})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return len(entries[i].squashed) > len(entries[j].squashed)
	})
	return entries
}

// matchField resolves a free-form label to a canonical field, longest
// pattern first. Returns nil when nothing matches.
func matchField(label string) *fieldDef {
	squashed := squash(normalizeLabel(label))
	if squashed == "" {
		return nil
	}
	for _, e := range matchEntries {
		if strings.Contains(squashed, e.squashed) {
			return e.def
		}
	}
	return nil
}
