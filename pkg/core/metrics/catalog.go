package metrics

import (
	"finsight/pkg/core/validate"
	"finsight/pkg/models"
)

// DefaultCatalogue returns the full analysis catalogue. Entries are
// data: the engine evaluates them generically and nothing outside this
// file branches on a metric ID.
func DefaultCatalogue() []Spec {
	return []Spec{
		// ================= Liquidity =================
		{
			ID: "currentRatio", Category: models.CategoryLiquidity,
			Name: "نسبة التداول", NameEn: "Current Ratio",
			Depth: models.DepthBasic, HigherIsBetter: true, BenchmarkKey: "currentRatio",
			Breakpoints: &Breakpoints{Excellent: 2.5, Good: 2.0, Acceptable: 1.5, Weak: 1.0},
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				bs := s[i].BalanceSheet
				return ratio(bs.TotalCurrentAssets, bs.TotalCurrentLiabilities, "totalCurrentLiabilities")
			},
		},
		{
			ID: "quickRatio", Category: models.CategoryLiquidity,
			Name: "نسبة السيولة السريعة", NameEn: "Quick Ratio",
			Depth: models.DepthBasic, HigherIsBetter: true, BenchmarkKey: "quickRatio",
			Breakpoints: &Breakpoints{Excellent: 1.5, Good: 1.0, Acceptable: 0.8, Weak: 0.5},
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				bs := s[i].BalanceSheet
				return ratio(bs.TotalCurrentAssets-bs.CurrentAssets.Inventory, bs.TotalCurrentLiabilities, "totalCurrentLiabilities")
			},
		},
		{
			ID: "cashRatio", Category: models.CategoryLiquidity,
			Name: "نسبة النقدية", NameEn: "Cash Ratio",
			Depth: models.DepthIntermediate, HigherIsBetter: true, BenchmarkKey: "cashRatio",
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				bs := s[i].BalanceSheet
				return ratio(bs.CurrentAssets.Cash, bs.TotalCurrentLiabilities, "totalCurrentLiabilities")
			},
		},
		{
			ID: "workingCapital", Category: models.CategoryLiquidity,
			Name: "رأس المال العامل", NameEn: "Working Capital",
			Depth: models.DepthBasic, HigherIsBetter: true, BenchmarkKey: "workingCapital",
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				bs := s[i].BalanceSheet
				return number(bs.TotalCurrentAssets - bs.TotalCurrentLiabilities)
			},
		},
		{
			ID: "operatingCashFlowRatio", Category: models.CategoryLiquidity,
			Name: "نسبة التدفق النقدي التشغيلي", NameEn: "Operating Cash Flow Ratio",
			Depth: models.DepthIntermediate, HigherIsBetter: true, BenchmarkKey: "operatingCashFlowRatio",
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				return ratio(s[i].CashFlowStatement.NetCashFromOperating, s[i].BalanceSheet.TotalCurrentLiabilities, "totalCurrentLiabilities")
			},
		},

		// ================= Efficiency =================
		{
			ID: "inventoryTurnover", Category: models.CategoryEfficiency,
			Name: "معدل دوران المخزون", NameEn: "Inventory Turnover",
			Depth: models.DepthIntermediate, HigherIsBetter: true, BenchmarkKey: "inventoryTurnover",
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				return ratio(s[i].IncomeStatement.CostOfGoodsSold, s[i].BalanceSheet.CurrentAssets.Inventory, "inventory")
			},
		},
		{
			ID: "daysInventoryOutstanding", Category: models.CategoryEfficiency,
			Name: "فترة بقاء المخزون", NameEn: "Days Inventory Outstanding",
			Depth: models.DepthIntermediate, HigherIsBetter: false, BenchmarkKey: "daysInventoryOutstanding",
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				return ratio(365*s[i].BalanceSheet.CurrentAssets.Inventory, s[i].IncomeStatement.CostOfGoodsSold, "costOfGoodsSold")
			},
		},
		{
			ID: "receivablesTurnover", Category: models.CategoryEfficiency,
			Name: "معدل دوران الذمم المدينة", NameEn: "Receivables Turnover",
			Depth: models.DepthIntermediate, HigherIsBetter: true, BenchmarkKey: "receivablesTurnover",
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				return ratio(s[i].IncomeStatement.Revenue, s[i].BalanceSheet.CurrentAssets.AccountsReceivable, "accountsReceivable")
			},
		},
		{
			ID: "daysSalesOutstanding", Category: models.CategoryEfficiency,
			Name: "فترة تحصيل الذمم المدينة", NameEn: "Days Sales Outstanding",
			Depth: models.DepthIntermediate, HigherIsBetter: false, BenchmarkKey: "daysSalesOutstanding",
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				return ratio(365*s[i].BalanceSheet.CurrentAssets.AccountsReceivable, s[i].IncomeStatement.Revenue, "revenue")
			},
		},
		{
			ID: "payablesTurnover", Category: models.CategoryEfficiency,
			Name: "معدل دوران الذمم الدائنة", NameEn: "Payables Turnover",
			Depth: models.DepthAdvanced, HigherIsBetter: true, BenchmarkKey: "payablesTurnover",
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				return ratio(s[i].IncomeStatement.CostOfGoodsSold, s[i].BalanceSheet.CurrentLiabilities.AccountsPayable, "accountsPayable")
			},
		},
		{
			ID: "daysPayablesOutstanding", Category: models.CategoryEfficiency,
			Name: "فترة سداد الذمم الدائنة", NameEn: "Days Payables Outstanding",
			Depth: models.DepthAdvanced, HigherIsBetter: true, BenchmarkKey: "daysPayablesOutstanding",
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				return ratio(365*s[i].BalanceSheet.CurrentLiabilities.AccountsPayable, s[i].IncomeStatement.CostOfGoodsSold, "costOfGoodsSold")
			},
		},
		{
			ID: "assetTurnover", Category: models.CategoryEfficiency,
			Name: "معدل دوران الأصول", NameEn: "Asset Turnover",
			Depth: models.DepthIntermediate, HigherIsBetter: true, BenchmarkKey: "assetTurnover",
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				return ratio(s[i].IncomeStatement.Revenue, s[i].BalanceSheet.TotalAssets, "totalAssets")
			},
		},
		{
			ID: "fixedAssetTurnover", Category: models.CategoryEfficiency,
			Name: "معدل دوران الأصول الثابتة", NameEn: "Fixed Asset Turnover",
			Depth: models.DepthAdvanced, HigherIsBetter: true, BenchmarkKey: "fixedAssetTurnover",
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				nca := s[i].BalanceSheet.NonCurrentAssets
				return ratio(s[i].IncomeStatement.Revenue, nca.PropertyPlantEquipment+nca.AccumulatedDepreciation, "net fixed assets")
			},
		},
		{
			ID: "operatingCycle", Category: models.CategoryEfficiency,
			Name: "الدورة التشغيلية", NameEn: "Operating Cycle",
			Depth: models.DepthAdvanced, HigherIsBetter: false, BenchmarkKey: "operatingCycle",
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				is := s[i].IncomeStatement
				bs := s[i].BalanceSheet
				if is.CostOfGoodsSold == 0 || is.Revenue == 0 {
					return undefined("revenue or cost of goods sold is zero")
				}
				dio := 365 * bs.CurrentAssets.Inventory / is.CostOfGoodsSold
				dso := 365 * bs.CurrentAssets.AccountsReceivable / is.Revenue
				return number(dio + dso)
			},
		},
		{
			ID: "cashConversionCycle", Category: models.CategoryEfficiency,
			Name: "دورة التحول النقدي", NameEn: "Cash Conversion Cycle",
			Depth: models.DepthAdvanced, HigherIsBetter: false, BenchmarkKey: "cashConversionCycle",
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				is := s[i].IncomeStatement
				bs := s[i].BalanceSheet
				if is.CostOfGoodsSold == 0 || is.Revenue == 0 {
					return undefined("revenue or cost of goods sold is zero")
				}
				dio := 365 * bs.CurrentAssets.Inventory / is.CostOfGoodsSold
				dso := 365 * bs.CurrentAssets.AccountsReceivable / is.Revenue
				dpo := 365 * bs.CurrentLiabilities.AccountsPayable / is.CostOfGoodsSold
				return number(dio + dso - dpo)
			},
		},

		// ================= Leverage =================
		{
			ID: "debtToAssets", Category: models.CategoryLeverage,
			Name: "نسبة الدين إلى الأصول", NameEn: "Debt to Assets",
			Depth: models.DepthBasic, HigherIsBetter: false, BenchmarkKey: "debtToAssets",
			Breakpoints: &Breakpoints{Excellent: 0.3, Good: 0.45, Acceptable: 0.6, Weak: 0.75},
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				bs := s[i].BalanceSheet
				return ratio(bs.TotalLiabilities, bs.TotalAssets, "totalAssets")
			},
		},
		{
			ID: "debtToEquity", Category: models.CategoryLeverage,
			Name: "نسبة الدين إلى حقوق الملكية", NameEn: "Debt to Equity",
			Depth: models.DepthBasic, HigherIsBetter: false, BenchmarkKey: "debtToEquity",
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				bs := s[i].BalanceSheet
				return ratio(bs.TotalLiabilities, bs.TotalShareholdersEquity, "totalShareholdersEquity")
			},
		},
		{
			ID: "equityRatio", Category: models.CategoryLeverage,
			Name: "نسبة حقوق الملكية", NameEn: "Equity Ratio",
			Depth: models.DepthIntermediate, HigherIsBetter: true, BenchmarkKey: "equityRatio",
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				bs := s[i].BalanceSheet
				return ratio(bs.TotalShareholdersEquity, bs.TotalAssets, "totalAssets")
			},
		},
		{
			ID: "interestCoverage", Category: models.CategoryLeverage,
			Name: "معدل تغطية الفوائد", NameEn: "Interest Coverage",
			Depth: models.DepthIntermediate, HigherIsBetter: true, BenchmarkKey: "interestCoverage",
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				return ratio(s[i].IncomeStatement.OperatingIncome, s[i].IncomeStatement.InterestExpense, "interestExpense")
			},
		},
		{
			ID: "debtServiceCoverage", Category: models.CategoryLeverage,
			Name: "معدل تغطية خدمة الدين", NameEn: "Debt Service Coverage",
			Depth: models.DepthAdvanced, HigherIsBetter: true, BenchmarkKey: "debtServiceCoverage",
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				is := s[i].IncomeStatement
				cl := s[i].BalanceSheet.CurrentLiabilities
				return ratio(s[i].CashFlowStatement.NetCashFromOperating, is.InterestExpense+cl.CurrentPortionLongTerm, "interest plus current debt maturities")
			},
		},

		// ================= Profitability =================
		{
			ID: "grossMargin", Category: models.CategoryProfitability,
			Name: "هامش الربح الإجمالي", NameEn: "Gross Profit Margin",
			Depth: models.DepthBasic, HigherIsBetter: true, BenchmarkKey: "grossMargin",
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				is := s[i].IncomeStatement
				return ratio(100*is.GrossProfit, is.Revenue, "revenue")
			},
		},
		{
			ID: "operatingMargin", Category: models.CategoryProfitability,
			Name: "هامش الربح التشغيلي", NameEn: "Operating Margin",
			Depth: models.DepthBasic, HigherIsBetter: true, BenchmarkKey: "operatingMargin",
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				is := s[i].IncomeStatement
				return ratio(100*is.OperatingIncome, is.Revenue, "revenue")
			},
		},
		{
			ID: "netMargin", Category: models.CategoryProfitability,
			Name: "هامش صافي الربح", NameEn: "Net Profit Margin",
			Depth: models.DepthBasic, HigherIsBetter: true, BenchmarkKey: "netMargin",
			Breakpoints: &Breakpoints{Excellent: 15, Good: 10, Acceptable: 5, Weak: 2},
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				is := s[i].IncomeStatement
				return ratio(100*is.NetIncome, is.Revenue, "revenue")
			},
		},
		{
			ID: "returnOnAssets", Category: models.CategoryProfitability,
			Name: "العائد على الأصول", NameEn: "Return on Assets",
			Depth: models.DepthBasic, HigherIsBetter: true, BenchmarkKey: "returnOnAssets",
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				return ratio(100*s[i].IncomeStatement.NetIncome, s[i].BalanceSheet.TotalAssets, "totalAssets")
			},
		},
		{
			ID: "returnOnEquity", Category: models.CategoryProfitability,
			Name: "العائد على حقوق الملكية", NameEn: "Return on Equity",
			Depth: models.DepthBasic, HigherIsBetter: true, BenchmarkKey: "returnOnEquity",
			Breakpoints: &Breakpoints{Excellent: 20, Good: 15, Acceptable: 10, Weak: 5},
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				return ratio(100*s[i].IncomeStatement.NetIncome, s[i].BalanceSheet.TotalShareholdersEquity, "totalShareholdersEquity")
			},
		},
		{
			ID: "returnOnInvestedCapital", Category: models.CategoryProfitability,
			Name: "العائد على رأس المال المستثمر", NameEn: "Return on Invested Capital",
			Depth: models.DepthAdvanced, HigherIsBetter: true, BenchmarkKey: "returnOnInvestedCapital",
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				bs := s[i].BalanceSheet
				return ratio(100*s[i].IncomeStatement.OperatingIncome, bs.TotalAssets-bs.TotalCurrentLiabilities, "invested capital")
			},
		},
		{
			ID: "earningsPerShare", Category: models.CategoryProfitability,
			Name: "ربحية السهم", NameEn: "Earnings per Share",
			Depth: models.DepthAdvanced, HigherIsBetter: true, BenchmarkKey: "earningsPerShare",
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				return ratio(s[i].IncomeStatement.NetIncome, s[i].IncomeStatement.SharesOutstanding, "sharesOutstanding")
			},
		},

		// ================= Cash flow =================
		{
			ID: "freeCashFlow", Category: models.CategoryFlow,
			Name: "التدفق النقدي الحر", NameEn: "Free Cash Flow",
			Depth: models.DepthIntermediate, HigherIsBetter: true, BenchmarkKey: "freeCashFlow",
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				cf := s[i].CashFlowStatement
				return number(cf.NetCashFromOperating - cf.InvestingActivities.CapitalExpenditures)
			},
		},
		{
			ID: "earningsQuality", Category: models.CategoryFlow,
			Name: "جودة الأرباح", NameEn: "Earnings Quality",
			Depth: models.DepthAdvanced, HigherIsBetter: true, BenchmarkKey: "earningsQuality",
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				return ratio(s[i].CashFlowStatement.NetCashFromOperating, s[i].IncomeStatement.NetIncome, "netIncome")
			},
		},
		{
			ID: "capexToRevenue", Category: models.CategoryFlow,
			Name: "نسبة النفقات الرأسمالية إلى الإيرادات", NameEn: "Capex to Revenue",
			Depth: models.DepthAdvanced, HigherIsBetter: false, BenchmarkKey: "capexToRevenue",
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				return ratio(100*s[i].CashFlowStatement.InvestingActivities.CapitalExpenditures, s[i].IncomeStatement.Revenue, "revenue")
			},
		},
		{
			ID: "dividendPayoutRatio", Category: models.CategoryFlow,
			Name: "نسبة توزيع الأرباح", NameEn: "Dividend Payout Ratio",
			Depth: models.DepthAdvanced, HigherIsBetter: true, BenchmarkKey: "dividendPayoutRatio",
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				return ratio(100*s[i].IncomeStatement.DividendsPaid, s[i].IncomeStatement.NetIncome, "netIncome")
			},
		},
		{
			ID: "cashFlowToDebt", Category: models.CategoryFlow,
			Name: "نسبة التدفق النقدي إلى الدين", NameEn: "Cash Flow to Debt",
			Depth: models.DepthAdvanced, HigherIsBetter: true, BenchmarkKey: "cashFlowToDebt",
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				return ratio(s[i].CashFlowStatement.NetCashFromOperating, s[i].BalanceSheet.TotalLiabilities, "totalLiabilities")
			},
		},

		// ================= Structural =================
		{
			ID: "verticalAnalysisAssets", Category: models.CategoryStructural,
			Name: "التحليل الرأسي للأصول", NameEn: "Vertical Analysis of Assets",
			Depth: models.DepthIntermediate, HigherIsBetter: true, BenchmarkKey: "",
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				bs := s[i].BalanceSheet
				if bs.TotalAssets == 0 {
					return undefined("totalAssets is zero")
				}
				pct := func(v float64) float64 { return 100 * v / bs.TotalAssets }
				return table(map[string]float64{
					"cash":               pct(bs.CurrentAssets.Cash),
					"accountsReceivable": pct(bs.CurrentAssets.AccountsReceivable),
					"inventory":          pct(bs.CurrentAssets.Inventory),
					"currentAssets":      pct(bs.TotalCurrentAssets),
					"nonCurrentAssets":   pct(bs.TotalNonCurrentAssets),
				})
			},
		},
		{
			ID: "verticalAnalysisIncome", Category: models.CategoryStructural,
			Name: "التحليل الرأسي لقائمة الدخل", NameEn: "Vertical Analysis of Income Statement",
			Depth: models.DepthIntermediate, HigherIsBetter: true, BenchmarkKey: "",
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				is := s[i].IncomeStatement
				if is.Revenue == 0 {
					return undefined("revenue is zero")
				}
				pct := func(v float64) float64 { return 100 * v / is.Revenue }
				return table(map[string]float64{
					"costOfGoodsSold":   pct(is.CostOfGoodsSold),
					"grossProfit":       pct(is.GrossProfit),
					"operatingExpenses": pct(is.TotalOperatingExpenses),
					"operatingIncome":   pct(is.OperatingIncome),
					"netIncome":         pct(is.NetIncome),
				})
			},
		},
		{
			ID: "capitalStructure", Category: models.CategoryStructural,
			Name: "هيكل رأس المال", NameEn: "Capital Structure",
			Depth: models.DepthIntermediate, HigherIsBetter: true, BenchmarkKey: "",
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				bs := s[i].BalanceSheet
				total := bs.TotalLiabilities + bs.TotalShareholdersEquity
				if total == 0 {
					return undefined("no liabilities or equity reported")
				}
				return table(map[string]float64{
					"debtShare":   100 * bs.TotalLiabilities / total,
					"equityShare": 100 * bs.TotalShareholdersEquity / total,
				})
			},
		},

		// ================= Growth =================
		{
			ID: "revenueGrowth", Category: models.CategoryGrowth,
			Name: "نمو الإيرادات", NameEn: "Revenue Growth",
			Depth: models.DepthIntermediate, MinYears: 2, HigherIsBetter: true, BenchmarkKey: "revenueGrowth",
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				return yoy(s[i].IncomeStatement.Revenue, s[i-1].IncomeStatement.Revenue, "prior-year revenue")
			},
		},
		{
			ID: "netIncomeGrowth", Category: models.CategoryGrowth,
			Name: "نمو صافي الربح", NameEn: "Net Income Growth",
			Depth: models.DepthIntermediate, MinYears: 2, HigherIsBetter: true, BenchmarkKey: "netIncomeGrowth",
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				return yoy(s[i].IncomeStatement.NetIncome, s[i-1].IncomeStatement.NetIncome, "prior-year net income")
			},
		},
		{
			ID: "assetGrowth", Category: models.CategoryGrowth,
			Name: "نمو الأصول", NameEn: "Asset Growth",
			Depth: models.DepthAdvanced, MinYears: 2, HigherIsBetter: true, BenchmarkKey: "assetGrowth",
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				return yoy(s[i].BalanceSheet.TotalAssets, s[i-1].BalanceSheet.TotalAssets, "prior-year total assets")
			},
		},
		{
			ID: "equityGrowth", Category: models.CategoryGrowth,
			Name: "نمو حقوق الملكية", NameEn: "Equity Growth",
			Depth: models.DepthAdvanced, MinYears: 2, HigherIsBetter: true, BenchmarkKey: "equityGrowth",
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				return yoy(s[i].BalanceSheet.TotalShareholdersEquity, s[i-1].BalanceSheet.TotalShareholdersEquity, "prior-year equity")
			},
		},
		{
			ID: "revenueCAGR", Category: models.CategoryGrowth,
			Name: "معدل النمو السنوي المركب للإيرادات", NameEn: "Revenue CAGR",
			Depth: models.DepthAdvanced, MinYears: 3, HigherIsBetter: true, BenchmarkKey: "revenueCAGR",
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				start := s[0].IncomeStatement.Revenue
				if start <= 0 {
					return undefined("first-year revenue not positive")
				}
				return number(validate.CalculateCAGR(start, s[i].IncomeStatement.Revenue, s[i].Year-s[0].Year))
			},
		},
		{
			ID: "netIncomeCAGR", Category: models.CategoryGrowth,
			Name: "معدل النمو السنوي المركب لصافي الربح", NameEn: "Net Income CAGR",
			Depth: models.DepthAdvanced, MinYears: 3, HigherIsBetter: true, BenchmarkKey: "netIncomeCAGR",
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				start := s[0].IncomeStatement.NetIncome
				if start <= 0 {
					return undefined("first-year net income not positive")
				}
				return number(validate.CalculateCAGR(start, s[i].IncomeStatement.NetIncome, s[i].Year-s[0].Year))
			},
		},
		{
			ID: "sustainableGrowthRate", Category: models.CategoryGrowth,
			Name: "معدل النمو المستدام", NameEn: "Sustainable Growth Rate",
			Depth: models.DepthComprehensive, HigherIsBetter: true, BenchmarkKey: "sustainableGrowthRate",
			Formula: func(s []models.FinancialStatement, i int) models.MetricValue {
				is := s[i].IncomeStatement
				equity := s[i].BalanceSheet.TotalShareholdersEquity
				if equity == 0 || is.NetIncome == 0 {
					return undefined("equity or net income is zero")
				}
				roe := is.NetIncome / equity
				retention := 1.0
				if is.NetIncome != 0 {
					retention = 1 - is.DividendsPaid/is.NetIncome
				}
				return number(100 * roe * retention)
			},
		},
	}
}

// yoy wraps the year-over-year helper, mapping a zero prior value to an
// undefined result instead of infinity.
func yoy(current, prior float64, priorName string) models.MetricValue {
	if prior == 0 {
		return undefined(priorName + " is zero")
	}
	return number(validate.CalculateYoY(current, prior))
}

// CatalogueForDepth filters the catalogue down to the specs included at
// the requested analysis depth.
func CatalogueForDepth(specs []Spec, depth models.AnalysisDepth) []Spec {
	want, ok := depthRank[depth]
	if !ok {
		want = depthRank[models.DepthComprehensive]
	}
	out := make([]Spec, 0, len(specs))
	for _, spec := range specs {
		tier, ok := depthRank[spec.Depth]
		if !ok {
			tier = depthRank[models.DepthBasic]
		}
		if tier <= want {
			out = append(out, spec)
		}
	}
	return out
}
