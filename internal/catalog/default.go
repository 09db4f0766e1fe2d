// Package catalog holds the built-in answer catalog the service seeds on start.
package catalog

import (
	"advisorqa/internal/models"
)

// Default returns a fresh copy of the built-in catalog in match order.
func Default() []models.Answer {
	return []models.Answer{
		{
			ID:         "ytd-performance",
			Title:      "YTD Performance vs Benchmark",
			Content:    "Year to date, the selected accounts returned 8.4% against 7.1% for the S&P 500, outperforming the benchmark by 1.3 percentage points. Most of the excess return came from overweight positions in technology and healthcare.",
			Category:   "performance",
			Keywords:   []string{"performance", "return", "ytd", "s&p", "outperform", "benchmark"},
			Phrases:    []string{"YTD performance", "year to date", "performance vs", "compared to the benchmark"},
			AnswerType: models.AnswerTypeChart,
			Data: Payload{
				Chart: &Chart{
					Kind:  "line",
					Title: "Cumulative return, YTD",
					Unit:  "%",
					Series: []ChartSeries{
						{Name: "Portfolio", Points: []ChartPoint{
							point("Jan", "1.2"), point("Feb", "2.9"), point("Mar", "3.4"),
							point("Apr", "5.0"), point("May", "6.8"), point("Jun", "8.4"),
						}},
						{Name: "S&P 500", Points: []ChartPoint{
							point("Jan", "1.6"), point("Feb", "2.2"), point("Mar", "2.8"),
							point("Apr", "4.1"), point("May", "5.9"), point("Jun", "7.1"),
						}},
					},
				},
				KPIs: []KPI{
					kpi("Portfolio return", "8.4", "%", "1.3"),
					kpi("Benchmark return", "7.1", "%", "0"),
				},
			},
		},
		{
			ID:         "asset-allocation",
			Title:      "Current Asset Allocation",
			Content:    "The selected accounts hold 62% equities, 28% fixed income, 6% alternatives and 4% cash. Equities are 2 points above the target allocation.",
			Category:   "allocation",
			Keywords:   []string{"allocation", "asset", "equity", "equities", "bond", "fixed income", "diversified"},
			Phrases:    []string{"asset allocation", "how diversified", "allocation breakdown"},
			AnswerType: models.AnswerTypeChart,
			Data: Payload{
				Chart: &Chart{
					Kind:  "pie",
					Title: "Allocation by asset class",
					Unit:  "%",
					Series: []ChartSeries{
						{Name: "Allocation", Points: []ChartPoint{
							point("Equities", "62"), point("Fixed income", "28"),
							point("Alternatives", "6"), point("Cash", "4"),
						}},
					},
				},
			},
		},
		{
			ID:         "top-holdings",
			Title:      "Top Holdings",
			Content:    "The ten largest holdings make up 38% of the combined portfolio. The largest single holding is a broad US equity index fund at 9.5%.",
			Category:   "holdings",
			Keywords:   []string{"holdings", "largest", "top", "concentration", "biggest"},
			Phrases:    []string{"top holdings", "largest holdings", "top 10", "biggest positions"},
			AnswerType: models.AnswerTypeTable,
			Data: Payload{
				Table: &Table{
					Columns: []string{"Holding", "Weight", "YTD return"},
					Rows: [][]string{
						{"US Total Market Index", "9.5%", "7.9%"},
						{"Intl Developed Index", "6.1%", "5.2%"},
						{"Aggregate Bond Index", "5.8%", "1.4%"},
						{"Healthcare Sector Fund", "4.4%", "11.3%"},
						{"Short-Term Treasury", "3.9%", "2.1%"},
					},
				},
			},
		},
		{
			ID:         "risk-metrics",
			Title:      "Risk Profile",
			Content:    "Over the trailing twelve months the portfolio had 11.2% annualized volatility, a Sharpe ratio of 0.94 and a maximum drawdown of 6.8%, all within the moderate risk band.",
			Category:   "risk",
			Keywords:   []string{"risk", "volatility", "sharpe", "drawdown", "beta", "standard deviation"},
			Phrases:    []string{"risk metrics", "how risky", "risk profile", "sharpe ratio"},
			AnswerType: models.AnswerTypeMetrics,
			Data: Payload{
				KPIs: []KPI{
					kpi("Volatility", "11.2", "%", "-0.6"),
					kpi("Sharpe ratio", "0.94", "", "0.08"),
					kpi("Max drawdown", "6.8", "%", "-1.1"),
					kpi("Beta", "0.87", "", "0.02"),
				},
			},
		},
		{
			ID:         "income-dividends",
			Title:      "Income and Dividends",
			Content:    "The selected accounts generated $18,420 in dividends and interest year to date, a 2.6% trailing yield. Income is up 9% compared with the same period last year.",
			Category:   "income",
			Keywords:   []string{"income", "dividend", "dividends", "yield", "interest", "distribution"},
			Phrases:    []string{"dividend income", "how much income", "income generated"},
			AnswerType: models.AnswerTypeMixed,
			Data: Payload{
				Chart: &Chart{
					Kind:  "bar",
					Title: "Income by quarter",
					Unit:  "USD",
					Series: []ChartSeries{
						{Name: "Income", Points: []ChartPoint{
							point("Q1", "8650"), point("Q2", "9770"),
						}},
					},
				},
				KPIs: []KPI{
					kpi("Income YTD", "18420", "USD", "9"),
					kpi("Trailing yield", "2.6", "%", "0.1"),
				},
			},
		},
		{
			ID:         "fees-expenses",
			Title:      "Fees and Expenses",
			Content:    "The weighted average expense ratio across the selected accounts is 0.18%, and advisory fees paid year to date total $4,150.",
			Category:   "fees",
			Keywords:   []string{"fees", "fee", "expense", "expenses", "cost", "charges"},
			Phrases:    []string{"expense ratio", "how much am i paying", "advisory fee"},
			AnswerType: models.AnswerTypeMetrics,
			Data: Payload{
				KPIs: []KPI{
					kpi("Expense ratio", "0.18", "%", "-0.02"),
					kpi("Advisory fees YTD", "4150", "USD", "0"),
				},
			},
		},
		{
			ID:         "tax-gains",
			Title:      "Realized Gains and Tax Lots",
			Content:    "Realized gains year to date are $12,300, of which $9,800 are long-term. There are $3,450 of unrealized losses available for tax-loss harvesting.",
			Category:   "tax",
			Keywords:   []string{"tax", "taxes", "gains", "losses", "harvest", "realized", "capital gains"},
			Phrases:    []string{"realized gains", "tax loss harvesting", "capital gains", "unrealized losses"},
			AnswerType: models.AnswerTypeTable,
			Data: Payload{
				Table: &Table{
					Columns: []string{"Type", "Short-term", "Long-term"},
					Rows: [][]string{
						{"Realized gains", "$2,500", "$9,800"},
						{"Unrealized losses", "$1,200", "$2,250"},
					},
				},
			},
		},
		{
			ID:         "sector-exposure",
			Title:      "Sector Exposure",
			Content:    "Technology is the largest sector exposure at 24% of equities, followed by healthcare at 15% and financials at 13%. Technology is 3 points overweight relative to the benchmark.",
			Category:   "allocation",
			Keywords:   []string{"sector", "sectors", "technology", "healthcare", "financials", "exposure"},
			Phrases:    []string{"sector exposure", "sector breakdown", "sector weights"},
			AnswerType: models.AnswerTypeChart,
			Data: Payload{
				Chart: &Chart{
					Kind:  "bar",
					Title: "Equity sector weights",
					Unit:  "%",
					Series: []ChartSeries{
						{Name: "Portfolio", Points: []ChartPoint{
							point("Technology", "24"), point("Healthcare", "15"),
							point("Financials", "13"), point("Industrials", "11"),
							point("Consumer", "10"),
						}},
					},
				},
			},
		},
	}
}
