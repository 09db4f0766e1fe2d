package catalog

import "github.com/shopspring/decimal"

// Chart is a series chart rendered by the dashboard.
type Chart struct {
	Kind   string        `json:"kind" yaml:"kind"` // line, bar, pie
	Title  string        `json:"title" yaml:"title"`
	Unit   string        `json:"unit,omitempty" yaml:"unit,omitempty"`
	Series []ChartSeries `json:"series" yaml:"series"`
}

// ChartSeries is one named line or bar group.
type ChartSeries struct {
	Name   string       `json:"name" yaml:"name"`
	Points []ChartPoint `json:"points" yaml:"points"`
}

// ChartPoint is a single labelled value.
type ChartPoint struct {
	Label string          `json:"label" yaml:"label"`
	Value decimal.Decimal `json:"value" yaml:"value"`
}

// Table is a simple column/row grid.
type Table struct {
	Columns []string   `json:"columns" yaml:"columns"`
	Rows    [][]string `json:"rows" yaml:"rows"`
}

// KPI is a headline metric tile.
type KPI struct {
	Label  string          `json:"label" yaml:"label"`
	Value  decimal.Decimal `json:"value" yaml:"value"`
	Unit   string          `json:"unit,omitempty" yaml:"unit,omitempty"`
	Change decimal.Decimal `json:"change" yaml:"change"`
}

// Payload is the data attached to a catalog answer. Any part may be empty.
type Payload struct {
	Chart *Chart `json:"chart,omitempty" yaml:"chart,omitempty"`
	Table *Table `json:"table,omitempty" yaml:"table,omitempty"`
	KPIs  []KPI  `json:"kpis,omitempty" yaml:"kpis,omitempty"`
}

func pct(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func point(label, value string) ChartPoint {
	return ChartPoint{Label: label, Value: pct(value)}
}

func kpi(label, value, unit, change string) KPI {
	return KPI{Label: label, Value: pct(value), Unit: unit, Change: pct(change)}
}
