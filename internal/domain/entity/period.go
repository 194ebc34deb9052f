package entity

import (
	"fmt"
	"strings"
)

// Period is one fiscal quarter of the fixed five-quarter window covered by the dataset.
// The declaration order is the chronological order.
type Period int

const (
	Q3FY24 Period = iota
	Q4FY24
	Q1FY25
	Q2FY25
	Q3FY25
)

var periodTokens = [...]string{"Q3_FY24", "Q4_FY24", "Q1_FY25", "Q2_FY25", "Q3_FY25"}

// Periods returns every period in chronological order.
func Periods() []Period {
	return []Period{Q3FY24, Q4FY24, Q1FY25, Q2FY25, Q3FY25}
}

// LatestPeriod returns the most recent period of the window.
func LatestPeriod() Period {
	return Q3FY25
}

// Valid reports whether p is one of the known periods.
func (p Period) Valid() bool {
	return p >= Q3FY24 && p <= Q3FY25
}

// String returns the column token of the period, e.g. "Q3_FY24".
func (p Period) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Period(%d)", int(p))
	}
	return periodTokens[p]
}

// Label returns the display label of the period, e.g. "Q3 FY24".
func (p Period) Label() string {
	return strings.ReplaceAll(p.String(), "_", " ")
}

// Index returns the position of p inside Periods().
func (p Period) Index() int {
	return int(p)
}

// ParsePeriod accepts the column token ("Q3_FY24") or the display label ("Q3 FY24"),
// case-insensitively.
func ParsePeriod(s string) (Period, error) {
	token := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", "_"))
	for i, t := range periodTokens {
		if t == token {
			return Period(i), nil
		}
	}
	return 0, fmt.Errorf("unknown period %q", s)
}

// MetricKind is the kind of per-period measure: transaction count or monetary amount.
type MetricKind int

const (
	Volume MetricKind = iota
	Value
)

// MetricKinds returns the metric kinds in column order.
func MetricKinds() []MetricKind {
	return []MetricKind{Volume, Value}
}

func (m MetricKind) String() string {
	switch m {
	case Volume:
		return "Volume"
	case Value:
		return "Value"
	default:
		return fmt.Sprintf("MetricKind(%d)", int(m))
	}
}

// AxisTitle is the y-axis caption used when charting the metric.
func (m MetricKind) AxisTitle() string {
	if m == Volume {
		return "Volume (Millions)"
	}
	return "Value (Millions PKR)"
}

// ParseMetricKind accepts "volume" or "value" in any case.
func ParseMetricKind(s string) (MetricKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "volume":
		return Volume, nil
	case "value":
		return Value, nil
	default:
		return 0, fmt.Errorf("unknown metric %q", s)
	}
}

// PeriodMetricKey addresses one metric cell of a record.
type PeriodMetricKey struct {
	Period Period
	Metric MetricKind
}

// Key builds a PeriodMetricKey.
func Key(p Period, m MetricKind) PeriodMetricKey {
	return PeriodMetricKey{Period: p, Metric: m}
}

// Column returns the source column name of the cell, e.g. "Q3_FY24_Volume".
func (k PeriodMetricKey) Column() string {
	return k.Period.String() + "_" + k.Metric.String()
}

// MetricKeys returns every key in export column order: for each period, Volume then Value.
func MetricKeys() []PeriodMetricKey {
	keys := make([]PeriodMetricKey, 0, len(periodTokens)*2)
	for _, p := range Periods() {
		for _, m := range MetricKinds() {
			keys = append(keys, Key(p, m))
		}
	}
	return keys
}
