// ABOUTME: Renderer-agnostic widget descriptions produced from fetched resources
// ABOUTME: Shared by the TUI and the plain-text CLI output

package view

import "github.com/mikrodash/mikrodash/internal/resource"

// Level classifies a value for colouring.
type Level int

const (
	LevelNeutral Level = iota
	LevelOK
	LevelNotice
	LevelWarning
	LevelCritical
	LevelInfo
)

func (l Level) String() string {
	switch l {
	case LevelOK:
		return "ok"
	case LevelNotice:
		return "notice"
	case LevelWarning:
		return "warning"
	case LevelCritical:
		return "critical"
	case LevelInfo:
		return "info"
	default:
		return "neutral"
	}
}

// Field is one labelled value.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Level Level  `json:"level,omitempty"`
}

// Gauge is a percentage with its usage band.
type Gauge struct {
	Label   string  `json:"label"`
	Percent float64 `json:"percent"`
	Level   Level   `json:"level"`
	Detail  string  `json:"detail,omitempty"`
}

// Series is a time series, oldest value first.
type Series struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
	Latest string    `json:"latest,omitempty"`
}

// Cell is one table cell.
type Cell struct {
	Text  string `json:"text"`
	Level Level  `json:"level,omitempty"`
}

// Table is a titled grid of cells.
type Table struct {
	Columns []string `json:"columns"`
	Rows    [][]Cell `json:"rows"`
}

// Panel describes one dashboard widget. Exactly one of Loading, a Warning
// without content, Empty, or content applies; a Warning may also accompany
// content carried over from an earlier successful fetch.
type Panel struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Loading bool     `json:"loading,omitempty"`
	Warning string   `json:"warning,omitempty"`
	Empty   string   `json:"empty,omitempty"`
	Fields  []Field  `json:"fields,omitempty"`
	Gauges  []Gauge  `json:"gauges,omitempty"`
	Series  []Series `json:"series,omitempty"`
	Table   *Table   `json:"table,omitempty"`
	Footer  string   `json:"footer,omitempty"`
}

// HasContent reports whether the panel carries data to draw.
func (p Panel) HasContent() bool {
	return len(p.Fields) > 0 || len(p.Gauges) > 0 || len(p.Series) > 0 || p.Table != nil
}

// build applies the shared loading/warning/empty rules to one resource and
// lets fill draw the data. unavailable prefixes the failure reason.
func build[T any](id, title string, r *resource.Resource[T], unavailable string, isEmpty func(T) bool, emptyMsg string, fill func(*Panel, T)) Panel {
	p := Panel{ID: id, Title: title}
	if r == nil || r.Loading() {
		p.Loading = true
		return p
	}

	if err := r.Err(); err != nil {
		p.Warning = unavailable + ": " + err.Error()
	}

	data, ok := r.Data()
	if !ok {
		return p
	}
	if isEmpty != nil && isEmpty(data) {
		p.Empty = emptyMsg
		return p
	}
	fill(&p, data)
	return p
}

func isEmptySlice[T any](s []T) bool {
	return len(s) == 0
}

// FromResult wraps a single fetch result in a Resource so one-shot callers
// can use the panel builders.
func FromResult[T any](res resource.Result[T]) *resource.Resource[T] {
	r := &resource.Resource[T]{}
	r.Apply(1, res)
	return r
}
