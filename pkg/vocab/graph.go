package vocab

import "strings"

// GraphType is a chart kind. Labels are case-sensitive except for donut.
type GraphType string

const (
	GraphArea                GraphType = "Area"
	GraphBar                 GraphType = "Bar"
	GraphLine                GraphType = "Line"
	GraphBarCombo            GraphType = "BarCombo"
	GraphStacked             GraphType = "Stacked"
	GraphStackedCombo        GraphType = "StackedCombo"
	GraphDonut               GraphType = "donut"
	GraphRankedList          GraphType = "rankedList"
	GraphScorecard           GraphType = "Scorecard"
	GraphGroupedStackedCombo GraphType = "GroupedStackedCombo"
)

var graphTypes = lazy("graph_types", GraphBar,
	GraphArea,
	GraphBar,
	GraphLine,
	GraphBarCombo,
	GraphStacked,
	GraphStackedCombo,
	GraphDonut,
	GraphRankedList,
	GraphScorecard,
	GraphGroupedStackedCombo,
)

// GraphTypes returns the chart kind vocabulary. Fallback: Bar.
func GraphTypes() *Vocabulary[GraphType] { return graphTypes() }

// ValidateGraphType trims string candidates and accepts "donut" in any case
// before the usual membership check.
func ValidateGraphType(field string, candidate interface{}, report ReportFunc) GraphType {
	switch c := candidate.(type) {
	case string:
		candidate = strings.TrimSpace(c)
	case GraphType:
		candidate = strings.TrimSpace(string(c))
	}
	if s, ok := candidate.(string); ok && strings.EqualFold(s, string(GraphDonut)) {
		return GraphDonut
	}
	return Validate(GraphTypes(), field, candidate, report)
}

func (g *GraphType) UnmarshalJSON(data []byte) error {
	label, err := labelFromJSON(data)
	*g = GraphType(label)
	return err
}
