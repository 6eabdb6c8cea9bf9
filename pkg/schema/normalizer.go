package schema

import (
	"strconv"
	"strings"
	"time"

	"lucid-schemas/internal/common/config"
	"lucid-schemas/internal/common/errors"
	"lucid-schemas/internal/common/metrics"
	"lucid-schemas/pkg/vocab"
)

// Logger is the subset of the structured logger the schema package needs.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
}

// Normalizer applies per-field rules to a freshly decoded record. Vocabulary
// mismatches and negative amounts are repaired in place and reported as
// diagnostics; only date fields can fail.
//
// Label rules read the parsed payload to tell an absent member, which takes
// the default silently, from one the payload carried as null, "", a number or
// a container, which is reported like any other rejected value.
//
// A Normalizer belongs to a single construction and is not safe for
// concurrent use.
type Normalizer struct {
	schema    string
	prefix    string
	payload   map[string]interface{}
	logger    Logger
	now       func() time.Time
	fallbacks *int
}

// NewNormalizer returns a Normalizer for the named record. payload is the
// parsed document the record was decoded from; nil treats every empty label
// as absent.
func NewNormalizer(schemaName string, payload map[string]interface{}, log Logger, now func() time.Time) *Normalizer {
	if now == nil {
		now = time.Now
	}
	return &Normalizer{schema: schemaName, payload: payload, logger: log, now: now, fallbacks: new(int)}
}

// Nested returns a Normalizer whose field paths are prefixed with field.
func (n *Normalizer) Nested(field string) *Normalizer {
	child := *n
	child.prefix = n.path(field)
	return &child
}

// Index returns a Normalizer for element i of the list member field.
func (n *Normalizer) Index(field string, i int) *Normalizer {
	return n.Nested(field + "." + strconv.Itoa(i))
}

// Fallbacks is the number of substitutions made so far, nested records included.
func (n *Normalizer) Fallbacks() int { return *n.fallbacks }

func (n *Normalizer) path(field string) string {
	if n.prefix == "" {
		return field
	}
	return n.prefix + "." + field
}

// member returns the payload value at field and whether the payload carried
// the member at all.
func (n *Normalizer) member(field string) (interface{}, bool) {
	if n.payload == nil {
		return nil, false
	}
	var cur interface{} = n.payload
	for _, part := range strings.Split(n.path(field), ".") {
		switch node := cur.(type) {
		case map[string]interface{}:
			v, ok := node[part]
			if !ok {
				return nil, false
			}
			cur = v
		case []interface{}:
			i, err := strconv.Atoi(part)
			if err != nil || i < 0 || i >= len(node) {
				return nil, false
			}
			cur = node[i]
		default:
			return nil, false
		}
	}
	return cur, true
}

// candidate returns what the payload held for a label member.
func (n *Normalizer) candidate(field, label string) (interface{}, bool) {
	if raw, ok := n.member(field); ok {
		return raw, true
	}
	if label == "" {
		return nil, false
	}
	return label, true
}

func (n *Normalizer) report(m vocab.Mismatch) {
	*n.fallbacks++
	metrics.RecordFallback(n.schema, metricField(m.Field))
	if n.logger == nil {
		return
	}
	n.logger.Warn("Value outside vocabulary, using fallback", map[string]interface{}{
		"schema":     n.schema,
		"field":      m.Field,
		"vocabulary": m.Vocabulary,
		"value":      m.Value,
		"accepted":   m.Accepted,
		"fallback":   m.Fallback,
	})
}

// metricField drops list indexes so label cardinality stays bounded.
func metricField(path string) string {
	parts := strings.Split(path, ".")
	for i, p := range parts {
		if _, err := strconv.Atoi(p); err == nil {
			parts[i] = "*"
		}
	}
	return strings.Join(parts, ".")
}

// Label validates *target against v. An absent member takes the fallback
// without a diagnostic.
func Label[T ~string](n *Normalizer, v *vocab.Vocabulary[T], field string, target *T) {
	candidate, present := n.candidate(field, string(*target))
	if !present {
		*target = v.Fallback()
		return
	}
	*target = vocab.Validate(v, n.path(field), candidate, n.report)
}

func (n *Normalizer) Country(field string, target *vocab.Country) {
	Label(n, vocab.Countries(), field, target)
}

func (n *Normalizer) Stage(field string, target *vocab.Stage) {
	Label(n, vocab.Stages(), field, target)
}

func (n *Normalizer) Subscription(field string, target *vocab.SubscriptionType) {
	Label(n, vocab.SubscriptionTypes(), field, target)
}

func (n *Normalizer) Classifier(field string, target *vocab.ClassifierOption) {
	Label(n, vocab.ClassifierOptions(), field, target)
}

// Department expands abbreviations before validating against the department
// vocabulary.
func (n *Normalizer) Department(field string, target *vocab.Department) {
	candidate, present := n.candidate(field, string(*target))
	if !present {
		*target = vocab.Departments().Fallback()
		return
	}
	*target = vocab.Validate(vocab.Departments(), n.path(field), vocab.ExpandDepartment(candidate), n.report)
}

// GraphType applies the chart kind rule, including the donut alias.
func (n *Normalizer) GraphType(field string, target *vocab.GraphType) {
	candidate, present := n.candidate(field, string(*target))
	if !present {
		*target = vocab.GraphTypes().Fallback()
		return
	}
	*target = vocab.ValidateGraphType(n.path(field), candidate, n.report)
}

// NonNegativeInt replaces a negative value with zero. nil is left alone.
func (n *Normalizer) NonNegativeInt(field string, target *Int) {
	if target == nil || *target >= 0 {
		return
	}
	n.clamped(field, int64(*target))
	*target = 0
}

// NonNegativeFloat replaces a negative value with zero. nil is left alone.
func (n *Normalizer) NonNegativeFloat(field string, target *Float) {
	if target == nil || *target >= 0 {
		return
	}
	n.clamped(field, float64(*target))
	*target = 0
}

func (n *Normalizer) clamped(field string, value interface{}) {
	*n.fallbacks++
	path := n.path(field)
	metrics.RecordFallback(n.schema, metricField(path))
	if n.logger == nil {
		return
	}
	n.logger.Warn("Negative amount replaced with zero", map[string]interface{}{
		"schema": n.schema,
		"field":  path,
		"value":  value,
	})
}

// GoalDate validates a YYYY-MM-DD target date. Dates before today become
// today; an empty value defaults to today. Any other format fails with
// MALFORMED_INPUT.
func (n *Normalizer) GoalDate(field string, target *string) error {
	now := n.now()
	today := now.Format(config.TodayLayout)
	if *target == "" {
		*target = today
		return nil
	}
	parsed, err := time.ParseInLocation(config.TodayLayout, *target, now.Location())
	if err != nil {
		return errors.NewInvalidDateError(n.path(field), *target, "YYYY-MM-DD")
	}
	if parsed.Format(config.TodayLayout) < today {
		if n.logger != nil {
			n.logger.Debug("Goal date in the past, using today", map[string]interface{}{
				"schema": n.schema,
				"field":  n.path(field),
				"value":  *target,
				"today":  today,
			})
		}
		*target = today
	}
	return nil
}

// Sectors validates every element of a sector list. A single label in the
// payload stands for a one-element list. A nil list becomes empty.
func (n *Normalizer) Sectors(field string, target *vocab.SectorList) {
	if *target == nil {
		*target = vocab.SectorList{}
		return
	}
	raw, present := n.member(field)
	items, isList := raw.([]interface{})
	list := *target
	for i := range list {
		var candidate interface{} = string(list[i])
		switch {
		case isList && i < len(items):
			candidate = items[i]
		case present && !isList:
			candidate = raw
		}
		list[i] = vocab.Validate(vocab.Sectors(), n.path(field+"."+strconv.Itoa(i)), candidate, n.report)
	}
}
