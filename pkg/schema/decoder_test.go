package schema

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"lucid-schemas/internal/common/errors"
	"lucid-schemas/internal/common/logger"
	"lucid-schemas/internal/common/metrics"
	"lucid-schemas/internal/common/validation"
	"lucid-schemas/pkg/vocab"
)

// ==========================
// Test Records
// ==========================

type sample struct {
	Name        *string          `json:"name,omitempty" validate:"omitempty,max=5"`
	Balance     *Int             `json:"balance,omitempty"`
	Price       *Float           `json:"price,omitempty"`
	Department  vocab.Department `json:"department"`
	GeoLocation vocab.Country    `json:"geo_location"`
	Chart       vocab.GraphType  `json:"chart"`
	When        string           `json:"WHEN"`
	Response    interface{}      `json:"response,omitempty"`
}

var sampleDefinition = Definition{
	Name:     "sample",
	Category: "test",
	Mode:     ModeIgnore,
	Embedded: []string{"response"},
	Schema: validation.JSONSchema{
		Properties: map[string]validation.Property{
			"name":         {},
			"balance":      {},
			"price":        {},
			"department":   {},
			"geo_location": {},
			"chart":        {},
			"WHEN":         {},
			"response":     {},
		},
	},
}

func (sample) Definition() Definition { return sampleDefinition }

func (p *sample) Normalize(n *Normalizer) error {
	n.Department("department", &p.Department)
	n.Country("geo_location", &p.GeoLocation)
	n.GraphType("chart", &p.Chart)
	n.NonNegativeInt("balance", p.Balance)
	n.NonNegativeFloat("price", p.Price)
	return n.GoalDate("WHEN", &p.When)
}

type openSample struct {
	ID          *Int                   `json:"id,omitempty"`
	GeoLocation vocab.Country          `json:"geo_location"`
	Extra       map[string]interface{} `json:"-"`
}

func (openSample) Definition() Definition {
	return Definition{
		Name: "open_sample",
		Mode: ModeOpen,
		Schema: validation.JSONSchema{Properties: map[string]validation.Property{
			"id": {}, "geo_location": {},
		}},
	}
}

func (p *openSample) Normalize(n *Normalizer) error {
	n.Country("geo_location", &p.GeoLocation)
	return nil
}

func (p *openSample) UnmarshalJSON(data []byte) error {
	type plain openSample
	extra, err := UnmarshalOpen(data, (*plain)(p))
	p.Extra = extra
	return err
}

func (p openSample) MarshalJSON() ([]byte, error) {
	type plain openSample
	return MarshalOpen(plain(p), p.Extra)
}

type strictItem struct {
	ID          *Int          `json:"id"`
	GeoLocation vocab.Country `json:"geo_location"`
}

type strictSample struct {
	Items []strictItem `json:"items"`
}

func (strictSample) Definition() Definition {
	return Definition{
		Name: "strict_sample",
		Mode: ModeStrict,
		Schema: validation.JSONSchema{
			Required: []string{"items"},
			Properties: map[string]validation.Property{
				"items": {
					Type: "array",
					Items: &validation.Property{
						Type:       "object",
						Properties: map[string]validation.Property{"id": {}, "geo_location": {}},
					},
				},
			},
		},
	}
}

func (p *strictSample) Normalize(n *Normalizer) error {
	for i := range p.Items {
		n.Index("items", i).Country("geo_location", &p.Items[i].GeoLocation)
	}
	return nil
}

// ==========================
// Test Helper Functions
// ==========================

var fixedNow = time.Date(2025, time.March, 10, 15, 4, 5, 0, time.UTC)

func newObservedDecoder(t *testing.T) (*Decoder, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	d := NewDecoder(
		WithLogger(logger.NewZapAdapter(zap.New(core))),
		WithClock(func() time.Time { return fixedNow }),
	)
	return d, logs
}

func warnings(logs *observer.ObservedLogs) []observer.LoggedEntry {
	return logs.FilterLevelExact(zapcore.WarnLevel).All()
}

// ==========================
// Construction Tests
// ==========================

func TestDecode_Defaults(t *testing.T) {
	d, logs := newObservedDecoder(t)

	got, err := Decode[sample](context.Background(), d, []byte(`{}`))
	require.NoError(t, err)

	assert.Nil(t, got.Name)
	assert.Nil(t, got.Balance)
	assert.Equal(t, vocab.DepartmentGA, got.Department)
	assert.Equal(t, vocab.CountryUnitedStatesOfAmericaUSA, got.GeoLocation)
	assert.Equal(t, vocab.GraphBar, got.Chart)
	assert.Equal(t, "2025-03-10", got.When)
	assert.Empty(t, warnings(logs))
}

func TestDecode_VocabularyFallbacks(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		check     func(t *testing.T, p *sample)
		wantField string
	}{
		{
			name:    "unknown country",
			payload: `{"geo_location":"Atlantis"}`,
			check: func(t *testing.T, p *sample) {
				assert.Equal(t, vocab.CountryUnitedStatesOfAmericaUSA, p.GeoLocation)
			},
			wantField: "geo_location",
		},
		{
			name:    "numeric country",
			payload: `{"geo_location":7}`,
			check: func(t *testing.T, p *sample) {
				assert.Equal(t, vocab.CountryUnitedStatesOfAmericaUSA, p.GeoLocation)
			},
			wantField: "geo_location",
		},
		{
			name:    "unknown department",
			payload: `{"department":"Legal"}`,
			check: func(t *testing.T, p *sample) {
				assert.Equal(t, vocab.DepartmentGA, p.Department)
			},
			wantField: "department",
		},
		{
			name:    "unknown chart",
			payload: `{"chart":"pie"}`,
			check: func(t *testing.T, p *sample) {
				assert.Equal(t, vocab.GraphBar, p.Chart)
			},
			wantField: "chart",
		},
		{
			name:    "country as list",
			payload: `{"geo_location":["Japan"]}`,
			check: func(t *testing.T, p *sample) {
				assert.Equal(t, vocab.CountryUnitedStatesOfAmericaUSA, p.GeoLocation)
			},
			wantField: "geo_location",
		},
		{
			name:    "country as object",
			payload: `{"geo_location":{"name":"France"}}`,
			check: func(t *testing.T, p *sample) {
				assert.Equal(t, vocab.CountryUnitedStatesOfAmericaUSA, p.GeoLocation)
			},
			wantField: "geo_location",
		},
		{
			name:    "department as object",
			payload: `{"department":{"short":"rnd"}}`,
			check: func(t *testing.T, p *sample) {
				assert.Equal(t, vocab.DepartmentGA, p.Department)
			},
			wantField: "department",
		},
		{
			name:    "chart as list",
			payload: `{"chart":["donut"]}`,
			check: func(t *testing.T, p *sample) {
				assert.Equal(t, vocab.GraphBar, p.Chart)
			},
			wantField: "chart",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, logs := newObservedDecoder(t)

			got, err := Decode[sample](context.Background(), d, []byte(tt.payload))
			require.NoError(t, err)
			tt.check(t, got)

			entries := warnings(logs)
			require.Len(t, entries, 1)
			fields := entries[0].ContextMap()
			assert.Equal(t, tt.wantField, fields["field"])
			assert.Equal(t, "sample", fields["schema"])
			assert.NotEmpty(t, fields["accepted"])
		})
	}
}

func TestDecode_ExplicitEmptyLabelsAreReported(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		wantField string
		wantValue interface{}
	}{
		{name: "empty country", payload: `{"geo_location":""}`, wantField: "geo_location", wantValue: ""},
		{name: "null country", payload: `{"geo_location":null}`, wantField: "geo_location", wantValue: nil},
		{name: "empty department", payload: `{"department":""}`, wantField: "department", wantValue: ""},
		{name: "null department", payload: `{"department":null}`, wantField: "department", wantValue: nil},
		{name: "blank chart", payload: `{"chart":"  "}`, wantField: "chart", wantValue: ""},
		{name: "null chart", payload: `{"chart":null}`, wantField: "chart", wantValue: nil},
		{name: "list country", payload: `{"geo_location":["Japan"]}`, wantField: "geo_location", wantValue: []interface{}{"Japan"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, logs := newObservedDecoder(t)

			got, err := Decode[sample](context.Background(), d, []byte(tt.payload))
			require.NoError(t, err)
			assert.Equal(t, vocab.DepartmentGA, got.Department)
			assert.Equal(t, vocab.CountryUnitedStatesOfAmericaUSA, got.GeoLocation)
			assert.Equal(t, vocab.GraphBar, got.Chart)

			entries := warnings(logs)
			require.Len(t, entries, 1)
			fields := entries[0].ContextMap()
			assert.Equal(t, tt.wantField, fields["field"])
			assert.Equal(t, tt.wantValue, fields["value"])
		})
	}
}

func TestDecode_MembersAreKept(t *testing.T) {
	d, logs := newObservedDecoder(t)

	got, err := Decode[sample](context.Background(), d,
		[]byte(`{"department":"snm","geo_location":"Japan","chart":" DONUT ","WHEN":"2030-01-01"}`))
	require.NoError(t, err)

	assert.Equal(t, vocab.DepartmentSM, got.Department)
	assert.Equal(t, vocab.CountryJapan, got.GeoLocation)
	assert.Equal(t, vocab.GraphDonut, got.Chart)
	assert.Equal(t, "2030-01-01", got.When)
	assert.Empty(t, warnings(logs))
}

func TestDecode_NonNegativeAmounts(t *testing.T) {
	d, logs := newObservedDecoder(t)

	got, err := Decode[sample](context.Background(), d, []byte(`{"balance":-250,"price":"-1.5"}`))
	require.NoError(t, err)
	assert.Equal(t, Int(0), *got.Balance)
	assert.Equal(t, Float(0), *got.Price)
	assert.Len(t, warnings(logs), 2)

	got, err = Decode[sample](context.Background(), d, []byte(`{"balance":"1200","price":9.99}`))
	require.NoError(t, err)
	assert.Equal(t, Int(1200), *got.Balance)
	assert.Equal(t, Float(9.99), *got.Price)
}

func TestDecode_LargeIntegersAreExact(t *testing.T) {
	d, _ := newObservedDecoder(t)

	got, err := Decode[sample](context.Background(), d, []byte(`{"balance":9007199254740993}`))
	require.NoError(t, err)
	assert.Equal(t, Int(9007199254740993), *got.Balance)

	got, err = Decode[sample](context.Background(), d, []byte(`{"balance":"010"}`))
	require.NoError(t, err)
	assert.Equal(t, Int(10), *got.Balance)
}

func TestDecode_GoalDate(t *testing.T) {
	tests := []struct {
		when    string
		want    string
		wantErr bool
	}{
		{when: "2020-01-01", want: "2025-03-10"},
		{when: "2025-03-09", want: "2025-03-10"},
		{when: "2025-03-10", want: "2025-03-10"},
		{when: "2025-03-11", want: "2025-03-11"},
		{when: "10/03/2025", wantErr: true},
		{when: "2025-02-30", wantErr: true},
		{when: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.when, func(t *testing.T) {
			d, _ := newObservedDecoder(t)
			payload, _ := json.Marshal(map[string]string{"WHEN": tt.when})

			got, err := Decode[sample](context.Background(), d, payload)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrCodeMalformedInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.When)
		})
	}
}

func TestDecode_EmbeddedJSON(t *testing.T) {
	d, _ := newObservedDecoder(t)

	got, err := Decode[sample](context.Background(), d, []byte(`{"response":"{\"summary\":\"ok\",\"score\":3}"}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"summary": "ok", "score": float64(3)}, got.Response)

	got, err = Decode[sample](context.Background(), d, []byte(`{"response":{"already":"parsed"}}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"already": "parsed"}, got.Response)

	got, err = Decode[sample](context.Background(), d, []byte(`{"response":"\"ok\""}`))
	require.NoError(t, err)
	assert.Equal(t, `"ok"`, got.Response)

	body, err := Encode(got)
	require.NoError(t, err)
	again, err := Decode[sample](context.Background(), d, body)
	require.NoError(t, err)
	assert.Equal(t, got, again)

	_, err = Decode[sample](context.Background(), d, []byte(`{"response":"{not json"}`))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeMalformedInput))
	assert.Contains(t, err.Error(), "response")
}

func TestDecode_MalformedInput(t *testing.T) {
	payloads := []string{
		``,
		`not json`,
		`[1,2,3]`,
		`"text"`,
		`{"balance":1} trailing`,
		`{"balance":"lots"}`,
		`{"balance":1.5}`,
		`{"balance":true}`,
		`{"balance":"0x10"}`,
		`{"balance":"1_000"}`,
		`{"balance":1e30}`,
		`{"balance":"9223372036854775808"}`,
		`{"price":"Infinity"}`,
		`{"price":"NaN"}`,
		`{"price":1e400}`,
	}

	for _, payload := range payloads {
		t.Run(payload, func(t *testing.T) {
			d, _ := newObservedDecoder(t)
			_, err := Decode[sample](context.Background(), d, []byte(payload))
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeMalformedInput, errors.CodeOf(err))
		})
	}
}

func TestDecode_ConstraintViolation(t *testing.T) {
	d, _ := newObservedDecoder(t)

	_, err := Decode[sample](context.Background(), d, []byte(`{"name":"far too long"}`))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConstraintViolation, errors.CodeOf(err))
}

// ==========================
// Mode Tests
// ==========================

func TestDecode_IgnoreModeDropsExtras(t *testing.T) {
	d, _ := newObservedDecoder(t)

	got, err := Decode[sample](context.Background(), d, []byte(`{"geo_location":"France","comment":"x"}`))
	require.NoError(t, err)

	m, err := ToMap(got)
	require.NoError(t, err)
	assert.NotContains(t, m, "comment")
}

func TestDecode_MemberNamesAreCaseSensitive(t *testing.T) {
	d, logs := newObservedDecoder(t)

	got, err := Decode[sample](context.Background(), d, []byte(`{"GEO_LOCATION":"Japan","Department":"Legal","when":"2020-01-01"}`))
	require.NoError(t, err)
	assert.Equal(t, vocab.CountryUnitedStatesOfAmericaUSA, got.GeoLocation)
	assert.Equal(t, vocab.DepartmentGA, got.Department)
	assert.Equal(t, "2025-03-10", got.When)
	assert.Empty(t, warnings(logs))

	m, err := ToMap(got)
	require.NoError(t, err)
	assert.NotContains(t, m, "GEO_LOCATION")
	assert.NotContains(t, m, "Department")

	open, err := Decode[openSample](context.Background(), d, []byte(`{"ID":4,"Geo_Location":"Mars","geo_location":"Peru"}`))
	require.NoError(t, err)
	assert.Nil(t, open.ID)
	assert.Equal(t, vocab.CountryPeru, open.GeoLocation)
	assert.Equal(t, map[string]interface{}{"ID": float64(4), "Geo_Location": "Mars"}, open.Extra)
	assert.Empty(t, warnings(logs))

	body, err := Encode(open)
	require.NoError(t, err)
	assert.JSONEq(t, `{"geo_location":"Peru","ID":4,"Geo_Location":"Mars"}`, string(body))
}

func TestDecode_OpenModePreservesExtras(t *testing.T) {
	d, _ := newObservedDecoder(t)

	got, err := Decode[openSample](context.Background(), d,
		[]byte(`{"id":"3","geo_location":"Atlantis","team":"core","tags":["a"]}`))
	require.NoError(t, err)

	assert.Equal(t, Int(3), *got.ID)
	assert.Equal(t, vocab.CountryUnitedStatesOfAmericaUSA, got.GeoLocation)
	assert.Equal(t, map[string]interface{}{"team": "core", "tags": []interface{}{"a"}}, got.Extra)

	body, err := Encode(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3,"geo_location":"United States of America (USA)","team":"core","tags":["a"]}`, string(body))

	again, err := Decode[openSample](context.Background(), d, body)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestDecode_StrictModeRejectsExtras(t *testing.T) {
	tests := []struct {
		name       string
		payload    string
		wantCode   errors.ErrorCode
		wantFields []string
	}{
		{
			name:       "top level",
			payload:    `{"items":[],"note":"x"}`,
			wantCode:   errors.ErrCodeExtraField,
			wantFields: []string{"note"},
		},
		{
			name:       "nested",
			payload:    `{"items":[{"id":1,"bonus":2}]}`,
			wantCode:   errors.ErrCodeExtraField,
			wantFields: []string{"items.0.bonus"},
		},
		{
			name:       "differently cased member",
			payload:    `{"items":[{"ID":1,"geo_location":"Peru"}]}`,
			wantCode:   errors.ErrCodeExtraField,
			wantFields: []string{"items.0.ID"},
		},
		{
			name:       "missing required",
			payload:    `{}`,
			wantCode:   errors.ErrCodeMissingField,
			wantFields: []string{"items"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := newObservedDecoder(t)
			_, err := Decode[strictSample](context.Background(), d, []byte(tt.payload))
			require.Error(t, err)

			stdErr := errors.Normalize(err)
			assert.Equal(t, tt.wantCode, stdErr.Code)
			assert.Equal(t, tt.wantFields, stdErr.Metadata["fields"])
		})
	}
}

func TestDecode_StrictModeNestedFallback(t *testing.T) {
	d, logs := newObservedDecoder(t)

	got, err := Decode[strictSample](context.Background(), d,
		[]byte(`{"items":[{"id":1,"geo_location":"France"},{"id":2,"geo_location":"Mars"}]}`))
	require.NoError(t, err)
	assert.Equal(t, vocab.CountryFrance, got.Items[0].GeoLocation)
	assert.Equal(t, vocab.CountryUnitedStatesOfAmericaUSA, got.Items[1].GeoLocation)

	entries := warnings(logs)
	require.Len(t, entries, 1)
	assert.Equal(t, "items.1.geo_location", entries[0].ContextMap()["field"])
}

// ==========================
// Observation Tests
// ==========================

type fakeRecorder struct {
	mu       sync.Mutex
	statuses []string
}

func (f *fakeRecorder) RecordDecode(_ context.Context, schema, status string, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses = append(f.statuses, schema+":"+status)
}

func TestDecoder_RecordsOutcomes(t *testing.T) {
	rec := &fakeRecorder{}
	d := NewDecoder(WithLogger(logger.NewNoOpLogger()), WithRecorder(rec))

	successes := testutil.ToFloat64(metrics.SchemaDecodes.WithLabelValues("strict_sample", "success"))
	failures := testutil.ToFloat64(metrics.SchemaDecodeFailures.WithLabelValues("strict_sample", "EXTRA_FIELD"))
	fallbacks := testutil.ToFloat64(metrics.SchemaFallbacks.WithLabelValues("strict_sample", "items.*.geo_location"))

	_, err := Decode[strictSample](context.Background(), d, []byte(`{"items":[{"geo_location":"Mars"}]}`))
	require.NoError(t, err)
	_, err = Decode[strictSample](context.Background(), d, []byte(`{"items":[],"x":1}`))
	require.Error(t, err)

	assert.Equal(t, []string{"strict_sample:success", "strict_sample:failure"}, rec.statuses)
	assert.Equal(t, successes+1, testutil.ToFloat64(metrics.SchemaDecodes.WithLabelValues("strict_sample", "success")))
	assert.Equal(t, failures+1, testutil.ToFloat64(metrics.SchemaDecodeFailures.WithLabelValues("strict_sample", "EXTRA_FIELD")))
	assert.Equal(t, fallbacks+1, testutil.ToFloat64(metrics.SchemaFallbacks.WithLabelValues("strict_sample", "items.*.geo_location")))
}

func TestDecoder_TracesConstruction(t *testing.T) {
	spans := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	d := NewDecoder(WithLogger(logger.NewNoOpLogger()), WithTracerProvider(tp))

	_, err := Decode[strictSample](context.Background(), d, []byte(`{"items":[{"geo_location":"Atlantis"}]}`))
	require.NoError(t, err)
	_, err = Decode[strictSample](context.Background(), d, []byte(`{"items":[],"x":1}`))
	require.Error(t, err)

	ended := spans.Ended()
	require.Len(t, ended, 2)

	attrs := func(s sdktrace.ReadOnlySpan) map[string]interface{} {
		out := map[string]interface{}{}
		for _, kv := range s.Attributes() {
			out[string(kv.Key)] = kv.Value.AsInterface()
		}
		return out
	}

	ok := attrs(ended[0])
	assert.Equal(t, "schema.decode", ended[0].Name())
	assert.Equal(t, "strict_sample", ok["schema.name"])
	assert.Equal(t, "strict", ok["schema.mode"])
	assert.Equal(t, int64(1), ok["schema.fallbacks"])
	assert.Equal(t, codes.Unset, ended[0].Status().Code)

	assert.Equal(t, codes.Error, ended[1].Status().Code)
	assert.Equal(t, "EXTRA_FIELD", ended[1].Status().Description)
}

func TestDecoder_ConcurrentUse(t *testing.T) {
	d := NewDecoder(WithLogger(logger.NewNoOpLogger()))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := Decode[strictSample](context.Background(), d, []byte(`{"items":[{"id":1,"geo_location":"Peru"}]}`))
			assert.NoError(t, err)
			assert.Equal(t, vocab.CountryPeru, got.Items[0].GeoLocation)
		}()
	}
	wg.Wait()
}

func TestDefinition_JSONSchemaAppliesMode(t *testing.T) {
	strict := strictSample{}.Definition().JSONSchema()
	assert.False(t, strict.AdditionalProperties)
	assert.Equal(t, false, *strict.Properties["items"].Items.AdditionalProperties)

	open := openSample{}.Definition().JSONSchema()
	assert.True(t, open.AdditionalProperties)
}
