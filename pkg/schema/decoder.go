package schema

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"lucid-schemas/internal/common/errors"
	"lucid-schemas/internal/common/logger"
	"lucid-schemas/internal/common/metrics"
	"lucid-schemas/internal/common/validation"
)

// Recorder receives one observation per construction attempt.
type Recorder interface {
	RecordDecode(ctx context.Context, schema, status string, duration time.Duration)
}

// Decoder builds records from JSON payloads. It is safe for concurrent use;
// compiled schemas are cached per record name.
type Decoder struct {
	logger   Logger
	now      func() time.Time
	recorder Recorder
	tracer   trace.Tracer
	validate *validator.Validate
	compiled sync.Map // record name -> *validation.CompiledSchema
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithLogger sets the diagnostics logger.
func WithLogger(l Logger) Option {
	return func(d *Decoder) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithClock sets the clock used for date defaults and the goal date rule.
func WithClock(now func() time.Time) Option {
	return func(d *Decoder) {
		if now != nil {
			d.now = now
		}
	}
}

// WithRecorder reports every construction to r.
func WithRecorder(r Recorder) Option {
	return func(d *Decoder) {
		d.recorder = r
	}
}

// WithTracerProvider traces every construction with a tracer from tp.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(d *Decoder) {
		if tp != nil {
			d.tracer = tp.Tracer(tracerName)
		}
	}
}

const tracerName = "lucid-schemas/pkg/schema"

// NewDecoder returns a Decoder. Without WithLogger diagnostics go to zap's
// global logger.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{
		logger:   logger.NewZapAdapter(zap.L()),
		now:      time.Now,
		tracer:   otel.Tracer(tracerName),
		validate: newValidator(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

var defaultDecoder = sync.OnceValue(func() *Decoder { return NewDecoder() })

// Default returns the process-wide Decoder used by Parse.
func Default() *Decoder { return defaultDecoder() }

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Decode constructs a T from payload.
func Decode[T any, PT interface {
	*T
	Record
}](ctx context.Context, d *Decoder, payload []byte) (*T, error) {
	rec := PT(new(T))
	if err := d.DecodeInto(ctx, rec, payload); err != nil {
		return nil, err
	}
	return (*T)(rec), nil
}

// Parse constructs a T with the default Decoder.
func Parse[T any, PT interface {
	*T
	Record
}](payload []byte) (*T, error) {
	return Decode[T, PT](context.Background(), Default(), payload)
}

// DecodeNamed constructs the registered record called name.
func (d *Decoder) DecodeNamed(ctx context.Context, name string, payload []byte) (Record, error) {
	factory, ok := Lookup(name)
	if !ok {
		return nil, errors.NewUnknownSchemaError(name)
	}
	rec := factory()
	if err := d.DecodeInto(ctx, rec, payload); err != nil {
		return nil, err
	}
	return rec, nil
}

// DecodeInto constructs rec in place. rec must be a pointer.
func (d *Decoder) DecodeInto(ctx context.Context, rec Record, payload []byte) error {
	def := rec.Definition()
	start := time.Now()
	ctx, span := d.tracer.Start(ctx, "schema.decode", trace.WithAttributes(
		attribute.String("schema.name", def.Name),
		attribute.String("schema.mode", def.Mode.String()),
		attribute.Int("payload.bytes", len(payload)),
	))
	defer span.End()

	fallbacks, err := d.construct(rec, def, payload)

	code := string(errors.CodeOf(err))
	span.SetAttributes(attribute.Int("schema.fallbacks", fallbacks))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, code)
	}
	metrics.RecordDecode(def.Name, code)
	if d.recorder != nil {
		status := "success"
		if err != nil {
			status = "failure"
		}
		d.recorder.RecordDecode(ctx, def.Name, status, time.Since(start))
	}

	if err != nil {
		d.logger.Debug("Record construction failed", map[string]interface{}{
			"schema":     def.Name,
			"error_code": code,
			"error":      err.Error(),
		})
		return err
	}
	d.logger.Debug("Record constructed", map[string]interface{}{
		"schema":    def.Name,
		"fallbacks": fallbacks,
	})
	return nil
}

func (d *Decoder) construct(rec Record, def Definition, payload []byte) (int, error) {
	doc, err := parseObject(payload)
	if err != nil {
		return 0, err
	}

	for _, field := range def.Embedded {
		raw, ok := doc[field].(string)
		if !ok {
			continue
		}
		parsed, err := parseJSON([]byte(raw))
		if err != nil {
			return 0, errors.NewMalformedInputError(field, fmt.Errorf("%s is not valid JSON: %w", field, err))
		}
		// JSON text holding a bare string, number or boolean stays as text so
		// that encoding the record yields a payload that decodes the same way.
		switch parsed.(type) {
		case map[string]interface{}, []interface{}:
			doc[field] = parsed
		}
	}

	compiled, err := d.compile(def)
	if err != nil {
		return 0, err
	}
	result, err := compiled.Validate(doc)
	if err != nil {
		return 0, errors.NewMalformedInputError("document", err)
	}
	if !result.Valid {
		return 0, shapeError(def.Name, result)
	}

	retainDeclared(doc, reflect.TypeOf(rec))
	body, err := json.Marshal(doc)
	if err != nil {
		return 0, errors.NewMalformedInputError("document", err)
	}
	if err := json.Unmarshal(body, rec); err != nil {
		return 0, typedDecodeError(err)
	}

	n := NewNormalizer(def.Name, doc, d.logger, d.now)
	if err := rec.Normalize(n); err != nil {
		return n.Fallbacks(), err
	}

	if err := d.validate.Struct(rec); err != nil {
		return n.Fallbacks(), errors.NewConstraintViolationError(def.Name, err)
	}
	return n.Fallbacks(), nil
}

func (d *Decoder) compile(def Definition) (*validation.CompiledSchema, error) {
	if cached, ok := d.compiled.Load(def.Name); ok {
		return cached.(*validation.CompiledSchema), nil
	}
	compiled, err := validation.Compile(def.JSONSchema())
	if err != nil {
		return nil, errors.NewSchemaDefinitionError(def.Name, err)
	}
	actual, _ := d.compiled.LoadOrStore(def.Name, compiled)
	return actual.(*validation.CompiledSchema), nil
}

// parseObject decodes payload and requires a single JSON object.
func parseObject(payload []byte) (map[string]interface{}, error) {
	v, err := parseJSON(payload)
	if err != nil {
		return nil, errors.NewMalformedInputError("document", err)
	}
	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil, errors.NewMalformedInputError("document", fmt.Errorf("expected a JSON object"))
	}
	return obj, nil
}

func parseJSON(data []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after JSON value")
	}
	return v, nil
}

// shapeError reports the most specific structural failure: missing members
// first, then undeclared ones, then wrongly typed ones.
func shapeError(name string, result *validation.ValidationResult) error {
	if fields := result.FieldsWithCode(validation.CodeRequiredFieldMissing); len(fields) > 0 {
		return errors.NewMissingFieldError(name, fields)
	}
	if fields := result.FieldsWithCode(validation.CodeExtraField); len(fields) > 0 {
		return errors.NewExtraFieldError(name, fields)
	}
	if fields := result.FieldsWithCode(validation.CodeInvalidType); len(fields) > 0 {
		return errors.NewMalformedInputError(strings.Join(fields, ", "),
			fmt.Errorf("%s", strings.Join(result.GetErrorMessages(), "; ")))
	}
	return errors.NewConstraintViolationError(name, fmt.Errorf("%s", strings.Join(result.GetErrorMessages(), "; ")))
}

func typedDecodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) && typeErr.Field != "" {
		return errors.NewMalformedInputError(typeErr.Field, err)
	}
	return errors.NewMalformedInputError("document", err)
}

// Encode serializes rec. Open records write their preserved members back.
func Encode(rec Record) ([]byte, error) {
	return json.Marshal(rec)
}

// ToMap serializes rec into a generic map.
func ToMap(rec Record) (map[string]interface{}, error) {
	body, err := Encode(rec)
	if err != nil {
		return nil, err
	}
	var out map[string]interface{}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, err
	}
	return out, nil
}
