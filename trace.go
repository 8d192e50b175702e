package nonempty

import (
	"fmt"
	"iter"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-softwarelab/common/pkg/slogx"
)

type Tracer interface {
	SubTracer(description string, v ...any) Tracer
	Msg(format string, v ...any)
	End()
}

// TraceFunc defines the function prototype of a tracing function
// Per sequence functions can be configured using WithTraceFunc
type TraceFunc func(format string, v ...any)

// SlogTraceFunc returns a TraceFunc that writes each trace message to logger
// at debug level.  A nil logger means slog.Default().
func SlogTraceFunc(logger *slog.Logger) TraceFunc {
	logger = slogx.DefaultIfNil(logger)

	return func(format string, v ...any) {
		logger.Debug(fmt.Sprintf(format, v...))
	}
}

// DefaultTracer is the global default trace function.  It logs messages to
// stderr at debug level.  DefaultTracer can be replaced by another tracing
// function to effect all traced sequences.
var DefaultTracer = SlogTraceFunc(
	slogx.NewBuilder().
		WithSlogLevel(slog.LevelDebug).
		WritingTo(os.Stderr).
		WithTextFormat().
		Logger().
		With(slogx.Component("nonempty")),
)

type tracer struct {
	begin       time.Time
	description string
	ids         []uint32
	subids      atomic.Uint32
	traceFunc   TraceFunc
}

func NewTracer(id uint32, description string, f TraceFunc, v ...any) *tracer {
	if f == nil {
		f = DefaultTracer
	}
	now := time.Now()

	description = fmt.Sprintf(description, v...)

	t := &tracer{
		begin:       now,
		description: description,
		ids:         []uint32{id},
		traceFunc:   f,
	}

	t.start()
	return t
}

func (t *tracer) id() string {
	idStrings := make([]string, len(t.ids))
	for i, n := range t.ids {
		idStrings[i] = strconv.Itoa(int(n))
	}
	return strings.Join(idStrings, ".")
}

func (t *tracer) start() {
	t.begin = time.Now()
	t.traceFunc("%s: START [trace #%s] %s", t.begin.Format(time.RFC3339), t.id(), t.description)
}

func (t *tracer) SubTracer(description string, v ...any) Tracer {
	subId := t.subids.Add(1)

	t2 := &tracer{
		description: t.description + fmt.Sprintf(" / "+description, v...),
		ids:         append(slices.Clone(t.ids), subId),
		traceFunc:   t.traceFunc,
	}

	t2.start()
	return t2
}

func (t *tracer) Msg(format string, v ...any) {
	var args []any = []any{
		time.Now().Format(time.RFC3339), t.id(), t.description,
	}
	args = append(args, v...)
	t.traceFunc("%s: MSG [trace #%s] %s: "+format, args...)
}

func (t *tracer) End() {
	t.traceFunc("%s: END [trace #%s] %s (%s)", time.Now().Format(time.RFC3339), t.id(), t.description,
		time.Since(t.begin).Round(time.Microsecond))
}

type NullTracer struct{}

func (t NullTracer) SubTracer(description string, v ...any) Tracer { return t }
func (t NullTracer) Msg(string, ...any)                            {}
func (t NullTracer) End()                                          {}

// trace ids are unique per process
var traceIds atomic.Uint32

type traceOptions struct {
	traceFunc TraceFunc
	tracing   bool
	items     bool
	parent    Tracer
}

// TraceOption customizes the behaviour of Trace.
type TraceOption func(o *traceOptions)

// WithTraceFunc sets the trace function for the sequence.  If not set,
// DefaultTracer is used.
func WithTraceFunc(f TraceFunc) TraceOption {
	return func(o *traceOptions) {
		o.traceFunc = f
	}
}

// WithTracing enables or disables tracing.  Tracing is enabled by default;
// a disabled TraceIter passes its upstream through untouched.
func WithTracing(enable bool) TraceOption {
	return func(o *traceOptions) {
		o.tracing = enable
	}
}

// WithItemTracing adds a message for every element yielded, not just the
// start and end of each traversal.
func WithItemTracing(enable bool) TraceOption {
	return func(o *traceOptions) {
		o.items = enable
	}
}

// WithParentTracer nests the traces of the sequence under parent instead
// of starting a new top level trace for every traversal.
func WithParentTracer(parent Tracer) TraceOption {
	return func(o *traceOptions) {
		o.parent = parent
	}
}

// TraceIter reports the traversals of its upstream to a TraceFunc.
type TraceIter[T any] struct {
	proof
	ne          NonEmpty[T]
	id          uint32
	description string
	opts        traceOptions
}

// Trace returns ne unchanged, except that every time the result is ranged
// over a START message is emitted before the first element is pulled, and
// an END message with the number of elements yielded once the traversal
// finishes or is abandoned.
func Trace[T any](ne NonEmpty[T], description string, opts ...TraceOption) TraceIter[T] {
	o := traceOptions{tracing: true}
	for _, f := range opts {
		f(&o)
	}

	return TraceIter[T]{
		ne:          ne,
		id:          traceIds.Add(1),
		description: description,
		opts:        o,
	}
}

func (t TraceIter[T]) tracer() Tracer {
	if t.opts.parent != nil {
		return t.opts.parent.SubTracer("%s", t.description)
	}

	return NewTracer(t.id, "%s", t.opts.traceFunc, t.description)
}

func (t TraceIter[T]) Seq() iter.Seq[T] {
	if !t.opts.tracing {
		return t.ne.Seq()
	}

	return func(yield func(T) bool) {
		tr := t.tracer()
		n := 0
		defer func() {
			tr.Msg("%d elements", n)
			tr.End()
		}()

		for v := range t.ne.Seq() {
			n++
			if t.opts.items {
				tr.Msg("element %d: %v", n, v)
			}
			if !yield(v) {
				return
			}
		}
	}
}

func (t TraceIter[T]) singleUse() bool { return isSingleUse(t.ne) }

func (t TraceIter[T]) IntoNonEmpty() NonEmpty[T] {
	return t
}
