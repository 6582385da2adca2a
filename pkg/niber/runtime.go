package niber

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/niber/internal/errors"
	"github.com/vango-dev/niber/pkg/metrics"
	"github.com/vango-dev/niber/pkg/vdom"
)

const defaultTracerName = "niber"

// Container receives the instance tree after every render and update.
// A nil root clears the container.
type Container interface {
	Commit(root *Instance) error
}

// Runtime owns one instance tree: its root, the container it commits to and
// the instance whose component function is currently running.
//
// A Runtime is not safe for concurrent use. Renders, setter calls and
// unmounting must be serialized by the caller.
type Runtime struct {
	id        string
	logger    *slog.Logger
	metrics   *metrics.Metrics
	tracer    trace.Tracer
	root      *Instance
	current   *Instance
	container Container
	nextID    int
	onCommit  []func(root *Instance)
}

type options struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

// Option configures a Runtime.
type Option func(*options)

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics sets the collectors the runtime records to. Default: none.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithTracer sets the tracer. Default: otel.Tracer("niber").
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) {
		o.tracer = tracer
	}
}

// New creates a runtime with no root.
func New(opts ...Option) *Runtime {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.tracer == nil {
		o.tracer = otel.Tracer(defaultTracerName)
	}

	id := uuid.NewString()
	return &Runtime{
		id:      id,
		logger:  o.logger.With("runtime_id", id),
		metrics: o.metrics,
		tracer:  o.tracer,
	}
}

// ID returns the runtime's unique identifier.
func (rt *Runtime) ID() string {
	return rt.id
}

// Root returns the root instance, or nil when nothing is mounted.
func (rt *Runtime) Root() *Instance {
	return rt.root
}

// OnCommit registers fn to run after every successful commit.
func (rt *Runtime) OnCommit(fn func(root *Instance)) {
	rt.onCommit = append(rt.onCommit, fn)
}

// Render builds the instance tree for desc and commits it to container.
//
// The first call mounts desc as the root. Later calls reconcile desc against
// the existing root, so component state survives wherever the root keeps its
// type.
func (rt *Runtime) Render(desc *vdom.VNode, container Container) error {
	ctx, span := rt.tracer.Start(context.Background(), "niber.render",
		trace.WithAttributes(attribute.String("niber.runtime_id", rt.id)))
	defer span.End()

	rt.container = container

	switch {
	case desc == nil:
		rt.logger.Debug("rendering empty description")
		rt.root = nil
	case rt.root == nil:
		rt.mountRoot(desc)
	default:
		rt.logger.Debug("reconciling root", "root", rt.root.ID)
		rt.root = rt.diff([]*Instance{rt.root}, []*vdom.VNode{desc})[0]
	}

	if err := rt.commit(ctx); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetStatus(codes.Ok, "")
	return nil
}

// Unmount discards the instance tree and clears the container. Setters of
// the discarded components become no-ops that log a missing-root error.
func (rt *Runtime) Unmount() error {
	if rt.root == nil {
		return nil
	}
	rt.logger.Debug("unmounting", "root", rt.root.ID)
	rt.root = nil
	if rt.container == nil {
		return nil
	}
	return rt.commit(context.Background())
}

// update re-renders inst's component with its stored props, reconciles its
// children and commits the whole tree from the root.
func (rt *Runtime) update(inst *Instance) error {
	if rt.root == nil {
		rt.metrics.RecordUpdate(metrics.StatusNoRoot)
		rt.logger.Error("state update with no root", "instance", inst.ID, "component", inst.Name())
		return errors.New("E002")
	}

	ctx, span := rt.tracer.Start(context.Background(), "niber.update",
		trace.WithAttributes(
			attribute.String("niber.runtime_id", rt.id),
			attribute.String("niber.instance", inst.ID),
			attribute.String("niber.component", inst.Name()),
		))
	defer span.End()

	rt.logger.Debug("updating", "instance", inst.ID, "component", inst.Name())
	out := rt.invoke(inst)
	inst.Children = rt.diff(inst.Children, []*vdom.VNode{out})

	if err := rt.commit(ctx); err != nil {
		rt.metrics.RecordUpdate(metrics.StatusCommitError)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	rt.metrics.RecordUpdate(metrics.StatusOK)
	span.SetStatus(codes.Ok, "")
	return nil
}

// trigger runs an update on behalf of a setter, which has no caller to
// return an error to.
func (rt *Runtime) trigger(inst *Instance) {
	if err := rt.update(inst); err != nil && !errors.HasCode(err, "E002") {
		rt.logger.Error("update failed", "instance", inst.ID, "error", err)
	}
}

// commit hands the tree to the container.
func (rt *Runtime) commit(ctx context.Context) error {
	if rt.container == nil {
		return nil
	}

	_, span := rt.tracer.Start(ctx, "niber.commit")
	defer span.End()

	start := time.Now()
	err := rt.container.Commit(rt.root)
	rt.metrics.ObserveCommit(time.Since(start))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		rt.logger.Error("commit failed", "error", err)
		return errors.New("E005").Wrap(err)
	}

	rt.metrics.SetInstances(rt.root.Count())
	for _, fn := range rt.onCommit {
		fn(rt.root)
	}
	return nil
}
