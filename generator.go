package text3d

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/text3d/internal/parallel"
	"github.com/gogpu/text3d/mesh"
	"github.com/gogpu/text3d/text"
)

// DefaultTaskWorkers is the number of generation passes a Generator runs
// at the same time.
const DefaultTaskWorkers = 2

// errPassPanicked is reported for a pass that panicked. The worker pool
// recovers the panic.
var errPassPanicked = errors.New("text3d: generation pass panicked")

// Snapshot is a published generation result with the sequence number of
// the update that produced it.
type Snapshot struct {
	Seq    uint64
	Result *Result
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*generatorOptions)

type generatorOptions struct {
	lib         *text.Library
	workers     int
	taskWorkers int
	onPublish   func(Snapshot)
}

// WithLibrary makes the Generator load fonts from lib. The Generator does
// not close a library it did not create.
func WithLibrary(lib *text.Library) GeneratorOption {
	return func(o *generatorOptions) {
		o.lib = lib
	}
}

// WithWorkers sets the number of goroutines tessellating glyphs.
// Zero means GOMAXPROCS.
func WithWorkers(n int) GeneratorOption {
	return func(o *generatorOptions) {
		o.workers = n
	}
}

// WithTaskWorkers sets how many generation passes may run at once.
func WithTaskWorkers(n int) GeneratorOption {
	return func(o *generatorOptions) {
		o.taskWorkers = n
	}
}

// WithOnPublish registers a callback run after each successful publish,
// on the goroutine that completed the pass.
func WithOnPublish(fn func(Snapshot)) GeneratorOption {
	return func(o *generatorOptions) {
		o.onPublish = fn
	}
}

// Generator rebuilds the mesh in the background each time Update is called
// and publishes complete results for concurrent readers.
//
// Every update gets a sequence number. A result is installed only if no
// newer result has been published, so a slow stale pass never replaces a
// fresher mesh. Starting an update cancels the pass still running for the
// previous one; cancellation is observed between lines.
//
// Generator is safe for concurrent use.
type Generator struct {
	lib       *text.Library
	ownsLib   bool
	tasks     *parallel.Pool
	work      *parallel.Pool
	onPublish func(Snapshot)

	seq     atomic.Uint64
	current atomic.Pointer[Snapshot]

	mu     sync.Mutex
	cancel context.CancelFunc
	closed bool
}

// NewGenerator creates a Generator and starts its worker pools.
func NewGenerator(opts ...GeneratorOption) *Generator {
	o := generatorOptions{taskWorkers: DefaultTaskWorkers}
	for _, opt := range opts {
		opt(&o)
	}

	g := &Generator{
		lib:       o.lib,
		tasks:     parallel.New(max(o.taskWorkers, 1)),
		work:      parallel.New(o.workers),
		onPublish: o.onPublish,
	}
	if g.lib == nil {
		g.lib = text.NewLibrary()
		g.ownsLib = true
	}
	return g
}

// Job tracks one Update.
type Job struct {
	seq  uint64
	done chan struct{}
	res  *Result
	err  error
}

func newJob(seq uint64) *Job {
	return &Job{seq: seq, done: make(chan struct{})}
}

func (j *Job) finish(res *Result, err error) {
	j.res, j.err = res, err
	close(j.done)
}

// Seq returns the sequence number assigned to the update.
func (j *Job) Seq() uint64 { return j.seq }

// Done is closed when the pass has finished.
func (j *Job) Done() <-chan struct{} { return j.done }

// Wait blocks until the pass finishes or ctx is done. It returns the
// published result, nil for an empty configuration, or the pass error.
// ErrSuperseded means a newer update won.
func (j *Job) Wait(ctx context.Context) (*Result, error) {
	select {
	case <-j.done:
		return j.res, j.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Update starts a generation pass over a copy of cfg.
func (g *Generator) Update(cfg Config) *Job {
	cfg = cfg.clone()

	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		j := newJob(0)
		j.finish(nil, ErrGeneratorClosed)
		return j
	}
	seq := g.seq.Add(1)
	if g.cancel != nil {
		g.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	g.cancel = cancel

	// Close waits for g.mu before closing the pools, so the task is either
	// queued ahead of the drain or rejected.
	j := newJob(seq)
	ok := g.tasks.Submit(func() {
		defer cancel()
		var res *Result
		err := errPassPanicked
		defer func() { j.finish(res, err) }()
		res, err = g.runPass(ctx, seq, &cfg)
	})
	g.mu.Unlock()
	if !ok {
		cancel()
		j.finish(nil, ErrGeneratorClosed)
	}
	return j
}

func (g *Generator) runPass(ctx context.Context, seq uint64, cfg *Config) (*Result, error) {
	res, err := generate(ctx, g.lib, cfg, g.work)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, fmt.Errorf("%w: update %d: %w", ErrSuperseded, seq, err)
		}
		Logger().Warn("text3d: generation failed", "seq", seq, "err", err)
		return nil, err
	}
	if res == nil {
		return nil, nil
	}
	if err := g.publish(Snapshot{Seq: seq, Result: res}); err != nil {
		return nil, err
	}
	return res, nil
}

// publish installs snap unless a newer snapshot is already visible.
func (g *Generator) publish(snap Snapshot) error {
	next := &snap
	for {
		cur := g.current.Load()
		if cur != nil && cur.Seq >= snap.Seq {
			Logger().Debug("text3d: stale result discarded", "seq", snap.Seq, "current", cur.Seq)
			return fmt.Errorf("%w: update %d behind %d", ErrSuperseded, snap.Seq, cur.Seq)
		}
		if g.current.CompareAndSwap(cur, next) {
			break
		}
	}

	Logger().Info("text3d: mesh published", "seq", snap.Seq,
		"vertices", snap.Result.Mesh.VertexCount(), "triangles", snap.Result.Mesh.TriangleCount())
	if g.onPublish != nil {
		g.onPublish(snap)
	}
	return nil
}

// Snapshot returns the latest published snapshot, or a zero Snapshot if
// nothing has been published yet.
func (g *Generator) Snapshot() Snapshot {
	if s := g.current.Load(); s != nil {
		return *s
	}
	return Snapshot{}
}

// Result returns the latest published result, or nil.
func (g *Generator) Result() *Result {
	return g.Snapshot().Result
}

// Mesh returns the latest published mesh, or nil.
func (g *Generator) Mesh() *mesh.Result {
	if r := g.Result(); r != nil {
		return r.Mesh
	}
	return nil
}

// Close cancels the running pass, waits for queued passes and releases
// the pools and, if the Generator created it, the font library.
// The last published snapshot stays readable. Close is idempotent.
func (g *Generator) Close() error {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return nil
	}
	g.closed = true
	if g.cancel != nil {
		g.cancel()
	}
	g.mu.Unlock()

	g.tasks.Close()
	g.work.Close()
	if g.ownsLib {
		return g.lib.Close()
	}
	return nil
}
