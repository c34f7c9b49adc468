package denorm

import (
	"context"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/corbinhal/dictgraph/cache"
	"github.com/corbinhal/dictgraph/config"
	"github.com/corbinhal/dictgraph/docval"
	"github.com/corbinhal/dictgraph/internal/trace"
	"github.com/corbinhal/dictgraph/model"
	"github.com/corbinhal/dictgraph/tree"
)

// Option configures [BuildAll].
type Option func(*buildConfig)

type buildConfig struct {
	logger *slog.Logger
	opts   config.Options
}

// WithLogger attaches a logger for fan-out progress events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *buildConfig) { c.logger = logger }
}

// WithConfig attaches caching options to the fan-out. When opts has a
// configured file-association path for a root's label, BuildAll
// additionally runs [FileAssociations] for that root and, if that yields
// at least one document, attaches the result under a "files" key.
func WithConfig(opts config.Options) Option {
	return func(c *buildConfig) { c.opts = opts }
}

// BuildAll constructs and denormalizes one document per root node,
// fanning the work out one task per root, with at most GOMAXPROCS tasks
// running at a time. The graph must already
// be in its read-only serving phase; traversal and document
// construction never mutate it, so concurrent fan-out across roots is
// safe. Results are returned in root order regardless of completion
// order.
//
// ctx cancellation stops launching further work but does not corrupt or
// need to release any state: each task is a purely CPU-bound walk and
// document build with nothing else to clean up.
func BuildAll(ctx context.Context, graph *cache.CachedGraph, dataModel *model.DataModel, typeTree tree.TypeTree, roots []cache.Node, opts ...Option) ([]Result, error) {
	cfg := buildConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx = trace.EnsureRequestID(ctx)
	op := trace.Begin(ctx, cfg.logger, "dictgraph.denorm.build", slog.Int("root_count", len(roots)))

	results := make([]Result, len(roots))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, root := range roots {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			nt := tree.Construct(graph, typeTree, root)
			doc := Build(dataModel, nt)
			if files := FileAssociations(dataModel, graph, root, cfg.opts); len(files) > 0 {
				list := make([]docval.Scalar, len(files))
				for j, f := range files {
					list[j] = docval.FromDoc(f)
				}
				doc = doc.Set("files", docval.FromList(list))
			}
			results[i] = Result{RootID: root.ID, Doc: doc}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		op.End(err)
		return nil, err
	}
	op.End(nil)
	return results, nil
}
