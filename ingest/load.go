package ingest

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/tidwall/jsonc"
	"golang.org/x/sync/errgroup"

	"github.com/corbinhal/dictgraph/cache"
	"github.com/corbinhal/dictgraph/docval"
	"github.com/corbinhal/dictgraph/errs"
	"github.com/corbinhal/dictgraph/internal/trace"
	"github.com/corbinhal/dictgraph/model"
	"github.com/corbinhal/dictgraph/tablename"
)

// Option configures [Load].
type Option func(*loadConfig)

type loadConfig struct {
	logger *slog.Logger
}

// WithLogger attaches a logger for ingestion progress events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *loadConfig) { c.logger = logger }
}

// Load bulk-loads graph from source according to dataModel: every node
// table first (decoded in parallel, inserted sequentially), then every
// edge table (inserted sequentially, respecting add_edge's referential
// check). Per the core's error policy, construction errors are fatal
// for the whole load — Load returns on the first error rather than
// producing a partial graph.
func Load(ctx context.Context, graph *cache.CachedGraph, dataModel *model.DataModel, source Source, opts ...Option) error {
	cfg := loadConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx = trace.EnsureRequestID(ctx)
	op := trace.Begin(ctx, cfg.logger, "dictgraph.ingest.load")
	defer op.End(nil)

	for _, label := range dataModel.Labels() {
		if err := loadNodesFromSource(ctx, graph, source, label); err != nil {
			op.End(err)
			return err
		}
	}

	for _, label := range dataModel.Labels() {
		nt, _ := dataModel.Get(label)
		for _, link := range nt.Links {
			if err := loadEdges(ctx, graph, source, link.SrcLabel, link.Label, link.DstLabel); err != nil {
				op.End(err)
				return err
			}
		}
	}

	op.End(nil, slog.Int("node_count", graph.NodeCount()))
	return nil
}

func loadNodesFromSource(ctx context.Context, graph *cache.CachedGraph, source Source, label string) error {
	table := tablename.Node(label)
	rows, err := source.NodeRows(ctx, table)
	if err != nil {
		return errs.Wrap(errs.SourceError, "ingest.Load", err).WithID(table)
	}

	nodes := make([]cache.Node, len(rows))
	g, _ := errgroup.WithContext(ctx)
	for i, row := range rows {
		g.Go(func() error {
			n, err := decodeNode(label, row)
			if err != nil {
				return err
			}
			nodes[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, n := range nodes {
		graph.AddNode(ctx, n)
	}
	return nil
}

func decodeNode(label string, row NodeRow) (cache.Node, error) {
	props, err := decodeJSONObject(row.Props)
	if err != nil {
		return cache.Node{}, errs.Wrap(errs.SourceError, "ingest.decodeNode", err).WithID(row.NodeID)
	}
	sysan, err := decodeJSONObject(row.Sysan)
	if err != nil {
		return cache.Node{}, errs.Wrap(errs.SourceError, "ingest.decodeNode", err).WithID(row.NodeID)
	}
	return cache.Node{
		ID:    row.NodeID,
		Label: label,
		Props: props,
		Sysan: sysan,
		ACL:   row.ACL,
	}, nil
}

// decodeJSONObject preprocesses raw with jsonc (stripping comments and
// trailing commas that a hand-edited _props/_sysan blob may carry) and
// decodes it as a JSON object into a Doc. An empty string decodes to an
// empty Doc rather than an error, since _props/_sysan are sometimes
// omitted entirely by the source.
func decodeJSONObject(raw string) (docval.Doc, error) {
	if raw == "" {
		return docval.New(), nil
	}
	var m map[string]any
	if err := json.Unmarshal(jsonc.ToJSON([]byte(raw)), &m); err != nil {
		return docval.Doc{}, err
	}
	d, ok := docval.FromAny(m).Doc()
	if !ok {
		return docval.Doc{}, errs.New(errs.SourceError, "ingest.decodeJSONObject", "expected a JSON object")
	}
	return d, nil
}

func loadEdges(ctx context.Context, graph *cache.CachedGraph, source Source, srcLabel, edgeLabel, dstLabel string) error {
	table := tablename.Edge(srcLabel, edgeLabel, dstLabel)
	rows, err := source.EdgeRows(ctx, table)
	if err != nil {
		return errs.Wrap(errs.SourceError, "ingest.Load", err).WithID(table)
	}

	for _, row := range rows {
		e := cache.Edge{Label: edgeLabel, SrcID: row.SrcID, DstID: row.DstID}
		if err := graph.AddEdge(ctx, e); err != nil {
			return errs.Wrap(errs.ReferentialError, "ingest.Load", err).WithID(table)
		}
	}
	return nil
}
