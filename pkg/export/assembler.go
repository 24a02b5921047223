package export

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// Assembler orchestrates the pipeline: it orders the identifiers, loads and
// encodes each file, and partitions the fragment stream into budget-bounded
// segments pushed to the caller's sink as they complete. Memory use is
// bounded by one segment plus one in-flight fragment, never by total export
// size. Each Run call owns its buffer and cursor state exclusively; create
// one Assembler per run.
type Assembler struct {
	loader *Loader
	opts   Options
	logger *zap.Logger
}

// NewAssembler creates an Assembler reading through the given store.
func NewAssembler(store Store, opts Options, logger *zap.Logger) *Assembler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assembler{
		loader: NewLoader(store, logger),
		opts:   opts,
		logger: logger,
	}
}

// Run executes the pipeline over the identifiers, calling emit once per
// completed segment, in order. An empty identifier set emits nothing and
// returns nil. Cancellation is checked between fragments only: segments
// already emitted remain valid, the in-progress buffer is discarded, and
// ctx.Err() is returned.
func (a *Assembler) Run(ctx context.Context, paths []string, emit func(Segment) error) error {
	ordered := CanonicalOrder(paths)
	total := len(ordered)
	if total == 0 {
		a.logger.Warn("No files to export")
		return nil
	}

	var buf strings.Builder
	bufCost := 0
	bufFiles := 0
	emitted := 0

	flush := func(last bool) error {
		seg := Segment{
			Text:  buf.String(),
			Index: emitted,
			Files: bufFiles,
			Cost:  bufCost,
			Last:  last,
		}
		emitted++
		buf.Reset()
		bufCost = 0
		bufFiles = 0
		a.logger.Debug("Emitting segment",
			zap.Int("index", seg.Index),
			zap.Int("files", seg.Files),
			zap.Int("cost", seg.Cost))
		return emit(seg)
	}

	// The tree rendering goes into the first segment only, computed once
	// and counted toward that segment's budget like any other content.
	// XML never carries it: the rendering is not an element.
	if a.opts.IncludeTree && a.opts.Format != FormatXML {
		tree := RenderTree(ordered)
		buf.WriteString(tree)
		bufCost = EstimateCost(tree)
	}

	next := a.recordSource(ctx, ordered)

	processed := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		rec, ok := next()
		if !ok {
			break
		}

		frag := EncodeFile(a.opts.Format, rec.Path, rec.Content)
		cost := EstimateCost(frag)

		// Flush before appending when the fragment would overflow a
		// non-empty buffer. A lone fragment over the budget still gets
		// its own over-budget segment: the ceiling is soft, atomicity
		// is not.
		if a.opts.Budget > 0 && buf.Len() > 0 && bufCost+cost > a.opts.Budget {
			if err := flush(false); err != nil {
				return err
			}
		}

		buf.WriteString(frag)
		bufCost += cost
		bufFiles++
		processed++

		if a.opts.Progress != nil {
			a.opts.Progress(processed, total)
		}
	}

	// A cancelled prefetch closes its channel early; re-check before the
	// final flush so a partial buffer is never emitted.
	if err := ctx.Err(); err != nil {
		return err
	}

	if buf.Len() > 0 {
		return flush(true)
	}
	return nil
}

// recordSource yields FileRecords in canonical order, either synchronously
// or through the bounded read-ahead window.
func (a *Assembler) recordSource(ctx context.Context, ordered []string) func() (FileRecord, bool) {
	if a.opts.Prefetch > 1 {
		ch := prefetchRecords(ctx, a.loader, ordered, a.opts.Prefetch)
		return func() (FileRecord, bool) {
			rec, ok := <-ch
			return rec, ok
		}
	}

	i := 0
	return func() (FileRecord, bool) {
		if i >= len(ordered) {
			return FileRecord{}, false
		}
		rec := a.loader.Load(ordered[i])
		i++
		return rec, true
	}
}
