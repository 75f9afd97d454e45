package analysis

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/limenime/limeass/ast"
	"github.com/limenime/limeass/override"
)

// AnalyzeEvents computes DialogueInfo for every event record in script's
// [Events] section. concurrency <= 1 analyzes sequentially; concurrency > 1
// bounds a parallel errgroup to that many workers (SPEC_FULL.md "parallel
// per-event analysis").
func AnalyzeEvents(ctx context.Context, script *ast.Script, opts override.Options, concurrency int) ([]DialogueInfo, error) {
	var events *ast.Events
	for _, sec := range script.Sections {
		if sec.Kind.Kind == ast.SectionEvents && sec.Events != nil {
			events = sec.Events
		}
	}
	if events == nil {
		return nil, nil
	}

	out := make([]DialogueInfo, len(events.Records))

	if concurrency <= 1 {
		for i, ev := range events.Records {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			out[i] = AnalyzeEvent(script, ev, opts)
		}
		return out, nil
	}

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(concurrency)

	for i, ev := range events.Records {
		i, ev := i, ev
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = AnalyzeEvent(script, ev, opts)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
