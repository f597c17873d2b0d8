package ifconfig

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/colemancda/swift-syntax/diag"
	"github.com/colemancda/swift-syntax/syntax"
)

// FoldResult pairs one folded tree with its pass diagnostics.
type FoldResult struct {
	Tree syntax.Node
	Bag  *diag.Bag
}

// FoldAll folds several trees concurrently under one configuration. Each tree
// gets its own pass and its own diagnostics bag, so no coordination is needed
// beyond the errgroup itself. jobs <= 0 means GOMAXPROCS.
func FoldAll(ctx context.Context, trees []syntax.Node, cfg BuildConfiguration, jobs int) ([]FoldResult, error) {
	if len(trees) == 0 {
		return nil, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Indexes are unique per goroutine, no mutex needed.
	results := make([]FoldResult, len(trees))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(trees)))

	for i, tree := range trees {
		i, tree := i, tree
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			folded, bag := Fold(tree, cfg)
			results[i] = FoldResult{Tree: folded, Bag: bag}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
