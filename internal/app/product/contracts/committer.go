package contracts

import (
	"context"

	commitplan "github.com/murkotick/product-lookup-service/internal/pkg/committer"
)

// Committer applies a collection of mutations atomically. The seed path is
// the only writer; keeping the interface here lets tooling swap the Spanner
// implementation without touching callers.
type Committer interface {
	Apply(ctx context.Context, plan *commitplan.Plan) error
}
