package types

import (
	"context"

	"github.com/karnatisrinivas/devops-hunter/internal/domain"
)

type Result struct {
	Source   string
	Postings []domain.Posting
}

// Fetcher is one job source. Fetch never fails: transport, status and
// decode problems all degrade to an empty Result so one broken source
// cannot abort the batch.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context) Result
}

// Matcher decides whether a posting is in-domain.
type Matcher interface {
	Match(title, desc string) bool
}
