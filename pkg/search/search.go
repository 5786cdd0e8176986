package search

import (
	"context"

	"github.com/iWorld-y/company_radar/pkg/model"
)

// Topic selects the query branch of a source. News-topic results carry a
// publication date when the source exposes one.
const (
	TopicGeneral = "general"
	TopicNews    = "news"
)

// Request is a provider-neutral search request.
type Request struct {
	Query      string
	Topic      string
	MaxResults int
}

// Source is one information source (paid API or scraped engine). Exactly one
// source is selected at construction time; see factory.NewSource.
type Source interface {
	Search(ctx context.Context, req *Request) (model.ResultSet, error)
	Name() string
}
