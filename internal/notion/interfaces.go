package notion

import (
	"context"

	"github.com/jomei/notionapi"
)

// RecordSource yields every record of the transactions database.
// This interface enables mocking of the upstream in handler tests.
type RecordSource interface {
	// FetchAllRecords follows pagination until the database is exhausted.
	FetchAllRecords(ctx context.Context) ([]Record, error)
}

// QueryService runs a single database query page.
type QueryService interface {
	QueryDatabase(ctx context.Context, req *notionapi.DatabaseQueryRequest) (*QueryResponse, error)
}
