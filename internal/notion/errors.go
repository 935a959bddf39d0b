package notion

import "fmt"

// UpstreamError is returned when the Notion API answers with a non-2xx status.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Notion API error %d: %s", e.Status, e.Body)
}
