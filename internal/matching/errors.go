package matching

import "fmt"

// NotFoundError reports a query for a document id absent from its corpus.
// This is distinct from a valid query that simply matches nothing.
type NotFoundError struct {
	Kind string // "job" or "resume"
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Kind, e.ID)
}

// InvalidArgumentError reports a malformed query parameter.
type InvalidArgumentError struct {
	Name    string
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Name, e.Message)
}

// EmptyCorpusError reports an operation that needs at least one document in
// the named corpus.
type EmptyCorpusError struct {
	Kind string
}

func (e *EmptyCorpusError) Error() string {
	return fmt.Sprintf("%s corpus is empty", e.Kind)
}
