package ports

import "context"

// Transport defines the wire contract between the role clients and the
// coordination server. Implementations are responsible for connectivity,
// timeouts and status handling; clients only see response bodies.
type Transport interface {
	// Get performs a read request against the given path (including query
	// string) and returns the raw response body.
	Get(ctx context.Context, path string) (string, error)

	// Post performs a write request against the given path with the given
	// body and returns the raw response body.
	Post(ctx context.Context, path string, body string) (string, error)
}
