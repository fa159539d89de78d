// Package clients provides the three role-specific facades onto the
// food-and-supply coordination service: IndividualClient for shielding
// individuals, CateringCompanyClient for catering companies and
// SupermarketClient for supermarkets.
//
// Every public operation validates its input first, performs at most one
// exchange with the coordination service through the Transport port, and
// mutates the client's local mirror only when the reply is recognized as a
// success. Failures never leave partial state behind; the caller simply
// re-invokes the operation.
//
// Each client instance represents a single actor and keeps its own state --
// there are no process-wide singletons. State lives only for the session;
// nothing is persisted or retried.
package clients
