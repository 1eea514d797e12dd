// Package ports holds the interfaces where the layers meet. HTTP handlers
// call the service ports, which the application layer implements; the
// application layer calls the repository and sink ports, which the outbound
// adapters implement. Mockery generates test doubles for every port into
// the top-level mocks package.
package ports
