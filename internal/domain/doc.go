// Package domain contains shared service-plane types used across entity
// sub-packages. Entity-specific types live in sub-packages (domain/task).
// This root package holds the sentinel errors and validation types that
// adapters and services share; the algebraic building blocks those
// sub-packages are made of live in the top-level core packages.
package domain
