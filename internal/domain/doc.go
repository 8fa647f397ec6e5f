// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/packaging).
// This root package holds sentinel errors and the typed errors that the
// packaging workflow surfaces to inbound adapters.
package domain
