// Package client contains the client-side building blocks for talking to the
// NVP Welfare Foundation backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     authentication, donations, certificates, receipts, statistics and
//     member administration.
//  2. A concrete REST/JSON implementation (see HTTPClient) that attaches the
//     bearer credential, tags every request with an X-Request-ID and maps HTTP
//     status codes to sentinel errors.
//  3. Local state bootstrap (OpenState, RunMigrations) wiring an SQLite
//     database and applying embedded goose migrations.
//
// # Error Handling
//
// Backend refusals are returned as *APIError, which keeps the backend's
// "detail" payload and unwraps to one of the sentinel errors so callers can
// match with errors.Is: ErrUnauthorized, ErrNotFound, ErrBadRequest,
// ErrUnavailable.
//
// All operations accept context.Context and honor cancellation.
package client
