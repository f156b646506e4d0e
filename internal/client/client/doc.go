// Package client contains the CLI's building blocks for talking to the
// filekeeper backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) covering
//     upload requests, commits, listing, deletion, download URLs and Ping.
//  2. A gRPC implementation (see GRPCClient) that manages a connection,
//     injects the access token via an interceptor and maps gRPC status codes
//     to sentinel errors.
//  3. Bootstrap helpers for the local upload journal (InitDatabase,
//     RunMigrations) over SQLite with embedded goose migrations.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrRejected, ErrNotFound.
package client
