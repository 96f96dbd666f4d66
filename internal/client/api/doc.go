// Package api implements the HTTP client for the TableKeeper backend.
//
// It owns three concerns:
//
//   - transport: one configured *http.Client with a fixed request timeout,
//     base path prefixing, bearer-token injection and request-id tagging;
//   - the response envelope: every backend response is {code, message, data}
//     with code == 200 signaling success regardless of transport status;
//   - the error taxonomy: timeouts, authentication rejection (which clears
//     the local session as a cross-cutting policy), server rejection and
//     connection-level unavailability.
//
// The typed operation methods (auth.go, user.go, rooms.go, characters.go) are
// pure mappings from arguments to a send call; they carry no business logic.
package api
