// Package common contains shared constants and sentinel errors used across
// TableKeeper client components.
package common

// AuthHeaderName is the HTTP header carrying the bearer token on outbound
// requests.
const AuthHeaderName = "Authorization"

// AuthScheme is the authorization scheme expected by the backend.
const AuthScheme = "Bearer"

// RequestIDHeaderName carries a client-generated id for log correlation.
const RequestIDHeaderName = "X-Request-Id"

// EnvelopeCodeOK is the envelope code signaling success. The backend reports
// it in the response body regardless of the transport status.
const EnvelopeCodeOK = 200

// SessionStorageKey is the fixed key under which the session is persisted.
// The on-disk file is named "<key>.json".
const SessionStorageKey = "auth-storage"

// SessionStorageVersion tags the persisted session schema.
const SessionStorageVersion = 1
