// Package http implements the privileged process's HTTP surface.
//
// Clients deliver IPC messages with POST /api/ipc/{channel} and perform
// invoke-style requests with POST /api/ipc/{channel}/invoke. Both routes
// require a bearer token and a HashSHA256 body digest; responses are signed
// the same way. Tracing, access logging and panic recovery wrap every route.
package http
