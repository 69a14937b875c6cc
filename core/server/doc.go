// Package server implements the local static server.
//
// A Server wraps one fiber app with the middleware chain
// (rayid → cors → accesslog → recover) and the static-file feature, and
// drives its lifecycle:
//
//	Stopped → Listening    on a successful bind
//	Listening → Stopped    when the context is cancelled
//
// Start binds synchronously, so a busy port or missing privilege fails fast
// with ErrBind and nothing is left running. Once bound, the banner is
// printed and the optional browser hook runs. Cancellation stops accepting
// connections, drains in-flight requests up to the shutdown timeout and
// releases the socket before the farewell message is printed.
//
// # Configuration
//
// Config is an immutable value: port (default 8000), host (all
// interfaces), served root, index file, browse flag, open_browser and the
// shutdown timeout. ResolveRoot turns an empty root into the directory one
// level above the executable.
package server
