// Package middleware contains HTTP middleware for the Fiber application.
//
// Each component lives in its own subpackage and is registered globally by
// core/server, in this order:
//
//   - rayid: tags every request with a unique RayID, stored in the context
//     and echoed in the X-Ray-ID response header.
//   - cors: adds Access-Control-Allow-Origin: * to every response, including
//     redirects and errors.
//   - accesslog: writes one zap entry per request (method, path, status,
//     size, duration, ray_id).
package middleware
