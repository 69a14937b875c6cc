// Package static implements the static-file serving feature.
//
// It maps request paths onto the served directory with the usual rules:
//
//   - a regular file is streamed whole, with a Content-Type inferred from its
//     extension and a Last-Modified header;
//   - a directory requested without a trailing slash is redirected (301) to
//     the slash form so relative links inside its index resolve;
//   - a directory is answered with its index file, or with a listing when
//     browsing is enabled, or 403 otherwise;
//   - anything else falls through to the application's 404.
//
// Only GET and HEAD are served. The directory is never written to.
//
// # Components
//
//   - Handler: the redirect step plus fiber's filesystem middleware over http.Dir.
//   - Feature: registers the handler with core/loader.
package static
