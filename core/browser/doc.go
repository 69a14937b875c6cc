// Package browser launches the user's default web browser after the server
// starts listening.
//
// The launch is a best-effort post-start hook: the Opener interface isolates
// the platform call so it can be disabled or mocked (see core/browser/mocks),
// and Launch swallows every failure after printing a fallback instruction.
//
// # Usage
//
//	browser.Launch(os.Stdout, browser.System(), "http://localhost:8000", log)
package browser
