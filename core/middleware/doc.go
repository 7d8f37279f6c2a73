// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - rayid: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and the X-Ray-ID response header for tracing.
//   - requestlog: Logs every request through zap, tagged with its RayID.
//   - auth: Implements API key validation (X-API-Key) to protect endpoints.
//
// Register them in that order: rayid first so every log line carries the id.
package middleware
