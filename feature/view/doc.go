// Package view serves the reconciled dashboard view over HTTP.
//
// All endpoints read the view currently published by the sync loop. A view is
// never mutated once published, so handlers may serialize it without locking.
// Until the first view has been published the endpoints answer 503.
//
// # HTTP Endpoints
//
//   - GET /view : The whole view (session, resources, buttons, clusters).
//   - GET /view/session : The session of the current server run.
//   - GET /view/resources : Resources in display order (supports ?runtime= and ?update=).
//   - GET /view/resources/:name : A single resource.
//   - GET /view/buttons : Buttons in display order (supports ?component=).
//   - GET /view/clusters : Clusters in display order.
//   - GET /view/logs : Log lines (supports ?span=a,b, ?manifest= and ?tail=).
//   - GET /view/alerts/:span : WARN/ERROR anchors of a span.
//   - GET /view/stats : Sync loop counters and resource status totals.
package view
