// Package http exposes a namepool service over HTTP.
//
//	GET|HEAD /api/generate?count=N   issue N unique names
//	GET      /api/sample?count=N     random names, not recorded
//	GET      /api/stats              capacity and readiness
//	GET      /healthz                liveness
//	GET      /metrics                prometheus exposition
//
// Every response carries Cache-Control: no-store. Only GET and HEAD are served.
package http
