// Package api provides the scaffolding for the catalog API suites.
//
// The suites talk to the catalog through the same services catalogctl uses.
// When CATALOG_BASE_URL is unset they run against an in-process stub
// catalog, so they pass offline; pointing CATALOG_BASE_URL at the hosted
// service turns them into live integration tests.
package api
