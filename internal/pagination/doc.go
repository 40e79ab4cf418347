// Package pagination computes numbered page windows and owns paginator state.
//
// This package contains the pieces a paginated view needs, independent of how it is drawn:
//   - ComputeWindow: the bounded sequence of page indicators shown instead of every page
//   - Controller: current page and page size, clamped navigation and page-change events
//   - Meta: serializable metadata describing a page of results
//
// Rendering lives in the tui package; the host application owns the data slice and re-slices
// it when it receives a PageChangeEvent.
package pagination
