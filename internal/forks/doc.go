// Package forks holds the fork-table domain: the repository record read from
// the GitHub API, the ordered column model shared by the fork table and the
// origin panel, the per-cell display pass, and the table state (sorting,
// filtering and paging) that the terminal views render.
//
// Nothing in this package performs I/O. The API client converts responses
// into [Repository] values at the boundary, and the views consume [Row] and
// [Cell] values, so every rule here is testable without a terminal or a
// network.
package forks
