// Package factpage extracts attribute/value tables from Sodir (formerly
// NPD) wellbore factpages. It fetches a single page, locates table bodies
// via a configurable selector path, extracts two-column rows with per-cell
// cleaning rules, and materializes them into an ordered two-column table.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, rod/).
package factpage
