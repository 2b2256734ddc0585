// Package definer aggregates word definitions, origins and imagery scraped
// from several independently formatted dictionary sites into one record,
// cached with staleness-based refresh.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, gin/).
package definer
