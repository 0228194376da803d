// Package shopinsight extracts a brand profile from an online storefront.
// It combines the store's structured product feed with heuristic scans of
// the home page and a handful of linked pages (about, FAQ, policies) and
// persists the result.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, gin/).
package shopinsight
