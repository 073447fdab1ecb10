// Package shopinsight extracts brand insight from e-commerce storefronts.
// It combines a storefront's structured product listing with heuristic
// HTML scraping to assemble one consolidated record per store: catalog,
// hero picks, policies, FAQs, social handles, contacts, about text and
// important links.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, resty/).
package shopinsight
