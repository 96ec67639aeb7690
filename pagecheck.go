// Package pagecheck extracts the written content of a static web page,
// splits it into sentence-sized check phrases and produces a report of
// phrases a human should verify against online plagiarism tools.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., regexp/, goquery/, bluemonday/).
package pagecheck
