// Package coursetab extracts course-schedule records from the HTML tables
// exported by a university registration system and reconciles them:
// teaching-assistant rows are folded into their parent course and
// duplicate rows are collapsed by sequence number.
//
// This package contains domain types, interfaces and the pure record
// transformations, following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, etree/, htmltomarkdown/).
package coursetab
