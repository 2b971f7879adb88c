// Package cpumark provides a CLI for looking up and comparing PassMark CPU
// benchmark results. It scrapes the public cpubenchmark.net catalog, keeps
// it in short-lived in-memory caches, and resolves free-text CPU names
// against it with fuzzy matching.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, lru/, levenshtein/).
package cpumark
