// Package kernel holds the value objects shared by every aggregate of the marketplace:
// identifiers (UUID) and geographic points (Location).
//
// Both are immutable and validated on construction. Their zero values are invalid and
// report an error from Validate, which aggregates call before trusting an argument.
package kernel
