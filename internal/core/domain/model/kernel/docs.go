// Package kernel contains shared value objects used across the domain model:
// UUID identifiers and the Day / TimeOfDay calendar types that deliveries are
// scheduled with. All types in this package are immutable and must be created
// through their constructor functions.
package kernel
