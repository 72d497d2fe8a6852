// Package kernel contains shared value objects used across the domain model.
// It currently provides the UUID identifier type that every aggregate uses.
// Value objects here are immutable, validated on construction, and carry no
// dependencies on other domain packages.
package kernel
