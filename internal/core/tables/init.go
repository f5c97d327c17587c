// Package tables registers the enrolment, biometric and demographic
// category schemas with the core registry, and holds the state alias table.
// Import this package to ensure all categories are registered.
package tables

// This file exists to provide a single import point.
// Each category file uses init() to register its schema.
