// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Normaliser: Extracts narrative text from one input format
//   - NormaliserRegistry: Selects the appropriate normaliser for a file
//
// # Optional Interfaces
//
//   - ChartStore: Persists emitted datasets. The pipeline runs without
//     it; only the charts subcommands and --save require it.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
