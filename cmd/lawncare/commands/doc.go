// Package commands defines the lawncare CLI.
//
// Commands
//
//   - quote   Price a property from its square footage
//   - rates   Print the active rate table, optionally as a schedule file
//
// Both commands read the standard rate table unless --rates points at a YAML
// rate schedule.
package commands
