// Package config loads and validates sonograph settings from TOML.
//
// Default supplies the same values as spectro.NewEncoder and
// analyze.NewAnalyzer, so a missing file or an empty table changes nothing.
// Load overlays a file on the defaults and validates the result; commands
// then build their Encoder and Analyzer from it.
package config
