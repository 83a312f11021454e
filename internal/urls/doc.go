// Package urls centralizes the documentation links printed by peppy-cfg.
package urls
