// Package config describes where transit data files live and how the map is
// drawn. Paths are given as a base directory plus per-file names relative to
// it; any subset of names may be overridden from a YAML or JSON file.
package config
