// Package schema holds the unified, format-agnostic model of the two
// document kinds this tool understands: the sweep specification and the
// training run configuration. Format-specific loaders (YAML, HCL) decode
// into their own structs and translate into this model; everything
// downstream (validation, space expansion, trial materialization) works
// against this package only.
package schema
