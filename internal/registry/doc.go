// Package registry holds the pluggable catalog of distribution kinds a
// sweep document may reference. Each kind lives in its own package under
// modules/ and registers itself through the Module interface; the registry
// owns nothing but the lookup table and a parity check over what was
// registered.
package registry
