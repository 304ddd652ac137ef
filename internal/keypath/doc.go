// Package keypath defines the canonical addressing scheme for configuration
// values inside sweep and run documents. A parameter in a sweep document
// names the run-config value it overrides by path, e.g. `optim.kwargs.lr`.
// Sweep documents written for wandb-style orchestrators use a
// double-underscore spelling of the same path (`optim__kwargs__lr`); both
// spellings parse into the same Path.
package keypath
