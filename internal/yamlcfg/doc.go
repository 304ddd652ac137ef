// Package yamlcfg decodes YAML sweep and run documents into the
// format-agnostic schema model. It owns the YAML-to-cty value conversion;
// nothing outside this package (or its HCL sibling) sees raw YAML.
package yamlcfg
