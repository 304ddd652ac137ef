// Package hclcfg decodes HCL sweep documents into the format-agnostic
// schema model. HCL is an alternate authoring syntax for sweeps only; run
// documents stay YAML because that is what the external trainer reads.
package hclcfg
