// Package model lists the leaf statistic fields of every dump domain.
//
// Each domain has one integer type whose values are declared in the same
// order as its catalog. Nested sub-model fields carry a dotted prefix, for
// example "cpu.usage_pct", so a whole sub-model can be enumerated with
// Catalog.Under.
package model
