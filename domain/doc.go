// Package domain defines the statistics domains of the dump command and
// builds its command line.
//
// Each domain pairs a model field catalog with its own aggregate groups, a
// default field list and generated help text:
//
//   - Domain and Definition hold the static tables of one domain
//   - Info is the type-erased view used across domains (lint, registry)
//   - Run builds "dump <domain>" subcommands that resolve flags into a Request
//   - Dumper is the host hook that receives every resolved Plan
//
// Field tokens are resolved with the precedence common field, group, leaf
// field, and groups expand in place without deduplication.
package domain
