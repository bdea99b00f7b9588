package domain

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lex00/statdump/field"
)

// CommandName is the binary name used in example invocations.
const CommandName = "statdump"

const banner = "**********************"

func section(sb *strings.Builder, title string) {
	fmt.Fprintf(sb, "%s %s %s\n\n", banner, title, banner)
}

// buildLongAbout renders the help text from the live catalogs, group
// expansions and default list.
func (d *Domain[F, A]) buildLongAbout() string {
	var sb strings.Builder

	sb.WriteString(d.def.About)
	sb.WriteString("\n\n")

	section(&sb, "Available fields")
	names := append(d.CommonNames(), d.FieldNames()...)
	sb.WriteString(strings.Join(names, ", "))
	sb.WriteString("\n\n")

	section(&sb, "Aggregated fields")
	for _, a := range d.def.Groups.All() {
		fmt.Fprintf(&sb, "* %s: includes [%s].\n\n", a, field.Join(a.Expand(false)))
	}
	fmt.Fprintf(&sb, "* --detail: %s\n\n", d.detailNote())
	fmt.Fprintf(&sb, "* --default: includes [%s].\n\n", field.Join(d.def.Defaults))
	sb.WriteString("* --everything: includes everything (equivalent to --default --detail).\n\n")

	if len(d.def.Examples) > 0 {
		section(&sb, "Example Commands")
		for _, ex := range d.def.Examples {
			if ex.Description != "" {
				sb.WriteString(ex.Description)
				sb.WriteString("\n\n")
			}
			fmt.Fprintf(&sb, "$ %s dump %s %s\n\n", CommandName, d.def.Name, ex.Args)
		}
	}

	return sb.String()
}

// detailNote describes what --detail changes, derived by comparing the
// curated and full expansion of every group.
func (d *Domain[F, A]) detailNote() string {
	changes := false
	for _, a := range d.def.Groups.All() {
		if !slices.Equal(a.Expand(false), a.Expand(true)) {
			changes = true
			break
		}
	}
	if !changes {
		return "no effect."
	}

	note := "includes [<agg_field>.*] for each given aggregated field"
	var excluded []string
	for _, a := range d.def.Groups.All() {
		if ex := d.def.Exclusions[a]; len(ex) > 0 {
			excluded = append(excluded, fmt.Sprintf("%s omits %s", a, field.Join(ex)))
		}
	}
	if len(excluded) > 0 {
		note += " (" + strings.Join(excluded, "; ") + ")"
	}
	return note + "."
}
