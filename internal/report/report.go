// Package report renders a scan result as a per-capability adopter roster.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/damienestewart/gocaps/internal/capscan"
)

// Write renders a deterministic text roster: each capability with its
// operation count, then its adopters sorted by package and name, tagged by
// how the capability is satisfied.
func Write(w io.Writer, result *capscan.Result) error {
	// Group adoptions by capability key.
	byCap := make(map[string][]capscan.Adoption)
	for _, ad := range result.Adoptions {
		key := ad.Capability.PkgPath + "." + ad.Capability.Name
		byCap[key] = append(byCap[key], ad)
	}

	caps := make([]capscan.Capability, len(result.Capabilities))
	copy(caps, result.Capabilities)
	sort.Slice(caps, func(i, j int) bool {
		if caps[i].PkgName != caps[j].PkgName {
			return caps[i].PkgName < caps[j].PkgName
		}
		return caps[i].Name < caps[j].Name
	})

	for i := range caps {
		c := &caps[i]
		noun := "operation"
		if len(c.Methods) != 1 {
			noun = "operations"
		}
		if _, err := fmt.Fprintf(w, "capability %s.%s (%d %s)\n", c.PkgName, c.Name, len(c.Methods), noun); err != nil {
			return err
		}

		ads := byCap[c.PkgPath+"."+c.Name]
		sort.Slice(ads, func(i, j int) bool {
			if ads[i].Adopter.PkgName != ads[j].Adopter.PkgName {
				return ads[i].Adopter.PkgName < ads[j].Adopter.PkgName
			}
			return ads[i].Adopter.Name < ads[j].Adopter.Name
		})
		for _, ad := range ads {
			if _, err := fmt.Fprintf(w, "  %s.%s (%s)%s\n",
				ad.Adopter.PkgName, ad.Adopter.Name, adoptionKind(&ad), pointerSuffix(&ad)); err != nil {
				return err
			}
		}
	}
	return nil
}

func adoptionKind(ad *capscan.Adoption) string {
	switch {
	case ad.AllDefault():
		return "default"
	case ad.AllOverride():
		return "override"
	default:
		return "mixed"
	}
}

func pointerSuffix(ad *capscan.Adoption) string {
	if ad.ViaPointer {
		return " via pointer"
	}
	return ""
}
