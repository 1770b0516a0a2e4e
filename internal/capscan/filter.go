package capscan

import (
	"strings"
	"unicode"
)

// Filter applies filtering options to a scan result and prunes capabilities
// and adopters that no longer participate in any adoption.
func Filter(result *Result, opts Options) *Result {
	filtered := &Result{}

	capSet := make(map[string]bool)
	adopterSet := make(map[string]bool)

	for _, ad := range result.Adoptions {
		c := ad.Capability
		a := ad.Adopter

		if !opts.IncludeUnexported {
			if isUnexported(c.Name) || isUnexported(a.Name) {
				continue
			}
		}

		if opts.Filter != "" {
			capMatch := strings.HasPrefix(c.PkgPath, opts.Filter)
			adopterMatch := strings.HasPrefix(a.PkgPath, opts.Filter)
			if !capMatch && !adopterMatch {
				continue
			}
		}

		filtered.Adoptions = append(filtered.Adoptions, ad)
		capSet[capKey(c)] = true
		adopterSet[adopterKey(a)] = true
	}

	for i := range result.Capabilities {
		c := &result.Capabilities[i]
		if capSet[capKey(c)] {
			filtered.Capabilities = append(filtered.Capabilities, *c)
		}
	}

	for i := range result.Adopters {
		a := &result.Adopters[i]
		if adopterSet[adopterKey(a)] {
			filtered.Adopters = append(filtered.Adopters, *a)
		}
	}

	return filtered
}

func isUnexported(name string) bool {
	if name == "" {
		return true
	}
	return unicode.IsLower(rune(name[0]))
}

func capKey(c *Capability) string {
	return c.PkgPath + "." + c.Name
}

func adopterKey(a *Adopter) string {
	return a.PkgPath + "." + a.Name
}
