// Package diagram renders a scan result as a Mermaid class diagram:
// capability blocks, adopter blocks, and adoption edges labeled when the
// capability is satisfied entirely by embedded defaults.
package diagram

import (
	"fmt"
	"sort"
	"strings"

	"github.com/damienestewart/gocaps/internal/capscan"
)

// Options controls Mermaid diagram generation.
type Options struct {
	MaxMethodsPerBox int  // default 5, 0 means unlimited
	IncludeInit      bool // include %%{init:}%% directive (for standalone .mmd files)
}

// DefaultOptions returns sensible defaults for diagram generation.
func DefaultOptions() Options {
	return Options{MaxMethodsPerBox: 5}
}

// Generate produces a Mermaid classDiagram string from a scan result.
func Generate(result *capscan.Result, opts Options) string {
	var b strings.Builder

	// Sort capabilities deterministically by (pkgName, name).
	caps := make([]capscan.Capability, len(result.Capabilities))
	copy(caps, result.Capabilities)
	sort.Slice(caps, func(i, j int) bool {
		if caps[i].PkgName != caps[j].PkgName {
			return caps[i].PkgName < caps[j].PkgName
		}
		return caps[i].Name < caps[j].Name
	})

	// Sort adopters deterministically by (pkgName, name).
	adopters := make([]capscan.Adopter, len(result.Adopters))
	copy(adopters, result.Adopters)
	sort.Slice(adopters, func(i, j int) bool {
		if adopters[i].PkgName != adopters[j].PkgName {
			return adopters[i].PkgName < adopters[j].PkgName
		}
		return adopters[i].Name < adopters[j].Name
	})

	// Sort adoptions deterministically by (adopter, capability).
	ads := make([]capscan.Adoption, len(result.Adoptions))
	copy(ads, result.Adoptions)
	sort.Slice(ads, func(i, j int) bool {
		aKeyI := ads[i].Adopter.PkgName + "_" + ads[i].Adopter.Name
		aKeyJ := ads[j].Adopter.PkgName + "_" + ads[j].Adopter.Name
		if aKeyI != aKeyJ {
			return aKeyI < aKeyJ
		}
		cKeyI := ads[i].Capability.PkgName + "_" + ads[i].Capability.Name
		cKeyJ := ads[j].Capability.PkgName + "_" + ads[j].Capability.Name
		return cKeyI < cKeyJ
	})

	// Header + style definitions.
	if opts.IncludeInit {
		b.WriteString("%%{init: {'theme': 'base', 'themeVariables': {'primaryColor': '#ffffff', 'primaryBorderColor': '#cccccc', 'primaryTextColor': '#000000', 'lineColor': '#555555'}}%%\n")
	}
	b.WriteString("classDiagram")
	if len(caps) > 0 || len(adopters) > 0 {
		b.WriteString("\n")
		b.WriteString("    direction LR\n")
		b.WriteString("    classDef capabilityStyle fill:#2374ab,stroke:#1a5a8a,color:#fff,stroke-width:2px,font-weight:bold\n")
		b.WriteString("    classDef adopterStyle fill:#4a9c6d,stroke:#357a50,color:#fff,stroke-width:2px")
	}

	// Capability blocks.
	for _, c := range caps {
		b.WriteString("\n")
		writeCapabilityBlock(&b, c, opts)
	}

	// Adopter blocks (separated by blank line from capabilities if both exist).
	if len(caps) > 0 && len(adopters) > 0 {
		b.WriteString("\n")
	}
	for _, a := range adopters {
		b.WriteString("\n")
		writeAdopterBlock(&b, a)
	}

	// Adoption edges (separated by blank line from adopters if both exist).
	if (len(caps) > 0 || len(adopters) > 0) && len(ads) > 0 {
		b.WriteString("\n")
	}
	for i := range ads {
		b.WriteString("\n")
		writeAdoption(&b, &ads[i])
	}

	// Style assignments.
	if len(caps) > 0 || len(adopters) > 0 {
		b.WriteString("\n")
		for _, c := range caps {
			id := NodeID(c.PkgName, c.Name)
			b.WriteString(fmt.Sprintf("\n    cssClass \"%s\" capabilityStyle", id))
		}
		for _, a := range adopters {
			id := NodeID(a.PkgName, a.Name)
			b.WriteString(fmt.Sprintf("\n    cssClass \"%s\" adopterStyle", id))
		}
	}

	return b.String()
}

// SanitizeSignature removes characters in method signatures that break Mermaid syntax.
// Mermaid treats {}, <>, and ~ as special in class diagram labels.
func SanitizeSignature(sig string) string {
	// Drop channel direction indicators — Mermaid can't handle <.
	sig = strings.ReplaceAll(sig, "<-chan", "chan")
	// Replace interface{} with "any" BEFORE stripping braces — bare
	// "interface" is a reserved keyword in browser Mermaid.js.
	sig = strings.ReplaceAll(sig, "interface{}", "any")
	// Strip remaining empty braces (struct{}, map[K]struct{}).
	sig = strings.ReplaceAll(sig, "{}", "")
	return sig
}

// sanitizeID replaces /, ., - with _ in node identifiers.
func sanitizeID(s string) string {
	r := strings.NewReplacer("/", "_", ".", "_", "-", "_")
	return r.Replace(s)
}

// NodeID builds a sanitized node ID from pkgName and capability/adopter name.
func NodeID(pkgName, name string) string {
	return sanitizeID(pkgName + "_" + name)
}

func writeCapabilityBlock(b *strings.Builder, c capscan.Capability, opts Options) {
	id := NodeID(c.PkgName, c.Name)
	b.WriteString(fmt.Sprintf("    class %s {\n", id))
	b.WriteString("        <<capability>>\n")
	if c.SourceFile != "" {
		b.WriteString("        %% file: " + c.SourceFile + "\n")
	}
	writeMethodLines(b, c.Methods, opts)
	b.WriteString("    }")
}

// writeAdopterBlock writes a class block for an adopter. Only the name is
// shown — its operations are already listed in the capability blocks.
func writeAdopterBlock(b *strings.Builder, a capscan.Adopter) {
	id := NodeID(a.PkgName, a.Name)
	b.WriteString(fmt.Sprintf("    class %s {\n", id))
	if a.SourceFile != "" {
		b.WriteString("        %% file: " + a.SourceFile + "\n")
	}
	b.WriteString("    }")
}

func writeMethodLines(b *strings.Builder, methods []capscan.MethodSig, opts Options) {
	limit := len(methods)
	truncated := false
	if opts.MaxMethodsPerBox > 0 && limit > opts.MaxMethodsPerBox {
		limit = opts.MaxMethodsPerBox
		truncated = true
	}

	for i := 0; i < limit; i++ {
		b.WriteString(fmt.Sprintf("        +%s\n", SanitizeSignature(methods[i].Signature)))
	}
	if truncated {
		b.WriteString("        ...\n")
	}
}

// writeAdoption writes a single adoption edge, labeled "default" when every
// operation is promoted from an embedded helper.
func writeAdoption(b *strings.Builder, ad *capscan.Adoption) {
	adopterID := NodeID(ad.Adopter.PkgName, ad.Adopter.Name)
	capID := NodeID(ad.Capability.PkgName, ad.Capability.Name)
	line := fmt.Sprintf("    %s --|> %s", adopterID, capID)
	if ad.AllDefault() {
		line += " : default"
	}
	b.WriteString(line)
}
