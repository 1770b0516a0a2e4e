// Package capscan loads a Go module and maps which named types adopt which
// capability interfaces, distinguishing operations an adopter declares
// itself (overrides) from ones promoted out of an embedded default helper.
package capscan

import (
	"context"
	"fmt"
	"go/token"
	"go/types"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/types/typeutil"
)

// Scan loads the module rooted at dir and finds all capability adoptions.
func Scan(ctx context.Context, dir string, opts Options, logger *slog.Logger) (*Result, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedSyntax |
			packages.NeedTypesInfo | packages.NeedImports,
		Dir:     dir,
		Context: ctx,
	}

	pkgs, err := packages.Load(cfg, "./...")
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}

	logger.Info("packages loaded", "packages_count", len(pkgs))

	// Log packages with errors but continue
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			logger.Warn("package load error", "package", pkg.PkgPath, "error", e.Msg)
		}
	}

	var caps []Capability
	var adopters []Adopter
	seenCaps := make(map[string]bool) // pkgPath.Name dedup

	for _, pkg := range pkgs {
		if pkg.Types == nil {
			continue
		}

		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			tn, ok := scope.Lookup(name).(*types.TypeName)
			if !ok {
				continue
			}
			named, ok := tn.Type().(*types.Named)
			if !ok {
				continue
			}

			if iface, ok := named.Underlying().(*types.Interface); ok {
				// Empty interfaces constrain nothing — not a capability.
				if iface.NumMethods() == 0 {
					continue
				}
				key := pkg.PkgPath + "." + tn.Name()
				if seenCaps[key] {
					continue
				}
				seenCaps[key] = true
				caps = append(caps, Capability{
					Name:       tn.Name(),
					PkgPath:    pkg.PkgPath,
					PkgName:    pkg.Name,
					Methods:    capabilityMethods(iface),
					TypeObj:    iface,
					SourceFile: resolveSourceFile(pkg.Fset, tn.Pos(), dir),
				})
				logger.Debug("found capability", "name", tn.Name(), "package", pkg.PkgPath, "operations", iface.NumMethods())
				continue
			}

			adopters = append(adopters, Adopter{
				Name:       tn.Name(),
				PkgPath:    pkg.PkgPath,
				PkgName:    pkg.Name,
				IsStruct:   isStruct(named),
				TypeObj:    named,
				SourceFile: resolveSourceFile(pkg.Fset, tn.Pos(), dir),
			})
			logger.Debug("found type", "name", tn.Name(), "package", pkg.PkgPath)
		}
	}

	logger.Info("types collected", "capabilities", len(caps), "adopters", len(adopters))

	// Match adopters against capabilities.
	var msets typeutil.MethodSetCache
	var adoptions []Adoption

	for i := range adopters {
		a := &adopters[i]
		for j := range caps {
			c := &caps[j]

			valType := a.TypeObj
			ptrType := types.NewPointer(valType)

			if types.Implements(valType, c.TypeObj) || matchesMethodSet(msets.MethodSet(valType), c.TypeObj) {
				adoptions = append(adoptions, Adoption{
					Adopter:    a,
					Capability: c,
					ViaPointer: false,
					Methods:    adoptedMethods(valType, c.TypeObj),
				})
				logger.Debug("adoption found", "type", a.Name, "capability", c.Name, "via_pointer", false)
			} else if types.Implements(ptrType, c.TypeObj) || matchesMethodSet(msets.MethodSet(ptrType), c.TypeObj) {
				adoptions = append(adoptions, Adoption{
					Adopter:    a,
					Capability: c,
					ViaPointer: true,
					Methods:    adoptedMethods(ptrType, c.TypeObj),
				})
				logger.Debug("adoption found", "type", a.Name, "capability", c.Name, "via_pointer", true)
			}
		}
	}

	logger.Info("scan complete", "adoptions", len(adoptions))

	return &Result{
		Capabilities: caps,
		Adopters:     adopters,
		Adoptions:    adoptions,
	}, nil
}

// adoptedMethods classifies each capability operation as promoted (reached
// through an embedded field, so an index path deeper than one step) or
// declared on the adopter itself.
func adoptedMethods(recv types.Type, iface *types.Interface) []AdoptedMethod {
	out := make([]AdoptedMethod, 0, iface.NumMethods())
	for i := 0; i < iface.NumMethods(); i++ {
		m := iface.Method(i)
		am := AdoptedMethod{Name: m.Name()}
		obj, index, _ := types.LookupFieldOrMethod(recv, true, m.Pkg(), m.Name())
		if fn, ok := obj.(*types.Func); ok {
			am.Origin = receiverName(fn)
			am.Promoted = len(index) > 1
		}
		out = append(out, am)
	}
	return out
}

// receiverName returns the declaring type of fn as "pkgName.Type".
func receiverName(fn *types.Func) string {
	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return ""
	}
	t := sig.Recv().Type()
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}
	return shortType(t)
}

func capabilityMethods(iface *types.Interface) []MethodSig {
	methods := make([]MethodSig, iface.NumMethods())
	for i := 0; i < iface.NumMethods(); i++ {
		m := iface.Method(i)
		methods[i] = MethodSig{
			Name:      m.Name(),
			Signature: formatSignature(m),
		}
	}
	return methods
}

func formatSignature(fn *types.Func) string {
	sig := fn.Type().(*types.Signature)
	var b strings.Builder
	b.WriteString(fn.Name())
	b.WriteString("(")
	params := sig.Params()
	for i := 0; i < params.Len(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(shortType(params.At(i).Type()))
	}
	b.WriteString(")")
	results := sig.Results()
	if results.Len() > 0 {
		b.WriteString(" ")
		if results.Len() == 1 {
			b.WriteString(shortType(results.At(0).Type()))
		} else {
			b.WriteString("(")
			for i := 0; i < results.Len(); i++ {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(shortType(results.At(i).Type()))
			}
			b.WriteString(")")
		}
	}
	return b.String()
}

func shortType(t types.Type) string {
	return types.TypeString(t, func(pkg *types.Package) string {
		return pkg.Name()
	})
}

func isStruct(named *types.Named) bool {
	_, ok := named.Underlying().(*types.Struct)
	return ok
}

func matchesMethodSet(mset *types.MethodSet, iface *types.Interface) bool {
	for i := 0; i < iface.NumMethods(); i++ {
		m := iface.Method(i)
		if mset.Lookup(m.Pkg(), m.Name()) == nil {
			return false
		}
	}
	return true
}

// resolveSourceFile resolves a token position to a file path relative to moduleRoot.
func resolveSourceFile(fset *token.FileSet, pos token.Pos, moduleRoot string) string {
	if fset == nil || !pos.IsValid() {
		return ""
	}
	position := fset.Position(pos)
	if !position.IsValid() || position.Filename == "" {
		return ""
	}
	rel, err := filepath.Rel(moduleRoot, position.Filename)
	if err != nil {
		return position.Filename
	}
	return rel
}
