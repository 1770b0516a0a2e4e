package capscan

import "go/types"

// Capability is a discovered interface treated as a capability set: a named
// collection of operations a type may adopt.
type Capability struct {
	Name       string
	PkgPath    string
	PkgName    string
	Methods    []MethodSig
	TypeObj    *types.Interface
	SourceFile string
}

// Adopter is a discovered named non-interface type.
type Adopter struct {
	Name       string
	PkgPath    string
	PkgName    string
	IsStruct   bool
	TypeObj    *types.Named
	SourceFile string
}

// MethodSig captures a method name and its signature string.
type MethodSig struct {
	Name      string
	Signature string
}

// AdoptedMethod records how a single capability operation is satisfied.
type AdoptedMethod struct {
	Name     string
	Promoted bool   // provided through an embedded field, i.e. a default
	Origin   string // type that actually declares the method, e.g. "pets.DefaultRecaller"
}

// Adoption records that an adopter satisfies a capability.
type Adoption struct {
	Adopter    *Adopter
	Capability *Capability
	ViaPointer bool // true if only *T (not T) satisfies the capability
	Methods    []AdoptedMethod
}

// AllDefault reports whether every operation comes from an embedded default.
func (a *Adoption) AllDefault() bool {
	for _, m := range a.Methods {
		if !m.Promoted {
			return false
		}
	}
	return len(a.Methods) > 0
}

// AllOverride reports whether the adopter declares every operation itself.
func (a *Adoption) AllOverride() bool {
	for _, m := range a.Methods {
		if m.Promoted {
			return false
		}
	}
	return len(a.Methods) > 0
}

// Result holds the complete scan output.
type Result struct {
	Capabilities []Capability
	Adopters     []Adopter
	Adoptions    []Adoption
}

// Options controls scan behavior.
type Options struct {
	Filter            string // package path prefix filter
	IncludeUnexported bool
}
