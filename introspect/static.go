package introspect

import (
	"fmt"
	"go/types"

	"golang.org/x/tools/go/packages"
)

// Load extracts signatures for the exported functions of a Go package
// by import path. The names filter, if non-empty, restricts which
// functions are included.
func Load(importPath string, names []string) ([]*Signature, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes,
	}

	pkgs, err := packages.Load(cfg, importPath)
	if err != nil {
		return nil, fmt.Errorf("introspect: loading %s: %w", importPath, err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("introspect: no packages found for %s", importPath)
	}
	if len(pkgs[0].Errors) > 0 {
		return nil, fmt.Errorf("introspect: package errors: %v", pkgs[0].Errors)
	}
	pkg := pkgs[0]
	if pkg.Types == nil {
		return nil, fmt.Errorf("introspect: type information not available for %s", importPath)
	}

	filter := map[string]bool{}
	for _, n := range names {
		filter[n] = true
	}

	var sigs []*Signature
	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		if len(filter) > 0 && !filter[name] {
			continue
		}
		obj := scope.Lookup(name)
		if !obj.Exported() {
			continue
		}
		fn, ok := obj.(*types.Func)
		if !ok {
			continue
		}
		sigs = append(sigs, fromTypesSig(fn.Name(), fn.Type().(*types.Signature)))
	}
	return sigs, nil
}

func fromTypesSig(name string, sig *types.Signature) *Signature {
	out := &Signature{Name: name, Variadic: sig.Variadic()}

	params := sig.Params()
	for i := 0; i < params.Len(); i++ {
		p := params.At(i)
		ts := p.Type().String()
		if out.Variadic && i == params.Len()-1 {
			if sl, ok := p.Type().(*types.Slice); ok {
				ts = "..." + sl.Elem().String()
			}
		}
		out.Params = append(out.Params, Param{Name: p.Name(), Type: ts})
	}

	results := sig.Results()
	for i := 0; i < results.Len(); i++ {
		r := results.At(i)
		out.Results = append(out.Results, Param{Name: r.Name(), Type: r.Type().String()})
	}
	if results.Len() > 0 && isErrorType(results.At(results.Len()-1).Type()) {
		out.ReturnsErr = true
	}
	return out
}

func isErrorType(t types.Type) bool {
	iface, ok := t.Underlying().(*types.Interface)
	if !ok {
		if named, ok := t.(*types.Named); ok {
			return named.Obj().Name() == "error" && named.Obj().Pkg() == nil
		}
		return false
	}
	// error has exactly one method, Error() string
	if iface.NumMethods() == 1 {
		return iface.Method(0).Name() == "Error"
	}
	return false
}
