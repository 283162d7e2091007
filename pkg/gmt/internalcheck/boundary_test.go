package internalcheck

import (
	"fmt"
	"go/ast"
	"go/types"
	"sort"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

const (
	modulePath   = "github.com/hsiuhsiu/gmt-go"
	bindingsPath = modulePath + "/internal/bindings"
)

// nativeOnly lists imports that may only appear in the bindings package.
var nativeOnly = map[string]bool{
	"github.com/ebitengine/purego": true,
	"unsafe":                       true,
	"C":                            true,
}

func TestNativeImportsIsolated(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedImports,
	}

	pkgs, err := packages.Load(cfg, modulePath+"/...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var findings []string
	for _, pkg := range pkgs {
		if pkg.PkgPath == bindingsPath {
			continue
		}
		for path := range pkg.Imports {
			if nativeOnly[path] {
				findings = append(findings, fmt.Sprintf("%s imports %s", pkg.PkgPath, path))
			}
		}
	}

	if len(findings) > 0 {
		sort.Strings(findings)
		t.Fatalf("native boundary violation; only %s may do this:\n%s", bindingsPath, strings.Join(findings, "\n"))
	}
}

// opaqueTypes are pointer-sized newtypes that must not be converted to
// ordinary integers outside the bindings package.
var opaqueTypes = map[string]bool{
	modulePath + "/pkg/gmt.APIPointer": true,
	bindingsPath + ".Handle":           true,
	bindingsPath + ".Symbol":           true,
}

func TestNoOpaqueConversions(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedFiles | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg, modulePath+"/...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var findings []string
	for _, pkg := range pkgs {
		if pkg.PkgPath == bindingsPath {
			continue
		}
		for _, file := range pkg.Syntax {
			ast.Inspect(file, func(n ast.Node) bool {
				call, ok := n.(*ast.CallExpr)
				if !ok || len(call.Args) != 1 {
					return true
				}
				fun, ok := pkg.TypesInfo.Types[call.Fun]
				if !ok || !fun.IsType() {
					return true
				}
				if isOpaque(pkg.TypesInfo.TypeOf(call.Args[0])) && !isOpaque(fun.Type) {
					pos := pkg.Fset.Position(call.Pos())
					findings = append(findings, fmt.Sprintf("%s: opaque native value converted to %s", pos, fun.Type))
				}
				return true
			})
		}
	}

	if len(findings) > 0 {
		t.Fatalf("opaque value policy violation:\n%s", strings.Join(findings, "\n"))
	}
}

func isOpaque(typ types.Type) bool {
	named, ok := typ.(*types.Named)
	if !ok || named.Obj().Pkg() == nil {
		return false
	}
	return opaqueTypes[named.Obj().Pkg().Path()+"."+named.Obj().Name()]
}
