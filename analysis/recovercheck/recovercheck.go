// Package recovercheck defines an Analyzer that reports recover calls which
// may swallow signals of the exception package.
//
// Signals travel from the signaling function to their protected region as
// panics. A deferred function that recovers in between stops the transfer,
// unless it panics again with the recovered value when exception.Propagating
// reports true.
package recovercheck

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

const exceptionPath = "github.com/stealthrocket/exception"

const doc = `check that recover calls let exception signals through

The recovercheck analyzer reports calls to recover in functions that never
call exception.Propagating. Only packages importing the exception package are
checked.`

var Analyzer = &analysis.Analyzer{
	Name:     "recovercheck",
	Doc:      doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (any, error) {
	if !importsException(pass.Pkg) {
		return nil, nil
	}
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	type recoverCall struct {
		call *ast.CallExpr
		fn   ast.Node
	}
	var recovers []recoverCall
	checked := map[ast.Node]bool{}

	filter := []ast.Node{(*ast.CallExpr)(nil)}
	inspect.WithStack(filter, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return true
		}
		call := n.(*ast.CallExpr)
		fn := enclosingFunc(stack)
		if fn == nil {
			return true
		}
		switch {
		case isRecover(pass.TypesInfo, call):
			recovers = append(recovers, recoverCall{call: call, fn: fn})
		case isPropagating(pass.TypesInfo, call):
			checked[fn] = true
		}
		return true
	})

	for _, r := range recovers {
		if !checked[r.fn] {
			pass.Reportf(r.call.Pos(), "recover may swallow exception signals; re-panic when exception.Propagating reports true")
		}
	}
	return nil, nil
}

func importsException(pkg *types.Package) bool {
	if pkg.Path() == exceptionPath {
		return false
	}
	for _, imp := range pkg.Imports() {
		if imp.Path() == exceptionPath {
			return true
		}
	}
	return false
}

// The stack ends with the call expression itself.
func enclosingFunc(stack []ast.Node) ast.Node {
	for i := len(stack) - 1; i >= 0; i-- {
		switch n := stack[i].(type) {
		case *ast.FuncDecl, *ast.FuncLit:
			return n
		}
	}
	return nil
}

func isRecover(info *types.Info, call *ast.CallExpr) bool {
	ident, ok := astutil.Unparen(call.Fun).(*ast.Ident)
	if !ok {
		return false
	}
	return info.ObjectOf(ident) == types.Universe.Lookup("recover")
}

func isPropagating(info *types.Info, call *ast.CallExpr) bool {
	fn, ok := typeutil.Callee(info, call).(*types.Func)
	if !ok || fn.Pkg() == nil {
		return false
	}
	return fn.Pkg().Path() == exceptionPath && fn.Name() == "Propagating"
}
