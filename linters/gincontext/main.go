// Command gincontext reports calls in the HTTP layer that pass a *gin.Context
// where a context.Context is expected. Handlers must hand
// ctx.Request.Context() to components so cancellation and the request id
// reach the store.
package main

import (
	"flag"
	"fmt"
	"go/ast"
	"go/types"
	"log"
	"os"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/checker"
	"golang.org/x/tools/go/packages"
)

var lintPrefixes = []string{
	"opencsg.com/bookmark-server/api/handler",
	"opencsg.com/bookmark-server/api/middleware",
}

func main() {
	tagPtr := flag.String("tags", "", "build tags")
	flag.Parse()

	cfg := &packages.Config{
		Mode:       packages.LoadAllSyntax,
		BuildFlags: []string{"-tags=" + *tagPtr},
	}

	initial, err := packages.Load(cfg, "./...")
	if err != nil {
		log.Fatal(err)
	}
	if len(initial) == 0 {
		log.Fatalf("no initial packages")
	}

	graph, err := checker.Analyze([]*analysis.Analyzer{analyzer}, initial, nil)
	if err != nil {
		log.Fatal(err)
	}

	err = graph.PrintText(os.Stderr, -1)
	if err != nil {
		log.Fatal(err)
	}

	var exitcode = 0
	graph.All()(func(act *checker.Action) bool {
		if len(act.Diagnostics) > 0 {
			exitcode = 1
		}
		return true
	})

	os.Exit(exitcode)
}

var analyzer = &analysis.Analyzer{
	Name: "gincontext",
	Doc:  "Find gin contexts passed as context.Context",
	Run:  run,
}

func shouldLint(pkgPath string) bool {
	for _, prefix := range lintPrefixes {
		if pkgPath == prefix || strings.HasPrefix(pkgPath, prefix+"/") {
			return true
		}
	}
	return false
}

func isGinContext(typ string) bool {
	return strings.HasSuffix(typ, "gin-gonic/gin.Context")
}

func run(pass *analysis.Pass) (any, error) {
	if pass.Pkg == nil || !shouldLint(pass.Pkg.Path()) {
		return nil, nil
	}
	for _, file := range pass.Files {
		ast.Inspect(file, func(n ast.Node) bool {
			ce, ok := n.(*ast.CallExpr)
			if !ok || len(ce.Args) < 1 {
				return true
			}
			at := pass.TypesInfo.TypeOf(ce.Args[0])
			if at == nil || !isGinContext(at.String()) {
				return true
			}
			sig, ok := pass.TypesInfo.TypeOf(ce.Fun).(*types.Signature)
			if !ok || sig.Params().Len() < 1 {
				return true
			}
			if sig.Params().At(0).Type().String() != "context.Context" {
				return true
			}

			newCtx := fmt.Sprintf("%s.Request.Context()", types.ExprString(ce.Args[0]))
			pass.Report(analysis.Diagnostic{
				Pos:     ce.Pos(),
				Message: "should use ctx.Request.Context",
				SuggestedFixes: []analysis.SuggestedFix{
					{
						Message: "should use gin request context",
						TextEdits: []analysis.TextEdit{
							{
								Pos:     ce.Args[0].Pos(),
								End:     ce.Args[0].End(),
								NewText: []byte(newCtx),
							},
						},
					},
				},
			})
			return true
		})
	}

	return nil, nil
}
