package inline

import (
	"context"
	"log/slog"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"

	"github.com/ardnew/uenv/env"
)

// Rewrite parses source, replaces the references accepted by r, and prints
// the resulting expression. Source without any replaced reference is
// returned unchanged, byte for byte.
func Rewrite(source string, r Resolver) (string, error) {
	if strings.TrimSpace(source) == "" {
		return source, nil
	}

	tree, err := parser.Parse(source)
	if err != nil {
		return "", ErrExprParse.Wrap(err).With(slog.String("source", source))
	}

	p := newPatcher(r)
	ast.Walk(&tree.Node, p)

	if p.patched == 0 {
		return source, nil
	}

	return tree.Node.String(), nil
}

// Eval compiles source with the references accepted by r replaced, and runs
// it. The live environment is exposed through the object path reported by
// r's Object method (see [Adapter.Object]), or [DefaultObject] if r has
// none. [Builtins] are available as well.
//
// Blank source evaluates to nil.
func Eval(
	ctx context.Context,
	source string,
	r Resolver,
	environ env.Environment,
) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, context.Cause(ctx)
	}

	if strings.TrimSpace(source) == "" {
		return nil, nil
	}

	vars := runtimeEnv(objectOf(r), environ)

	program, err := expr.Compile(source, expr.Env(vars), expr.Patch(newPatcher(r)))
	if err != nil {
		return nil, ErrExprCompile.Wrap(err).With(slog.String("source", source))
	}

	if err := ctx.Err(); err != nil {
		return nil, context.Cause(ctx)
	}

	out, err := expr.Run(program, vars)
	if err != nil {
		return nil, ErrExprEvaluate.Wrap(err).With(slog.String("source", source))
	}

	return out, nil
}

func objectOf(r Resolver) []string {
	if o, ok := r.(interface{ Object() []string }); ok {
		if path := o.Object(); len(path) > 0 {
			return path
		}
	}

	return splitObject(DefaultObject)
}

// runtimeEnv nests a copy of environ under object on top of the builtins.
func runtimeEnv(object []string, environ env.Environment) map[string]any {
	vars := Builtins()

	var leaf any = environ.Map()

	for i := len(object) - 1; i > 0; i-- {
		leaf = map[string]any{object[i]: leaf}
	}

	vars[object[0]] = leaf

	return vars
}
