package inline

import (
	"github.com/expr-lang/expr/ast"
)

// patcher replaces environment references in an expr-lang tree.
//
// ast.Walk visits children before their parent, so in "process.env.KEY" the
// partial path "process.env" is offered to the resolver first and rejected.
// Replacement nodes are not revisited.
type patcher struct {
	resolver Resolver
	patched  int
}

// Patcher returns a visitor that rewrites member-access chains accepted by r.
// Use it with [ast.Walk] or [github.com/expr-lang/expr.Patch].
func Patcher(r Resolver) ast.Visitor {
	return newPatcher(r)
}

func newPatcher(r Resolver) *patcher {
	if r == nil {
		r = ResolverFunc(func([]string) (Replacement, bool) {
			return Replacement{}, false
		})
	}

	return &patcher{resolver: r}
}

// Visit implements ast.Visitor.
func (p *patcher) Visit(node *ast.Node) {
	member, ok := (*node).(*ast.MemberNode)
	if !ok || member.Method {
		return
	}

	path, ok := extractMemberPath(member)
	if !ok {
		return
	}

	rep, ok := p.resolver.Resolve(path)
	if !ok {
		return
	}

	switch rep.Kind {
	case Literal:
		ast.Patch(node, &ast.StringNode{Value: rep.Value})
	case Fallback:
		ast.Patch(node, fallbackNode(path, rep.Value))
	default:
		return
	}

	p.patched++
}

// fallbackNode builds `<path> != "" ? <path> : "<value>"`.
func fallbackNode(path []string, value string) ast.Node {
	return &ast.ConditionalNode{
		Cond: &ast.BinaryNode{
			Operator: "!=",
			Left:     memberNode(path),
			Right:    &ast.StringNode{Value: ""},
		},
		Exp1: memberNode(path),
		Exp2: &ast.StringNode{Value: value},
	}
}

// memberNode builds a fresh member-access chain for path.
func memberNode(path []string) ast.Node {
	var node ast.Node = &ast.IdentifierNode{Value: path[0]}

	for _, seg := range path[1:] {
		node = &ast.MemberNode{
			Node:     node,
			Property: &ast.StringNode{Value: seg},
		}
	}

	return node
}

// extractMemberPath walks a MemberNode chain to produce path segments.
// Both a.b and a["b"] yield the segment "b"; computed properties do not
// match.
func extractMemberPath(node ast.Node) ([]string, bool) {
	switch n := node.(type) {
	case *ast.IdentifierNode:
		return []string{n.Value}, true

	case *ast.MemberNode:
		prop, ok := n.Property.(*ast.StringNode)
		if !ok {
			return nil, false
		}

		base, ok := extractMemberPath(n.Node)
		if !ok {
			return nil, false
		}

		return append(base, prop.Value), true

	default:
		return nil, false
	}
}
