package ast

import (
	"fmt"
	"strings"

	"github.com/evanacox/cascade/pkg/token"
)

// Dump renders the program as an indented S-expression, one declaration per
// top-level form. It only exists for --debug logging and tests.
func Dump(p *Program) string {
	var b strings.Builder

	fmt.Fprintf(&b, "(program %q", p.Path)

	for _, d := range p.Decls {
		b.WriteString("\n")
		dumpNode(&b, d, 1)
	}

	b.WriteString(")")

	return b.String()
}

func indent(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
}

func dumpNode(b *strings.Builder, n Node, depth int) {
	indent(b, depth)

	switch node := n.(type) {
	case *ConstDecl:
		fmt.Fprintf(b, "(const %s %s ", node.Name, node.TypeNode.Data)
		dumpInline(b, node.Init, depth)
		b.WriteString(")")
	case *StaticDecl:
		fmt.Fprintf(b, "(static %s %s ", node.Name, node.TypeNode.Data)
		dumpInline(b, node.Init, depth)
		b.WriteString(")")
	case *FnDecl:
		fmt.Fprintf(b, "(fn %s (", node.Name)
		for i, arg := range node.Args {
			if i > 0 {
				b.WriteString(" ")
			}
			fmt.Fprintf(b, "%s:%s", arg.Name, arg.TypeNode.Data)
		}
		fmt.Fprintf(b, "): %s\n", node.Return.Data)
		dumpNode(b, node.Body, depth+1)
		b.WriteString(")")
	case *ModuleDecl:
		fmt.Fprintf(b, "(module %s)", node.Name)
	case *ImportDecl:
		fmt.Fprintf(b, "(import %s", node.Name)
		if len(node.Items) > 0 {
			fmt.Fprintf(b, " from {%s}", strings.Join(node.Items, ", "))
		}
		if node.Alias != "" {
			fmt.Fprintf(b, " as %s", node.Alias)
		}
		b.WriteString(")")
	case *ExportDecl:
		b.WriteString("(export\n")
		dumpNode(b, node.Exported, depth+1)
		b.WriteString(")")
	case *TypeAliasDecl:
		fmt.Fprintf(b, "(type %s = %s)", node.Name, node.Aliased.Data)
	case *ArgumentDecl:
		fmt.Fprintf(b, "(arg %s %s)", node.Name, node.TypeNode.Data)

	case *LetStmt:
		fmt.Fprintf(b, "(let %s %s ", node.Name, node.TypeNode.Data)
		dumpInline(b, node.Init, depth)
		b.WriteString(")")
	case *MutStmt:
		fmt.Fprintf(b, "(mut %s %s ", node.Name, node.TypeNode.Data)
		dumpInline(b, node.Init, depth)
		b.WriteString(")")
	case *RetStmt:
		b.WriteString("(ret")
		if node.Value != nil {
			b.WriteString(" ")
			dumpInline(b, node.Value, depth)
		}
		b.WriteString(")")
	case *LoopStmt:
		b.WriteString("(loop ")
		if node.Cond != nil {
			dumpInline(b, node.Cond, depth)
			b.WriteString(" ")
		}
		dumpInline(b, node.Body, depth)
		b.WriteString(")")
	case *ExprStmt:
		dumpInline(b, node.X, depth)

	case *TypeExpr:
		fmt.Fprintf(b, "%s", node.Data)

	default:
		if expr, ok := n.(Expr); ok {
			dumpInline(b, expr, depth)
		}
	}
}

func dumpInline(b *strings.Builder, e Expr, depth int) {
	switch expr := e.(type) {
	case *Identifier:
		b.WriteString(expr.Name)
	case *CharLit:
		fmt.Fprintf(b, "'%c'", expr.Value)
	case *StringLit:
		fmt.Fprintf(b, "%q", expr.Value)
	case *IntLit:
		fmt.Fprintf(b, "%d", expr.Value)
	case *FloatLit:
		fmt.Fprintf(b, "%g", expr.Value)
	case *BoolLit:
		fmt.Fprintf(b, "%t", expr.Value)
	case *Call:
		b.WriteString("(call ")
		dumpInline(b, expr.Callee, depth)
		for _, arg := range expr.Args {
			b.WriteString(" ")
			dumpInline(b, arg, depth)
		}
		b.WriteString(")")
	case *Binary:
		fmt.Fprintf(b, "(%s ", token.Spelling(expr.Op))
		dumpInline(b, expr.LHS, depth)
		b.WriteString(" ")
		dumpInline(b, expr.RHS, depth)
		b.WriteString(")")
	case *Unary:
		fmt.Fprintf(b, "(%s ", token.Spelling(expr.Op))
		dumpInline(b, expr.Operand, depth)
		b.WriteString(")")
	case *FieldAccess:
		b.WriteString("(field ")
		dumpInline(b, expr.Object, depth)
		fmt.Fprintf(b, " %s)", expr.Field)
	case *Index:
		b.WriteString("(index ")
		dumpInline(b, expr.Object, depth)
		b.WriteString(" ")
		dumpInline(b, expr.Idx, depth)
		b.WriteString(")")
	case *IfElse:
		b.WriteString("(if ")
		dumpInline(b, expr.Cond, depth)
		b.WriteString(" ")
		dumpInline(b, expr.Then, depth)
		if expr.Else != nil {
			b.WriteString(" ")
			dumpInline(b, expr.Else, depth)
		}
		b.WriteString(")")
	case *Block:
		b.WriteString("(block")
		for _, stmt := range expr.Stmts {
			b.WriteString("\n")
			dumpNode(b, stmt, depth+1)
		}
		b.WriteString(")")
	case *StructInit:
		fmt.Fprintf(b, "(struct %s", expr.Name)
		for _, field := range expr.Fields {
			fmt.Fprintf(b, " %s:", field.Name)
			dumpInline(b, field.Value, depth)
		}
		b.WriteString(")")
	}
}
