package ast

import "github.com/evanacox/cascade/pkg/source"

// ConstDecl is `const name (: type)? = init ;`.
type ConstDecl struct {
	declNode
	Name     string
	TypeNode *TypeExpr
	Init     Expr
}

// StaticDecl is `static name (: type)? = init ;`.
type StaticDecl struct {
	declNode
	Name     string
	TypeNode *TypeExpr
	Init     Expr
}

// ArgumentDecl is one `name: type` inside a function's argument list.
type ArgumentDecl struct {
	declNode
	Name     string
	TypeNode *TypeExpr
}

// FnDecl is `fn name(args...) (: type)? block`. Return holds the void type
// when the annotation was left out.
type FnDecl struct {
	declNode
	Name   string
	Args   []*ArgumentDecl
	Return *TypeExpr
	Body   *Block
}

// ModuleDecl is `module name ;`. At most one is accepted per file.
type ModuleDecl struct {
	declNode
	Name string
}

// ImportDecl is `import a.b.c (from {x, y})? (as alias)? ;`. Resolution of
// the imported names happens after the front-end.
type ImportDecl struct {
	declNode
	Name  string
	Items []string
	Alias string
}

// ExportDecl wraps the declaration it exports. Exporting an export is
// rejected in the parser, so Exported is never another ExportDecl.
type ExportDecl struct {
	declNode
	Exported Decl
}

// TypeAliasDecl is `type name = type ;`.
type TypeAliasDecl struct {
	declNode
	Name    string
	Aliased *TypeExpr
}

func (*ConstDecl) Kind() NodeKind     { return KindConstDecl }
func (*StaticDecl) Kind() NodeKind    { return KindStaticDecl }
func (*ArgumentDecl) Kind() NodeKind  { return KindArgumentDecl }
func (*FnDecl) Kind() NodeKind        { return KindFnDecl }
func (*ModuleDecl) Kind() NodeKind    { return KindModuleDecl }
func (*ImportDecl) Kind() NodeKind    { return KindImportDecl }
func (*ExportDecl) Kind() NodeKind    { return KindExportDecl }
func (*TypeAliasDecl) Kind() NodeKind { return KindTypeAliasDecl }

// NewConstDecl creates a const declaration.
func NewConstDecl(info source.Info, name string, ty *TypeExpr, init Expr) *ConstDecl {
	return &ConstDecl{declNode: declNode{Info: info}, Name: name, TypeNode: ty, Init: init}
}

// NewStaticDecl creates a static declaration.
func NewStaticDecl(info source.Info, name string, ty *TypeExpr, init Expr) *StaticDecl {
	return &StaticDecl{declNode: declNode{Info: info}, Name: name, TypeNode: ty, Init: init}
}

// NewArgumentDecl creates a function argument.
func NewArgumentDecl(info source.Info, name string, ty *TypeExpr) *ArgumentDecl {
	return &ArgumentDecl{declNode: declNode{Info: info}, Name: name, TypeNode: ty}
}

// NewFnDecl creates a function declaration.
func NewFnDecl(info source.Info, name string, args []*ArgumentDecl, ret *TypeExpr, body *Block) *FnDecl {
	return &FnDecl{declNode: declNode{Info: info}, Name: name, Args: args, Return: ret, Body: body}
}

// NewModuleDecl creates a module declaration.
func NewModuleDecl(info source.Info, name string) *ModuleDecl {
	return &ModuleDecl{declNode: declNode{Info: info}, Name: name}
}

// NewImportDecl creates an import declaration.
func NewImportDecl(info source.Info, name string, items []string, alias string) *ImportDecl {
	return &ImportDecl{declNode: declNode{Info: info}, Name: name, Items: items, Alias: alias}
}

// NewExportDecl creates an export wrapper.
func NewExportDecl(info source.Info, exported Decl) *ExportDecl {
	return &ExportDecl{declNode: declNode{Info: info}, Exported: exported}
}

// NewTypeAliasDecl creates a type alias.
func NewTypeAliasDecl(info source.Info, name string, aliased *TypeExpr) *TypeAliasDecl {
	return &TypeAliasDecl{declNode: declNode{Info: info}, Name: name, Aliased: aliased}
}
