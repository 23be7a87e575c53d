package ast

// Program is the root of one file's tree: its declarations in source order,
// plus the path the file came from.
type Program struct {
	Path  string
	Decls []Decl
}

// NewProgram creates an empty program for path.
func NewProgram(path string) *Program {
	return &Program{Path: path}
}

// AddDecl appends a declaration.
func (p *Program) AddDecl(d Decl) {
	p.Decls = append(p.Decls, d)
}

// Module returns the file's module declaration, if it has one.
func (p *Program) Module() (*ModuleDecl, bool) {
	for _, d := range p.Decls {
		if m, ok := d.(*ModuleDecl); ok {
			return m, true
		}
	}

	return nil, false
}
