package parser

import (
	"strconv"

	"github.com/evanacox/cascade/pkg/ast"
	"github.com/evanacox/cascade/pkg/diag"
	"github.com/evanacox/cascade/pkg/token"
	"github.com/evanacox/cascade/pkg/types"
)

// parseType parses a written type: an optional leading `&`/`&mut`, then any
// run of `*`, `*mut` and `[]` prefixes, then the base. References may only
// appear at the outermost position; a `&` nested between prefixes is a
// syntax error.
func (p *parser) parseType() *ast.TypeExpr {
	start := p.current().Info

	var mods []types.Modifier

	if p.match(token.SymPound) {
		if p.match(token.KwMut) {
			mods = append(mods, types.MutRef)
		} else {
			mods = append(mods, types.Ref)
		}
	}

	for {
		if p.match(token.SymStar) {
			if p.match(token.KwMut) {
				mods = append(mods, types.MutPtr)
			} else {
				mods = append(mods, types.Ptr)
			}

			continue
		}

		if p.match(token.SymOpenBracket) {
			p.expect(token.SymCloseBracket, diag.ExpectedClosingBracket)
			mods = append(mods, types.Array)

			continue
		}

		break
	}

	if p.check(token.SymPound) {
		p.errorAtCurrent(diag.ExpectedType, "")
		panic(bail{})
	}

	leaf := p.expect(token.Identifier, diag.ExpectedType)

	data := baseFromName(leaf.Raw)
	data.Modifiers = mods

	return ast.NewTypeExpr(start.Combine(leaf.Info), data)
}

// baseFromName classifies a type leaf: the builtin spellings `bool`, `iN`,
// `uN` and `fN`, or a user-defined name.
func baseFromName(name string) types.Data {
	if name == "bool" {
		return types.Bool()
	}

	if len(name) >= 2 {
		if width, ok := widthSuffix(name[1:]); ok {
			switch name[0] {
			case 'i':
				return types.SignedInt(width)
			case 'u':
				return types.UnsignedInt(width)
			case 'f':
				if width == 32 || width == 64 {
					return types.Float(width)
				}
			}
		}
	}

	return types.UserDefined(name)
}

func widthSuffix(s string) (int, bool) {
	width, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}

	switch width {
	case 8, 16, 32, 64:
		return width, true
	default:
		return 0, false
	}
}
