// Package diag defines the diagnostic records every compiler stage reports
// through, and the sink that buffers them.
package diag

import "fmt"

// Code is a stable, human-facing error number. Codes are never renumbered;
// new codes are only appended.
type Code int

const (
	UnknownChar Code = iota + 1
	UnterminatedStr
	UnterminatedChar
	UnexpectedTok
	UnterminatedBlockComment
	NumberLiteralTooLarge
	UnclosedParen
	ExpectedExpression
	UnexpectedExpression
	ExpectedSemi
	ExpectedElseAfterThen
	InvalidCharLiteral
	UnmatchedBrace
	UnexpectedEndOfInput
	ExpectedComma
	ExpectedClosingBracket
	ExpectedOpeningBrace
	ExpectedType
	ExpectedIdentifier
	ExpectedDeclaration
	CannotExportExport
	DuplicateModule
	MismatchedTypes
	DereferenceRequiresPointerType
	UsingVariableInInitializer
	UnknownIdentifier
)

// messages maps each code to its canonical single-line message.
var messages = map[Code]string{
	UnknownChar:                    "unknown character",
	UnterminatedStr:                "unterminated string literal",
	UnterminatedChar:               "unterminated character literal",
	UnexpectedTok:                  "unexpected token",
	UnterminatedBlockComment:       "unterminated multiline comment",
	NumberLiteralTooLarge:          "number literal too large",
	UnclosedParen:                  "expected closing parentheses",
	ExpectedExpression:             "expected an expression",
	UnexpectedExpression:           "unexpected expression",
	ExpectedSemi:                   "expected a semicolon",
	ExpectedElseAfterThen:          "expected 'else' in if-then expression",
	InvalidCharLiteral:             "more than one character in char literal",
	UnmatchedBrace:                 "expected a matching '}'",
	UnexpectedEndOfInput:           "unexpected end of input",
	ExpectedComma:                  "expected a comma",
	ExpectedClosingBracket:         "expected a closing square bracket",
	ExpectedOpeningBrace:           "expected an opening curly brace",
	ExpectedType:                   "expected a type",
	ExpectedIdentifier:             "expected an identifier",
	ExpectedDeclaration:            "expected a declaration",
	CannotExportExport:             "cannot export an export declaration",
	DuplicateModule:                "file already has a module declaration",
	MismatchedTypes:                "mismatched types",
	DereferenceRequiresPointerType: "dereference requires a pointer type",
	UsingVariableInInitializer:     "variable used inside its own initializer",
	UnknownIdentifier:              "unknown identifier",
}

// notes maps codes to their canonical note, for the codes that have one. An
// explicit note on an Error overrides the table.
var notes = map[Code]string{
	UnknownChar:              "This character isn't used in any part of the language.",
	UnexpectedTok:            "Did you leave out a space?",
	UnterminatedBlockComment: "Did you leave out the terminator?",
	UnterminatedChar:         "Did you leave out the terminator?",
	UnterminatedStr:          "Did you leave out the terminator?",
	NumberLiteralTooLarge:    "Number literals are of type 'i32' and must fit inside that.",
	ExpectedSemi:             "All statements require a ';' after them, unless they end with a '}'.",
	ExpectedElseAfterThen:    "If an 'if' expression has 'then', an 'else' is required.",
	InvalidCharLiteral: "Char literals can only contain a single UTF-8 code point, not a " +
		"UTF-8 character. If it doesn't fit inside one byte, you cannot use it.",
	ExpectedOpeningBrace: "A block was expected to begin here.",
	UnknownIdentifier:    "This name isn't declared anywhere visible from here.",
}

// Message returns the canonical message for code.
func Message(code Code) string {
	return messages[code]
}

// Note returns the canonical note for code, if it has one.
func Note(code Code) (string, bool) {
	note, ok := notes[code]
	return note, ok
}

// String renders the code in its human-facing E-number form.
func (c Code) String() string {
	return fmt.Sprintf("E%04d", int(c))
}
