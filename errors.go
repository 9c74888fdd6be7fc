// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package evjson

import "fmt"

// An ErrorKind identifies a specific way parsing can fail. Every kind is
// reported to an ErrorPolicy. Recoverable kinds go to ErrorPolicy.Error,
// which decides whether parsing should stop or continue with the documented
// recovery for that kind. Kinds with no recovery (an unexpected closing
// brace or bracket, and a premature end of input at EndParse) go to
// ErrorPolicy.FatalError, and parsing always stops.
type ErrorKind int

const (
	// Structural errors.
	ErrUnexpectedEOF ErrorKind = iota
	ErrInvalidJSONText
	ErrExtraCharacter
	ErrMaxDepthExceeded
	ErrSingleQuote
	ErrIllegalControlCharacter
	ErrIllegalCharacterInString
	ErrExtraComma
	ErrExpectedName
	ErrExpectedValue
	ErrExpectedColon
	ErrExpectedCommaOrRightBrace
	ErrExpectedCommaOrRightBracket
	ErrUnexpectedRightBrace
	ErrUnexpectedRightBracket
	ErrIllegalComment

	// String/escape errors.
	ErrIllegalEscapedCharacter
	ErrInvalidHexEscapeSequence
	ErrExpectedCodepointSurrogatePair

	// Number errors.
	ErrInvalidNumber
	ErrLeadingZero

	// Fallback.
	ErrInvalidValue

	// Unicode-translation errors (collaborator, §4.D).
	ErrOverlongUTF8Sequence
	ErrUnpairedHighSurrogate
	ErrExpectedContinuationByte
	ErrIllegalSurrogateValue
	ErrIllegalCodepoint
)

var errorKindNames = [...]string{
	ErrUnexpectedEOF:                   "unexpected_eof",
	ErrInvalidJSONText:                 "invalid_json_text",
	ErrExtraCharacter:                  "extra_character",
	ErrMaxDepthExceeded:                "max_depth_exceeded",
	ErrSingleQuote:                     "single_quote",
	ErrIllegalControlCharacter:         "illegal_control_character",
	ErrIllegalCharacterInString:        "illegal_character_in_string",
	ErrExtraComma:                      "extra_comma",
	ErrExpectedName:                    "expected_name",
	ErrExpectedValue:                   "expected_value",
	ErrExpectedColon:                   "expected_colon",
	ErrExpectedCommaOrRightBrace:       "expected_comma_or_right_brace",
	ErrExpectedCommaOrRightBracket:     "expected_comma_or_right_bracket",
	ErrUnexpectedRightBrace:            "unexpected_right_brace",
	ErrUnexpectedRightBracket:          "unexpected_right_bracket",
	ErrIllegalComment:                  "illegal_comment",
	ErrIllegalEscapedCharacter:         "illegal_escaped_character",
	ErrInvalidHexEscapeSequence:        "invalid_hex_escape_sequence",
	ErrExpectedCodepointSurrogatePair:  "expected_codepoint_surrogate_pair",
	ErrInvalidNumber:                   "invalid_number",
	ErrLeadingZero:                     "leading_zero",
	ErrInvalidValue:                    "invalid_value",
	ErrOverlongUTF8Sequence:            "over_long_utf8_sequence",
	ErrUnpairedHighSurrogate:           "unpaired_high_surrogate",
	ErrExpectedContinuationByte:        "expected_continuation_byte",
	ErrIllegalSurrogateValue:           "illegal_surrogate_value",
	ErrIllegalCodepoint:                "illegal_codepoint",
}

// String returns the kind's stable, lower_snake_case name.
func (k ErrorKind) String() string {
	if int(k) >= 0 && int(k) < len(errorKindNames) && errorKindNames[k] != "" {
		return errorKindNames[k]
	}
	return fmt.Sprintf("error_kind(%d)", int(k))
}

// A ParseError reports a parse failure at a specific source location. It is
// the concrete error type returned by the convenience wrappers (Decoder,
// ast.Parse) when an ErrorPolicy aborts parsing.
type ParseError struct {
	Kind   ErrorKind
	Line   int
	Column int
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Kind)
}
