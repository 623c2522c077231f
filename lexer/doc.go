// Package lexer turns Brook source text into tokens.
//
// Scanning is on demand: the parser-to-be pulls one token at a time with
// NextToken. Malformed input never stops the scanner; it is reported as
// TokenError tokens inside the stream.
package lexer
