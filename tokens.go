package easyconfig

import (
	"iter"
	"regexp"
	"strings"
)

// TokenKind represents the possible kinds of token in a configuration file.
type TokenKind int8

// These tokens are yielded from [Tokens].
const (
	Comment = TokenKind(iota)
	Group
	Key
	Value
	Error
)

func (k TokenKind) String() string {
	switch k {
	case Comment:
		return "Comment"
	case Group:
		return "Group"
	case Key:
		return "Key"
	case Value:
		return "Value"
	case Error:
		return "Error"
	default:
		panic("Unknown TokenKind")
	}
}

func (k TokenKind) GoString() string {
	return k.String()
}

// A Token is a single lexical element of a configuration file.
type Token struct {
	Kind    TokenKind
	Content string
}

var (
	lineRegexp   = regexp.MustCompile("\r\n|\r|\n")
	headerRegexp = regexp.MustCompile(`\[([a-zA-Z\d\s]+)\]`)
)

func lines(input string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		lno := 1
		for match := lineRegexp.FindStringIndex(input); match != nil; match = lineRegexp.FindStringIndex(input) {
			if !yield(lno, input[:match[0]]) {
				return
			}
			input = input[match[1]:]
			lno++
		}
		if input != "" {
			yield(lno, input)
		}
	}
}

// Tokens iterates over tokens in the input string with their associated
// (1-based) line number.
//
// A line starting with # is yielded as a single [Comment]; otherwise
// everything after the first # is a [Comment] and is removed before the
// rest of the line is looked at.
//
// A bracketed name anywhere on the line, such as [Video], yields a
// [Group] and the rest of the line is ignored. A line containing = yields
// a [Key] followed by a [Value], split at the first =. Both are trimmed
// but the value is otherwise exactly as written. Other lines yield
// nothing.
//
// An [Error] token is yielded for a group header whose name is blank,
// including a name made only of whitespace such as [ ]; such a header is
// never accepted as a group called " ".
func Tokens(input string) iter.Seq2[int, Token] {
	return func(yield func(int, Token) bool) {
		for lno, line := range lines(input) {
			if i := strings.Index(line, "#"); i >= 0 {
				if !yield(lno, Token{Kind: Comment, Content: line[i+1:]}) {
					return
				}
				if i == 0 {
					continue
				}
				line = line[:i]
			}

			line = strings.TrimSpace(line)

			if match := headerRegexp.FindStringSubmatch(line); match != nil {
				if strings.TrimSpace(match[1]) == "" {
					if !yield(lno, Token{Kind: Error, Content: "group must have a name"}) {
						return
					}
					continue
				}
				if !yield(lno, Token{Kind: Group, Content: match[1]}) {
					return
				}
				continue
			}

			if key, value, found := strings.Cut(line, "="); found {
				if !yield(lno, Token{Kind: Key, Content: strings.TrimSpace(key)}) {
					return
				}
				if !yield(lno, Token{Kind: Value, Content: strings.TrimSpace(value)}) {
					return
				}
			}
		}
	}
}
