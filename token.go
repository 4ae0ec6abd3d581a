package rebcore

// TokenType enumerates the tokens the scanner can produce (spec.md
// §4.5). Named and commented the way the teacher's own TokenType list
// is (lexer.go): one constant per lexical shape, grouped by family.
type TokenType int

const (
	TokenEnd TokenType = iota // end of input

	TokenBlockBegin // [
	TokenBlockEnd   // ]
	TokenGroupBegin // (
	TokenGroupEnd   // )

	TokenWord       // bare word
	TokenSet        // word:
	TokenGet        // :word
	TokenLit        // 'word
	TokenRefinement // /word
	TokenIssue      // #word or #

	TokenInteger // 123
	TokenDecimal // 1.5
	TokenPercent // 50%
	TokenMoney   // $1.50
	TokenTime    // 12:34:56.5
	TokenDate    // 1-Jan-2024
	TokenPair    // 100x200
	TokenTuple   // 1.2.3

	TokenString // "..."
	TokenBinary // #{...}
	TokenChar   // #"x"
	TokenFile   // %path
	TokenURL    // scheme://...
	TokenEmail  // user@host
	TokenTag    // <...>

	TokenPath // word/word/word

	TokenNewline // line break, folded into new-line-before flag
	TokenError   // SCAN_RELAX diagnostic marker cell
)

func (t TokenType) String() string {
	if int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return "unknown-token"
}

var tokenNames = [...]string{
	TokenEnd:        "end",
	TokenBlockBegin: "block-begin",
	TokenBlockEnd:   "block-end",
	TokenGroupBegin: "group-begin",
	TokenGroupEnd:   "group-end",
	TokenWord:       "word",
	TokenSet:        "set-word",
	TokenGet:        "get-word",
	TokenLit:        "lit-word",
	TokenRefinement: "refinement",
	TokenIssue:      "issue",
	TokenInteger:    "integer",
	TokenDecimal:    "decimal",
	TokenPercent:    "percent",
	TokenMoney:      "money",
	TokenTime:       "time",
	TokenDate:       "date",
	TokenPair:       "pair",
	TokenTuple:      "tuple",
	TokenString:     "string",
	TokenBinary:     "binary",
	TokenChar:       "char",
	TokenFile:       "file",
	TokenURL:        "url",
	TokenEmail:      "email",
	TokenTag:        "tag",
	TokenPath:       "path",
	TokenNewline:    "newline",
	TokenError:      "error",
}

// lexClass is one of the four byte classes spec.md §4.5 partitions the
// 256-entry lexical map into.
type lexClass uint8

const (
	classDelimit lexClass = iota
	classSpecial
	classWord
	classNumber
)

// Token is one produced lexeme: its type, the raw source slice it
// covers, and the line it started on (for diagnostics, spec.md §6.5).
type Token struct {
	Type TokenType
	Text []byte
	Line int
}
