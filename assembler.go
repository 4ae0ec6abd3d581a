package rebcore

// Assembler recursively turns a scanner's token stream into nested
// Arrays (spec.md §4.5 "Assembly"). It owns the scan-mode behavior
// (SCAN_NEXT/SCAN_ONLY/SCAN_RELAX) and the state machine spec.md
// enumerates as {Top, InBlock, InGroup, InPath, InString, InBrace,
// InComment} — InString/InBrace/InComment live entirely inside the
// Scanner's own sub-scanners, so the Assembler only needs to track
// Top/InBlock/InGroup/InPath.
type Assembler struct {
	scanner *Scanner
	pool    *Pool
	symtab  *SymbolTable

	depth    int
	maxDepth int
}

func NewAssembler(s *Scanner, p *Pool, t *SymbolTable) *Assembler {
	maxDepth := s.cfg.ScanMaxDepth
	if maxDepth <= 0 {
		maxDepth = defaultScanMaxDepth
	}
	return &Assembler{scanner: s, pool: p, symtab: t, maxDepth: maxDepth}
}

// ScanTop assembles the whole source as an implicit top-level block
// (there is no enclosing `[`/`]` at the top level).
func (a *Assembler) ScanTop() (*Array, error) {
	if a.scanner.opts&(ScanNext|ScanOnly) != 0 {
		return a.scanNext()
	}
	arr, err := a.scanBody(false, TokenEnd)
	return arr, err
}

// scanNext implements SCAN_NEXT: return after exactly one top-level
// value (spec.md §4.5 "Scan modes").
func (a *Assembler) scanNext() (*Array, error) {
	arr := NewArray(a.pool, 0)
	cell, ok, err := a.scanOneValue()
	if err != nil {
		return nil, err
	}
	if ok {
		_ = arr.Append(cell)
	}
	return arr, nil
}

// scanBody consumes values until the given closing token (TokenEnd for
// top level, TokenBlockEnd for `[...]`, TokenGroupEnd for `(...)`),
// raising Unterminated/UnmatchedClose per spec.md §4.5 "Assembly".
func (a *Assembler) scanBody(bracketed bool, closing TokenType) (*Array, error) {
	a.depth++
	defer func() { a.depth-- }()
	if a.depth > a.maxDepth {
		return nil, newCoreErrorKind(ErrLexInvalidKind, "block/group nesting exceeds max depth %d", a.maxDepth)
	}

	arr := NewArray(a.pool, 0)
	for {
		cell, kind, err := a.scanStep(closing)
		if err != nil {
			if a.scanner.opts&ScanRelax != 0 {
				marker := NewWord(KindIssue, a.symtab.Intern("scan-error"))
				_ = arr.Append(marker)
				if a.scanner.atEnd() {
					// Nothing left to retry against (e.g. a genuinely
					// unterminated block) — stop rather than re-raising
					// the same error forever.
					return arr, nil
				}
				continue
			}
			return nil, err
		}
		switch kind {
		case stepDone:
			return arr, nil
		case stepValue:
			_ = arr.Append(cell)
		case stepSkip:
			// whitespace/newline only, nothing to append
		}
	}
}

type stepKind int

const (
	stepValue stepKind = iota
	stepDone
	stepSkip
)

// scanStep scans one token and turns it into zero-or-one assembled
// value, or signals the enclosing scanBody should stop.
func (a *Assembler) scanStep(closing TokenType) (Cell, stepKind, error) {
	tok, err := a.scanner.Next()
	if err != nil {
		return Cell{}, stepValue, err
	}

	switch tok.Type {
	case TokenEnd:
		if closing != TokenEnd {
			return Cell{}, stepValue, newCoreErrorKind(ErrUnterminatedKind, "unterminated block/group starting near line %d", a.scanner.startLine)
		}
		return Cell{}, stepDone, nil

	case TokenBlockEnd:
		if closing == TokenBlockEnd {
			return Cell{}, stepDone, nil
		}
		return Cell{}, stepValue, newCoreErrorKind(ErrUnmatchedCloseKind, "unmatched ] at line %d", tok.Line)

	case TokenGroupEnd:
		if closing == TokenGroupEnd {
			return Cell{}, stepDone, nil
		}
		return Cell{}, stepValue, newCoreErrorKind(ErrUnmatchedCloseKind, "unmatched ) at line %d", tok.Line)

	case TokenBlockBegin:
		if a.scanner.opts&ScanOnly != 0 {
			return Cell{}, stepValue, newCoreErrorKind(ErrLexInvalidKind, "blocks are disallowed in SCAN_ONLY mode")
		}
		sub, err := a.scanBody(true, TokenBlockEnd)
		if err != nil {
			return Cell{}, stepValue, err
		}
		return a.finishNested(NewBlock(sub.Series)), stepValue, nil

	case TokenGroupBegin:
		if a.scanner.opts&ScanOnly != 0 {
			return Cell{}, stepValue, newCoreErrorKind(ErrLexInvalidKind, "groups are disallowed in SCAN_ONLY mode")
		}
		sub, err := a.scanBody(true, TokenGroupEnd)
		if err != nil {
			return Cell{}, stepValue, err
		}
		return a.finishNested(NewGroup(sub.Series)), stepValue, nil

	case TokenPath:
		cell, err := a.scanPath(tok)
		if err != nil {
			return Cell{}, stepValue, err
		}
		return a.finishNested(cell), stepValue, nil

	default:
		cell, err := literalToCell(tok, a.pool, a.symtab)
		if err != nil {
			return Cell{}, stepValue, err
		}
		return a.finishNested(cell), stepValue, nil
	}
}

// finishNested applies the pending new-line-before flag (spec.md §4.5
// "NEWLINE sets a cell flag... on the next appended cell").
func (a *Assembler) finishNested(c Cell) Cell {
	if a.scanner.pendingNewline {
		c.SetFlag(FlagNewLineBefore)
		a.scanner.pendingNewline = false
	}
	return c
}

// scanPath gathers refinement/word segments until a non-path-continuation
// is seen (spec.md §4.5).
func (a *Assembler) scanPath(head Token) (Cell, error) {
	path := NewArray(a.pool, 0)
	headTok := head
	headTok.Type = TokenWord
	headCell, err := literalToCell(headTok, a.pool, a.symtab)
	if err != nil {
		return Cell{}, err
	}
	_ = path.Append(headCell)

	for a.scanner.peek() == '/' {
		a.scanner.advance() // consume '/'
		segTok, err := a.scanner.NextPathSegment()
		if err != nil {
			return Cell{}, err
		}
		if segTok.Type == TokenRefinement || segTok.Type == TokenPath {
			// A mid-path segment that itself ends in `/` (TokenPath) or
			// that the scanner saw a leading-looking `/` for
			// (TokenRefinement) is still just a bare word here — the
			// outer loop, not the segment scan, owns the `/` separators.
			segTok.Type = TokenWord
		}
		segCell, err := literalToCell(segTok, a.pool, a.symtab)
		if err != nil {
			return Cell{}, err
		}
		_ = path.Append(segCell)
	}

	return NewPath(path.Series), nil
}

// scanOneValue is the SCAN_NEXT primitive: scan exactly one top-level
// value, reporting ok=false at end of input.
func (a *Assembler) scanOneValue() (Cell, bool, error) {
	cell, kind, err := a.scanStep(TokenEnd)
	if err != nil {
		return Cell{}, false, err
	}
	if kind == stepDone {
		return Cell{}, false, nil
	}
	return cell, true, nil
}

// Scan is the package-level convenience entry point: scan src in one
// call, per spec.md §8's `scan(T)` notation.
func Scan(src []byte, file string, opts ScanMode, p *Pool, t *SymbolTable, cfg Config) (*Array, error) {
	sc := NewScanner(src, file, opts, cfg)
	as := NewAssembler(sc, p, t)
	return as.ScanTop()
}
