package rebcore

// lexMap is the 256-entry lexical classification table of spec.md §4.5:
// every byte value maps to one of the four classes. Built once at
// package init rather than hand-packed bitfields, since Go has no
// equivalent space pressure to the original's embedded system target.
var lexMap [256]lexClass

// delimiterBytes and specialBytes enumerate the bytes spec.md §4.5
// names explicitly; everything else defaults to classWord, except
// digits which are classNumber.
const delimiterBytes = " \t\n\r()[]{}\";"
const specialBytes = "@%\\:'<>+-~|_.,#$/"

// lexForbiddenInWord is LEX_WORD_FLAGS, spec.md §4.5: bytes that end a
// plain word run even though some of them are otherwise WORD-class
// continuations in other contexts (e.g. leading `-` and `.` are legal
// word characters, but `:` `#` `$` `@` `%` `,` never continue a word).
const lexForbiddenInWord = "@%\\,#$:"

func init() {
	for i := range lexMap {
		lexMap[i] = classWord
	}
	for _, b := range []byte(delimiterBytes) {
		lexMap[b] = classDelimit
	}
	for _, b := range []byte(specialBytes) {
		lexMap[b] = classSpecial
	}
	for c := '0'; c <= '9'; c++ {
		lexMap[c] = classNumber
	}
	lexMap[0] = classDelimit // NUL terminates like EOF
}

func classOf(b byte) lexClass { return lexMap[b] }

func isWordContinuation(b byte) bool {
	switch lexMap[b] {
	case classWord, classNumber:
		return true
	}
	switch b {
	case '?', '!', '*', '=', '~', '-', '_', '.':
		return true
	}
	for _, f := range []byte(lexForbiddenInWord) {
		if b == f {
			return false
		}
	}
	return false
}
