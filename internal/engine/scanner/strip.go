package scanner

type stripState uint8

const (
	inCode stripState = iota
	inBlockComment
	inLineComment
	inString
	inChar
)

// Strip masks every comment byte with a space. Newlines are kept, so the
// result has the input's length and every offset keeps its line and column.
//
// Comment markers inside string and character literals are left alone. A
// quote inside a numeric literal, as in 1'000, is a digit separator.
// Literals end at their closing quote or at the end of the line. An
// unterminated block comment runs to the end of the buffer, and a line
// comment ending in a backslash continues on the next line.
func Strip(text string) string {
	out := []byte(text)
	n := len(text)
	state := inCode

	for i := 0; i < n; i++ {
		c := text[i]
		switch state {
		case inCode:
			switch {
			case c == '/' && i+1 < n && text[i+1] == '*':
				out[i], out[i+1] = ' ', ' '
				i++
				state = inBlockComment
			case c == '/' && i+1 < n && text[i+1] == '/':
				out[i], out[i+1] = ' ', ' '
				i++
				state = inLineComment
			case c == '"':
				state = inString
			case c == '\'' && !isDigitSeparator(text, i):
				state = inChar
			}

		case inBlockComment:
			if c == '*' && i+1 < n && text[i+1] == '/' {
				out[i], out[i+1] = ' ', ' '
				i++
				state = inCode
				continue
			}
			if c != '\n' {
				out[i] = ' '
			}

		case inLineComment:
			switch {
			case c == '\n':
				state = inCode
			case c == '\\' && i+1 < n && text[i+1] == '\n':
				out[i] = ' '
				i++
			default:
				out[i] = ' '
			}

		case inString, inChar:
			switch {
			case c == '\\' && i+1 < n && text[i+1] != '\n':
				i++
			case c == '\n':
				state = inCode
			case c == '"' && state == inString, c == '\'' && state == inChar:
				state = inCode
			}
		}
	}

	return string(out)
}

// isDigitSeparator reports whether the quote at i continues a number token,
// which is one that starts with a digit. Encoding prefixes such as u8'a' or
// L'a' start with a letter and stay character literals.
func isDigitSeparator(text string, i int) bool {
	start := i
	for start > 0 && isTokenByte(text[start-1]) {
		start--
	}
	return start < i && isDigit(text[start])
}

func isTokenByte(c byte) bool {
	return isDigit(c) || c == '_' || c == '\'' || c == '.' ||
		('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
