package natsort

// insertSeparators places an empty text token between every pair of adjacent
// number tokens. With k adjacent pairs the result is k tokens longer.
func insertSeparators(tokens []Token) []Token {
	if len(tokens) < 2 {
		return tokens
	}

	out := make([]Token, 0, len(tokens)+len(tokens)/2)
	out = append(out, tokens[0])
	for i := 1; i < len(tokens); i++ {
		if tokens[i-1].IsNumber() && tokens[i].IsNumber() {
			out = append(out, TextToken(""))
		}
		out = append(out, tokens[i])
	}
	return out
}
