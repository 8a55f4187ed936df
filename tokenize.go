package natsort

// tokenize splits s into text and number tokens using p.
// A string without numbers yields a single text token; a key that would start
// with a number gets an empty leading text token so all keys from one
// generator begin with the same token kind.
func tokenize(s string, p Pattern) []Token {
	matches := p.re.FindAllStringIndex(s, -1)
	if len(matches) == 0 {
		return []Token{TextToken(s)}
	}

	tokens := make([]Token, 0, 2*len(matches)+2)
	if matches[0][0] == 0 {
		tokens = append(tokens, TextToken(""))
	}

	last := 0
	for _, m := range matches {
		if m[0] > last {
			tokens = append(tokens, TextToken(s[last:m[0]]))
		}
		tokens = append(tokens, NumberToken(p.parse(s[m[0]:m[1]])))
		last = m[1]
	}
	if last < len(s) {
		tokens = append(tokens, TextToken(s[last:]))
	}

	return tokens
}
