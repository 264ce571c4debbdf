package ai

// firstJSONObject returns the first balanced {...} in s. Braces inside JSON
// strings are ignored. ok is false when no complete object is present.
func firstJSONObject(s string) (obj string, ok bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if start < 0 {
			if c == '{' {
				start = i
				depth = 1
			}
			continue
		}

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
