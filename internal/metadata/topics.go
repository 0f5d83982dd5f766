package metadata

import "unicode"

// MaxTopics caps the topic list.
const MaxTopics = 10

// Topics returns the first MaxTopics distinct runs of letters (ASCII and Latin-1
// accented), digits and whitespace, each trimmed to start and end on a word boundary.
// Word boundaries are Unicode-aware so accented letters count as word characters.
func Topics(text string) []string {
	runes := []rune(text)
	n := len(runes)

	isWord := func(i int) bool {
		return i >= 0 && i < n && wordRune(runes[i])
	}
	boundary := func(i int) bool {
		return isWord(i-1) != isWord(i)
	}

	seen := make(map[string]struct{})
	var topics []string

	for i := 0; i < n && len(topics) < MaxTopics; {
		if !topicRune(runes[i]) {
			i++
			continue
		}

		end := i
		for end < n && topicRune(runes[end]) {
			end++
		}

		start := -1
		for p := i; p < end; p++ {
			if boundary(p) {
				start = p
				break
			}
		}

		if start >= 0 {
			for q := end; q > start; q-- {
				if !boundary(q) {
					continue
				}
				topic := string(runes[start:q])
				if _, dup := seen[topic]; !dup {
					seen[topic] = struct{}{}
					topics = append(topics, topic)
				}
				break
			}
		}

		i = end
	}

	return topics
}

func topicRune(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return true
	case r >= 'À' && r <= 'ÿ':
		return true
	}
	return unicode.IsSpace(r)
}

func wordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
