package nanolang

import "strings"

// Source is one fully-buffered compilation input. The rune slice is decoded
// once so the tokenizer can peek in O(1).
type Source struct {
	Name    string
	Content string
	Lines   []string

	runes []rune
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
		runes:   []rune(content),
	}
}
