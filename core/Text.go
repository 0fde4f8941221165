package core

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// WrapText 依顯示寬度斷行，單字超過寬度時硬切
func WrapText(text string, width int) []string {
	if width <= 0 {
		return nil
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0

	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineWidth = 0
	}

	for _, paragraph := range strings.Split(text, "\n") {
		for _, word := range strings.Fields(paragraph) {
			wordWidth := runewidth.StringWidth(word)

			if lineWidth > 0 && lineWidth+1+wordWidth > width {
				flush()
			}
			if lineWidth > 0 {
				line.WriteByte(' ')
				lineWidth++
			}

			for wordWidth > width-lineWidth {
				//單字比整行還長
				head, rest := splitAtWidth(word, width-lineWidth)
				if head == "" {
					_, size := utf8.DecodeRuneInString(word)
					head, rest = word[:size], word[size:]
				}
				line.WriteString(head)
				flush()
				word = rest
				wordWidth = runewidth.StringWidth(word)
			}
			line.WriteString(word)
			lineWidth += wordWidth
		}
		flush()
	}
	return lines
}

func splitAtWidth(word string, width int) (string, string) {
	w := 0
	for i, r := range word {
		rw := runewidth.RuneWidth(r)
		if w+rw > width {
			return word[:i], word[i:]
		}
		w += rw
	}
	return word, ""
}

// TextWidth 字串在終端機上佔的欄數
func TextWidth(text string) int {
	return runewidth.StringWidth(text)
}
