package core

import (
	"reflect"
	"testing"
)

func TestWrapText(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"fits", "fire straight down", 30, []string{"fire straight down"}},
		{"breaks on words", "the opponent sweeps left and right", 12, []string{"the opponent", "sweeps left", "and right"}},
		{"long word is cut", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"keeps paragraphs", "one\ntwo", 10, []string{"one", "two"}},
		{"wide runes", "對手左右移動", 4, []string{"對手", "左右", "移動"}},
		{"zero width", "anything", 0, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := WrapText(tc.text, tc.width)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("WrapText(%q, %d) = %q, want %q", tc.text, tc.width, got, tc.want)
			}
		})
	}
}

func TestWrapTextRespectsWidth(t *testing.T) {
	for _, option := range OpponentBehaviors {
		for _, line := range WrapText(option.Description, 40) {
			if TextWidth(line) > 40 {
				t.Errorf("line %q is %d columns wide", line, TextWidth(line))
			}
		}
	}
}
