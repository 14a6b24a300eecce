package app

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"bitcube/hal"
	"bitcube/scene"

	"tinygo.org/x/tinyfont"
)

const (
	abortPaper = scene.ColorRed
	abortInk   = scene.ColorWhite
)

// showAbort reports an unrecoverable frame failure: the value and stack go to
// the log line by line, and a wrapped copy is drawn on the next page.
func showAbort(h hal.HAL, v any, stack []byte) {
	lines := []string{
		"bitcube abort:",
		fmt.Sprintf("%v", v),
	}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, strings.TrimSpace(line))
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	if l := h.Logger(); l != nil {
		for _, line := range lines {
			l.WriteLineString(line)
		}
	}

	disp := h.Display()
	if disp == nil {
		return
	}
	s := disp.Surface()
	s.Clear(abortPaper)

	_, outboxWidth := tinyfont.LineWidth(hudFont, "0")
	cols := int16(1)
	if outboxWidth > 0 {
		cols = max(int16(disp.Width())/int16(outboxWidth), 1)
	}

	var wrapped []string
	for _, line := range lines {
		for {
			chunk, rest := takeRunes(line, cols)
			wrapped = append(wrapped, chunk)
			line = strings.TrimLeft(rest, " ")
			if line == "" {
				break
			}
		}
	}

	d := &pageDisplayer{s: s, w: int16(disp.Width()), h: int16(disp.Height()), ink: abortInk}
	writeLines(d, 0, 0, wrapped)
	disp.FlipPage()
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
