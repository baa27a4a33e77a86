package input

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseScript reads a headless key script, one whitespace-separated token per tick
// A token lists the keys held on that tick ("W", "AD", "ws"), "." means none
// A trailing "xN" repeats the token N times ("Wx10")
func ParseScript(script string) ([]KeySet, error) {
	fields := strings.Fields(script)
	ticks := make([]KeySet, 0, len(fields))

	for _, tok := range fields {
		body, repeat, err := splitRepeat(tok)
		if err != nil {
			return nil, err
		}

		var s KeySet
		if body != "." {
			for _, r := range body {
				k, ok := KeyFromRune(r)
				if !ok {
					return nil, fmt.Errorf("script token %q: unknown key %q", tok, r)
				}
				s = s.With(k)
			}
		}

		for i := 0; i < repeat; i++ {
			ticks = append(ticks, s)
		}
	}
	return ticks, nil
}

func splitRepeat(tok string) (string, int, error) {
	idx := strings.LastIndexByte(tok, 'x')
	if idx <= 0 {
		return tok, 1, nil
	}
	n, err := strconv.Atoi(tok[idx+1:])
	if err != nil || n < 1 {
		return "", 0, fmt.Errorf("script token %q: bad repeat count", tok)
	}
	return tok[:idx], n, nil
}
