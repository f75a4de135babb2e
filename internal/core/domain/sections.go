package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// identitySections are the canonical dump sections in their fixed order. The
// order is part of the format contract: dumps are meant to stay diffable
// across identity changes.
var identitySections = []string{
	"settings",
	"requires",
	"options",
	"full_settings",
	"full_requires",
	"full_options",
	"scope",
}

// parseSections splits a canonical dump into its "[section]" bodies, with
// the body indentation stripped. Every expected section must be present and
// no other section may appear; violations return ErrMalformedIdentityFile
// naming the section.
func parseSections(text string, expected []string) (map[string]string, error) {
	allowed := make(map[string]bool, len(expected))
	for _, name := range expected {
		allowed[name] = true
	}

	bodies := make(map[string]string, len(expected))
	current := ""
	var lines []string
	flush := func() {
		if current != "" {
			bodies[current] = strings.Join(lines, "\n")
		}
		lines = nil
	}

	for line := range strings.Lines(text) {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			name := trimmed[1 : len(trimmed)-1]
			if !allowed[name] {
				return nil, zerr.With(zerr.Wrap(ErrMalformedIdentityFile, "unexpected section"), "section", name)
			}
			flush()
			current = name
		case trimmed == "":
			continue
		case current == "":
			return nil, zerr.With(zerr.Wrap(ErrMalformedIdentityFile, "content before first section"), "line", trimmed)
		default:
			lines = append(lines, trimmed)
		}
	}
	flush()

	for _, name := range expected {
		if _, ok := bodies[name]; !ok {
			return nil, zerr.With(zerr.Wrap(ErrMalformedIdentityFile, "missing section"), "section", name)
		}
	}
	return bodies, nil
}
