package constraint

import (
	"bytes"
	"strings"
	"text/scanner"
)

// scanExpression splits a phrase into OR-ed groups of AND-ed unit phrases: "a, b || c" is [[a b] [c]].
func scanExpression(phrase string) ([][]string, error) {
	var scnr scanner.Scanner
	var orGroups [][]string // all groups of and'd units, or'd together
	var andGroup []string   // most current group of and'd units
	var buf bytes.Buffer    // most current single unit
	var pendingPipe, quoted bool

	captureUnit := func() {
		if unit := strings.TrimSpace(buf.String()); unit != "" {
			andGroup = append(andGroup, unit)
		}
		buf.Reset()
	}

	captureAndGroup := func() {
		if len(andGroup) > 0 {
			orGroups = append(orGroups, andGroup)
			andGroup = nil
		}
	}

	scnr.Init(strings.NewReader(phrase))
	// hand out every character (whitespace included) as its own token: version strings follow no grammar the
	// scanner knows about
	scnr.Mode = 0
	scnr.Whitespace = 0
	scnr.Error = func(*scanner.Scanner, string) {}

	for tokenRune := scnr.Scan(); tokenRune != scanner.EOF; tokenRune = scnr.Scan() {
		currentToken := scnr.TokenText()

		if currentToken == "|" && !quoted {
			if pendingPipe {
				captureUnit()
				captureAndGroup()
			}
			pendingPipe = !pendingPipe
			continue
		}
		if pendingPipe {
			// a lone pipe is part of the unit
			buf.WriteString("|")
			pendingPipe = false
		}

		switch {
		case currentToken == `"`:
			quoted = !quoted
			buf.WriteString(currentToken)
		case quoted:
			buf.WriteString(currentToken)
		case currentToken == ",":
			captureUnit()
		case currentToken == "(" || currentToken == ")":
			return nil, ErrUnsupportedGroups
		default:
			buf.WriteString(currentToken)
		}
	}
	if pendingPipe {
		buf.WriteString("|")
	}
	captureUnit()
	captureAndGroup()

	return orGroups, nil
}
