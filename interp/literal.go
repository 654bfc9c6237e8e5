package interp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akashmaji946/lumen/value"
)

// parseLiteral converts a Literal node's lexeme into a Value, in this
// order: quoted → String, dotted → Float, true/false → Boolean, else →
// Number.
func parseLiteral(lexeme string) (value.Value, error) {
	if strings.Contains(lexeme, `"`) {
		return value.String(strings.Trim(lexeme, `"`)), nil
	}
	if strings.Contains(lexeme, ".") {
		f, err := strconv.ParseFloat(lexeme, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid float literal: %s", lexeme)
		}
		return value.Float(float32(f)), nil
	}
	if lexeme == "true" {
		return value.Boolean(true), nil
	}
	if lexeme == "false" {
		return value.Boolean(false), nil
	}
	n, err := strconv.ParseInt(lexeme, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid number literal: %s", lexeme)
	}
	return value.Number(int32(n)), nil
}
