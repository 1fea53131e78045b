package cli

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/thenoetrevino/orion/internal/models"
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidateColorHex validates that a color string is in valid hex format #RRGGBB
func ValidateColorHex(color string) error {
	if !hexColor.MatchString(color) {
		return fmt.Errorf("color must be in hex format #RRGGBB (e.g., #FF0000), got: %s: %w", color, models.ErrInvalidArgument)
	}
	return nil
}

// ParseColor converts #RRGGBB into an opaque color
func ParseColor(hex string) (models.Color, error) {
	if err := ValidateColorHex(hex); err != nil {
		return models.Color{}, err
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return models.Color{}, fmt.Errorf("error parsing color: %w", err)
	}
	return models.Color{
		R: float64(v>>16&0xFF) / 255,
		G: float64(v>>8&0xFF) / 255,
		B: float64(v&0xFF) / 255,
		A: 1,
	}, nil
}

// ParseVector parses "x,y" into a vector
func ParseVector(s string) (models.Vector2, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return models.Vector2{}, fmt.Errorf("expected x,y, got %q: %w", s, models.ErrInvalidArgument)
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if errX != nil || errY != nil {
		return models.Vector2{}, fmt.Errorf("expected numeric x,y, got %q: %w", s, models.ErrInvalidArgument)
	}
	return models.Vec(x, y), nil
}

// ParseDate accepts YYYY-MM-DD or RFC 3339
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD): %w", s, models.ErrInvalidArgument)
	}
	return t, nil
}

// SplitList splits a comma separated flag value, dropping blanks
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ShortID trims a uuid to its first block for human output
func ShortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
