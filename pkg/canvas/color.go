package canvas

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor 解析颜色字符串
//
// 支持的格式：
//   - "#rgb", "#rgba", "#rrggbb", "#rrggbbaa"
//   - "transparent"
//   - SVG/CSS 颜色名（如 "steelblue"），大小写不敏感
//
// 无法解析时返回 false。
func ParseColor(s string) (color.Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil, false
	}

	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}

	if s == "transparent" {
		return color.Transparent, true
	}

	c, ok := colornames.Map[s]
	if !ok {
		return nil, false
	}
	return c, true
}

// parseHex 返回非预乘的 NRGBA
func parseHex(h string) (color.Color, bool) {
	switch len(h) {
	case 3, 4:
		// 短格式：每位重复一次，"abc" -> "aabbcc"
		var b strings.Builder
		for _, r := range h {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		h = b.String()
	case 6, 8:
	default:
		return nil, false
	}

	if len(h) == 6 {
		h += "ff"
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return nil, false
	}

	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, true
}
