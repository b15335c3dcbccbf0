package canvas

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   color.Color
		wantOK bool
	}{
		{"6 位十六进制", "#4C6B88", color.NRGBA{0x4c, 0x6b, 0x88, 0xff}, true},
		{"小写十六进制", "#efecde", color.NRGBA{0xef, 0xec, 0xde, 0xff}, true},
		{"8 位十六进制带透明度", "#00000080", color.NRGBA{0, 0, 0, 0x80}, true},
		{"3 位短格式", "#fa0", color.NRGBA{0xff, 0xaa, 0x00, 0xff}, true},
		{"4 位短格式", "#fa08", color.NRGBA{0xff, 0xaa, 0x00, 0x88}, true},
		{"前后空白", "  #000000 ", color.NRGBA{0, 0, 0, 0xff}, true},
		{"颜色名", "white", color.RGBA{0xff, 0xff, 0xff, 0xff}, true},
		{"颜色名大小写不敏感", "SteelBlue", color.RGBA{0x46, 0x82, 0xb4, 0xff}, true},
		{"transparent", "transparent", color.Transparent, true},
		{"空字符串", "", nil, false},
		{"非法十六进制", "#zzzzzz", nil, false},
		{"长度不对", "#12345", nil, false},
		{"未知颜色名", "notacolor", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseColor(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseColor(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
