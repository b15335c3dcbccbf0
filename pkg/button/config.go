package button

import (
	"image"
	"log"
)

// 默认配置值
const (
	DefaultWidth  = 30.0
	DefaultHeight = 10.0
	DefaultStroke = 2.0

	DefaultColor = "#4C6B88"

	DefaultTextString    = ""
	DefaultTextColor     = "#EFECDE"
	DefaultTextSize      = 12.0
	DefaultTextFont      = "Helvetica"
	DefaultTextAlignment = "center"
)

// Viewport 视口尺寸
// 未指定中心点时，按钮放在视口中央
type Viewport struct {
	Width  float64
	Height float64
}

// Config 按钮的部分配置
//
// 所有叶子字段都是指针：nil 表示"未设置，使用默认值"，
// 非 nil 的值原样使用（包括零值）。
//
// 带 yaml 标签的子结构可直接用于配置文件（见 pkg/config）。
type Config struct {
	Center    PointConfig
	Size      SizeConfig
	Color     PaletteConfig
	Hover     PaletteConfig
	Image     image.Image
	Text      TextConfig
	Callbacks Callbacks
}

// PointConfig 中心点配置
type PointConfig struct {
	X *float64 `yaml:"x,omitempty"`
	Y *float64 `yaml:"y,omitempty"`
}

// SizeConfig 尺寸配置
type SizeConfig struct {
	Width  *float64 `yaml:"width,omitempty"`
	Height *float64 `yaml:"height,omitempty"`
	Stroke *float64 `yaml:"stroke,omitempty"`
}

// PaletteConfig 填充/描边颜色配置
type PaletteConfig struct {
	Fill   *string `yaml:"fill,omitempty"`
	Stroke *string `yaml:"stroke,omitempty"`
}

// TextConfig 文字配置
type TextConfig struct {
	String    *string  `yaml:"string,omitempty"`
	Color     *string  `yaml:"color,omitempty"`
	Size      *float64 `yaml:"size,omitempty"`
	Font      *string  `yaml:"font,omitempty"`
	Alignment *string  `yaml:"alignment,omitempty"`
}

// Callbacks 状态切换回调，nil 表示使用默认回调
type Callbacks struct {
	OnHover func()
	OnMain  func()
	OnClick func()
}

// Point 已解析的中心点
type Point struct {
	X float64
	Y float64
}

// Size 已解析的尺寸
type Size struct {
	Width  float64
	Height float64
	Stroke float64
}

// Palette 已解析的颜色
type Palette struct {
	Fill   string
	Stroke string
}

// Text 已解析的文字属性
type Text struct {
	String    string
	Color     string
	Size      float64
	Font      string
	Alignment string
}

// Resolved 合并默认值后的完整配置
type Resolved struct {
	Center    Point
	Size      Size
	Color     Palette
	Hover     Palette
	Image     image.Image
	Text      Text
	Callbacks Callbacks
}

// Ptr 返回 v 的指针，便于构造 Config 字面量
func Ptr[T any](v T) *T {
	return &v
}

func or[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}

// Resolve 将部分配置与默认值合并
//
// 规则：
//   - 已设置的字段原样保留，不做任何校验
//   - 设置了 Image 时进入图片模式，Color/Hover 不解析（保持零值）
//   - Hover 未设置的字段取解析后的 Color 值，而不是常量
//   - 回调为 nil 时替换为打印日志的默认回调
func Resolve(cfg Config, vp Viewport) Resolved {
	r := Resolved{
		Center: Point{
			X: or(cfg.Center.X, vp.Width/2),
			Y: or(cfg.Center.Y, vp.Height/2),
		},
		Size: Size{
			Width:  or(cfg.Size.Width, DefaultWidth),
			Height: or(cfg.Size.Height, DefaultHeight),
			Stroke: or(cfg.Size.Stroke, DefaultStroke),
		},
		Image: cfg.Image,
		Text: Text{
			String:    or(cfg.Text.String, DefaultTextString),
			Color:     or(cfg.Text.Color, DefaultTextColor),
			Size:      or(cfg.Text.Size, DefaultTextSize),
			Font:      or(cfg.Text.Font, DefaultTextFont),
			Alignment: or(cfg.Text.Alignment, DefaultTextAlignment),
		},
		Callbacks: Callbacks{
			OnHover: orCallback(cfg.Callbacks.OnHover, "hover"),
			OnMain:  orCallback(cfg.Callbacks.OnMain, "main"),
			OnClick: orCallback(cfg.Callbacks.OnClick, "click"),
		},
	}

	if r.Image == nil {
		r.Color = Palette{
			Fill:   or(cfg.Color.Fill, DefaultColor),
			Stroke: or(cfg.Color.Stroke, DefaultColor),
		}
		r.Hover = Palette{
			Fill:   or(cfg.Hover.Fill, r.Color.Fill),
			Stroke: or(cfg.Hover.Stroke, r.Color.Stroke),
		}
	}

	return r
}

func orCallback(fn func(), name string) func() {
	if fn != nil {
		return fn
	}
	return func() {
		log.Printf("[Button] default %s", name)
	}
}
