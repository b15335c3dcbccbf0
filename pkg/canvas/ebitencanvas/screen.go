// Package ebitencanvas 是基于 Ebitengine 的 canvas.Context 实现
//
// 与 canvas 包分开，使按钮核心和 canvas.Recorder 不依赖 Ebitengine。
package ebitencanvas

import (
	"image"
	"reflect"

	"github.com/decker502/core2d/pkg/canvas"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Screen 绘制到 *ebiten.Image 的 canvas.Context
//
// 使用方式：每帧在 Draw 中调用 Reset(screen)，然后把 Screen
// 传给按钮的 Render。
type Screen struct {
	dst    *ebiten.Image
	fonts  *FontRegistry
	styles canvas.StyleStack

	// images 指针类型图片的转换缓存，按指针标识索引
	// 宿主修改了图片像素后需调用 ForgetImage
	images map[image.Image]*ebiten.Image
}

// NewScreen 创建绘制到 dst 的上下文
// fonts 为 nil 时 FillText 不绘制任何内容
func NewScreen(dst *ebiten.Image, fonts *FontRegistry) *Screen {
	return &Screen{
		dst:    dst,
		fonts:  fonts,
		styles: canvas.NewStyleStack(),
		images: make(map[image.Image]*ebiten.Image),
	}
}

// Reset 切换绘制目标并清空样式栈
func (s *Screen) Reset(dst *ebiten.Image) {
	s.dst = dst
	s.styles = canvas.NewStyleStack()
}

// Style 返回当前样式
func (s *Screen) Style() canvas.Style {
	return s.styles.Current
}

func (s *Screen) Save()    { s.styles.Save() }
func (s *Screen) Restore() { s.styles.Restore() }

// SetFillStyle 设置填充颜色，无法解析的颜色被忽略
func (s *Screen) SetFillStyle(style string) {
	if _, ok := canvas.ParseColor(style); ok {
		s.styles.Current.FillStyle = style
	}
}

// SetStrokeStyle 设置描边颜色，无法解析的颜色被忽略
func (s *Screen) SetStrokeStyle(style string) {
	if _, ok := canvas.ParseColor(style); ok {
		s.styles.Current.StrokeStyle = style
	}
}

// SetLineWidth 设置线宽，非正数被忽略
func (s *Screen) SetLineWidth(width float64) {
	if width > 0 {
		s.styles.Current.LineWidth = width
	}
}

func (s *Screen) SetFont(size float64, family string) {
	if size <= 0 {
		return
	}
	s.styles.Current.FontSize = size
	s.styles.Current.FontFamily = family
}

func (s *Screen) SetTextAlign(align string) {
	switch align {
	case "start", "end", "left", "right", "center":
		s.styles.Current.TextAlign = align
	}
}

func (s *Screen) FillRect(x, y, w, h float64) {
	if s.dst == nil {
		return
	}
	clr, _ := canvas.ParseColor(s.styles.Current.FillStyle)
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (s *Screen) StrokeRect(x, y, w, h float64) {
	if s.dst == nil {
		return
	}
	clr, _ := canvas.ParseColor(s.styles.Current.StrokeStyle)
	vector.StrokeRect(s.dst, float32(x), float32(y), float32(w), float32(h), float32(s.styles.Current.LineWidth), clr, false)
}

// FillText 以 (x, y) 为基线位置绘制文字，水平位置按 TextAlign 对齐
func (s *Screen) FillText(str string, x, y float64) {
	if s.dst == nil || s.fonts == nil || str == "" {
		return
	}

	face := s.fonts.Face(s.styles.Current.FontFamily, s.styles.Current.FontSize)
	clr, _ := canvas.ParseColor(s.styles.Current.FillStyle)

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = textAlign(s.styles.Current.TextAlign)
	// text.Draw 以行顶为原点，这里换算成基线
	op.GeoM.Translate(x, y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(s.dst, str, face, op)
}

// DrawImage 将图片拉伸到 (x, y, w, h)
func (s *Screen) DrawImage(img image.Image, x, y, w, h float64) {
	if s.dst == nil || img == nil {
		return
	}

	src, temporary := s.ebitenImage(img)
	if temporary {
		defer src.Deallocate()
	}

	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(src, op)
}

// ForgetImage 丢弃 img 的转换缓存，下次绘制时重新转换
func (s *Screen) ForgetImage(img image.Image) {
	if !cacheable(img) {
		return
	}
	if ei, ok := s.images[img]; ok {
		if ei != nil {
			ei.Deallocate()
		}
		delete(s.images, img)
	}
}

// ebitenImage 返回可绘制的图片
// temporary 为 true 时调用方负责在绘制后释放
func (s *Screen) ebitenImage(img image.Image) (ei *ebiten.Image, temporary bool) {
	if ei, ok := img.(*ebiten.Image); ok {
		return ei, false
	}
	if !cacheable(img) {
		return ebiten.NewImageFromImage(img), true
	}
	if ei, ok := s.images[img]; ok {
		return ei, false
	}
	ei = ebiten.NewImageFromImage(img)
	s.images[img] = ei
	return ei, false
}

// cacheable 只有指针类型的图片按标识缓存
// 值类型可能不可比较（作为 map 键会 panic），每次绘制都重新转换
func cacheable(img image.Image) bool {
	return img != nil && reflect.TypeOf(img).Kind() == reflect.Pointer
}

// textAlign 将画布对齐方式映射到 text/v2 的对齐
// 只支持从左到右的文字，"start" 等同 "left"
func textAlign(align string) text.Align {
	switch align {
	case "center":
		return text.AlignCenter
	case "right", "end":
		return text.AlignEnd
	default:
		return text.AlignStart
	}
}
