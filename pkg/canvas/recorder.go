package canvas

import "image"

// Op 一次被记录的绘制调用
type Op struct {
	// Name 调用名，如 "FillRect"
	Name string
	// Args 调用参数（坐标、文字、图片）
	Args []any
	// Style 调用发生时的样式
	Style Style
}

// Recorder 记录调用但不实际绘制的 Context
//
// 样式按画布语义保存，但不校验取值：任何字符串都会原样记录。
type Recorder struct {
	Ops []Op

	styles StyleStack
}

// NewRecorder 创建使用 DefaultStyle 的 Recorder
func NewRecorder() *Recorder {
	return &Recorder{styles: NewStyleStack()}
}

// Style 返回当前样式
func (r *Recorder) Style() Style {
	return r.styles.Current
}

// Depth 返回未恢复的 Save 次数
func (r *Recorder) Depth() int {
	return r.styles.Depth()
}

// Draws 返回绘制调用（不含样式设置和 Save/Restore）
func (r *Recorder) Draws() []Op {
	var draws []Op
	for _, op := range r.Ops {
		switch op.Name {
		case "FillRect", "StrokeRect", "FillText", "DrawImage":
			draws = append(draws, op)
		}
	}
	return draws
}

func (r *Recorder) record(name string, args ...any) {
	r.Ops = append(r.Ops, Op{Name: name, Args: args, Style: r.styles.Current})
}

func (r *Recorder) Save() {
	r.styles.Save()
	r.record("Save")
}

func (r *Recorder) Restore() {
	r.styles.Restore()
	r.record("Restore")
}

func (r *Recorder) SetFillStyle(style string) {
	r.styles.Current.FillStyle = style
	r.record("SetFillStyle", style)
}

func (r *Recorder) SetStrokeStyle(style string) {
	r.styles.Current.StrokeStyle = style
	r.record("SetStrokeStyle", style)
}

func (r *Recorder) SetLineWidth(width float64) {
	r.styles.Current.LineWidth = width
	r.record("SetLineWidth", width)
}

func (r *Recorder) SetFont(size float64, family string) {
	r.styles.Current.FontSize = size
	r.styles.Current.FontFamily = family
	r.record("SetFont", size, family)
}

func (r *Recorder) SetTextAlign(align string) {
	r.styles.Current.TextAlign = align
	r.record("SetTextAlign", align)
}

func (r *Recorder) FillRect(x, y, w, h float64) {
	r.record("FillRect", x, y, w, h)
}

func (r *Recorder) StrokeRect(x, y, w, h float64) {
	r.record("StrokeRect", x, y, w, h)
}

func (r *Recorder) FillText(s string, x, y float64) {
	r.record("FillText", s, x, y)
}

func (r *Recorder) DrawImage(img image.Image, x, y, w, h float64) {
	r.record("DrawImage", img, x, y, w, h)
}
