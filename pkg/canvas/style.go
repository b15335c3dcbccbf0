package canvas

// Style 上下文的样式状态（Save/Restore 保存的部分）
type Style struct {
	FillStyle   string
	StrokeStyle string
	LineWidth   float64
	FontSize    float64
	FontFamily  string
	TextAlign   string
}

// DefaultStyle 返回新上下文的初始样式
func DefaultStyle() Style {
	return Style{
		FillStyle:   "#000000",
		StrokeStyle: "#000000",
		LineWidth:   1,
		FontSize:    10,
		FontFamily:  "sans-serif",
		TextAlign:   "start",
	}
}

// StyleStack 当前样式 + Save 保存的样式栈
// 供 Context 实现复用
type StyleStack struct {
	Current Style

	saved []Style
}

// NewStyleStack 创建以 DefaultStyle 为当前样式的空栈
func NewStyleStack() StyleStack {
	return StyleStack{Current: DefaultStyle()}
}

// Save 压入当前样式
func (s *StyleStack) Save() {
	s.saved = append(s.saved, s.Current)
}

// Restore 弹出最近保存的样式，栈为空时不做任何事
func (s *StyleStack) Restore() {
	n := len(s.saved)
	if n == 0 {
		return
	}
	s.Current = s.saved[n-1]
	s.saved = s.saved[:n-1]
}

// Depth 返回未恢复的 Save 次数
func (s *StyleStack) Depth() int {
	return len(s.saved)
}
