// Package canvas 定义按钮使用的 2D 绘图上下文
//
// Context 模仿画布的绘图接口：可保存/恢复的样式状态，加上矩形、
// 文字和图片绘制。Recorder 记录所有调用，供测试和调试使用；
// 基于 Ebitengine 的实现在 ebitencanvas 子包中，本包不依赖 Ebitengine。
package canvas

import "image"

// Context 2D 绘图上下文
//
// 样式通过字符串设置（颜色如 "#4C6B88"、对齐如 "center"），
// 无法识别的值由实现自行忽略。Save/Restore 成对使用。
type Context interface {
	Save()
	Restore()

	SetFillStyle(style string)
	SetStrokeStyle(style string)
	SetLineWidth(width float64)
	SetFont(size float64, family string)
	SetTextAlign(align string)

	FillRect(x, y, w, h float64)
	StrokeRect(x, y, w, h float64)
	FillText(s string, x, y float64)
	DrawImage(img image.Image, x, y, w, h float64)
}

// Scoped 在 Save/Restore 之间执行 fn
// fn panic 时也会 Restore，panic 继续向上传播
func Scoped(ctx Context, fn func()) {
	ctx.Save()
	defer ctx.Restore()
	fn()
}
