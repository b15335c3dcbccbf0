// Package button 实现画布按钮：配置合并、三态状态机和渲染
//
// 按钮不处理输入也不驱动帧循环，宿主负责在检测到悬停/点击时调用
// ChangeState，并在每帧调用 Render。
package button

import (
	"github.com/decker502/core2d/pkg/canvas"
)

// Button 可点击按钮
//
// 嵌入的 Resolved 保存当前生效的外观/文字/回调配置，
// 由 New 和 Modify 整体替换。
type Button struct {
	Resolved

	currentState  State
	previousState State
}

// New 根据配置创建按钮，初始状态为 StateMain
func New(cfg Config, vp Viewport) *Button {
	b := &Button{
		currentState:  StateMain,
		previousState: StateMain,
	}
	b.Modify(cfg, vp)
	return b
}

// Modify 用新配置重新配置按钮，不影响当前状态
// 可用于在颜色模式和图片模式之间切换
func (b *Button) Modify(cfg Config, vp Viewport) {
	b.Resolved = Resolve(cfg, vp)
}

// IsImage 是否处于图片渲染模式
func (b *Button) IsImage() bool {
	return b.Image != nil
}

// ChangeState 切换状态并同步触发新状态对应的回调
//
// 即使 s 与当前状态相同也会记录并再次触发回调。
func (b *Button) ChangeState(s State) {
	b.previousState = b.currentState
	b.currentState = s

	switch s {
	case StateClick:
		b.Callbacks.OnClick()
	case StateHover:
		b.Callbacks.OnHover()
	default:
		b.Callbacks.OnMain()
	}
}

// State 返回当前状态
func (b *Button) State() State {
	return b.currentState
}

// PreviousState 返回上一次 ChangeState 之前的状态
func (b *Button) PreviousState() State {
	return b.previousState
}

// Update 每帧调用一次，目前没有逐帧逻辑
func (b *Button) Update() {}

// Bounds 返回按钮矩形（左上角 x, y 与宽高）
func (b *Button) Bounds() (x, y, w, h float64) {
	w, h = b.Size.Width, b.Size.Height
	return b.Center.X - w/2, b.Center.Y - h/2, w, h
}

// Contains 判断点 (px, py) 是否在按钮矩形内（含边界）
func (b *Button) Contains(px, py float64) bool {
	x, y, w, h := b.Bounds()
	return px >= x && px <= x+w && py >= y && py <= y+h
}

// palette 返回当前状态下使用的颜色
// 悬停状态使用 Hover，其他状态使用 Color
func (b *Button) palette() Palette {
	if b.currentState == StateHover {
		return b.Hover
	}
	return b.Color
}

// Render 将按钮绘制到 ctx
//
// 图片模式下只把图片拉伸到按钮矩形；否则填充并描边矩形，
// 再在中心偏下 height/8 处绘制文字。所有样式修改都包在
// Save/Restore 中，返回后 ctx 的样式保持不变。
func (b *Button) Render(ctx canvas.Context) {
	x, y, w, h := b.Bounds()

	if b.IsImage() {
		canvas.Scoped(ctx, func() {
			ctx.DrawImage(b.Image, x, y, w, h)
		})
		return
	}

	canvas.Scoped(ctx, func() {
		p := b.palette()
		ctx.SetLineWidth(b.Size.Stroke)
		ctx.SetFillStyle(p.Fill)
		ctx.SetStrokeStyle(p.Stroke)

		ctx.FillRect(x, y, w, h)
		ctx.StrokeRect(x, y, w, h)
	})

	canvas.Scoped(ctx, func() {
		ctx.SetFont(b.Text.Size, b.Text.Font)
		ctx.SetFillStyle(b.Text.Color)
		ctx.SetTextAlign(b.Text.Alignment)

		ctx.FillText(b.Text.String, b.Center.X, b.Center.Y+h/8)
	})
}
