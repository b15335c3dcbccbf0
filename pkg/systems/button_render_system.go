package systems

import (
	"github.com/decker502/core2d/pkg/button"
	"github.com/decker502/core2d/pkg/canvas"
	"github.com/decker502/core2d/pkg/canvas/ebitencanvas"
	"github.com/hajimehoshi/ebiten/v2"
)

// ButtonRenderSystem 按钮渲染系统
// 每帧把按钮按添加顺序绘制到屏幕
type ButtonRenderSystem struct {
	screen *ebitencanvas.Screen
}

// NewButtonRenderSystem 创建按钮渲染系统
// fonts 为 nil 时按钮文字不绘制
func NewButtonRenderSystem(fonts *ebitencanvas.FontRegistry) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		screen: ebitencanvas.NewScreen(nil, fonts),
	}
}

// Draw 渲染所有按钮到 screen
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image, buttons []*button.Button) {
	s.screen.Reset(screen)
	DrawButtons(s.screen, buttons)
}

// DrawButtons 在 ctx 上依次调用按钮的 Update 和 Render
func DrawButtons(ctx canvas.Context, buttons []*button.Button) {
	for _, b := range buttons {
		b.Update()
		b.Render(ctx)
	}
}
