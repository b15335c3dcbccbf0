package systems

import (
	"slices"

	"github.com/decker502/core2d/pkg/button"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// CursorSource 提供光标位置和左键状态
type CursorSource interface {
	// CursorPosition 返回光标屏幕坐标
	CursorPosition() (x, y float64)
	// Pressed 左键当前是否按下
	Pressed() bool
	// JustReleased 左键是否在本帧释放
	JustReleased() bool
}

// EbitenCursor 基于 Ebitengine 输入的 CursorSource
type EbitenCursor struct{}

func (EbitenCursor) CursorPosition() (x, y float64) {
	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my)
}

func (EbitenCursor) Pressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (EbitenCursor) JustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

// ButtonSystem 按钮交互系统
// 根据光标状态驱动按钮的状态机
//
// 规则：
//   - 光标不在按钮内：MAIN
//   - 光标在按钮内（包括按住左键时）：HOVER
//   - 在按钮内按下左键会"武装"该按钮；之后在按钮内释放：CLICK（下一帧回到 HOVER）
//   - 在按钮外按下、拖进按钮再释放：不触发 CLICK
//
// 进入 CLICK 就会触发 OnClick，所以按下只武装按钮，CLICK 在释放时才进入。
// 只在目标状态与当前状态不同时调用 ChangeState，避免每帧重复触发回调；
// 点击总是调用 ChangeState，连续点击会各触发一次。
type ButtonSystem struct {
	cursor  CursorSource
	buttons []*button.Button

	// armed 左键在其内按下、尚未释放的按钮
	armed      map[*button.Button]bool
	wasPressed bool
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(cursor CursorSource) *ButtonSystem {
	return &ButtonSystem{
		cursor: cursor,
		armed:  make(map[*button.Button]bool),
	}
}

// Add 添加受控按钮
func (s *ButtonSystem) Add(buttons ...*button.Button) {
	s.buttons = append(slices.Clip(s.buttons), buttons...)
}

// Remove 移除按钮，返回是否找到
// 不修改之前由 Buttons 返回的切片
func (s *ButtonSystem) Remove(b *button.Button) bool {
	i := slices.Index(s.buttons, b)
	if i < 0 {
		return false
	}
	s.buttons = slices.Delete(slices.Clone(s.buttons), i, i+1)
	delete(s.armed, b)
	return true
}

// Buttons 返回受控按钮
func (s *ButtonSystem) Buttons() []*button.Button {
	return s.buttons
}

// Update 读取一次光标状态并更新所有按钮
func (s *ButtonSystem) Update() {
	mouseX, mouseY := s.cursor.CursorPosition()
	pressed := s.cursor.Pressed()
	released := s.cursor.JustReleased()
	justPressed := pressed && !s.wasPressed
	s.wasPressed = pressed

	for _, b := range s.buttons {
		inside := b.Contains(mouseX, mouseY)

		if justPressed && inside {
			s.armed[b] = true
		}

		if released {
			armed := s.armed[b]
			delete(s.armed, b)
			if inside && armed {
				b.ChangeState(button.StateClick)
				continue
			}
		}

		if !inside {
			s.transition(b, button.StateMain)
			continue
		}
		s.transition(b, button.StateHover)
	}
}

func (s *ButtonSystem) transition(b *button.Button, target button.State) {
	if b.State() != target {
		b.ChangeState(target)
	}
}
