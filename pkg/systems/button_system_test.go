package systems

import (
	"reflect"
	"testing"

	"github.com/decker502/core2d/pkg/button"
	"github.com/decker502/core2d/pkg/canvas"
)

// fakeCursor 可控的 CursorSource
type fakeCursor struct {
	x, y     float64
	pressed  bool
	released bool
}

func (c *fakeCursor) CursorPosition() (float64, float64) { return c.x, c.y }
func (c *fakeCursor) Pressed() bool                       { return c.pressed }
func (c *fakeCursor) JustReleased() bool                  { return c.released }

// newTrackedButton 创建记录回调顺序的按钮，中心 (100, 100)，尺寸 40x20
func newTrackedButton(log *[]string) *button.Button {
	return button.New(button.Config{
		Center: button.PointConfig{X: button.Ptr(100.0), Y: button.Ptr(100.0)},
		Size:   button.SizeConfig{Width: button.Ptr(40.0), Height: button.Ptr(20.0)},
		Callbacks: button.Callbacks{
			OnHover: func() { *log = append(*log, "hover") },
			OnMain:  func() { *log = append(*log, "main") },
			OnClick: func() { *log = append(*log, "click") },
		},
	}, button.Viewport{Width: 800, Height: 600})
}

func TestButtonSystemTransitions(t *testing.T) {
	type frame struct {
		x, y     float64
		pressed  bool
		released bool
	}

	tests := []struct {
		name      string
		frames    []frame
		wantLog   []string
		wantState button.State
	}{
		{
			name:      "cursor outside stays main without callbacks",
			frames:    []frame{{0, 0, false, false}, {10, 10, false, false}},
			wantLog:   nil,
			wantState: button.StateMain,
		},
		{
			name:      "hover fires once while cursor stays inside",
			frames:    []frame{{100, 100, false, false}, {105, 102, false, false}, {90, 95, false, false}},
			wantLog:   []string{"hover"},
			wantState: button.StateHover,
		},
		{
			name:      "leave returns to main",
			frames:    []frame{{100, 100, false, false}, {300, 300, false, false}},
			wantLog:   []string{"hover", "main"},
			wantState: button.StateMain,
		},
		{
			name: "holding the button inside stays hover",
			frames: []frame{
				{100, 100, false, false},
				{100, 100, true, false},
				{100, 100, true, false},
			},
			wantLog:   []string{"hover"},
			wantState: button.StateHover,
		},
		{
			name: "press and release inside clicks then hovers",
			frames: []frame{
				{100, 100, false, false},
				{100, 100, true, false},
				{100, 100, false, true},
				{100, 100, false, false},
			},
			wantLog:   []string{"hover", "click", "hover"},
			wantState: button.StateHover,
		},
		{
			name: "consecutive clicks fire twice",
			frames: []frame{
				{100, 100, true, false},
				{100, 100, false, true},
				{100, 100, true, false},
				{100, 100, false, true},
			},
			wantLog:   []string{"hover", "click", "hover", "click"},
			wantState: button.StateClick,
		},
		{
			name: "press outside and release inside does not click",
			frames: []frame{
				{0, 0, true, false},
				{100, 100, true, false},
				{100, 100, false, true},
			},
			wantLog:   []string{"hover"},
			wantState: button.StateHover,
		},
		{
			name: "press inside, drag out and back, release inside clicks",
			frames: []frame{
				{100, 100, true, false},
				{300, 300, true, false},
				{100, 100, false, true},
			},
			wantLog:   []string{"hover", "main", "click"},
			wantState: button.StateClick,
		},
		{
			name: "press inside and release outside does not click",
			frames: []frame{
				{100, 100, true, false},
				{300, 300, false, true},
			},
			wantLog:   []string{"hover", "main"},
			wantState: button.StateMain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var log []string
			b := newTrackedButton(&log)

			cursor := &fakeCursor{}
			sys := NewButtonSystem(cursor)
			sys.Add(b)

			for _, f := range tt.frames {
				cursor.x, cursor.y = f.x, f.y
				cursor.pressed, cursor.released = f.pressed, f.released
				sys.Update()
			}

			if !reflect.DeepEqual(log, tt.wantLog) {
				t.Errorf("callbacks = %v, want %v", log, tt.wantLog)
			}
			if b.State() != tt.wantState {
				t.Errorf("State() = %v, want %v", b.State(), tt.wantState)
			}
		})
	}
}

func TestButtonSystemAddRemove(t *testing.T) {
	var log []string
	a := newTrackedButton(&log)
	b := newTrackedButton(&log)

	sys := NewButtonSystem(&fakeCursor{x: 100, y: 100})
	sys.Add(a, b)
	held := sys.Buttons()
	if len(held) != 2 {
		t.Fatalf("len(Buttons()) = %d, want 2", len(held))
	}

	if !sys.Remove(a) {
		t.Error("Remove(a) = false, want true")
	}
	if sys.Remove(a) {
		t.Error("second Remove(a) = true, want false")
	}

	// 之前取得的切片不受 Remove 影响
	if held[0] != a || held[1] != b {
		t.Error("Remove modified a slice previously returned by Buttons()")
	}
	if got := sys.Buttons(); len(got) != 1 || got[0] != b {
		t.Errorf("Buttons() after Remove = %v, want [b]", got)
	}

	sys.Update()
	if a.State() != button.StateMain {
		t.Error("removed button should not be updated")
	}
	if b.State() != button.StateHover {
		t.Errorf("remaining button State() = %v, want HOVER", b.State())
	}
}

func TestDrawButtons(t *testing.T) {
	var log []string
	buttons := []*button.Button{newTrackedButton(&log), newTrackedButton(&log)}

	r := canvas.NewRecorder()
	DrawButtons(r, buttons)

	// 每个按钮：FillRect、StrokeRect、FillText
	if got := len(r.Draws()); got != 6 {
		t.Errorf("len(Draws()) = %d, want 6", got)
	}
	if r.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0", r.Depth())
	}
	if len(log) != 0 {
		t.Errorf("drawing fired callbacks: %v", log)
	}
}
