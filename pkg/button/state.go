package button

import "fmt"

// State 按钮交互状态
type State int

const (
	// StateMain 默认（空闲）状态
	StateMain State = iota
	// StateHover 鼠标悬停
	StateHover
	// StateClick 被点击
	StateClick
)

func (s State) String() string {
	switch s {
	case StateMain:
		return "MAIN"
	case StateHover:
		return "HOVER"
	case StateClick:
		return "CLICK"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}
