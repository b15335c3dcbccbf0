// Package store 持久化按钮的运行时状态
//
// 使用 gdata 跨平台存储，每个按钮的状态以 YAML 保存为 "button_state"
// 对象下的一个属性。按钮外观始终来自配置文件，这里只保存运行时
// 产生、配置文件里没有的状态。gdata 不可用时降级为仅内存存储。
package store

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 存储路径常量
const buttonStateObject = "button_state"

// ButtonState 按钮的运行时状态
type ButtonState struct {
	// ImageMode 按钮是否切换到了图片模式
	ImageMode bool `yaml:"imageMode"`
}

// StateStore 按钮状态存储
type StateStore struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式）

	// memory 降级模式下的内存存储，同时作为读缓存
	memory map[string]ButtonState
}

// NewStateStore 创建按钮状态存储
//
// 参数：
//   - gdataManager: gdata 存储管理器，可为 nil（降级模式，仅内存）
func NewStateStore(gdataManager *gdata.Manager) *StateStore {
	if gdataManager == nil {
		log.Printf("[StateStore] Warning: gdata manager not available, button state will not persist")
	}
	return &StateStore{
		gdataManager: gdataManager,
		memory:       make(map[string]ButtonState),
	}
}

// Persistent 是否会写入持久化存储
func (s *StateStore) Persistent() bool {
	return s.gdataManager != nil
}

// Save 保存按钮状态，name 为按钮名称
func (s *StateStore) Save(name string, state ButtonState) error {
	if name == "" {
		return fmt.Errorf("failed to save button state: empty name")
	}

	s.memory[name] = state

	if s.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal button state %q: %w", name, err)
	}

	if err := s.gdataManager.SaveObjectProp(buttonStateObject, name, data); err != nil {
		return fmt.Errorf("failed to save button state %q: %w", name, err)
	}

	log.Printf("[StateStore] Saved button state %q", name)
	return nil
}

// Load 读取按钮状态
//
// 返回：
//   - ButtonState: 保存的状态
//   - bool: 是否存在
//   - error: 读取或反序列化失败
func (s *StateStore) Load(name string) (ButtonState, bool, error) {
	if state, ok := s.memory[name]; ok {
		return state, true, nil
	}

	if s.gdataManager == nil || !s.gdataManager.ObjectPropExists(buttonStateObject, name) {
		return ButtonState{}, false, nil
	}

	data, err := s.gdataManager.LoadObjectProp(buttonStateObject, name)
	if err != nil {
		return ButtonState{}, false, fmt.Errorf("failed to load button state %q: %w", name, err)
	}

	var state ButtonState
	if err := yaml.Unmarshal(data, &state); err != nil {
		return ButtonState{}, false, fmt.Errorf("failed to unmarshal button state %q: %w", name, err)
	}

	s.memory[name] = state
	return state, true, nil
}
