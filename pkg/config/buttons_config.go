package config

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	"github.com/decker502/core2d/pkg/button"
	"gopkg.in/yaml.v3"
)

// ButtonsConfig 按钮配置文件
//
// 配置文件示例（data/buttons.yaml）：
//
//	viewport:
//	  width: 800
//	  height: 600
//	buttons:
//	  - name: start
//	    center: {x: 400, y: 260}
//	    size: {width: 160, height: 40}
//	    text: {string: "Start"}
//	    callbacks: {onClick: start}
type ButtonsConfig struct {
	// Viewport 视口尺寸，用于未指定中心点的按钮
	Viewport ViewportSpec `yaml:"viewport"`

	// Buttons 按钮列表，按渲染顺序排列
	Buttons []ButtonSpec `yaml:"buttons"`
}

// ViewportSpec 视口尺寸
type ViewportSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ButtonSpec 单个按钮的配置
//
// 除 Name 外所有字段可省略，省略的字段使用按钮默认值。
type ButtonSpec struct {
	// Name 按钮名称，配置内唯一
	Name string `yaml:"name"`

	Center button.PointConfig   `yaml:"center,omitempty"`
	Size   button.SizeConfig    `yaml:"size,omitempty"`
	Color  button.PaletteConfig `yaml:"color,omitempty"`
	Hover  button.PaletteConfig `yaml:"hover,omitempty"`
	Text   button.TextConfig    `yaml:"text,omitempty"`

	// Image 图片路径，设置后按钮以图片模式渲染
	Image string `yaml:"image,omitempty"`

	// Callbacks 各状态触发的动作名
	Callbacks CallbackSpec `yaml:"callbacks,omitempty"`
}

// CallbackSpec 动作名称，通过 Actions 解析为回调函数
type CallbackSpec struct {
	OnHover string `yaml:"onHover,omitempty"`
	OnMain  string `yaml:"onMain,omitempty"`
	OnClick string `yaml:"onClick,omitempty"`
}

// Actions 动作名到回调函数的映射
type Actions map[string]func()

// ImageLoader 按路径加载图片
type ImageLoader func(path string) (image.Image, error)

// LoadButtonsConfig 从 YAML 文件加载按钮配置
//
// 参数:
//   - path: 配置文件路径（如 "data/buttons.yaml"）
//
// 返回:
//   - *ButtonsConfig: 加载成功后的配置结构
//   - error: 读取、解析或验证失败时返回错误
func LoadButtonsConfig(path string) (*ButtonsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read buttons config: %w", err)
	}
	return ParseButtonsConfig(data)
}

// ParseButtonsConfig 从 YAML 数据解析按钮配置
func ParseButtonsConfig(data []byte) (*ButtonsConfig, error) {
	var config ButtonsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse buttons config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid buttons config: %w", err)
	}

	return &config, nil
}

// Validate 验证配置有效性
//
// 只检查按钮名称（非空且唯一）和视口尺寸（非负），
// 按钮的外观字段不做校验，原样交给按钮。
func (c *ButtonsConfig) Validate() error {
	if c.Viewport.Width < 0 || c.Viewport.Height < 0 {
		return fmt.Errorf("viewport size must not be negative: %.1fx%.1f",
			c.Viewport.Width, c.Viewport.Height)
	}

	seen := make(map[string]bool, len(c.Buttons))
	for i, b := range c.Buttons {
		if b.Name == "" {
			return fmt.Errorf("button %d has no name", i)
		}
		if seen[b.Name] {
			return fmt.Errorf("duplicate button name %q", b.Name)
		}
		seen[b.Name] = true
	}

	return nil
}

// ViewportSize 返回按钮使用的视口
func (c *ButtonsConfig) ViewportSize() button.Viewport {
	return button.Viewport{Width: c.Viewport.Width, Height: c.Viewport.Height}
}

// Find 按名称查找按钮配置
func (c *ButtonsConfig) Find(name string) (*ButtonSpec, bool) {
	for i := range c.Buttons {
		if c.Buttons[i].Name == name {
			return &c.Buttons[i], true
		}
	}
	return nil, false
}

// ToConfig 将按钮配置转换为 button.Config
//
// 未注册的动作名会打印警告并使用默认回调。
// images 为 nil 时使用 LoadImageFile。
func (s ButtonSpec) ToConfig(actions Actions, images ImageLoader) (button.Config, error) {
	cfg := button.Config{
		Center: s.Center,
		Size:   s.Size,
		Color:  s.Color,
		Hover:  s.Hover,
		Text:   s.Text,
		Callbacks: button.Callbacks{
			OnHover: s.lookup(actions, s.Callbacks.OnHover),
			OnMain:  s.lookup(actions, s.Callbacks.OnMain),
			OnClick: s.lookup(actions, s.Callbacks.OnClick),
		},
	}

	if s.Image != "" {
		if images == nil {
			images = LoadImageFile
		}
		img, err := images(s.Image)
		if err != nil {
			return button.Config{}, fmt.Errorf("failed to load image for button %q: %w", s.Name, err)
		}
		cfg.Image = img
	}

	return cfg, nil
}

func (s ButtonSpec) lookup(actions Actions, name string) func() {
	if name == "" {
		return nil
	}
	fn, ok := actions[name]
	if !ok {
		log.Printf("[ButtonsConfig] Warning: button %q references unknown action %q (using default)", s.Name, name)
		return nil
	}
	return fn
}

// NamedButton 由配置创建的按钮
type NamedButton struct {
	Name   string
	Spec   ButtonSpec
	Button *button.Button
}

// Build 按配置顺序创建所有按钮
func (c *ButtonsConfig) Build(actions Actions, images ImageLoader) ([]*NamedButton, error) {
	vp := c.ViewportSize()
	buttons := make([]*NamedButton, 0, len(c.Buttons))

	for _, spec := range c.Buttons {
		cfg, err := spec.ToConfig(actions, images)
		if err != nil {
			return nil, err
		}
		buttons = append(buttons, &NamedButton{
			Name:   spec.Name,
			Spec:   spec,
			Button: button.New(cfg, vp),
		})
	}

	return buttons, nil
}

// LoadImageFile 从文件解码 PNG/JPEG 图片
func LoadImageFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	return img, nil
}
