package main

import (
	"errors"
	"flag"
	"image"
	"image/color"
	"log"

	"github.com/decker502/core2d/pkg/button"
	"github.com/decker502/core2d/pkg/canvas/ebitencanvas"
	"github.com/decker502/core2d/pkg/config"
	"github.com/decker502/core2d/pkg/store"
	"github.com/decker502/core2d/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
)

var (
	configPath = flag.String("config", "", "按钮配置文件路径（为空时使用内置配置）")
	fontPath   = flag.String("font", "", "注册为 Helvetica 的字体文件（可选）")
	verbose    = flag.Bool("verbose", false, "详细日志")
)

// errQuit 由 quit 动作触发，结束游戏循环
var errQuit = errors.New("quit requested")

// Game 按钮演示程序
// 实现 ebiten.Game 接口
type Game struct {
	cfg     *config.ButtonsConfig
	buttons []*config.NamedButton
	store   *store.StateStore

	input  *systems.ButtonSystem
	render *systems.ButtonRenderSystem

	// checker 切换图片模式时使用的图片
	checker image.Image
	clicks  int
	quit    bool
}

// NewGame 根据按钮配置创建演示程序
//
// 参数：
//   - cfg: 按钮配置，按钮外观始终以它为准
//   - st: 运行时状态存储，已保存的图片模式会在创建后恢复
//   - cursor: 光标输入源
//   - fonts: 字体注册表，可为 nil
func NewGame(cfg *config.ButtonsConfig, st *store.StateStore, cursor systems.CursorSource, fonts *ebitencanvas.FontRegistry) (*Game, error) {
	g := &Game{
		cfg:     cfg,
		store:   st,
		input:   systems.NewButtonSystem(cursor),
		render:  systems.NewButtonRenderSystem(fonts),
		checker: newChecker(32, 8),
	}

	buttons, err := cfg.Build(g.actions(), nil)
	if err != nil {
		return nil, err
	}
	g.buttons = buttons

	for _, nb := range buttons {
		g.input.Add(nb.Button)
	}

	g.restoreState()
	return g, nil
}

// restoreState 恢复已保存的按钮运行时状态
func (g *Game) restoreState() {
	restored := 0
	for _, nb := range g.buttons {
		state, ok, err := g.store.Load(nb.Name)
		if err != nil {
			log.Printf("[Game] Warning: %v", err)
			continue
		}
		if !ok || !state.ImageMode {
			continue
		}
		g.setImageMode(nb, true)
		restored++
	}
	if restored > 0 {
		log.Printf("[Game] Restored image mode for %d buttons", restored)
	}
}

func (g *Game) actions() config.Actions {
	return config.Actions{
		"count": func() {
			g.clicks++
			log.Printf("[Game] Clicked %d times", g.clicks)
		},
		"hover_log": func() {
			log.Printf("[Game] Hovering")
		},
		"toggle_image": g.toggleImage,
		"save":         g.saveAll,
		"quit": func() {
			g.quit = true
		},
	}
}

// find 按名称查找按钮
func (g *Game) find(name string) *config.NamedButton {
	for _, nb := range g.buttons {
		if nb.Name == name {
			return nb
		}
	}
	return nil
}

// toggleImage 在颜色模式和图片模式之间切换 count 按钮
func (g *Game) toggleImage() {
	nb := g.find("count")
	if nb == nil {
		return
	}
	g.setImageMode(nb, !nb.Button.IsImage())
}

// setImageMode 以配置文件中的按钮配置重建按钮，on 时使用棋盘格图片
func (g *Game) setImageMode(nb *config.NamedButton, on bool) {
	cfg, err := nb.Spec.ToConfig(g.actions(), nil)
	if err != nil {
		log.Printf("[Game] Warning: %v", err)
		return
	}
	if on {
		cfg.Image = g.checker
	}
	nb.Button.Modify(cfg, g.cfg.ViewportSize())
}

// saveAll 保存所有按钮的运行时状态
func (g *Game) saveAll() {
	for _, nb := range g.buttons {
		state := store.ButtonState{ImageMode: nb.Button.IsImage()}
		if err := g.store.Save(nb.Name, state); err != nil {
			log.Printf("[Game] Warning: %v", err)
		}
	}
}

// Update 更新按钮输入
func (g *Game) Update() error {
	g.input.Update()
	if g.quit {
		return errQuit
	}
	return nil
}

// Draw 渲染所有按钮
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x1E, G: 0x24, B: 0x2B, A: 0xFF})
	g.render.Draw(screen, g.input.Buttons())
}

// Layout 返回配置中的视口尺寸
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	vp := g.cfg.ViewportSize()
	if vp.Width <= 0 || vp.Height <= 0 {
		return outsideWidth, outsideHeight
	}
	return int(vp.Width), int(vp.Height)
}

// newChecker 生成棋盘格图片
func newChecker(size, cell int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	light := color.RGBA{R: 0xEF, G: 0xEC, B: 0xDE, A: 0xFF}
	dark := color.RGBA{R: 0x4C, G: 0x6B, B: 0x88, A: 0xFF}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.Set(x, y, light)
			} else {
				img.Set(x, y, dark)
			}
		}
	}
	return img
}

func loadButtonsConfig(path string) (*config.ButtonsConfig, error) {
	if path == "" {
		return config.ParseButtonsConfig(defaultButtonsYAML)
	}
	return config.LoadButtonsConfig(path)
}

func main() {
	flag.Parse()

	if *verbose {
		log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	}

	cfg, err := loadButtonsConfig(*configPath)
	if err != nil {
		log.Fatalf("[Main] Failed to load buttons config: %v", err)
	}

	fonts, err := ebitencanvas.NewFontRegistry()
	if err != nil {
		log.Fatalf("[Main] Failed to create font registry: %v", err)
	}
	if *fontPath != "" {
		if err := fonts.LoadFile(button.DefaultTextFont, *fontPath); err != nil {
			log.Printf("[Main] Warning: %v (using built-in font)", err)
		}
	}

	// gdata 不可用时降级为内存存储
	gdataManager, err := gdata.Open(gdata.Config{
		AppName: "core2d_button_demo",
	})
	if err != nil {
		log.Printf("[Main] Warning: Failed to open gdata: %v", err)
		gdataManager = nil
	}

	game, err := NewGame(cfg, store.NewStateStore(gdataManager), systems.EbitenCursor{}, fonts)
	if err != nil {
		log.Fatalf("[Main] Failed to create game: %v", err)
	}

	if vp := cfg.ViewportSize(); vp.Width > 0 && vp.Height > 0 {
		ebiten.SetWindowSize(int(vp.Width), int(vp.Height))
	}
	ebiten.SetWindowTitle("Core2D Button Demo")

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, errQuit) {
		log.Fatal(err)
	}
}
