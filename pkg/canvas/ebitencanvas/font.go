package ebitencanvas

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type faceKey struct {
	family string
	size   float64
}

// FontRegistry 按字体族名管理字体源，并缓存各字号的字体
//
// 未注册的字体族使用内置的 Go Regular 字体。
type FontRegistry struct {
	sources  map[string]*text.GoTextFaceSource
	fallback *text.GoTextFaceSource
	faces    map[faceKey]*text.GoTextFace
}

// NewFontRegistry 创建字体注册表，加载内置后备字体
func NewFontRegistry() (*FontRegistry, error) {
	fallback, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create fallback font source: %w", err)
	}

	return &FontRegistry{
		sources:  make(map[string]*text.GoTextFaceSource),
		fallback: fallback,
		faces:    make(map[faceKey]*text.GoTextFace),
	}, nil
}

// Register 注册字体族（名称大小写不敏感），覆盖同名字体
func (r *FontRegistry) Register(family string, source *text.GoTextFaceSource) {
	family = normalizeFamily(family)
	r.sources[family] = source

	for k := range r.faces {
		if k.family == family {
			delete(r.faces, k)
		}
	}
}

// LoadFile 从 TTF/OTF 文件加载字体并注册为 family
func (r *FontRegistry) LoadFile(family, path string) error {
	fontData, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read font file %s: %w", path, err)
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return fmt.Errorf("failed to create font source for %s: %w", path, err)
	}

	r.Register(family, source)
	return nil
}

// Has 字体族是否已注册
func (r *FontRegistry) Has(family string) bool {
	_, ok := r.sources[normalizeFamily(family)]
	return ok
}

// Face 返回指定字体族和字号的字体
func (r *FontRegistry) Face(family string, size float64) *text.GoTextFace {
	key := faceKey{family: normalizeFamily(family), size: size}
	if face, ok := r.faces[key]; ok {
		return face
	}

	source, ok := r.sources[key.family]
	if !ok {
		source = r.fallback
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	r.faces[key] = face
	return face
}

func normalizeFamily(family string) string {
	return strings.ToLower(strings.TrimSpace(family))
}
