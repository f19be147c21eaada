// pkg/render/engo/assets.go
package engo

import (
	"context"
	"image"
	"image/color"

	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-spacewarriors/pkg/entity"
	"github.com/opd-ai/go-spacewarriors/pkg/logging"
)

// Loader produces the sprite for an entity kind.
type Loader func(kind entity.Kind) (common.Drawable, error)

// AssetCache hands out one sprite per entity kind. The loader runs at most
// once per kind, on first use; a failed load is replaced by a primitive
// shape for the rest of the session.
type AssetCache struct {
	loader  Loader
	logger  *logging.Logger
	sprites map[entity.Kind]common.Drawable
	loads   int
}

// NewAssetCache creates a cache backed by loader. A nil loader uses
// GeneratedSprite, which needs a GL context.
func NewAssetCache(loader Loader, logger *logging.Logger) *AssetCache {
	if loader == nil {
		loader = GeneratedSprite
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &AssetCache{
		loader:  loader,
		logger:  logger,
		sprites: make(map[entity.Kind]common.Drawable),
	}
}

// Get returns the sprite for kind, loading it on first use.
func (ac *AssetCache) Get(kind entity.Kind) common.Drawable {
	if sprite, ok := ac.sprites[kind]; ok {
		return sprite
	}

	ac.loads++
	sprite, err := ac.loader(kind)
	if err != nil || sprite == nil {
		ac.logger.Warn(context.Background(), "sprite unavailable, using fallback shape",
			"kind", kind.String(),
			"error", err,
		)
		sprite = FallbackShape(kind)
	}
	ac.sprites[kind] = sprite
	return sprite
}

// Loads returns how many times the loader has been called.
func (ac *AssetCache) Loads() int {
	return ac.loads
}

// FallbackShape returns the primitive drawn when a sprite cannot be loaded.
// Shapes take their size from the space component.
func FallbackShape(kind entity.Kind) common.Drawable {
	switch kind {
	case entity.KindPlayer:
		return common.Triangle{}
	case entity.KindPowerup, entity.KindStar:
		return common.Circle{}
	default:
		return common.Rectangle{}
	}
}

// Sprite patterns, one string per row. '#' is an opaque pixel.
var spritePatterns = map[entity.Kind][]string{
	entity.KindPlayer: {
		"##..............",
		"#####...........",
		".########.......",
		"..############..",
		"..##############",
		"..############..",
		".########.......",
		"#####...........",
		"##..............",
	},
	entity.KindEnemy: {
		"....######....",
		"..##########..",
		"##############",
		"###..####..###",
		"##############",
		"..##########..",
		"....######....",
	},
	entity.KindProjectile: {
		"########",
		"########",
	},
	entity.KindPowerup: {
		"..####..",
		".######.",
		"########",
		"########",
		"########",
		"########",
		".######.",
		"..####..",
	},
	entity.KindStar: {
		".#.",
		"###",
		".#.",
	},
}

// PatternImage rasterises a sprite pattern in white so render components
// can tint it.
func PatternImage(pattern []string) *image.NRGBA {
	width := 0
	for _, row := range pattern {
		width = max(width, len(row))
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, len(pattern)))
	for y, row := range pattern {
		for x, pixel := range row {
			if pixel == '#' {
				img.Set(x, y, color.White)
			}
		}
	}
	return img
}

// GeneratedSprite uploads the built-in pattern for kind as a texture.
func GeneratedSprite(kind entity.Kind) (common.Drawable, error) {
	pattern, ok := spritePatterns[kind]
	if !ok {
		return nil, &MissingSpriteError{Kind: kind}
	}
	texture := common.NewTextureSingle(common.NewImageObject(PatternImage(pattern)))
	return texture, nil
}

// MissingSpriteError reports a kind with no built-in pattern
type MissingSpriteError struct {
	Kind entity.Kind
}

func (e *MissingSpriteError) Error() string {
	return "no sprite pattern for " + e.Kind.String()
}
