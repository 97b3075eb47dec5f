package window

import (
	"os"
	"path/filepath"

	_ "image/gif" // Sprite decoder

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Sprite file names looked up in the assets directory.
const (
	PlayerSprite = "robo.gif"
	EnemySprite  = "enemy.gif"
)

// Sprites holds the optional entity images. A nil image means the
// entity is drawn as a rectangle in its fallback color.
type Sprites struct {
	Player *ebiten.Image
	Enemy  *ebiten.Image
}

// LoadSprites reads the sprites from dir. Missing or unreadable files are
// not an error.
func LoadSprites(dir string, logger *log.Logger) Sprites {
	return Sprites{
		Player: loadSprite(filepath.Join(dir, PlayerSprite), logger),
		Enemy:  loadSprite(filepath.Join(dir, EnemySprite), logger),
	}
}

func loadSprite(path string, logger *log.Logger) *ebiten.Image {
	if _, err := os.Stat(path); err != nil {
		logger.Debug("sprite not found, using fallback color", "path", path)
		return nil
	}
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		logger.Warn("could not load sprite", "path", path, "error", err)
		return nil
	}
	return img
}
