package ebitenhost

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/ballgame/ecs"
	"github.com/plus3/ballgame/internal/asset"
	"github.com/plus3/ballgame/internal/render"
	"github.com/plus3/ballgame/internal/window"
)

var (
	ClearColor       = color.RGBA{43, 43, 43, 255}
	PlaceholderColor = color.RGBA{66, 135, 245, 255}
)

// ImageLoader decodes image files into ebiten images.
type ImageLoader struct{}

func (ImageLoader) Load(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Screen is the singleton holding the image being drawn this frame.
type Screen struct {
	*ebiten.Image
}

// SpriteSystem clears the screen and draws every sprite. Images that fail
// to load are drawn as filled circles.
type SpriteSystem struct {
	Images *asset.Cache[*ebiten.Image]

	Screen  ecs.Singleton[Screen]
	Window  ecs.Singleton[window.Primary]
	Assets  ecs.Singleton[asset.Catalog]
	Cameras ecs.Query[render.CameraView]
	Sprites ecs.Query[render.SpriteView]
}

func (s *SpriteSystem) Execute(frame *ecs.UpdateFrame) {
	screen := s.Screen.MustGet().Image
	if screen == nil {
		return
	}
	screen.Fill(ClearColor)

	proj, ok := render.CameraProjection(&s.Cameras, s.Window.MustGet())
	if !ok {
		return
	}
	catalog := s.Assets.MustGet()

	for sprite := range s.Sprites.Values() {
		box := proj.Box(sprite.Translation.XY(), sprite.Size)

		img, err := s.Images.Get(catalog, sprite.Image)
		if err != nil || img == nil {
			vector.DrawFilledCircle(screen, box.X+box.W/2, box.Y+box.H/2, sprite.Size/2, PlaceholderColor, true)
			continue
		}

		bounds := img.Bounds()
		opts := &ebiten.DrawImageOptions{}
		opts.GeoM.Scale(float64(box.W)/float64(bounds.Dx()), float64(box.H)/float64(bounds.Dy()))
		opts.GeoM.Translate(float64(box.X), float64(box.Y))
		opts.Filter = ebiten.FilterLinear
		screen.DrawImage(img, opts)
	}
}
