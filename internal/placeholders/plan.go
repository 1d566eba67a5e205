package placeholders

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"sort"

	"chosenoffset.com/roomforge/internal/world/prefab"
	"chosenoffset.com/roomforge/internal/world/room"
)

// SwatchSize is the edge length of one swatch in a catalog sheet
const SwatchSize = 32

// planMargin is the empty border around a plan, in world units
const planMargin = 1.0

// Plan draws placements from above at scale pixels per world unit. World X
// runs right and world -Z runs down, matching the order cells are generated
// in. level picks one wall storey; -1 draws them all.
func Plan(placements []room.Placement, catalog *prefab.Catalog, scale float64, level int) *image.RGBA {
	visible := make([]room.Placement, 0, len(placements))
	for _, p := range placements {
		if p.Group == room.GroupWalls && level >= 0 && p.Level != level {
			continue
		}
		visible = append(visible, p)
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return DrawOrder(visible[i].Kind) < DrawOrder(visible[j].Kind)
	})

	if len(visible) == 0 {
		img := image.NewRGBA(image.Rect(0, 0, 1, 1))
		img.Set(0, 0, Background)
		return img
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	minZ, maxZ := math.Inf(1), math.Inf(-1)
	for _, p := range visible {
		minX = math.Min(minX, p.Position.X)
		maxX = math.Max(maxX, p.Position.X)
		minZ = math.Min(minZ, p.Position.Z)
		maxZ = math.Max(maxZ, p.Position.Z)
	}

	w := int(math.Ceil((maxX - minX + 2*planMargin) * scale))
	h := int(math.Ceil((maxZ - minZ + 2*planMargin) * scale))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{Background}, image.Point{}, draw.Src)

	for _, p := range visible {
		cx := (p.Position.X - minX + planMargin) * scale
		cy := (maxZ - p.Position.Z + planMargin) * scale
		half := Footprint[p.Kind] * scale / 2
		rect := image.Rect(
			int(math.Round(cx-half)), int(math.Round(cy-half)),
			int(math.Round(cx+half)), int(math.Round(cy+half)),
		)
		fill := ColorOf(p, catalog)
		draw.Draw(img, rect, &image.Uniform{fill}, image.Point{}, draw.Src)
		if Outlined(p.Kind) {
			strokeRect(img, rect, Lighten(fill, 0.6))
		}
	}
	return img
}

// Swatches lays out one bordered block per catalog prefab, in name order,
// columns wide. Prefabs without a preview colour use the colour of their
// kind, or grey when the kind is unknown.
func Swatches(catalog *prefab.Catalog, columns int) *image.RGBA {
	names := catalog.Names()
	if columns <= 0 {
		columns = 8
	}
	tiles := make([]*image.RGBA, len(names))
	for i, name := range names {
		def, _ := catalog.Get(name)
		fill, ok := def.RGBA()
		if !ok {
			fill = kindColor(def.Kind)
		}
		tiles[i] = createBorderedTile(fill, Darken(fill, 0.6), 2)
	}
	return createAtlas(tiles, columns)
}

func kindColor(name string) color.RGBA {
	for kind, clr := range KindColors {
		if kind.String() == name {
			return clr
		}
	}
	return color.RGBA{128, 128, 128, 255}
}

func createBorderedTile(fillColor, borderColor color.RGBA, borderWidth int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, SwatchSize, SwatchSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{fillColor}, image.Point{}, draw.Src)
	for i := 0; i < borderWidth; i++ {
		strokeRect(img, img.Bounds().Inset(i), borderColor)
	}
	return img
}

func createAtlas(tiles []*image.RGBA, columns int) *image.RGBA {
	rows := (len(tiles) + columns - 1) / columns
	if rows == 0 {
		rows = 1
	}
	cols := min(columns, max(len(tiles), 1))
	atlas := image.NewRGBA(image.Rect(0, 0, cols*SwatchSize, rows*SwatchSize))

	for i, tile := range tiles {
		x := (i % columns) * SwatchSize
		y := (i / columns) * SwatchSize
		draw.Draw(atlas, image.Rect(x, y, x+SwatchSize, y+SwatchSize), tile, image.Point{}, draw.Src)
	}
	return atlas
}

func strokeRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	if r.Empty() {
		return
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		img.SetRGBA(x, r.Min.Y, c)
		img.SetRGBA(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.SetRGBA(r.Min.X, y, c)
		img.SetRGBA(r.Max.X-1, y, c)
	}
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return file.Close()
}
