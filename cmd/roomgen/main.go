// Command roomgen generates a room layout and prints its placements.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"chosenoffset.com/roomforge/internal/config"
	"chosenoffset.com/roomforge/internal/gamescanner"
	"chosenoffset.com/roomforge/internal/placeholders"
	"chosenoffset.com/roomforge/internal/world/room"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the config file")
	roomFlag := flag.String("room", "", "room file (default: the config's room)")
	seed := flag.Int64("seed", 0, "layout seed, 0 picks one from the clock")
	asJSON := flag.Bool("json", false, "print the layout as JSON")
	list := flag.Bool("list", false, "list room collections under the data directory")
	pngPath := flag.String("png", "", "also write a floor plan image to this file")
	swatchPath := flag.String("swatches", "", "also write the room's prefab swatch sheet to this file")
	flag.Parse()

	opts := options{
		configPath: *configPath,
		roomPath:   *roomFlag,
		seed:       *seed,
		asJSON:     *asJSON,
		list:       *list,
		pngPath:    *pngPath,
		swatchPath: *swatchPath,
	}
	if err := run(os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	roomPath   string
	seed       int64
	asJSON     bool
	list       bool
	pngPath    string
	swatchPath string
	pngScale   float64
}

func run(w io.Writer, opts options) error {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}

	if opts.list {
		return listCollections(w, cfg.DataDir)
	}

	roomPath, seed := opts.roomPath, opts.seed
	if roomPath == "" {
		roomPath = cfg.RoomPath()
	}
	if roomPath == "" {
		if roomPath, err = gamescanner.FirstRoom(cfg.DataDir); err != nil {
			return fmt.Errorf("no room given, use -room or set room in %s: %w", opts.configPath, err)
		}
	}
	rf, err := room.LoadRoomFile(roomPath)
	if err != nil {
		return err
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	layout := room.NewGenerator(rf.Spec, &rf.Pools, rf.Anchor.Transform(), room.NewRand(seed)).Generate()

	if opts.pngPath != "" {
		scale := opts.pngScale
		if scale <= 0 {
			scale = float64(cfg.Window.Scale)
		}
		if err := placeholders.SavePNG(placeholders.Plan(layout.Placements, rf.Prefabs, scale, -1), opts.pngPath); err != nil {
			return err
		}
	}
	if opts.swatchPath != "" {
		if rf.Prefabs == nil {
			return fmt.Errorf("room %s names no prefab catalog", rf.Name)
		}
		if err := placeholders.SavePNG(placeholders.Swatches(rf.Prefabs, 8), opts.swatchPath); err != nil {
			return err
		}
	}

	if opts.asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Room   string `json:"room"`
			Seed   int64  `json:"seed"`
			*room.Layout
		}{rf.Name, seed, layout})
	}
	return printTable(w, rf.Name, seed, layout)
}

func printTable(w io.Writer, name string, seed int64, layout *room.Layout) error {
	fmt.Fprintf(w, "Room %s, seed %d, %dx%d cells, %d storeys\n\n",
		name, seed, layout.Spec.GridX, layout.Spec.GridY, layout.Spec.FloorCount)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tPREFAB\tX\tY\tZ\tYAW")
	for _, p := range layout.Placements {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%.2f\t%.2f\t%.0f\n",
			p.Name, p.Kind, p.Prefab, p.Position.X, p.Position.Y, p.Position.Z, p.Rotation.YawDegrees())
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%d placements:", len(layout.Placements))
	for _, kind := range []room.Kind{room.KindTile, room.KindFirstWall, room.KindWall, room.KindCorner, room.KindHalf, room.KindDoor, room.KindFoundation} {
		if n := layout.Count(kind); n > 0 {
			fmt.Fprintf(w, " %s=%d", kind, n)
		}
	}
	fmt.Fprintln(w)
	return nil
}

func listCollections(w io.Writer, dataDir string) error {
	collections, err := gamescanner.ScanDataDirectory(dataDir)
	if err != nil {
		return err
	}
	for _, c := range collections {
		fmt.Fprintf(w, "%s\n", c.Name)
		for i := range c.Rooms {
			fmt.Fprintf(w, "  room   %s\n", c.RoomPath(i))
		}
		for _, s := range c.Scenes {
			fmt.Fprintf(w, "  scene  %s\n", s)
		}
	}
	return nil
}
