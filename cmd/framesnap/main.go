// Command framesnap renders frames sketches to image and vector files.
//
//	framesnap -o minimap.png -s tour.json -t 30 minimap
//	framesnap list
//	framesnap tree scene-graph
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/tdewolff/argp"

	"github.com/visualcomputing/frames"
	"github.com/visualcomputing/frames/sketches"
	"github.com/visualcomputing/frames/snapshot"
)

type Snap struct {
	Output  string `short:"o" default:"" desc:"Output file; the extension selects the format (png, svg, pdf, ...)"`
	Config  string `short:"c" default:"" desc:"TOML config file"`
	Script  string `short:"s" default:"" desc:"JSON input script to play before rendering"`
	Ticks   int    `short:"t" default:"1" desc:"Number of ticks to run; a script extends this until it finishes"`
	Verbose bool   `short:"v" desc:"Log per-tick debug output"`
	Sketch  string `index:"0" desc:"Sketch name"`
}

type List struct{}

type Tree struct {
	Config string `short:"c" default:"" desc:"TOML config file"`
	Sketch string `index:"0" desc:"Sketch name"`
}

func main() {
	root := argp.NewCmd(&Snap{}, "Render frames sketches to files")
	root.AddCmd(&List{}, "list", "List sketches")
	root.AddCmd(&Tree{}, "tree", "Print a sketch's frame tree")
	root.Parse()
	root.PrintHelp()
}

func loadConfig(path string) (frames.Config, error) {
	if path == "" {
		return frames.DefaultConfig(), nil
	}
	return frames.LoadConfig(path)
}

func newScene(name, cfgPath string, debug bool) (*frames.Scene, error) {
	sk, err := sketches.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("%w (have %s)", err, strings.Join(sketches.Names(), ", "))
	}
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return nil, err
	}
	cfg.Debug = cfg.Debug || debug
	return frames.NewScene(sk, cfg)
}

func (cmd *Snap) Run() error {
	if cmd.Sketch == "" {
		return argp.ShowUsage
	}
	if cmd.Output == "" {
		cmd.Output = cmd.Sketch + ".png"
	}

	scene, err := newScene(cmd.Sketch, cmd.Config, cmd.Verbose)
	if err != nil {
		return err
	}
	if cmd.Verbose {
		scene.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if cmd.Script != "" {
		runner, err := frames.LoadScriptFile(cmd.Script)
		if err != nil {
			return err
		}
		scene.SetScriptRunner(runner)
	}
	if err := snapshot.Write(cmd.Output, scene, cmd.Ticks); err != nil {
		return err
	}
	fmt.Println(cmd.Output)
	return nil
}

func (cmd *List) Run() error {
	for _, name := range sketches.Names() {
		sk, _ := sketches.Lookup(name)
		w, h := sk.Size()
		fmt.Printf("%-12s %dx%d\n", name, w, h)
	}
	return nil
}

func (cmd *Tree) Run() error {
	if cmd.Sketch == "" {
		return argp.ShowUsage
	}
	scene, err := newScene(cmd.Sketch, cmd.Config, false)
	if err != nil {
		return err
	}
	rooted, ok := scene.Sketch().(sketches.Rooted)
	if !ok {
		return fmt.Errorf("sketch %q has no frame tree", cmd.Sketch)
	}
	return frames.DumpTree(os.Stdout, rooted.Root())
}
