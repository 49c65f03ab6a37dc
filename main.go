package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"stationhud/pkg/engine/input"
	"stationhud/pkg/game/config"
	"stationhud/pkg/game/gameplay"
	"stationhud/pkg/game/renderer"
	"stationhud/pkg/game/renderer/cell"
	"stationhud/pkg/game/renderer/ebiten"
	"stationhud/pkg/game/renderer/tui"
	"stationhud/pkg/game/state"
	"stationhud/pkg/game/texts"
)

func loadConfig(path string) *config.HUDConfig {
	if path == "" {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("Cannot load HUD config: %v", err)
	}
	return cfg
}

func loadTexts(lang, poPath string) *texts.Texts {
	var (
		tx  *texts.Texts
		err error
	)
	if poPath != "" {
		tx, err = texts.LoadFile(poPath)
	} else {
		tx, err = texts.Load(lang)
	}
	if err != nil {
		log.Fatalf("Cannot load text catalog: %v", err)
	}
	return tx
}

// runLoop steps g at tps with the intents from src and redraws after every
// step, until the player quits.
func runLoop(g *state.Game, src input.Source, tps int) {
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	renderer.RenderFrame(g)
	last := time.Now()
	for now := range ticker.C {
		dt := now.Sub(last).Seconds()
		last = now

		if gameplay.Step(g, input.Drain(src.Intents()), dt) {
			return
		}
		renderer.RenderFrame(g)
	}
}

func main() {
	rendererName := flag.String("renderer", "tui", "rendering backend: tui, cell or ebiten")
	lang := flag.String("lang", texts.DefaultLanguage, "built-in text catalog")
	poPath := flag.String("po", "", "gettext .po catalog to use instead of -lang")
	configPath := flag.String("config", "", "HUD layout YAML file")
	tps := flag.Int("tps", 0, "ticks per second (overrides the HUD config)")
	flag.Parse()

	cfg := loadConfig(*configPath)
	if *tps > 0 {
		cfg.TPS = *tps
	}
	styles, err := cfg.Styles()
	if err != nil {
		log.Fatalf("Cannot build text styles: %v", err)
	}

	tx := loadTexts(*lang, *poPath)
	g := gameplay.BuildGame(tx, styles)

	switch *rendererName {
	case "ebiten":
		r := ebiten.New(cfg.Screen.Width, cfg.Screen.Height, cfg.TPS)
		renderer.SetRenderer(r)
		if err := renderer.Init(); err != nil {
			log.Fatalf("Cannot start renderer: %v", err)
		}
		if err := r.Run(g, gameplay.Step); err != nil {
			log.Fatalf("%v", err)
		}

	case "cell":
		r := cell.New(nil, cfg.Screen.Width, cfg.Screen.Height)
		renderer.SetRenderer(r)
		if err := renderer.Init(); err != nil {
			log.Fatalf("Cannot start renderer: %v", err)
		}
		runLoop(g, r.Input(), cfg.TPS)
		renderer.Close()
		// The screen is gone; say goodbye on the restored terminal
		fmt.Println(tx.Text("GOODBYE"))
		return

	case "tui":
		renderer.SetRenderer(tui.New(cfg.Screen.Width, cfg.Screen.Height))
		if err := renderer.Init(); err != nil {
			log.Fatalf("Cannot start renderer: %v", err)
		}
		src, err := input.NewTerminalSource()
		if err != nil {
			log.Fatalf("Cannot read keyboard: %v", err)
		}
		runLoop(g, src, cfg.TPS)
		if err := src.Close(); err != nil {
			log.Printf("Cannot restore terminal: %v", err)
		}
		renderer.Clear()

	default:
		log.Fatalf("Unknown renderer %q (want tui, cell or ebiten)", *rendererName)
	}

	renderer.ShowMessage(tx.Text("GOODBYE"))
}
