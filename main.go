package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"dodgecircles/game"
	"dodgecircles/sim"
)

func main() {
	width := flag.Int("width", 1024, "window width in pixels")
	height := flag.Int("height", 768, "window height in pixels")
	seed := flag.Int64("seed", 1, "random seed")
	maxObjects := flag.Int("max-objects", sim.InitialMaxObjects, "initial population ceiling")
	noCache := flag.Bool("no-cache", false, "disable the precomputed pattern cache")
	adaptive := flag.Bool("adaptive", false, "lower the population ceiling when the frame rate drops")
	profile := flag.Bool("profile", false, "capture a CPU profile and trace on frame rate drops")
	mute := flag.Bool("mute", false, "start with sound off")
	flag.Parse()

	config := game.DefaultConfig()
	config.Sim = sim.NewConfig(*width, *height)
	config.Sim.Seed = *seed
	config.Sim.MaxObjects = *maxObjects
	config.Patterns = !*noCache
	config.Adaptive = *adaptive
	config.Profile = *profile
	config.Mute = *mute

	g, err := game.NewGame(config)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	ebiten.SetWindowSize(config.ScreenSize())
	ebiten.SetWindowTitle("Dodge the Circles")

	err = ebiten.RunGame(g)
	g.Close()
	if err != nil {
		log.Fatal(err)
	}
}
