// Command glimmer runs the firefly puzzle game.
//
// Controls: drag fireflies along their tracks and tracks across the
// board with the mouse; space starts and stops a run; hold backquote for
// slow motion or 1 for fast forward; F3 toggles the stats overlay.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mirrorpond/glimmer"
)

func main() {
	level := flag.Int("level", 0, "index of the level to play")
	mute := flag.Bool("mute", false, "disable audio")
	flag.Parse()

	if *level < 0 || *level >= len(glimmer.Levels) {
		log.Fatalf("level %d out of range (have %d levels)", *level, len(glimmer.Levels))
	}

	game, err := glimmer.NewGame(glimmer.Levels[*level])
	if err != nil {
		log.Fatalf("build level: %v", err)
	}
	if !*mute {
		if err := game.InitAudio(); err != nil {
			log.Printf("audio unavailable: %v", err)
		}
	}

	ebiten.SetWindowTitle("glimmer: " + glimmer.Levels[*level].Title)
	ebiten.SetWindowSize(game.Layout(0, 0))
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
