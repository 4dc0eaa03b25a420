// Package glimmer is a puzzle game about fireflies gliding along glowing
// tracks, built on [Ebitengine].
//
// Fireflies are point particles confined to one-dimensional tracks
// (circles and straight segments) laid out on a 2D board. Tracks flagged
// Attract capture a firefly whose step crosses them; tracks flagged
// Return reflect it. Bellflowers are proximity counters that tick down
// when a firefly enters (or, for the delayed variant, lingers inside)
// their radius. The player arranges fireflies and tracks while the
// simulation is stopped, then starts a run and watches.
//
// # Structure
//
// The simulation core ([Track], [Firefly], [Bellflower], [Board]) is
// plain Go with no rendering dependencies; [Board.Step] advances the
// world by fixed sub-steps and [Board.PointerDown], [Board.PointerMove],
// and [Board.PointerUp] implement the editor drag protocol in board
// coordinates.
//
// [Game] wraps a Board in an [ebiten.Game]: it maps mouse input through a
// [View] transform, drives the sub-step batch each frame, and renders the
// board with an additive bloom pass. Levels are declared as [Level]
// values and validated by [Level.Build]; the shipped puzzles live in
// [Levels].
//
// A minimal main:
//
//	game, err := glimmer.NewGame(glimmer.Levels[0])
//	if err != nil {
//		log.Fatal(err)
//	}
//	ebiten.SetWindowSize(game.Layout(0, 0))
//	if err := ebiten.RunGame(game); err != nil {
//		log.Fatal(err)
//	}
//
// [Ebitengine]: https://ebitengine.org
package glimmer
