package glimmer

import "math"

// Levels is the shipped puzzle set, in play order. Levels are compiled in;
// there is no external level file format.
var Levels = []Level{
	{
		Title: "first light",
		Tracks: []TrackDef{
			{Kind: KindCircle, Origin: Vec2{0, 0}, Radius: 2},
		},
		Fireflies: []FireflyDef{
			{Track: 0, Phase: 0, Speed: 1},
		},
		Bellflowers: []BellflowerDef{
			{Kind: Immediate, Center: Vec2{2, 0}, Radius: 0.8, Count: 3},
		},
	},
	{
		Title: "handoff",
		Tracks: []TrackDef{
			{Kind: KindSegment, Origin: Vec2{-3, 0}, Ext: Vec2{3, 0}},
			{Kind: KindCircle, Origin: Vec2{0, 1.8}, Radius: 2, Flags: Attract},
		},
		Fireflies: []FireflyDef{
			{Track: 0, Phase: 0, Speed: 1},
		},
		Bellflowers: []BellflowerDef{
			{Kind: Immediate, Center: Vec2{0, 3.8}, Radius: 0.8, Count: 2},
		},
	},
	{
		Title: "echo wall",
		Tracks: []TrackDef{
			{Kind: KindCircle, Origin: Vec2{-3, 0}, Radius: 2, Flags: Attract},
			{Kind: KindCircle, Origin: Vec2{3, 0}, Radius: 2, Flags: Attract},
			{Kind: KindSegment, Origin: Vec2{0, 0}, Ext: Vec2{0, 3}, Flags: Return | Fixed},
		},
		Fireflies: []FireflyDef{
			{Track: 0, Phase: 0.25, Speed: 1.2},
		},
		Bellflowers: []BellflowerDef{
			{Kind: Immediate, Center: Vec2{-3, -2}, Radius: 0.7, Count: 2},
			{Kind: Immediate, Center: Vec2{3, 2}, Radius: 0.7, Count: 1},
		},
	},
	{
		Title: "twins",
		Tracks: []TrackDef{
			{Kind: KindCircle, Origin: Vec2{0, 0}, Radius: 3,
				Flags: Fixed, FixAngle: math.Pi / 2},
			{Kind: KindSegment, Origin: Vec2{0, 0}, Ext: Vec2{4, 0}, Flags: Attract},
		},
		Fireflies: []FireflyDef{
			{Track: 0, Phase: 0.125, Speed: 1},
			{Track: 0, Phase: 0.625, Speed: 1},
		},
		Links: [][]int{{0, 1}},
		Bellflowers: []BellflowerDef{
			{Kind: Immediate, Center: Vec2{3, 0}, Radius: 0.7, Count: 2},
			{Kind: Immediate, Center: Vec2{-3, 0}, Radius: 0.7, Count: 2},
		},
	},
	{
		Title: "patience",
		Tracks: []TrackDef{
			{Kind: KindCircle, Origin: Vec2{-2, 0}, Radius: 2.5},
			{Kind: KindCircle, Origin: Vec2{2.5, 0}, Radius: 1.5, Flags: Attract,
				FixCount: 1, FixAngle: math.Pi},
		},
		Fireflies: []FireflyDef{
			{Track: 0, Phase: 0.5, Speed: 0.8},
		},
		Bellflowers: []BellflowerDef{
			{Kind: Delayed, Center: Vec2{2.5, 0}, Radius: 2, Count: 1, Delay: 2},
			{Kind: Immediate, Center: Vec2{-4.5, 0}, Radius: 0.7, Count: 1},
		},
	},
}
