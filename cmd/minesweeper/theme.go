package main

import "image/color"

func rgb(r, g, b uint8) color.Color {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

type theme struct {
	BG           color.Color
	Grid         color.Color
	CellRevealed color.Color
	Light        color.Color
	Dark         color.Color
	Text         color.Color
	Mine         color.Color
	Flag         color.Color
	WrongFlag    color.Color
	Overlay      color.Color
	Win          color.Color
	Loss         color.Color
	White        color.Color
}

var classic = theme{
	BG:           rgb(192, 192, 192),
	Grid:         rgb(128, 128, 128),
	CellRevealed: rgb(212, 212, 212),
	Light:        rgb(255, 255, 255),
	Dark:         rgb(128, 128, 128),
	Text:         rgb(0, 0, 0),
	Mine:         rgb(255, 0, 0),
	Flag:         rgb(255, 255, 0),
	WrongFlag:    rgb(210, 20, 20),
	Overlay:      color.RGBA{A: 128},
	Win:          rgb(0, 255, 0),
	Loss:         rgb(255, 0, 0),
	White:        rgb(255, 255, 255),
}

var numberColors = []color.Color{
	color.RGBA{},
	rgb(25, 25, 220),
	rgb(0, 130, 0),
	rgb(210, 20, 20),
	rgb(0, 0, 135),
	rgb(130, 0, 0),
	rgb(0, 128, 128),
	rgb(0, 0, 0),
	rgb(110, 110, 110),
}
