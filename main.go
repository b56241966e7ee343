package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/shatterbox/config"
	"github.com/automoto/shatterbox/fonts"
	"github.com/automoto/shatterbox/scenes"
	"github.com/automoto/shatterbox/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadDefaults()

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewPuzzleSceneForRoom(g, config.Debug.Room)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	skipMenu := flag.Bool("skip-menu", false, "Skip the menu and load a room directly")
	room := flag.String("room", "", "Room to load with -skip-menu (empty = first)")
	showDebug := flag.Bool("debug", false, "Start with the physics overlay visible")
	flag.Parse()

	config.Debug.SkipMenu = *skipMenu
	config.Debug.Room = *room
	config.Debug.ShowDebug = *showDebug

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
