package main

import (
	"flag"
	"os"

	cfg "github.com/automoto/doomerang-kinetics/config"
	"github.com/automoto/doomerang-kinetics/levels"
	"github.com/automoto/doomerang-kinetics/scenes"
	"github.com/automoto/doomerang-kinetics/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.Camera.ViewWidth, cfg.Camera.ViewHeight
}

func main() {
	tuningPath := flag.String("tuning", "", "YAML file overriding the default tuning")
	saveTuning := flag.Bool("save-tuning", false, "persist the resulting tuning for the next run")
	course := flag.String("course", levels.Training, "course file inside the embedded levels")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		logger = zap.NewNop()
	}
	defer func() { _ = logger.Sync() }()
	systems.SetLogger(logger)

	// Saved tuning first, then the file on top of it
	if err := systems.InitPersistence(); err == nil {
		if saved, err := systems.LoadSavedTuning(); err == nil && saved != nil {
			saved.Apply()
			logger.Info("loaded saved tuning")
		}
	}

	if *tuningPath != "" {
		tuning, err := loadTuningFile(*tuningPath)
		if err != nil {
			logger.Fatal("could not load tuning", zap.String("path", *tuningPath), zap.Error(err))
		}
		tuning.Apply()
		logger.Info("loaded tuning file", zap.String("path", *tuningPath))
	}

	if *saveTuning {
		if err := systems.SaveTuning(cfg.DefaultTuning()); err != nil {
			logger.Warn("could not save tuning", zap.Error(err))
		}
	}

	ebiten.SetWindowSize(cfg.Camera.ViewWidth*2, cfg.Camera.ViewHeight*2)
	ebiten.SetWindowTitle("doomerang kinetics")
	ebiten.SetTPS(cfg.World.TickRate)

	game := &Game{scene: scenes.NewCourseScene(levels.FS, *course, logger.Named("course"))}
	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game exited", zap.Error(err))
	}
}

func loadTuningFile(path string) (cfg.Tuning, error) {
	f, err := os.Open(path)
	if err != nil {
		return cfg.Tuning{}, err
	}
	defer f.Close()
	return cfg.LoadTuning(f)
}
