package main

import (
	_ "embed"
	"log"
	"os"

	"github.com/hubastard/ember/engine/assets"
	"github.com/hubastard/ember/engine/core"
	glbackend "github.com/hubastard/ember/engine/gfx/gl"
	"github.com/hubastard/ember/engine/platform"
	"github.com/hubastard/ember/engine/script"
)

//go:embed game.lua
var defaultGame string

func main() {
	cfg, err := core.LoadConfig("ember.yml")
	if err != nil {
		log.Fatal(err)
	}

	source := defaultGame
	if len(os.Args) > 1 {
		source, err = assets.LoadScript(os.Args[1])
		if err != nil {
			log.Fatal(err)
		}
	}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}
	newScript := func(e *core.Engine) (core.Script, error) {
		return script.NewEnv(e, source)
	}

	if err := core.Run(cfg, newWindow, newRenderer, newScript); err != nil {
		log.Fatal(err)
	}
}
