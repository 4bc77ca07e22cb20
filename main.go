package main

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/vinom-labyrinth/api"
	api_i "github.com/beka-birhanu/vinom-labyrinth/api/i"
	mazeapi "github.com/beka-birhanu/vinom-labyrinth/api/maze"
	"github.com/beka-birhanu/vinom-labyrinth/config"
	logger "github.com/beka-birhanu/vinom-labyrinth/infrastruture/log"
	"github.com/beka-birhanu/vinom-labyrinth/service"
	"github.com/beka-birhanu/vinom-labyrinth/service/i"
)

// Global variables for dependencies
var (
	appConfig      config.Config
	appLogger      i.Logger
	mazeService    i.MazeGenerator
	mazeController api_i.Controller
	router         *api.Router
)

func initConfig() {
	var err error
	appConfig, err = config.Load()
	if err != nil {
		appLogger.Error(fmt.Sprintf("Loading configuration: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Configuration loaded")
}

func initMazeService() {
	mazeLogger, err := logger.New("MAZE", config.ColorCyan, os.Stderr, logger.WithDebug(appConfig.LogDebug))
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze logger: %v", err))
		os.Exit(1)
	}

	mazeService, err = service.NewMazeService(&service.Config{Logger: mazeLogger})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze service initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeService, appConfig.MazeWidth, appConfig.MazeHeight, appConfig.MazeMaxDim)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", appConfig.HostIP, appConfig.RESTPort),
		BaseURL:     "/api",
		Mode:        appConfig.GinMode,
		Controllers: []api_i.Controller{mazeController},
	})
	appLogger.Info("Router initialized")
}

// printMaze generates a single maze from the configuration and writes it to stdout.
func printMaze() error {
	generated, err := mazeService.Generate(i.MazeRequest{
		Width:  appConfig.MazeWidth,
		Height: appConfig.MazeHeight,
		Seed:   appConfig.MazeSeed,
		Policy: appConfig.MazePolicy,
		Style:  appConfig.MazeStyle,
		Glyphs: appConfig.MazeGlyphs,
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(os.Stdout, generated.Rendering)
	return err
}

func main() {
	// Logs go to stderr so stdout carries only the maze.
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stderr)

	initConfig()
	initMazeService()

	if !appConfig.ServeHTTP {
		if err := printMaze(); err != nil {
			appLogger.Error(fmt.Sprintf("Generating maze: %v", err))
			os.Exit(1)
		}
		return
	}

	initMazeController()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
