package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/saloon/pkg/app"
	"github.com/decker502/saloon/pkg/config"
	"github.com/decker502/saloon/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// 命令行参数
	verbose  = flag.Bool("verbose", false, "显示详细调试信息")
	assets   = flag.String("assets", ".", "包含 assets/ 目录的根目录")
	windowed = flag.Bool("windowed", false, "以窗口模式启动")
)

func main() {
	flag.Parse()

	// 数据文件来自嵌入的 dataFS，资源文件从磁盘读取
	embedded.Init(os.DirFS(*assets), dataFS)

	game, err := app.NewApp(app.Config{
		Verbose:  *verbose,
		Windowed: *windowed,
	})
	if err != nil {
		if app.IsConfigurationError(err) {
			fmt.Fprintf(os.Stderr, "invalid game data: %v\n", err)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "failed to start: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(game.Fullscreen())
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
	ebiten.SetWindowClosingHandled(true)

	// 非 verbose 模式下 log 输出已被丢弃
	if err := ebiten.RunGame(game); err != nil {
		fmt.Fprintf(os.Stderr, "game loop error: %v\n", err)
		os.Exit(1)
	}
}
