package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/bubblepop/pkg/app"
	"github.com/decker502/bubblepop/pkg/config"
	"github.com/decker502/bubblepop/pkg/embedded"
)

var (
	verbose   = flag.Bool("verbose", false, "显示详细日志")
	scenePath = flag.String("scene", "", "场景配置文件路径（默认使用内置 data/scene.yaml）")
	hiDPI     = flag.Bool("hidpi", false, "按显示器缩放因子提高绘制分辨率")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:   *verbose,
		ScenePath: *scenePath,
		HiDPI:     *hiDPI,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
