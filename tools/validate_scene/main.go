// validate_scene 检查场景配置文件
//
// 用法:
//
//	go run ./tools/validate_scene [data/scene.yaml]
package main

import (
	"fmt"
	"os"

	"github.com/decker502/bubblepop/pkg/config"
)

func main() {
	path := "data/scene.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.LoadSceneConfig(path)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ YAML 格式正确: %s\n", path)
	fmt.Printf("✅ 表面尺寸: %.0fx%.0f\n", cfg.Width, cfg.Height)
	fmt.Printf("✅ 目标数量: %d\n", len(cfg.Targets))

	for i, t := range cfg.Targets {
		fmt.Printf("   目标 %d: (%.0f, %.0f) r=%.0f  到达阈值 X=%.1f  需要 %d 帧\n",
			i, t.X, t.Y, t.Radius, cfg.ArrivalThreshold(i), cfg.MaxStepsToArrive(i))

		// 同一水平线上的目标会被同一高度的箭头穿过
		for j := 0; j < i; j++ {
			if cfg.Targets[j].Y == t.Y {
				fmt.Printf("   ⚠️  目标 %d 与目标 %d 在同一水平线上\n", i, j)
			}
		}
	}
}
