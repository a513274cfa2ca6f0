// verify_popsequence 无界面回放完整的击破流程
//
// 依次点击每个目标圆心，逐帧推进直到动画停止，打印每个槽位的状态；
// 然后重置并再回放一次，检查两轮结果一致。
//
// 用法:
//
//	go run ./cmd/verify_popsequence [--scene data/scene.yaml] [--stagger 10] [--verbose]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/bubblepop/pkg/app"
	"github.com/decker502/bubblepop/pkg/scenes"
	"github.com/decker502/bubblepop/pkg/systems"
	"github.com/decker502/bubblepop/pkg/utils"
)

var (
	scenePath = flag.String("scene", "", "场景配置文件路径（默认使用内置默认配置）")
	stagger   = flag.Int("stagger", 0, "相邻两次点击之间推进的帧数")
	maxFrames = flag.Int("max-frames", 10000, "单轮最大帧数")
	verbose   = flag.Bool("verbose", false, "显示详细日志")
)

// offSurface 表面之外的指针（不触发悬停）
var offSurface = utils.InputState{X: -1, Y: -1}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := app.LoadSceneConfig(*scenePath)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	scene, err := scenes.NewBubbleScene(cfg, nil, nil, nil)
	if err != nil {
		fmt.Printf("❌ 场景创建失败: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("会话: %s\n", scene.Session().ID)
	fmt.Printf("目标数量: %d, 箭头起点 X=%.1f, 步长 %.1f\n\n",
		len(cfg.Targets), cfg.Projectile.OriginX, cfg.Projectile.Step)

	first, frames1, ok := playRound(scene)
	if !ok {
		os.Exit(1)
	}

	scene.Reset()
	for _, st := range scene.Slots() {
		if st.Popped || st.Active || st.CurrentX != st.OriginX {
			fmt.Printf("❌ 重置后槽位 %d 未恢复: %+v\n", st.Index, st)
			os.Exit(1)
		}
	}
	if scene.HoverIndex() != -1 || scene.Score() != 0 || scene.Completed() {
		fmt.Printf("❌ 重置后悬停/得分未清空: hover=%d score=%d\n", scene.HoverIndex(), scene.Score())
		os.Exit(1)
	}
	fmt.Printf("✅ 重置完成 (round %d)\n\n", scene.Session().Round)

	second, frames2, ok := playRound(scene)
	if !ok {
		os.Exit(1)
	}

	if frames1 != frames2 {
		fmt.Printf("❌ 两轮帧数不同: %d vs %d\n", frames1, frames2)
		os.Exit(1)
	}
	for i := range first {
		if first[i] != second[i] {
			fmt.Printf("❌ 槽位 %d 两轮结果不同\n", i)
			os.Exit(1)
		}
	}
	fmt.Printf("✅ 两轮结果一致\n")
}

// playRound 点击全部目标并推进到动画结束
func playRound(scene *scenes.BubbleScene) ([]systems.SlotState, int, bool) {
	frames := 0
	for _, st := range scene.Slots() {
		if !scene.HandlePointerDown(st.X, st.Y) {
			fmt.Printf("❌ 槽位 %d 发射失败\n", st.Index)
			return nil, frames, false
		}
		for i := 0; i < *stagger; i++ {
			scene.Advance(utils.KeyActionNone, offSurface)
			frames++
		}
	}

	for scene.Animating() {
		if frames >= *maxFrames {
			fmt.Printf("❌ 超过 %d 帧仍未结束\n", *maxFrames)
			return nil, frames, false
		}
		scene.Advance(utils.KeyActionNone, offSurface)
		frames++
	}

	states := scene.Slots()
	for _, st := range states {
		fmt.Printf("  槽位 %d: %-9s x=%.1f\n", st.Index, st.Phase(), st.CurrentX)
	}
	fmt.Printf("  帧数: %d, 得分: %d, 全部击破: %v\n", frames, scene.Score(), scene.Completed())

	if !scene.Completed() {
		fmt.Printf("❌ 未全部击破\n")
		return nil, frames, false
	}
	return states, frames, true
}
