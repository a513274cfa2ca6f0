// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/decker502/bubblepop/pkg/config"
	"github.com/decker502/bubblepop/pkg/embedded"
	"github.com/decker502/bubblepop/pkg/game"
	"github.com/decker502/bubblepop/pkg/scenes"
	"github.com/decker502/bubblepop/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// AppName 存储目录名（gdata）
const AppName = "bubblepop"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ScenePath 场景配置文件路径，为空则使用内置 data/scene.yaml
	ScenePath string
	// HiDPI 按显示器缩放因子提高绘制分辨率
	HiDPI bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
//
// Layout 直接返回窗口尺寸，光标坐标即窗口像素；
// 场景绘制在逻辑尺寸的离屏表面上，再按 SurfaceRect 缩放放置到窗口中。
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	sceneConfig     *config.SceneConfig
	surface         *ebiten.Image
	hiDPI           bool

	// 最近一次 Layout 得到的屏幕尺寸
	screenWidth  int
	screenHeight int
	deviceScale  float64

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 使用内置场景配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	sceneConfig, err := LoadSceneConfig(cfg.ScenePath)
	if err != nil {
		return nil, err
	}

	// 设置存储，失败时降级为仅内存设置
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	storage, err := game.OpenStorage(AppName)
	if err != nil {
		log.Printf("[App] Warning: %v (settings will not be saved)", err)
	}
	settingsManager, err := game.NewSettingsManager(storage)
	if err != nil {
		return nil, fmt.Errorf("设置管理器初始化失败: %w", err)
	}

	// 初始化音频
	audioContext := audio.NewContext(game.SampleRate)
	audioManager := game.NewAudioManager(audioContext, settingsManager)
	audioManager.PreloadSounds()
	log.Printf("[App] AudioManager initialized")

	a := &App{
		settingsManager: settingsManager,
		sceneConfig:     sceneConfig,
		hiDPI:           cfg.HiDPI || utils.IsMobile(),
		deviceScale:     1,
	}

	scene, err := scenes.NewBubbleScene(sceneConfig, audioManager, settingsManager, a.SurfaceRect)
	if err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}

	a.sceneManager = game.NewSceneManager()
	a.sceneManager.SwitchTo(scene)

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	log.Printf("[App] Scene ready: %d targets, surface %.0fx%.0f",
		len(sceneConfig.Targets), sceneConfig.Width, sceneConfig.Height)
	return a, nil
}

// LoadSceneConfig 加载场景配置
//
// path 非空时从文件系统读取；否则读取内置的 data/scene.yaml，
// 内置资源未初始化时（如无头工具）使用代码中的默认配置。
func LoadSceneConfig(path string) (*config.SceneConfig, error) {
	if path != "" {
		cfg, err := config.LoadSceneConfig(path)
		if err != nil {
			return nil, fmt.Errorf("场景配置加载失败 (%s): %w", path, err)
		}
		log.Printf("[Config] 加载场景配置: %s", path)
		return cfg, nil
	}

	if !embedded.IsInitialized() {
		log.Printf("[Config] 内置资源未初始化，使用默认场景配置")
		return config.DefaultSceneConfig(), nil
	}

	data, err := embedded.ReadFile(embedded.SceneConfigPath)
	if err != nil {
		return nil, fmt.Errorf("内置场景配置读取失败: %w", err)
	}
	cfg, err := config.ParseSceneConfig(data)
	if err != nil {
		return nil, fmt.Errorf("内置场景配置无效: %w", err)
	}
	log.Printf("[Config] 加载场景配置: %s (embedded)", embedded.SceneConfigPath)
	return cfg, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	if !fullscreen {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}

	a.settingsManager.SetFullscreen(fullscreen)
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(config.ColorWindow)

	rect := a.SurfaceRect()
	if rect.Empty() {
		return
	}

	if a.surface == nil {
		a.surface = ebiten.NewImage(int(a.sceneConfig.Width), int(a.sceneConfig.Height))
	}
	a.surface.Clear()
	a.sceneManager.Draw(a.surface)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(rect.Width/a.sceneConfig.Width, rect.Height/a.sceneConfig.Height)
	op.GeoM.Translate(rect.X, rect.Y)
	op.Filter = ebiten.FilterLinear // 使用线性滤波减少锯齿和模糊
	screen.DrawImage(a.surface, op)
}

// Layout 返回屏幕尺寸
// 与窗口尺寸一致（HiDPI 时乘以显示器缩放因子），每帧记录供坐标换算使用
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := 1.0
	if a.hiDPI {
		if m := ebiten.Monitor(); m != nil {
			scale = m.DeviceScaleFactor()
		}
	}
	a.deviceScale = scale
	a.screenWidth = int(float64(outsideWidth) * scale)
	a.screenHeight = int(float64(outsideHeight) * scale)
	return a.screenWidth, a.screenHeight
}

// SurfaceRect 返回绘制表面在屏幕中的当前位置
// 根据最近一次 Layout 的尺寸实时计算，不缓存
func (a *App) SurfaceRect() utils.SurfaceRect {
	w, h := a.screenWidth, a.screenHeight
	if w <= 0 || h <= 0 {
		w, h = config.GameWindowWidth, config.GameWindowHeight
	}
	return utils.FitSurface(float64(w), float64(h),
		a.sceneConfig.Width, a.sceneConfig.Height,
		config.SurfaceMargin*a.deviceScale)
}
