package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// SlotCount 场景中的槽位数量（目标与箭头一一对应）
const SlotCount = 4

var (
	// ErrNoTargets 场景配置中没有任何目标
	ErrNoTargets = errors.New("scene config has no targets")

	// ErrTargetCount 目标数量不等于 SlotCount
	ErrTargetCount = errors.New("scene config must have exactly 4 targets")
)

// SceneConfig 气泡场景配置
//
// 配置文件位置: data/scene.yaml
// 所有坐标都是场景坐标（相对于绘制表面左上角）。
type SceneConfig struct {
	// Width, Height 绘制表面的逻辑尺寸
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Projectile 箭头参数（所有槽位共用）
	Projectile ProjectileConfig `yaml:"projectile"`

	// Targets 目标列表，顺序即槽位序号，必须恰好 SlotCount 个
	Targets []TargetConfig `yaml:"targets"`
}

// ProjectileConfig 箭头参数
type ProjectileConfig struct {
	// OriginX 箭头起点X（Y 与对应目标圆心相同）
	OriginX float64 `yaml:"originX"`

	// Step 每帧移动距离
	Step float64 `yaml:"step"`

	// Clearance 抵达阈值 = 目标X + 半径 + Clearance
	Clearance float64 `yaml:"clearance"`
}

// TargetConfig 单个目标的配置
type TargetConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
	Fill   string  `yaml:"fill"`   // 填充色，"#rrggbb"
	Border string  `yaml:"border"` // 描边色，"#rrggbb"
}

// DefaultSceneConfig 返回内置默认场景：四个竖排气泡，箭头从右侧射入
func DefaultSceneConfig() *SceneConfig {
	fills := []string{"#ffb3ba", "#bae1ff", "#ffffba", "#baffc9"}
	borders := []string{"#ff9aaa", "#9ad1ff", "#ffff9a", "#9affb9"}

	targets := make([]TargetConfig, 0, len(fills))
	for i := range fills {
		targets = append(targets, TargetConfig{
			X:      120,
			Y:      80 + float64(i)*80,
			Radius: 35,
			Fill:   fills[i],
			Border: borders[i],
		})
	}

	return &SceneConfig{
		Width:  SceneWidth,
		Height: SceneHeight,
		Projectile: ProjectileConfig{
			OriginX:   DefaultProjectileOriginX,
			Step:      DefaultProjectileStep,
			Clearance: DefaultArrivalClearance,
		},
		Targets: targets,
	}
}

// LoadSceneConfig 从文件系统加载场景配置
//
// 参数:
//   - path: 配置文件路径（如 "data/scene.yaml"）
//
// 返回:
//   - *SceneConfig: 加载并验证后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadSceneConfig(path string) (*SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene config: %w", err)
	}
	return ParseSceneConfig(data)
}

// ParseSceneConfig 解析 YAML 格式的场景配置
//
// 未填写的字段使用默认值：尺寸 800x400，步长 3，起点 650。
func ParseSceneConfig(data []byte) (*SceneConfig, error) {
	var cfg SceneConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults 为零值字段填充默认值
func (c *SceneConfig) applyDefaults() {
	if c.Width == 0 {
		c.Width = SceneWidth
	}
	if c.Height == 0 {
		c.Height = SceneHeight
	}
	if c.Projectile.OriginX == 0 {
		c.Projectile.OriginX = DefaultProjectileOriginX
	}
	if c.Projectile.Step == 0 {
		c.Projectile.Step = DefaultProjectileStep
	}
}

// Validate 验证配置有效性
//
// 检查：
//   - 恰好 SlotCount 个目标
//   - 尺寸、步长、半径为正
//   - 颜色格式正确
//   - 每个目标的抵达阈值都在箭头起点左侧（否则箭头无需飞行）
func (c *SceneConfig) Validate() error {
	if len(c.Targets) == 0 {
		return ErrNoTargets
	}
	if len(c.Targets) != SlotCount {
		return fmt.Errorf("%w: got %d", ErrTargetCount, len(c.Targets))
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("surface size must be positive, got %.1fx%.1f", c.Width, c.Height)
	}
	if c.Projectile.Step <= 0 {
		return fmt.Errorf("projectile step must be positive, got %.2f", c.Projectile.Step)
	}
	if c.Projectile.Clearance < 0 {
		return fmt.Errorf("projectile clearance must not be negative, got %.2f", c.Projectile.Clearance)
	}

	for i, t := range c.Targets {
		if t.Radius <= 0 {
			return fmt.Errorf("target %d: radius must be positive, got %.1f", i, t.Radius)
		}
		if _, err := ParseHexColor(t.Fill); err != nil {
			return fmt.Errorf("target %d: fill: %w", i, err)
		}
		if _, err := ParseHexColor(t.Border); err != nil {
			return fmt.Errorf("target %d: border: %w", i, err)
		}
		threshold := c.ArrivalThreshold(i)
		if c.Projectile.OriginX <= threshold {
			return fmt.Errorf("target %d: projectile origin %.1f must be right of arrival threshold %.1f",
				i, c.Projectile.OriginX, threshold)
		}
	}

	return nil
}

// ArrivalThreshold 返回第 index 个目标的抵达阈值X
func (c *SceneConfig) ArrivalThreshold(index int) float64 {
	t := c.Targets[index]
	return t.X + t.Radius + c.Projectile.Clearance
}

// MaxStepsToArrive 返回第 index 个箭头从起点到击破所需的步数
// 等于 ceil((起点 - 阈值) / 步长)
func (c *SceneConfig) MaxStepsToArrive(index int) int {
	distance := c.Projectile.OriginX - c.ArrivalThreshold(index)
	if distance <= 0 {
		return 0
	}
	return int(math.Ceil(distance / c.Projectile.Step))
}

// ParseHexColor 解析 "#rgb" 或 "#rrggbb" 格式的颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	// 简写格式 #abc → #aabbcc
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: want #rgb or #rrggbb", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
