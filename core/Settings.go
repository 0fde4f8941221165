package core

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Settings 所有遊戲參數，預設值對應 60 tick/s 的原始節奏
type Settings struct {
	ScreenWidth  int
	ScreenHeight int

	PlayerWidth  int
	PlayerHeight int
	PlayerY      int
	PlayerSpeed  int

	OpponentWidth  int
	OpponentHeight int
	OpponentY      int
	OpponentSpeed  int

	BeamWidth         int
	BeamHeight        int
	PlayerBeamSpeed   int // 負值 = 往上
	OpponentBeamSpeed int // 正值 = 往下
	ShotInterval      int // 對手射擊間隔 (tick)

	TickRate     int
	HoldTicks    int // 終端機模式下，按鍵重複事件維持「按住」的 tick 數
	MenuDescribe bool

	PlayerSprite   string
	OpponentSprite string
}

var settingDefaults = map[string]interface{}{
	"screenWidth":       640,
	"screenHeight":      640,
	"playerWidth":       100,
	"playerHeight":      100,
	"playerY":           500,
	"playerSpeed":       7,
	"opponentWidth":     100,
	"opponentHeight":    100,
	"opponentY":         40,
	"opponentSpeed":     4,
	"beamWidth":         5,
	"beamHeight":        20,
	"playerBeamSpeed":   -10,
	"opponentBeamSpeed": 7,
	"shotInterval":      60,
	"tickRate":          60,
	"holdTicks":         8,
	"menu.describe":     true,
	"playerSprite":      "player.png",
	"opponentSprite":    "opponent.png",
}

func DefaultSettings() Settings {
	v := viper.New()
	applyDefaults(v)
	return settingsFrom(v)
}

// ReadSettings 讀取 properties 設定檔，檔案不存在時使用預設值
func ReadSettings(path string) (Settings, error) {
	v := viper.New()
	v.SetConfigType("properties")
	applyDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		err := v.ReadInConfig()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
		}
	}

	s := settingsFrom(v)
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func applyDefaults(v *viper.Viper) {
	for key, value := range settingDefaults {
		v.SetDefault(key, value)
	}
}

func settingsFrom(v *viper.Viper) Settings {
	return Settings{
		ScreenWidth:       cast.ToInt(v.Get("screenWidth")),
		ScreenHeight:      cast.ToInt(v.Get("screenHeight")),
		PlayerWidth:       cast.ToInt(v.Get("playerWidth")),
		PlayerHeight:      cast.ToInt(v.Get("playerHeight")),
		PlayerY:           cast.ToInt(v.Get("playerY")),
		PlayerSpeed:       cast.ToInt(v.Get("playerSpeed")),
		OpponentWidth:     cast.ToInt(v.Get("opponentWidth")),
		OpponentHeight:    cast.ToInt(v.Get("opponentHeight")),
		OpponentY:         cast.ToInt(v.Get("opponentY")),
		OpponentSpeed:     cast.ToInt(v.Get("opponentSpeed")),
		BeamWidth:         cast.ToInt(v.Get("beamWidth")),
		BeamHeight:        cast.ToInt(v.Get("beamHeight")),
		PlayerBeamSpeed:   cast.ToInt(v.Get("playerBeamSpeed")),
		OpponentBeamSpeed: cast.ToInt(v.Get("opponentBeamSpeed")),
		ShotInterval:      cast.ToInt(v.Get("shotInterval")),
		TickRate:          cast.ToInt(v.Get("tickRate")),
		HoldTicks:         cast.ToInt(v.Get("holdTicks")),
		MenuDescribe:      cast.ToBool(v.Get("menu.describe")),
		PlayerSprite:      cast.ToString(v.Get("playerSprite")),
		OpponentSprite:    cast.ToString(v.Get("opponentSprite")),
	}
}

func (s Settings) Validate() error {
	positive := map[string]int{
		"screenWidth":    s.ScreenWidth,
		"screenHeight":   s.ScreenHeight,
		"playerWidth":    s.PlayerWidth,
		"playerHeight":   s.PlayerHeight,
		"playerSpeed":    s.PlayerSpeed,
		"opponentWidth":  s.OpponentWidth,
		"opponentHeight": s.OpponentHeight,
		"opponentSpeed":  s.OpponentSpeed,
		"beamWidth":      s.BeamWidth,
		"beamHeight":     s.BeamHeight,
		"shotInterval":   s.ShotInterval,
		"tickRate":       s.TickRate,
	}
	for key, value := range positive {
		if value <= 0 {
			return fmt.Errorf("invalid setting %s=%d: must be positive", key, value)
		}
	}
	if s.PlayerBeamSpeed >= 0 {
		return fmt.Errorf("invalid setting playerBeamSpeed=%d: must be negative", s.PlayerBeamSpeed)
	}
	if s.OpponentBeamSpeed <= 0 {
		return fmt.Errorf("invalid setting opponentBeamSpeed=%d: must be positive", s.OpponentBeamSpeed)
	}
	if s.PlayerWidth > s.ScreenWidth || s.OpponentWidth > s.ScreenWidth {
		return fmt.Errorf("invalid settings: entities wider than screen (%d)", s.ScreenWidth)
	}
	return nil
}

func (s Settings) initialPlayerX() int {
	return (s.ScreenWidth - s.PlayerWidth) / 2
}

func (s Settings) initialOpponentX() int {
	return (s.ScreenWidth - s.OpponentWidth) / 2
}
