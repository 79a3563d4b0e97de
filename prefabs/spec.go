package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// CueSpec names a sound and the mixer channel it plays on.
type CueSpec struct {
	Sound   string `yaml:"sound"`
	Channel int    `yaml:"channel"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type StompSpec struct {
	Tolerance float64 `yaml:"tolerance"`
	MinGap    float64 `yaml:"min_gap"`
	MaxGap    float64 `yaml:"max_gap"`
	Bonus     int     `yaml:"bonus"`
}

// PlayerSpec holds the player's physics constants. Speeds are in hundredths
// of a pixel per frame.
type PlayerSpec struct {
	Name           string             `yaml:"name"`
	Spriteset      string             `yaml:"spriteset"`
	Width          int                `yaml:"width"`
	Height         int                `yaml:"height"`
	Spawn          PointSpec          `yaml:"spawn"`
	XSpeedDelta    int                `yaml:"xspeed_delta"`
	XSpeedLimit    int                `yaml:"xspeed_limit"`
	YSpeedDelta    int                `yaml:"yspeed_delta"`
	YSpeedLimit    int                `yaml:"yspeed_limit"`
	JSpeedDelta    int                `yaml:"jspeed_delta"`
	JumpSpeed      int                `yaml:"jump_speed"`
	BounceSpeed    int                `yaml:"bounce_speed"`
	HitSpeed       int                `yaml:"hit_speed"`
	ImmunityFrames int                `yaml:"immunity_frames"`
	HitPicture     int                `yaml:"hit_picture"`
	HitPenalty     int                `yaml:"hit_penalty"`
	WallProbes     []int              `yaml:"wall_probes"`
	Stomp          StompSpec          `yaml:"stomp"`
	Animations     map[string]string  `yaml:"animations"`
	Cues           map[string]CueSpec `yaml:"cues"`
}

type EagleSpec struct {
	Name         string  `yaml:"name"`
	Spriteset    string  `yaml:"spriteset"`
	Animation    string  `yaml:"animation"`
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	BobAmplitude float64 `yaml:"bob_amplitude"`
	BobStep      float64 `yaml:"bob_step"`
	ProbeOffsets []int   `yaml:"probe_offsets"`
	ScreenLeft   int     `yaml:"screen_left"`
	ScreenRight  int     `yaml:"screen_right"`
	CueFrame     int     `yaml:"cue_frame"`
	Cue          CueSpec `yaml:"cue"`
}

type OpossumSpec struct {
	Name        string  `yaml:"name"`
	Spriteset   string  `yaml:"spriteset"`
	Animation   string  `yaml:"animation"`
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Speed       float64 `yaml:"speed"`
	ChaseRadius float64 `yaml:"chase_radius"`
}

type EffectSpec struct {
	Spriteset string `yaml:"spriteset"`
	Animation string `yaml:"animation"`
}

type ScoreSpec struct {
	Spriteset string `yaml:"spriteset"`
	// Pictures maps a point value to the static frame showing it.
	Pictures map[int]int `yaml:"pictures"`
	WindowMS int64       `yaml:"window_ms"`
	Rise     float64     `yaml:"rise"`
}

// RasterSpec drives the per-scanline backdrop effect. Band and ground
// values are camera divisors.
type RasterSpec struct {
	SkyTop       YAMLColor `yaml:"sky_top"`
	SkyBottom    YAMLColor `yaml:"sky_bottom"`
	SkyEnd       int       `yaml:"sky_end"`
	BandStart    int       `yaml:"band_start"`
	BandEnd      int       `yaml:"band_end"`
	BandFrom     int       `yaml:"band_from"`
	BandTo       int       `yaml:"band_to"`
	GroundLine   int       `yaml:"ground_line"`
	GroundFactor int       `yaml:"ground_factor"`
}

type WorldSpec struct {
	Name               string             `yaml:"name"`
	CameraLead         int                `yaml:"camera_lead"`
	StartTime          int                `yaml:"start_time"`
	TickMS             int64              `yaml:"tick_ms"`
	GemBonus           int                `yaml:"gem_bonus"`
	CloudsStep         float64            `yaml:"clouds_step"`
	BackgroundParallax int                `yaml:"background_parallax"`
	DeathEffectOffset  float64            `yaml:"death_effect_offset"`
	Vanish             EffectSpec         `yaml:"vanish"`
	Death              EffectSpec         `yaml:"death"`
	Score              ScoreSpec          `yaml:"score"`
	Raster             RasterSpec         `yaml:"raster"`
	Cues               map[string]CueSpec `yaml:"cues"`
}

type LevelSpec struct {
	Name        string              `yaml:"name"`
	File        string              `yaml:"file"`
	TileLayer   string              `yaml:"tile_layer"`
	ObjectLayer string              `yaml:"object_layer"`
	FirstGID    int                 `yaml:"first_gid"`
	Classes     map[string][]uint32 `yaml:"classes"`
	// Items maps an object's decoded type index to an actor kind.
	Items []string `yaml:"items"`
}

type SequenceSpec struct {
	Name   string `yaml:"name"`
	Start  int    `yaml:"start"`
	Frames int    `yaml:"frames"`
	Delay  int    `yaml:"delay"`
}

type SpritesetSpec struct {
	Name      string         `yaml:"name"`
	Width     int            `yaml:"width"`
	Height    int            `yaml:"height"`
	Frames    int            `yaml:"frames"`
	Color     YAMLColor      `yaml:"color"`
	Alt       *YAMLColor     `yaml:"alt"`
	Sequences []SequenceSpec `yaml:"sequences"`
	// Labels, when set, are drawn as text on frames 0..len-1.
	Labels []string `yaml:"labels"`
}

type SoundSpec struct {
	Name     string  `yaml:"name"`
	Wave     string  `yaml:"wave"`
	From     float64 `yaml:"from"`
	To       float64 `yaml:"to"`
	Duration float64 `yaml:"duration"`
	Volume   float64 `yaml:"volume"`
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// RGBA8 returns the colour as color.RGBA, opaque black when unset.
func (c YAMLColor) RGBA8() color.RGBA {
	if c.Color == nil {
		return color.RGBA{A: 255}
	}
	return color.RGBAModel.Convert(c.Color).(color.RGBA)
}
