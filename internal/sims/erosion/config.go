package erosion

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
)

// Params holds the material and drip settings.
type Params struct {
	// SoilTop and RockTop are the first z of the soil and rock layers;
	// everything above SoilTop starts as air.
	SoilTop      int
	RockTop      int
	SoilHardness float32
	RockHardness float32
	// BedrockHardness is what a drip sees below the grid.
	BedrockHardness float32
	DripPower       float32

	// Boulders are fixed rock cells embedded in the soil.
	Boulders [][3]int
	// RandomBoulders adds seeded rock cells inside the soil layer.
	RandomBoulders int
}

// Config controls the erosion world dimensions.
type Config struct {
	Width  int
	Length int
	Depth  int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  100,
		Length: 200,
		Depth:  25,
		Seed:   20220331,
		Params: Params{
			SoilTop:         5,
			RockTop:         15,
			SoilHardness:    1,
			RockHardness:    8,
			BedrockHardness: 100,
			DripPower:       1.5,
			Boulders:        [][3]int{{34, 88, 6}, {66, 122, 9}, {11, 154, 5}, {35, 93, 8}, {72, 75, 12}},
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["l"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Length = parsed
		}
	}
	if v, ok := cfg["d"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Depth = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["drip_power"]; ok {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil && parsed > 0 {
			c.Params.DripPower = float32(parsed)
		}
	}
	if v, ok := cfg["random_boulders"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.RandomBoulders = parsed
		}
	}
	return c
}

// ParamsFile is the JSON form of Params. Omitted fields keep their current
// values, so partial files are safe.
type ParamsFile struct {
	SoilTop         *int      `json:"soil_top,omitempty"`
	RockTop         *int      `json:"rock_top,omitempty"`
	SoilHardness    *float32  `json:"soil_hardness,omitempty"`
	RockHardness    *float32  `json:"rock_hardness,omitempty"`
	BedrockHardness *float32  `json:"bedrock_hardness,omitempty"`
	DripPower       *float32  `json:"drip_power,omitempty"`
	Boulders        *[][3]int `json:"boulders,omitempty"`
	RandomBoulders  *int      `json:"random_boulders,omitempty"`
}

const maxParamsFileSize = 1 << 20

// LoadParams reads a JSON params file and applies it on top of base.
func LoadParams(path string, base Params) (Params, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return base, fmt.Errorf("params file must have .json extension, got %q", ext)
	}
	info, err := os.Stat(cleanPath)
	if err != nil {
		return base, fmt.Errorf("failed to stat params file: %w", err)
	}
	if info.Size() > maxParamsFileSize {
		return base, fmt.Errorf("params file too large: %d bytes (max %d)", info.Size(), maxParamsFileSize)
	}
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return base, fmt.Errorf("failed to read params file: %w", err)
	}
	var f ParamsFile
	if err := json.Unmarshal(data, &f); err != nil {
		return base, fmt.Errorf("failed to parse params JSON: %w", err)
	}
	p := f.Apply(base)
	if err := p.Validate(); err != nil {
		return base, fmt.Errorf("invalid params: %w", err)
	}
	return p, nil
}

// Apply returns base with every field set in f overridden.
func (f ParamsFile) Apply(base Params) Params {
	p := base
	if f.SoilTop != nil {
		p.SoilTop = *f.SoilTop
	}
	if f.RockTop != nil {
		p.RockTop = *f.RockTop
	}
	if f.SoilHardness != nil {
		p.SoilHardness = *f.SoilHardness
	}
	if f.RockHardness != nil {
		p.RockHardness = *f.RockHardness
	}
	if f.BedrockHardness != nil {
		p.BedrockHardness = *f.BedrockHardness
	}
	if f.DripPower != nil {
		p.DripPower = *f.DripPower
	}
	if f.Boulders != nil {
		p.Boulders = *f.Boulders
	}
	if f.RandomBoulders != nil {
		p.RandomBoulders = *f.RandomBoulders
	}
	return p
}

// Validate checks that the parameters describe a usable world.
func (p Params) Validate() error {
	if p.SoilTop < 0 || p.RockTop < p.SoilTop {
		return fmt.Errorf("layers must satisfy 0 <= soil_top <= rock_top, got %d and %d", p.SoilTop, p.RockTop)
	}
	for name, v := range map[string]float32{
		"drip_power":       p.DripPower,
		"soil_hardness":    p.SoilHardness,
		"rock_hardness":    p.RockHardness,
		"bedrock_hardness": p.BedrockHardness,
	} {
		if f := float64(v); math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%s must be finite, got %f", name, v)
		}
	}
	if p.DripPower <= 0 {
		return fmt.Errorf("drip_power must be positive, got %f", p.DripPower)
	}
	if p.SoilHardness < 0 || p.RockHardness < 0 {
		return fmt.Errorf("hardness must be non-negative")
	}
	if p.BedrockHardness <= p.DripPower {
		return fmt.Errorf("bedrock_hardness %f must exceed drip_power %f", p.BedrockHardness, p.DripPower)
	}
	if p.RandomBoulders < 0 {
		return fmt.Errorf("random_boulders must be non-negative, got %d", p.RandomBoulders)
	}
	return nil
}
