package erosion

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zgrid/internal/core"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultConfigValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Params.Validate())
}

func TestFromMapErosion(t *testing.T) {
	c := FromMap(map[string]string{"w": "32", "d": "-4", "drip_power": "2.5", "random_boulders": "3"})
	assert.Equal(t, 32, c.Width)
	assert.Equal(t, DefaultConfig().Depth, c.Depth)
	assert.Equal(t, float32(2.5), c.Params.DripPower)
	assert.Equal(t, 3, c.Params.RandomBoulders)
	assert.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestLoadParamsPartialOverride(t *testing.T) {
	path := writeFile(t, "params.json", `{"drip_power": 3, "boulders": [[1,2,3]]}`)
	base := DefaultConfig().Params
	p, err := LoadParams(path, base)
	require.NoError(t, err)
	assert.Equal(t, float32(3), p.DripPower)
	assert.Equal(t, [][3]int{{1, 2, 3}}, p.Boulders)
	assert.Equal(t, base.SoilTop, p.SoilTop)
	assert.Equal(t, base.RockHardness, p.RockHardness)
}

func TestLoadParamsErrors(t *testing.T) {
	base := DefaultConfig().Params

	_, err := LoadParams(writeFile(t, "params.yaml", `{}`), base)
	assert.ErrorContains(t, err, ".json extension")

	_, err = LoadParams(filepath.Join(t.TempDir(), "missing.json"), base)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadParams(writeFile(t, "bad.json", `{"drip_power":`), base)
	assert.ErrorContains(t, err, "failed to parse params JSON")

	p, err := LoadParams(writeFile(t, "invalid.json", `{"soil_top": 9, "rock_top": 3}`), base)
	assert.ErrorContains(t, err, "invalid params")
	assert.Equal(t, base, p)
}

func TestValidate(t *testing.T) {
	p := DefaultConfig().Params
	p.BedrockHardness = p.DripPower
	assert.Error(t, p.Validate())

	p = DefaultConfig().Params
	p.DripPower = 0
	assert.Error(t, p.Validate())
}

func TestFactoryLoadsParams(t *testing.T) {
	path := writeFile(t, "params.json", `{"drip_power": 4}`)
	s := New(FromMap(nil))
	assert.Equal(t, float32(1.5), s.cfg.Params.DripPower)

	f := core.Sims()["erosion"]
	got := f(map[string]string{"w": "4", "l": "4", "d": "4", "params": path}).(*Erosion)
	assert.Equal(t, float32(4), got.cfg.Params.DripPower)

	got = f(map[string]string{"w": "4", "l": "4", "d": "4", "params": "missing.json"}).(*Erosion)
	assert.Equal(t, float32(1.5), got.cfg.Params.DripPower)
}

func TestValidateRejectsNonFinite(t *testing.T) {
	p := DefaultConfig().Params
	p.DripPower = float32(math.Inf(1))
	assert.ErrorContains(t, p.Validate(), "drip_power must be finite")

	p = DefaultConfig().Params
	p.RockHardness = float32(math.NaN())
	assert.ErrorContains(t, p.Validate(), "rock_hardness must be finite")
}
