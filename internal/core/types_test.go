package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type nopSim struct{ name string }

func (n nopSim) Name() string   { return n.name }
func (n nopSim) Size() Size     { return Size{W: 1, H: 1} }
func (n nopSim) Reset(int64)    {}
func (n nopSim) Step()          {}
func (n nopSim) Cells() []uint8 { return []uint8{0} }

func TestRegisterIgnoresInvalid(t *testing.T) {
	before := len(Sims())
	Register("", func(map[string]string) Sim { return nopSim{} })
	Register("nil-factory", nil)
	assert.Len(t, Sims(), before)

	Register("zz-test", func(map[string]string) Sim { return nopSim{name: "zz-test"} })
	t.Cleanup(func() { delete(sims, "zz-test") })
	names := Names()
	assert.Contains(t, names, "zz-test")
	assert.IsIncreasing(t, names)
}
