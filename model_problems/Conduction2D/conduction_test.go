package Conduction2D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/gocem/FEM2D"
	"github.com/notargets/gocem/InputParameters"
)

func newTestConduction(refinement int, seed int64) (c *Conduction) {
	ip := InputParameters.NewConductionParameters()
	ip.Refinement = refinement
	ip.RandomSeed = seed
	c = NewConduction(ip)
	return
}

func TestRegionDiscovery(t *testing.T) {
	c := newTestConduction(1, 1)
	// The three strata must land in three distinct mesher-assigned regions
	seen := make(map[int]bool)
	for name, id := range c.RegionIDs {
		assert.True(t, id >= 0, "stratum %s", name)
		assert.False(t, seen[id], "stratum %s shares region ID %d", name, id)
		seen[id] = true
	}
	assert.Equal(t, 3, len(seen))
}

func TestFakePowerMatchesCurrent(t *testing.T) {
	var (
		c = newTestConduction(1, 1)
	)
	c.Run(false)
	assert.True(t, c.Current > 0)
	// Conductive cross-section of height 2 over length 4 at sigma 10 driven by 5V
	assert.InDelta(t, 25., c.Current, 8.)
	coarseDiff := math.Abs(c.FakePower-c.Current) / c.Current
	assert.True(t, coarseDiff < 0.10, "relative difference %v", coarseDiff)

	fine := newTestConduction(2, 1)
	fine.Run(false)
	fineDiff := math.Abs(fine.FakePower-fine.Current) / fine.Current
	assert.True(t, fineDiff < 0.10, "relative difference %v", fineDiff)
	// Convergence under refinement, with slack for the randomized test conductivity
	assert.True(t, fineDiff < coarseDiff+0.02,
		"refinement did not tighten agreement: coarse %v, fine %v", coarseDiff, fineDiff)
}

func TestInsulatedWallFlux(t *testing.T) {
	c := newTestConduction(1, 7)
	c.Run(false)
	// The weak form imposes zero normal current on unlabeled-electrode boundaries
	wallFlux, err := FEM2D.BoundaryFlux(WallLabel, c.Jx, c.Jy)
	assert.NoError(t, err)
	assert.True(t, math.Abs(wallFlux) < 0.05*c.Current,
		"wall flux %v vs current %v", wallFlux, c.Current)
	// Conservation: what leaves the drive electrode arrives at the sink
	sinkFlux, err := FEM2D.BoundaryFlux(SinkLabel, c.Jx, c.Jy)
	assert.NoError(t, err)
	assert.InDelta(t, c.Current, sinkFlux, 0.05*c.Current)
}

func TestCurrentVoltageLinearity(t *testing.T) {
	a := newTestConduction(1, 3)
	a.Run(false)

	ip := InputParameters.NewConductionParameters()
	ip.Refinement = 1
	ip.RandomSeed = 3
	ip.SinkVoltage = 2
	b := NewConduction(ip)
	b.Run(false)

	// Same mesh and conductivities, so the current is exactly linear in the voltage drop
	scale := (a.IP.DriveVoltage - ip.SinkVoltage) / (a.IP.DriveVoltage - a.IP.SinkVoltage)
	assert.InDelta(t, scale*a.Current, b.Current, 1.e-6*a.Current)
}
