package Conduction2D

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/notargets/gocem/FEM2D"
	"github.com/notargets/gocem/InputParameters"
	"github.com/notargets/gocem/geometry2D"
)

// Boundary labels of the slab geometry
const (
	DriveLabel     = 1  // Driven electrode, left wall
	SinkLabel      = 20 // Grounded electrode, right wall
	WallLabel      = 2  // Insulated walls, top and bottom
	InterfaceLabel = 3  // Internal strata interfaces
)

// Slab extents and interface geometry
const (
	slabWidth   = 4.
	slabHeight  = 3.
	ifaceLow    = 1.
	ifaceHigh   = 2.
	ifaceWiggle = 0.15
	testSigmaLo = 0.5
	testSigmaHi = 1.5
)

/*
Conduction computes the electric current through a three-stratum conducting slab two ways and
demonstrates that they agree: a fake power area integral of the true current density against a
randomized unit-drop test field, and a direct boundary flux integral over the driven electrode.

The two interfaces between strata undulate sinusoidally, so the mesher decides which integer ID
each stratum receives. NewConduction discovers the IDs once by sampling a known interior point of
each stratum and threads the resulting name-to-ID map through every later computation; the IDs
themselves are never hardcoded.
*/
type Conduction struct {
	IP           *InputParameters.ConductionParameters
	ES           *FEM2D.ElementSpace
	RegionIDs    map[string]int
	SigmaTest    FEM2D.CellField
	SigmaTrue    FEM2D.CellField
	UTest, UTrue FEM2D.ScalarField
	ExT, EyT     FEM2D.CellField // Test electric field
	Jx, Jy       FEM2D.CellField // True current density
	FakePower    float64
	Current      float64
	rnd          *rand.Rand
}

// slabCurves declares the boundary of the slab. The electrode walls are split where the
// interfaces land so the interface endpoints weld onto shared vertices.
func slabCurves() (cs *geometry2D.CurveSet) {
	iface := func(yBase, sign float64) geometry2D.BoundaryCurve {
		return geometry2D.BoundaryCurve{
			XY: func(t float64) (x, y float64) {
				x = slabWidth * t
				y = yBase + sign*ifaceWiggle*math.Sin(math.Pi*t)
				return
			},
			N:     8,
			Label: InterfaceLabel,
		}
	}
	cs = geometry2D.NewCurveSet(
		geometry2D.Line(0, 0, slabWidth, 0, 8, WallLabel),
		geometry2D.Line(slabWidth, 0, slabWidth, ifaceLow, 2, SinkLabel),
		geometry2D.Line(slabWidth, ifaceLow, slabWidth, ifaceHigh, 2, SinkLabel),
		geometry2D.Line(slabWidth, ifaceHigh, slabWidth, slabHeight, 2, SinkLabel),
		geometry2D.Line(slabWidth, slabHeight, 0, slabHeight, 8, WallLabel),
		geometry2D.Line(0, slabHeight, 0, ifaceHigh, 2, DriveLabel),
		geometry2D.Line(0, ifaceHigh, 0, ifaceLow, 2, DriveLabel),
		geometry2D.Line(0, ifaceLow, 0, 0, 2, DriveLabel),
		iface(ifaceLow, 1),
		iface(ifaceHigh, -1),
	)
	return
}

// Interior sample points, one per stratum, safely clear of the undulating interfaces
var strataSamples = map[string][2]float64{
	"upper":  {0.5 * slabWidth, 2.5},
	"middle": {0.5 * slabWidth, 1.5},
	"lower":  {0.5 * slabWidth, 0.4},
}

func NewConduction(ip *InputParameters.ConductionParameters) (c *Conduction) {
	var (
		msh  = slabCurves().Mesh(ip.Refinement)
		seed = ip.RandomSeed
	)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	c = &Conduction{
		IP:        ip,
		ES:        FEM2D.NewElementSpace(msh),
		RegionIDs: make(map[string]int),
		rnd:       rand.New(rand.NewSource(seed)),
	}
	for name, pt := range strataSamples {
		id := msh.RegionAt(pt[0], pt[1])
		if id < 0 {
			panic(fmt.Errorf("stratum sample point %v for %q lies outside the mesh", pt, name))
		}
		c.RegionIDs[name] = id
	}
	if msh.NumRegions != len(strataSamples) {
		panic(fmt.Errorf("expected %d mesh regions, mesher produced %d",
			len(strataSamples), msh.NumRegions))
	}
	fmt.Printf("Region IDs (upper, middle, lower) = %d %d %d\n",
		c.RegionIDs["upper"], c.RegionIDs["middle"], c.RegionIDs["lower"])
	fmt.Printf("Mesh: %d vertices, %d triangles, %d regions\n",
		c.ES.Np, c.ES.K, msh.NumRegions)
	return
}

func (c *Conduction) Run(showGraph bool, graphDelay ...time.Duration) {
	var (
		ip    = c.IP
		err   error
		delay time.Duration
	)
	if len(graphDelay) != 0 {
		delay = graphDelay[0]
	}
	if showGraph {
		c.plotMesh(delay)
	}
	// Test problem: randomized conductivity, unit voltage drop across the electrodes
	c.SigmaTest = FEM2D.RandomCellField(c.ES, c.rnd, testSigmaLo, testSigmaHi)
	if showGraph {
		c.plotScalar(c.SigmaTest.InterpolateNodal(), "test conductivity", delay)
	}
	testBCs := map[int]float64{DriveLabel: ip.TestVoltage, SinkLabel: 0}
	if c.UTest, err = FEM2D.SolvePotential(c.SigmaTest, testBCs, ip.Tolerance, ip.MaxIterations); err != nil {
		panic(err)
	}
	c.ExT, c.EyT = c.UTest.Gradient()
	if showGraph {
		c.plotScalar(c.UTest, "test potential", delay)
	}

	// True problem: piecewise constant conductivity by stratum, full drive voltage
	byRegion := make(map[int]float64)
	for name, id := range c.RegionIDs {
		sigma, exists := ip.Conductivity[name]
		if !exists {
			panic(fmt.Errorf("no conductivity supplied for stratum %q", name))
		}
		byRegion[id] = sigma
	}
	if c.SigmaTrue, err = FEM2D.RegionCellField(c.ES, byRegion); err != nil {
		panic(err)
	}
	if showGraph {
		c.plotScalar(c.SigmaTrue.InterpolateNodal(), "true conductivity", delay)
	}
	trueBCs := map[int]float64{DriveLabel: ip.DriveVoltage, SinkLabel: ip.SinkVoltage}
	if c.UTrue, err = FEM2D.SolvePotential(c.SigmaTrue, trueBCs, ip.Tolerance, ip.MaxIterations); err != nil {
		panic(err)
	}
	Ex, Ey := c.UTrue.Gradient()
	c.Jx, c.Jy = FEM2D.CurrentDensity(c.SigmaTrue, Ex, Ey)
	if showGraph {
		c.plotScalar(c.UTrue, "true potential", delay)
	}

	// Current two ways: fake power area integral vs boundary flux on the driven electrode
	c.FakePower = FEM2D.FakePower(c.Jx, c.Jy, c.ExT, c.EyT)
	flux, err := FEM2D.BoundaryFlux(DriveLabel, c.Jx, c.Jy)
	if err != nil {
		panic(err)
	}
	c.Current = -flux // flux leaving the electrode into the domain

	fmt.Printf("Fake energy = %v\n", c.FakePower)
	fmt.Printf("Current     = %v\n", c.Current)
	return
}
