package Conduction2D

import (
	"time"

	"github.com/notargets/avs/assets"
	"github.com/notargets/avs/chart2d"
	"github.com/notargets/avs/geometry"
	utils2 "github.com/notargets/avs/utils"

	"github.com/notargets/gocem/FEM2D"
	"github.com/notargets/gocem/geometry2D"
	"github.com/notargets/gocem/utils"
)

func (c *Conduction) newChart() (ch *chart2d.Chart2D) {
	var (
		box = geometry2D.NewBoundingBox(c.ES.Msh.Verts).Scale(1.1)
	)
	ch = chart2d.NewChart2D(
		float32(box.XMin[0]), float32(box.XMax[0]),
		float32(box.XMin[1]), float32(box.XMax[1]),
		1280, 1024, utils2.WHITE, utils2.BLACK)
	return
}

func (c *Conduction) caption(ch *chart2d.Chart2D, text string) {
	var (
		box  = geometry2D.NewBoundingBox(c.ES.Msh.Verts)
		x, _ = box.Centroid()
	)
	tf := assets.NewTextFormatter("NotoSans", "Regular", 24,
		utils.GetColor(utils.Black), true, false)
	ch.Printf(tf, float32(x), float32(box.XMax[1]), "%s", text)
}

func (c *Conduction) plotMesh(graphDelay time.Duration) {
	var (
		gm = c.ES.Msh.ToGraphMesh()
		ch = c.newChart()
	)
	ch.AddTriMesh(gm)
	c.caption(ch, "mesh")
	utils.SleepFor(int(graphDelay.Milliseconds()))
}

func (c *Conduction) plotScalar(f FEM2D.ScalarField, fieldName string, graphDelay time.Duration) {
	var (
		gm     = c.ES.Msh.ToGraphMesh()
		ch     = c.newChart()
		pField = make([]float32, f.U.Len())
	)
	for i, val := range f.U.DataP {
		pField[i] = float32(val)
	}
	vs := geometry.VertexScalar{
		TMesh:       &gm,
		FieldValues: pField,
	}
	ch.AddShadedVertexScalar(&vs, float32(f.U.Min()), float32(f.U.Max()))
	ch.AddTriMesh(gm)
	c.caption(ch, fieldName)
	utils.SleepFor(int(graphDelay.Milliseconds()))
}
