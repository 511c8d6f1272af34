package geometry2D

type BoundingBox struct {
	XMin [2]float64
	XMax [2]float64
}

func NewBoundingBox(geometry [][2]float64) (box *BoundingBox) {
	if len(geometry) == 0 {
		return nil
	}
	box = new(BoundingBox)
	box.XMin = geometry[0]
	box.XMax = geometry[0]
	for _, point := range geometry {
		for i := 0; i < 2; i++ {
			if point[i] < box.XMin[i] {
				box.XMin[i] = point[i]
			}
			if point[i] > box.XMax[i] {
				box.XMax[i] = point[i]
			}
		}
	}
	return box
}

func (bb *BoundingBox) Centroid() (x, y float64) {
	x = 0.5 * (bb.XMax[0] + bb.XMin[0])
	y = 0.5 * (bb.XMax[1] + bb.XMin[1])
	return
}

func (bb *BoundingBox) Scale(scale float64) (bbOut *BoundingBox) {
	bbOut = new(BoundingBox)
	for i := 0; i < 2; i++ {
		xRange := bb.XMax[i] - bb.XMin[i]
		centroid := bb.XMin[i] + 0.5*xRange
		bbOut.XMin[i] = scale*(bb.XMin[i]-centroid) + centroid
		bbOut.XMax[i] = scale*(bb.XMax[i]-centroid) + centroid
	}
	return bbOut
}
