package cmd

import (
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/notargets/gocem/InputParameters"
)

func TestRun2D(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Test Case
Refinement: 2
DriveVoltage: 5.
SinkVoltage: 0.
TestVoltage: 1.
Conductivity:
  upper: 1.e1
  middle: 1.e1
  lower: 1.e-6
`)
	input := InputParameters.NewConductionParameters()
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	// Parsed values override the defaults
	assert.Equal(t, input.Refinement, 2)
	assert.Equal(t, input.DriveVoltage, 5.)
	assert.Equal(t, input.Conductivity["lower"], 1.e-6)
	// Untouched defaults survive a partial file
	assert.Equal(t, input.TestVoltage, 1.)
	input.Print()
}
