package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type ConductionParameters struct {
	Title         string             `yaml:"Title"`
	Refinement    int                `yaml:"Refinement"`
	DriveVoltage  float64            `yaml:"DriveVoltage"`
	SinkVoltage   float64            `yaml:"SinkVoltage"`
	TestVoltage   float64            `yaml:"TestVoltage"`
	Conductivity  map[string]float64 `yaml:"Conductivity"` // Key is the stratum name: upper, middle, lower
	Tolerance     float64            `yaml:"Tolerance"`
	MaxIterations int                `yaml:"MaxIterations"`
	RandomSeed    int64              `yaml:"RandomSeed"`
}

// NewConductionParameters returns the demonstration defaults: a conductive slab with an
// insulating lower stratum, driven at 5V against a grounded far electrode
func NewConductionParameters() (ip *ConductionParameters) {
	ip = &ConductionParameters{
		Title:        "Fake Power Current Extraction",
		Refinement:   1,
		DriveVoltage: 5,
		SinkVoltage:  0,
		TestVoltage:  1,
		Conductivity: map[string]float64{
			"upper":  1.e1,
			"middle": 1.e1,
			"lower":  1.e-6,
		},
		Tolerance:     1.e-10,
		MaxIterations: 0, // 0 lets the solver choose from the system size
		RandomSeed:    0, // 0 seeds from the clock
	}
	return
}

func (ip *ConductionParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *ConductionParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%d]\t\t\t\t= Refinement\n", ip.Refinement)
	fmt.Printf("%8.5f\t\t= DriveVoltage\n", ip.DriveVoltage)
	fmt.Printf("%8.5f\t\t= SinkVoltage\n", ip.SinkVoltage)
	fmt.Printf("%8.5f\t\t= TestVoltage\n", ip.TestVoltage)
	keys := make([]string, len(ip.Conductivity))
	i := 0
	for k := range ip.Conductivity {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("Conductivity[%s] = %v\n", key, ip.Conductivity[key])
	}
}
