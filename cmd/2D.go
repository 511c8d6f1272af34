/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/gocem/InputParameters"
	"github.com/notargets/gocem/model_problems/Conduction2D"
)

type Model2D struct {
	ICFile     string
	Refinement int
	Graph      bool
	Profile    bool
	Perf       bool
	Delay      time.Duration
}

// TwoDCmd represents the 2D command
var TwoDCmd = &cobra.Command{
	Use:   "2D",
	Short: "Two dimensional conduction solver, compares fake power against boundary flux current",
	Long: `
Meshes a three-stratum conducting slab, solves a randomized test potential and the true
potential, then derives the total current two ways: the fake power area integral and the
boundary flux integral over the driven electrode. The two agree under mesh refinement.

Run parameters come from a YAML input conditions file, for example:

########################################
Title: "Test Case"
Refinement: 1
DriveVoltage: 5.
SinkVoltage: 0.
TestVoltage: 1.
Conductivity:
  upper: 1.e1
  middle: 1.e1
  lower: 1.e-6
########################################

All fields are optional and default to the demonstration case above.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("2D called")
		m2d := &Model2D{}
		if m2d.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			panic(err)
		}
		m2d.Refinement, _ = cmd.Flags().GetInt("refinement")
		m2d.Graph, _ = cmd.Flags().GetBool("graph")
		m2d.Profile, _ = cmd.Flags().GetBool("profile")
		m2d.Perf, _ = cmd.Flags().GetBool("perf")
		dr, _ := cmd.Flags().GetInt("delay")
		m2d.Delay = time.Duration(dr) * time.Millisecond
		ip := processInput(m2d)
		Run2D(m2d, ip)
	},
}

func processInput(m2d *Model2D) (ip *InputParameters.ConductionParameters) {
	var (
		err error
	)
	ip = InputParameters.NewConductionParameters()
	if len(m2d.ICFile) != 0 {
		var data []byte
		if data, err = ioutil.ReadFile(m2d.ICFile); err != nil {
			panic(err)
		}
		if err = ip.Parse(data); err != nil {
			panic(err)
		}
	}
	if m2d.Refinement >= 0 {
		ip.Refinement = m2d.Refinement
	}
	ip.Print()
	return
}

func init() {
	rootCmd.AddCommand(TwoDCmd)
	TwoDCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- Refinement\n\t- DriveVoltage\n\t- Conductivity per stratum")
	TwoDCmd.Flags().IntP("refinement", "r", -1, "mesh refinement level, overrides the input conditions file")
	TwoDCmd.Flags().BoolP("graph", "g", false, "display the mesh and solved potentials while computing")
	TwoDCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	TwoDCmd.Flags().Bool("profile", false, "write a CPU profile for the run")
	TwoDCmd.Flags().Bool("perf", false, "report hardware instruction counts for the solve (linux only)")
}

func Run2D(m2d *Model2D, ip *InputParameters.ConductionParameters) {
	if m2d.Profile {
		defer profile.Start(profile.CPUProfile).Stop()
	}
	c := Conduction2D.NewConduction(ip)
	run := func() {
		c.Run(m2d.Graph, m2d.Delay)
	}
	if m2d.Perf {
		reportPerf(run)
	} else {
		run()
	}
}
