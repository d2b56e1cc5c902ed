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
	"os"
	"strings"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gofdtd/InputParameters"
	"github.com/notargets/gofdtd/model_problems/GaussLaw"
)

type ModelFDTD struct {
	ICFile  string
	Profile string
	Verbose bool
}

var exampleFile = `
########################################
Title: "Gauss law, polynomial field"
Geometry: cartesian   # or cylindrical
GridType: staggered   # collocated, hybrid
Algorithm: yee        # ckc; psatd and ect have no finite difference kernel
StencilOrder: 1
CellSize: [0.1, 0.1, 0.1]   # dr, dz for cylindrical
NCell: [32, 32, 32]
MaxGridSize: [16, 16, 16]
NModes: 1             # cylindrical only
RMin: 0.              # cylindrical only
Dt: 1.e-10
Steps: 100
ParallelDegree: 0     # 0 uses every CPU
PML: false
InitType: Polynomial  # Uniform, Gaussian
Amplitude: 1.
RhoTimeIndex: 1
########################################
`

// EvolveFCmd represents the evolveF command
var EvolveFCmd = &cobra.Command{
	Use:   "evolveF",
	Short: "Advance the Gauss's law correction field F for a fixed E and charge",
	Long: `
Advances F by dt*(div(E) - rho/eps0) for a number of steps and reports the
norm of F. Fields that satisfy Gauss's law leave F at zero.

gofdtd evolveF -I input.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		m := &ModelFDTD{}
		m.ICFile, _ = cmd.Flags().GetString("inputConditionsFile")
		m.Profile, _ = cmd.Flags().GetString("profile")
		m.Verbose, _ = cmd.Flags().GetBool("verbose")
		if len(m.ICFile) == 0 {
			fmt.Printf("error: must supply an input parameters file (-I, --inputConditionsFile)\n")
			fmt.Printf("Example File:%s\n", exampleFile)
			os.Exit(1)
		}
		var ip *InputParameters.InputParametersFDTD
		if ip, err = processInput(m); err != nil {
			panic(err)
		}
		if m.Verbose {
			ip.Print()
		}
		switch strings.ToLower(m.Profile) {
		case "":
		case "cpu":
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		case "mem":
			defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
		default:
			panic(fmt.Errorf("unknown profile type %q, use cpu or mem", m.Profile))
		}
		if err = RunEvolveF(ip, m.Verbose); err != nil {
			panic(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(EvolveFCmd)
	EvolveFCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- Algorithm\n\t- CellSize\n\t- Steps")
	EvolveFCmd.Flags().String("profile", "", "write a cpu or mem profile to the current directory")
	EvolveFCmd.Flags().BoolP("verbose", "v", true, "print the input deck and solver setup")
	EvolveFCmd.Flags().IntP("steps", "s", 0, "number of steps, overrides the input file")
	EvolveFCmd.Flags().IntP("parallelDegree", "p", 0, "number of goroutines over patches, overrides the input file")
	_ = viper.BindPFlag("Steps", EvolveFCmd.Flags().Lookup("steps"))
	_ = viper.BindPFlag("ParallelDegree", EvolveFCmd.Flags().Lookup("parallelDegree"))
}

// processInput reads the deck, then applies values set on the command line
// or in the config file.
func processInput(m *ModelFDTD) (ip *InputParameters.InputParametersFDTD, err error) {
	var (
		data []byte
	)
	if data, err = os.ReadFile(m.ICFile); err != nil {
		return
	}
	ip = &InputParameters.InputParametersFDTD{}
	if err = ip.Parse(data); err != nil {
		return
	}
	applyOverrides(ip, viper.GetViper())
	return
}

func applyOverrides(ip *InputParameters.InputParametersFDTD, v *viper.Viper) {
	if v.IsSet("Steps") && v.GetInt("Steps") > 0 {
		ip.Steps = v.GetInt("Steps")
	}
	if v.IsSet("ParallelDegree") && v.GetInt("ParallelDegree") > 0 {
		ip.ParallelDegree = v.GetInt("ParallelDegree")
	}
}

func RunEvolveF(ip *InputParameters.InputParametersFDTD, verbose bool) (err error) {
	var (
		c *GaussLaw.GaussLaw
	)
	if c, err = GaussLaw.NewGaussLaw(ip, verbose); err != nil {
		return
	}
	return c.Run()
}
