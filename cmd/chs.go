package cmd

import (
	"github.com/alexiusacademia/gosect/internal/calc"
	"github.com/spf13/cobra"
)

var (
	chsInput    calc.Input
	chsUPEInput calc.Input
)

var chsCmd = &cobra.Command{
	Use:   "chs",
	Short: "Properties of a circular hollow section",
	Long: `Calculate the elastic and plastic properties of a circular hollow
section (steel tube).

Examples:
  gosect chs --d 323 --t 12 --fy 355`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSingle(calc.CHS, chsInput)
	},
}

var chsUPELRCmd = &cobra.Command{
	Use:   "chs-upe-lr",
	Short: "Properties of a CHS flanked left and right by two UPE channels",
	Long: `Calculate the properties of a tube with two parallel-flange channels
placed left and right, webs upright and backs facing the tube.

The channel centroids sit at x = ±(R + gap_back/2 + e), where R is the
tube radius and e the distance from the channel back to its centroid.

Examples:
  gosect chs-upe-lr --d 323 --t 12 --channel UPE300 --gap-back 28.9
  gosect chs-upe-lr --d 323 --t 12 --channel-h 300 --channel-b 100 --channel-tw 9.5 --channel-tf 15 --channel-r 15 --gap-back 0`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSingle(calc.CHSUPELR, chsUPEInput)
	},
}

var chsUPETBCmd = &cobra.Command{
	Use:   "chs-upe-tb",
	Short: "Properties of a CHS with UPE channels above and below",
	Long: `Calculate the properties of a tube with two parallel-flange channels
laid flat above and below it, backs facing the tube.

The channel centroids sit at y = ±y_c. A y_c that would push a channel
back into the tube is rejected.

Examples:
  gosect chs-upe-tb --d 323 --t 12 --channel UPE300 --y-c 190.4`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSingle(calc.CHSUPETB, chsUPEInput)
	},
}

func init() {
	rootCmd.AddCommand(chsCmd, chsUPELRCmd, chsUPETBCmd)

	for _, c := range []*cobra.Command{chsCmd, chsUPELRCmd, chsUPETBCmd} {
		in := &chsUPEInput
		if c == chsCmd {
			in = &chsInput
		}
		c.Flags().Float64Var(&in.D, "d", 0, "Tube outer diameter (mm) [required]")
		c.Flags().Float64Var(&in.T, "t", 0, "Tube wall thickness (mm) [required]")
		c.MarkFlagRequired("d")
		c.MarkFlagRequired("t")
		addMaterialFlags(c)
		addOutputFlags(c)
	}

	for _, c := range []*cobra.Command{chsUPELRCmd, chsUPETBCmd} {
		f := c.Flags()
		f.StringVar(&chsUPEInput.Channel, "channel", "UPE300", "Channel designation from the UPE table; empty to use explicit dimensions")
		f.Float64Var(&chsUPEInput.ChannelH, "channel-h", 0, "Channel depth (mm)")
		f.Float64Var(&chsUPEInput.ChannelB, "channel-b", 0, "Channel flange width (mm)")
		f.Float64Var(&chsUPEInput.ChannelTw, "channel-tw", 0, "Channel web thickness (mm)")
		f.Float64Var(&chsUPEInput.ChannelTf, "channel-tf", 0, "Channel flange thickness (mm)")
		f.Float64Var(&chsUPEInput.ChannelR, "channel-r", 0, "Channel root radius (mm), 0 for sharp corners")
		c.PreRun = func(cmd *cobra.Command, args []string) {
			// explicit dimensions replace the catalog profile
			if cmd.Flags().Changed("channel") {
				return
			}
			for _, name := range []string{"channel-h", "channel-b", "channel-tw", "channel-tf", "channel-r"} {
				if cmd.Flags().Changed(name) {
					chsUPEInput.Channel = ""
					return
				}
			}
		}
	}

	chsUPELRCmd.Flags().Float64Var(&chsUPEInput.GapBack, "gap-back", 0, "Total clear gap between tube and channel backs, both sides (mm)")
	chsUPETBCmd.Flags().Float64Var(&chsUPEInput.YC, "y-c", 0, "Distance from tube centre to each channel centroid (mm) [required]")
	chsUPETBCmd.MarkFlagRequired("y-c")
}
