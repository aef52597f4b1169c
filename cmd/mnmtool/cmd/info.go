package cmd

import (
	"fmt"
	"os"

	"github.com/arl/mnm/navtile"
	"github.com/spf13/cobra"
)

// infoCmd reports on a previously built tile file.
var infoCmd = &cobra.Command{
	Use:   "info TILEFILE",
	Short: "show information about a tile file",
	Long: `Read a navigation mesh tile from a binary file and print its
vertex/triangle/node/link counts and content hash on standard output.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		f, err := os.Open(args[0])
		check(err)
		defer f.Close()

		tile, err := navtile.Decode(f)
		check(err)

		fmt.Printf("%s\n", args[0])
		fmt.Printf("  hash:       %08x\n", tile.HashValue)
		fmt.Printf("  vertices:   %d\n", len(tile.Vertices))
		fmt.Printf("  triangles:  %d\n", len(tile.Triangles))
		fmt.Printf("  bv nodes:   %d\n", len(tile.Nodes))
		fmt.Printf("  links:      %d\n", len(tile.Links))
	},
}

func init() {
	RootCmd.AddCommand(infoCmd)
}
