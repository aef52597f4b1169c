package cmd

import (
	"fmt"
	"os"

	"github.com/arl/mnm/fixed"
	"github.com/arl/mnm/navgen"
	"github.com/arl/mnm/navtile"
	"github.com/arl/mnm/recast"
	"github.com/spf13/cobra"
)

var buildCfgPath string

// buildCmd builds one tile from an OBJ file and writes it to OUTFILE.
var buildCmd = &cobra.Command{
	Use:   "build INPUT.obj OUTFILE",
	Short: "build a navigation mesh tile from input geometry",
	Long: `Build a navigation mesh tile from input geometry in OBJ format,
using a naive demo voxelizer (whole-triangle-bbox stamping, not exact
rasterization). The build is controlled by the settings in --config,
written by 'mnmtool config'. The generated tile is saved to OUTFILE in
the binary tile format, readable back with 'mnmtool info'.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := navgen.DefaultConfig()
		if _, err := os.Stat(buildCfgPath); err == nil {
			check(unmarshalYAMLFile(buildCfgPath, &cfg))
		}

		mesh := recast.NewMeshLoaderObj()
		check(mesh.Load(args[0]))

		voxelizer := newObjVoxelizer(mesh, cfg)

		log := newLogger()
		defer log.Sync()
		gen := navgen.NewGenerator(cfg, navgen.NewZapBuildContext(log))

		var tile navtile.Tile
		ok, reason := gen.Generate(&tile, voxelizer, nil, nil, fixed.Vector3{}, true)
		if !ok {
			fmt.Printf("generation failed: %s\n", reason)
			os.Exit(-1)
		}

		out, err := os.Create(args[1])
		check(err)
		defer out.Close()
		check(tile.Encode(out))

		fmt.Printf("wrote tile to '%s': %d vertices, %d triangles, hash %08x\n",
			args[1], len(tile.Vertices), len(tile.Triangles), tile.HashValue)
	},
}

func init() {
	RootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVar(&buildCfgPath, "config", "mnmtool.yml", "build settings (falls back to defaults if absent)")
}
