package cmd

import (
	"fmt"
	"io/ioutil"

	"github.com/arl/mnm/navgen"
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"
)

// configCmd writes the default build settings to a YAML file.
var configCmd = &cobra.Command{
	Use:   "config [FILE]",
	Short: "write a build settings file",
	Long: `Write a build settings file in YAML format, prefilled with
default values.

If FILE is not provided, 'mnmtool.yml' is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "mnmtool.yml"
		if len(args) >= 1 {
			path = args[0]
		}
		if ok, err := confirmIfExists(path,
			fmt.Sprintf("file '%s' already exists, overwrite? [y/N]", path)); !ok {
			if err == nil {
				fmt.Println("aborted by user")
			} else {
				fmt.Println("aborted:", err)
			}
			return
		}

		buf, err := yaml.Marshal(navgen.DefaultConfig())
		check(err)
		check(ioutil.WriteFile(path, buf, 0644))
		fmt.Printf("build settings written to '%s'\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
