// Command mnmtool builds and inspects navigation mesh tiles.
package main

import "github.com/arl/mnm/cmd/mnmtool/cmd"

func main() {
	cmd.Execute()
}
