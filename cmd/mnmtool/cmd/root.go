package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var cfgFile string

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "mnmtool",
	Short: "build and inspect navigation mesh tiles",
	Long: `mnmtool builds navigation mesh tiles from level geometry,
saves them in the binary tile format, tweaks build settings via YAML
files, and reports on generated tile files.`,
}

// Execute adds all child commands to RootCmd and runs it; called once
// from main.main().
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}

// newLogger builds the zap.SugaredLogger the build subcommand threads
// through as a navgen.BuildContext, rotating through lumberjack so a long batch
// build doesn't leave one unbounded log file behind.
func newLogger() *zap.SugaredLogger {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	ws := zapcore.AddSync(&lumberjack.Logger{
		Filename:   "mnmtool.log",
		MaxSize:    10,
		MaxBackups: 3,
	})
	core := zapcore.NewCore(enc, ws, zapcore.InfoLevel)
	return zap.New(core).Sugar()
}
