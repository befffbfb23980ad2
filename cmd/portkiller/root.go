package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Jaddevvv/PortKiller-App/internal/config"
	"github.com/Jaddevvv/PortKiller-App/internal/logging"
	"github.com/Jaddevvv/PortKiller-App/internal/proc"
	"github.com/Jaddevvv/PortKiller-App/internal/target"
	"github.com/Jaddevvv/PortKiller-App/internal/tui"
)

// app carries what every command needs. Tests swap the lister for an
// in-memory table.
type app struct {
	lister  proc.Lister
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	jsonOut bool
	cleanup func()
}

func newApp(l proc.Lister) *app {
	return &app{lister: l, v: config.New(), cleanup: func() {}}
}

func (a *app) close() {
	a.cleanup()
}

func (a *app) loadConfig() error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// initLogging sends logs to stderr for one-shot commands. The interactive
// form owns the terminal, so it only logs when a log file is configured.
func (a *app) initLogging(interactive bool, stderr io.Writer) error {
	opts := logging.Options{Debug: a.cfg.Debug, NoColor: a.cfg.NoColor, File: a.cfg.LogFile}
	if !interactive {
		opts.Console = stderr
	}
	cleanup, err := logging.Init(opts)
	if err != nil {
		return err
	}
	a.cleanup = cleanup
	return nil
}

func newRootCmd(a *app) *cobra.Command {
	var port string

	root := &cobra.Command{
		Use:   "portkiller",
		Short: "Find and kill the processes holding a TCP/UDP port",
		Long: `PortKiller finds every process with a socket bound to a port and kills it.
Run without a subcommand to open the interactive form.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.initLogging(true, cmd.ErrOrStderr()); err != nil {
				return err
			}
			opts := tui.Options{Lister: a.lister, Config: a.cfg}
			if port != "" {
				p, err := target.ParsePort(port)
				if err != nil {
					return err
				}
				opts.Port = p
			}
			return tui.Run(opts)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (default: ~/.config/portkiller/config.yaml)")
	pf.Bool("debug", false, "enable debug logging")
	pf.Bool("no-color", false, "disable colorized output")
	pf.Bool("dry-run", false, "report what would be killed without killing")
	pf.String("log-file", "", "write logs to this file")
	pf.BoolVar(&a.jsonOut, "json", false, "output result as JSON")
	root.Flags().StringVarP(&port, "port", "p", "", "pre-fill the port in the interactive form")
	root.Flags().Bool("confirm", false, "ask before killing in the interactive form")

	_ = a.v.BindPFlag("debug", pf.Lookup("debug"))
	_ = a.v.BindPFlag("no_color", pf.Lookup("no-color"))
	_ = a.v.BindPFlag("dry_run", pf.Lookup("dry-run"))
	_ = a.v.BindPFlag("log_file", pf.Lookup("log-file"))
	_ = a.v.BindPFlag("confirm_kill", root.Flags().Lookup("confirm"))

	root.AddCommand(newScanCmd(a), newKillCmd(a))
	return root
}

func colorEnabled(cfg config.Config, w io.Writer) bool {
	if cfg.NoColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
