package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/composable/internal/app"
)

type rootFlags struct {
	configPath string
	logLevel   string
	logFile    string
	readOnly   bool
	noWatch    bool
}

func newRootCmd(version string) *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:   "composable [file]",
		Short: "A terminal text editor with composable region commands",
		Long: `composable edits one file in the terminal. Region commands such as
kill-region and upcase-region take the next motion as their object:
C-w followed by w kills a word, and pressing w again kills the next one.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := app.Options{
				ConfigPath: flags.configPath,
				LogLevel:   flags.logLevel,
				LogFile:    flags.logFile,
				ReadOnly:   flags.readOnly,
				Watch:      !flags.noWatch,
			}
			if len(args) == 1 {
				opts.File = args[0]
			}
			err := runEditor(opts)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			}
			return err
		},
	}

	root.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "",
		"config file (default: $XDG_CONFIG_HOME/composable/config.toml)")
	root.Flags().StringVar(&flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.Flags().StringVar(&flags.logFile, "log-file", "", `log file, or "stderr"`)
	root.Flags().BoolVarP(&flags.readOnly, "readonly", "R", false, "open the file read-only")
	root.Flags().BoolVar(&flags.noWatch, "no-watch", false, "do not reload the config file when it changes")

	root.AddCommand(newKeysCmd(&flags), newConfigCmd(&flags), newVersionCmd(version))
	return root
}

func runEditor(opts app.Options) error {
	application, err := app.New(opts)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer application.Close()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(signals)
	go func() {
		if sig, ok := <-signals; ok {
			_ = application.RequestQuit(sig.String())
		}
	}()

	return application.Run()
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "composable %s\n", version)
		},
	}
}
