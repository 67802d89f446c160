package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"
	"github.com/vfsemu/vfsemu/ctl/internal/cmdfmt"
	"github.com/vfsemu/vfsemu/ctl/internal/util"
	"github.com/vfsemu/vfsemu/ctl/pkg/config"
	"github.com/vfsemu/vfsemu/ctl/pkg/ctl/shell"
	"go.uber.org/zap"
)

// emulator feeds command lines to a shell and prints the results.
type emulator struct {
	shell  *shell.Shell
	prompt string
	out    io.Writer
	log    *zap.Logger
}

// runEmulator sets up the tree, runs the configured script (if any) and then reads commands from
// in until "exit" or EOF. The prompt is only printed for interactive input.
func runEmulator(ctx context.Context, in io.Reader, out io.Writer, interactive bool) error {
	log, err := config.GetLogger()
	if err != nil {
		return util.NewCtlError(err, util.ConfigError)
	}

	if viper.GetBool(config.DebugKey) {
		settings := make([]cmdfmt.Setting, 0, len(config.Keys()))
		for _, key := range config.Keys() {
			settings = append(settings, cmdfmt.Setting{Key: key, Value: viper.Get(key)})
		}
		cmdfmt.PrintSettings(out, settings)
	}

	e := &emulator{
		shell:  shell.New(shell.WithLogger(log.Logger), shell.WithRawSizes(viper.GetBool(config.RawKey))),
		prompt: viper.GetString(config.PromptKey),
		out:    out,
		log:    log.Logger,
	}

	if path := viper.GetString(config.VfsKey); path != "" {
		msg, err := e.shell.Load(config.GetFs(), path)
		if err != nil {
			// A broken tree file should not prevent using the emulator. Report it on stderr so it
			// never ends up mixed into the output of piped commands.
			cmdfmt.Printf("Error: %s\nUsing the default tree\n", err)
		} else {
			fmt.Fprintln(out, msg)
		}
	}

	if script := viper.GetString(config.ScriptKey); script != "" {
		f, err := config.GetFs().Open(script)
		if err != nil {
			return util.NewCtlError(fmt.Errorf("unable to open script: %w", err), util.ConfigError)
		}
		defer f.Close()
		log.Debug("running script", zap.String("script", script))
		exited, err := e.run(ctx, f, false, true)
		if err != nil {
			return util.NewCtlError(fmt.Errorf("error reading script %s: %w", script, err), util.GeneralError)
		}
		if exited {
			return nil
		}
	}

	if _, err := e.run(ctx, in, interactive, false); err != nil {
		return util.NewCtlError(fmt.Errorf("error reading commands: %w", err), util.GeneralError)
	}
	return nil
}

// run executes the lines read from r. Blank lines and lines starting with # are skipped. With
// showPrompt the prompt is printed before reading each line, with echo every executed line is
// printed after the prompt. It returns true if reading stopped because of an exit command.
func (e *emulator) run(ctx context.Context, r io.Reader, showPrompt bool, echo bool) (bool, error) {
	ctx, cancel := context.WithCancel(ctx)
	// Stops the reader if we return before EOF.
	defer cancel()

	lines := make(chan string)
	errs := make(chan error, 1)
	go util.ReadLines(ctx, r, lines, errs)

	for {
		if showPrompt && !echo {
			fmt.Fprint(e.out, e.prompt)
		}
		line, ok := <-lines
		if !ok {
			select {
			case err := <-errs:
				return false, err
			default:
				return false, nil
			}
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if echo {
			fmt.Fprintf(e.out, "%s%s\n", e.prompt, trimmed)
		}
		if strings.EqualFold(trimmed, "exit") {
			e.log.Debug("exit requested")
			return true, nil
		}
		if result := e.shell.Execute(trimmed); result != "" {
			fmt.Fprintln(e.out, result)
		}
	}
}
