package cmds

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/acorn-io/cmd"
	"github.com/acorn-io/jjay/pkg/value"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type JJay struct {
	Output  string `usage:"Output format (json, yaml)" short:"o" default:"json"`
	Compact bool   `usage:"Print JSON on a single line" short:"c"`
	Debug   bool   `usage:"Log evaluation steps to stderr"`
}

func New() *cobra.Command {
	return cmd.Command(&JJay{}, cobra.Command{
		Use:   "jjay [command]",
		Short: "Evaluate jjay scripts to JSON",
	})
}

func (j *JJay) Customize(cmd *cobra.Command) {
	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SilenceUsage = true
	cmd.AddCommand(NewEval(j), NewRepl(j))
}

func (j *JJay) PersistentPre(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if j.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	})))
	return nil
}

func (j *JJay) Run(cmd *cobra.Command, args []string) error {
	return cmd.Usage()
}

// Print writes v to w in the configured output format.
func (j *JJay) Print(w io.Writer, v value.Value) error {
	switch j.Output {
	case "json":
		return value.WriteJSON(w, v, !j.Compact)
	case "yaml":
		nv, err := value.ToJSON(v)
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(nv); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported output format %q, expected json or yaml", j.Output)
}
