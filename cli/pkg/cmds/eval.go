package cmds

import (
	"errors"

	"github.com/acorn-io/cmd"
	"github.com/acorn-io/jjay"
	"github.com/acorn-io/jjay/cli/pkg/flagargs"
	"github.com/acorn-io/jjay/cli/pkg/readhelper"
	"github.com/acorn-io/jjay/pkg/value"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type Eval struct {
	jjay *JJay

	Vars string `usage:"JSON, YAML or script file whose object is bound as variables"`
}

func NewEval(jjay *JJay) *cobra.Command {
	return cmd.Command(&Eval{jjay: jjay}, cobra.Command{
		Use:   "eval [flags] FILE [--NAME=VALUE...]",
		Short: "Evaluate a script and print the result, use - to read standard input",
		Args:  cobra.MinimumNArgs(1),
	})
}

func (e *Eval) Customize(cmd *cobra.Command) {
	cmd.Flags().SetInterspersed(false)
}

func (e *Eval) Run(cmd *cobra.Command, args []string) error {
	filename := args[0]
	args = args[1:]

	argVars, err := flagargs.ParseArgs(filename, args)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	} else if err != nil {
		return err
	}

	var fileVars map[string]any
	if e.Vars != "" {
		fileVars, err = readhelper.ReadVars(e.Vars)
		if err != nil {
			return err
		}
	}

	data, err := readhelper.ReadSource(filename, cmd.InOrStdin())
	if err != nil {
		return err
	}

	var out value.Value
	err = jjay.Unmarshal(data, &out, jjay.Option{
		SourceName: readhelper.SourceName(filename),
		Vars:       fileVars,
	}, jjay.Option{
		Vars: argVars,
	})
	if err != nil {
		return err
	}

	return e.jjay.Print(cmd.OutOrStdout(), out)
}
