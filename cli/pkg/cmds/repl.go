package cmds

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/acorn-io/cmd"
	"github.com/acorn-io/jjay"
	"github.com/acorn-io/jjay/cli/pkg/readhelper"
	"github.com/acorn-io/jjay/pkg/parser"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	promptMain  = "jjay> "
	promptCont  = "  ... "
	historyFile = ".jjay_history"
)

type Repl struct {
	jjay *JJay

	Vars    string `usage:"JSON, YAML or script file whose object is bound as variables"`
	History string `usage:"History file, defaults to ~/.jjay_history"`
}

func NewRepl(jjay *JJay) *cobra.Command {
	return cmd.Command(&Repl{jjay: jjay}, cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session, bindings carry over between inputs",
		Args:  cobra.NoArgs,
	})
}

// prompter reads one line of input. It is satisfied by *liner.State.
type prompter interface {
	Prompt(prompt string) (string, error)
}

// lineReader reads from a non terminal input without echoing prompts.
type lineReader struct {
	r *bufio.Reader
}

func (l *lineReader) Prompt(string) (string, error) {
	line, err := l.r.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (r *Repl) Run(cmd *cobra.Command, args []string) error {
	var vars map[string]any
	if r.Vars != "" {
		var err error
		vars, err = readhelper.ReadVars(r.Vars)
		if err != nil {
			return err
		}
	}

	session, err := jjay.NewSession(jjay.Option{
		SourceName: "<repl>",
		Vars:       vars,
	})
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		return r.loop(session, &lineReader{r: bufio.NewReader(in)}, cmd.OutOrStdout(), cmd.ErrOrStderr())
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if histPath := r.historyPath(); histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	return r.loop(session, ln, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

func (r *Repl) historyPath() string {
	if r.History != "" {
		return r.History
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}

func (r *Repl) loop(session *jjay.Session, p prompter, out, errOut io.Writer) error {
	for {
		src, err := readInput(p, promptMain, promptCont)
		if errors.Is(err, io.EOF) {
			return nil
		} else if errors.Is(err, liner.ErrPromptAborted) {
			continue
		} else if err != nil {
			return err
		}

		src = strings.TrimSpace(src)
		switch {
		case src == "":
			continue
		case src == ":quit":
			return nil
		case strings.HasPrefix(src, ":"):
			fmt.Fprintf(errOut, "unknown command %s, type :quit to exit\n", src)
			continue
		}

		if h, ok := p.(interface{ AppendHistory(string) }); ok {
			h.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		}

		v, err := session.Eval(src)
		if err != nil {
			fmt.Fprintln(errOut, err)
			continue
		}
		if err := r.jjay.Print(out, v); err != nil {
			fmt.Fprintln(errOut, err)
		}
	}
}

// readInput reads lines until they form a script that is not cut short. A
// blank continuation line ends the input early so the error gets reported.
func readInput(p prompter, prompt, cont string) (string, error) {
	var b strings.Builder

	for {
		current := prompt
		if b.Len() > 0 {
			current = cont
		}

		line, err := p.Prompt(current)
		if err != nil {
			if errors.Is(err, io.EOF) && b.Len() > 0 {
				return b.String(), nil
			}
			return "", err
		}

		if b.Len() > 0 {
			if strings.TrimSpace(line) == "" {
				return b.String(), nil
			}
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.TrimSpace(src) == "" {
			return src, nil
		}
		if _, err := parser.ParseString(src); parser.IsIncomplete(err) {
			continue
		}
		return src, nil
	}
}
