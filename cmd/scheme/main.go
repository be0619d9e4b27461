package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/briantimar/scheme"
)

const prompt = ">> "

func main() {
	app := &cli.App{
		Name:  "scheme",
		Usage: "a small scheme expression evaluator",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "eval",
				Aliases: []string{"e"},
				Usage:   "evaluate `EXPR` and exit",
			},
		},
		Action: func(c *cli.Context) error {
			env := scheme.NewEnv(nil)
			if c.IsSet("eval") {
				v, err := scheme.Eval(c.String("eval"), env)
				if err != nil {
					return err
				}
				fmt.Println(v)
				return nil
			}
			repl(env)
			return nil
		},
	}
	app.RunAndExitOnError()
}

// repl evaluates one line per iteration against a single session
// environment. Errors are reported and the loop keeps accepting input;
// only end of input ends the session.
func repl(env *scheme.Env) {
	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	errPrint := color.New(color.FgRed)
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		errPrint.DisableColor()
	}

	in := bufio.NewScanner(os.Stdin)
	for {
		if interactive {
			fmt.Print(prompt)
		}
		if !in.Scan() {
			break
		}
		v, err := scheme.Eval(in.Text(), env)
		if err != nil {
			errPrint.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(v)
	}
	fmt.Println("Bye!")
}
