// Copyright (c) 2026 liuyuxun, 1225
// bigcalc - arbitrary-precision integer calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// eval.go implements the one-shot `bigcalc eval` command: evaluate an
// expression given as arguments or piped on stdin, print the result and
// exit.

package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/liuyuxun641102/liuyuxun/internal/db"
	"github.com/liuyuxun641102/liuyuxun/internal/i18n"
	"github.com/liuyuxun641102/liuyuxun/internal/model"
)

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval [expression]",
		Short: "Evaluate an expression and print the result",
		Long: `Evaluate a single integer expression, e.g.:

  bigcalc eval 1234+5678
  bigcalc eval "2^64"
  echo 100/7 | bigcalc eval

Division prints the quotient followed by "......" and the remainder.
When stdin is not a terminal, every line piped in is evaluated.`,
		RunE: runEval,
	}
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record the calculation in the history")
	cmd.Flags().BoolVar(&lsdFirst, "lsd", false, "Print digits least-significant first")
	return cmd
}

func runEval(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return evalOne(strings.Join(args, ""))
	}

	// No arguments: read expressions from stdin if it is piped.
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return cmd.Help()
	}

	scanner := bufio.NewScanner(os.Stdin)
	// Operands are unbounded, so lines can outgrow the default buffer.
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	var firstErr error
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := evalOne(line); err != nil {
			fmt.Fprintln(os.Stderr, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return firstErr
}

func evalOne(expr string) error {
	res, err := engine.Evaluate(expr)
	if err != nil {
		return err
	}

	if res.Advisory {
		fmt.Fprintln(os.Stderr, i18n.T("calc.advisory"))
	}

	fmt.Println(res.Value.Format(!lsdFirst))
	if res.Remainder != nil {
		fmt.Println("......" + res.Remainder.Format(!lsdFirst))
	}

	if db.HasStore() && appConfig.History.Enabled && !noHistory {
		c := model.Calculation{
			Expression: res.Expression,
			Operator:   res.Operator,
			OperandA:   res.OperandA,
			OperandB:   res.OperandB,
			Result:     res.Value.String(),
		}
		if res.Remainder != nil {
			c.Remainder = res.Remainder.String()
		}
		if _, err := db.AddCalculation(c); err != nil {
			log.Warnf("could not record calculation: %v", err)
		}
	}
	return nil
}
