// Package cli is the text front-end: it reads command lines, hands them to
// the logic usecase and prints the feedback and the affected list.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go-hr-manager/internal/command"
	"go-hr-manager/internal/domain"
	"go-hr-manager/pkg/logger"
)

const (
	Prompt  = "hr> "
	Welcome = "Welcome to HR Manager. Type \"help\" to see the commands."
)

type REPL struct {
	logic domain.LogicUsecase
	in    io.Reader
	out   io.Writer
}

func NewREPL(logic domain.LogicUsecase, in io.Reader, out io.Writer) *REPL {
	return &REPL{logic: logic, in: in, out: out}
}

// Run reads lines until exit, end of input or ctx is done.
func (r *REPL) Run(ctx context.Context) error {
	fmt.Fprintln(r.out, Welcome)
	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if exit, _ := r.RunLine(ctx, line); exit {
			return nil
		}
	}
}

// RunLine executes one command line and prints the outcome. It reports
// whether the user asked to exit, and returns the command error after
// printing it.
func (r *REPL) RunLine(ctx context.Context, line string) (exit bool, err error) {
	result, err := r.logic.Execute(ctx, line)
	if err != nil {
		fmt.Fprintln(r.out, err.Error())
		return false, err
	}

	fmt.Fprintln(r.out, result.Feedback)
	if result.ShowHelp {
		for _, usage := range command.Usages() {
			fmt.Fprintln(r.out, usage)
		}
	}
	if result.Exit {
		return true, nil
	}

	if err := r.render(line); err != nil {
		logger.Log.Warn("render failed", "error", err)
	}
	return false, nil
}

// render prints the list the command word refers to.
func (r *REPL) render(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	word := fields[0]
	switch {
	case strings.HasSuffix(word, "_c"):
		return RenderCandidates(r.out, r.logic.FilteredCandidates())
	case strings.HasSuffix(word, "_p"):
		return RenderPositions(r.out, r.logic.FilteredPositions())
	case strings.HasSuffix(word, "_i"):
		return RenderInterviews(r.out, r.logic.FilteredInterviews())
	}
	return nil
}
