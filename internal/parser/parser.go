// Package parser turns a line of user input into a command.Command.
package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"go-hr-manager/internal/command"
	"go-hr-manager/pkg/apperror"
	"go-hr-manager/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const (
	MessageDuplicateFields = "Multiple values specified for the following single-valued field(s): "
	MessageInvalidIndex    = "Index is not a non-zero unsigned integer."
)

type subParser func(p *Parser, args string) (command.Command, error)

// Parser resolves the command word against a closed registry and hands the
// rest of the line to the matching sub-parser.
type Parser struct {
	validate *validator.Validate
	registry map[string]subParser
}

func New(validate *validator.Validate) *Parser {
	return &Parser{
		validate: validate,
		registry: map[string]subParser{
			command.AddCandidateWord:    (*Parser).parseAddCandidate,
			command.EditCandidateWord:   (*Parser).parseEditCandidate,
			command.RemarkCandidateWord: (*Parser).parseRemarkCandidate,
			command.DeleteCandidateWord: (*Parser).parseDeleteCandidate,
			command.ListCandidateWord:   constant(command.ListCandidate{}),
			command.FindCandidateWord:   (*Parser).parseFindCandidate,

			command.AddPositionWord:    (*Parser).parseAddPosition,
			command.EditPositionWord:   (*Parser).parseEditPosition,
			command.DeletePositionWord: (*Parser).parseDeletePosition,
			command.ListPositionWord:   constant(command.ListPosition{}),
			command.FindPositionWord:   (*Parser).parseFindPosition,

			command.AddInterviewWord:    (*Parser).parseAddInterview,
			command.EditInterviewWord:   (*Parser).parseEditInterview,
			command.StatusInterviewWord: (*Parser).parseStatusInterview,
			command.DeleteInterviewWord: (*Parser).parseDeleteInterview,
			command.ListInterviewWord:   constant(command.ListInterview{}),
			command.FindInterviewWord:   (*Parser).parseFindInterview,

			command.HelpWord: constant(command.Help{}),
			command.ExitWord: constant(command.Exit{}),
		},
	}
}

// Parse returns the command for input, or a parse error. The model is never
// consulted here.
func (p *Parser) Parse(input string) (command.Command, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, apperror.InvalidFormat(command.HelpUsage, nil)
	}

	word, args := trimmed, ""
	if i := strings.IndexFunc(trimmed, unicode.IsSpace); i >= 0 {
		word, args = trimmed[:i], trimmed[i:]
	}
	parse, ok := p.registry[word]
	if !ok {
		return nil, apperror.Parse(command.MessageUnknownCommand)
	}
	return parse(p, args)
}

// Words returns every registered command word.
func (p *Parser) Words() []string {
	words := make([]string, 0, len(p.registry))
	for w := range p.registry {
		words = append(words, w)
	}
	return words
}

func constant(c command.Command) subParser {
	return func(*Parser, string) (command.Command, error) {
		return c, nil
	}
}

// check validates value against field and reports a failure together with usage.
func (p *Parser) check(field validation.Field, value any, usage string) error {
	if err := field.Check(p.validate, value); err != nil {
		return apperror.New(apperror.KindParse, err.Error()+"\n"+usage, err)
	}
	return nil
}

func (p *Parser) checkAll(field validation.Field, values []string, usage string) error {
	for _, v := range values {
		if err := p.check(field, v, usage); err != nil {
			return err
		}
	}
	return nil
}

// parseIndex accepts any integer. Range is checked against the displayed list
// when the command runs.
func parseIndex(preamble, usage string) (int, error) {
	index, err := strconv.Atoi(strings.TrimSpace(preamble))
	if err != nil {
		return 0, apperror.InvalidFormat(usage, fmt.Errorf("%s: %w", MessageInvalidIndex, err))
	}
	return index, nil
}

func parseKeywords(args, usage string) ([]string, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return nil, apperror.InvalidFormat(usage, nil)
	}
	return keywords, nil
}

func (p *Parser) parseDate(value, usage string) (time.Time, error) {
	if err := p.check(validation.DateField, value, usage); err != nil {
		return time.Time{}, err
	}
	return time.Parse(validation.DateLayout, value)
}

func (p *Parser) parseTime(value, usage string) (time.Time, error) {
	if err := p.check(validation.TimeField, value, usage); err != nil {
		return time.Time{}, err
	}
	return time.Parse(validation.TimeLayout, value)
}

func (p *Parser) parseDuration(value, usage string) (time.Duration, error) {
	if err := p.check(validation.DurationField, value, usage); err != nil {
		return 0, err
	}
	minutes, _ := strconv.ParseInt(value, 10, 64)
	return time.Duration(minutes) * time.Minute, nil
}
