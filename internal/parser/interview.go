package parser

import (
	"strings"

	"go-hr-manager/internal/command"
	"go-hr-manager/internal/domain"
	"go-hr-manager/pkg/apperror"
	"go-hr-manager/pkg/validation"
)

func (p *Parser) parseAddInterview(args string) (command.Command, error) {
	usage := command.AddInterviewUsage
	am := Tokenize(args, PrefixPosition, PrefixCandidate, PrefixDate, PrefixTime, PrefixDuration)

	if !am.ArePresent(PrefixPosition, PrefixCandidate, PrefixDate, PrefixTime, PrefixDuration) || am.Preamble() != "" {
		return nil, apperror.InvalidFormat(usage, nil)
	}
	if err := am.VerifyNoDuplicates(PrefixPosition, PrefixDate, PrefixTime, PrefixDuration); err != nil {
		return nil, err
	}

	title, _ := am.Value(PrefixPosition)
	if err := p.check(validation.TitleField, title, usage); err != nil {
		return nil, err
	}
	names := am.All(PrefixCandidate)
	if err := p.checkAll(validation.NameField, names, usage); err != nil {
		return nil, err
	}

	rawDate, _ := am.Value(PrefixDate)
	date, err := p.parseDate(rawDate, usage)
	if err != nil {
		return nil, err
	}
	rawTime, _ := am.Value(PrefixTime)
	start, err := p.parseTime(rawTime, usage)
	if err != nil {
		return nil, err
	}
	rawDuration, _ := am.Value(PrefixDuration)
	duration, err := p.parseDuration(rawDuration, usage)
	if err != nil {
		return nil, err
	}

	return command.AddInterview{
		PositionTitle:  title,
		CandidateNames: names,
		Date:           date,
		StartTime:      start,
		Duration:       duration,
	}, nil
}

func (p *Parser) parseEditInterview(args string) (command.Command, error) {
	usage := command.EditInterviewUsage
	am := Tokenize(args, PrefixCandidate)

	index, err := parseIndex(am.Preamble(), usage)
	if err != nil {
		return nil, err
	}
	if !am.Has(PrefixCandidate) {
		return nil, apperror.InvalidFormat(usage, nil)
	}
	names := am.All(PrefixCandidate)
	if err := p.checkAll(validation.NameField, names, usage); err != nil {
		return nil, err
	}
	return command.EditInterview{Index: index, CandidateNames: names}, nil
}

func (p *Parser) parseStatusInterview(args string) (command.Command, error) {
	usage := command.StatusInterviewUsage
	am := Tokenize(args, PrefixStatus)

	index, err := parseIndex(am.Preamble(), usage)
	if err != nil {
		return nil, err
	}
	if !am.Has(PrefixStatus) {
		return nil, apperror.InvalidFormat(usage, nil)
	}
	if err := am.VerifyNoDuplicates(PrefixStatus); err != nil {
		return nil, err
	}

	raw, _ := am.Value(PrefixStatus)
	upper := strings.ToUpper(raw)
	if err := p.check(validation.InterviewStatusField, upper, usage); err != nil {
		return nil, err
	}
	return command.SetInterviewStatus{Index: index, Status: domain.ParseInterviewStatus(upper)}, nil
}

func (p *Parser) parseDeleteInterview(args string) (command.Command, error) {
	index, err := parseIndex(args, command.DeleteInterviewUsage)
	if err != nil {
		return nil, err
	}
	return command.DeleteInterview{Index: index}, nil
}

func (p *Parser) parseFindInterview(args string) (command.Command, error) {
	keywords, err := parseKeywords(args, command.FindInterviewUsage)
	if err != nil {
		return nil, err
	}
	return command.FindInterview{Keywords: keywords}, nil
}
