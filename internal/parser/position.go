package parser

import (
	"strings"

	"go-hr-manager/internal/command"
	"go-hr-manager/internal/domain"
	"go-hr-manager/pkg/apperror"
	"go-hr-manager/pkg/validation"
)

func (p *Parser) parseAddPosition(args string) (command.Command, error) {
	usage := command.AddPositionUsage
	am := Tokenize(args, PrefixPosition)

	if !am.Has(PrefixPosition) || am.Preamble() != "" {
		return nil, apperror.InvalidFormat(usage, nil)
	}
	if err := am.VerifyNoDuplicates(PrefixPosition); err != nil {
		return nil, err
	}
	title, _ := am.Value(PrefixPosition)
	if err := p.check(validation.TitleField, title, usage); err != nil {
		return nil, err
	}
	return command.AddPosition{Position: domain.NewPosition(title)}, nil
}

func (p *Parser) parseEditPosition(args string) (command.Command, error) {
	usage := command.EditPositionUsage
	am := Tokenize(args, PrefixPosition, PrefixStatus)

	index, err := parseIndex(am.Preamble(), usage)
	if err != nil {
		return nil, err
	}
	if err := am.VerifyNoDuplicates(PrefixPosition, PrefixStatus); err != nil {
		return nil, err
	}

	cmd := command.EditPosition{Index: index}
	if title, ok := am.Value(PrefixPosition); ok {
		if err := p.check(validation.TitleField, title, usage); err != nil {
			return nil, err
		}
		cmd.Title = &title
	}
	if raw, ok := am.Value(PrefixStatus); ok {
		status, err := p.parsePositionStatus(raw, usage)
		if err != nil {
			return nil, err
		}
		cmd.Status = &status
	}

	if cmd.Title == nil && cmd.Status == nil {
		return nil, apperror.Parse(command.MessageNotEdited)
	}
	return cmd, nil
}

func (p *Parser) parsePositionStatus(raw, usage string) (domain.PositionStatus, error) {
	upper := strings.ToUpper(raw)
	if err := p.check(validation.PositionStatusField, upper, usage); err != nil {
		return "", err
	}
	status, _ := domain.ParsePositionStatus(upper)
	return status, nil
}

func (p *Parser) parseDeletePosition(args string) (command.Command, error) {
	index, err := parseIndex(args, command.DeletePositionUsage)
	if err != nil {
		return nil, err
	}
	return command.DeletePosition{Index: index}, nil
}

func (p *Parser) parseFindPosition(args string) (command.Command, error) {
	keywords, err := parseKeywords(args, command.FindPositionUsage)
	if err != nil {
		return nil, err
	}
	return command.FindPosition{Keywords: keywords}, nil
}
