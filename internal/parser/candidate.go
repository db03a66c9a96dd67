package parser

import (
	"go-hr-manager/internal/command"
	"go-hr-manager/internal/domain"
	"go-hr-manager/pkg/apperror"
	"go-hr-manager/pkg/validation"
)

func (p *Parser) parseAddCandidate(args string) (command.Command, error) {
	usage := command.AddCandidateUsage
	am := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixPosition, PrefixTag, PrefixRemark)

	if !am.ArePresent(PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixPosition) || am.Preamble() != "" {
		return nil, apperror.InvalidFormat(usage, nil)
	}
	if err := am.VerifyNoDuplicates(PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixRemark); err != nil {
		return nil, err
	}

	name, _ := am.Value(PrefixName)
	phone, _ := am.Value(PrefixPhone)
	email, _ := am.Value(PrefixEmail)
	address, _ := am.Value(PrefixAddress)
	remark, _ := am.Value(PrefixRemark)
	positions := am.All(PrefixPosition)
	tags := am.All(PrefixTag)

	checks := []struct {
		field validation.Field
		value string
	}{
		{validation.NameField, name},
		{validation.PhoneField, phone},
		{validation.EmailField, email},
		{validation.AddressField, address},
	}
	for _, c := range checks {
		if err := p.check(c.field, c.value, usage); err != nil {
			return nil, err
		}
	}
	if err := p.checkAll(validation.TitleField, positions, usage); err != nil {
		return nil, err
	}
	if err := p.checkAll(validation.TagField, tags, usage); err != nil {
		return nil, err
	}

	return command.AddCandidate{
		Candidate: domain.NewCandidate(name, phone, email, address, tags, remark, positions),
	}, nil
}

func (p *Parser) parseEditCandidate(args string) (command.Command, error) {
	usage := command.EditCandidateUsage
	am := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixPosition, PrefixTag)

	index, err := parseIndex(am.Preamble(), usage)
	if err != nil {
		return nil, err
	}
	if err := am.VerifyNoDuplicates(PrefixName, PrefixPhone, PrefixEmail, PrefixAddress); err != nil {
		return nil, err
	}

	var d command.EditCandidateDescriptor
	single := []struct {
		prefix Prefix
		field  validation.Field
		target **string
	}{
		{PrefixName, validation.NameField, &d.Name},
		{PrefixPhone, validation.PhoneField, &d.Phone},
		{PrefixEmail, validation.EmailField, &d.Email},
		{PrefixAddress, validation.AddressField, &d.Address},
	}
	for _, s := range single {
		value, ok := am.Value(s.prefix)
		if !ok {
			continue
		}
		if err := p.check(s.field, value, usage); err != nil {
			return nil, err
		}
		*s.target = &value
	}

	if d.Tags, err = p.parseSet(am, PrefixTag, validation.TagField, usage); err != nil {
		return nil, err
	}
	if d.Positions, err = p.parseSet(am, PrefixPosition, validation.TitleField, usage); err != nil {
		return nil, err
	}

	if !d.IsAnyFieldEdited() {
		return nil, apperror.Parse(command.MessageNotEdited)
	}
	return command.EditCandidate{Index: index, Descriptor: d}, nil
}

// parseSet reads a repeatable prefix. A lone empty value clears the set; an
// absent prefix leaves it unchanged.
func (p *Parser) parseSet(am ArgumentMultimap, prefix Prefix, field validation.Field, usage string) (*[]string, error) {
	if !am.Has(prefix) {
		return nil, nil
	}
	values := am.All(prefix)
	if len(values) == 1 && values[0] == "" {
		empty := []string{}
		return &empty, nil
	}
	if err := p.checkAll(field, values, usage); err != nil {
		return nil, err
	}
	return &values, nil
}

func (p *Parser) parseRemarkCandidate(args string) (command.Command, error) {
	usage := command.RemarkCandidateUsage
	am := Tokenize(args, PrefixRemark)

	index, err := parseIndex(am.Preamble(), usage)
	if err != nil {
		return nil, err
	}
	if !am.Has(PrefixRemark) {
		return nil, apperror.InvalidFormat(usage, nil)
	}
	if err := am.VerifyNoDuplicates(PrefixRemark); err != nil {
		return nil, err
	}
	remark, _ := am.Value(PrefixRemark)
	return command.RemarkCandidate{Index: index, Remark: remark}, nil
}

func (p *Parser) parseDeleteCandidate(args string) (command.Command, error) {
	index, err := parseIndex(args, command.DeleteCandidateUsage)
	if err != nil {
		return nil, err
	}
	return command.DeleteCandidate{Index: index}, nil
}

func (p *Parser) parseFindCandidate(args string) (command.Command, error) {
	keywords, err := parseKeywords(args, command.FindCandidateUsage)
	if err != nil {
		return nil, err
	}
	return command.FindCandidate{Keywords: keywords}, nil
}
