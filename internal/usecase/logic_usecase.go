package usecase

import (
	"context"
	"strings"

	"go-hr-manager/internal/domain"
	"go-hr-manager/internal/parser"
	"go-hr-manager/internal/repository/memory"
	"go-hr-manager/pkg/apperror"
	"go-hr-manager/pkg/audit"
	"go-hr-manager/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const MessageSaveFailed = "Could not save data to file: "

type logicUsecase struct {
	model   domain.Model
	parser  *parser.Parser
	storage domain.HrStorage
	audit   *audit.Logger
}

func NewLogicUsecase(model domain.Model, storage domain.HrStorage, validate *validator.Validate, auditLogger *audit.Logger) domain.LogicUsecase {
	if auditLogger == nil {
		auditLogger = audit.Nop()
	}
	return &logicUsecase{
		model:   model,
		parser:  parser.New(validate),
		storage: storage,
		audit:   auditLogger,
	}
}

// Execute parses and runs one command, then saves the model if the command
// changed it. A failed save is reported as a command error but the change
// stays in memory.
func (u *logicUsecase) Execute(ctx context.Context, commandText string) (result domain.CommandResult, err error) {
	requestID := uuid.NewString()
	word := commandWord(commandText)
	ctx = context.WithValue(ctx, domain.KeyRequestID, requestID)
	ctx = context.WithValue(ctx, domain.KeyCommandWord, word)
	log := logger.Log.With("request_id", requestID, "command", word)

	defer func() {
		if r := recover(); r != nil {
			log.Error("command panicked", "panic", r)
			result, err = domain.CommandResult{}, apperror.Commandf("Unexpected error: %v", r)
		}
	}()

	cmd, err := u.parser.Parse(commandText)
	if err != nil {
		log.Debug("parse failed", "error", err)
		return domain.CommandResult{}, err
	}

	result, err = cmd.Execute(u.model)
	if err != nil {
		log.Info("command rejected", "error", err)
		if cmd.Mutates() {
			u.audit.LogCommandRejected(ctx, requestID, word, commandText, err.Error())
		}
		return domain.CommandResult{}, err
	}

	if cmd.Mutates() {
		if err := u.storage.Save(ctx, u.model.Data()); err != nil {
			log.Error("save failed", "error", err)
			u.audit.LogSaveFailed(ctx, requestID, word, err)
			return domain.CommandResult{}, apperror.New(apperror.KindCommand, MessageSaveFailed+err.Error(), err)
		}
		u.audit.LogCommandApplied(ctx, requestID, word, commandText, result.Feedback)
	}

	log.Debug("command executed", "mutates", cmd.Mutates())
	return result, nil
}

func (u *logicUsecase) FilteredCandidates() *domain.View[domain.Candidate] {
	return u.model.FilteredCandidates()
}

func (u *logicUsecase) FilteredPositions() *domain.View[domain.Position] {
	return u.model.FilteredPositions()
}

func (u *logicUsecase) FilteredInterviews() *domain.View[domain.Interview] {
	return u.model.FilteredInterviews()
}

func commandWord(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// LoadModel builds the model from storage. A document that cannot be
// converted yields an empty model together with the error, so the caller can
// start fresh; an I/O failure yields no model.
func LoadModel(ctx context.Context, storage domain.HrStorage, auditLogger *audit.Logger) (domain.Model, error) {
	data, err := storage.Load(ctx)
	switch {
	case apperror.IsDataConversion(err):
		logger.Log.Warn("data files are not in the correct format, starting with an empty HR manager", "error", err)
		return memory.NewModel(), err
	case err != nil:
		return nil, err
	}

	model, err := memory.NewModelFromData(data)
	if err != nil {
		err = apperror.DataConversion("Loaded data is inconsistent", err)
		logger.Log.Warn("data files are inconsistent, starting with an empty HR manager", "error", err)
		return memory.NewModel(), err
	}

	if auditLogger != nil {
		auditLogger.LogDataLoaded(ctx, len(data.Candidates), len(data.Positions), len(data.Interviews))
	}
	logger.Log.Info("data loaded",
		"candidates", len(data.Candidates),
		"positions", len(data.Positions),
		"interviews", len(data.Interviews),
	)
	return model, nil
}

