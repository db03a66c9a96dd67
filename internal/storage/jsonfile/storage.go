// Package jsonfile persists the HR manager data as three JSON documents.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"go-hr-manager/internal/domain"
	"go-hr-manager/pkg/apperror"
	"go-hr-manager/pkg/logger"
	"go-hr-manager/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/gofrs/flock"
	"golang.org/x/sync/errgroup"
)

const lockRetryDelay = 20 * time.Millisecond

// Paths locates the three documents.
type Paths struct {
	Candidates string
	Positions  string
	Interviews string
}

type jsonStorage struct {
	paths    Paths
	validate *validator.Validate
}

// NewStorage returns a domain.HrStorage reading and writing paths.
func NewStorage(paths Paths, validate *validator.Validate) domain.HrStorage {
	return &jsonStorage{paths: paths, validate: validate}
}

func (s *jsonStorage) Load(ctx context.Context) (domain.HrManagerData, error) {
	return LoadFrom(ctx, s.paths, s.validate)
}

func (s *jsonStorage) Save(ctx context.Context, data domain.HrManagerData) error {
	return SaveTo(ctx, data, s.paths)
}

// LoadFrom reads the three documents and resolves interview references. A
// missing file counts as an empty collection. Any invalid value, duplicate or
// unresolved reference fails the whole load.
func LoadFrom(ctx context.Context, paths Paths, validate *validator.Validate) (domain.HrManagerData, error) {
	var (
		cDoc candidatesDocument
		pDoc positionsDocument
		iDoc interviewsDocument
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return readDocument(gctx, paths.Candidates, &cDoc) })
	g.Go(func() error { return readDocument(gctx, paths.Positions, &pDoc) })
	g.Go(func() error { return readDocument(gctx, paths.Interviews, &iDoc) })
	if err := g.Wait(); err != nil {
		return domain.HrManagerData{}, err
	}

	data, err := resolve(validate, cDoc, pDoc, iDoc)
	if err != nil {
		return domain.HrManagerData{}, err
	}
	return data, nil
}

func resolve(validate *validator.Validate, cDoc candidatesDocument, pDoc positionsDocument, iDoc interviewsDocument) (domain.HrManagerData, error) {
	var data domain.HrManagerData

	positions := make(map[string]domain.Position, len(pDoc.Positions))
	for i, r := range pDoc.Positions {
		if err := validateRecord(validate, r, "position", i); err != nil {
			return data, err
		}
		if _, dup := positions[r.Title]; dup {
			return data, apperror.DataConversion(fmt.Sprintf("position %d", i+1),
				fmt.Errorf("%w: %q", domain.ErrDuplicate, r.Title))
		}
		p := r.toDomain()
		positions[p.Title] = p
		data.Positions = append(data.Positions, p)
	}

	candidates := make(map[string]domain.Candidate, len(cDoc.Candidates))
	for i, r := range cDoc.Candidates {
		if err := validateRecord(validate, r, "candidate", i); err != nil {
			return data, err
		}
		for _, title := range r.Positions {
			if _, ok := positions[title]; !ok {
				return data, apperror.DataConversion(fmt.Sprintf("candidate %d", i+1),
					fmt.Errorf("%w: position %q", domain.ErrDanglingReference, title))
			}
		}
		c := r.toDomain()
		if _, dup := candidates[c.Key()]; dup {
			return data, apperror.DataConversion(fmt.Sprintf("candidate %d", i+1),
				fmt.Errorf("%w: %q", domain.ErrDuplicate, r.Name))
		}
		candidates[c.Key()] = c
		data.Candidates = append(data.Candidates, c)
	}

	for i, r := range iDoc.Interviews {
		where := fmt.Sprintf("interview %d", i+1)
		if err := validateRecord(validate, r, "interview", i); err != nil {
			return data, err
		}
		p, ok := positions[r.Position]
		if !ok {
			return data, apperror.DataConversion(where,
				fmt.Errorf("%w: position %q", domain.ErrDanglingReference, r.Position))
		}
		scheduled := make([]domain.Candidate, 0, len(r.Candidates))
		for _, name := range r.Candidates {
			c, ok := candidates[domain.CandidateKey(name)]
			if !ok {
				return data, apperror.DataConversion(where,
					fmt.Errorf("%w: candidate %q", domain.ErrDanglingReference, name))
			}
			scheduled = append(scheduled, c)
		}
		iv, err := r.toDomain(p, scheduled)
		if err != nil {
			return data, apperror.DataConversion(where, err)
		}
		for _, existing := range data.Interviews {
			if existing.IsSame(iv) {
				return data, apperror.DataConversion(where, fmt.Errorf("%w: %s", domain.ErrDuplicate, iv))
			}
		}
		data.Interviews = append(data.Interviews, iv)
	}
	return data, nil
}

func validateRecord(validate *validator.Validate, record any, kind string, index int) error {
	if err := validate.Struct(record); err != nil {
		msg := strings.Join(validation.FormatValidationErrors(err), "; ")
		return apperror.DataConversion(fmt.Sprintf("%s %d", kind, index+1), errors.New(msg))
	}
	return nil
}

// SaveTo writes the three documents. Each write is atomic on its own; the
// three files are not updated as one unit.
func SaveTo(ctx context.Context, data domain.HrManagerData, paths Paths) error {
	cDoc := candidatesDocument{Candidates: make([]candidateRecord, 0, len(data.Candidates))}
	for _, c := range data.Candidates {
		cDoc.Candidates = append(cDoc.Candidates, newCandidateRecord(c))
	}
	pDoc := positionsDocument{Positions: make([]positionRecord, 0, len(data.Positions))}
	for _, p := range data.Positions {
		pDoc.Positions = append(pDoc.Positions, newPositionRecord(p))
	}
	iDoc := interviewsDocument{Interviews: make([]interviewRecord, 0, len(data.Interviews))}
	for _, i := range data.Interviews {
		iDoc.Interviews = append(iDoc.Interviews, newInterviewRecord(i))
	}

	if err := writeDocument(ctx, paths.Candidates, cDoc); err != nil {
		return err
	}
	if err := writeDocument(ctx, paths.Positions, pDoc); err != nil {
		return err
	}
	if err := writeDocument(ctx, paths.Interviews, iDoc); err != nil {
		return err
	}

	logger.Log.Debug("data saved",
		"request_id", ctx.Value(domain.KeyRequestID),
		"command", ctx.Value(domain.KeyCommandWord),
		"candidates", len(cDoc.Candidates),
		"positions", len(pDoc.Positions),
		"interviews", len(iDoc.Interviews),
	)
	return nil
}

func readDocument(ctx context.Context, path string, out any) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return apperror.IO("Could not read "+path, err)
	}

	// The lock file is created next to the document. In a directory we may
	// not write to, nobody can replace the document either, so read unlocked.
	lock := flock.New(path + ".lock")
	locked, err := lock.TryRLockContext(ctx, lockRetryDelay)
	switch {
	case err != nil && readOnlyDir(err):
		logger.Log.Debug("reading without lock", "path", path, "error", err)
	case err != nil || !locked:
		return apperror.IO("Could not lock "+path, lockError(err))
	default:
		defer lock.Unlock()
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return apperror.IO("Could not read "+path, err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return apperror.DataConversion("Malformed JSON in "+path, err)
	}
	return nil
}

func writeDocument(ctx context.Context, path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return apperror.IO("Could not encode "+path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return apperror.IO("Could not create directory for "+path, err)
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil || !locked {
		return apperror.IO("Could not lock "+path, lockError(err))
	}
	defer lock.Unlock()

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return apperror.IO("Could not write "+path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return apperror.IO("Could not write "+path, err)
	}
	return nil
}

func readOnlyDir(err error) bool {
	return errors.Is(err, fs.ErrPermission) || errors.Is(err, syscall.EROFS)
}

func lockError(err error) error {
	if err != nil {
		return err
	}
	return errors.New("lock is held by another process")
}
