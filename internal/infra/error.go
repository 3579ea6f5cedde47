package infra

import (
	"errors"

	"book-courier/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr classifies a store error. Only unexpected failures are logged here;
// not-found and duplicate results are ordinary outcomes for the callers.
func WrapRepoErr(kind RepositoryErrorKind, msg string, err error) error {
	if kind == KindDBFailure {
		fields := []zap.Field{zap.String("kind", string(kind))}
		if err != nil {
			fields = append(fields, zap.Error(err))
		}
		zap.L().Error("Repository error: "+msg, fields...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, msg: msg, err: err}
}

// ClassifyMongoErr maps driver errors onto repository kinds.
func ClassifyMongoErr(msg string, err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return WrapRepoErr(KindNotFound, msg, err)
	case mongo.IsDuplicateKeyError(err):
		return WrapRepoErr(KindDuplicateKey, msg, err)
	default:
		return WrapRepoErr(KindDBFailure, msg, err)
	}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound     RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure    RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey RepositoryErrorKind = "DUPLICATE_KEY"
	KindInvalidID    RepositoryErrorKind = "INVALID_ID"
)
