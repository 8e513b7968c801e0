package util

import "errors"

var (
	ErrMissingUserID       = errors.New("id_user is required")
	ErrMissingLearningPath = errors.New("learning_path is required")
	ErrMissingPath         = errors.New("learning path is required")
	ErrUnknownDataset      = errors.New("unknown dataset")
	ErrUnsupportedStorage  = errors.New("unsupported storage type")
)
