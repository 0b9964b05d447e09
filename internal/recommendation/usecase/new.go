package usecase

import (
	"hr-recommendation/internal/recommendation"
	"hr-recommendation/pkg/log"
)

// implUseCase is the private implementation of recommendation.UseCase.
// It holds no mutable state and is safe for concurrent use.
type implUseCase struct {
	l   log.Logger
	gen recommendation.TextGenerator
	rec recommendation.Recorder
}

// New creates a recommendation UseCase. gen and rec may be nil: without a
// generator every request is answered by the rule engine.
func New(l log.Logger, gen recommendation.TextGenerator, rec recommendation.Recorder) recommendation.UseCase {
	return &implUseCase{
		l:   l,
		gen: gen,
		rec: rec,
	}
}
