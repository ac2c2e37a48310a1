package services

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"alfredoptarigan/ats-resume-checker/internal/models"
	"alfredoptarigan/ats-resume-checker/internal/repositories"
)

// EvaluatorService runs one evaluation over a set of documents.
type EvaluatorService interface {
	Run(ctx context.Context, req models.RunRequest) (*models.RunReport, error)
}

type evaluatorService struct {
	extractor      DocumentExtractor
	completion     CompletionClient
	scorer         ScoreExtractor
	promptBuilder  *PromptBuilder
	worker         Worker
	runRepo        repositories.RunRepository
	validate       *validator.Validate
	unscoredPolicy UnscoredPolicy
}

func NewEvaluatorService(
	extractor DocumentExtractor,
	completion CompletionClient,
	scorer ScoreExtractor,
	worker Worker,
	runRepo repositories.RunRepository,
	unscoredPolicy UnscoredPolicy,
) EvaluatorService {
	if runRepo == nil {
		runRepo = repositories.NewNoopRunRepository()
	}
	if scorer == nil {
		scorer = NewRegexScoreExtractor()
	}

	return &evaluatorService{
		extractor:      extractor,
		completion:     completion,
		scorer:         scorer,
		promptBuilder:  NewPromptBuilder(),
		worker:         worker,
		runRepo:        runRepo,
		validate:       newRunValidator(),
		unscoredPolicy: unscoredPolicy,
	}
}

// documentOutcome is written by exactly one task, into its own slot.
type documentOutcome struct {
	done    bool
	result  models.EvaluationResult
	failure *models.DocumentFailure
}

// Run validates the request, evaluates every document independently, waits
// for all of them and then ranks (ATS) or lists (HR) the survivors.
func (e *evaluatorService) Run(ctx context.Context, req models.RunRequest) (*models.RunReport, error) {
	started := time.Now()
	runID := uuid.New()
	logger := log.With().Str("run_id", runID.String()).Str("trigger", string(req.Trigger)).Logger()

	if err := e.validateRequest(req); err != nil {
		logger.Warn().Err(err).Msg("⚠️ run rejected")
		e.audit(ctx, runID, req, models.RunRejected, 0, 0, started)
		return nil, err
	}

	logger.Info().Int("documents", len(req.Documents)).Msg("🔄 Starting evaluation run")

	mode := req.Trigger.Mode()
	scored := req.Trigger.Scored()
	outcomes := make([]documentOutcome, len(req.Documents))

	e.worker.Run(ctx, len(req.Documents), func(ctx context.Context, i int) {
		outcomes[i] = e.evaluateDocument(ctx, logger, req.Documents[i], req.JobDescription, mode, scored)
	})

	if err := ctx.Err(); err != nil {
		logger.Warn().Err(err).Msg("🛑 run cancelled")
		e.audit(context.WithoutCancel(ctx), runID, req, models.RunCancelled, 0, len(req.Documents), started)
		return nil, fmt.Errorf("evaluation run cancelled: %w", err)
	}

	report := &models.RunReport{RunID: runID, Trigger: req.Trigger}
	results := make([]models.EvaluationResult, 0, len(outcomes))
	for _, outcome := range outcomes {
		if outcome.failure != nil {
			report.Failures = append(report.Failures, *outcome.failure)
			continue
		}
		if outcome.done {
			results = append(results, outcome.result)
		}
	}

	switch req.Trigger {
	case models.TriggerEvaluateHR:
		report.Feedback = make([]models.HRFeedback, 0, len(results))
		for _, result := range results {
			report.Feedback = append(report.Feedback, models.HRFeedback{Name: result.Name, Body: result.Body})
		}
	default:
		kept, dropped := applyUnscoredPolicy(results, e.unscoredPolicy)
		report.Failures = append(report.Failures, dropped...)
		report.Ranked = Rank(kept)
		results = kept

		if req.Trigger == models.TriggerShortlist {
			view := Shortlist(report.Ranked, req.Threshold)
			report.Shortlist = &view
		}
	}

	e.audit(ctx, runID, req, models.RunCompleted, len(results), len(report.Failures), started)

	logger.Info().
		Int("results", len(results)).
		Int("failures", len(report.Failures)).
		Dur("elapsed", time.Since(started)).
		Msg("✅ Evaluation run completed")

	return report, nil
}

func (e *evaluatorService) evaluateDocument(
	ctx context.Context,
	logger zerolog.Logger,
	doc models.Document,
	jobDescription string,
	mode models.Mode,
	scored bool,
) documentOutcome {
	logger = logger.With().Str("document", doc.Name).Logger()

	resumeText, err := e.extractor.Extract(ctx, doc)
	if err != nil {
		logger.Error().Err(err).Msg("❌ Failed to extract document text")
		return documentOutcome{done: true, failure: &models.DocumentFailure{
			Name:    doc.Name,
			Stage:   models.StageExtraction,
			Message: extractionMessage(doc.Name, err),
		}}
	}

	prompt := e.promptBuilder.Build(mode, jobDescription, resumeText)
	logger.Debug().Int("prompt_chars", len(prompt)).Str("mode", string(mode)).Msg("📝 prompt built")

	response, err := e.completion.Complete(ctx, prompt)
	if err != nil {
		logger.Error().Err(err).Msg("❌ Completion failed")
		return documentOutcome{done: true, failure: &models.DocumentFailure{
			Name:    doc.Name,
			Stage:   models.StageCompletion,
			Message: completionMessage(doc.Name, err),
		}}
	}

	result := models.EvaluationResult{Name: doc.Name, Body: response}
	if scored {
		result.Score = e.scorer.ExtractScore(response)
		logger.Info().Str("score", result.Score.String()).Msg("✅ document scored")
	}

	return documentOutcome{done: true, result: result}
}

func (e *evaluatorService) audit(ctx context.Context, runID uuid.UUID, req models.RunRequest, status models.RunStatus, results, failures int, started time.Time) {
	record := &models.RunRecord{
		ID:            runID,
		Trigger:       req.Trigger,
		Status:        status,
		DocumentCount: len(req.Documents),
		ResultCount:   results,
		FailureCount:  failures,
		DurationMs:    time.Since(started).Milliseconds(),
		CreatedAt:     started,
	}
	if req.Trigger == models.TriggerShortlist {
		threshold := req.Threshold
		record.Threshold = &threshold
	}

	if err := e.runRepo.Create(ctx, record); err != nil {
		log.Warn().Err(err).Str("run_id", runID.String()).Msg("⚠️ failed to record run audit")
	}
}

func (e *evaluatorService) validateRequest(req models.RunRequest) error {
	if err := e.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return validationError(fieldErrs[0])
		}
		return &InputValidationError{Field: "request", Reason: err.Error()}
	}

	if strings.TrimSpace(req.JobDescription) == "" {
		return &InputValidationError{Field: "job_description", Reason: "is required"}
	}
	return nil
}

func newRunValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

func validationError(fe validator.FieldError) error {
	reason := fe.Tag()
	switch fe.Tag() {
	case "required":
		reason = "is required"
	case "min", "max":
		if fe.Field() == "threshold" {
			reason = "must be between 0 and 100"
		} else {
			reason = fmt.Sprintf("must contain at least %s item(s)", fe.Param())
		}
	case "oneof":
		reason = fmt.Sprintf("must be one of: %s", fe.Param())
	}
	return &InputValidationError{Field: fe.Field(), Reason: reason}
}

func extractionMessage(name string, err error) string {
	var exErr *ExtractionError
	if errors.As(err, &exErr) {
		return exErr.Error()
	}
	return (&ExtractionError{DocumentName: name, Cause: err}).Error()
}

func completionMessage(name string, err error) string {
	var compErr *CompletionError
	if errors.As(err, &compErr) {
		named := *compErr
		named.DocumentName = name
		return named.Error()
	}
	return (&CompletionError{DocumentName: name, Cause: err}).Error()
}
