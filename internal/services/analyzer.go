package services

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"hirely/resume-matcher/internal/config"
	"hirely/resume-matcher/internal/models"
	"hirely/resume-matcher/internal/repositories"
)

type AnalyzerService interface {
	AnalyzeResume(ctx context.Context, analysisID uuid.UUID) error
}

type analyzerService struct {
	analysisRepo     repositories.AnalysisRepository
	docRepo          repositories.DocumentRepository
	extractor        ExtractorService
	promptBuilder    *PromptBuilder
	parser           *ResponseParser
	aggregator       *Aggregator
	scoringBackends  []ScoreBackend
	narrativeBackend ScoreBackend
	features         config.FeatureConfig

	// Analyses within one session run one at a time so concurrent triggers
	// cannot interleave their writes into the session's result slot. Locks
	// are striped by session ID hash, so the set stays bounded no matter
	// how many sessions come and go.
	sessionLocks [sessionLockStripes]sync.Mutex
}

const sessionLockStripes = 64

func NewAnalyzerService(
	analysisRepo repositories.AnalysisRepository,
	docRepo repositories.DocumentRepository,
	extractor ExtractorService,
	scoringBackends []ScoreBackend,
	narrativeBackend ScoreBackend,
	features config.FeatureConfig,
) AnalyzerService {
	return &analyzerService{
		analysisRepo:     analysisRepo,
		docRepo:          docRepo,
		extractor:        extractor,
		promptBuilder:    NewPromptBuilder(),
		parser:           NewResponseParser(),
		aggregator:       NewAggregator(),
		scoringBackends:  scoringBackends,
		narrativeBackend: narrativeBackend,
		features:         features,
	}
}

func (a *analyzerService) sessionLock(sessionID uuid.UUID) *sync.Mutex {
	h := fnv.New32a()
	h.Write(sessionID[:])
	return &a.sessionLocks[h.Sum32()%sessionLockStripes]
}

// AnalyzeResume implements AnalyzerService. It runs the whole pipeline for
// one resume: extract both documents, query every scoring backend in
// parallel, parse, aggregate, then run the optional narrative and breakdown
// stages. Extraction failures fail the analysis; backend and parse failures
// degrade to defaults so the analysis always completes with something.
func (a *analyzerService) AnalyzeResume(ctx context.Context, analysisID uuid.UUID) error {
	if err := a.analysisRepo.UpdateStatus(analysisID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	log.Printf("🔄 Starting analysis %s\n", analysisID)

	analysis, err := a.analysisRepo.FindByID(analysisID)
	if err != nil {
		a.analysisRepo.UpdateError(analysisID, err.Error())
		return fmt.Errorf("failed to get analysis: %w", err)
	}

	lock := a.sessionLock(analysis.SessionID)
	lock.Lock()
	defer lock.Unlock()

	resumeText, jdText, err := a.loadTexts(analysis)
	if err != nil {
		a.analysisRepo.UpdateError(analysisID, err.Error())
		return err
	}

	// Candidate name via the narrative backend; "Unknown" when it is down.
	candidateName := a.extractCandidateName(ctx, resumeText)

	// Fan out to every scoring backend; they are independent and
	// read-only, so the calls run in parallel and we block until all of
	// them have returned or failed.
	scores := a.collectScores(ctx, resumeText, jdText)
	avgScore := a.aggregator.Average(scores)

	narrative := a.collectNarrative(ctx, resumeText, jdText)

	var keywordBreakdown *models.KeywordBreakdown
	if a.features.KeywordBreakdown {
		keywordBreakdown = a.collectKeywordBreakdown(ctx, resumeText, jdText)
	}

	var scoreBreakdown *models.ScoreBreakdown
	if a.features.ScoreBreakdown {
		scoreBreakdown = a.collectScoreBreakdown(ctx, resumeText, jdText)
	}

	log.Println("💾 Saving analysis results...")
	updateData := &repositories.AnalysisUpdateData{
		CandidateName:    candidateName,
		Scores:           scores,
		AverageScore:     avgScore,
		Summary:          narrative.Summary,
		MissingSkills:    narrative.MissingSkills,
		Suggestions:      narrative.Suggestions,
		KeywordBreakdown: keywordBreakdown,
		ScoreBreakdown:   scoreBreakdown,
	}

	if err := a.analysisRepo.UpdateResult(analysisID, updateData); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}

	log.Printf("✅ Analysis %s completed (avg %.2f%%)\n", analysisID, avgScore)
	return nil
}

func (a *analyzerService) loadTexts(analysis *models.Analysis) (string, string, error) {
	resumeDoc, err := a.docRepo.FindByID(analysis.ResumeDocumentID)
	if err != nil {
		return "", "", fmt.Errorf("resume document not found: %w", err)
	}

	jdDocs, err := a.docRepo.FindBySession(analysis.SessionID, models.KindJobDescription)
	if err != nil {
		return "", "", fmt.Errorf("failed to find job description: %w", err)
	}
	if len(jdDocs) == 0 {
		return "", "", fmt.Errorf("no job description uploaded for session %s", analysis.SessionID)
	}

	log.Println("📄 Extracting resume...")
	resume, err := a.extractor.Extract(resumeDoc.FilePath)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract resume: %w", err)
	}

	log.Println("📄 Extracting job description...")
	jd, err := a.extractor.Extract(jdDocs[0].FilePath)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract job description: %w", err)
	}

	return resume.Text(), jd.Text(), nil
}

func (a *analyzerService) extractCandidateName(ctx context.Context, resumeText string) string {
	prompt := a.promptBuilder.BuildCandidateNamePrompt(resumeText)

	raw, err := a.narrativeBackend.Complete(ctx, prompt)
	if err != nil {
		var unavailable *BackendUnavailable
		if errors.As(err, &unavailable) {
			log.Printf("⚠️  %s down during name extraction: %v\n", unavailable.Backend, unavailable.Err)
		}
		return "Unknown"
	}

	name := strings.TrimSpace(raw)
	if name == "" {
		return "Unknown"
	}
	return name
}

func (a *analyzerService) collectScores(ctx context.Context, resumeText, jdText string) []models.BackendScore {
	prompt := a.promptBuilder.BuildMatchPrompt(resumeText, jdText)

	scores := make([]models.BackendScore, len(a.scoringBackends))
	var wg sync.WaitGroup

	for i, backend := range a.scoringBackends {
		wg.Add(1)
		go func(i int, backend ScoreBackend) {
			defer wg.Done()

			raw, err := backend.Complete(ctx, prompt)
			if err != nil {
				log.Printf("⚠️  %s scoring failed: %v\n", backend.Name(), err)
				scores[i] = models.BackendScore{Backend: backend.Name(), Score: 0, Available: false}
				return
			}

			scores[i] = models.BackendScore{
				Backend:   backend.Name(),
				Score:     a.parser.ParseMatchScore(raw),
				Available: true,
			}
		}(i, backend)
	}

	wg.Wait()
	return scores
}

func (a *analyzerService) collectNarrative(ctx context.Context, resumeText, jdText string) Narrative {
	prompt := a.promptBuilder.BuildNarrativePrompt(resumeText, jdText)

	raw, err := a.narrativeBackend.Complete(ctx, prompt)
	if err != nil {
		log.Printf("⚠️  %s narrative failed: %v\n", a.narrativeBackend.Name(), err)
		return Narrative{Summary: "Unknown"}
	}

	return a.parser.ParseNarrative(raw)
}

func (a *analyzerService) collectKeywordBreakdown(ctx context.Context, resumeText, jdText string) *models.KeywordBreakdown {
	prompt := a.promptBuilder.BuildKeywordBreakdownPrompt(resumeText, jdText)

	raw, err := a.narrativeBackend.Complete(ctx, prompt)
	if err != nil {
		log.Printf("⚠️  %s keyword breakdown failed: %v\n", a.narrativeBackend.Name(), err)
		return nil
	}

	breakdown := a.parser.ParseKeywordBreakdown(raw)
	return &breakdown
}

func (a *analyzerService) collectScoreBreakdown(ctx context.Context, resumeText, jdText string) *models.ScoreBreakdown {
	if len(a.scoringBackends) == 0 {
		return nil
	}
	backend := a.scoringBackends[0]

	prompt := a.promptBuilder.BuildScoreBreakdownPrompt(resumeText, jdText)

	raw, err := backend.Complete(ctx, prompt)
	if err != nil {
		log.Printf("⚠️  %s score breakdown failed: %v\n", backend.Name(), err)
		return nil
	}

	return a.parser.ParseScoreBreakdown(raw)
}
