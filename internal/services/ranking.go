package services

import (
	"fmt"
	"sort"

	"alfredoptarigan/ats-resume-checker/internal/models"
)

// UnscoredPolicy decides what happens to ATS responses without a percentage.
type UnscoredPolicy string

const (
	// UnscoredAsZero ranks unscored results as a 0% match.
	UnscoredAsZero UnscoredPolicy = "zero"
	// UnscoredExclude drops unscored results from the ranked set.
	UnscoredExclude UnscoredPolicy = "exclude"
)

// Rank returns a copy of results sorted by score descending. Equal scores
// keep their input order.
func Rank(results []models.EvaluationResult) models.RankedResultSet {
	ranked := make(models.RankedResultSet, len(results))
	copy(ranked, results)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score.Value > ranked[j].Score.Value
	})
	return ranked
}

// Shortlist keeps the entries whose score is at or above threshold.
func Shortlist(ranked models.RankedResultSet, threshold int) models.ShortlistView {
	view := models.ShortlistView{
		Threshold:  threshold,
		Candidates: []models.EvaluationResult{},
	}

	for _, result := range ranked {
		if result.Score.Value >= threshold {
			view.Candidates = append(view.Candidates, result)
		}
	}

	view.Count = len(view.Candidates)
	if view.Count == 0 {
		view.Notice = fmt.Sprintf("No resumes met the %d%% ATS match threshold.", threshold)
	}
	return view
}

// applyUnscoredPolicy splits out results the policy excludes from ranking.
func applyUnscoredPolicy(results []models.EvaluationResult, policy UnscoredPolicy) ([]models.EvaluationResult, []models.DocumentFailure) {
	if policy != UnscoredExclude {
		return results, nil
	}

	kept := make([]models.EvaluationResult, 0, len(results))
	var dropped []models.DocumentFailure
	for _, result := range results {
		if result.Score.Scored {
			kept = append(kept, result)
			continue
		}
		dropped = append(dropped, models.DocumentFailure{
			Name:    result.Name,
			Stage:   models.StageScore,
			Message: "no match percentage found in model response",
		})
	}
	return kept, dropped
}
