package main

import (
	"fmt"
	"io"

	"alfredoptarigan/ats-resume-checker/internal/models"
)

func renderReport(w io.Writer, report *models.RunReport) {
	for _, failure := range report.Failures {
		fmt.Fprintf(w, "⚠️  %s (%s)\n", failure.Message, failure.Stage)
	}

	switch report.Trigger {
	case models.TriggerEvaluateHR:
		for _, fb := range report.Feedback {
			fmt.Fprintf(w, "\n### %s\n%s\n", fb.Name, fb.Body)
		}
	case models.TriggerShortlist:
		if report.Shortlist == nil {
			return
		}
		fmt.Fprintf(w, "\n🏆 Shortlisted (≥ %d%%): %d\n", report.Shortlist.Threshold, report.Shortlist.Count)
		if report.Shortlist.Notice != "" {
			fmt.Fprintln(w, report.Shortlist.Notice)
			return
		}
		for i, result := range report.Shortlist.Candidates {
			fmt.Fprintf(w, "%d. %s: %s\n", i+1, result.Name, result.Score)
		}
	default:
		for i, result := range report.Ranked {
			fmt.Fprintf(w, "\n%d. %s: %s\n%s\n", i+1, result.Name, result.Score, result.Body)
		}
	}
}
