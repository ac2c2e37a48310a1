package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"alfredoptarigan/ats-resume-checker/internal/config"
	"alfredoptarigan/ats-resume-checker/internal/models"
	"alfredoptarigan/ats-resume-checker/internal/services"
)

type buildFunc func(ctx context.Context) (services.EvaluatorService, *config.Config, error)

type runOptions struct {
	jobDescription string
	jobFile        string
	threshold      int
	jsonOutput     bool
}

func newRootCmd(out io.Writer, build buildFunc) *cobra.Command {
	opts := &runOptions{}

	root := &cobra.Command{
		Use:          "atscheck",
		Short:        "Evaluate résumés against a job description with an LLM",
		SilenceUsage: true,
	}
	root.SetOut(out)

	root.PersistentFlags().StringVarP(&opts.jobDescription, "job-description", "j", "", "job description text")
	root.PersistentFlags().StringVar(&opts.jobFile, "job-file", "", "read the job description from a file")
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "print the run report as JSON")

	root.AddCommand(
		newTriggerCmd("hr", "Get HR feedback for each résumé", models.TriggerEvaluateHR, opts, build),
		newTriggerCmd("ats", "Rank résumés by ATS match percentage", models.TriggerEvaluateATS, opts, build),
		newShortlistCmd(opts, build),
	)

	return root
}

func newTriggerCmd(use, short string, trigger models.Trigger, opts *runOptions, build buildFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " RESUME...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrigger(cmd, trigger, args, opts, build)
		},
	}
}

func newShortlistCmd(opts *runOptions, build buildFunc) *cobra.Command {
	cmd := newTriggerCmd("shortlist", "List résumés at or above a match threshold", models.TriggerShortlist, opts, build)
	cmd.Flags().IntVarP(&opts.threshold, "threshold", "t", 70, "minimum ATS match percentage (0-100)")
	return cmd
}

func runTrigger(cmd *cobra.Command, trigger models.Trigger, paths []string, opts *runOptions, build buildFunc) error {
	jobDescription, err := opts.resolveJobDescription()
	if err != nil {
		return err
	}

	evaluator, cfg, err := build(cmd.Context())
	if err != nil {
		return err
	}

	docs, err := readLocalDocuments(paths, cfg.Storage.MaxFileSize)
	if err != nil {
		return err
	}

	req := models.RunRequest{
		Trigger:        trigger,
		JobDescription: jobDescription,
		Documents:      docs,
	}
	if trigger == models.TriggerShortlist {
		req.Threshold = cfg.Ranking.DefaultThreshold
		if cmd.Flags().Changed("threshold") {
			req.Threshold = opts.threshold
		}
	}

	report, err := evaluator.Run(cmd.Context(), req)
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	renderReport(cmd.OutOrStdout(), report)
	return nil
}

func (o *runOptions) resolveJobDescription() (string, error) {
	if o.jobFile == "" {
		return o.jobDescription, nil
	}
	if o.jobDescription != "" {
		return "", fmt.Errorf("use either --job-description or --job-file, not both")
	}

	data, err := os.ReadFile(o.jobFile)
	if err != nil {
		return "", fmt.Errorf("failed to read job description file: %w", err)
	}
	return string(data), nil
}

// readLocalDocuments applies the same extension and size checks as uploads.
func readLocalDocuments(paths []string, maxFileSize int64) ([]models.Document, error) {
	docs := make([]models.Document, 0, len(paths))
	for _, path := range paths {
		name := filepath.Base(path)
		if err := services.CheckDocumentName(name); err != nil {
			return nil, err
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if maxFileSize > 0 && info.Size() > maxFileSize {
			return nil, &services.InputValidationError{Field: "resumes", Reason: fmt.Sprintf("%s is too large. Max size: %d bytes", name, maxFileSize)}
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		docs = append(docs, models.Document{Name: name, Data: data})
	}
	return docs, nil
}
