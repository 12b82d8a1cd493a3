package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/formcheck-backend/internal/app"
	"github.com/heartmarshall/formcheck-backend/internal/config"
	"github.com/heartmarshall/formcheck-backend/internal/domain"
	"github.com/heartmarshall/formcheck-backend/internal/formfile"
	"github.com/heartmarshall/formcheck-backend/internal/service/validation"
)

type validateOptions struct {
	formPath    string
	answersPath string
	provider    string
	output      string
	timeout     time.Duration
}

func newValidateCmd() *cobra.Command {
	var opts validateOptions

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Evaluate an answers file against a form definition",
		Long: "Evaluate an answers file against a form definition and print the outcome.\n" +
			"Answer keys are field labels or 1-based positions such as \"#2\".\n" +
			"Signal provider credentials are read from SIGNALS_* environment variables.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.formPath, "form", "", "path to the form definition (YAML)")
	cmd.Flags().StringVar(&opts.answersPath, "answers", "", "path to the answers file (YAML)")
	cmd.Flags().StringVar(&opts.provider, "provider", "", "signal provider (disabled, google, anthropic, openai, gemini); overrides SIGNALS_PROVIDER")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "output format (text, json)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", time.Minute, "overall evaluation timeout")
	_ = cmd.MarkFlagRequired("form")
	_ = cmd.MarkFlagRequired("answers")

	return cmd
}

func runValidate(cmd *cobra.Command, opts validateOptions) error {
	if opts.output != "text" && opts.output != "json" {
		return fmt.Errorf("unknown output format %q", opts.output)
	}

	input, err := formfile.LoadForm(opts.formPath)
	if err != nil {
		return err
	}
	answers, err := formfile.LoadAnswers(opts.answersPath)
	if err != nil {
		return err
	}

	form := input.ToDomain(uuid.New(), time.Now())
	values, err := formfile.BindAnswers(form, answers)
	if err != nil {
		return err
	}

	var signalsCfg config.SignalsConfig
	if err := cleanenv.ReadEnv(&signalsCfg); err != nil {
		return fmt.Errorf("read signals config: %w", err)
	}
	if opts.provider != "" {
		signalsCfg.Provider = opts.provider
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
	defer cancel()

	logger := commandLogger(cmd)
	signals, err := app.NewSignalProvider(ctx, signalsCfg, logger)
	if err != nil {
		return err
	}

	engine := validation.NewAggregator(signals, config.DefaultValidation(), logger)
	outcome := engine.Evaluate(ctx, form.Fields, values)

	if opts.output == "json" {
		err = writeOutcomeJSON(cmd.OutOrStdout(), form, outcome)
	} else {
		err = writeOutcomeText(cmd.OutOrStdout(), form, outcome)
	}
	if err != nil {
		return err
	}

	if !outcome.Accepted {
		return errRejected
	}
	return nil
}

type fieldOutput struct {
	Position int              `json:"position"`
	Label    string           `json:"label"`
	Semantic string           `json:"semantic"`
	Findings []domain.Finding `json:"findings"`
	Quiz     *quizOutput      `json:"quiz,omitempty"`
}

type quizOutput struct {
	Correct       bool `json:"correct"`
	PointsAwarded int  `json:"points_awarded"`
	PointsMax     int  `json:"points_max"`
}

type outcomeOutput struct {
	Form         string        `json:"form"`
	Accepted     bool          `json:"accepted"`
	Errors       int           `json:"errors"`
	QuizScore    *int          `json:"quiz_score,omitempty"`
	QuizMaxScore int           `json:"quiz_max_score,omitempty"`
	Fields       []fieldOutput `json:"fields"`
}

func toOutput(form domain.Form, outcome domain.SubmissionOutcome) outcomeOutput {
	labels := make(map[uuid.UUID]domain.Field, len(form.Fields))
	for _, f := range form.Fields {
		labels[f.ID] = f
	}

	out := outcomeOutput{
		Form:         form.Title,
		Accepted:     outcome.Accepted,
		Errors:       outcome.ErrorCount(),
		QuizScore:    outcome.QuizScore,
		QuizMaxScore: outcome.QuizMaxScore,
		Fields:       make([]fieldOutput, 0, len(outcome.Fields)),
	}

	for _, r := range outcome.Fields {
		field := labels[r.FieldID]
		fo := fieldOutput{
			Position: field.Position + 1,
			Label:    field.Label,
			Semantic: r.Semantic.String(),
			Findings: r.Findings,
		}
		if fo.Findings == nil {
			fo.Findings = []domain.Finding{}
		}
		if r.Quiz != nil {
			fo.Quiz = &quizOutput{Correct: r.Quiz.Correct, PointsAwarded: r.Quiz.PointsAwarded, PointsMax: r.Quiz.PointsMax}
		}
		out.Fields = append(out.Fields, fo)
	}
	return out
}

func writeOutcomeJSON(w io.Writer, form domain.Form, outcome domain.SubmissionOutcome) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toOutput(form, outcome))
}

func writeOutcomeText(w io.Writer, form domain.Form, outcome domain.SubmissionOutcome) error {
	out := toOutput(form, outcome)

	result := "accepted"
	if !out.Accepted {
		result = fmt.Sprintf("rejected (%d errors)", out.Errors)
	}

	p := &printer{w: w}
	p.printf("form:   %s\n", out.Form)
	p.printf("result: %s\n", result)
	if out.QuizScore != nil {
		p.printf("quiz:   %d/%d\n", *out.QuizScore, out.QuizMaxScore)
	}

	for _, f := range out.Fields {
		p.printf("\n#%d %s [%s]\n", f.Position, f.Label, f.Semantic)
		if f.Quiz != nil {
			p.printf("  quiz: correct=%t points=%d/%d\n", f.Quiz.Correct, f.Quiz.PointsAwarded, f.Quiz.PointsMax)
		}
		for _, fd := range f.Findings {
			p.printf("  %-7s %-9s %s", fd.Severity, fd.Type, fd.Issue)
			if fd.Correction != nil {
				p.printf(" (suggestion: %s)", *fd.Correction)
			}
			p.printf("\n")
		}
	}
	return p.err
}

// printer remembers the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
