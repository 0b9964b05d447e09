package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hr-recommendation/internal/recommendation"
	"hr-recommendation/internal/recommendation/usecase"
)

var smokeLLM = &providerFlags{}

type sampleEmployee struct {
	scenario string
	metrics  recommendation.EmployeeMetrics
}

func sampleEmployees() []sampleEmployee {
	f := recommendation.Float64
	s := recommendation.String
	return []sampleEmployee{
		{
			scenario: "High Performer",
			metrics: recommendation.EmployeeMetrics{
				ID: "001", Name: s("Sarah Johnson"), Designation: s("Software Engineer"),
				Efficiency: f(92), Attendance: f(96), BayHours: f(7.5),
				ClusterType: s("Consistent Performer"), Punctuality: f(94), Score: f(92),
			},
		},
		{
			scenario: "Needs Improvement",
			metrics: recommendation.EmployeeMetrics{
				ID: "002", Name: s("Mike Chen"), Designation: s("Senior Software Engineer"),
				Efficiency: f(68), Attendance: f(78), BayHours: f(9.2),
				ClusterType: s("At Risk"), Punctuality: f(75), Score: f(68),
			},
		},
		{
			scenario: "Average Performer",
			metrics: recommendation.EmployeeMetrics{
				ID: "003", Name: s("Alex Rodriguez"), Designation: s("Trainee Decision Scientist"),
				Efficiency: f(85), Attendance: f(88), BayHours: f(6.5),
				ClusterType: s("Late Starter"), Punctuality: f(82), Score: f(85),
			},
		},
	}
}

var smokeCmd = &cobra.Command{
	Use:   "smoke",
	Short: "Run three sample employees through the full pipeline",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		l := newLogger()
		uc := usecase.New(l, buildGenerator(ctx, cmd, l, smokeLLM), nil)
		w := cmd.OutOrStdout()

		samples := sampleEmployees()
		fromLLM := 0
		for i, s := range samples {
			fmt.Fprintf(w, "\nTest %d: %s\n", i+1, s.scenario)
			fmt.Fprintf(w, "  Employee: %s (%s)\n", *s.metrics.Name, *s.metrics.Designation)
			fmt.Fprintf(w, "  Metrics: %v%% efficiency, %v%% attendance\n", *s.metrics.Efficiency, *s.metrics.Attendance)

			out := uc.Generate(ctx, s.metrics)
			if out.Source == recommendation.SourceLLM {
				fromLLM++
			}
			if err := writeResult(w, outputFormat, result{
				Source:          string(out.Source),
				FallbackReason:  out.FallbackReason,
				Recommendations: out.Recommendations,
			}); err != nil {
				return err
			}
		}

		fmt.Fprintf(w, "\nResults: %d/%d answered by the language model\n", fromLLM, len(samples))
		return nil
	},
}

func init() {
	smokeLLM.register(smokeCmd.Flags())
}
