package cli

import (
	"fmt"
	"os"

	"github.com/bmrskit/bmrsgen/internal/config"
	"github.com/bmrskit/bmrsgen/internal/loader"
	"github.com/bmrskit/bmrsgen/internal/validate"
	"github.com/spf13/cobra"
)

func ValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Compare a handwritten client against the specification",
		RunE:  runValidate,
	}

	config.BindCommonFlags(cmd)
	cmd.Flags().String("client", "", "Handwritten client source file to validate")
	cmd.Flags().String("generated", "", "Generated client source file to compare against")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd, nil)
	if err != nil {
		return err
	}
	if cfg.Validation.Client == "" {
		return fmt.Errorf("client file is required")
	}

	result, err := loader.LoadFile(cfg.Spec)
	if err != nil {
		return fmt.Errorf("loading spec: %w", err)
	}
	spec, err := loader.Transform(result)
	if err != nil {
		return fmt.Errorf("transforming spec: %w", err)
	}

	clientMethods, err := readClientMethods(cfg.Validation.Client)
	if err != nil {
		return err
	}
	methods := make([]string, 0, len(clientMethods))
	for _, m := range clientMethods {
		methods = append(methods, m.Name)
	}

	endpoints := validate.EndpointsFromSpec(spec)
	report := &validate.Report{
		SpecEndpoints: len(endpoints),
		ClientMethods: len(methods),
		Missing:       validate.MissingEndpoints(endpoints, methods),
		Undocumented:  validate.Undocumented(clientMethods),
	}

	if generatedPath, _ := cmd.Flags().GetString("generated"); generatedPath != "" {
		generated, err := readMethods(generatedPath)
		if err != nil {
			return err
		}
		report.OnlyExisting, report.OnlyGenerated = validate.Diff(methods, generated)
	}

	cmd.Print(report.Render(cfg.Validation.PreviewLimit))

	if len(report.Missing) > 0 {
		return fmt.Errorf("%d endpoints missing from client", len(report.Missing))
	}
	return nil
}

func readMethods(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening client source: %w", err)
	}
	defer f.Close()
	return validate.ExtractMethodNames(f)
}

func readClientMethods(path string) ([]validate.Method, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening client source: %w", err)
	}
	defer f.Close()
	return validate.ExtractMethods(f)
}
