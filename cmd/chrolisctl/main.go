package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/danmuck/chrolisctl/internal/config"
	"github.com/danmuck/chrolisctl/internal/logging"
	"github.com/danmuck/chrolisctl/internal/step"
)

const usage = `usage: chrolisctl <command> [flags]

commands:
  encode    encode one step from form values
  decode    describe the csv lines of a program
  plan      encode a TOML plan file into a program
  template  write a planner config template
`

func main() {
	logging.ConfigureRuntime()
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "chrolisctl: %s\n", userMessage(err))
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 {
		return errors.New(usage)
	}
	switch args[0] {
	case "encode":
		return runEncode(args[1:], stdout)
	case "decode":
		return runDecode(args[1:], stdin, stdout)
	case "plan":
		return runPlan(args[1:], stdout)
	case "template":
		return runTemplate(args[1:], stdout)
	case "-h", "--help", "help":
		_, err := io.WriteString(stdout, usage)
		return err
	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
}

// userMessage replaces numeric parse detail with the form's generic hint.
func userMessage(err error) string {
	if errors.Is(err, step.ErrNumericParse) {
		return "please enter valid numbers in all fields (" + err.Error() + ")"
	}
	return err.Error()
}

func fieldUnits(configPath string) (step.FieldUnits, error) {
	if configPath == "" {
		return step.DefaultFieldUnits(), nil
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return step.FieldUnits{}, err
	}
	return cfg.Units.FieldUnits()
}

func runEncode(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	configPath := fs.String("config", "", "planner config for field units")
	var in step.Input
	fs.StringVar(&in.LED, "led", "", "LED index (1-6)")
	fs.StringVar(&in.Frequency, "freq", "", "frequency; empty for a single pulse or break")
	fs.StringVar(&in.TotalDuration, "total", "", "total duration")
	fs.StringVar(&in.PulseDuration, "pulse", "", "pulse duration")
	fs.StringVar(&in.Power, "power", "", "power (0-1000 = 0-100.0%)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	fu, err := fieldUnits(*configPath)
	if err != nil {
		return err
	}
	line, err := step.EncodeInput(in, fu)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, line)
	return err
}

func runDecode(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	input := fs.String("i", "", "program path (defaults to stdin)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	if *input == "" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(*input)
	}
	if err != nil {
		return fmt.Errorf("read program: %w", err)
	}

	steps, err := step.DecodeProgram(string(data))
	if err != nil {
		return err
	}
	for _, s := range steps {
		if _, err := fmt.Fprintln(stdout, s); err != nil {
			return err
		}
	}
	return nil
}

func runPlan(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("plan", flag.ContinueOnError)
	input := fs.String("i", "", "plan path")
	output := fs.String("o", "", "program output path (defaults to stdout)")
	configPath := fs.String("config", "", "planner config for default field units")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *input == "" {
		return errors.New("plan: -i is required")
	}

	fu, err := fieldUnits(*configPath)
	if err != nil {
		return err
	}
	s, err := loadPlan(*input, fu)
	if err != nil {
		return err
	}

	if *output == "" {
		_, err = s.WriteTo(stdout)
		return err
	}
	f, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("create program: %w", err)
	}
	if _, err := s.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write program: %w", err)
	}
	return f.Close()
}

func runTemplate(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("template", flag.ContinueOnError)
	output := fs.String("o", "planner.toml", "output path for config template")
	force := fs.Bool("force", false, "overwrite existing config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := config.WriteTemplate(*output, *force); err != nil {
		return err
	}
	_, err := fmt.Fprintf(stdout, "wrote planner config template to %s\n", *output)
	return err
}
