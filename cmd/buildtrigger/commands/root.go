// Package commands implements the CLI commands for buildtrigger.
package commands

import (
	"context"
	"encoding/json"
	"io"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/spf13/cobra"
	"go.trai.ch/buildtrigger/internal/adapters/detector"
	"go.trai.ch/buildtrigger/internal/build"
	"go.trai.ch/buildtrigger/internal/core/domain"
)

// Handler runs one invocation of the function.
type Handler interface {
	Handle(ctx context.Context, event json.RawMessage) (domain.Result, error)
}

// Option configures a CLI.
type Option func(*CLI)

// WithStarter replaces the function that hands the handler to the Lambda
// runtime. It defaults to lambda.Start, which never returns.
func WithStarter(start func(handler any)) Option {
	return func(c *CLI) {
		c.start = start
	}
}

// WithLambdaDetector replaces the check that decides whether the process
// runs inside the Lambda runtime.
func WithLambdaDetector(inLambda func() bool) Option {
	return func(c *CLI) {
		c.inLambda = inLambda
	}
}

// CLI represents the command line interface for buildtrigger.
type CLI struct {
	handler  Handler
	rootCmd  *cobra.Command
	start    func(handler any)
	inLambda func() bool
}

// New creates a new CLI instance with the given handler.
func New(h Handler, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "buildtrigger",
		Short:         "Start a CodeBuild project and wait for the build to finish",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		handler:  h,
		rootCmd:  rootCmd,
		start:    lambda.Start,
		inLambda: detector.InLambda,
	}
	for _, opt := range opts {
		opt(c)
	}

	// Inside Lambda the bootstrap runs the binary without arguments.
	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		if c.inLambda() {
			return c.serve()
		}
		return cmd.Help()
	}

	rootCmd.AddCommand(c.newServeCmd())
	rootCmd.AddCommand(c.newInvokeCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the writers for command output and errors.
func (c *CLI) SetOutput(out, errOut io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
}

// SetInput sets the reader used when the event is read from stdin.
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}
