package commands

import (
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.trai.ch/buildtrigger/internal/core/domain"
	"go.trai.ch/buildtrigger/internal/ui/output"
	"go.trai.ch/buildtrigger/internal/ui/style"
	"go.trai.ch/zerr"
)

func (c *CLI) newInvokeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoke",
		Short: "Run the function once and print its result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eventPath, _ := cmd.Flags().GetString("event")
			asJSON, _ := cmd.Flags().GetBool("json")

			event, err := readEvent(cmd, eventPath)
			if err != nil {
				return err
			}

			result, err := c.handler.Handle(cmd.Context(), event)
			if err != nil {
				return err
			}

			if asJSON {
				err = json.NewEncoder(cmd.OutOrStdout()).Encode(result)
			} else {
				err = renderResult(cmd.OutOrStdout(), result)
			}
			if err != nil {
				return zerr.Wrap(err, "failed to write result")
			}

			if !result.OK() {
				return domain.ErrInvocationFailed
			}
			return nil
		},
	}
	cmd.Flags().StringP("event", "e", "", "Path to a JSON event file, or - to read it from stdin")
	cmd.Flags().Bool("json", false, "Print the result as JSON")
	return cmd
}

// readEvent loads the invocation event. No path means an empty event.
func readEvent(cmd *cobra.Command, path string) (json.RawMessage, error) {
	if path == "" {
		return nil, nil
	}

	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		//nolint:gosec // Path is supplied by the operator on the command line
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrEventReadFailed.Error()), "path", path)
	}

	if !json.Valid(data) {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidEvent, ""), "path", path)
	}
	return json.RawMessage(data), nil
}

func renderResult(w io.Writer, result domain.Result) error {
	out := output.New(w)

	glyph, color := style.Outcome(result.OK())
	fg := out.Color(string(color))

	icon := out.String(glyph).Foreground(fg)
	code := out.String(strconv.Itoa(result.StatusCode)).Foreground(fg).Bold()

	_, err := out.WriteString(icon.String() + " " + code.String() + " " + result.Body + "\n")
	return err
}
