// Package centreid provides the centre-id extension: validation of
// candidate centre identifiers against the TLD registry and the
// allocated centre-id table.
package centreid

import (
	"fmt"

	"github.com/jpl-au/wistopics/cmd"
	"github.com/jpl-au/wistopics/extension"
	"github.com/jpl-au/wistopics/internal/centreid"
	"github.com/jpl-au/wistopics/internal/log"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the centre-id extension.
type Extension struct{}

var _ extension.Extension = (*Extension)(nil)

// Name returns "centre-id".
func (e *Extension) Name() string { return "centre-id" }

// Commands returns the centre-id command group.
func (e *Extension) Commands() []*cobra.Command {
	centreCmd := &cobra.Command{
		Use:   "centre-id",
		Short: "Centre-id utilities",
	}
	centreCmd.AddCommand(newValidateCmd())
	return []*cobra.Command{centreCmd}
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <centre-id>",
		Short: "Validate a centre-id",
		Long: `Validate a candidate centre-id of the form <tld>-<centre-name>.

  wistopics centre-id validate int-my-centre-dcpc

The TLD must appear in the IANA registry and the centre-id must not
already be allocated.`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(_ *cobra.Command, args []string) error {
	id := args[0]

	cid, err := centreid.New(id)
	if err != nil {
		log.Event("centre-id:validate", "validate").Topic(id).Write(err)
		return cmd.PrintJSONError(err)
	}

	tlds, err := cmd.Ctx().Store().LoadTLDs()
	if err != nil {
		log.Event("centre-id:validate", "validate").Topic(id).Write(err)
		return cmd.PrintJSONError(err)
	}

	valid := cid.Validate(tlds, cmd.Ctx().Hierarchy().Tables())

	log.Event("centre-id:validate", "validate").Topic(id).Detail("valid", valid).Write(nil)

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]any{"centre_id": id, "valid": valid})
	}
	if valid {
		fmt.Fprintln(cmd.Out(), "Valid")
	} else {
		fmt.Fprintln(cmd.Out(), "Invalid")
	}
	return nil
}
