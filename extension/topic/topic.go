// Package topic provides the topic hierarchy extension: validation and
// child listing commands that forward into the engine.
package topic

import (
	"errors"
	"fmt"

	"github.com/jpl-au/wistopics/cmd"
	"github.com/jpl-au/wistopics/extension"
	"github.com/jpl-au/wistopics/internal/log"
	"github.com/jpl-au/wistopics/internal/topics"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the topic extension.
type Extension struct{}

var _ extension.Extension = (*Extension)(nil)

// Name returns "topic".
func (e *Extension) Name() string { return "topic" }

// Commands returns the topic command group.
func (e *Extension) Commands() []*cobra.Command {
	topicCmd := &cobra.Command{
		Use:   "topic",
		Short: "Topic hierarchy utilities",
	}
	topicCmd.AddCommand(newValidateCmd(), newListCmd())
	return []*cobra.Command{topicCmd}
}

func newValidateCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "validate <topic>",
		Short: "Validate a topic hierarchy",
		Long: `Validate a topic hierarchy against the reference tables.

  wistopics topic validate cache/a/wis2/ca-eccc-msc/data/core
  wistopics topic validate --no-strict 'cache/a/wis2/+/data/core/#'

Strict mode (the default) rejects the wildcards + and # and requires the
centre-id to be a table member. Use --no-strict for subscription topics.`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
	c.Flags().Bool(extension.FlagNoStrict, false, "Permit wildcards and skip centre-id membership")
	return c
}

func runValidate(c *cobra.Command, args []string) error {
	noStrict, _ := c.Flags().GetBool(extension.FlagNoStrict)
	topic := args[0]
	strict := !noStrict

	valid, err := cmd.Ctx().Hierarchy().Validate(topic, strict)

	log.Event("topic:validate", "validate").Topic(topic).Detail("strict", strict).Detail("valid", valid).Write(err)

	if err != nil {
		return cmd.PrintJSONError(err)
	}

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]any{"topic": topic, "strict": strict, "valid": valid})
	}
	if valid {
		fmt.Fprintln(cmd.Out(), "Valid")
	} else {
		fmt.Fprintln(cmd.Out(), "Invalid")
	}
	return nil
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <topic>",
		Short: "List topic children at a given level",
		Long: `List the valid next-level tokens beneath a topic. Use / for the root.

  wistopics topic list /
  wistopics topic list cache/a/wis2/ca-eccc-msc/data/core`,
		Args: cobra.ExactArgs(1),
		RunE: runList,
	}
}

func runList(_ *cobra.Command, args []string) error {
	topic := args[0]

	children, err := cmd.Ctx().Hierarchy().ListChildren(topic)

	log.Event("topic:list", "list").Topic(topic).Detail("count", len(children)).Write(err)

	if err != nil {
		if errors.Is(err, topics.ErrNoMatch) {
			return cmd.PrintJSONError(fmt.Errorf("no matching topics for %s", topic))
		}
		return cmd.PrintJSONError(err)
	}

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]any{"topic": topic, "children": children})
	}
	fmt.Fprintln(cmd.Out(), "Matching topics")
	for _, child := range children {
		fmt.Fprintf(cmd.Out(), "- %s\n", child)
	}
	return nil
}
