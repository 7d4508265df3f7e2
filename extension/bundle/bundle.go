// Package bundle provides the bundle extension: downloading the WMO
// topic hierarchy bundle and the IANA TLD registry into the local tables
// directory.
package bundle

import (
	"fmt"

	"github.com/jpl-au/wistopics/cmd"
	"github.com/jpl-au/wistopics/extension"
	"github.com/jpl-au/wistopics/internal/log"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the bundle extension.
type Extension struct{}

var (
	_ extension.Extension  = (*Extension)(nil)
	_ extension.TablesFree = (*Extension)(nil)
)

// Name returns "bundle".
func (e *Extension) Name() string { return "bundle" }

// Commands returns the bundle command group.
func (e *Extension) Commands() []*cobra.Command {
	bundleCmd := &cobra.Command{
		Use:   "bundle",
		Short: "Reference table bundle management",
	}
	bundleCmd.AddCommand(newSyncCmd())
	return []*cobra.Command{bundleCmd}
}

// NoTablesCommands returns "bundle": sync must work before any tables
// exist, since it is what creates them.
func (e *Extension) NoTablesCommands() []string {
	return []string{"bundle"}
}

func newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Sync the reference table bundle",
		Long: `Download the WMO topic hierarchy bundle and the IANA TLD registry
into the tables directory, replacing any previous contents.`,
		RunE: runSync,
	}
}

func runSync(c *cobra.Command, _ []string) error {
	store, cfg, err := cmd.NewBundleStore()
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	err = store.Sync(c.Context())

	log.Event("bundle:sync", "sync").
		Detail("dir", store.Dir()).
		Detail("topic_url", cfg.TopicURL()).
		Detail("tld_url", cfg.TLDURL()).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(err)
	}

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]string{"status": "synced", "dir": store.Dir()})
	}
	fmt.Fprintf(cmd.Out(), "Synced reference tables to %s\n", store.Dir())
	return nil
}
