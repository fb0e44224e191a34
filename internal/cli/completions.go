package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fidsort/pkg/fidsort"
)

// statusFilters maps --status values to scan statuses.
var statusFilters = map[string]fidsort.FileStatus{
	"ready":      fidsort.StatusReady,
	"sorted":     fidsort.StatusAlreadySorted,
	"no-fid":     fidsort.StatusNoIdentifier,
	"unreadable": fidsort.StatusUnreadable,
}

// completeStatusFilters provides shell completion for --status values.
func completeStatusFilters(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, name := range []string{"ready", "sorted", "no-fid", "unreadable"} {
		if strings.HasPrefix(name, toComplete) {
			matches = append(matches, name)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeDirectories provides shell completion for directory paths.
func completeDirectories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	// Let the shell handle directory completion
	return nil, cobra.ShellCompDirectiveFilterDirs
}
