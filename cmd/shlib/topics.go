package shlib

import (
	"embed"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/NovaOrdis/std.shlib/pkg/topics"
)

//go:embed topics/*.md
var topicFiles embed.FS

// initTopics installs the topic-aware help command
func initTopics(rootCmd *cobra.Command) error {
	source, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return err
	}
	_, err = topics.Initialize(rootCmd, source, topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(),
	})
	return err
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		GroupID: groupMisc,
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil && helpCmd.Run != nil {
				helpCmd.Run(helpCmd, []string{"topics"})
			}
		},
	}
}
