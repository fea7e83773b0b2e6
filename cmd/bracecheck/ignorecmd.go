package bracecheck

import (
	"fmt"
	"path/filepath"

	"github.com/bracecheck/bracecheck/internal/files"
	"github.com/bracecheck/bracecheck/internal/ignore"
	"github.com/spf13/cobra"
)

func init() {
	var root string
	var generated bool
	cmd := &cobra.Command{
		Use:   "ignore [pattern...]",
		Short: "Add patterns to .bracecheckignore",
		RunE: func(cmd *cobra.Command, args []string) error {
			patterns := args
			if generated {
				patterns = append(patterns, files.DefaultGeneratedIgnores()...)
			}
			if len(patterns) == 0 {
				return fmt.Errorf("no patterns given (pass patterns or --generated)")
			}
			path := filepath.Join(root, ignore.FileName)
			n, err := files.AppendPatterns(path, patterns...)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %d pattern(s) to %s\n", n, path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&root, "path", "p", ".", "project root")
	cmd.Flags().BoolVar(&generated, "generated", false, "also add common generated-source patterns")
	rootCmd.AddCommand(cmd)
}
