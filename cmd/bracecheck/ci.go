package bracecheck

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var ciTemplates = map[string]struct{ path, content string }{
	"gitlab": {".gitlab-ci.yml", `stages: [lint]
bracecheck:
  stage: lint
  image: golang:1.25
  script:
    - go install github.com/bracecheck/bracecheck@latest
    - bracecheck check --sarif --fail-on warning | tee bracecheck.sarif
  artifacts:
    when: always
    paths:
      - bracecheck.sarif
`},
	"bitbucket": {"bitbucket-pipelines.yml", `pipelines:
  default:
    - step:
        name: bracecheck
        image: golang:1.25
        caches:
          - go
        script:
          - go install github.com/bracecheck/bracecheck@latest
          - bracecheck check --json --fail-on warning | tee bracecheck.json
        artifacts:
          - bracecheck.json
`},
	"azure": {"azure-pipelines.yml", `trigger:
- main

pool:
  vmImage: 'ubuntu-latest'

steps:
- task: GoTool@0
  inputs:
    version: '1.25.x'
- script: |
    go install github.com/bracecheck/bracecheck@latest
    $(go env GOPATH)/bin/bracecheck check --json --fail-on warning | tee bracecheck.json
  displayName: 'bracecheck'
- publish: bracecheck.json
  artifact: bracecheck
  condition: succeededOrFailed()
`},
}

func init() {
	ci := &cobra.Command{Use: "ci", Short: "CI template helpers for multiple providers"}
	rootCmd.AddCommand(ci)

	var provider, dir string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a CI pipeline template for your provider",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tpl, ok := ciTemplates[provider]
			if !ok {
				return fmt.Errorf("unknown --provider. Supported: gitlab, bitbucket, azure")
			}
			path := filepath.Join(dir, tpl.path)
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(tpl.content), 0644); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)
			return nil
		},
	}
	initCmd.Flags().StringVar(&provider, "provider", "", "CI provider: gitlab | bitbucket | azure")
	initCmd.Flags().StringVar(&dir, "dir", ".", "directory to write the template into")
	if err := initCmd.MarkFlagRequired("provider"); err != nil {
		fmt.Fprintln(os.Stderr, "warning: could not mark --provider as required:", err)
	}
	ci.AddCommand(initCmd)
}
