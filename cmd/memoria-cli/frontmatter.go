package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/memoria/internal/domain/frontmatter"
)

// errInvalidFrontmatter marks a check failure already reported to the user.
var errInvalidFrontmatter = errors.New("invalid frontmatter")

func frontmatterCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frontmatter",
		Short: "Check and normalize document frontmatter locally",
	}
	cmd.AddCommand(frontmatterCheckCmd(opts))
	cmd.AddCommand(frontmatterFmtCmd())
	return cmd
}

func frontmatterCheckCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate the frontmatter block of a markdown file (- for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			v, err := validate(body)

			out := cmd.OutOrStdout()
			if err != nil {
				fmt.Fprintf(out, "%s %s: %v\n", errorColor.Sprint("FAIL"), args[0], err)
				return errInvalidFrontmatter
			}
			if opts.json {
				return writeJSON(out, map[string]any{
					"title":   v.Title,
					"tags":    v.Tags,
					"status":  v.Status,
					"updated": v.Updated,
				})
			}
			fmt.Fprintf(out, "%s %s\n", okColor.Sprint("OK"), args[0])
			fmt.Fprintf(out, "  title:   %s\n", titleColor.Sprint(v.Title))
			fmt.Fprintf(out, "  status:  %s\n", v.Status)
			fmt.Fprintf(out, "  tags:    %s\n", strings.Join(v.Tags, ", "))
			fmt.Fprintf(out, "  updated: %s\n", formatTime(v.Updated))
			return nil
		},
	}
}

func frontmatterFmtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt <file>",
		Short: "Print the file with its frontmatter rewritten in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			v, err := validate(body)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			_, rest, err := frontmatter.Split(body)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), frontmatter.Serialize(v)+rest)
			return err
		},
	}
}

// validate runs the parser and validator the API applies to document writes.
func validate(body string) (frontmatter.Validated, error) {
	if !frontmatter.HasBlock(body) {
		return frontmatter.Validated{}, errors.New("no frontmatter block: the file must start with a --- line")
	}
	fields, err := frontmatter.Parse(body)
	if err != nil {
		return frontmatter.Validated{}, err
	}
	return frontmatter.ValidateAndFill(fields, time.Now())
}

func readInput(stdin io.Reader, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
