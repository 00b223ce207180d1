package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"google.golang.org/genai"

	"github.com/gemcore/gemcore"
)

var flagFiles []string

var generateCmd = &cobra.Command{
	Use:   "generate [prompt...]",
	Short: "Generate a complete response for a prompt",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		client, err := newClient(ctx)
		if err != nil {
			return err
		}

		parts, err := promptParts(args)
		if err != nil {
			return err
		}

		resp, err := client.GenerateContent(ctx, parts, generateOptions()...)
		if err != nil {
			return err
		}

		fmt.Println(gemcore.ResponseText(resp))
		return nil
	},
}

var streamCmd = &cobra.Command{
	Use:   "stream [prompt...]",
	Short: "Generate a response, printing deltas as they arrive",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		client, err := newClient(ctx)
		if err != nil {
			return err
		}

		parts, err := promptParts(args)
		if err != nil {
			return err
		}

		events, err := client.Stream(ctx, parts, generateOptions()...)
		if err != nil {
			return err
		}
		for ev := range events {
			if ev.Err != nil {
				return ev.Err
			}
			if !ev.Thought {
				fmt.Print(ev.Delta)
			}
		}
		fmt.Println()
		return nil
	},
}

// promptParts combines the prompt text with any --file attachments.
func promptParts(args []string) ([]*genai.Part, error) {
	parts := []*genai.Part{gemcore.Text(strings.Join(args, " "))}
	for _, path := range flagFiles {
		part, err := gemcore.PartFromFile(path, "")
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}
	return parts, nil
}

func init() {
	for _, cmd := range []*cobra.Command{generateCmd, streamCmd} {
		cmd.Flags().StringArrayVar(&flagFiles, "file", nil, "attach a file to the prompt (repeatable)")
	}
	rootCmd.AddCommand(generateCmd, streamCmd)
}
