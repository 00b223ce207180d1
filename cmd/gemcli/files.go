package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"google.golang.org/genai"

	"github.com/gemcore/gemcore"
	"github.com/gemcore/gemcore/models"
)

var flagMIME string

var tokensCmd = &cobra.Command{
	Use:   "tokens [prompt...]",
	Short: "Count the tokens a prompt would consume",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		client, err := newClient(ctx)
		if err != nil {
			return err
		}

		resp, err := client.CountTokens(ctx, []*genai.Part{gemcore.Text(strings.Join(args, " "))})
		if err != nil {
			return err
		}

		fmt.Printf("%d tokens\n", resp.TotalTokens)
		if m, ok := models.Lookup(client.Settings().Model); ok {
			fmt.Printf("~$%.6f input cost on %s\n", m.Cost(int(resp.TotalTokens), 0), m)
		}
		return nil
	},
}

var uploadCmd = &cobra.Command{
	Use:   "upload <path>",
	Short: "Upload a file to the File API",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		client, err := newClient(ctx)
		if err != nil {
			return err
		}

		file, err := client.UploadFile(ctx, args[0], flagMIME)
		if err != nil {
			return err
		}

		fmt.Printf("uploaded %s (%s)\n", file.Name, file.URI)
		return nil
	},
}

func init() {
	uploadCmd.Flags().StringVar(&flagMIME, "mime", "", "MIME type override")
	rootCmd.AddCommand(tokensCmd, uploadCmd)
}
