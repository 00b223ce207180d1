package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gemcore/gemcore"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("chat requires an interactive terminal, use generate for piped input")
		}

		ctx := cmd.Context()
		client, err := newClient(ctx)
		if err != nil {
			return err
		}

		session, err := client.StartChat(ctx, nil, generateOptions()...)
		if err != nil {
			return err
		}

		fmt.Printf("Chatting with %s. Type /quit to exit.\n", client.Settings().Model)
		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if line == "/quit" || line == "/exit" {
				break
			}

			for resp, err := range session.SendStream(ctx, gemcore.Text(line)) {
				if err != nil {
					return err
				}
				fmt.Print(gemcore.ResponseText(resp))
			}
			fmt.Println()
		}
		return scanner.Err()
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
