package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Ask the writing assistant a question",
	Long:  "Ask the writing assistant about drafting, formatting, publishing, or moderation. Always replies, using the builtin assistant when no provider is reachable.",
	RunE:  runChat,
}

var (
	chatMessage string
	chatContext string
	chatJSON    bool
)

func init() {
	chatCmd.Flags().StringVarP(&chatMessage, "message", "m", "", "Message to send (required)")
	chatCmd.Flags().StringVar(&chatContext, "context", "", "Prior conversation context")
	chatCmd.Flags().BoolVar(&chatJSON, "json", false, "Emit the reply as JSON")

	rootCmd.AddCommand(chatCmd)
}

func runChat(_ *cobra.Command, _ []string) error {
	if chatMessage == "" {
		return fmt.Errorf("must provide --message")
	}

	agent, _, err := loadAssistant()
	if err != nil {
		return err
	}

	result := agent.Chat(context.Background(), chatMessage, chatContext)

	if chatJSON {
		return emitResult(result)
	}
	if !result.Success {
		return fmt.Errorf("%s", result.Message)
	}
	_, _ = fmt.Fprintln(os.Stdout, result.Reply)
	return nil
}
