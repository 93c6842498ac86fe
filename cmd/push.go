package cmd

import (
	"fmt"
	"os"
	"strings"

	"livecast/feature/live"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
)

// pushCmd represents the push command
var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Send a template live",
	Long:  `Replaces the live template of a running server with the content of a file (or --content) and broadcasts it to every viewer.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		baseURL, _ := cmd.Flags().GetString("url")
		file, _ := cmd.Flags().GetString("file")
		content, _ := cmd.Flags().GetString("content")

		if file != "" {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", file, err)
			}
			content = string(data)
		}
		if content == "" {
			return fmt.Errorf("nothing to push: set --file or --content")
		}

		if err := pushTemplate(baseURL, content); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Pushed %d bytes live\n", len(content))
		return nil
	},
}

// pushTemplate posts content to the send-template endpoint of the server at baseURL.
func pushTemplate(baseURL, content string) error {
	url := strings.TrimRight(baseURL, "/") + "/api/live/send-template"

	agent := fiber.Post(url)
	agent.JSONEncoder(json.Marshal)
	agent.JSON(live.SendTemplateRequest{Content: content})

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("failed to push template: %w", errs[0])
	}
	if code != fiber.StatusOK {
		var resp struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(body, &resp)
		return fmt.Errorf("server rejected template (%d): %s", code, resp.Error)
	}
	return nil
}

func init() {
	RootCmd.AddCommand(pushCmd)
	pushCmd.Flags().String("url", "http://localhost:8080", "Server base URL")
	pushCmd.Flags().StringP("file", "f", "", "File whose content becomes the live template")
	pushCmd.Flags().String("content", "", "Inline template content")
}
