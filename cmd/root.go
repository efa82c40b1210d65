/*
Copyright © 2025 blacktop

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/blacktop/socialhub/internal/logutil"
	"github.com/blacktop/socialhub/internal/socialhub"
	"github.com/blacktop/socialhub/internal/socialhub/manager"
	"github.com/blacktop/socialhub/internal/socialhub/registry"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	verboseFlag bool

	messageFlag   string
	mediaPath     string
	platformsFlag []string
	dryRun        bool

	usernameFlag string
	passwordFlag string
)

const (
	demoTextMessage  = "This is a text post sent through the unified publishing system."
	demoImageMessage = "Check out this amazing landscape photo!"
)

var demoMedia = []byte{1, 2, 3}

// Execute runs the root command.
func Execute() error {
	return newRootCommand().Execute()
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "socialhub",
		Short: "Publish content to simulated social networks",
		Long: "socialhub routes content to Twitter, LinkedIn and Instagram through a shared adapter " +
			"interface. Run it without a subcommand to see the built-in demonstration.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logutil.SetVerbose(verboseFlag)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), registry.Default())
		},
		Example: `  socialhub
  socialhub post "Ship it!" --platform twitter --platform linkedin
  socialhub post --message "sunset" --media ./sunset.jpg --platform instagram
  echo "Release shipped" | socialhub post --platform all`,
	}

	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newPostCommand())
	cmd.AddCommand(newAuthCommand())
	cmd.AddCommand(newCompletionCommand())

	return cmd
}

// runDemo walks through every adapter and then proves the registry cache hands
// out a single instance per platform.
func runDemo(out io.Writer, reg *registry.Registry) error {
	textPost := socialhub.NewContent(demoTextMessage, nil)
	imagePost := socialhub.NewContent(demoImageMessage, demoMedia)

	steps := []struct {
		platform socialhub.Platform
		posts    []socialhub.Content
	}{
		{platform: socialhub.Twitter, posts: []socialhub.Content{textPost}},
		{platform: socialhub.LinkedIn, posts: []socialhub.Content{textPost}},
		{platform: socialhub.Instagram, posts: []socialhub.Content{textPost, imagePost}},
	}

	for _, step := range steps {
		m, err := manager.NewWithRegistry(reg, step.platform)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\n--- manager configured for: %s ---\n", step.platform)
		for _, post := range step.posts {
			fmt.Fprintf(out, "posting: %q\n", post.Text())
			fmt.Fprintf(out, "result: %s\n", m.PostContent(post))
		}
	}

	fmt.Fprintln(out, "\n--- verifying the factory cache ---")
	first, err := reg.Get(socialhub.Twitter)
	if err != nil {
		return err
	}
	second, err := reg.Get(socialhub.Twitter)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "both twitter adapters are the same instance? %t\n", first == second)

	return nil
}

func newPostCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post [message]",
		Short: "Post a message to one or more platforms",
		RunE:  runPost,
	}

	cmd.Flags().StringVarP(&messageFlag, "message", "m", "", "Message text to post")
	cmd.Flags().StringVar(&mediaPath, "media", "", "Path to an image or video to attach")
	cmd.Flags().StringSliceVarP(&platformsFlag, "platform", "p", []string{"twitter", "linkedin", "instagram"}, "Platforms to post to (twitter, linkedin, instagram, or all)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print actions without posting")
	cmd.Flags().SortFlags = false

	return cmd
}

func runPost(cmd *cobra.Command, args []string) error {
	message, err := resolveMessage(cmd, args)
	if err != nil {
		return err
	}

	platforms, err := normalizePlatforms(platformsFlag)
	if err != nil {
		return err
	}

	var media []byte
	if mediaPath != "" {
		media, err = readMedia(mediaPath)
		if err != nil {
			return err
		}
	}

	content := socialhub.NewContent(message, media)
	return dispatch(registry.Default(), platforms, content, cmd.OutOrStdout(), dryRun)
}

func newAuthCommand() *cobra.Command {
	var platform string

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Run the simulated authentication for a platform",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := socialhub.ParsePlatform(platform)
			if err != nil {
				return err
			}
			publisher, err := registry.Default().Get(p)
			if err != nil {
				return err
			}
			res := publisher.Authenticate(usernameFlag, passwordFlag)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", publisher.Name(), res)
			return nil
		},
	}

	cmd.Flags().StringVarP(&platform, "platform", "p", "twitter", "Platform to authenticate against")
	cmd.Flags().StringVarP(&usernameFlag, "username", "u", "", "Account username")
	cmd.Flags().StringVar(&passwordFlag, "password", "", "Account password")

	return cmd
}

func resolveMessage(cmd *cobra.Command, args []string) (string, error) {
	var message string

	if messageFlag != "" {
		message = messageFlag
	}

	if len(args) > 0 {
		if message != "" {
			return "", errors.New("provide the message either as an argument or with --message, not both")
		}
		message = strings.Join(args, " ")
	}

	if message != "" {
		return strings.TrimSpace(message), nil
	}

	stdin := cmd.InOrStdin()
	if file, ok := stdin.(*os.File); !ok || !term.IsTerminal(int(file.Fd())) {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		message = strings.TrimSpace(string(data))
	}

	if message == "" {
		return "", errors.New("message is required")
	}

	return message, nil
}

func normalizePlatforms(values []string) ([]socialhub.Platform, error) {
	if len(values) == 0 {
		return socialhub.Platforms(), nil
	}

	result := make([]socialhub.Platform, 0, len(values))
	seen := map[socialhub.Platform]struct{}{}
	for _, raw := range values {
		raw = strings.TrimSpace(strings.ToLower(raw))
		if raw == "" {
			continue
		}
		if raw == "all" {
			return socialhub.Platforms(), nil
		}
		p, err := socialhub.ParsePlatform(raw)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		result = append(result, p)
	}

	if len(result) == 0 {
		return nil, errors.New("no platforms selected")
	}

	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result, nil
}

func readMedia(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, socialhub.ValidationError{Provider: "media", Reason: fmt.Sprintf("file %q not found", path)}
		}
		return nil, fmt.Errorf("read media: %w", err)
	}
	return data, nil
}

func dispatch(reg *registry.Registry, platforms []socialhub.Platform, content socialhub.Content, out io.Writer, simulate bool) error {
	if simulate {
		for _, p := range platforms {
			fmt.Fprintf(out, "[dry-run] would post to %s: %q\n", p, content.Text())
		}
		if content.HasMedia() {
			fmt.Fprintf(out, "[dry-run] media: %d bytes\n", len(content.Media()))
		}
		return nil
	}

	var errs []error
	for _, p := range platforms {
		m, err := manager.NewWithRegistry(reg, p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		fmt.Fprintf(out, "posting to %s...\n", p)
		res := m.PostContent(content)
		if !res.OK() {
			errs = append(errs, fmt.Errorf("%s: %s", p, res.Message()))
			continue
		}
		id, _ := res.Payload()
		fmt.Fprintf(out, "posted to %s (%s)\n", p, id)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
