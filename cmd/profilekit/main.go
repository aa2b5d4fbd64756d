package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"profilekit/internal/ai"
	"profilekit/internal/app"
	"profilekit/internal/config"
	"profilekit/internal/profile"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var verbose bool

// newApp reads the config and creates a ProfileApp. The caller must defer app.Close().
func newApp(ctx context.Context) (*app.ProfileApp, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadFromFile(defaults.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	a, err := app.NewProfileApp(ctx, cfg, app.Options{Verbose: verbose})
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}
	return a, nil
}

// withApp runs fn against a freshly opened app and closes it afterwards.
func withApp(cmd *cobra.Command, fn func(a *app.ProfileApp) error) (err error) {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(a)
}

// explainAIError adds a hint for the errors a user can act on.
func explainAIError(err error) error {
	switch {
	case errors.Is(err, profile.ErrMissingCredential):
		return fmt.Errorf("%w: run `profilekit config set-credential` or set %s", err, ai.CredentialEnvVars[0])
	case errors.Is(err, profile.ErrVideoNotEditable):
		return fmt.Errorf("%w: replace the media instead", err)
	default:
		return err
	}
}

var rootCmd = &cobra.Command{
	Use:          "profilekit",
	Short:        "Edit a social profile mockup",
	SilenceUsage: true,
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		storeType, _ := cmd.Flags().GetString("store")
		encrypt, _ := cmd.Flags().GetBool("encrypt")

		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		deviceID := uuid.New().String()
		cfg := config.NewConfig(deviceID, defaults.BaseDir)
		cfg.Store.Type = storeType
		if encrypt {
			cfg.Encryption.Type = "age"
		}

		if err := config.Init(defaults.ConfigPath, cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults.ConfigPath)
		fmt.Printf("Device ID: %s\n", deviceID)
		fmt.Printf("Base Dir:  %s\n", defaults.BaseDir)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg, err := config.ReadFromFile(defaults.ConfigPath)
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		key, err := ai.LookupCredential(cfg.AI.CredentialFile)
		if err != nil {
			return err
		}
		credential := "not set"
		if key != "" {
			credential = "set"
		}

		fmt.Printf("Configuration from %s:\n\n", defaults.ConfigPath)
		fmt.Printf("Device ID:   %s\n", cfg.DeviceID)
		fmt.Printf("Base Dir:    %s\n", cfg.BaseDir)
		fmt.Printf("Log Dir:     %s\n", cfg.LogDir)
		fmt.Printf("Store:       %s\n", cfg.Store.Type)
		fmt.Printf("Vault:       %s\n", cfg.Vault.Type)
		fmt.Printf("Encryption:  %s\n", cfg.Encryption.Type)
		fmt.Printf("Image model: %s\n", cfg.AI.ImageModel)
		fmt.Printf("Text model:  %s\n", cfg.AI.TextModel)
		fmt.Printf("API key:     %s\n", credential)
		return nil
	},
}

var configSetCredentialCmd = &cobra.Command{
	Use:   "set-credential",
	Short: "Store the generative-AI API key",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}
		cfg, err := config.ReadFromFile(defaults.ConfigPath)
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
		if cfg.AI.CredentialFile == "" {
			return fmt.Errorf("no credential_file configured")
		}

		key, err := readSecret("API key: ")
		if err != nil {
			return err
		}
		if err := ai.SaveCredential(cfg.AI.CredentialFile, key); err != nil {
			return err
		}
		fmt.Printf("API key saved to %s\n", cfg.AI.CredentialFile)
		return nil
	},
}

// readSecret prompts without echo on a terminal, or reads one line from a pipe.
func readSecret(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, prompt)
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("reading secret: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading secret: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// show command
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Render the profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		tab, _ := cmd.Flags().GetString("tab")
		return withApp(cmd, func(a *app.ProfileApp) error {
			return a.ShowProfile(os.Stdout, tab)
		})
	},
}

// profile command
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Edit profile header fields",
}

var profileSetCmd = &cobra.Command{
	Use:   "set FIELD VALUE",
	Short: "Set a header field (" + strings.Join(app.HeaderFieldNames(), ", ") + ")",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app.ProfileApp) error {
			return a.SetField(args[0], args[1])
		})
	},
}

var profileBioCmd = &cobra.Command{
	Use:   "bio TEXT",
	Short: "Replace the bio",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app.ProfileApp) error {
			a.SetBio(args[0])
			return nil
		})
	},
}

var profilePicCmd = &cobra.Command{
	Use:   "pic SOURCE",
	Short: "Replace the profile picture with a URL or local file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app.ProfileApp) error {
			ref, err := a.SetProfilePic(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Profile picture set to %s\n", ref)
			return nil
		})
	},
}

var profileGenerateBioCmd = &cobra.Command{
	Use:   "generate-bio",
	Short: "Generate a bio with the AI assistant",
	RunE: func(cmd *cobra.Command, args []string) error {
		apply, _ := cmd.Flags().GetBool("apply")
		return withApp(cmd, func(a *app.ProfileApp) error {
			ctx, cancel := app.WithAITimeout(cmd.Context())
			defer cancel()

			bio, err := a.GenerateBio(ctx, apply)
			if err != nil {
				return explainAIError(err)
			}
			fmt.Println(bio)
			if !apply {
				fmt.Fprintln(os.Stderr, "(not applied; rerun with --apply or use `profilekit profile bio`)")
			}
			return nil
		})
	},
}

// highlight command
var highlightCmd = &cobra.Command{
	Use:   "highlight",
	Short: "Edit story highlights",
}

var highlightTitleCmd = &cobra.Command{
	Use:   "title ID TITLE",
	Short: "Rename a highlight",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app.ProfileApp) error {
			return a.SetHighlightTitle(args[0], args[1])
		})
	},
}

var highlightCoverCmd = &cobra.Command{
	Use:   "cover ID SOURCE",
	Short: "Replace a highlight cover with a URL or local file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app.ProfileApp) error {
			ref, err := a.SetHighlightCover(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Printf("Highlight %s cover set to %s\n", args[0], ref)
			return nil
		})
	},
}

// post command
var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Edit posts, reels and tagged items",
}

var postReplaceCmd = &cobra.Command{
	Use:   "replace ID SOURCE",
	Short: "Replace the media of a post with a URL or local file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mediaType, _ := cmd.Flags().GetString("type")
		return withApp(cmd, func(a *app.ProfileApp) error {
			ref, err := a.ReplacePostMedia(args[0], args[1], mediaType)
			if err != nil {
				return err
			}
			fmt.Printf("Post %s media set to %s\n", args[0], ref)
			return nil
		})
	},
}

var postDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a post from every grid holding it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app.ProfileApp) error {
			if err := a.DeletePost(args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted %s\n", args[0])
			return nil
		})
	},
}

var postEditCmd = &cobra.Command{
	Use:   "edit ID INSTRUCTION",
	Short: "Edit a post image with the AI assistant",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		save, _ := cmd.Flags().GetBool("save")
		return withApp(cmd, func(a *app.ProfileApp) error {
			ctx, cancel := app.WithAITimeout(cmd.Context())
			defer cancel()

			draft, err := a.EditPostImage(ctx, args[0], args[1], save)
			if err != nil {
				return explainAIError(err)
			}
			if save {
				fmt.Printf("Post %s media set to %s\n", args[0], draft)
			} else {
				fmt.Printf("Draft stored as %s (save with `profilekit post replace %s %s`)\n", draft, args[0], draft)
			}
			return nil
		})
	},
}

// stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "View and edit insights",
}

var statsShowCmd = &cobra.Command{
	Use:   "show [interactions|views|audience]",
	Short: "Render insights",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		which := ""
		if len(args) > 0 {
			which = args[0]
		}
		return withApp(cmd, func(a *app.ProfileApp) error {
			return a.ShowStats(os.Stdout, which)
		})
	},
}

var statsSetCmd = &cobra.Command{
	Use:   "set DOCUMENT PATH VALUE",
	Short: "Set one insights field, e.g. `stats set views cities[0].percent 20`",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app.ProfileApp) error {
			return a.SetStat(args[0], args[1], args[2])
		})
	},
}

// media command
var mediaCmd = &cobra.Command{
	Use:   "media",
	Short: "Manage stored media",
}

var mediaAddCmd = &cobra.Command{
	Use:   "add FILE",
	Short: "Import a local file into the media vault",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app.ProfileApp) error {
			ref, mediaType, err := a.AddMedia(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s\t%s\n", ref, mediaType)
			return nil
		})
	},
}

var mediaGetCmd = &cobra.Command{
	Use:   "get REF",
	Short: "Write stored media to a file or stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		return withApp(cmd, func(a *app.ProfileApp) error {
			return writeOutput(output, func(w io.Writer) error {
				_, err := a.WriteMedia(args[0], w)
				return err
			})
		})
	},
}

// export / import commands
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all documents as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		return withApp(cmd, func(a *app.ProfileApp) error {
			return writeOutput(output, a.Export)
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Replace all documents with a YAML export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening import: %w", err)
		}
		defer f.Close()
		return withApp(cmd, func(a *app.ProfileApp) error {
			return a.Import(f)
		})
	},
}

var backupCmd = &cobra.Command{
	Use:   "backup DEST",
	Short: "Snapshot the document store (sqlite only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app.ProfileApp) error {
			saved, err := a.Backup(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Store backed up to %s\n", args[0])
			if !saved.IsZero() {
				fmt.Printf("Profile last saved %s\n", saved.Local().Format(time.DateTime))
			}
			return nil
		})
	},
}

// writeOutput runs write against stdout, or against path when it is set.
func writeOutput(path string, write func(io.Writer) error) error {
	if path == "" || path == "-" {
		return write(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Write debug records to the log file")

	// config subcommands
	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().String("store", "sqlite", "Document store: memory, filesystem, sqlite or badger")
	configInitCmd.Flags().Bool("encrypt", false, "Encrypt stored documents with age")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCredentialCmd)

	// profile subcommands
	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileBioCmd)
	profileCmd.AddCommand(profilePicCmd)
	profileCmd.AddCommand(profileGenerateBioCmd)
	profileGenerateBioCmd.Flags().Bool("apply", false, "Replace the current bio with the result")

	// highlight subcommands
	highlightCmd.AddCommand(highlightTitleCmd)
	highlightCmd.AddCommand(highlightCoverCmd)

	// post subcommands
	postCmd.AddCommand(postReplaceCmd)
	postReplaceCmd.Flags().String("type", "", "Media type: image or video (default: sniffed, or image for URLs)")
	postCmd.AddCommand(postDeleteCmd)
	postCmd.AddCommand(postEditCmd)
	postEditCmd.Flags().Bool("save", false, "Replace the post image with the edited result")

	// stats subcommands
	statsCmd.AddCommand(statsShowCmd)
	statsCmd.AddCommand(statsSetCmd)

	// media subcommands
	mediaCmd.AddCommand(mediaAddCmd)
	mediaCmd.AddCommand(mediaGetCmd)
	mediaGetCmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")

	// root commands
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().String("tab", "grid", "Grid to show: grid, reels or tagged")
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(highlightCmd)
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(mediaCmd)
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(backupCmd)
}
