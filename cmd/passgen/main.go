// Package main provides the CLI entrypoint for passgen.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/passgen/passgen-go/internal/config"
	"github.com/passgen/passgen-go/internal/model"
	"github.com/passgen/passgen-go/internal/render"
	"github.com/passgen/passgen-go/internal/service"
	"github.com/passgen/passgen-go/internal/wordlist"
)

const version = "1.0.0"

const (
	defaultLength     = 16
	defaultAlphaLen   = 12
	defaultPINLength  = 4
	defaultWords      = 4
	defaultSeparator  = "-"
	defaultCapitalize = true
)

var (
	jsonOut bool
	noColor bool

	genLength  int
	genUpper   bool
	genLower   bool
	genDigits  bool
	genSymbols bool
	genExclude bool

	pinLength int

	alphaLength  int
	alphaUpper   bool
	alphaLower   bool
	alphaExclude bool

	memWords      int
	memSeparator  string
	memCapitalize bool
	memWordlist   string
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", "error", err)
	}

	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "passgen",
		Short:         "Secure password generator",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "emit JSON output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled output")

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newPINCmd())
	rootCmd.AddCommand(newAlphaCmd())
	rootCmd.AddCommand(newMemorableCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a composite password",
		Args:  cobra.NoArgs,
		RunE:  runGenerateCmd,
	}
	cmd.Flags().IntVarP(&genLength, "length", "l", defaultLength, "password length (8-128)")
	cmd.Flags().BoolVar(&genUpper, "upper", true, "include uppercase letters")
	cmd.Flags().BoolVar(&genLower, "lower", true, "include lowercase letters")
	cmd.Flags().BoolVar(&genDigits, "digits", true, "include digits")
	cmd.Flags().BoolVar(&genSymbols, "symbols", true, "include symbols")
	cmd.Flags().BoolVar(&genExclude, "exclude-ambiguous", false, "exclude visually confusable characters (0,O,1,l,I,o)")
	return cmd
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, envCfg, err := loadDefaults()
	if err != nil {
		return err
	}
	applyIntConfig(cmd, "length", &genLength, fileCfg.Generate.Length)
	applyIntConfig(cmd, "length", &genLength, envCfg.Length)
	applyBoolConfig(cmd, "exclude-ambiguous", &genExclude, fileCfg.Generate.ExcludeAmbiguous)
	applyBoolConfig(cmd, "no-color", &noColor, fileCfg.Generate.NoColor)
	applyBoolConfig(cmd, "no-color", &noColor, envCfg.NoColor)

	svc := service.NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{
		Kind:             model.KindComposite,
		Length:           genLength,
		Uppercase:        &genUpper,
		Lowercase:        &genLower,
		Digits:           &genDigits,
		Symbols:          &genSymbols,
		ExcludeAmbiguous: genExclude,
	})
	if err != nil {
		return err
	}
	return writePassword(cmd, resp)
}

func newPINCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pin",
		Short: "Generate a numeric PIN",
		Args:  cobra.NoArgs,
		RunE:  runPINCmd,
	}
	cmd.Flags().IntVarP(&pinLength, "length", "l", defaultPINLength, "PIN length (4-10)")
	return cmd
}

func runPINCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, envCfg, err := loadDefaults()
	if err != nil {
		return err
	}
	applyBoolConfig(cmd, "no-color", &noColor, fileCfg.Generate.NoColor)
	applyBoolConfig(cmd, "no-color", &noColor, envCfg.NoColor)

	svc := service.NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{
		Kind:   model.KindPIN,
		Length: pinLength,
	})
	if err != nil {
		return err
	}
	return writePassword(cmd, resp)
}

func newAlphaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alpha",
		Short: "Generate a letters-only password",
		Args:  cobra.NoArgs,
		RunE:  runAlphaCmd,
	}
	cmd.Flags().IntVarP(&alphaLength, "length", "l", defaultAlphaLen, "password length (8-128)")
	cmd.Flags().BoolVar(&alphaUpper, "upper", true, "include uppercase letters")
	cmd.Flags().BoolVar(&alphaLower, "lower", true, "include lowercase letters")
	cmd.Flags().BoolVar(&alphaExclude, "exclude-ambiguous", false, "exclude visually confusable characters (O,l,I,o)")
	return cmd
}

func runAlphaCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, envCfg, err := loadDefaults()
	if err != nil {
		return err
	}
	applyBoolConfig(cmd, "exclude-ambiguous", &alphaExclude, fileCfg.Generate.ExcludeAmbiguous)
	applyBoolConfig(cmd, "no-color", &noColor, fileCfg.Generate.NoColor)
	applyBoolConfig(cmd, "no-color", &noColor, envCfg.NoColor)

	svc := service.NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{
		Kind:             model.KindAlphabetic,
		Length:           alphaLength,
		Uppercase:        &alphaUpper,
		Lowercase:        &alphaLower,
		ExcludeAmbiguous: alphaExclude,
	})
	if err != nil {
		return err
	}
	return writePassword(cmd, resp)
}

func newMemorableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "memorable",
		Short: "Generate a word-based password",
		Args:  cobra.NoArgs,
		RunE:  runMemorableCmd,
	}
	cmd.Flags().IntVarP(&memWords, "words", "w", defaultWords, "number of words")
	cmd.Flags().StringVar(&memSeparator, "separator", defaultSeparator, "word separator")
	cmd.Flags().BoolVar(&memCapitalize, "capitalize", defaultCapitalize, "capitalize each word")
	cmd.Flags().StringVar(&memWordlist, "wordlist", "", "path to a custom word list (one word per line)")
	return cmd
}

func runMemorableCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, envCfg, err := loadDefaults()
	if err != nil {
		return err
	}
	applyIntConfig(cmd, "words", &memWords, fileCfg.Generate.Words)
	applyIntConfig(cmd, "words", &memWords, envCfg.Words)
	applyStringConfig(cmd, "separator", &memSeparator, fileCfg.Generate.Separator)
	applyStringConfig(cmd, "separator", &memSeparator, envCfg.Separator)
	applyBoolConfig(cmd, "capitalize", &memCapitalize, fileCfg.Generate.Capitalize)
	applyBoolConfig(cmd, "no-color", &noColor, fileCfg.Generate.NoColor)
	applyBoolConfig(cmd, "no-color", &noColor, envCfg.NoColor)

	var words []string
	if memWordlist != "" {
		words, err = wordlist.LoadWords(memWordlist)
		if err != nil {
			return fmt.Errorf("failed to load word list: %w", err)
		}
	}

	svc := service.NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{
		Kind:       model.KindMemorable,
		Words:      memWords,
		Separator:  memSeparator,
		Capitalize: &memCapitalize,
		WordList:   words,
	})
	if err != nil {
		return err
	}
	return writePassword(cmd, resp)
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [password]",
		Short: "Evaluate password strength",
		Long:  "Evaluate password strength. Without an argument the password is read from a hidden prompt, keeping it out of shell history.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCheckCmd,
	}
}

func runCheckCmd(cmd *cobra.Command, args []string) error {
	fileCfg, envCfg, err := loadDefaults()
	if err != nil {
		return err
	}
	applyBoolConfig(cmd, "no-color", &noColor, fileCfg.Generate.NoColor)
	applyBoolConfig(cmd, "no-color", &noColor, envCfg.NoColor)

	var password string
	if len(args) == 1 {
		password = args[0]
	} else {
		password, err = promptPassword()
		if err != nil {
			return err
		}
	}

	svc := service.NewGeneratorService()
	assessment := svc.Evaluate(password)

	r := render.New(noColor)
	if jsonOut {
		return r.JSON(cmd.OutOrStdout(), assessment)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), r.Strength(assessment))
	return err
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// writePassword prints a generation result. JSON mode emits the full
// response; a terminal gets the styled box; anything else (pipes, scripts)
// gets the bare password.
func writePassword(cmd *cobra.Command, resp model.GenerateResponse) error {
	r := render.New(noColor)
	if jsonOut {
		return r.JSON(cmd.OutOrStdout(), resp)
	}
	if !noColor && term.IsTerminal(int(os.Stdout.Fd())) {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), r.PasswordBox(resp))
		return err
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), resp.Password)
	return err
}

// promptPassword reads a password from the terminal without echo.
func promptPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Enter password: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(raw), nil
}

func loadDefaults() (config.FileConfig, config.EnvConfig, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return config.FileConfig{}, config.EnvConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	return fileCfg, config.LoadEnv(), nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# passgen configuration
# Uncomment a value to enable it. CLI flags override config values.

[generate]
# length = %d               # Composite password length
# words = %d                 # Memorable password word count
# separator = %q           # Memorable word separator
# exclude-ambiguous = false # Drop 0, O, 1, l, I, o from candidate pools
# capitalize = true         # Capitalize memorable words
# no-color = false          # Disable styled output
`,
		defaultLength,
		defaultWords,
		defaultSeparator,
	)
}
