package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"splitsnap/internal/cli"
	"splitsnap/internal/config"
	"splitsnap/internal/model"
	"splitsnap/internal/splitapi"
	"splitsnap/internal/voice"

	"github.com/spf13/cobra"
)

var (
	flagTranscript    string
	flagVoiceCategory string
)

var voiceCmd = &cobra.Command{
	Use:   "voice [audio-file]",
	Short: "Add an expense by voice",
	Long: `Add an expense from dictation, e.g. "Dinner 500 Alice".

The first number heard is the amount, everything before it the title,
and a trailing member name the payer. Pass a recorded audio file for
Whisper transcription, or skip the microphone with --transcript.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVoice,
}

func init() {
	voiceCmd.Flags().StringVar(&flagTranscript, "transcript", "", "Use this text instead of transcribing audio")
	voiceCmd.Flags().StringVar(&flagVoiceCategory, "category", "Misc", "Category label for the expense")
	rootCmd.AddCommand(voiceCmd)
}

func runVoice(_ *cobra.Command, args []string) error {
	cfg := loadConfig()

	transcript := flagTranscript
	if transcript == "" {
		if len(args) == 0 {
			return errors.New("give an audio file or --transcript")
		}
		t := voice.NewTranscriber(config.OpenAIKey(cfg))
		if t == nil {
			return voice.ErrNoTranscriber
		}

		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Transcribing %s...\n", args[0])
		}
		ctx, cancel := cmdContext()
		defer cancel()

		text, err := t.Transcribe(ctx, args[0])
		if err != nil {
			return err
		}
		transcript = text
		fmt.Printf("  Heard: %q\n", transcript)
	}

	roster := sessionRoster()
	fields, err := voice.Parse(transcript, roster)
	if err != nil {
		return err
	}
	if fields.Payer == "" {
		return fmt.Errorf("couldn't tell who paid; end with a member name (%v)", roster)
	}

	amount, err := strconv.ParseFloat(fields.Amount, 64)
	if err != nil {
		return fmt.Errorf("bad amount %q: %w", fields.Amount, err)
	}

	form := splitapi.ExpenseForm{
		Title:    fields.Title,
		Amount:   amount,
		Payer:    fields.Payer,
		Category: flagVoiceCategory,
		Split:    model.SplitEqual,
	}

	ctx, cancel := cmdContext()
	defer cancel()

	if err := newClient(cfg).AddExpense(ctx, splitapi.BuildExpensePayload(form)); err != nil {
		return err
	}

	fmt.Printf("\n  Added %q: %s paid by %s (equal split)\n\n",
		form.Title, cli.FormatFloat(cfg.Currency.Symbol, form.Amount), form.Payer)
	return nil
}

// sessionRoster returns the locally remembered members, or nil when
// there is no session. Voice entry without a roster can't name a payer.
func sessionRoster() []string {
	sess := openSession()
	if sess == nil {
		return nil
	}
	defer sess.Close()

	g, ok, err := sess.LoadGroup()
	if err != nil || !ok {
		return nil
	}
	return g.Members
}
