// Where: internal/infra/interaction/selector_test.go
// What: Tests for the huh-backed prompter.
package interaction

import (
	"errors"
	"testing"

	"github.com/charmbracelet/huh"
)

func TestHuhPrompterInputUsesRunner(t *testing.T) {
	orig := runInputPrompt
	t.Cleanup(func() { runInputPrompt = orig })

	var gotTitle string
	var gotSuggestions []string
	runInputPrompt = func(title string, suggestions []string, input *string) error {
		gotTitle = title
		gotSuggestions = append([]string(nil), suggestions...)
		*input = "disk"
		return nil
	}

	got, err := (HuhPrompter{}).Input("Filter shapes", []string{"CreateDiskRequest", "Region"})
	if err != nil {
		t.Fatalf("Input() error = %v", err)
	}
	if got != "disk" {
		t.Fatalf("Input() = %q, want %q", got, "disk")
	}
	if gotTitle != "Filter shapes" {
		t.Fatalf("title = %q", gotTitle)
	}
	if len(gotSuggestions) != 2 || gotSuggestions[0] != "CreateDiskRequest" {
		t.Fatalf("suggestions = %#v", gotSuggestions)
	}
}

func TestHuhPrompterInputWrapsError(t *testing.T) {
	orig := runInputPrompt
	t.Cleanup(func() { runInputPrompt = orig })
	runInputPrompt = func(string, []string, *string) error {
		return errors.New("tty unavailable")
	}

	_, err := (HuhPrompter{}).Input("Filter shapes", nil)
	if err == nil || err.Error() != "prompt input: tty unavailable" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHuhPrompterSelectValueUsesRunner(t *testing.T) {
	orig := runSelectPrompt
	t.Cleanup(func() { runSelectPrompt = orig })

	var gotTitle string
	var gotHeight, gotOptions int
	runSelectPrompt = func(title string, height int, options []huh.Option[string], selected *string) error {
		gotTitle = title
		gotHeight = height
		gotOptions = len(options)
		*selected = options[1].Value
		return nil
	}

	var prompter Prompter = HuhPrompter{Height: 8}
	got, err := prompter.SelectValue("Shape", []SelectOption{
		{Label: "Disk", Value: "Disk"},
		{Label: "DiskMap", Value: "DiskMap"},
	})
	if err != nil {
		t.Fatalf("SelectValue() error = %v", err)
	}
	if got != "DiskMap" {
		t.Fatalf("SelectValue() = %q, want %q", got, "DiskMap")
	}
	if gotTitle != "Shape" || gotHeight != 8 || gotOptions != 2 {
		t.Fatalf("runner got title=%q height=%d options=%d", gotTitle, gotHeight, gotOptions)
	}
}

func TestHuhPrompterSelectValueWrapsError(t *testing.T) {
	orig := runSelectPrompt
	t.Cleanup(func() { runSelectPrompt = orig })
	runSelectPrompt = func(string, int, []huh.Option[string], *string) error {
		return errors.New("select failed")
	}

	_, err := (HuhPrompter{}).SelectValue("Shape", []SelectOption{{Label: "Disk", Value: "Disk"}})
	if err == nil || err.Error() != "prompt select value: select failed" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHuhPrompterEmptyOptions(t *testing.T) {
	orig := runSelectPrompt
	t.Cleanup(func() { runSelectPrompt = orig })
	called := false
	runSelectPrompt = func(string, int, []huh.Option[string], *string) error {
		called = true
		return nil
	}

	if _, err := (HuhPrompter{}).SelectValue("Shape", nil); !errors.Is(err, ErrNoOptions) {
		t.Fatalf("SelectValue() error = %v, want ErrNoOptions", err)
	}
	if called {
		t.Fatal("runner must not be called for empty options")
	}
}

func TestHuhPrompterSelectValueMapsLabels(t *testing.T) {
	orig := runSelectPrompt
	t.Cleanup(func() { runSelectPrompt = orig })
	runSelectPrompt = func(_ string, _ int, options []huh.Option[string], selected *string) error {
		if options[0].Key != "Disk (recent)" {
			t.Fatalf("unexpected label %q", options[0].Key)
		}
		*selected = options[0].Value
		return nil
	}

	got, err := (HuhPrompter{}).SelectValue("Shape", []SelectOption{{Label: "Disk (recent)", Value: "Disk"}})
	if err != nil || got != "Disk" {
		t.Fatalf("SelectValue() = %q, %v", got, err)
	}
}
