package task

import (
	"github.com/jsamuelsen11/go-domain-kernel/core/option"
	"github.com/jsamuelsen11/go-domain-kernel/core/result"
	"github.com/jsamuelsen11/go-domain-kernel/core/validate"
)

// Field limits.
const (
	TitleMaxLength = 120
	SlugMaxLength  = 60
	NotesMaxLength = 2000
	ProgressMin    = 0
	ProgressMax    = 100
)

// CodeSlug is the failure code for slugs the pattern rejects.
const CodeSlug = "vo_slug"

const slugPattern = `[a-z0-9]+(?:-[a-z0-9]+)*`

// Rules types are unexported, so the constructors below are the only way to
// mint these value objects.

type titleRules struct{}

var titleSanitizer = validate.All(
	validate.NonEmpty(),
	validate.MaxLength(TitleMaxLength),
)

func (titleRules) Sanitize(raw string) result.Result[string] {
	return titleSanitizer(raw)
}

type slugRules struct{}

var slugSanitizer = validate.All(
	validate.NonEmpty(),
	validate.MaxLength(SlugMaxLength),
	validate.Match(slugPattern, CodeSlug, "must be lowercase words separated by single dashes"),
)

func (slugRules) Sanitize(raw string) result.Result[string] {
	return slugSanitizer(raw)
}

type notesRules struct{}

// Notes may be empty; only the length is bounded.
func (notesRules) Sanitize(raw string) result.Result[string] {
	return validate.MaxLength(NotesMaxLength)(raw)
}

type progressRules struct{}

var progressSanitizer = validate.Range(
	option.Some(ProgressMin),
	option.Some(ProgressMax),
)

func (progressRules) Sanitize(raw int) result.Result[int] {
	return progressSanitizer(raw)
}

// Title is a human-readable task name: non-empty, at most TitleMaxLength runes.
type Title = validate.Value[string, titleRules]

// Slug is a URL-safe handle: lowercase words separated by single dashes.
type Slug = validate.Value[string, slugRules]

// Notes is free-form detail text, possibly empty.
type Notes = validate.Value[string, notesRules]

// Progress is a completion percentage in [0, 100].
type Progress = validate.Value[int, progressRules]

// NewTitle validates raw into a Title.
func NewTitle(raw string) result.Result[Title] {
	return validate.New[string, titleRules](raw)
}

// NewSlug validates raw into a Slug.
func NewSlug(raw string) result.Result[Slug] {
	return validate.New[string, slugRules](raw)
}

// NewNotes validates raw into Notes.
func NewNotes(raw string) result.Result[Notes] {
	return validate.New[string, notesRules](raw)
}

// NewProgress validates raw into a Progress.
func NewProgress(raw int) result.Result[Progress] {
	return validate.New[int, progressRules](raw)
}
