package packaging

// Form element identifiers and labels for the debug selection form.
const (
	FormID             = "packaging_debug"
	FieldStrategy      = "packaging_strategy"
	StrategyFieldTitle = "Please choose Strategy"
	SubmitLabel        = "Select strategy"
)

// Option is a single entry of the strategy select control.
type Option struct {
	Value string
	Label string
}

// SelectionForm is the declarative description of the strategy selection
// form. Rendering is left to inbound adapters.
type SelectionForm struct {
	ID          string
	Field       string
	Title       string
	Options     []Option
	Default     string
	SubmitLabel string

	// Empty is set when the registry offered no strategies; Default is then "".
	Empty bool

	// Stale is set when the persisted selection no longer matches a registry id.
	Stale bool

	// Operations is a human-readable dump of the available strategies.
	Operations string
}

// BuildSelectionForm builds the form from the registry descriptors, in
// registry order. The default selection is current when hasCurrent is true,
// otherwise the first descriptor.
func BuildSelectionForm(descriptors []Descriptor, current string, hasCurrent bool) SelectionForm {
	form := SelectionForm{
		ID:          FormID,
		Field:       FieldStrategy,
		Title:       StrategyFieldTitle,
		Options:     make([]Option, 0, len(descriptors)),
		SubmitLabel: SubmitLabel,
	}

	for _, d := range descriptors {
		form.Options = append(form.Options, Option{Value: d.ID, Label: d.AdminLabel})
	}

	switch {
	case hasCurrent:
		form.Default = current
		form.Stale = !form.HasOption(current)
	case len(form.Options) > 0:
		form.Default = form.Options[0].Value
	}
	form.Empty = len(form.Options) == 0

	return form
}

// HasOption reports whether id is one of the form's options.
func (f SelectionForm) HasOption(id string) bool {
	for _, o := range f.Options {
		if o.Value == id {
			return true
		}
	}
	return false
}
