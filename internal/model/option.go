package model

// Option is one radio button in a group.
type Option struct {
	ID        string `json:"id" yaml:"id"`
	Label     string `json:"label" yaml:"label"`
	Disabled  bool   `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	SkipFocus bool   `json:"skipFocus,omitempty" yaml:"skipFocus,omitempty"` // not a tab stop
}

// NewOptionParams holds parameters for creating a new Option.
type NewOptionParams struct {
	Label     string
	Disabled  bool
	SkipFocus bool
}

// NewOption creates an Option with a generated UUID.
func NewOption(params NewOptionParams) Option {
	return Option{
		ID:        GenerateUUID(),
		Label:     params.Label,
		Disabled:  params.Disabled,
		SkipFocus: params.SkipFocus,
	}
}

// Eligible reports whether the option can take keyboard focus.
func (o Option) Eligible() bool {
	return !o.Disabled && !o.SkipFocus
}
