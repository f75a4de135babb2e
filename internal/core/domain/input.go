package domain

// BuildInput is what an orchestrator hands over for one identity
// computation: resolved settings and options, the declared direct
// requirements, the computed transitive closure and the relevance filter.
// Resolution itself happens upstream; the input is already final.
type BuildInput struct {
	Settings *SettingsValues
	Options  *OptionsValues
	Requires []ComponentRef
	Indirect []ComponentRef
	Relevant RelevanceFilter
}

// Identity assembles the BuildIdentity for this input.
func (in *BuildInput) Identity() *BuildIdentity {
	return NewBuildIdentity(in.Settings, in.Options, in.Requires, in.Indirect, in.Relevant)
}
