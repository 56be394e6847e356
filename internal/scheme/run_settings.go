package scheme

import "github.com/beevik/etree"

const (
	attrKey       = "key"
	attrValue     = "value"
	attrArgument  = "argument"
	attrIsEnabled = "isEnabled"
)

// EnvironmentVariable is one variable set when the product runs.
type EnvironmentVariable struct {
	Key     string
	Value   string
	Enabled bool
}

// CommandLineArgument is one argument passed when the product runs.
type CommandLineArgument struct {
	Argument string
	Enabled  bool
}

// runSettings is embedded by the actions that run a product: test, launch and profile.
type runSettings struct {
	configured
}

// EnvironmentVariables returns the configured variables in order.
func (r runSettings) EnvironmentVariables() []EnvironmentVariable {
	list := r.elem.SelectElement(tagEnvironmentVariables)
	if list == nil {
		return nil
	}
	var vars []EnvironmentVariable
	for _, e := range list.SelectElements(tagEnvironmentVariable) {
		v := element{e}
		vars = append(vars, EnvironmentVariable{
			Key:     v.attr(attrKey),
			Value:   v.attr(attrValue),
			Enabled: v.boolAttr(attrIsEnabled, false),
		})
	}
	return vars
}

// SetEnvironmentVariables replaces the variables. An empty list removes the section.
func (r runSettings) SetEnvironmentVariables(vars []EnvironmentVariable) {
	if len(vars) == 0 {
		removeChild(r.elem, tagEnvironmentVariables)
		return
	}
	list := etree.NewElement(tagEnvironmentVariables)
	for _, v := range vars {
		e := list.CreateElement(tagEnvironmentVariable)
		e.CreateAttr(attrKey, v.Key)
		e.CreateAttr(attrValue, v.Value)
		e.CreateAttr(attrIsEnabled, boolString(v.Enabled))
	}
	replaceChild(r.elem, tagEnvironmentVariables, list, tagAdditionalOptions)
}

// CommandLineArguments returns the configured arguments in order.
func (r runSettings) CommandLineArguments() []CommandLineArgument {
	list := r.elem.SelectElement(tagCommandLineArguments)
	if list == nil {
		return nil
	}
	var args []CommandLineArgument
	for _, e := range list.SelectElements(tagCommandLineArgument) {
		a := element{e}
		args = append(args, CommandLineArgument{
			Argument: a.attr(attrArgument),
			Enabled:  a.boolAttr(attrIsEnabled, false),
		})
	}
	return args
}

// SetCommandLineArguments replaces the arguments. An empty list removes the section.
func (r runSettings) SetCommandLineArguments(args []CommandLineArgument) {
	if len(args) == 0 {
		removeChild(r.elem, tagCommandLineArguments)
		return
	}
	list := etree.NewElement(tagCommandLineArguments)
	for _, a := range args {
		e := list.CreateElement(tagCommandLineArgument)
		e.CreateAttr(attrArgument, a.Argument)
		e.CreateAttr(attrIsEnabled, boolString(a.Enabled))
	}
	replaceChild(r.elem, tagCommandLineArguments, list, tagEnvironmentVariables, tagAdditionalOptions)
}

// productRunner is embedded by the actions that hold a runnable: launch and profile.
type productRunner struct {
	runSettings
}

// BuildableProductRunnable returns the configured runnable, or nil when none is set.
func (p productRunner) BuildableProductRunnable() *BuildableProductRunnable {
	e := p.elem.SelectElement(tagBuildableProductRunnable)
	if e == nil {
		return nil
	}
	return &BuildableProductRunnable{element{e}}
}

// SetBuildableProductRunnable replaces the runnable. A nil runnable clears it.
func (p productRunner) SetBuildableProductRunnable(r *BuildableProductRunnable) {
	if r == nil {
		removeChild(p.elem, tagBuildableProductRunnable)
		return
	}
	replaceChild(p.elem, tagBuildableProductRunnable, r.elem,
		tagCommandLineArguments, tagEnvironmentVariables, tagAdditionalOptions)
}

// UseCustomWorkingDirectory reports whether the product runs from a custom directory.
func (p productRunner) UseCustomWorkingDirectory() bool {
	return p.boolAttr(attrUseCustomWorkingDirectory, false)
}

// SetUseCustomWorkingDirectory toggles running from a custom directory.
func (p productRunner) SetUseCustomWorkingDirectory(v bool) {
	p.setBoolAttr(attrUseCustomWorkingDirectory, v)
}
