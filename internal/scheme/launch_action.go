package scheme

import "github.com/beevik/etree"

const (
	attrLaunchStyle                    = "launchStyle"
	attrIgnoresPersistentStateOnLaunch = "ignoresPersistentStateOnLaunch"
	attrAllowLocationSimulation        = "allowLocationSimulation"
	attrSavedToolIdentifier            = "savedToolIdentifier"
)

// LaunchAction describes how the product is run from the IDE.
type LaunchAction struct {
	productRunner
}

// NewLaunchAction creates a Debug launch action with no runnable.
func NewLaunchAction() *LaunchAction {
	e := etree.NewElement(KindLaunch.Tag())
	e.CreateAttr(attrSelectedDebuggerIdentifier, DefaultDebuggerIdentifier)
	e.CreateAttr(attrSelectedLauncherIdentifier, DefaultLauncherIdentifier)
	e.CreateAttr(attrLaunchStyle, "0")
	e.CreateAttr(attrUseCustomWorkingDirectory, no)
	e.CreateAttr(attrBuildConfiguration, "Debug")
	e.CreateAttr(attrIgnoresPersistentStateOnLaunch, no)
	e.CreateAttr(attrDebugDocumentVersioning, yes)
	e.CreateAttr(attrAllowLocationSimulation, yes)
	e.CreateElement(tagAdditionalOptions)
	return wrapLaunchAction(e)
}

func wrapLaunchAction(e *etree.Element) *LaunchAction {
	return &LaunchAction{productRunner{runSettings{configured{element{e}}}}}
}

// LaunchStyle returns "0" to launch automatically or "1" to wait for the executable.
func (a *LaunchAction) LaunchStyle() string {
	return a.attr(attrLaunchStyle)
}

// SetLaunchStyle sets the launch style.
func (a *LaunchAction) SetLaunchStyle(style string) {
	a.elem.CreateAttr(attrLaunchStyle, style)
}

// ProfileAction describes how the product is run under the profiler.
type ProfileAction struct {
	productRunner
}

// NewProfileAction creates a Release profile action with no runnable.
func NewProfileAction() *ProfileAction {
	e := etree.NewElement(KindProfile.Tag())
	e.CreateAttr(attrShouldUseLaunchSchemeArgsEnv, yes)
	e.CreateAttr(attrSavedToolIdentifier, "")
	e.CreateAttr(attrUseCustomWorkingDirectory, no)
	e.CreateAttr(attrBuildConfiguration, "Release")
	e.CreateAttr(attrDebugDocumentVersioning, yes)
	return wrapProfileAction(e)
}

func wrapProfileAction(e *etree.Element) *ProfileAction {
	return &ProfileAction{productRunner{runSettings{configured{element{e}}}}}
}

// ShouldUseLaunchSchemeArgsEnv reports whether profiling inherits the launch arguments and environment.
func (a *ProfileAction) ShouldUseLaunchSchemeArgsEnv() bool {
	return a.boolAttr(attrShouldUseLaunchSchemeArgsEnv, false)
}

// SetShouldUseLaunchSchemeArgsEnv toggles inheriting the launch arguments and environment.
func (a *ProfileAction) SetShouldUseLaunchSchemeArgsEnv(v bool) {
	a.setBoolAttr(attrShouldUseLaunchSchemeArgsEnv, v)
}

// SavedToolIdentifier returns the profiling template, empty for "ask on launch".
func (a *ProfileAction) SavedToolIdentifier() string {
	return a.attr(attrSavedToolIdentifier)
}

// SetSavedToolIdentifier selects the profiling template.
func (a *ProfileAction) SetSavedToolIdentifier(id string) {
	a.elem.CreateAttr(attrSavedToolIdentifier, id)
}
