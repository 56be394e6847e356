package scheme

import (
	"slices"
	"strings"

	"github.com/beevik/etree"
)

const (
	yes = "YES"
	no  = "NO"
)

const (
	attrBuildConfiguration           = "buildConfiguration"
	attrSelectedDebuggerIdentifier   = "selectedDebuggerIdentifier"
	attrSelectedLauncherIdentifier   = "selectedLauncherIdentifier"
	attrShouldUseLaunchSchemeArgsEnv = "shouldUseLaunchSchemeArgsEnv"
	attrUseCustomWorkingDirectory    = "useCustomWorkingDirectory"
	attrDebugDocumentVersioning      = "debugDocumentVersioning"

	tagAdditionalOptions    = "AdditionalOptions"
	tagCommandLineArguments = "CommandLineArguments"
	tagCommandLineArgument  = "CommandLineArgument"
	tagEnvironmentVariables = "EnvironmentVariables"
	tagEnvironmentVariable  = "EnvironmentVariable"

	// DefaultDebuggerIdentifier is the debugger selected by new test and launch actions.
	DefaultDebuggerIdentifier = "Xcode.DebuggerFoundation.Debugger.LLDB"
	// DefaultLauncherIdentifier is the launcher selected by new test and launch actions.
	DefaultLauncherIdentifier = "Xcode.DebuggerFoundation.Launcher.LLDB"
)

// element is the common base of every model type: a thin view over one tree node.
type element struct {
	elem *etree.Element
}

// XMLElement returns the underlying tree node.
func (e element) XMLElement() *etree.Element {
	return e.elem
}

func (e element) boolAttr(key string, dflt bool) bool {
	a := e.elem.SelectAttr(key)
	if a == nil {
		return dflt
	}
	return strings.EqualFold(a.Value, yes)
}

func (e element) setBoolAttr(key string, v bool) {
	e.elem.CreateAttr(key, boolString(v))
}

func (e element) attr(key string) string {
	return e.elem.SelectAttrValue(key, "")
}

// configured is embedded by actions that carry a build configuration.
type configured struct {
	element
}

// BuildConfiguration returns the build configuration the action uses, e.g. Debug.
func (c configured) BuildConfiguration() string {
	return c.attr(attrBuildConfiguration)
}

// SetBuildConfiguration selects the build configuration the action uses.
func (c configured) SetBuildConfiguration(name string) {
	c.elem.CreateAttr(attrBuildConfiguration, name)
}

func boolString(v bool) string {
	if v {
		return yes
	}
	return no
}

// replaceChild puts child in place of parent's existing tag element.
// Without one, child goes before the first sibling named in before, or last.
func replaceChild(parent *etree.Element, tag string, child *etree.Element, before ...string) {
	if old := parent.SelectElement(tag); old != nil {
		idx := old.Index()
		parent.RemoveChild(old)
		parent.InsertChildAt(idx, child)
		return
	}
	insertBefore(parent, child, before...)
}

// insertBefore inserts child ahead of the first element whose tag is in before, or appends it.
func insertBefore(parent, child *etree.Element, before ...string) {
	for _, sibling := range parent.ChildElements() {
		if slices.Contains(before, sibling.Tag) {
			parent.InsertChildAt(sibling.Index(), child)
			return
		}
	}
	parent.AddChild(child)
}

// ensureChild returns parent's tag element, creating it at the position insertBefore picks.
func ensureChild(parent *etree.Element, tag string, before ...string) *etree.Element {
	if e := parent.SelectElement(tag); e != nil {
		return e
	}
	e := etree.NewElement(tag)
	insertBefore(parent, e, before...)
	return e
}

func removeChild(parent *etree.Element, tag string) {
	if old := parent.SelectElement(tag); old != nil {
		parent.RemoveChild(old)
	}
}
