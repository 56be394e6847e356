package scheme

import "github.com/beevik/etree"

const (
	tagTestables         = "Testables"
	tagTestableReference = "TestableReference"

	attrSkipped             = "skipped"
	attrParallelizable      = "parallelizable"
	attrCodeCoverageEnabled = "codeCoverageEnabled"
)

// TestAction lists the test bundles a scheme runs and how it runs them.
type TestAction struct {
	runSettings
}

// NewTestAction creates an empty Debug test action that reuses the launch arguments.
func NewTestAction() *TestAction {
	e := etree.NewElement(KindTest.Tag())
	e.CreateAttr(attrSelectedDebuggerIdentifier, DefaultDebuggerIdentifier)
	e.CreateAttr(attrSelectedLauncherIdentifier, DefaultLauncherIdentifier)
	e.CreateAttr(attrShouldUseLaunchSchemeArgsEnv, yes)
	e.CreateAttr(attrBuildConfiguration, "Debug")
	e.CreateElement(tagTestables)
	e.CreateElement(tagAdditionalOptions)
	return wrapTestAction(e)
}

func wrapTestAction(e *etree.Element) *TestAction {
	return &TestAction{runSettings{configured{element{e}}}}
}

// ShouldUseLaunchSchemeArgsEnv reports whether tests inherit the launch action's arguments and environment.
func (a *TestAction) ShouldUseLaunchSchemeArgsEnv() bool {
	return a.boolAttr(attrShouldUseLaunchSchemeArgsEnv, false)
}

// SetShouldUseLaunchSchemeArgsEnv toggles inheriting the launch arguments and environment.
func (a *TestAction) SetShouldUseLaunchSchemeArgsEnv(v bool) {
	a.setBoolAttr(attrShouldUseLaunchSchemeArgsEnv, v)
}

// CodeCoverageEnabled reports whether coverage is gathered while testing.
func (a *TestAction) CodeCoverageEnabled() bool {
	return a.boolAttr(attrCodeCoverageEnabled, false)
}

// SetCodeCoverageEnabled toggles coverage gathering.
func (a *TestAction) SetCodeCoverageEnabled(v bool) {
	a.setBoolAttr(attrCodeCoverageEnabled, v)
}

// Testables returns the test bundles in declaration order.
func (a *TestAction) Testables() []*TestableReference {
	list := a.elem.SelectElement(tagTestables)
	if list == nil {
		return nil
	}
	var refs []*TestableReference
	for _, e := range list.SelectElements(tagTestableReference) {
		refs = append(refs, &TestableReference{element{e}})
	}
	return refs
}

// AddTestable appends a test bundle. Testables are not deduplicated.
func (a *TestAction) AddTestable(t *TestableReference) {
	ensureChild(a.elem, tagTestables, tagMacroExpansion, tagCommandLineArguments,
		tagEnvironmentVariables, tagAdditionalOptions).AddChild(t.elem)
}

// MacroExpansions returns the macro expansions in insertion order.
func (a *TestAction) MacroExpansions() []*MacroExpansion {
	var res []*MacroExpansion
	for _, e := range a.elem.SelectElements(tagMacroExpansion) {
		res = append(res, &MacroExpansion{element{e}})
	}
	return res
}

// AddMacroExpansion appends m after the existing macro expansions, which follow the testables.
func (a *TestAction) AddMacroExpansion(m *MacroExpansion) {
	if existing := a.elem.SelectElements(tagMacroExpansion); len(existing) > 0 {
		a.elem.InsertChildAt(existing[len(existing)-1].Index()+1, m.elem)
		return
	}
	if testables := a.elem.SelectElement(tagTestables); testables != nil {
		a.elem.InsertChildAt(testables.Index()+1, m.elem)
		return
	}
	insertBefore(a.elem, m.elem, tagCommandLineArguments, tagEnvironmentVariables, tagAdditionalOptions)
}

// TestableReference is one test bundle of a test action.
type TestableReference struct {
	element
}

// NewTestableReference creates an enabled testable for ref.
func NewTestableReference(ref *BuildableReference) *TestableReference {
	e := etree.NewElement(tagTestableReference)
	e.CreateAttr(attrSkipped, no)
	e.AddChild(ref.elem)
	return &TestableReference{element{e}}
}

// Skipped reports whether the bundle is disabled.
func (t *TestableReference) Skipped() bool {
	return t.boolAttr(attrSkipped, false)
}

// SetSkipped disables or enables the bundle.
func (t *TestableReference) SetSkipped(v bool) {
	t.setBoolAttr(attrSkipped, v)
}

// Parallelizable reports whether the bundle's tests may run in parallel.
func (t *TestableReference) Parallelizable() bool {
	return t.boolAttr(attrParallelizable, false)
}

// SetParallelizable toggles parallel test execution for the bundle.
func (t *TestableReference) SetParallelizable(v bool) {
	t.setBoolAttr(attrParallelizable, v)
}

// BuildableReference returns the test target.
func (t *TestableReference) BuildableReference() *BuildableReference {
	return wrapBuildableReference(t.elem)
}
