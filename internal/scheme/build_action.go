package scheme

import (
	"github.com/beevik/etree"
	"go.trai.ch/xcscheme/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	tagBuildActionEntries = "BuildActionEntries"
	tagBuildActionEntry   = "BuildActionEntry"

	attrParallelizeBuildables     = "parallelizeBuildables"
	attrBuildImplicitDependencies = "buildImplicitDependencies"
)

// Phase is one of the actions a build entry can be included in.
type Phase int

// Phases in the order their flags are written.
const (
	PhaseTesting Phase = iota
	PhaseRunning
	PhaseProfiling
	PhaseArchiving
	PhaseAnalyzing
)

// Phases lists every phase in attribute order.
var Phases = []Phase{PhaseTesting, PhaseRunning, PhaseProfiling, PhaseArchiving, PhaseAnalyzing}

var phaseNames = map[Phase]string{
	PhaseTesting:   "testing",
	PhaseRunning:   "running",
	PhaseProfiling: "profiling",
	PhaseArchiving: "archiving",
	PhaseAnalyzing: "analyzing",
}

var phaseAttrs = map[Phase]string{
	PhaseTesting:   "buildForTesting",
	PhaseRunning:   "buildForRunning",
	PhaseProfiling: "buildForProfiling",
	PhaseArchiving: "buildForArchiving",
	PhaseAnalyzing: "buildForAnalyzing",
}

// String returns the lower-case phase name.
func (p Phase) String() string {
	return phaseNames[p]
}

// ParsePhase resolves a phase by its lower-case name.
func ParsePhase(name string) (Phase, error) {
	for _, p := range Phases {
		if phaseNames[p] == name {
			return p, nil
		}
	}
	return 0, zerr.With(domain.ErrUnknownBuildPhase, "phase", name)
}

// BuildAction lists the targets a scheme builds, in build order.
type BuildAction struct {
	element
}

// NewBuildAction creates an empty build action that builds in parallel with implicit dependencies.
func NewBuildAction() *BuildAction {
	e := etree.NewElement(KindBuild.Tag())
	e.CreateAttr(attrParallelizeBuildables, yes)
	e.CreateAttr(attrBuildImplicitDependencies, yes)
	return &BuildAction{element{e}}
}

func wrapBuildAction(e *etree.Element) *BuildAction {
	return &BuildAction{element{e}}
}

// ParallelizeBuildables reports whether independent targets build in parallel.
func (a *BuildAction) ParallelizeBuildables() bool {
	return a.boolAttr(attrParallelizeBuildables, false)
}

// SetParallelizeBuildables toggles parallel builds.
func (a *BuildAction) SetParallelizeBuildables(v bool) {
	a.setBoolAttr(attrParallelizeBuildables, v)
}

// BuildImplicitDependencies reports whether dependencies are discovered implicitly.
func (a *BuildAction) BuildImplicitDependencies() bool {
	return a.boolAttr(attrBuildImplicitDependencies, false)
}

// SetBuildImplicitDependencies toggles implicit dependency discovery.
func (a *BuildAction) SetBuildImplicitDependencies(v bool) {
	a.setBoolAttr(attrBuildImplicitDependencies, v)
}

// Entries returns the build entries in build order.
func (a *BuildAction) Entries() []*BuildActionEntry {
	list := a.elem.SelectElement(tagBuildActionEntries)
	if list == nil {
		return nil
	}
	var entries []*BuildActionEntry
	for _, e := range list.SelectElements(tagBuildActionEntry) {
		entries = append(entries, &BuildActionEntry{element{e}})
	}
	return entries
}

// AddEntry appends entry after the existing ones.
// Entries are not deduplicated.
func (a *BuildAction) AddEntry(entry *BuildActionEntry) {
	ensureChild(a.elem, tagBuildActionEntries).AddChild(entry.elem)
}

// RemoveEntry detaches entry from the action. It reports whether entry belonged to it.
func (a *BuildAction) RemoveEntry(entry *BuildActionEntry) bool {
	list := a.elem.SelectElement(tagBuildActionEntries)
	if list == nil {
		return false
	}
	return list.RemoveChild(entry.elem) != nil
}

// BuildActionEntry is one target of a build action together with the actions it is built for.
type BuildActionEntry struct {
	element
}

// NewBuildActionEntry creates an entry for ref that is built for every phase.
func NewBuildActionEntry(ref *BuildableReference) *BuildActionEntry {
	e := etree.NewElement(tagBuildActionEntry)
	for _, p := range Phases {
		e.CreateAttr(phaseAttrs[p], yes)
	}
	e.AddChild(ref.elem)
	return &BuildActionEntry{element{e}}
}

// BuildFor reports whether the entry is built for phase p.
func (e *BuildActionEntry) BuildFor(p Phase) bool {
	return e.boolAttr(phaseAttrs[p], false)
}

// SetBuildFor includes or excludes the entry from phase p.
func (e *BuildActionEntry) SetBuildFor(p Phase, enabled bool) {
	e.setBoolAttr(phaseAttrs[p], enabled)
}

// BuildableReference returns the target this entry builds.
func (e *BuildActionEntry) BuildableReference() *BuildableReference {
	return wrapBuildableReference(e.elem)
}

// EntriesFor returns the entries that build target.
func (a *BuildAction) EntriesFor(target *domain.Target) []*BuildActionEntry {
	var res []*BuildActionEntry
	for _, e := range a.Entries() {
		if ref := e.BuildableReference(); ref != nil && ref.Refers(target) {
			res = append(res, e)
		}
	}
	return res
}
