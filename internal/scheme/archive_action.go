package scheme

import "github.com/beevik/etree"

const (
	attrRevealArchiveInOrganizer = "revealArchiveInOrganizer"
	attrCustomArchiveName        = "customArchiveName"
)

// AnalyzeAction configures static analysis.
type AnalyzeAction struct {
	configured
}

// NewAnalyzeAction creates a Debug analyze action.
func NewAnalyzeAction() *AnalyzeAction {
	e := etree.NewElement(KindAnalyze.Tag())
	e.CreateAttr(attrBuildConfiguration, "Debug")
	return wrapAnalyzeAction(e)
}

func wrapAnalyzeAction(e *etree.Element) *AnalyzeAction {
	return &AnalyzeAction{configured{element{e}}}
}

// ArchiveAction configures archiving for distribution.
type ArchiveAction struct {
	configured
}

// NewArchiveAction creates a Release archive action that reveals the archive in the organizer.
func NewArchiveAction() *ArchiveAction {
	e := etree.NewElement(KindArchive.Tag())
	e.CreateAttr(attrBuildConfiguration, "Release")
	e.CreateAttr(attrRevealArchiveInOrganizer, yes)
	return wrapArchiveAction(e)
}

func wrapArchiveAction(e *etree.Element) *ArchiveAction {
	return &ArchiveAction{configured{element{e}}}
}

// RevealArchiveInOrganizer reports whether the organizer opens after archiving.
func (a *ArchiveAction) RevealArchiveInOrganizer() bool {
	return a.boolAttr(attrRevealArchiveInOrganizer, false)
}

// SetRevealArchiveInOrganizer toggles opening the organizer after archiving.
func (a *ArchiveAction) SetRevealArchiveInOrganizer(v bool) {
	a.setBoolAttr(attrRevealArchiveInOrganizer, v)
}

// CustomArchiveName returns the archive name override, or "".
func (a *ArchiveAction) CustomArchiveName() string {
	return a.attr(attrCustomArchiveName)
}

// SetCustomArchiveName overrides the archive name. An empty name removes the override.
func (a *ArchiveAction) SetCustomArchiveName(name string) {
	if name == "" {
		a.elem.RemoveAttr(attrCustomArchiveName)
		return
	}
	a.elem.CreateAttr(attrCustomArchiveName, name)
}
