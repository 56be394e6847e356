// Package scheme models IDE scheme documents: the six actions of a scheme, the targets they
// reference, and the operations that compose them.
//
// Every model type is a view over a node of the underlying XML tree, so edits made through any
// of them show up when the scheme is rendered.
package scheme

import (
	"io"
	"os"
	"path/filepath"

	"github.com/beevik/etree"
	"go.trai.ch/xcscheme/internal/core/domain"
	"go.trai.ch/xcscheme/internal/xmlfmt"
	"go.trai.ch/zerr"
)

const (
	// RootTag is the name of the document's root element.
	RootTag = "Scheme"

	// FormatVersion is the only scheme format version that can be loaded.
	FormatVersion = "1.3"

	// DefaultLastUpgradeVersion is written into new schemes.
	DefaultLastUpgradeVersion = "0640"

	attrLastUpgradeVersion = "LastUpgradeVersion"
	attrVersion            = "version"
)

// ActionKind identifies one of the six actions of a scheme.
type ActionKind int

// Action kinds in the order they are written.
const (
	KindBuild ActionKind = iota
	KindTest
	KindLaunch
	KindProfile
	KindAnalyze
	KindArchive
)

// Kinds lists every action kind in document order.
var Kinds = []ActionKind{KindBuild, KindTest, KindLaunch, KindProfile, KindAnalyze, KindArchive}

var kindTags = [...]string{
	KindBuild:   "BuildAction",
	KindTest:    "TestAction",
	KindLaunch:  "LaunchAction",
	KindProfile: "ProfileAction",
	KindAnalyze: "AnalyzeAction",
	KindArchive: "ArchiveAction",
}

var kindNames = [...]string{
	KindBuild:   "build",
	KindTest:    "test",
	KindLaunch:  "launch",
	KindProfile: "profile",
	KindAnalyze: "analyze",
	KindArchive: "archive",
}

// Tag returns the element name of the action.
func (k ActionKind) Tag() string {
	return kindTags[k]
}

func (k ActionKind) String() string {
	return kindNames[k]
}

// later returns the tags of the kinds written after k.
func (k ActionKind) later() []string {
	var tags []string
	for _, other := range Kinds[k+1:] {
		tags = append(tags, other.Tag())
	}
	return tags
}

type action interface {
	XMLElement() *etree.Element
}

// Scheme is a scheme document.
// A Scheme is not safe for concurrent use.
type Scheme struct {
	doc     *etree.Document
	root    *etree.Element
	actions [len(kindTags)]action
}

type options struct {
	lastUpgradeVersion string
}

// Option configures a new Scheme.
type Option func(*options)

// WithLastUpgradeVersion sets the LastUpgradeVersion marker of a new scheme.
func WithLastUpgradeVersion(v string) Option {
	return func(o *options) {
		if v != "" {
			o.lastUpgradeVersion = v
		}
	}
}

// New creates a scheme holding only an empty build action.
func New(opts ...Option) *Scheme {
	o := options{lastUpgradeVersion: DefaultLastUpgradeVersion}
	for _, opt := range opts {
		opt(&o)
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", xmlfmt.DefaultDeclaration)
	root := doc.CreateElement(RootTag)
	root.CreateAttr(attrLastUpgradeVersion, o.lastUpgradeVersion)
	root.CreateAttr(attrVersion, FormatVersion)

	s := &Scheme{doc: doc, root: root}
	s.SetBuildAction(NewBuildAction())
	return s
}

// Parse reads a scheme from data.
func Parse(data []byte) (*Scheme, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, zerr.Wrap(err, domain.ErrSchemeParseFailed.Error())
	}
	return fromDocument(doc)
}

// Read reads a scheme from r.
func Read(r io.Reader) (*Scheme, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, zerr.Wrap(err, domain.ErrSchemeParseFailed.Error())
	}
	return fromDocument(doc)
}

// Load reads the scheme file at path.
func Load(path string) (*Scheme, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is chosen by the caller
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSchemeReadFailed.Error()), "path", path)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return s, nil
}

func fromDocument(doc *etree.Document) (*Scheme, error) {
	root := doc.Root()
	if root == nil || root.Tag != RootTag {
		return nil, domain.ErrSchemeRootMissing
	}
	if v := root.SelectAttrValue(attrVersion, ""); v != FormatVersion {
		return nil, zerr.With(domain.ErrUnsupportedSchemeFormat, "version", v)
	}
	return &Scheme{doc: doc, root: root}, nil
}

// Version returns the format version, always FormatVersion.
func (s *Scheme) Version() string {
	return s.root.SelectAttrValue(attrVersion, "")
}

// LastUpgradeVersion returns the upgrade marker. It is never validated.
func (s *Scheme) LastUpgradeVersion() string {
	return s.root.SelectAttrValue(attrLastUpgradeVersion, "")
}

// SetLastUpgradeVersion sets the upgrade marker.
func (s *Scheme) SetLastUpgradeVersion(v string) {
	s.root.CreateAttr(attrLastUpgradeVersion, v)
}

// Document returns the underlying XML document.
func (s *Scheme) Document() *etree.Document {
	return s.doc
}

// Has reports whether the scheme contains an action of kind k, without creating one.
func (s *Scheme) Has(k ActionKind) bool {
	return s.actions[k] != nil || s.root.SelectElement(k.Tag()) != nil
}

// lazy returns the cached action of kind k. On a miss it wraps the existing element,
// or creates a fresh action and attaches it at its canonical position.
func lazy[T action](s *Scheme, k ActionKind, wrap func(*etree.Element) T, create func() T) T {
	if a, ok := s.actions[k].(T); ok {
		return a
	}
	var a T
	if e := s.root.SelectElement(k.Tag()); e != nil {
		a = wrap(e)
	} else {
		a = create()
		insertBefore(s.root, a.XMLElement(), k.later()...)
	}
	s.actions[k] = a
	return a
}

// assign replaces the action of kind k with a, keeping the position of the replaced element.
func (s *Scheme) assign(k ActionKind, a action) {
	replaceChild(s.root, k.Tag(), a.XMLElement(), k.later()...)
	s.actions[k] = a
}

// remove drops the action of kind k.
func (s *Scheme) remove(k ActionKind) {
	removeChild(s.root, k.Tag())
	s.actions[k] = nil
}

// BuildAction returns the build action, creating it on first use.
func (s *Scheme) BuildAction() *BuildAction {
	return lazy(s, KindBuild, wrapBuildAction, NewBuildAction)
}

// SetBuildAction replaces the build action. A nil action removes it.
func (s *Scheme) SetBuildAction(a *BuildAction) {
	if a == nil {
		s.remove(KindBuild)
		return
	}
	s.assign(KindBuild, a)
}

// TestAction returns the test action, creating it on first use.
func (s *Scheme) TestAction() *TestAction {
	return lazy(s, KindTest, wrapTestAction, NewTestAction)
}

// SetTestAction replaces the test action. A nil action removes it.
func (s *Scheme) SetTestAction(a *TestAction) {
	if a == nil {
		s.remove(KindTest)
		return
	}
	s.assign(KindTest, a)
}

// LaunchAction returns the launch action, creating it on first use.
func (s *Scheme) LaunchAction() *LaunchAction {
	return lazy(s, KindLaunch, wrapLaunchAction, NewLaunchAction)
}

// SetLaunchAction replaces the launch action. A nil action removes it.
func (s *Scheme) SetLaunchAction(a *LaunchAction) {
	if a == nil {
		s.remove(KindLaunch)
		return
	}
	s.assign(KindLaunch, a)
}

// ProfileAction returns the profile action, creating it on first use.
func (s *Scheme) ProfileAction() *ProfileAction {
	return lazy(s, KindProfile, wrapProfileAction, NewProfileAction)
}

// SetProfileAction replaces the profile action. A nil action removes it.
func (s *Scheme) SetProfileAction(a *ProfileAction) {
	if a == nil {
		s.remove(KindProfile)
		return
	}
	s.assign(KindProfile, a)
}

// AnalyzeAction returns the analyze action, creating it on first use.
func (s *Scheme) AnalyzeAction() *AnalyzeAction {
	return lazy(s, KindAnalyze, wrapAnalyzeAction, NewAnalyzeAction)
}

// SetAnalyzeAction replaces the analyze action. A nil action removes it.
func (s *Scheme) SetAnalyzeAction(a *AnalyzeAction) {
	if a == nil {
		s.remove(KindAnalyze)
		return
	}
	s.assign(KindAnalyze, a)
}

// ArchiveAction returns the archive action, creating it on first use.
func (s *Scheme) ArchiveAction() *ArchiveAction {
	return lazy(s, KindArchive, wrapArchiveAction, NewArchiveAction)
}

// SetArchiveAction replaces the archive action. A nil action removes it.
func (s *Scheme) SetArchiveAction(a *ArchiveAction) {
	if a == nil {
		s.remove(KindArchive)
		return
	}
	s.assign(KindArchive, a)
}

// ConfigureWithTargets replaces all six actions with fresh ones set up for runnable and test.
// Either target may be nil, in which case nothing refers to it.
func (s *Scheme) ConfigureWithTargets(runnable, test *domain.Target) {
	build := NewBuildAction()
	testAction := NewTestAction()
	launch := NewLaunchAction()
	profile := NewProfileAction()

	if runnable != nil {
		build.AddEntry(NewBuildActionEntry(NewBuildableReference(runnable)))
		launch.SetBuildableProductRunnable(NewBuildableProductRunnable(runnable, LaunchDebuggingMode))
		profile.SetBuildableProductRunnable(NewBuildableProductRunnable(runnable, ""))
	}
	if test != nil {
		entry := NewBuildActionEntry(NewBuildableReference(test))
		entry.SetBuildFor(PhaseRunning, false)
		entry.SetBuildFor(PhaseProfiling, false)
		entry.SetBuildFor(PhaseArchiving, false)
		build.AddEntry(entry)
		testAction.AddTestable(NewTestableReference(NewBuildableReference(test)))
	}

	s.SetBuildAction(build)
	s.SetTestAction(testAction)
	s.SetLaunchAction(launch)
	s.SetProfileAction(profile)
	s.SetAnalyzeAction(NewAnalyzeAction())
	s.SetArchiveAction(NewArchiveAction())
}

// AddBuildTarget appends an entry for target to the build action. The entry is built for
// every phase except running, which follows buildForRunning. Existing entries are not checked.
func (s *Scheme) AddBuildTarget(target *domain.Target, buildForRunning bool) *BuildActionEntry {
	entry := NewBuildActionEntry(NewBuildableReference(target))
	entry.SetBuildFor(PhaseRunning, buildForRunning)
	s.BuildAction().AddEntry(entry)
	return entry
}

// AddTestTarget appends a testable for target to the test action.
func (s *Scheme) AddTestTarget(target *domain.Target) *TestableReference {
	ref := NewTestableReference(NewBuildableReference(target))
	s.TestAction().AddTestable(ref)
	return ref
}

// SetLaunchTarget makes target the runnable of the launch and profile actions and adds a
// macro expansion for it to the test action.
func (s *Scheme) SetLaunchTarget(target *domain.Target) {
	launchRunnable := NewBuildableProductRunnable(target, LaunchDebuggingMode)
	profileRunnable := NewBuildableProductRunnable(target, "")
	macro := NewMacroExpansion(target)

	launch, profile, test := s.LaunchAction(), s.ProfileAction(), s.TestAction()
	launch.SetBuildableProductRunnable(launchRunnable)
	profile.SetBuildableProductRunnable(profileRunnable)
	test.AddMacroExpansion(macro)
}

// Render returns the document in the IDE's layout.
func (s *Scheme) Render() string {
	return xmlfmt.Format(s.doc)
}

// WriteTo renders the document into w.
func (s *Scheme) WriteTo(w io.Writer) (int64, error) {
	return xmlfmt.Write(w, s.doc)
}

// WriteFile renders the document to path, creating missing directories.
func (s *Scheme) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSchemeDirCreateFailed.Error()), "path", filepath.Dir(path))
	}
	if err := os.WriteFile(path, []byte(s.Render()), domain.FilePerm); err != nil { //nolint:gosec // G306: schemes are checked into the project
		return zerr.With(zerr.Wrap(err, domain.ErrSchemeWriteFailed.Error()), "path", path)
	}
	return nil
}

// Save writes the scheme as name into the shared or current user's scheme directory of the
// project and returns the path written.
func (s *Scheme) Save(projectPath, name string, shared bool) (string, error) {
	if !domain.ValidSchemeName(name) {
		return "", zerr.With(domain.ErrInvalidSchemeName, "name", name)
	}
	path := domain.SchemePath(projectPath, name, shared, domain.CurrentUser())
	if err := s.WriteFile(path); err != nil {
		return "", err
	}
	return path, nil
}
