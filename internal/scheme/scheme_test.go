package scheme_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xcscheme/internal/core/domain"
	"go.trai.ch/xcscheme/internal/scheme"
	"go.trai.ch/xcscheme/internal/xmlfmt"
)

func appTarget() *domain.Target {
	return &domain.Target{
		Name:        "App",
		UUID:        "1D6058900D05DD3D006BFB54",
		ProductName: "App.app",
		ProductType: "com.apple.product-type.application",
		ProjectPath: "/work/App.xcodeproj",
	}
}

func testsTarget() *domain.Target {
	return &domain.Target{
		Name:        "AppTests",
		UUID:        "1D6058900D05DD3D006BFB99",
		ProductName: "AppTests.xctest",
		ProductType: "com.apple.product-type.bundle.unit-test",
		ProjectPath: "/work/App.xcodeproj",
	}
}

func childTags(s *scheme.Scheme) []string {
	var tags []string
	for _, e := range s.Document().Root().ChildElements() {
		tags = append(tags, e.Tag)
	}
	return tags
}

func TestNew_Empty(t *testing.T) {
	s := scheme.New()

	out := s.Render()
	assert.Equal(t, scheme.FormatVersion, s.Version())
	assert.Equal(t, scheme.DefaultLastUpgradeVersion, s.LastUpgradeVersion())
	assert.Equal(t, []string{"BuildAction"}, childTags(s))
	assert.True(t, strings.HasSuffix(out, "</Scheme>\n"))
	assert.False(t, strings.HasSuffix(out, "\n\n"))

	g := goldie.New(t)
	g.Assert(t, "empty", []byte(out))
}

func TestNew_WithLastUpgradeVersion(t *testing.T) {
	s := scheme.New(scheme.WithLastUpgradeVersion("1500"))
	assert.Equal(t, "1500", s.LastUpgradeVersion())

	s = scheme.New(scheme.WithLastUpgradeVersion(""))
	assert.Equal(t, scheme.DefaultLastUpgradeVersion, s.LastUpgradeVersion())
}

func TestParse_VersionGate(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"older version", `<Scheme LastUpgradeVersion="0640" version="1.2"></Scheme>`},
		{"newer version", `<Scheme LastUpgradeVersion="0640" version="1.7"></Scheme>`},
		{"missing version", `<Scheme LastUpgradeVersion="0640"></Scheme>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := scheme.Parse([]byte(tt.doc))
			require.ErrorContains(t, err, domain.ErrUnsupportedSchemeFormat.Error())
			assert.Nil(t, s)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := scheme.Parse([]byte(`<Scheme version="1.3"><BuildAction></Scheme>`))
	require.ErrorContains(t, err, domain.ErrSchemeParseFailed.Error())

	_, err = scheme.Parse([]byte(`<Workspace version="1.3"></Workspace>`))
	require.ErrorContains(t, err, domain.ErrSchemeRootMissing.Error())

	_, err = scheme.Parse([]byte(``))
	require.Error(t, err)
}

func TestParse_LazyActions(t *testing.T) {
	s, err := scheme.Parse([]byte(`<?xml version='1.0' encoding='UTF-8'?>
<Scheme LastUpgradeVersion="1130" version="1.3">
  <BuildAction parallelizeBuildables="NO" buildImplicitDependencies="YES"/>
  <ArchiveAction buildConfiguration="Release" revealArchiveInOrganizer="NO"/>
</Scheme>`))
	require.NoError(t, err)

	assert.Equal(t, "1130", s.LastUpgradeVersion())
	assert.False(t, s.BuildAction().ParallelizeBuildables())
	assert.False(t, s.ArchiveAction().RevealArchiveInOrganizer())

	assert.False(t, s.Has(scheme.KindTest))
	test := s.TestAction()
	assert.True(t, s.Has(scheme.KindTest))
	assert.Same(t, test, s.TestAction())

	// New actions are attached in document order.
	assert.Equal(t, []string{"BuildAction", "TestAction", "ArchiveAction"}, childTags(s))
	assert.True(t, strings.HasPrefix(s.Render(), `<?xml version="1.0" encoding="UTF-8"?>`+"\n"))
}

func TestConfigureWithTargets(t *testing.T) {
	s := scheme.New()
	s.ConfigureWithTargets(appTarget(), testsTarget())

	entries := s.BuildAction().Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "App", entries[0].BuildableReference().TargetName())
	assert.Equal(t, "AppTests", entries[1].BuildableReference().TargetName())
	for _, p := range scheme.Phases {
		assert.True(t, entries[0].BuildFor(p), p.String())
	}
	assert.True(t, entries[1].BuildFor(scheme.PhaseTesting))
	assert.False(t, entries[1].BuildFor(scheme.PhaseRunning))

	testables := s.TestAction().Testables()
	require.Len(t, testables, 1)
	assert.Equal(t, testsTarget().UUID, testables[0].BuildableReference().TargetUUID())
	assert.Empty(t, s.TestAction().MacroExpansions())

	launch := s.LaunchAction().BuildableProductRunnable()
	require.NotNil(t, launch)
	assert.Equal(t, scheme.LaunchDebuggingMode, launch.RunnableDebuggingMode())
	assert.True(t, launch.BuildableReference().Refers(appTarget()))

	profile := s.ProfileAction().BuildableProductRunnable()
	require.NotNil(t, profile)
	assert.Empty(t, profile.RunnableDebuggingMode())
	assert.True(t, profile.BuildableReference().Refers(appTarget()))

	assert.Equal(t, "Debug", s.AnalyzeAction().BuildConfiguration())
	assert.Equal(t, "Release", s.ArchiveAction().BuildConfiguration())
	assert.Equal(t,
		[]string{"BuildAction", "TestAction", "LaunchAction", "ProfileAction", "AnalyzeAction", "ArchiveAction"},
		childTags(s))

	g := goldie.New(t)
	g.Assert(t, "configured", []byte(s.Render()))
}

func TestConfigureWithTargets_NilTest(t *testing.T) {
	s := scheme.New()
	s.ConfigureWithTargets(appTarget(), nil)

	require.Len(t, s.BuildAction().Entries(), 1)
	assert.Empty(t, s.TestAction().Testables())
	assert.NotNil(t, s.LaunchAction().BuildableProductRunnable())
}

func TestConfigureWithTargets_NilRunnable(t *testing.T) {
	s := scheme.New()
	s.ConfigureWithTargets(nil, testsTarget())

	require.Len(t, s.BuildAction().Entries(), 1)
	require.Len(t, s.TestAction().Testables(), 1)
	assert.Nil(t, s.LaunchAction().BuildableProductRunnable())
	assert.Nil(t, s.ProfileAction().BuildableProductRunnable())
}

func TestConfigureWithTargets_ReplacesExisting(t *testing.T) {
	s := scheme.New()
	s.AddBuildTarget(testsTarget(), false)
	s.SetLaunchTarget(testsTarget())

	s.ConfigureWithTargets(appTarget(), nil)

	require.Len(t, s.BuildAction().Entries(), 1)
	assert.Empty(t, s.TestAction().MacroExpansions())
	assert.True(t, s.LaunchAction().BuildableProductRunnable().BuildableReference().Refers(appTarget()))
	assert.Len(t, s.Document().Root().SelectElements("LaunchAction"), 1)
}

func TestAddBuildTarget_NoDeduplication(t *testing.T) {
	s := scheme.New()
	first := s.AddBuildTarget(appTarget(), true)
	second := s.AddBuildTarget(appTarget(), true)

	assert.NotSame(t, first, second)
	require.Len(t, s.BuildAction().Entries(), 2)
	assert.Len(t, s.BuildAction().EntriesFor(appTarget()), 2)
}

func TestAddBuildTarget_Running(t *testing.T) {
	s := scheme.New()
	entry := s.AddBuildTarget(testsTarget(), false)

	assert.False(t, entry.BuildFor(scheme.PhaseRunning))
	for _, p := range []scheme.Phase{scheme.PhaseTesting, scheme.PhaseProfiling, scheme.PhaseArchiving, scheme.PhaseAnalyzing} {
		assert.True(t, entry.BuildFor(p), p.String())
	}
}

func TestAssembled(t *testing.T) {
	s := scheme.New()
	s.AddBuildTarget(appTarget(), true)
	s.AddBuildTarget(testsTarget(), false)
	s.AddTestTarget(testsTarget())
	s.SetLaunchTarget(appTarget())

	g := goldie.New(t)
	g.Assert(t, "assembled", []byte(s.Render()))
}

func TestSetLaunchTarget(t *testing.T) {
	s := scheme.New()
	s.SetLaunchTarget(appTarget())

	launch := s.LaunchAction().BuildableProductRunnable()
	profile := s.ProfileAction().BuildableProductRunnable()
	macros := s.TestAction().MacroExpansions()

	require.NotNil(t, launch)
	require.NotNil(t, profile)
	require.Len(t, macros, 1)
	for _, ref := range []*scheme.BuildableReference{
		launch.BuildableReference(),
		profile.BuildableReference(),
		macros[0].BuildableReference(),
	} {
		assert.True(t, ref.Refers(appTarget()))
		assert.Equal(t, "App.app", ref.BuildableName())
		assert.Equal(t, "container:App.xcodeproj", ref.ReferencedContainer())
	}

	// A second target replaces the runnables and adds another expansion.
	s.SetLaunchTarget(testsTarget())
	assert.True(t, s.LaunchAction().BuildableProductRunnable().BuildableReference().Refers(testsTarget()))
	assert.True(t, s.ProfileAction().BuildableProductRunnable().BuildableReference().Refers(testsTarget()))
	assert.Len(t, s.TestAction().MacroExpansions(), 2)
	assert.Len(t, s.LaunchAction().XMLElement().SelectElements("BuildableProductRunnable"), 1)
}

func TestSetAction_ReplacesOnlyThatSection(t *testing.T) {
	s := scheme.New()
	s.ConfigureWithTargets(appTarget(), testsTarget())
	reparsed, err := scheme.Parse([]byte(s.Render()))
	require.NoError(t, err)

	before := map[string]string{}
	for _, e := range reparsed.Document().Root().ChildElements() {
		before[e.Tag] = xmlfmt.FormatElement(e, 1)
	}

	replacement := scheme.NewBuildAction()
	replacement.SetParallelizeBuildables(false)
	reparsed.SetBuildAction(replacement)

	root := reparsed.Document().Root()
	builds := root.SelectElements("BuildAction")
	require.Len(t, builds, 1)
	assert.Same(t, replacement.XMLElement(), builds[0])
	assert.Same(t, replacement, reparsed.BuildAction())
	assert.Equal(t, "BuildAction", root.ChildElements()[0].Tag)

	for _, e := range root.ChildElements() {
		if e.Tag == "BuildAction" {
			continue
		}
		assert.Equal(t, before[e.Tag], xmlfmt.FormatElement(e, 1), e.Tag)
	}
}

func TestSetAction_Nil(t *testing.T) {
	s := scheme.New()
	s.SetLaunchTarget(appTarget())
	require.True(t, s.Has(scheme.KindProfile))

	s.SetProfileAction(nil)
	assert.False(t, s.Has(scheme.KindProfile))
	assert.NotContains(t, s.Render(), "ProfileAction")
}

func TestRoundTrip(t *testing.T) {
	s := scheme.New()
	s.ConfigureWithTargets(appTarget(), testsTarget())
	s.SetLaunchTarget(appTarget())
	s.AddBuildTarget(testsTarget(), false).SetBuildFor(scheme.PhaseAnalyzing, false)

	out := s.Render()
	parsed, err := scheme.Parse([]byte(out))
	require.NoError(t, err)

	assert.Equal(t, out, parsed.Render())

	want, got := s.BuildAction().Entries(), parsed.BuildAction().Entries()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].BuildableReference().TargetUUID(), got[i].BuildableReference().TargetUUID())
		for _, p := range scheme.Phases {
			assert.Equal(t, want[i].BuildFor(p), got[i].BuildFor(p))
		}
	}
	assert.Len(t, parsed.TestAction().Testables(), 1)
	assert.Len(t, parsed.TestAction().MacroExpansions(), 1)
	assert.Equal(t,
		s.LaunchAction().BuildableProductRunnable().BuildableReference().TargetUUID(),
		parsed.LaunchAction().BuildableProductRunnable().BuildableReference().TargetUUID())
}

func TestRender_Normalizes(t *testing.T) {
	compact := `<?xml version='1.0' encoding='UTF-8'?>
<Scheme LastUpgradeVersion="0640" version="1.3">
    <BuildAction parallelizeBuildables="YES" buildImplicitDependencies="YES">
    </BuildAction>
</Scheme>
`
	s, err := scheme.Parse([]byte(compact))
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "empty", []byte(s.Render()))
}

func TestWriteTo(t *testing.T) {
	s := scheme.New()

	var buf bytes.Buffer
	n, err := s.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, s.Render(), buf.String())

	read, err := scheme.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, s.Render(), read.Render())
}

func TestSave(t *testing.T) {
	t.Setenv("USER", "alice")
	project := filepath.Join(t.TempDir(), "App.xcodeproj")

	s := scheme.New()
	s.ConfigureWithTargets(appTarget(), testsTarget())

	shared, err := s.Save(project, "App", true)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(project, "xcshareddata", "xcschemes", "App.xcscheme"), shared)

	user, err := s.Save(project, "App", false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(project, "xcuserdata", "alice.xcuserdatad", "xcschemes", "App.xcscheme"), user)

	data, err := os.ReadFile(shared)
	require.NoError(t, err)
	assert.Equal(t, s.Render(), string(data))

	loaded, err := scheme.Load(user)
	require.NoError(t, err)
	assert.Equal(t, s.Render(), loaded.Render())

	_, err = s.Save(project, "../App", true)
	require.ErrorContains(t, err, domain.ErrInvalidSchemeName.Error())
}

func TestLoad_Missing(t *testing.T) {
	_, err := scheme.Load(filepath.Join(t.TempDir(), "missing.xcscheme"))
	require.ErrorContains(t, err, domain.ErrSchemeReadFailed.Error())
}
