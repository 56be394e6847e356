package domain_test

import (
	"testing"

	"go.trai.ch/xcscheme/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestProject_AddTarget(t *testing.T) {
	p := domain.NewProject("App.xcodeproj")
	target := domain.Target{Name: "App", UUID: "1D6058900D05DD3D006BFB54"}

	if err := p.AddTarget(&target); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if target.ProjectPath != "App.xcodeproj" {
		t.Errorf("expected project path to default to the project, got %q", target.ProjectPath)
	}

	dup := domain.Target{Name: "App", UUID: "OTHER"}
	err := p.AddTarget(&dup)
	if err == nil {
		t.Fatal("expected error when adding duplicate target, got nil")
	}

	// Verify error is of correct type
	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	// Verify metadata
	meta := zErr.Metadata()
	if name, ok := meta["target_name"].(string); !ok || name != "App" {
		t.Errorf("expected metadata target_name=App, got %v", meta["target_name"])
	}
}

func TestProject_AddTarget_Invalid(t *testing.T) {
	p := domain.NewProject("App.xcodeproj")

	if err := p.AddTarget(&domain.Target{Name: "App"}); err == nil {
		t.Error("expected error for target without uuid")
	}
	if err := p.AddTarget(&domain.Target{UUID: "X"}); err == nil {
		t.Error("expected error for target without name")
	}
}

func TestProject_Target(t *testing.T) {
	p := domain.NewProject("App.xcodeproj")
	for _, name := range []string{"Zeta", "App", "AppTests"} {
		if err := p.AddTarget(&domain.Target{Name: name, UUID: name + "-id"}); err != nil {
			t.Fatalf("failed to add %s: %v", name, err)
		}
	}

	got, err := p.Target("AppTests")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.UUID != "AppTests-id" {
		t.Errorf("expected AppTests-id, got %s", got.UUID)
	}

	if _, err := p.Target("Missing"); err == nil {
		t.Error("expected error for unknown target")
	}

	targets := p.Targets()
	if len(targets) != 3 || targets[0].Name != "Zeta" || targets[2].Name != "AppTests" {
		t.Errorf("expected declaration order, got %v", targets)
	}

	names := p.TargetNames()
	if names[0] != "App" || names[1] != "AppTests" || names[2] != "Zeta" {
		t.Errorf("expected sorted names, got %v", names)
	}
}

func TestTarget_Names(t *testing.T) {
	target := domain.Target{Name: "App", ProjectPath: "ios/App.xcodeproj"}
	if got := target.BuildableName(); got != "App" {
		t.Errorf("BuildableName() = %q, want App", got)
	}
	target.ProductName = "App.app"
	if got := target.BuildableName(); got != "App.app" {
		t.Errorf("BuildableName() = %q, want App.app", got)
	}
	if got := target.ContainerReference(); got != "container:App.xcodeproj" {
		t.Errorf("ContainerReference() = %q, want container:App.xcodeproj", got)
	}
}

func TestProject_SchemeUser(t *testing.T) {
	t.Setenv("USER", "bob")
	p := domain.NewProject("App.xcodeproj")
	if got := p.SchemeUser(); got != "bob" {
		t.Errorf("SchemeUser() = %q, want bob", got)
	}
	p.User = "carol"
	if got := p.SchemeUser(); got != "carol" {
		t.Errorf("SchemeUser() = %q, want carol", got)
	}
}

func TestProject_Relocate(t *testing.T) {
	p := domain.NewProject("/a/App.xcodeproj")
	own := &domain.Target{Name: "App", UUID: "1"}
	foreign := &domain.Target{Name: "Lib", UUID: "2", ProjectPath: "/b/Lib.xcodeproj"}
	if err := p.AddTarget(own); err != nil {
		t.Fatal(err)
	}
	if err := p.AddTarget(foreign); err != nil {
		t.Fatal(err)
	}

	p.Relocate("/c/App.xcodeproj")

	if p.Path != "/c/App.xcodeproj" {
		t.Errorf("Path = %q", p.Path)
	}
	if own.ProjectPath != "/c/App.xcodeproj" {
		t.Errorf("own target ProjectPath = %q", own.ProjectPath)
	}
	if foreign.ProjectPath != "/b/Lib.xcodeproj" {
		t.Errorf("foreign target ProjectPath = %q", foreign.ProjectPath)
	}
}
