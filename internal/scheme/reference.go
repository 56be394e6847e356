package scheme

import (
	"github.com/beevik/etree"
	"go.trai.ch/xcscheme/internal/core/domain"
)

const (
	tagBuildableReference       = "BuildableReference"
	tagBuildableProductRunnable = "BuildableProductRunnable"
	tagMacroExpansion           = "MacroExpansion"

	attrBuildableIdentifier   = "BuildableIdentifier"
	attrBlueprintIdentifier   = "BlueprintIdentifier"
	attrBuildableName         = "BuildableName"
	attrBlueprintName         = "BlueprintName"
	attrReferencedContainer   = "ReferencedContainer"
	attrRunnableDebuggingMode = "runnableDebuggingMode"

	// PrimaryBuildableIdentifier qualifies references to a target's main product.
	PrimaryBuildableIdentifier = "primary"

	// ProductExtension is appended to a target name to name the product a runnable launches.
	ProductExtension = ".app"

	// LaunchDebuggingMode is the runnable hint used by launch actions: run the default entry point.
	LaunchDebuggingMode = "0"
)

// BuildableReference identifies a build target from inside an action.
type BuildableReference struct {
	element
}

// NewBuildableReference creates a reference to target's product.
func NewBuildableReference(target *domain.Target) *BuildableReference {
	r := &BuildableReference{element{etree.NewElement(tagBuildableReference)}}
	r.SetTarget(target, target.BuildableName())
	return r
}

// newLaunchReference creates a reference whose product name is the launchable bundle of target.
func newLaunchReference(target *domain.Target) *BuildableReference {
	r := &BuildableReference{element{etree.NewElement(tagBuildableReference)}}
	r.SetTarget(target, LaunchProductName(target))
	return r
}

// LaunchProductName returns the product name runnables and macro expansions refer to.
func LaunchProductName(target *domain.Target) string {
	return target.Name + ProductExtension
}

func wrapBuildableReference(parent *etree.Element) *BuildableReference {
	e := parent.SelectElement(tagBuildableReference)
	if e == nil {
		return nil
	}
	return &BuildableReference{element{e}}
}

// SetTarget points the reference at target, writing buildableName as its product name.
// Attributes are rewritten in place so their order is stable.
func (r *BuildableReference) SetTarget(target *domain.Target, buildableName string) {
	r.elem.CreateAttr(attrBuildableIdentifier, PrimaryBuildableIdentifier)
	r.elem.CreateAttr(attrBlueprintIdentifier, target.UUID)
	r.elem.CreateAttr(attrBuildableName, buildableName)
	r.elem.CreateAttr(attrBlueprintName, target.Name)
	r.elem.CreateAttr(attrReferencedContainer, target.ContainerReference())
}

// BuildableIdentifier returns the reference qualifier, normally "primary".
func (r *BuildableReference) BuildableIdentifier() string {
	return r.attr(attrBuildableIdentifier)
}

// TargetUUID returns the identifier of the referenced target.
func (r *BuildableReference) TargetUUID() string {
	return r.attr(attrBlueprintIdentifier)
}

// BuildableName returns the product name of the referenced target.
func (r *BuildableReference) BuildableName() string {
	return r.attr(attrBuildableName)
}

// TargetName returns the display name of the referenced target.
func (r *BuildableReference) TargetName() string {
	return r.attr(attrBlueprintName)
}

// ReferencedContainer returns the container:<project> reference.
func (r *BuildableReference) ReferencedContainer() string {
	return r.attr(attrReferencedContainer)
}

// Refers reports whether the reference points at target.
func (r *BuildableReference) Refers(target *domain.Target) bool {
	return r.TargetUUID() == target.UUID
}

// BuildableProductRunnable is the product a launch or profile action runs.
type BuildableProductRunnable struct {
	element
}

// NewBuildableProductRunnable wraps a reference to target's launchable product.
// An empty debuggingMode leaves the runnableDebuggingMode attribute out.
func NewBuildableProductRunnable(target *domain.Target, debuggingMode string) *BuildableProductRunnable {
	e := etree.NewElement(tagBuildableProductRunnable)
	if debuggingMode != "" {
		e.CreateAttr(attrRunnableDebuggingMode, debuggingMode)
	}
	e.AddChild(newLaunchReference(target).elem)
	return &BuildableProductRunnable{element{e}}
}

// RunnableDebuggingMode returns the launch style hint, or "" when unset.
func (r *BuildableProductRunnable) RunnableDebuggingMode() string {
	return r.attr(attrRunnableDebuggingMode)
}

// BuildableReference returns the wrapped reference.
func (r *BuildableProductRunnable) BuildableReference() *BuildableReference {
	return wrapBuildableReference(r.elem)
}

// MacroExpansion makes build settings expand as if target were being built.
type MacroExpansion struct {
	element
}

// NewMacroExpansion creates a macro expansion for target.
func NewMacroExpansion(target *domain.Target) *MacroExpansion {
	e := etree.NewElement(tagMacroExpansion)
	e.AddChild(newLaunchReference(target).elem)
	return &MacroExpansion{element{e}}
}

// BuildableReference returns the wrapped reference.
func (m *MacroExpansion) BuildableReference() *BuildableReference {
	return wrapBuildableReference(m.elem)
}
